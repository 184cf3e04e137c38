package pwa_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	uierrors "github.com/dalemusser/mlhub/internal/app/features/errors"
	pwafeature "github.com/dalemusser/mlhub/internal/app/features/pwa"
	hosteventstore "github.com/dalemusser/mlhub/internal/app/store/hostevents"
	"github.com/dalemusser/mlhub/internal/app/system/pwa"
	"go.uber.org/zap"
)

func newTestHandler(t *testing.T) (*pwafeature.Handler, *[]pwa.Event) {
	t.Helper()
	bus := pwa.NewBus()
	t.Cleanup(bus.Close)
	var events []pwa.Event
	bus.Subscribe(func(e pwa.Event) { events = append(events, e) })

	logger := zap.NewNop()
	tracker := pwa.NewTracker(bus, 100)
	return pwafeature.NewHandler(bus, tracker, nil, "MLHub", uierrors.NewErrorLogger(logger), logger), &events
}

func postEvent(h *pwafeature.Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/pwa/events", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeEvent(rec, req)
	return rec
}

func TestServeEvent_Accepted(t *testing.T) {
	h, events := newTestHandler(t)

	rec := postEvent(h, `{"type":"install_choice","detail":"accepted","display_mode":"browser","service_worker":true}`)

	if rec.Code != http.StatusAccepted {
		t.Fatalf("status = %d, want 202; body %s", rec.Code, rec.Body.String())
	}
	var body struct {
		Accepted     bool   `json:"accepted"`
		Installation string `json:"installation"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !body.Accepted || body.Installation != "installable" {
		t.Errorf("body = %+v", body)
	}
	if len(*events) != 1 {
		t.Fatalf("published %d events, want 1", len(*events))
	}
	if e := (*events)[0]; e.Kind != pwa.KindInstallChoice || e.Detail != "accepted" {
		t.Errorf("event = %+v", e)
	}
}

func TestServeEvent_StandaloneIsInstalled(t *testing.T) {
	h, _ := newTestHandler(t)
	rec := postEvent(h, `{"type":"app_installed","display_mode":"standalone"}`)

	if !strings.Contains(rec.Body.String(), `"installation":"installed"`) {
		t.Errorf("body = %s", rec.Body.String())
	}
}

func TestServeEvent_InstallFlowPerClient(t *testing.T) {
	h, events := newTestHandler(t)
	installation := func(rec *httptest.ResponseRecorder) string {
		t.Helper()
		var body struct {
			Installation string `json:"installation"`
		}
		if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			t.Fatalf("decode: %v", err)
		}
		return body.Installation
	}

	steps := []struct {
		body string
		want string
	}{
		{`{"type":"install_prompt_available","client_id":"a","service_worker":true}`, "installable"},
		{`{"type":"install_choice","detail":"accepted","client_id":"a","service_worker":true}`, "installable"},
		{`{"type":"app_installed","client_id":"a","service_worker":true}`, "installed"},
		{`{"type":"update_available","client_id":"a","service_worker":true}`, "installed"},
		{`{"type":"update_available","client_id":"b","service_worker":true}`, "installable"},
	}
	for i, s := range steps {
		rec := postEvent(h, s.body)
		if rec.Code != http.StatusAccepted {
			t.Fatalf("step %d: status = %d; body %s", i, rec.Code, rec.Body.String())
		}
		if got := installation(rec); got != s.want {
			t.Errorf("step %d: installation = %q, want %q", i, got, s.want)
		}
	}

	if len(*events) != len(steps) {
		t.Fatalf("published %d events, want %d", len(*events), len(steps))
	}
	if e := (*events)[1]; e.Kind != pwa.KindInstallChoice || e.Detail != "accepted" {
		t.Errorf("choice event = %+v", e)
	}
}

func TestServeEvent_TruncatesDetail(t *testing.T) {
	h, events := newTestHandler(t)
	long := strings.Repeat("é", 150) // 300 bytes
	rec := postEvent(h, `{"type":"sw_registration_failed","detail":"`+long+`"}`)

	if rec.Code != http.StatusAccepted {
		t.Fatalf("status = %d, want 202", rec.Code)
	}
	if len(*events) != 1 {
		t.Fatalf("published %d events, want 1", len(*events))
	}
	if got := (*events)[0].Detail; got != strings.Repeat("é", 100) {
		t.Errorf("detail has %d bytes, want 200", len(got))
	}
}

func TestServeEvent_Rejects(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"not json", `type=app_installed`},
		{"unknown field", `{"type":"app_installed","user":"x"}`},
		{"unknown type", `{"type":"beforeinstallprompt"}`},
		{"missing type", `{}`},
		{"bad choice", `{"type":"install_choice","detail":"maybe"}`},
		{"long client id", `{"type":"sw_registered","client_id":"` + strings.Repeat("c", 65) + `"}`},
		{"too large", `{"type":"sw_registration_failed","detail":"` + strings.Repeat("x", 8<<10) + `"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, events := newTestHandler(t)
			rec := postEvent(h, tt.body)

			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", rec.Code)
			}
			if len(*events) != 0 {
				t.Errorf("published %d events, want 0", len(*events))
			}
		})
	}
}

func TestServeManifest(t *testing.T) {
	h, _ := newTestHandler(t)
	rec := httptest.NewRecorder()
	h.ServeManifest(rec, httptest.NewRequest(http.MethodGet, "/manifest.webmanifest", nil))

	if ct := rec.Header().Get("Content-Type"); ct != "application/manifest+json" {
		t.Errorf("Content-Type = %q", ct)
	}
	var m struct {
		ShortName string `json:"short_name"`
		StartURL  string `json:"start_url"`
		Display   string `json:"display"`
		Icons     []struct {
			Src string `json:"src"`
		} `json:"icons"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &m); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if m.ShortName != "MLHub" || m.StartURL != "/" || m.Display != "standalone" {
		t.Errorf("manifest = %+v", m)
	}
	if len(m.Icons) != 2 {
		t.Errorf("got %d icons, want 2", len(m.Icons))
	}
}

func TestServeServiceWorker(t *testing.T) {
	h, _ := newTestHandler(t)
	rec := httptest.NewRecorder()
	h.ServeServiceWorker(rec, httptest.NewRequest(http.MethodGet, "/service-worker.js", nil))

	if got := rec.Header().Get("Service-Worker-Allowed"); got != "/" {
		t.Errorf("Service-Worker-Allowed = %q, want /", got)
	}
	if got := rec.Header().Get("Content-Type"); got != "application/javascript" {
		t.Errorf("Content-Type = %q", got)
	}
	if !strings.Contains(rec.Body.String(), "addEventListener('fetch'") {
		t.Error("service worker body missing fetch handler")
	}
}

type fakeHistory struct {
	recs     []hosteventstore.Record
	err      error
	gotKind  pwa.EventKind
	gotLimit int64
}

func (f *fakeHistory) Recent(_ context.Context, kind pwa.EventKind, limit int64) ([]hosteventstore.Record, error) {
	f.gotKind, f.gotLimit = kind, limit
	return f.recs, f.err
}

func getHistory(h *pwafeature.Handler, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHistory(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestServeHistory(t *testing.T) {
	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	hist := &fakeHistory{recs: []hosteventstore.Record{
		{ID: "2", Kind: "install_choice", Detail: "accepted", At: at},
		{ID: "1", Kind: "sw_registered", At: at.Add(-time.Minute)},
	}}
	h, _ := newTestHandler(t)
	h.History = hist

	rec := getHistory(h, "/api/pwa/events")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d; body %s", rec.Code, rec.Body.String())
	}
	var body struct {
		Events []struct {
			Type   string    `json:"type"`
			Detail string    `json:"detail"`
			At     time.Time `json:"at"`
		} `json:"events"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body.Events) != 2 || body.Events[0].Type != "install_choice" || body.Events[0].Detail != "accepted" || !body.Events[0].At.Equal(at) {
		t.Errorf("events = %+v", body.Events)
	}
	if hist.gotKind != "" || hist.gotLimit != 20 {
		t.Errorf("Recent(%q, %d), want (\"\", 20)", hist.gotKind, hist.gotLimit)
	}
}

func TestServeHistory_Query(t *testing.T) {
	tests := []struct {
		name      string
		target    string
		wantCode  int
		wantKind  pwa.EventKind
		wantLimit int64
	}{
		{"type filter", "/api/pwa/events?type=app_installed", http.StatusOK, pwa.KindAppInstalled, 20},
		{"limit", "/api/pwa/events?limit=5", http.StatusOK, "", 5},
		{"limit capped", "/api/pwa/events?limit=5000", http.StatusOK, "", 100},
		{"unknown type", "/api/pwa/events?type=click", http.StatusBadRequest, "", 0},
		{"zero limit", "/api/pwa/events?limit=0", http.StatusBadRequest, "", 0},
		{"bad limit", "/api/pwa/events?limit=ten", http.StatusBadRequest, "", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hist := &fakeHistory{}
			h, _ := newTestHandler(t)
			h.History = hist

			rec := getHistory(h, tt.target)
			if rec.Code != tt.wantCode {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantCode)
			}
			if hist.gotKind != tt.wantKind || hist.gotLimit != tt.wantLimit {
				t.Errorf("Recent(%q, %d), want (%q, %d)", hist.gotKind, hist.gotLimit, tt.wantKind, tt.wantLimit)
			}
			if tt.wantCode == http.StatusOK && !strings.Contains(rec.Body.String(), `"events":[]`) {
				t.Errorf("body = %s, want empty events array", rec.Body.String())
			}
		})
	}
}

func TestServeHistory_Errors(t *testing.T) {
	h, _ := newTestHandler(t)
	if rec := getHistory(h, "/api/pwa/events"); rec.Code != http.StatusNotFound {
		t.Errorf("without history: status = %d, want 404", rec.Code)
	}

	h.History = &fakeHistory{err: errors.New("mongo down")}
	if rec := getHistory(h, "/api/pwa/events"); rec.Code != http.StatusInternalServerError {
		t.Errorf("store error: status = %d, want 500", rec.Code)
	}
}
