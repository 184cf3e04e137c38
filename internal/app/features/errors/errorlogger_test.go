package errors_test

import (
	"encoding/json"
	stderrors "errors"
	"net/http"
	"net/http/httptest"
	"testing"

	uierrors "github.com/dalemusser/mlhub/internal/app/features/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestWriteJSONError(t *testing.T) {
	rec := httptest.NewRecorder()
	uierrors.WriteJSONError(rec, http.StatusBadRequest, "unknown event type")

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q", ct)
	}
	var body struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Error != "unknown event type" {
		t.Errorf("error = %q", body.Error)
	}
}

func TestJSONError_LogsByStatus(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	el := uierrors.NewErrorLogger(zap.New(core))
	req := httptest.NewRequest(http.MethodPost, "/api/pwa/events", nil)

	el.JSONError(httptest.NewRecorder(), req, http.StatusBadRequest, "bad payload", stderrors.New("eof"), "invalid payload")
	el.JSONError(httptest.NewRecorder(), req, http.StatusServiceUnavailable, "store down", nil, "try later")

	entries := logs.All()
	if len(entries) != 2 {
		t.Fatalf("got %d log entries, want 2", len(entries))
	}
	if entries[0].Level != zapcore.WarnLevel {
		t.Errorf("400 logged at %v, want warn", entries[0].Level)
	}
	if entries[1].Level != zapcore.ErrorLevel {
		t.Errorf("503 logged at %v, want error", entries[1].Level)
	}
	if entries[0].ContextMap()["path"] != "/api/pwa/events" {
		t.Errorf("path field = %v", entries[0].ContextMap()["path"])
	}
}
