// internal/app/features/pwa/events.go
package pwa

import (
	"encoding/json"
	"net/http"
	"unicode/utf8"

	"github.com/dalemusser/mlhub/internal/app/system/limits"
	"github.com/dalemusser/mlhub/internal/app/system/pwa"
	"github.com/dalemusser/mlhub/internal/app/system/ratelimit"
	"go.uber.org/zap"
)

// maxClientID bounds the client_id accepted from the page.
const maxClientID = 64

// eventRequest is the body the page posts for each host event.
type eventRequest struct {
	Type          string `json:"type"`
	Detail        string `json:"detail"`
	DisplayMode   string `json:"display_mode"`
	ServiceWorker bool   `json:"service_worker"`
	ClientID      string `json:"client_id"`
}

type eventResponse struct {
	Accepted     bool             `json:"accepted"`
	Installation pwa.Installation `json:"installation"`
}

// ServeEvent handles POST /api/pwa/events. Install events drive the
// client's install flow, which publishes on the bus; other events are
// published as posted. The installation status is returned with 202.
//
// Clients are keyed by client_id, or by IP when the page sends none.
func (h *Handler) ServeEvent(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, limits.MaxHostEventBody)

	var req eventRequest
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		h.ErrLog.JSONError(w, r, http.StatusBadRequest, "decode host event failed", err, "invalid event payload")
		return
	}

	kind := pwa.EventKind(req.Type)
	if !pwa.IsValidEventKind(kind) {
		h.ErrLog.JSONError(w, r, http.StatusBadRequest, "unknown host event type", nil, "unknown event type")
		return
	}
	if kind == pwa.KindInstallChoice {
		switch pwa.Choice(req.Detail) {
		case pwa.ChoiceAccepted, pwa.ChoiceDismissed:
		default:
			h.ErrLog.JSONError(w, r, http.StatusBadRequest, "invalid install choice", nil, "detail must be accepted or dismissed")
			return
		}
	}

	if len(req.ClientID) > maxClientID {
		h.ErrLog.JSONError(w, r, http.StatusBadRequest, "host event client id too long", nil, "client_id too long")
		return
	}

	e := pwa.Event{Kind: kind, Detail: truncateDetail(req.Detail)}
	status := pwa.Status(req.DisplayMode, req.ServiceWorker)
	if h.Tracker == nil {
		h.Bus.Publish(e)
	} else {
		clientID := req.ClientID
		if clientID == "" {
			clientID = ratelimit.ClientIP(r)
		}
		installed, err := h.Tracker.Report(r.Context(), clientID, e)
		if err != nil {
			h.ErrLog.JSONError(w, r, http.StatusInternalServerError, "apply install event failed", err, "could not apply event")
			return
		}
		if installed {
			status = pwa.StatusInstalled
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusAccepted)
	if err := json.NewEncoder(w).Encode(eventResponse{Accepted: true, Installation: status}); err != nil {
		h.Log.Warn("encode host event response failed", zap.Error(err))
	}
}

// truncateDetail cuts d to at most limits.MaxHostEventDetail bytes without
// splitting a UTF-8 sequence.
func truncateDetail(d string) string {
	if len(d) <= limits.MaxHostEventDetail {
		return d
	}
	d = d[:limits.MaxHostEventDetail]
	for len(d) > 0 && !utf8.ValidString(d) {
		d = d[:len(d)-1]
	}
	return d
}
