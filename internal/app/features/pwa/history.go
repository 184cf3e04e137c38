// internal/app/features/pwa/history.go
package pwa

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/dalemusser/mlhub/internal/app/system/pwa"
	"github.com/dalemusser/mlhub/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/pantry/query"
	"go.uber.org/zap"
)

const (
	defaultHistoryLimit = 20
	maxHistoryLimit     = 100
)

type historyEvent struct {
	Type   string    `json:"type"`
	Detail string    `json:"detail,omitempty"`
	At     time.Time `json:"at"`
}

type historyResponse struct {
	Events []historyEvent `json:"events"`
}

// ServeHistory handles GET /api/pwa/events?type=&limit=. It lists recorded
// host events newest first, optionally of one type. Without a history store
// it answers 404.
func (h *Handler) ServeHistory(w http.ResponseWriter, r *http.Request) {
	if h.History == nil {
		h.ErrLog.JSONError(w, r, http.StatusNotFound, "host event history not configured", nil, "event history not configured")
		return
	}

	kind := pwa.EventKind(query.Get(r, "type"))
	if kind != "" && !pwa.IsValidEventKind(kind) {
		h.ErrLog.JSONError(w, r, http.StatusBadRequest, "unknown host event type", nil, "unknown event type")
		return
	}

	limit := defaultHistoryLimit
	if raw := query.Get(r, "limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			h.ErrLog.JSONError(w, r, http.StatusBadRequest, "invalid history limit", err, "limit must be a positive integer")
			return
		}
		limit = min(n, maxHistoryLimit)
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.Log, "list host events")
	defer cancel()
	recs, err := h.History.Recent(ctx, kind, int64(limit))
	if err != nil {
		h.ErrLog.JSONError(w, r, http.StatusInternalServerError, "list host events failed", err, "could not list events")
		return
	}

	resp := historyResponse{Events: make([]historyEvent, 0, len(recs))}
	for _, rec := range recs {
		resp.Events = append(resp.Events, historyEvent{Type: rec.Kind, Detail: rec.Detail, At: rec.At})
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.Log.Warn("encode host event history failed", zap.Error(err))
	}
}
