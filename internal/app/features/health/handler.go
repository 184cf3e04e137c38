package health

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/dalemusser/mlhub/internal/app/catalog"
	"github.com/dalemusser/mlhub/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

// Database states reported by the health check.
const (
	DBConnected     = "connected"
	DBDisconnected  = "disconnected"
	DBNotConfigured = "not configured"
)

// Handler holds dependencies needed for health checks.
type Handler struct {
	Client  *mongo.Client // nil when the catalog is embedded
	Catalog *catalog.Catalog
	Log     *zap.Logger
}

// NewHandler constructs a health Handler. client may be nil.
func NewHandler(client *mongo.Client, cat *catalog.Catalog, logger *zap.Logger) *Handler {
	return &Handler{
		Client:  client,
		Catalog: cat,
		Log:     logger,
	}
}

type catalogStatus struct {
	Records    int `json:"records"`
	Categories int `json:"categories"`
}

// healthResponse is the JSON structure for the health check response.
type healthResponse struct {
	Status   string        `json:"status"`
	Catalog  catalogStatus `json:"catalog"`
	Database string        `json:"database"`
	Message  string        `json:"message,omitempty"`
	Error    string        `json:"error,omitempty"`
}

// Serve handles GET /health.
//
// On success: 200 and
//
//	{ "status":"ok", "catalog":{"records":8,"categories":8}, "database":"connected" }
//
// On DB failure: 503 and
//
//	{ "status":"error", "database":"disconnected", "message":"Database unavailable", "error":"…" }
func (h *Handler) Serve(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	resp := healthResponse{
		Status: "ok",
		Catalog: catalogStatus{
			Records:    h.Catalog.Len(),
			Categories: len(h.Catalog.Categories()),
		},
		Database: DBNotConfigured,
	}

	if h.Client != nil {
		ctx, cancel := context.WithTimeout(r.Context(), timeouts.Ping())
		defer cancel()

		if err := h.Client.Ping(ctx, readpref.Primary()); err != nil {
			h.Log.Error("health-check: mongo ping failed", zap.Error(err))
			resp.Status = "error"
			resp.Database = DBDisconnected
			resp.Message = "Database unavailable"
			resp.Error = err.Error()
			w.WriteHeader(http.StatusServiceUnavailable)
			h.encode(w, resp)
			return
		}
		resp.Database = DBConnected
	}

	h.encode(w, resp)
}

func (h *Handler) encode(w http.ResponseWriter, resp healthResponse) {
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.Log.Warn("health-check: encode response failed", zap.Error(err))
	}
}
