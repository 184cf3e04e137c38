// internal/app/features/pwa/handler.go
package pwa

import (
	"context"

	uierrors "github.com/dalemusser/mlhub/internal/app/features/errors"
	hosteventstore "github.com/dalemusser/mlhub/internal/app/store/hostevents"
	"github.com/dalemusser/mlhub/internal/app/system/pwa"
	"go.uber.org/zap"
)

// EventHistory lists recorded host events, newest first.
type EventHistory interface {
	Recent(ctx context.Context, kind pwa.EventKind, limit int64) ([]hosteventstore.Record, error)
}

// Handler serves the installable-app surface: the web manifest, the service
// worker, the host-event intake, and the recorded event history.
type Handler struct {
	Bus      *pwa.Bus
	Tracker  *pwa.Tracker
	History  EventHistory // nil when events are not persisted
	SiteName string
	ErrLog   *uierrors.ErrorLogger
	Log      *zap.Logger
}

func NewHandler(bus *pwa.Bus, tracker *pwa.Tracker, history EventHistory, siteName string, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Bus:      bus,
		Tracker:  tracker,
		History:  history,
		SiteName: siteName,
		ErrLog:   errLog,
		Log:      logger,
	}
}
