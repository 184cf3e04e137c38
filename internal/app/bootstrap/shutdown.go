// internal/app/bootstrap/shutdown.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Shutdown stops the host-event pipeline, then disconnects MongoDB.
func Shutdown(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	if st := deps.State; st != nil {
		for _, unsub := range st.unsubscribe {
			unsub()
		}
		st.unsubscribe = nil
		if st.Bus != nil {
			st.Bus.Close()
		}
		if st.Limiter != nil {
			st.Limiter.Stop()
		}
		if st.Recorder != nil {
			logger.Info("flushing host event recorder")
			st.Recorder.Stop()
		}
	}

	if deps.MongoClient != nil {
		logger.Info("disconnecting MLHub MongoDB client")
		if err := deps.MongoClient.Disconnect(ctx); err != nil {
			logger.Error("MongoDB disconnect failed", zap.Error(err))
			return err
		}
	}
	return nil
}
