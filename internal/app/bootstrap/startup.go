// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"
	"fmt"
	"time"

	"github.com/dalemusser/mlhub/internal/app/catalog"
	"github.com/dalemusser/mlhub/internal/app/resources"
	hosteventstore "github.com/dalemusser/mlhub/internal/app/store/hostevents"
	"github.com/dalemusser/mlhub/internal/app/system/metrics"
	"github.com/dalemusser/mlhub/internal/app/system/pwa"
	"github.com/dalemusser/mlhub/internal/app/system/ratelimit"
	"github.com/dalemusser/mlhub/internal/app/system/viewdata"
	"github.com/dalemusser/mlhub/internal/app/system/workers"
	"github.com/dalemusser/waffle/config"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
)

// hostEventQueueSize bounds the recorder's backlog of unwritten events.
const hostEventQueueSize = 256

// maxInstallClients bounds the install flows kept in memory.
const maxInstallClients = 10000

// Startup runs one-time application initialization after DB connections and
// schema setup are complete, but before the HTTP handler is built. It loads
// the catalog, configures site presentation, and wires the host-event bus
// to its subscribers.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	if deps.State == nil {
		return fmt.Errorf("startup: missing app state")
	}
	st := deps.State

	cat, err := loadCatalog(ctx, appCfg, deps, logger)
	if err != nil {
		logger.Error("catalog load failed", zap.Error(err))
		return err
	}
	if unknown := cat.UnknownCategories(); len(unknown) > 0 {
		logger.Warn("resources reference unknown categories",
			zap.Strings("categories", unknown))
	}
	logger.Info("catalog loaded",
		zap.String("source", appCfg.CatalogSource),
		zap.Int("resources", cat.Len()),
		zap.Int("categories", len(cat.Categories())))
	st.Catalog = cat

	viewdata.Init(appCfg.SiteName, appCfg.BaseURL, appCfg.FooterHTML)

	if appCfg.MetricsEnabled {
		st.Registry = prometheus.NewRegistry()
		st.Registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		st.Metrics = metrics.New(st.Registry)
	}

	st.Bus = pwa.NewBus()
	st.Tracker = pwa.NewTracker(st.Bus, maxInstallClients)
	wireHostEvents(st, deps, logger)
	if appCfg.HostEventRateLimit > 0 {
		st.Limiter = ratelimit.New(appCfg.HostEventRateLimit, time.Minute)
	}

	resources.LoadSharedTemplates()
	return nil
}

func loadCatalog(ctx context.Context, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (*catalog.Catalog, error) {
	if appCfg.UsesMongo() && deps.MongoDatabase != nil {
		return loadMongoCatalog(ctx, deps.MongoDatabase, logger)
	}
	return catalog.LoadEmbedded()
}

// wireHostEvents subscribes the logger, the metrics, and (with Mongo) the
// event recorder to the host-event bus.
func wireHostEvents(st *appState, deps DBDeps, logger *zap.Logger) {
	log := logger.Named("pwa")
	st.unsubscribe = append(st.unsubscribe, st.Bus.Subscribe(func(e pwa.Event) {
		log.Info("host event", zap.String("type", string(e.Kind)), zap.String("detail", e.Detail))
	}))
	st.unsubscribe = append(st.unsubscribe, st.Bus.Subscribe(func(e pwa.Event) {
		st.Metrics.ObserveHostEvent(string(e.Kind))
	}))

	if deps.MongoDatabase == nil {
		return
	}
	st.Events = hosteventstore.New(deps.MongoDatabase)
	st.Recorder = workers.NewEventRecorder(workers.EventSinkFunc(func(ctx context.Context, e pwa.Event) error {
		_, err := st.Events.Insert(ctx, e)
		return err
	}), logger, hostEventQueueSize)
	st.Recorder.Start()
	st.unsubscribe = append(st.unsubscribe, st.Bus.Subscribe(st.Recorder.Enqueue))
}
