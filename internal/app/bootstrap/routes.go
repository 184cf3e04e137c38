// internal/app/bootstrap/routes.go
package bootstrap

import (
	"fmt"
	"net/http"

	aboutfeature "github.com/dalemusser/mlhub/internal/app/features/about"
	categoriesfeature "github.com/dalemusser/mlhub/internal/app/features/categories"
	errorsfeature "github.com/dalemusser/mlhub/internal/app/features/errors"
	healthfeature "github.com/dalemusser/mlhub/internal/app/features/health"
	homefeature "github.com/dalemusser/mlhub/internal/app/features/home"
	pwafeature "github.com/dalemusser/mlhub/internal/app/features/pwa"
	searchfeature "github.com/dalemusser/mlhub/internal/app/features/search"
	"github.com/dalemusser/mlhub/internal/app/system/metrics"
	"github.com/dalemusser/mlhub/internal/app/system/ratelimit"
	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/pantry/fileserver"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// any Startup hooks have completed. At this point you have access to:
//   - coreCfg: WAFFLE core configuration (ports, env, timeouts, etc.)
//   - appCfg: app-specific configuration defined in AppConfig
//   - deps: the optional Mongo client and the state built by Startup
//   - logger: the fully configured zap.Logger for this app
//
// MLHub initializes the template engine and mounts the public pages
// (home, search, category quick filters, about), their JSON APIs, the
// PWA manifest, service worker and host-event endpoint, health, and metrics.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	if deps.State == nil || deps.State.Catalog == nil {
		return nil, fmt.Errorf("build handler: catalog not loaded")
	}

	// Initialize and boot the template engine once at startup.
	// Dev mode enables template reloading for faster iteration.
	eng := templates.New(coreCfg.Env == "dev")
	if err := eng.Boot(logger); err != nil {
		logger.Error("template engine boot failed", zap.Error(err))
		return nil, err
	}
	templates.UseEngine(eng, logger)

	return newRouter(appCfg, deps, logger), nil
}

// newRouter mounts every feature. It is split from BuildHandler so the
// routing table can be exercised without booting templates.
func newRouter(appCfg AppConfig, deps DBDeps, logger *zap.Logger) chi.Router {
	st := deps.State
	cat := st.Catalog

	// Create error logger for handlers.
	errLog := errorsfeature.NewErrorLogger(logger)

	r := chi.NewRouter()

	// Error pages
	errorsHandler := errorsfeature.NewHandler()
	r.NotFound(errorsHandler.NotFound)

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.MongoClient, cat, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Prometheus scrape endpoint
	if st.Registry != nil {
		r.Handle("/metrics", metrics.Handler(st.Registry))
	}

	// Static assets with pre-compressed file support (gzip/brotli)
	r.Handle("/static/*", fileserver.Handler("/static", "public"))

	// Public pages
	homeHandler := homefeature.NewHandler(cat, logger)
	r.Mount("/", homefeature.Routes(homeHandler))

	searchHandler := searchfeature.NewHandler(cat, st.Metrics, logger)
	r.Mount("/search", searchfeature.Routes(searchHandler))
	r.Mount("/api/search", searchfeature.APIRoutes(searchHandler))

	categoriesHandler := categoriesfeature.NewHandler(cat, logger)
	r.Mount("/categories", categoriesfeature.Routes(categoriesHandler))
	r.Mount("/api/categories", categoriesfeature.APIRoutes(categoriesHandler))

	aboutHandler := aboutfeature.NewHandler(cat, logger)
	r.Mount("/about", aboutfeature.Routes(aboutHandler))

	// Installable app: manifest and service worker must live at the root
	// so the worker's scope covers the whole site.
	var history pwafeature.EventHistory
	if st.Events != nil {
		history = st.Events
	}
	pwaHandler := pwafeature.NewHandler(st.Bus, st.Tracker, history, appCfg.SiteName, errLog, logger)
	r.Get("/manifest.webmanifest", pwaHandler.ServeManifest)
	r.Get("/service-worker.js", pwaHandler.ServeServiceWorker)
	var pwaAPI chi.Router = r
	if st.Limiter != nil {
		pwaAPI = r.With(ratelimit.Middleware(st.Limiter, func(w http.ResponseWriter, _ *http.Request) {
			errorsfeature.WriteJSONError(w, http.StatusTooManyRequests, "too many events")
		}))
	}
	pwaAPI.Mount("/api/pwa", pwafeature.APIRoutes(pwaHandler))

	return r
}
