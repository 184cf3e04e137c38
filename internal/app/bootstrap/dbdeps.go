// internal/app/bootstrap/dbdeps.go
package bootstrap

import (
	"github.com/dalemusser/mlhub/internal/app/catalog"
	hosteventstore "github.com/dalemusser/mlhub/internal/app/store/hostevents"
	"github.com/dalemusser/mlhub/internal/app/system/metrics"
	"github.com/dalemusser/mlhub/internal/app/system/pwa"
	"github.com/dalemusser/mlhub/internal/app/system/ratelimit"
	"github.com/dalemusser/mlhub/internal/app/system/workers"
	"github.com/prometheus/client_golang/prometheus"
	"go.mongodb.org/mongo-driver/mongo"
)

// DBDeps holds database/back-end dependencies for the app.
//
// The Mongo fields are nil when the catalog is embedded. State is filled
// in by Startup and shared by the later hooks.
type DBDeps struct {
	MongoClient   *mongo.Client
	MongoDatabase *mongo.Database

	State *appState
}

// appState is built once during Startup.
type appState struct {
	Catalog  *catalog.Catalog
	Registry *prometheus.Registry
	Metrics  *metrics.Metrics
	Bus      *pwa.Bus
	Tracker  *pwa.Tracker
	Events   *hosteventstore.Store // nil without Mongo
	Recorder *workers.EventRecorder
	Limiter  *ratelimit.Limiter

	unsubscribe []func()
}
