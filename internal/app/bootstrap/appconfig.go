// internal/app/bootstrap/appconfig.go
package bootstrap

import (
	"time"

	"github.com/dalemusser/mlhub/internal/app/system/timeouts"
)

// Catalog sources understood by CatalogSource.
const (
	CatalogSourceEmbedded = "embedded"
	CatalogSourceMongo    = "mongo"
)

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). They represent *app-level*
// configuration, not WAFFLE core configuration.
//
// WAFFLE's CoreConfig handles framework-level settings like:
//   - HTTP/HTTPS ports and TLS configuration
//   - Logging level and format
//   - Request body size limits
//
// AppConfig carries what is specific to MLHub: where the catalog comes
// from, the optional MongoDB backend, site presentation, metrics, and the
// timeouts used for backend calls.
type AppConfig struct {
	// Catalog configuration
	CatalogSource string // "embedded" (compiled-in seed) or "mongo"
	SeedCatalog   bool   // seed empty Mongo collections from the embedded catalog

	// MongoDB connection configuration (used only when CatalogSource is "mongo")
	MongoURI         string // MongoDB connection string (e.g., mongodb://localhost:27017)
	MongoDatabase    string // Database name within MongoDB
	MongoMaxPoolSize uint64 // Maximum connections in pool

	// Site presentation
	SiteName   string // Display name shown in the header and manifest
	BaseURL    string // Public base URL, used for canonical links
	FooterHTML string // Optional footer markup; sanitized before rendering

	// Observability
	MetricsEnabled bool // expose Prometheus metrics at /metrics

	// Host events
	HostEventRateLimit int // events accepted per client IP per minute; 0 disables the limit

	// Backend timeouts
	TimeoutPing   time.Duration
	TimeoutShort  time.Duration
	TimeoutMedium time.Duration
}

// UsesMongo reports whether the catalog is served from MongoDB.
func (c AppConfig) UsesMongo() bool {
	return c.CatalogSource == CatalogSourceMongo
}

func (c AppConfig) timeoutConfig() timeouts.Config {
	return timeouts.Config{
		Ping:   c.TimeoutPing,
		Short:  c.TimeoutShort,
		Medium: c.TimeoutMedium,
	}
}
