// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"
	"time"

	"github.com/dalemusser/waffle/config"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.uber.org/zap"
)

// appConfigKeys defines the configuration keys for MLHub.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: catalog_source, mongo_uri, etc.
//   - Environment variables: MLHUB_CATALOG_SOURCE, MLHUB_MONGO_URI, etc.
//   - Command-line flags: --catalog_source, --mongo_uri, etc.
var appConfigKeys = []config.AppKey{
	// Catalog source
	{Name: "catalog_source", Default: CatalogSourceEmbedded, Desc: "Catalog source: 'embedded' or 'mongo'"},
	{Name: "seed_catalog", Default: true, Desc: "Seed empty Mongo collections from the embedded catalog"},

	// MongoDB (only used when catalog_source is 'mongo')
	{Name: "mongo_uri", Default: "mongodb://localhost:27017", Desc: "MongoDB connection URI"},
	{Name: "mongo_database", Default: "mlhub", Desc: "MongoDB database name"},
	{Name: "mongo_max_pool_size", Default: 50, Desc: "MongoDB max connection pool size (default: 50)"},

	// Site presentation
	{Name: "site_name", Default: "MLHub", Desc: "Site display name"},
	{Name: "base_url", Default: "http://localhost:8080", Desc: "Public base URL"},
	{Name: "footer_html", Default: "", Desc: "Optional footer HTML (sanitized)"},

	// Metrics
	{Name: "metrics_enabled", Default: true, Desc: "Expose Prometheus metrics at /metrics"},

	// Host events
	{Name: "host_event_rate_limit", Default: 60, Desc: "Host events accepted per client IP per minute (0 disables)"},

	// Backend timeouts
	{Name: "timeout_ping", Default: "2s", Desc: "Timeout for health pings"},
	{Name: "timeout_short", Default: "5s", Desc: "Timeout for single-document writes"},
	{Name: "timeout_medium", Default: "10s", Desc: "Timeout for catalog loads and seeding"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// It is called early in startup so that both WAFFLE and the app have
// access to configuration before any backends or handlers are built.
// CoreConfig comes from the shared WAFFLE layer; AppConfig is specific
// to MLHub.
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "MLHUB", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		CatalogSource: appValues.String("catalog_source"),
		SeedCatalog:   appValues.Bool("seed_catalog"),

		MongoURI:         appValues.String("mongo_uri"),
		MongoDatabase:    appValues.String("mongo_database"),
		MongoMaxPoolSize: uint64(appValues.Int("mongo_max_pool_size")),

		SiteName:   appValues.String("site_name"),
		BaseURL:    appValues.String("base_url"),
		FooterHTML: appValues.String("footer_html"),

		MetricsEnabled: appValues.Bool("metrics_enabled"),

		HostEventRateLimit: appValues.Int("host_event_rate_limit"),

		TimeoutPing:   appValues.Duration("timeout_ping", 2*time.Second),
		TimeoutShort:  appValues.Duration("timeout_short", 5*time.Second),
		TimeoutMedium: appValues.Duration("timeout_medium", 10*time.Second),
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig performs app-specific validation on the loaded config.
//
// The catalog source must be one MLHub knows how to load. The MongoDB
// settings are only checked when the catalog lives in MongoDB, so the
// default embedded deployment needs no database at all.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	return validateAppConfig(appCfg, logger)
}

func validateAppConfig(appCfg AppConfig, logger *zap.Logger) error {
	switch appCfg.CatalogSource {
	case CatalogSourceEmbedded:
	case CatalogSourceMongo:
		if err := wafflemongo.ValidateURI(appCfg.MongoURI); err != nil {
			logger.Error("invalid MongoDB URI", zap.Error(err))
			return fmt.Errorf("invalid MongoDB URI: %w", err)
		}
		if appCfg.MongoDatabase == "" {
			return fmt.Errorf("catalog_source 'mongo' requires mongo_database to be set")
		}
	default:
		logger.Error("unknown catalog source", zap.String("catalog_source", appCfg.CatalogSource))
		return fmt.Errorf("catalog_source must be 'embedded' or 'mongo', got %q", appCfg.CatalogSource)
	}

	if appCfg.HostEventRateLimit < 0 {
		return fmt.Errorf("host_event_rate_limit must not be negative")
	}
	if appCfg.SiteName == "" {
		return fmt.Errorf("site_name must not be empty")
	}
	for name, d := range map[string]time.Duration{
		"timeout_ping":   appCfg.TimeoutPing,
		"timeout_short":  appCfg.TimeoutShort,
		"timeout_medium": appCfg.TimeoutMedium,
	} {
		if d < 0 {
			return fmt.Errorf("%s must not be negative", name)
		}
	}
	return nil
}
