package bootstrap

import (
	"testing"
	"time"
)

func TestValidateAppConfig(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*AppConfig)
		wantErr bool
	}{
		{"embedded defaults", func(c *AppConfig) {}, false},
		{"mongo with valid uri", func(c *AppConfig) {
			c.CatalogSource = CatalogSourceMongo
			c.MongoURI = "mongodb://localhost:27017"
			c.MongoDatabase = "mlhub"
		}, false},
		{"embedded ignores bad uri", func(c *AppConfig) { c.MongoURI = "not a uri" }, false},
		{"mongo with bad uri", func(c *AppConfig) {
			c.CatalogSource = CatalogSourceMongo
			c.MongoURI = "http://localhost"
			c.MongoDatabase = "mlhub"
		}, true},
		{"mongo without database", func(c *AppConfig) {
			c.CatalogSource = CatalogSourceMongo
			c.MongoURI = "mongodb://localhost:27017"
		}, true},
		{"unknown source", func(c *AppConfig) { c.CatalogSource = "s3" }, true},
		{"empty site name", func(c *AppConfig) { c.SiteName = "" }, true},
		{"negative rate limit", func(c *AppConfig) { c.HostEventRateLimit = -1 }, true},
		{"negative timeout", func(c *AppConfig) { c.TimeoutShort = -time.Second }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := embeddedConfig()
			tt.mutate(&cfg)
			err := validateAppConfig(cfg, testLogger())
			if (err != nil) != tt.wantErr {
				t.Errorf("validateAppConfig() err = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestAppConfig_UsesMongo(t *testing.T) {
	if (AppConfig{CatalogSource: CatalogSourceEmbedded}).UsesMongo() {
		t.Error("embedded reported as mongo")
	}
	if !(AppConfig{CatalogSource: CatalogSourceMongo}).UsesMongo() {
		t.Error("mongo not reported as mongo")
	}
}
