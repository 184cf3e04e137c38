// internal/app/bootstrap/db.go
package bootstrap

import (
	"context"
	"fmt"

	"github.com/dalemusser/mlhub/internal/app/catalog"
	categorystore "github.com/dalemusser/mlhub/internal/app/store/categories"
	resourcestore "github.com/dalemusser/mlhub/internal/app/store/resources"
	"github.com/dalemusser/mlhub/internal/app/system/indexes"
	"github.com/dalemusser/mlhub/internal/app/system/timeouts"
	"github.com/dalemusser/mlhub/internal/app/system/txn"
	"github.com/dalemusser/waffle/config"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// ConnectDB opens the MongoDB client when the catalog is served from Mongo.
// With the embedded catalog no connection is made and the Mongo fields of
// DBDeps stay nil.
func ConnectDB(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) (DBDeps, error) {
	timeouts.Configure(appCfg.timeoutConfig())

	deps := DBDeps{State: &appState{}}
	if !appCfg.UsesMongo() {
		logger.Info("catalog source is embedded; skipping MongoDB connection")
		return deps, nil
	}

	opts := options.Client().ApplyURI(appCfg.MongoURI)
	if appCfg.MongoMaxPoolSize > 0 {
		opts.SetMaxPoolSize(appCfg.MongoMaxPoolSize)
	}

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		logger.Error("MongoDB connect failed", zap.Error(err))
		return DBDeps{}, fmt.Errorf("connect mongo: %w", err)
	}

	pingCtx, cancel := timeouts.WithTimeout(ctx, timeouts.Ping(), logger, "mongo ping")
	defer cancel()
	if err := client.Ping(pingCtx, nil); err != nil {
		_ = client.Disconnect(ctx)
		logger.Error("MongoDB ping failed", zap.Error(err))
		return DBDeps{}, fmt.Errorf("ping mongo: %w", err)
	}

	logger.Info("connected to MongoDB", zap.String("database", appCfg.MongoDatabase))
	deps.MongoClient = client
	deps.MongoDatabase = client.Database(appCfg.MongoDatabase)
	return deps, nil
}

// EnsureSchema creates the catalog indexes and, when enabled, seeds empty
// collections from the embedded catalog. It does nothing for the embedded
// source.
func EnsureSchema(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	if deps.MongoDatabase == nil {
		return nil
	}

	if err := indexes.EnsureAll(ctx, deps.MongoDatabase, logger); err != nil {
		logger.Error("index setup failed", zap.Error(err))
		return err
	}

	if !appCfg.SeedCatalog {
		return nil
	}
	return seedCatalog(ctx, deps, logger)
}

// seedCatalog writes the embedded catalog into Mongo when the resources
// collection is empty. Both collections are replaced in one transaction
// where the server supports it.
func seedCatalog(ctx context.Context, deps DBDeps, logger *zap.Logger) error {
	resStore := resourcestore.New(deps.MongoDatabase)
	catStore := categorystore.New(deps.MongoDatabase)

	n, err := resStore.Count(ctx)
	if err != nil {
		return fmt.Errorf("count resources: %w", err)
	}
	if n > 0 {
		logger.Debug("catalog already seeded", zap.Int64("resources", n))
		return nil
	}

	seed, err := catalog.EmbeddedSeed()
	if err != nil {
		return err
	}
	records, cats, err := seed.Build()
	if err != nil {
		return err
	}

	sctx, cancel := timeouts.WithTimeout(ctx, timeouts.Medium(), logger, "seed catalog")
	defer cancel()

	err = txn.Run(sctx, deps.MongoClient, logger, func(ctx context.Context) error {
		if err := catStore.ReplaceAll(ctx, cats); err != nil {
			return fmt.Errorf("seed categories: %w", err)
		}
		if err := resStore.ReplaceAll(ctx, records); err != nil {
			return fmt.Errorf("seed resources: %w", err)
		}
		return nil
	})
	if err != nil {
		logger.Error("catalog seed failed", zap.Error(err))
		return err
	}

	logger.Info("seeded catalog",
		zap.Int("resources", len(records)),
		zap.Int("categories", len(cats)))
	return nil
}

// loadMongoCatalog reads both collections and builds the in-memory catalog.
func loadMongoCatalog(ctx context.Context, db *mongo.Database, logger *zap.Logger) (*catalog.Catalog, error) {
	lctx, cancel := timeouts.WithTimeout(ctx, timeouts.Medium(), logger, "load catalog")
	defer cancel()

	cats, err := categorystore.New(db).List(lctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	records, err := resourcestore.New(db).List(lctx)
	if err != nil {
		return nil, fmt.Errorf("list resources: %w", err)
	}
	return catalog.New(records, cats)
}
