package container

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-newsroom/config"
	"github.com/oksasatya/go-newsroom/internal/infrastructure/flatstore"
	"github.com/oksasatya/go-newsroom/internal/infrastructure/gcsstore"
	pginfra "github.com/oksasatya/go-newsroom/internal/infrastructure/postgres"
	"github.com/oksasatya/go-newsroom/internal/infrastructure/redisstore"
	"github.com/oksasatya/go-newsroom/pkg/helpers"
)

// OpenStore builds the flat store on the backend named by cfg.StoreBackend.
// The returned func releases whatever client the backend holds.
func OpenStore(ctx context.Context, cfg *config.Config, logger logrus.FieldLogger) (*flatstore.Store, func(), error) {
	noop := func() {}
	switch cfg.StoreBackend {
	case "", "file":
		return flatstore.New(flatstore.NewFileBackend(cfg.DataFile)), noop, nil

	case "memory":
		logger.Warn("memory store backend: data is lost on restart")
		return flatstore.New(flatstore.NewMemoryBackend()), noop, nil

	case "redis":
		rdb, err := helpers.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			return nil, noop, fmt.Errorf("redis: %w", err)
		}
		return flatstore.New(redisstore.NewDocumentBackend(rdb, cfg.RedisStoreKey)), func() { _ = rdb.Close() }, nil

	case "postgres":
		if err := pginfra.RunMigrations(cfg.PostgresDSN(), cfg.MigrationsDir, logger); err != nil {
			return nil, noop, fmt.Errorf("migrations: %w", err)
		}
		pool, err := pginfra.NewPool(ctx, pginfra.PoolConfig{
			DSN:             cfg.PostgresDSN(),
			AppName:         cfg.AppName,
			MaxConns:        cfg.DBMaxConns,
			MinConns:        cfg.DBMinConns,
			MaxConnLifetime: cfg.DBMaxConnLife,
		})
		if err != nil {
			return nil, noop, fmt.Errorf("postgres: %w", err)
		}
		return flatstore.New(pginfra.NewDocumentBackend(pool, cfg.DBDocument)), pool.Close, nil

	case "gcs":
		if cfg.GCSBucket == "" {
			return nil, noop, fmt.Errorf("gcs: GCS_BUCKET is required")
		}
		client, err := helpers.NewGCSClient(ctx, cfg.GCSCredentialsJSONPath)
		if err != nil {
			return nil, noop, fmt.Errorf("gcs: %w", err)
		}
		return flatstore.New(gcsstore.NewDocumentBackend(client, cfg.GCSBucket, cfg.GCSStoreObject)), func() { _ = client.Close() }, nil

	default:
		return nil, noop, fmt.Errorf("unknown STORE_BACKEND %q", cfg.StoreBackend)
	}
}
