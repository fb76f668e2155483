package storage

import (
	"context"
	"log/slog"

	"nosh/config"
	"nosh/internal/domain/repository"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// Store driver names accepted in configuration.
const (
	DriverFile   = "file"
	DriverRedis  = "redis"
	DriverMemory = "memory"
)

// StoreParams holds dependencies for the KVStore, injected by Fx.
type StoreParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewStore creates a KVStore based on the configured driver.
func NewStore(params StoreParams) (repository.KVStore, error) {
	cfg := params.Config.Storage
	logger := params.Logger

	switch cfg.Driver {
	case DriverFile:
		logger.Info("Using file-backed store", slog.String("path", cfg.Path))

		return NewFileStore(cfg.Path)

	case DriverRedis:
		if cfg.Redis == nil || cfg.Redis.Addr == "" {
			return nil, errors.New("storage.redis.addr is required for redis driver")
		}
		logger.Info("Using redis-backed store", slog.String("addr", cfg.Redis.Addr))

		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})

		params.Lc.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				logger.Info("Closing redis store")

				return client.Close()
			},
		})

		return NewRedisStore(client), nil

	case DriverMemory:
		logger.Warn("Using in-memory store, state will not survive restarts")

		return NewMemoryStore(), nil

	default:
		return nil, errors.Errorf("unknown storage driver: %s", cfg.Driver)
	}
}
