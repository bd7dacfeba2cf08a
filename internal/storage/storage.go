// Package storage provides the durable key-value slot the profile store
// persists into. Every backend stores opaque values under string keys.
package storage

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"VCARD_BACK-END/internal/config"
)

// ErrNotFound is returned by Get when the key holds no value.
var ErrNotFound = errors.New("storage: key not found")

// KV is a durable key-value store.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Ping(ctx context.Context) error
	Close() error
}

// Open connects the backend selected by cfg.Driver.
func Open(ctx context.Context, cfg config.StorageConfig, dsn string, logger *zap.Logger) (KV, error) {
	logger.Info("opening storage", zap.String("driver", cfg.Driver))

	switch cfg.Driver {
	case config.DriverFile:
		return NewFileKV(cfg.DataDir)
	case config.DriverPostgres:
		return NewPostgresKV(ctx, dsn, cfg.Postgres)
	case config.DriverRedis:
		return NewRedisKV(cfg.Redis), nil
	default:
		return nil, fmt.Errorf("storage: unknown driver %q", cfg.Driver)
	}
}
