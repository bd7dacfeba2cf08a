package storage

import (
	"context"
	"crypto/tls"

	"github.com/redis/go-redis/v9"

	"VCARD_BACK-END/internal/config"
)

// RedisKV stores values as plain redis strings without expiry.
type RedisKV struct {
	client *redis.Client
	prefix string
}

func NewRedisKV(cfg config.RedisConfig) *RedisKV {
	opts := &redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	}

	if cfg.UseTLS {
		opts.TLSConfig = &tls.Config{
			MinVersion: tls.VersionTLS12,
		}
	}

	return &RedisKV{client: redis.NewClient(opts), prefix: cfg.KeyPrefix}
}

func (r *RedisKV) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := r.client.Get(ctx, r.prefix+key).Bytes()
	if err == redis.Nil {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, err
	}
	return val, nil
}

func (r *RedisKV) Set(ctx context.Context, key string, value []byte) error {
	return r.client.Set(ctx, r.prefix+key, value, 0).Err()
}

func (r *RedisKV) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *RedisKV) Close() error {
	return r.client.Close()
}
