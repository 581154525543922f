// Package redisstore keeps the store document under a single Redis key.
package redisstore

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"

	"github.com/oksasatya/go-newsroom/internal/infrastructure/flatstore"
)

type DocumentBackend struct {
	rdb *redis.Client
	key string
}

func NewDocumentBackend(rdb *redis.Client, key string) *DocumentBackend {
	return &DocumentBackend{rdb: rdb, key: key}
}

func (b *DocumentBackend) Name() string { return "redis" }

func (b *DocumentBackend) Read(ctx context.Context) ([]byte, error) {
	res, err := b.rdb.Get(ctx, b.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, flatstore.ErrNoDocument
	}
	if err != nil {
		return nil, err
	}
	return res, nil
}

// Write uses SET with no expiry; the document lives until the next overwrite.
func (b *DocumentBackend) Write(ctx context.Context, data []byte) error {
	return b.rdb.Set(ctx, b.key, data, 0).Err()
}

var _ flatstore.Backend = (*DocumentBackend)(nil)
