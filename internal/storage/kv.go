// Package storage is the durable key/value layer: one JSON blob per key
// (users, services, favorites), with file, redis, and in-memory backends.
package storage

import (
	"context"
	"errors"
)

const (
	KeyUsers     = "users"
	KeyServices  = "services"
	KeyFavorites = "favorites"
)

var ErrKeyNotFound = errors.New("key tidak ditemukan")

type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
