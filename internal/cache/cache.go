// Package cache provides a small keyed byte cache behind pluggable
// backends (in-process memory or Redis). It backs the discover-feed
// snapshot store.
package cache

import (
	"context"
	"errors"
	"time"
)

// ErrCacheMiss is returned when a key is absent or expired.
var ErrCacheMiss = errors.New("cache: key not found")

// Cache is the backend contract shared by the memory and Redis implementations.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
	Close() error
}

// Config holds cache service configuration.
type Config struct {
	Prefix     string
	DefaultTTL time.Duration
}
