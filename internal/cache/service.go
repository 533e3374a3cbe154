package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

// Service wraps a Cache backend with key prefixing, a default TTL, and
// JSON (de)serialization of stored values.
type Service struct {
	cache  Cache
	config Config
}

// NewService creates the cache service. A nil cache yields a disabled
// service whose operations report misses.
func NewService(cache Cache, config Config) *Service {
	if config.DefaultTTL <= 0 {
		config.DefaultTTL = time.Hour
	}
	return &Service{cache: cache, config: config}
}

// IsEnabled reports whether a backend is configured.
func (s *Service) IsEnabled() bool {
	return s != nil && s.cache != nil
}

// GetCached loads the value stored under key into target.
func (s *Service) GetCached(ctx context.Context, key string, target interface{}) error {
	if !s.IsEnabled() {
		return ErrCacheMiss
	}

	data, err := s.cache.Get(ctx, s.buildKey(key))
	if err != nil {
		return err
	}

	if err := json.Unmarshal(data, target); err != nil {
		return fmt.Errorf("unmarshal cached value: %w", err)
	}
	return nil
}

// CacheData stores data under key. An optional ttl overrides the default.
func (s *Service) CacheData(ctx context.Context, key string, data interface{}, ttl ...time.Duration) error {
	if !s.IsEnabled() {
		return nil
	}

	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("marshal value for cache: %w", err)
	}

	effectiveTTL := s.config.DefaultTTL
	if len(ttl) > 0 && ttl[0] > 0 {
		effectiveTTL = ttl[0]
	}

	return s.cache.Set(ctx, s.buildKey(key), raw, effectiveTTL)
}

// InvalidateKey removes a single key.
func (s *Service) InvalidateKey(ctx context.Context, key string) error {
	if !s.IsEnabled() {
		return nil
	}
	return s.cache.Delete(ctx, s.buildKey(key))
}

// Close releases the backend.
func (s *Service) Close() error {
	if !s.IsEnabled() {
		return nil
	}
	return s.cache.Close()
}

func (s *Service) buildKey(key string) string {
	return s.config.Prefix + key
}
