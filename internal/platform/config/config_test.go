package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validEnv() map[string]string {
	return map[string]string{
		"JWT_PUBLIC_KEY":  "test-public-key",
		"JWT_PRIVATE_KEY": "test-private-key",
	}
}

func TestLoadFromMap_Defaults(t *testing.T) {
	cfg, err := LoadFromMap(validEnv())
	require.NoError(t, err)

	assert.Equal(t, "localhost", cfg.Server.Host)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "stablio", cfg.Database.Postgres.Database)
	assert.Equal(t, 9, cfg.App.PageSize)
	assert.Equal(t, 200, cfg.App.DiscoverSnapshotLimit)
	assert.Equal(t, "memory", cfg.Cache.Backend)
	assert.Equal(t, 1*time.Hour, cfg.Cache.TTL)
	assert.True(t, cfg.RateLimits.Login.Enabled)
	assert.Equal(t, 5, cfg.RateLimits.Login.Max)
	assert.Equal(t, 20, cfg.RateLimits.Submission.Max)
	assert.Equal(t, 10, cfg.RateLimits.Feedback.Max)
}

func TestLoadFromMap_Overrides(t *testing.T) {
	env := validEnv()
	env["SERVER_PORT"] = "9090"
	env["CATALOG_PAGE_SIZE"] = "12"
	env["DISCOVER_SNAPSHOT_LIMIT"] = "50"
	env["CACHE_BACKEND"] = "redis"
	env["REDIS_ADDRESS"] = "redis.internal:6380"
	env["RATE_LIMIT_LOGIN_DURATION"] = "30m"
	env["RATE_LIMIT_SUBMISSION_ENABLED"] = "false"

	cfg, err := LoadFromMap(env)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 12, cfg.App.PageSize)
	assert.Equal(t, 50, cfg.App.DiscoverSnapshotLimit)
	assert.Equal(t, "redis", cfg.Cache.Backend)
	assert.Equal(t, "redis.internal:6380", cfg.Cache.Redis.Address)
	assert.Equal(t, 30*time.Minute, cfg.RateLimits.Login.Duration)
	assert.False(t, cfg.RateLimits.Submission.Enabled)
}

func TestLoadFromMap_MissingKeys(t *testing.T) {
	t.Run("missing private key", func(t *testing.T) {
		_, err := LoadFromMap(map[string]string{"JWT_PUBLIC_KEY": "pub"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "JWT_PRIVATE_KEY")
	})

	t.Run("missing public key", func(t *testing.T) {
		_, err := LoadFromMap(map[string]string{"JWT_PRIVATE_KEY": "priv"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "JWT_PUBLIC_KEY")
	})
}

func TestValidate(t *testing.T) {
	t.Run("rejects invalid cache backend", func(t *testing.T) {
		env := validEnv()
		env["CACHE_BACKEND"] = "memcached"
		_, err := LoadFromMap(env)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "CACHE_BACKEND")
	})

	t.Run("rejects snapshot smaller than one page", func(t *testing.T) {
		env := validEnv()
		env["DISCOVER_SNAPSHOT_LIMIT"] = "3"
		_, err := LoadFromMap(env)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "DISCOVER_SNAPSHOT_LIMIT")
	})

	t.Run("rejects non-positive page size", func(t *testing.T) {
		env := validEnv()
		env["CATALOG_PAGE_SIZE"] = "0"
		_, err := LoadFromMap(env)
		require.Error(t, err)
	})
}
