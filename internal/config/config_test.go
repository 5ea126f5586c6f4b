package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("Reads the file", func(t *testing.T) {
		// Given: a config file with custom values
		path := filepath.Join(t.TempDir(), "config.yml")
		content := []byte(`log-level: debug
http-port: "8080"
redis:
  enabled: false
  host: cache
  port: "6380"
  ttl: 1h
search:
  ordering: fixed
  seed: 5
  memo: false
`)
		require.NoError(t, os.WriteFile(path, content, 0o600))

		// When: loading it
		conf, err := Load(path)

		// Then: the values are taken from the file
		require.NoError(t, err)
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, "8080", conf.HTTPPort)
		assert.Equal(t, "9091", conf.SocketPort)
		assert.False(t, conf.Redis.Enabled)
		assert.Equal(t, "cache:6380", conf.Redis.GetRedisAddr())
		assert.Equal(t, time.Hour, conf.Redis.TTL)
		assert.Equal(t, "fixed", conf.Search.Ordering)
		assert.Equal(t, int64(5), conf.Search.Seed)
		assert.False(t, conf.Search.Memo)
	})

	t.Run("Defaults from the environment", func(t *testing.T) {
		t.Setenv("SEARCH_ORDERING", "reverse")

		conf, err := Load("")

		require.NoError(t, err)
		assert.Equal(t, "info", conf.LogLevel)
		assert.Equal(t, "localhost:6379", conf.Redis.GetRedisAddr())
		assert.Equal(t, 24*time.Hour, conf.Redis.TTL)
		assert.Equal(t, "reverse", conf.Search.Ordering)
		assert.False(t, conf.Redis.Enabled)
		assert.False(t, conf.Search.Memo)
	})

	t.Run("Missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
		require.Error(t, err)
	})

	t.Run("MustLoad panics", func(t *testing.T) {
		assert.Panics(t, func() {
			MustLoad(filepath.Join(t.TempDir(), "missing.yml"))
		})
	})
}
