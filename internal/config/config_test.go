package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("Reads the yaml file", func(t *testing.T) {
		// Given: a config file with redis enabled
		path := filepath.Join(t.TempDir(), "config.yml")
		content := "log-level: debug\nsession: brave-otter\nredis:\n  enabled: true\n  host: cache\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		// When: the config is loaded
		conf, err := Load(path)
		require.NoError(t, err)

		// Then: file values and defaults are combined
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, "brave-otter", conf.Session)
		assert.True(t, conf.Redis.Enabled)
		assert.Equal(t, "cache:6379", conf.Redis.GetRedisAddr())
		assert.Equal(t, "tictactoe", conf.Redis.ChannelPrefix)
		assert.True(t, conf.Console.Color)
	})

	t.Run("Falls back to environment without a file", func(t *testing.T) {
		// Given: no config file and an env override
		t.Setenv("TTT_LOG_LEVEL", "warn")

		// When: the config is loaded
		conf, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
		require.NoError(t, err)

		// Then: env and defaults are applied
		assert.Equal(t, "warn", conf.LogLevel)
		assert.False(t, conf.Redis.Enabled)
		assert.Equal(t, "localhost:6379", conf.Redis.GetRedisAddr())
	})

	t.Run("MustLoad panics on a broken file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yml")
		require.NoError(t, os.WriteFile(path, []byte("redis: [\n"), 0o600))

		assert.Panics(t, func() {
			MustLoad(path)
		})
	})
}
