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
	t.Run("missing file yields defaults", func(t *testing.T) {
		cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		require.NoError(t, err)
		assert.Equal(t, DefaultServerURL, cfg.Server.URL)
		assert.Equal(t, DefaultPageSize, cfg.UI.PageSize)
		assert.Equal(t, DefaultLogLevel, cfg.Logging.Level)
	})

	t.Run("file overrides defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		data := []byte("server:\n  url: https://test.local\n  timeout_seconds: 3\nui:\n  page_size: 50\n")
		require.NoError(t, os.WriteFile(path, data, 0600))

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "https://test.local", cfg.Server.URL)
		assert.Equal(t, 3*time.Second, cfg.Server.Timeout())
		assert.Equal(t, 50, cfg.UI.PageSize)
		// Untouched sections keep their defaults.
		assert.Equal(t, DefaultWindowSize, cfg.UI.WindowSize)
	})

	t.Run("malformed file is an error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("server: [not a map"), 0600))

		_, err := Load(path)
		assert.Error(t, err)
	})

	t.Run("env overrides win", func(t *testing.T) {
		t.Setenv("SANCTUM_SERVER_URL", "https://env.local")
		t.Setenv("SANCTUM_PAGE_SIZE", "7")

		cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		require.NoError(t, err)
		assert.Equal(t, "https://env.local", cfg.Server.URL)
		assert.Equal(t, 7, cfg.UI.PageSize)
	})

	t.Run("invalid values normalized", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("ui:\n  page_size: -5\n"), 0600))

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, DefaultPageSize, cfg.UI.PageSize)
	})
}

func TestGlobal(t *testing.T) {
	t.Cleanup(func() { SetGlobal(nil) })

	// Unset global falls back to defaults.
	SetGlobal(nil)
	assert.Equal(t, DefaultServerURL, Global().Server.URL)

	cfg := Defaults()
	cfg.Server.URL = "https://stored.local"
	SetGlobal(cfg)
	assert.Equal(t, "https://stored.local", Global().Server.URL)
}
