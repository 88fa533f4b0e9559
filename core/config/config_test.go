package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "file", cfg.Settings.Backend)
	assert.Equal(t, "config.yml", cfg.Settings.File)
	assert.Equal(t, "stacker_settings", cfg.Settings.Table)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, 3306, cfg.Database.Port)
	assert.Equal(t, "potion-stacker", cfg.Storage.Bucket)
	assert.False(t, cfg.Storage.UseSSL)
}

func TestLoadConfig_Environment(t *testing.T) {
	t.Setenv("SETTINGS_BACKEND", "database")
	t.Setenv("DATABASE_DRIVER", "sqlite")
	t.Setenv("LOG_FORMAT", "json")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "database", cfg.Settings.Backend)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoadConfig_DotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("SETTINGS_FILE=plugins/stacker.yml\n"), 0o644))
	t.Cleanup(func() { os.Unsetenv("SETTINGS_FILE") })

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, "plugins/stacker.yml", cfg.Settings.File)
}

func TestLoadConfig_InvalidBackend(t *testing.T) {
	t.Setenv("SETTINGS_BACKEND", "redis")

	_, err := LoadConfig(t.TempDir())
	assert.ErrorContains(t, err, "unsupported settings backend")
}
