package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	t.Setenv(configPathEnv, "")
	t.Setenv(dbPathEnv, "")
	t.Setenv(barWidthEnv, "")
	t.Setenv(asOfEnv, "")
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg := Load()
	assert.Contains(t, cfg.DBPath, "twinsight.db")
	assert.Equal(t, defaultBarWidth, cfg.BarWidth)
	assert.Empty(t, cfg.DefaultAsOf)
}

func TestLoad_YAMLFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("db_path: /tmp/site.db\nbar_width: 60\ndefault_as_of: \"2026-03-08\"\n"), 0644))
	t.Setenv(configPathEnv, path)

	cfg := Load()
	assert.Equal(t, "/tmp/site.db", cfg.DBPath)
	assert.Equal(t, 60, cfg.BarWidth)
	assert.Equal(t, "2026-03-08", cfg.DefaultAsOf)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("db_path: /tmp/site.db\nbar_width: 60\n"), 0644))
	t.Setenv(configPathEnv, path)
	t.Setenv(dbPathEnv, "/tmp/override.db")
	t.Setenv(barWidthEnv, "80")
	t.Setenv(asOfEnv, "2026-04-01")

	cfg := Load()
	assert.Equal(t, "/tmp/override.db", cfg.DBPath)
	assert.Equal(t, 80, cfg.BarWidth)
	assert.Equal(t, "2026-04-01", cfg.DefaultAsOf)
}

func TestLoad_UnreadableFileFallsBack(t *testing.T) {
	clearEnv(t)
	t.Setenv(configPathEnv, filepath.Join(t.TempDir(), "missing.yaml"))

	cfg := Load()
	assert.Equal(t, defaultBarWidth, cfg.BarWidth)
}

func TestLoad_InvalidBarWidthIgnored(t *testing.T) {
	clearEnv(t)
	t.Setenv(barWidthEnv, "-3")

	cfg := Load()
	assert.Equal(t, defaultBarWidth, cfg.BarWidth)
}
