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

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "jvm", cfg.Server.DefaultPlatform)
	assert.Equal(t, "facets", cfg.Storage.Bucket)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "mysql", cfg.Database.Driver)
	assert.Equal(t, "projects", cfg.Facet.Prefix)
	assert.Equal(t, 300, cfg.Facet.CacheTTLSeconds)
	assert.Equal(t, "auto", cfg.Facet.PathCase)
	assert.False(t, cfg.Facet.ResolveSymlinks)
}

func TestLoadConfig_EnvFile(t *testing.T) {
	dir := t.TempDir()
	env := "FACET_PREFIX=snapshots\nFACET_RESOLVE_SYMLINKS=true\nDATABASE_DRIVER=sqlite\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(env), 0o600))
	t.Cleanup(func() {
		os.Unsetenv("FACET_PREFIX")
		os.Unsetenv("FACET_RESOLVE_SYMLINKS")
		os.Unsetenv("DATABASE_DRIVER")
	})

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, "snapshots", cfg.Facet.Prefix)
	assert.True(t, cfg.Facet.ResolveSymlinks)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
}

func TestLoadConfig_Env(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("FACET_CACHE_TTL_SECONDS", "0")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Zero(t, cfg.Facet.CacheTTL())
}
