package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeAndLoad(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("CVADMIN_CONFIG", dir)

	cfg, err := Initialize("https://hr.example.com")
	require.NoError(t, err)
	assert.Equal(t, "https://hr.example.com", cfg.BaseURL)
	assert.Equal(t, 10, cfg.DefaultPageSize)
	assert.Equal(t, "info", cfg.LogLevel)

	loaded, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "https://hr.example.com", loaded.BaseURL)
	assert.Equal(t, dir, loaded.Path())
	assert.Equal(t, filepath.Join(dir, SessionFile), loaded.SessionPath())
	assert.Equal(t, filepath.Join(dir, JournalFile), loaded.JournalPath())
}

func TestInitialize_RefusesSecondRun(t *testing.T) {
	t.Setenv("CVADMIN_CONFIG", t.TempDir())

	_, err := Initialize("https://hr.example.com")
	require.NoError(t, err)

	_, err = Initialize("https://other.example.com")
	assert.ErrorContains(t, err, "already configured")
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("CVADMIN_CONFIG", t.TempDir())
	_, err := Initialize("https://hr.example.com")
	require.NoError(t, err)

	t.Setenv("CVADMIN_BASE_URL", "https://staging.example.com")
	t.Setenv("CVADMIN_LOG_LEVEL", "debug")
	t.Setenv("CVADMIN_PAGE_SIZE", "25")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "https://staging.example.com", cfg.BaseURL)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 25, cfg.DefaultPageSize)
}

func TestLoad_InvalidPageSizeIgnored(t *testing.T) {
	t.Setenv("CVADMIN_CONFIG", t.TempDir())
	_, err := Initialize("https://hr.example.com")
	require.NoError(t, err)

	t.Setenv("CVADMIN_PAGE_SIZE", "not-a-number")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.DefaultPageSize)
}

func TestLoad_MissingConfig(t *testing.T) {
	t.Setenv("CVADMIN_CONFIG", t.TempDir())

	_, err := Load()
	assert.ErrorContains(t, err, "cvadmin init")
}

func TestLoad_EmptyBaseURL(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("CVADMIN_CONFIG", dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFile), []byte("base_url = \"\"\n"), 0644))

	_, err := Load()
	assert.ErrorContains(t, err, "base_url")
}
