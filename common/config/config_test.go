package config

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.applyDefaults()

	assert.Equal(t, "./data/badger", cfg.Storage.DataPath)
	assert.False(t, cfg.Storage.SyncWrites)
	assert.Equal(t, "INFO", cfg.Log.Level)
	assert.Equal(t, "./logs/dingocodec.log", cfg.Log.FilePath)
}

func TestOverrideWithEnv(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("DINGOCODEC_STORAGE_DATAPATH", filepath.Join(dir, "custom-data"))
	t.Setenv("DINGOCODEC_LOG_LEVEL", "debug")
	t.Setenv("DINGOCODEC_LOG_FILEPATH", filepath.Join(dir, "custom.log"))

	cfg := &Config{}
	cfg.applyDefaults()
	cfg.overrideWithEnv()

	assert.Equal(t, filepath.Join(dir, "custom-data"), cfg.Storage.DataPath)
	assert.Equal(t, "DEBUG", cfg.Log.Level)
	assert.Equal(t, filepath.Join(dir, "custom.log"), cfg.Log.FilePath)
}

func TestOverrideWithEnvIgnoresInvalidLogLevel(t *testing.T) {
	t.Setenv("DINGOCODEC_LOG_LEVEL", "not-a-level")

	cfg := &Config{}
	cfg.applyDefaults()
	cfg.overrideWithEnv()

	assert.Equal(t, "INFO", cfg.Log.Level)
}

func TestSanitizePathsExpandsAndCreatesDirectories(t *testing.T) {
	dir := t.TempDir()
	cfg := &Config{}
	cfg.Storage.DataPath = filepath.Join(dir, "nested", "badger")
	cfg.Log.FilePath = filepath.Join(dir, "nested", "logs", "out.log")

	cfg.sanitizePaths()

	assert.True(t, filepath.IsAbs(cfg.Storage.DataPath))
	_, err := os.Stat(cfg.Storage.DataPath)
	require.NoError(t, err)
	_, err = os.Stat(filepath.Dir(cfg.Log.FilePath))
	require.NoError(t, err)
}

func TestLoadConfigFromYAMLFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	contents := "storage:\n  dataPath: " + filepath.Join(dir, "yaml-data") + "\n  syncWrites: true\nlog:\n  level: WARN\n"
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

	globalConfig = nil
	configOnce = sync.Once{}

	require.NoError(t, LoadConfig(path))
	cfg := GetConfig()

	assert.True(t, cfg.Storage.SyncWrites)
	assert.Equal(t, "WARN", cfg.Log.Level)
}

func TestGetConfigReturnsDefaultsWithoutLoadConfig(t *testing.T) {
	globalConfig = nil
	cfg := GetConfig()
	assert.Equal(t, "INFO", cfg.Log.Level)
}
