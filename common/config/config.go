// Package config defines the configuration structure and loading functions for
// the codec's demo/integration layer. It parses YAML configuration files and
// applies environment variable overrides, the same two-stage approach as the
// rest of the common/ package.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/turtacn/dingocodec/common/constants"
	"github.com/turtacn/dingocodec/common/log"
	"github.com/turtacn/dingocodec/common/types/enum"

	"go.uber.org/zap"
)

// Config is the top-level configuration for the rowstore demo: the codec
// itself is pure and unconfigured, so everything here belongs to the storage
// and logging layers wrapped around it.
type Config struct {
	// Storage holds the badger RowStore's on-disk location.
	Storage StorageConfig `yaml:"storage"`
	// Log holds the logger's level and optional file output.
	Log LogConfig `yaml:"log"`
}

// StorageConfig configures the badger-backed RowStore.
type StorageConfig struct {
	// DataPath is the directory badger opens as its data directory.
	DataPath string `yaml:"dataPath"`
	// SyncWrites enables synchronous writes for durability at the cost of
	// throughput; off by default, matching badger's own default.
	SyncWrites bool `yaml:"syncWrites"`
}

// LogConfig configures common/log's global logger.
type LogConfig struct {
	// Level is the minimum logging level (DEBUG, INFO, WARN, ERROR, FATAL).
	Level string `yaml:"level"`
	// FilePath is the path to the log file. If empty, logs go to stdout only.
	FilePath string `yaml:"filePath"`
}

var (
	globalConfig *Config
	configOnce   sync.Once
)

// LoadConfig initializes and loads the global configuration exactly once: it
// applies defaults, then overrides them from configPath if non-empty, then
// overrides again from environment variables, and finally resolves paths to
// absolute form. Subsequent calls are no-ops; use GetConfig to read the
// result.
func LoadConfig(configPath string) error {
	var err error
	configOnce.Do(func() {
		cfg := &Config{}
		cfg.applyDefaults()

		if configPath != "" {
			if _, statErr := os.Stat(configPath); os.IsNotExist(statErr) {
				log.GetLogger().Info("config file not found, using defaults and environment variables", zap.String("path", configPath))
			} else if statErr != nil {
				err = fmt.Errorf("stat config path %s: %w", configPath, statErr)
				return
			} else {
				fileContent, readErr := os.ReadFile(configPath)
				if readErr != nil {
					err = fmt.Errorf("read config file %s: %w", configPath, readErr)
					return
				}
				if unmarshalErr := yaml.Unmarshal(fileContent, cfg); unmarshalErr != nil {
					err = fmt.Errorf("unmarshal config file %s: %w", configPath, unmarshalErr)
					return
				}
				log.GetLogger().Info("config loaded from file", zap.String("path", configPath))
			}
		}

		cfg.overrideWithEnv()
		cfg.sanitizePaths()
		globalConfig = cfg
	})
	return err
}

// GetConfig returns the global configuration. Call LoadConfig first; if it
// was never called, this returns a zero-value-defaulted config rather than
// nil, so callers never need a nil check.
func GetConfig() *Config {
	if globalConfig == nil {
		cfg := &Config{}
		cfg.applyDefaults()
		cfg.sanitizePaths()
		return cfg
	}
	return globalConfig
}

func (c *Config) applyDefaults() {
	c.Storage.DataPath = constants.DefaultBadgerDataPath
	c.Storage.SyncWrites = false

	c.Log.Level = constants.DefaultLogLevel
	c.Log.FilePath = constants.DefaultLogFilePath
}

// overrideWithEnv overrides configuration values with environment variables,
// named DINGOCODEC_SECTION_FIELD.
func (c *Config) overrideWithEnv() {
	if val := os.Getenv("DINGOCODEC_STORAGE_DATAPATH"); val != "" {
		c.Storage.DataPath = val
	}
	if val := os.Getenv("DINGOCODEC_LOG_LEVEL"); val != "" {
		if _, parseErr := enum.ParseLogLevel(strings.ToUpper(val)); parseErr == nil {
			c.Log.Level = strings.ToUpper(val)
		} else {
			log.GetLogger().Warn("invalid DINGOCODEC_LOG_LEVEL", zap.String("value", val))
		}
	}
	if val := os.Getenv("DINGOCODEC_LOG_FILEPATH"); val != "" {
		c.Log.FilePath = val
	}
}

// sanitizePaths makes configured paths absolute and creates their parent
// directories so the storage and log layers never need to handle ENOENT on
// startup.
func (c *Config) sanitizePaths() {
	c.Storage.DataPath = expandPath(c.Storage.DataPath)
	if err := os.MkdirAll(c.Storage.DataPath, 0o755); err != nil {
		log.GetLogger().Error("failed to create badger data directory", zap.String("path", c.Storage.DataPath), zap.Error(err))
	}

	if c.Log.FilePath != "" {
		c.Log.FilePath = expandPath(c.Log.FilePath)
		logDir := filepath.Dir(c.Log.FilePath)
		if err := os.MkdirAll(logDir, 0o755); err != nil {
			log.GetLogger().Error("failed to create log directory", zap.String("path", logDir), zap.Error(err))
		}
	}
}

// expandPath expands a leading ~ to the user's home directory and makes the
// result absolute.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~") {
		if homeDir, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(homeDir, path[1:])
		}
	}
	if absPath, err := filepath.Abs(path); err == nil {
		return absPath
	}
	return path
}

// ValidateConfig performs semantic validation beyond what YAML unmarshaling
// can catch: a malformed log level or an unwritable data directory.
func ValidateConfig() error {
	cfg := GetConfig()

	if _, err := enum.ParseLogLevel(cfg.Log.Level); err != nil {
		return fmt.Errorf("validate config: %w", err)
	}

	testFile := filepath.Join(cfg.Storage.DataPath, ".write_test")
	if writeErr := os.WriteFile(testFile, []byte("ok"), 0o644); writeErr != nil {
		return fmt.Errorf("storage data path %s is not writable: %w", cfg.Storage.DataPath, writeErr)
	}
	os.Remove(testFile)
	return nil
}
