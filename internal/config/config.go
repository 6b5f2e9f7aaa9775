package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	configName = "config"
	configType = "toml"
	configDir  = ".lapwatch"
	envPrefix  = "LAPWATCH"

	KeyPreferencesPath = "preferences.path"
	KeyExportDir       = "export.dir"
	KeyExportFormat    = "export.format"
	KeyTickInterval    = "tick.interval"
	KeyLogLevel        = "log.level"

	defaultExportFormat = "json"
	defaultLogLevel     = "warn"
	minTickInterval     = time.Millisecond
)

type Config struct {
	PreferencesPath string
	ExportDir       string
	ExportFormat    string
	TickInterval    time.Duration
	LogLevel        slog.Level
}

// Load resolves configuration from defaults, ~/.lapwatch/config.toml and
// LAPWATCH_* environment variables, in increasing precedence. Values already
// Set on cfg win over all of them.
func Load(cfg *viper.Viper) (Config, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return Config{}, fmt.Errorf("resolve home directory: %w", err)
	}
	baseDir := filepath.Join(homeDir, configDir)

	cfg.SetConfigName(configName)
	cfg.SetConfigType(configType)
	cfg.AddConfigPath(baseDir)
	cfg.SetDefault(KeyPreferencesPath, filepath.Join(baseDir, "preferences.toml"))
	cfg.SetDefault(KeyExportDir, filepath.Join(baseDir, "exports"))
	cfg.SetDefault(KeyExportFormat, defaultExportFormat)
	cfg.SetDefault(KeyTickInterval, "10ms")
	cfg.SetDefault(KeyLogLevel, defaultLogLevel)

	cfg.SetEnvPrefix(envPrefix)
	cfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	cfg.AutomaticEnv()

	err = cfg.ReadInConfig()
	if err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	preferencesPath, err := normalizePath(cfg.GetString(KeyPreferencesPath), "preferences path")
	if err != nil {
		return Config{}, err
	}

	exportDir, err := normalizePath(cfg.GetString(KeyExportDir), "export directory")
	if err != nil {
		return Config{}, err
	}

	tickInterval := cfg.GetDuration(KeyTickInterval)
	if tickInterval < minTickInterval {
		return Config{}, fmt.Errorf("tick interval %q must be at least %s", cfg.GetString(KeyTickInterval), minTickInterval)
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.GetString(KeyLogLevel))); err != nil {
		return Config{}, fmt.Errorf("parse log level: %w", err)
	}

	return Config{
		PreferencesPath: preferencesPath,
		ExportDir:       exportDir,
		ExportFormat:    strings.ToLower(strings.TrimSpace(cfg.GetString(KeyExportFormat))),
		TickInterval:    tickInterval,
		LogLevel:        level,
	}, nil
}

func normalizePath(path, what string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return "", fmt.Errorf("%s is empty", what)
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", what, err)
	}

	return filepath.Clean(absPath), nil
}
