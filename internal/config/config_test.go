package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, ".lapwatch", "preferences.toml"), cfg.PreferencesPath)
	assert.Equal(t, filepath.Join(home, ".lapwatch", "exports"), cfg.ExportDir)
	assert.Equal(t, "json", cfg.ExportFormat)
	assert.Equal(t, 10*time.Millisecond, cfg.TickInterval)
	assert.Equal(t, slog.LevelWarn, cfg.LogLevel)
}

func TestLoadReadsConfigFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	require.NoError(t, os.MkdirAll(filepath.Join(home, ".lapwatch"), 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(home, ".lapwatch", "config.toml"), []byte(`
[export]
format = "TOML"
dir = "/tmp/laps"

[tick]
interval = "25ms"

[log]
level = "debug"
`), 0o600))

	cfg, err := Load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "toml", cfg.ExportFormat)
	assert.Equal(t, "/tmp/laps", cfg.ExportDir)
	assert.Equal(t, 25*time.Millisecond, cfg.TickInterval)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
}

func TestLoadEnvironmentOverridesFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("LAPWATCH_EXPORT_FORMAT", "toml")
	t.Setenv("LAPWATCH_TICK_INTERVAL", "50ms")

	cfg, err := Load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "toml", cfg.ExportFormat)
	assert.Equal(t, 50*time.Millisecond, cfg.TickInterval)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		value   string
		wantErr string
	}{
		{name: "tick too fast", key: KeyTickInterval, value: "10us", wantErr: "tick interval"},
		{name: "tick garbage", key: KeyTickInterval, value: "soon", wantErr: "tick interval"},
		{name: "log level", key: KeyLogLevel, value: "chatty", wantErr: "parse log level"},
		{name: "empty preferences path", key: KeyPreferencesPath, value: " ", wantErr: "preferences path is empty"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("HOME", t.TempDir())
			cfg := viper.New()
			cfg.Set(tt.key, tt.value)

			_, err := Load(cfg)
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}
