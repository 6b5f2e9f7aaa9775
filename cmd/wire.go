package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/bnema/lapwatch/internal/adapters/export/file"
	"github.com/bnema/lapwatch/internal/adapters/render/display"
	tomlrepo "github.com/bnema/lapwatch/internal/adapters/repo/toml"
	"github.com/bnema/lapwatch/internal/application"
	"github.com/bnema/lapwatch/internal/config"
	"github.com/bnema/lapwatch/internal/domain"
	"github.com/bnema/lapwatch/internal/ports"
	"github.com/spf13/viper"
)

type displayRunner func(ctx context.Context, stopwatch display.Stopwatch, themes display.ThemeSwitcher, exporter display.Exporter, opts display.Options, in io.Reader, out io.Writer) error

type app struct {
	cfg            config.Config
	logger         *slog.Logger
	preferences    *application.PreferenceService
	exporter       *application.ExportService
	newEngine      func(interval time.Duration) *application.Engine
	runDisplay     displayRunner
	renderDocument func(domain.ExportDocument, display.RenderOptions) (string, error)
}

func wireApp() (*app, error) {
	cfg, err := config.Load(viper.New())
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger := newLogger(os.Stderr, cfg.LogLevel)

	preferenceRepo, err := tomlrepo.NewPreferenceRepository(cfg.PreferencesPath)
	if err != nil {
		return nil, fmt.Errorf("wire preference repository: %w", err)
	}

	sink, err := file.NewSink(cfg.ExportDir, cfg.ExportFormat)
	if err != nil {
		return nil, fmt.Errorf("wire export sink: %w", err)
	}

	clock := ports.SystemClock{}

	return &app{
		cfg:         cfg,
		logger:      logger,
		preferences: application.NewPreferenceService(preferenceRepo),
		exporter:    application.NewExportService(sink, clock),
		newEngine: func(interval time.Duration) *application.Engine {
			return application.NewEngine(application.EngineOptions{
				Clock:        clock,
				TickInterval: interval,
				Logger:       logger,
			})
		},
		runDisplay:     display.Run,
		renderDocument: display.RenderDocument,
	}, nil
}

func newLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
