package cmd

import (
	"fmt"

	"github.com/bnema/lapwatch/internal/adapters/render/display"
	"github.com/spf13/cobra"
)

func newRunCmd(app *app) *cobra.Command {
	var (
		tick       = app.cfg.TickInterval
		maxLaps    int
		fullscreen bool
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Start the interactive stopwatch",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if tick <= 0 {
				return fmt.Errorf("--tick must be positive, got %s", tick)
			}

			theme, err := app.preferences.Theme(cmd.Context())
			if err != nil {
				return err
			}

			engine := app.newEngine(tick)
			defer engine.Close()

			app.logger.Debug("starting stopwatch", "tick", tick, "theme", theme)

			return app.runDisplay(cmd.Context(), engine, app.preferences, app.exporter, display.Options{
				Theme:      theme,
				MaxLaps:    maxLaps,
				Fullscreen: display.NewAltScreen(fullscreen),
			}, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	cmd.Flags().DurationVar(&tick, "tick", tick, "Display refresh interval")
	cmd.Flags().IntVar(&maxLaps, "max-laps", 0, "Number of recent laps to show (0 shows the default)")
	cmd.Flags().BoolVarP(&fullscreen, "fullscreen", "f", false, "Start in the alternate screen")

	return cmd
}
