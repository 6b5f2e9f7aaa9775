package cmd

import (
	"fmt"

	"github.com/bnema/lapwatch/internal/adapters/export/file"
	"github.com/bnema/lapwatch/internal/adapters/render/display"
	"github.com/spf13/cobra"
)

func newShowCmd(app *app) *cobra.Command {
	var maxLaps int

	cmd := &cobra.Command{
		Use:   "show <export-file>",
		Short: "Render a previously exported session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := file.Load(args[0])
			if err != nil {
				return fmt.Errorf("load export: %w", err)
			}

			theme := doc.Theme
			if !theme.Valid() {
				theme, err = app.preferences.Theme(cmd.Context())
				if err != nil {
					return err
				}
			}

			rendered, err := app.renderDocument(doc, display.RenderOptions{Theme: theme, MaxLaps: maxLaps})
			if err != nil {
				return fmt.Errorf("render export: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return err
		},
	}

	cmd.Flags().IntVar(&maxLaps, "max-laps", 0, "Number of recent laps to show (0 shows all)")

	return cmd
}
