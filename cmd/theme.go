package cmd

import (
	"fmt"

	"github.com/bnema/lapwatch/internal/domain"
	"github.com/spf13/cobra"
)

func newThemeCmd(app *app) *cobra.Command {
	show := &cobra.Command{
		Use:   "show",
		Short: "Print the saved theme",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			theme, err := app.preferences.Theme(cmd.Context())
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), theme)
			return err
		},
	}

	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Show or change the display theme",
		Args:  cobra.NoArgs,
		RunE:  show.RunE,
	}

	cmd.AddCommand(
		show,
		&cobra.Command{
			Use:   "toggle",
			Short: "Switch between light and dark",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				theme, err := app.preferences.ToggleTheme(cmd.Context())
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), theme)
				return err
			},
		},
		&cobra.Command{
			Use:       "set <light|dark>",
			Short:     "Save a theme",
			Args:      cobra.ExactArgs(1),
			ValidArgs: []string{string(domain.ThemeLight), string(domain.ThemeDark)},
			RunE: func(cmd *cobra.Command, args []string) error {
				theme, err := domain.ParseTheme(args[0])
				if err != nil {
					return err
				}
				if err := app.preferences.SetTheme(cmd.Context(), theme); err != nil {
					return err
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), theme)
				return err
			},
		},
	)

	return cmd
}
