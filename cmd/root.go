package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

func Execute(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	app, err := wireApp()
	return buildRootCmd(app, err)
}

func buildRootCmd(app *app, wireErr error) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "lapwatch",
		Short:         "Terminal stopwatch with laps",
		Long:          "lapwatch is a millisecond stopwatch for the terminal: start, pause, record lap splits, and export the session to a file.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	if wireErr != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return wireErr
		}
		return rootCmd
	}

	runCmd := newRunCmd(app)
	rootCmd.RunE = runCmd.RunE

	rootCmd.AddCommand(
		newVersionCmd(),
		runCmd,
		newFormatCmd(),
		newThemeCmd(app),
		newKeysCmd(),
		newShowCmd(app),
	)

	return rootCmd
}
