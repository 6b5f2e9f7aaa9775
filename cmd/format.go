package cmd

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/bnema/lapwatch/internal/domain"
	"github.com/spf13/cobra"
)

type formattedDuration struct {
	Milliseconds int64  `json:"ms"`
	Hours        string `json:"hours"`
	Minutes      string `json:"minutes"`
	Seconds      string `json:"seconds"`
	Millis       string `json:"milliseconds"`
	Formatted    string `json:"formatted"`
}

func newFormatCmd() *cobra.Command {
	var (
		asJSON bool
		split  bool
	)

	cmd := &cobra.Command{
		Use:   "format <milliseconds>...",
		Short: "Format millisecond durations the way the stopwatch shows them",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			results := make([]formattedDuration, 0, len(args))
			for _, arg := range args {
				result, err := formatArg(arg, split)
				if err != nil {
					return err
				}
				results = append(results, result)
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(results)
			}

			for _, result := range results {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), result.Formatted); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output JSON")
	cmd.Flags().BoolVar(&split, "split", false, "Format as a lap split (+ prefix)")

	return cmd
}

func formatArg(arg string, split bool) (formattedDuration, error) {
	ms, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return formattedDuration{}, fmt.Errorf("parse milliseconds %q: %w", arg, err)
	}

	components, err := domain.Decompose(ms)
	if err != nil {
		return formattedDuration{}, err
	}

	format := domain.Format
	if split {
		format = domain.FormatSplit
	}
	formatted, err := format(ms)
	if err != nil {
		return formattedDuration{}, err
	}

	fields := components.Fields()
	return formattedDuration{
		Milliseconds: ms,
		Hours:        fields.Hours,
		Minutes:      fields.Minutes,
		Seconds:      fields.Seconds,
		Millis:       fields.Milliseconds,
		Formatted:    formatted,
	}, nil
}
