package display

import (
	"context"
	"errors"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
)

var ErrUnexpectedRenderModel = errors.New("unexpected final bubbletea model type")

// Run drives the interactive display until the user quits or ctx ends.
func Run(ctx context.Context, stopwatch Stopwatch, themes ThemeSwitcher, exporter Exporter, opts Options, in io.Reader, out io.Writer) error {
	m := newModel(ctx, stopwatch, themes, exporter, opts)
	unsubscribe := stopwatch.Subscribe(m.feed.push)
	defer unsubscribe()

	programOptions := []tea.ProgramOption{
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
	}
	if m.fullscreen.Active() {
		programOptions = append(programOptions, tea.WithAltScreen())
	}

	finalModel, err := tea.NewProgram(m, programOptions...).Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("run display: %w", err)
	}

	if _, ok := finalModel.(model); !ok {
		return ErrUnexpectedRenderModel
	}

	return nil
}
