package display

import (
	"io"

	"github.com/bnema/lapwatch/internal/domain"
	tea "github.com/charmbracelet/bubbletea"
)

type RenderOptions struct {
	Theme   domain.Theme
	MaxLaps int
}

type renderReadyMsg struct{}

type renderModel struct {
	data   viewData
	styles styles
	output string
}

func (m renderModel) Init() tea.Cmd {
	return func() tea.Msg {
		return renderReadyMsg{}
	}
}

func (m renderModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg.(type) {
	case renderReadyMsg:
		m.output = renderView(m.data, m.styles)
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m renderModel) View() string {
	return m.output
}

// RenderDocument renders an exported session as a static frame.
func RenderDocument(doc domain.ExportDocument, opts RenderOptions) (string, error) {
	maxLaps := opts.MaxLaps
	if maxLaps <= 0 {
		maxLaps = len(doc.LapTimes)
	}

	status := "Exported"
	if !doc.ExportDate.IsZero() {
		status += " " + doc.ExportDate.UTC().Format("2006-01-02 15:04:05 UTC")
	}

	data := viewData{
		title:     defaultTitle,
		state:     domain.RunStatePaused,
		status:    status,
		elapsedMs: doc.TotalTime,
		laps:      doc.LapTimes,
		metrics:   doc.Metrics,
		maxLaps:   maxLaps,
	}

	p := tea.NewProgram(
		renderModel{data: data, styles: newStyles(opts.Theme)},
		tea.WithInput(nil),
		tea.WithOutput(io.Discard),
	)

	finalModel, err := p.Run()
	if err != nil {
		return "", err
	}

	rendered, ok := finalModel.(renderModel)
	if !ok {
		return "", ErrUnexpectedRenderModel
	}

	return rendered.View(), nil
}
