package display

import (
	"github.com/bnema/lapwatch/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

type palette struct {
	text    lipgloss.Color
	muted   lipgloss.Color
	accent  lipgloss.Color
	running lipgloss.Color
	paused  lipgloss.Color
	warning lipgloss.Color
	border  lipgloss.Color
}

var palettes = map[domain.Theme]palette{
	domain.ThemeLight: {
		text:    lipgloss.Color("235"),
		muted:   lipgloss.Color("245"),
		accent:  lipgloss.Color("25"),
		running: lipgloss.Color("28"),
		paused:  lipgloss.Color("130"),
		warning: lipgloss.Color("160"),
		border:  lipgloss.Color("250"),
	},
	domain.ThemeDark: {
		text:    lipgloss.Color("252"),
		muted:   lipgloss.Color("243"),
		accent:  lipgloss.Color("39"),
		running: lipgloss.Color("84"),
		paused:  lipgloss.Color("214"),
		warning: lipgloss.Color("203"),
		border:  lipgloss.Color("238"),
	},
}

type styles struct {
	frame         lipgloss.Style
	title         lipgloss.Style
	statusIdle    lipgloss.Style
	statusRunning lipgloss.Style
	statusPaused  lipgloss.Style
	clock         lipgloss.Style
	clockRunning  lipgloss.Style
	millis        lipgloss.Style
	section       lipgloss.Style
	lapNumber     lipgloss.Style
	lapSplit      lipgloss.Style
	lapTime       lipgloss.Style
	metrics       lipgloss.Style
	empty         lipgloss.Style
	notice        lipgloss.Style
	warning       lipgloss.Style
}

func newStyles(theme domain.Theme) styles {
	p, ok := palettes[theme]
	if !ok {
		p = palettes[domain.DefaultTheme]
	}

	return styles{
		frame:         lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(p.border).Padding(0, 2),
		title:         lipgloss.NewStyle().Bold(true).Foreground(p.accent),
		statusIdle:    lipgloss.NewStyle().Foreground(p.muted),
		statusRunning: lipgloss.NewStyle().Bold(true).Foreground(p.running),
		statusPaused:  lipgloss.NewStyle().Bold(true).Foreground(p.paused),
		clock:         lipgloss.NewStyle().Bold(true).Foreground(p.text),
		clockRunning:  lipgloss.NewStyle().Bold(true).Foreground(p.running),
		millis:        lipgloss.NewStyle().Foreground(p.muted),
		section:       lipgloss.NewStyle().MarginTop(1).Bold(true).Foreground(p.text),
		lapNumber:     lipgloss.NewStyle().Foreground(p.muted),
		lapSplit:      lipgloss.NewStyle().Foreground(p.accent),
		lapTime:       lipgloss.NewStyle().Foreground(p.text),
		metrics:       lipgloss.NewStyle().MarginTop(1).Foreground(p.muted),
		empty:         lipgloss.NewStyle().Faint(true),
		notice:        lipgloss.NewStyle().Foreground(p.accent),
		warning:       lipgloss.NewStyle().Bold(true).Foreground(p.warning),
	}
}

func (s styles) status(state domain.RunState) lipgloss.Style {
	switch state {
	case domain.RunStateRunning:
		return s.statusRunning
	case domain.RunStatePaused:
		return s.statusPaused
	default:
		return s.statusIdle
	}
}
