package display

import (
	"context"
	"errors"

	"github.com/bnema/lapwatch/internal/application"
	"github.com/bnema/lapwatch/internal/domain"
	"github.com/bnema/lapwatch/internal/ports"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type Stopwatch interface {
	Toggle() error
	Reset() error
	Lap() error
	ClearLaps() error
	Snapshot() application.Snapshot
	Subscribe(fn func(application.Snapshot)) func()
}

type ThemeSwitcher interface {
	ToggleTheme(ctx context.Context) (domain.Theme, error)
}

type Exporter interface {
	Export(ctx context.Context, snapshot application.Snapshot, theme domain.Theme) (string, error)
}

type Options struct {
	Theme      domain.Theme
	Keys       KeyMap
	MaxLaps    int
	Fullscreen ports.Fullscreen
}

type snapshotMsg application.Snapshot

type themeChangedMsg struct {
	theme domain.Theme
	err   error
}

type exportDoneMsg struct {
	location string
	err      error
}

type model struct {
	ctx        context.Context
	stopwatch  Stopwatch
	themes     ThemeSwitcher
	exporter   Exporter
	feed       *snapshotFeed
	fullscreen ports.Fullscreen
	keys       KeyMap
	help       help.Model
	maxLaps    int

	theme       domain.Theme
	styles      styles
	snapshot    application.Snapshot
	notice      string
	failed      bool
	confirmQuit bool
	quitting    bool
}

func newModel(ctx context.Context, stopwatch Stopwatch, themes ThemeSwitcher, exporter Exporter, opts Options) model {
	if !opts.Theme.Valid() {
		opts.Theme = domain.DefaultTheme
	}
	if opts.Fullscreen == nil {
		opts.Fullscreen = NewAltScreen(false)
	}
	if len(opts.Keys.Quit.Keys()) == 0 {
		opts.Keys = DefaultKeyMap()
	}

	return model{
		ctx:        ctx,
		stopwatch:  stopwatch,
		themes:     themes,
		exporter:   exporter,
		feed:       newSnapshotFeed(),
		fullscreen: opts.Fullscreen,
		keys:       opts.Keys,
		help:       help.New(),
		maxLaps:    opts.MaxLaps,
		theme:      opts.Theme,
		styles:     newStyles(opts.Theme),
		snapshot:   stopwatch.Snapshot(),
	}
}

func (m model) Init() tea.Cmd {
	return m.feed.next(m.ctx)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case snapshotMsg:
		if msg.Version >= m.snapshot.Version {
			m.snapshot = application.Snapshot(msg)
		}
		return m, m.feed.next(m.ctx)
	case themeChangedMsg:
		if msg.err != nil {
			m.setNotice("theme: "+msg.err.Error(), true)
			return m, nil
		}
		m.theme = msg.theme
		m.styles = newStyles(msg.theme)
		m.setNotice("Theme: "+string(msg.theme), false)
		return m, nil
	case exportDoneMsg:
		if msg.err != nil {
			m.setNotice(msg.err.Error(), true)
			return m, nil
		}
		m.setNotice("Exported to "+msg.location, false)
		return m, nil
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	default:
		return m, nil
	}
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		if m.snapshot.State == domain.RunStateRunning && !m.confirmQuit {
			m.confirmQuit = true
			m.setNotice("Stopwatch is running. Press q again to quit.", true)
			return m, nil
		}
		m.quitting = true
		return m, tea.Quit
	}

	if m.confirmQuit {
		m.confirmQuit = false
		m.notice = ""
	}

	switch {
	case key.Matches(msg, m.keys.Toggle):
		m.run(m.stopwatch.Toggle)
	case key.Matches(msg, m.keys.Reset):
		m.run(m.stopwatch.Reset)
	case key.Matches(msg, m.keys.Lap):
		m.run(m.stopwatch.Lap)
	case key.Matches(msg, m.keys.ClearLaps):
		m.run(m.stopwatch.ClearLaps)
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Fullscreen):
		if m.fullscreen.Toggle() {
			return m, tea.EnterAltScreen
		}
		return m, tea.ExitAltScreen
	case key.Matches(msg, m.keys.Theme):
		return m, m.toggleTheme()
	case key.Matches(msg, m.keys.Export):
		return m, m.export()
	}

	return m, nil
}

// run applies a stopwatch command. Commands rejected in the current state are
// silently ignored, like a disabled button.
func (m *model) run(command func() error) {
	if err := command(); err != nil && !errors.Is(err, domain.ErrInvalidTransition) {
		m.setNotice(err.Error(), true)
	}
	m.snapshot = m.stopwatch.Snapshot()
}

func (m model) toggleTheme() tea.Cmd {
	ctx := m.ctx
	themes := m.themes
	return func() tea.Msg {
		theme, err := themes.ToggleTheme(ctx)
		return themeChangedMsg{theme: theme, err: err}
	}
}

func (m model) export() tea.Cmd {
	ctx := m.ctx
	exporter := m.exporter
	snapshot := m.stopwatch.Snapshot()
	theme := m.theme
	return func() tea.Msg {
		location, err := exporter.Export(ctx, snapshot, theme)
		return exportDoneMsg{location: location, err: err}
	}
}

func (m *model) setNotice(text string, failed bool) {
	m.notice = text
	m.failed = failed
}

func (m model) View() string {
	if m.quitting {
		return ""
	}

	view := renderView(viewDataFromSnapshot(m.snapshot, m.maxLaps), m.styles)
	if m.notice != "" {
		style := m.styles.notice
		if m.failed {
			style = m.styles.warning
		}
		view += "\n" + style.Render(m.notice)
	}

	return view + "\n" + m.help.View(m.keys) + "\n"
}

// snapshotFeed hands engine snapshots to the program without ever blocking
// the engine: it holds at most one pending snapshot and a newer one replaces it.
type snapshotFeed struct {
	ch chan application.Snapshot
}

func newSnapshotFeed() *snapshotFeed {
	return &snapshotFeed{ch: make(chan application.Snapshot, 1)}
}

func (f *snapshotFeed) push(snapshot application.Snapshot) {
	for {
		select {
		case f.ch <- snapshot:
			return
		default:
		}

		select {
		case <-f.ch:
		default:
		}
	}
}

func (f *snapshotFeed) next(ctx context.Context) tea.Cmd {
	return func() tea.Msg {
		select {
		case snapshot := <-f.ch:
			return snapshotMsg(snapshot)
		case <-ctx.Done():
			return nil
		}
	}
}
