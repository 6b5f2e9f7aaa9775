package display

import (
	"fmt"
	"math"
	"strings"

	"github.com/bnema/lapwatch/internal/application"
	"github.com/bnema/lapwatch/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

const (
	defaultTitle   = "Stopwatch"
	defaultMaxLaps = 8
	invalidClock   = "--:--.---"
)

type viewData struct {
	title     string
	state     domain.RunState
	status    string
	elapsedMs int64
	laps      []domain.LapRecord
	metrics   domain.Metrics
	maxLaps   int
}

func viewDataFromSnapshot(snapshot application.Snapshot, maxLaps int) viewData {
	return viewData{
		title:     defaultTitle,
		state:     snapshot.State,
		status:    snapshot.State.Label(),
		elapsedMs: snapshot.ElapsedMs,
		laps:      snapshot.Laps,
		metrics:   snapshot.Metrics,
		maxLaps:   maxLaps,
	}
}

func renderView(data viewData, s styles) string {
	lines := []string{
		s.title.Render(data.title),
		s.status(data.state).Render(statusGlyph(data.state) + " " + data.status),
		"",
		renderClock(data.elapsedMs, data.state, s),
	}

	if len(data.laps) > 0 {
		lines = append(lines, s.section.Render(fmt.Sprintf("Laps (%d)", len(data.laps))))
		lines = append(lines, renderLaps(data.laps, data.maxLaps, s)...)
		lines = append(lines, s.metrics.Render(metricsLine(data.metrics)))
	}

	return s.frame.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func statusGlyph(state domain.RunState) string {
	switch state {
	case domain.RunStateRunning:
		return "●"
	case domain.RunStatePaused:
		return "❚❚"
	default:
		return "○"
	}
}

// renderClock always shows the hours field, like a physical stopwatch face.
func renderClock(elapsedMs int64, state domain.RunState, s styles) string {
	c, err := domain.Decompose(elapsedMs)
	if err != nil {
		return s.warning.Render(invalidClock)
	}

	clock := s.clock
	if state == domain.RunStateRunning {
		clock = s.clockRunning
	}

	f := c.Fields()
	return clock.Render(f.Hours+":"+f.Minutes+":"+f.Seconds) + s.millis.Render("."+f.Milliseconds)
}

// renderLaps shows the most recent laps, oldest first, so the latest lap is
// always the last line.
func renderLaps(laps []domain.LapRecord, maxLaps int, s styles) []string {
	if maxLaps <= 0 {
		maxLaps = defaultMaxLaps
	}

	visible := laps
	var lines []string
	if hidden := len(laps) - maxLaps; hidden > 0 {
		visible = laps[hidden:]
		lines = append(lines, s.empty.Render(fmt.Sprintf("… %d earlier", hidden)))
	}

	width := len(fmt.Sprint(laps[len(laps)-1].Sequence))
	for _, lap := range visible {
		lines = append(lines, lipgloss.JoinHorizontal(
			lipgloss.Top,
			s.lapNumber.Render(fmt.Sprintf("Lap %*d", width, lap.Sequence)),
			"  ",
			s.lapSplit.Render(formatOr(domain.FormatSplit, lap.SplitMs)),
			"  ",
			s.lapTime.Render(formatOr(domain.Format, lap.CumulativeMs)),
		))
	}

	return lines
}

func metricsLine(m domain.Metrics) string {
	parts := []string{
		"avg " + formatOr(domain.Format, int64(math.Round(m.AverageLapMs))),
		"fastest " + formatOr(domain.Format, m.FastestLapMs),
		"slowest " + formatOr(domain.Format, m.SlowestLapMs),
	}

	return strings.Join(parts, "  ")
}

func formatOr(format func(int64) (string, error), ms int64) string {
	formatted, err := format(ms)
	if err != nil {
		return invalidClock
	}
	return formatted
}
