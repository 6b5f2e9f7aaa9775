package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecomposeKnownValue(t *testing.T) {
	c, err := Decompose(3_725_000)
	require.NoError(t, err)

	assert.Equal(t, Components{Hours: 1, Minutes: 2, Seconds: 5}, c)
	assert.Equal(t, DisplayFields{Hours: "01", Minutes: "02", Seconds: "05", Milliseconds: "000"}, c.Fields())
}

func TestDecomposeSumsBackToInput(t *testing.T) {
	t.Parallel()

	for _, ms := range []int64{0, 1, 999, 1_000, 59_999, 60_000, 3_599_999, 3_600_000, 3_725_042, 86_400_123, 360_000_001} {
		c, err := Decompose(ms)
		require.NoError(t, err)
		assert.Equal(t, ms, c.TotalMs(), "ms=%d", ms)
		assert.Less(t, c.Minutes, int64(60))
		assert.Less(t, c.Seconds, int64(60))
		assert.Less(t, c.Milliseconds, int64(1000))
	}
}

func TestDecomposeRejectsNegative(t *testing.T) {
	_, err := Decompose(-1)
	assert.ErrorIs(t, err, ErrInvalidDuration)

	_, err = Format(-1)
	assert.ErrorIs(t, err, ErrInvalidDuration)

	_, err = FormatSplit(-250)
	assert.ErrorIs(t, err, ErrInvalidDuration)
}

func TestFormat(t *testing.T) {
	tests := []struct {
		name string
		ms   int64
		want string
	}{
		{name: "zero", ms: 0, want: "00:00.000"},
		{name: "millis only", ms: 7, want: "00:00.007"},
		{name: "seconds", ms: 5_250, want: "00:05.250"},
		{name: "minutes keep two digits", ms: 125_000, want: "02:05.000"},
		{name: "just under an hour", ms: 3_599_999, want: "59:59.999"},
		{name: "hours shown when non-zero", ms: 3_725_000, want: "01:02:05.000"},
		{name: "hours unbounded on the left", ms: 100 * 3_600_000, want: "100:00:00.000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Format(tt.ms)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatSplitPrefixesPlus(t *testing.T) {
	got, err := FormatSplit(500)
	require.NoError(t, err)
	assert.Equal(t, "+00:00.500", got)
}

func TestParseTheme(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    Theme
		wantErr bool
	}{
		{name: "light", raw: "light", want: ThemeLight},
		{name: "dark with spaces and case", raw: "  Dark ", want: ThemeDark},
		{name: "unknown", raw: "solarized", wantErr: true},
		{name: "empty", raw: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTheme(tt.raw)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownTheme)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestThemeToggle(t *testing.T) {
	assert.Equal(t, ThemeDark, ThemeLight.Toggle())
	assert.Equal(t, ThemeLight, ThemeDark.Toggle())
	assert.Equal(t, ThemeDark, Theme("").Toggle())
}

func TestExportDocumentFileStemUsesUTCDay(t *testing.T) {
	loc := time.FixedZone("UTC+9", 9*60*60)
	doc := ExportDocument{ExportDate: time.Date(2026, 3, 2, 3, 0, 0, 0, loc)}

	assert.Equal(t, "stopwatch-data-2026-03-01", doc.FileStem())
}
