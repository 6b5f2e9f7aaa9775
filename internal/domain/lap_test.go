package domain

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLapLedgerSplitsAndSequence(t *testing.T) {
	at := time.Date(2026, 2, 14, 12, 0, 0, 0, time.UTC)
	var ledger LapLedger

	for _, cumulative := range []int64{1_000, 1_500, 1_500, 4_200} {
		_, err := ledger.Append(cumulative, at)
		require.NoError(t, err)
	}

	want := []LapRecord{
		{Sequence: 1, CumulativeMs: 1_000, SplitMs: 1_000, RecordedAt: at},
		{Sequence: 2, CumulativeMs: 1_500, SplitMs: 500, RecordedAt: at},
		{Sequence: 3, CumulativeMs: 1_500, SplitMs: 0, RecordedAt: at},
		{Sequence: 4, CumulativeMs: 4_200, SplitMs: 2_700, RecordedAt: at},
	}
	if diff := cmp.Diff(want, ledger.All()); diff != "" {
		t.Fatalf("ledger mismatch (-want +got):\n%s", diff)
	}

	last, ok := ledger.Last()
	require.True(t, ok)
	assert.Equal(t, last.CumulativeMs, ledger.TotalSplit())
}

func TestLapLedgerRejectsBadInput(t *testing.T) {
	var ledger LapLedger
	_, err := ledger.Append(-1, time.Time{})
	assert.ErrorIs(t, err, ErrInvalidDuration)

	_, err = ledger.Append(2_000, time.Time{})
	require.NoError(t, err)

	_, err = ledger.Append(1_999, time.Time{})
	assert.ErrorIs(t, err, ErrNonMonotonicLap)
	assert.Equal(t, 1, ledger.Count())
}

func TestLapLedgerAllIsAFreshCopy(t *testing.T) {
	var ledger LapLedger
	_, err := ledger.Append(100, time.Time{})
	require.NoError(t, err)

	first := ledger.All()
	first[0].SplitMs = 999

	assert.Equal(t, int64(100), ledger.All()[0].SplitMs)
	assert.Equal(t, ledger.All(), ledger.All())
}

func TestLapLedgerClearRestartsSequence(t *testing.T) {
	var ledger LapLedger
	_, err := ledger.Append(300, time.Time{})
	require.NoError(t, err)
	_, err = ledger.Append(700, time.Time{})
	require.NoError(t, err)

	ledger.Clear()
	assert.Equal(t, 0, ledger.Count())
	assert.Empty(t, ledger.All())

	record, err := ledger.Append(50, time.Time{})
	require.NoError(t, err)
	assert.Equal(t, 1, record.Sequence)
	assert.Equal(t, record.CumulativeMs, record.SplitMs)
}

func TestLapLedgerAggregates(t *testing.T) {
	var empty LapLedger
	assert.Equal(t, Metrics{TotalTimeMs: 42}, empty.Metrics(42))

	var ledger LapLedger
	for _, cumulative := range []int64{1_000, 1_500, 3_500} {
		_, err := ledger.Append(cumulative, time.Time{})
		require.NoError(t, err)
	}

	assert.Equal(t, Metrics{
		LapCount:     3,
		TotalTimeMs:  4_000,
		AverageLapMs: 3_500.0 / 3.0,
		FastestLapMs: 500,
		SlowestLapMs: 2_000,
	}, ledger.Metrics(4_000))
}
