package domain

import (
	"fmt"
	"time"
)

type LapRecord struct {
	Sequence     int
	CumulativeMs int64
	SplitMs      int64
	RecordedAt   time.Time
}

// LapLedger is an append-only list of laps in capture order. Sequence numbers
// are dense and start at 1 after every Clear.
type LapLedger struct {
	records []LapRecord
}

func (l *LapLedger) Append(cumulativeMs int64, recordedAt time.Time) (LapRecord, error) {
	if cumulativeMs < 0 {
		return LapRecord{}, fmt.Errorf("%w: lap at %dms", ErrInvalidDuration, cumulativeMs)
	}

	var previous int64
	if last, ok := l.Last(); ok {
		previous = last.CumulativeMs
	}
	if cumulativeMs < previous {
		return LapRecord{}, fmt.Errorf("%w: %dms after %dms", ErrNonMonotonicLap, cumulativeMs, previous)
	}

	record := LapRecord{
		Sequence:     len(l.records) + 1,
		CumulativeMs: cumulativeMs,
		SplitMs:      cumulativeMs - previous,
		RecordedAt:   recordedAt,
	}
	l.records = append(l.records, record)

	return record, nil
}

func (l *LapLedger) Clear() {
	l.records = nil
}

// All returns a copy of the laps; callers may keep or modify it freely.
func (l *LapLedger) All() []LapRecord {
	if len(l.records) == 0 {
		return []LapRecord{}
	}

	out := make([]LapRecord, len(l.records))
	copy(out, l.records)
	return out
}

func (l *LapLedger) Count() int {
	return len(l.records)
}

func (l *LapLedger) Last() (LapRecord, bool) {
	if len(l.records) == 0 {
		return LapRecord{}, false
	}

	return l.records[len(l.records)-1], true
}

func (l *LapLedger) TotalSplit() int64 {
	var total int64
	for _, record := range l.records {
		total += record.SplitMs
	}
	return total
}

func (l *LapLedger) AverageSplit() float64 {
	if len(l.records) == 0 {
		return 0
	}

	return float64(l.TotalSplit()) / float64(len(l.records))
}

func (l *LapLedger) MinSplit() int64 {
	if len(l.records) == 0 {
		return 0
	}

	lowest := l.records[0].SplitMs
	for _, record := range l.records[1:] {
		if record.SplitMs < lowest {
			lowest = record.SplitMs
		}
	}
	return lowest
}

func (l *LapLedger) MaxSplit() int64 {
	if len(l.records) == 0 {
		return 0
	}

	highest := l.records[0].SplitMs
	for _, record := range l.records[1:] {
		if record.SplitMs > highest {
			highest = record.SplitMs
		}
	}
	return highest
}

type Metrics struct {
	LapCount     int
	TotalTimeMs  int64
	AverageLapMs float64
	FastestLapMs int64
	SlowestLapMs int64
}

func (l *LapLedger) Metrics(totalTimeMs int64) Metrics {
	return Metrics{
		LapCount:     l.Count(),
		TotalTimeMs:  totalTimeMs,
		AverageLapMs: l.AverageSplit(),
		FastestLapMs: l.MinSplit(),
		SlowestLapMs: l.MaxSplit(),
	}
}
