package file

import (
	"time"

	"github.com/bnema/lapwatch/internal/domain"
)

// documentSchema keeps the camelCase field names of the web stopwatch export so
// existing consumers can read the files.
type documentSchema struct {
	ID         string        `json:"id" toml:"id"`
	LapTimes   []lapSchema   `json:"lapTimes" toml:"lapTimes"`
	TotalTime  int64         `json:"totalTime" toml:"totalTime"`
	ExportDate string        `json:"exportDate" toml:"exportDate"`
	Theme      string        `json:"theme" toml:"theme"`
	Metrics    metricsSchema `json:"metrics" toml:"metrics"`
}

type lapSchema struct {
	Number    int    `json:"number" toml:"number"`
	Time      int64  `json:"time" toml:"time"`
	Split     int64  `json:"split" toml:"split"`
	Timestamp string `json:"timestamp,omitempty" toml:"timestamp,omitempty"`
}

type metricsSchema struct {
	LapCount       int     `json:"lapCount" toml:"lapCount"`
	TotalTime      int64   `json:"totalTime" toml:"totalTime"`
	AverageLapTime float64 `json:"averageLapTime" toml:"averageLapTime"`
	FastestLap     int64   `json:"fastestLap" toml:"fastestLap"`
	SlowestLap     int64   `json:"slowestLap" toml:"slowestLap"`
}

func toSchema(doc domain.ExportDocument) documentSchema {
	laps := make([]lapSchema, 0, len(doc.LapTimes))
	for _, lap := range doc.LapTimes {
		laps = append(laps, lapSchema{
			Number:    lap.Sequence,
			Time:      lap.CumulativeMs,
			Split:     lap.SplitMs,
			Timestamp: formatTime(lap.RecordedAt),
		})
	}

	return documentSchema{
		ID:         doc.ID,
		LapTimes:   laps,
		TotalTime:  doc.TotalTime,
		ExportDate: formatTime(doc.ExportDate),
		Theme:      string(doc.Theme),
		Metrics: metricsSchema{
			LapCount:       doc.Metrics.LapCount,
			TotalTime:      doc.Metrics.TotalTimeMs,
			AverageLapTime: doc.Metrics.AverageLapMs,
			FastestLap:     doc.Metrics.FastestLapMs,
			SlowestLap:     doc.Metrics.SlowestLapMs,
		},
	}
}

func fromSchema(s documentSchema) domain.ExportDocument {
	laps := make([]domain.LapRecord, 0, len(s.LapTimes))
	for _, lap := range s.LapTimes {
		laps = append(laps, domain.LapRecord{
			Sequence:     lap.Number,
			CumulativeMs: lap.Time,
			SplitMs:      lap.Split,
			RecordedAt:   parseTime(lap.Timestamp),
		})
	}

	return domain.ExportDocument{
		ID:         s.ID,
		LapTimes:   laps,
		TotalTime:  s.TotalTime,
		ExportDate: parseTime(s.ExportDate),
		Theme:      domain.Theme(s.Theme),
		Metrics: domain.Metrics{
			LapCount:     s.Metrics.LapCount,
			TotalTimeMs:  s.Metrics.TotalTime,
			AverageLapMs: s.Metrics.AverageLapTime,
			FastestLapMs: s.Metrics.FastestLap,
			SlowestLapMs: s.Metrics.SlowestLap,
		},
	}
}

func parseTime(raw string) time.Time {
	if raw == "" {
		return time.Time{}
	}

	parsed, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return time.Time{}
	}

	return parsed
}

func formatTime(value time.Time) string {
	if value.IsZero() {
		return ""
	}

	return value.UTC().Format(time.RFC3339Nano)
}
