package domain

import "time"

const exportFilePrefix = "stopwatch-data-"

type ExportDocument struct {
	ID         string
	LapTimes   []LapRecord
	TotalTime  int64
	ExportDate time.Time
	Theme      Theme
	Metrics    Metrics
}

// FileStem names the export after the UTC export day, without extension.
func (d ExportDocument) FileStem() string {
	return exportFilePrefix + d.ExportDate.UTC().Format(time.DateOnly)
}
