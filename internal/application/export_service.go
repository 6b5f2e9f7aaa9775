package application

import (
	"context"
	"fmt"

	"github.com/bnema/lapwatch/internal/domain"
	"github.com/bnema/lapwatch/internal/ports"
	"github.com/google/uuid"
)

type ExportService struct {
	sink  ports.ExportSink
	clock ports.Clock
	newID func() string
}

func NewExportService(sink ports.ExportSink, clock ports.Clock) *ExportService {
	if clock == nil {
		clock = ports.SystemClock{}
	}

	return &ExportService{
		sink:  sink,
		clock: clock,
		newID: uuid.NewString,
	}
}

func (s *ExportService) Document(snapshot Snapshot, theme domain.Theme) domain.ExportDocument {
	laps := make([]domain.LapRecord, len(snapshot.Laps))
	copy(laps, snapshot.Laps)

	return domain.ExportDocument{
		ID:         s.newID(),
		LapTimes:   laps,
		TotalTime:  snapshot.ElapsedMs,
		ExportDate: s.clock.Now(),
		Theme:      theme,
		Metrics:    snapshot.Metrics,
	}
}

// Export writes the snapshot through the sink and returns the written location.
func (s *ExportService) Export(ctx context.Context, snapshot Snapshot, theme domain.Theme) (string, error) {
	location, err := s.sink.Save(ctx, s.Document(snapshot, theme))
	if err != nil {
		return "", fmt.Errorf("export stopwatch data: %w", err)
	}

	return location, nil
}
