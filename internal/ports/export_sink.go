package ports

import (
	"context"

	"github.com/bnema/lapwatch/internal/domain"
)

// ExportSink persists an export document and returns where it was written.
type ExportSink interface {
	Save(ctx context.Context, doc domain.ExportDocument) (string, error)
}
