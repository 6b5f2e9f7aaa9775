package ports

import (
	"context"

	"github.com/bnema/lapwatch/internal/domain"
)

type PreferenceStore interface {
	GetTheme(ctx context.Context) (domain.Theme, error)
	SaveTheme(ctx context.Context, theme domain.Theme) error
}
