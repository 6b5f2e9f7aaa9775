package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/lapwatch/internal/domain"
	"github.com/bnema/lapwatch/internal/ports"
)

type PreferenceService struct {
	store ports.PreferenceStore
}

func NewPreferenceService(store ports.PreferenceStore) *PreferenceService {
	return &PreferenceService{store: store}
}

// Theme returns the stored theme, or the default when none was saved yet.
func (s *PreferenceService) Theme(ctx context.Context) (domain.Theme, error) {
	theme, err := s.store.GetTheme(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrPreferenceNotFound) {
			return domain.DefaultTheme, nil
		}
		return "", fmt.Errorf("get theme: %w", err)
	}

	return theme, nil
}

func (s *PreferenceService) SetTheme(ctx context.Context, theme domain.Theme) error {
	if !theme.Valid() {
		return fmt.Errorf("%w %q", domain.ErrUnknownTheme, theme)
	}

	if err := s.store.SaveTheme(ctx, theme); err != nil {
		return fmt.Errorf("save theme: %w", err)
	}

	return nil
}

func (s *PreferenceService) ToggleTheme(ctx context.Context) (domain.Theme, error) {
	current, err := s.Theme(ctx)
	if err != nil {
		return "", err
	}

	next := current.Toggle()
	if err := s.SetTheme(ctx, next); err != nil {
		return "", err
	}

	return next, nil
}
