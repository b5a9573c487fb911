// Package palettes is the callable boundary for saved palettes: it combines
// the caller's identity, the free-tier policy, and the store adapter.
package palettes

import (
	"context"
	"errors"
	"fmt"

	"github.com/paletteplay/paletteplay/internal/models"
	"github.com/paletteplay/paletteplay/internal/policy"
	"github.com/paletteplay/paletteplay/internal/store"
)

var (
	// ErrUnauthorized is returned when no caller identity is present.
	ErrUnauthorized = errors.New("not authenticated")
	// ErrDuplicatePalette is returned when the identical color combination
	// is already saved.
	ErrDuplicatePalette = errors.New("palette with these colors already saved")
)

// QuotaError reports that the free-tier palette limit is reached. It carries
// the configured limit for user messaging.
type QuotaError struct {
	Limit int
}

func (e *QuotaError) Error() string {
	return fmt.Sprintf("free limit of %d palettes reached", e.Limit)
}

// Service exposes the palette operations.
type Service struct {
	store *store.Store
	limit int
}

// NewService builds a palette service with the configured free-tier limit.
func NewService(st *store.Store, limit int) *Service {
	return &Service{store: st, limit: limit}
}

// Limit returns the configured free-tier limit.
func (s *Service) Limit() int {
	return s.limit
}

// ListMine returns the caller's palettes, newest first. A store read failure
// surfaces as an empty list, matching the adapter's degradation policy.
func (s *Service) ListMine(ctx context.Context, userID string) ([]models.Palette, error) {
	if userID == "" {
		return nil, ErrUnauthorized
	}
	return s.store.ListPalettesForUser(ctx, userID), nil
}

// CreateMine saves a palette for the caller after the quota and duplicate
// checks pass. The existing set is read first and the append follows without
// any store-level guard, so two concurrent creates can both pass the checks;
// the backing store offers nothing to close that window with.
func (s *Service) CreateMine(ctx context.Context, userID, name string, colors models.ColorSet) (*models.Palette, error) {
	if userID == "" {
		return nil, ErrUnauthorized
	}

	existing := s.store.ListPalettesForUser(ctx, userID)

	outcome := policy.Evaluate(existing, colors, s.limit)
	switch outcome.Reason {
	case policy.QuotaExceeded:
		return nil, &QuotaError{Limit: outcome.Limit}
	case policy.DuplicatePalette:
		return nil, ErrDuplicatePalette
	}

	encoded, err := models.EncodeColors(colors)
	if err != nil {
		return nil, fmt.Errorf("invalid colors: %w", err)
	}

	palette, err := s.store.CreatePalette(ctx, userID, name, encoded)
	if err != nil {
		return nil, fmt.Errorf("failed to save palette: %w", err)
	}
	return palette, nil
}
