// Package store adapts PalettePlay's domain operations onto the row store.
// The backing store only supports full-range reads and appends, so every
// lookup is a scan plus an in-memory filter. There is no check-and-set:
// callers that need uniqueness or quota guarantees have to read first and
// accept the race window between their read and the append.
package store

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/paletteplay/paletteplay/internal/models"
	"github.com/paletteplay/paletteplay/internal/rowstore"
)

const (
	// Column layouts are fixed; changing them breaks every existing sheet.
	// Users:    [id, email, password, name, createdAt]
	// Palettes: [id, name, colors, userId, createdAt]
	usersRange    = "Users!A:E"
	palettesRange = "Palettes!A:E"
)

// ErrUserNotFound is returned when no user row matches a lookup.
var ErrUserNotFound = errors.New("user not found")

// Store is the adapter over the two logical tables.
type Store struct {
	rows rowstore.RowStore
}

// New creates a store adapter on top of a row store.
func New(rows rowstore.RowStore) *Store {
	return &Store{rows: rows}
}

// FindUserByEmail scans the Users sheet for the first exact, case-sensitive
// match on the email column. A failed read is reported as not-found: signup
// retains the original behavior of proceeding when the sheet cannot be
// checked.
func (s *Store) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	rows, err := s.rows.Read(ctx, usersRange)
	if err != nil {
		log.Printf("store: user lookup read failed, treating as not found: %v", err)
		return nil, ErrUserNotFound
	}

	for _, row := range rows {
		if cell(row, 1) == email {
			return &models.User{
				ID:           cell(row, 0),
				Email:        cell(row, 1),
				PasswordHash: cell(row, 2),
				Name:         cell(row, 3),
				CreatedAt:    cell(row, 4),
			}, nil
		}
	}
	return nil, ErrUserNotFound
}

// CreateUser appends one user row and returns the constructed record. It
// performs no existence check; callers must call FindUserByEmail first.
func (s *Store) CreateUser(ctx context.Context, email, passwordHash, name string) (*models.User, error) {
	user := &models.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: passwordHash,
		Name:         name,
		CreatedAt:    now(),
	}

	row := []string{user.ID, user.Email, user.PasswordHash, user.Name, user.CreatedAt}
	if err := s.rows.Append(ctx, usersRange, row); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

// ListPalettesForUser scans the Palettes sheet, keeps rows owned by the
// user, and sorts them newest first. A failed read degrades to an empty
// list rather than an error; the failure is only logged.
func (s *Store) ListPalettesForUser(ctx context.Context, userID string) []models.Palette {
	rows, err := s.rows.Read(ctx, palettesRange)
	if err != nil {
		log.Printf("store: palette list read failed, returning empty list: %v", err)
		return []models.Palette{}
	}

	palettes := []models.Palette{}
	for _, row := range rows {
		if cell(row, 3) != userID {
			continue
		}
		palettes = append(palettes, models.Palette{
			ID:        cell(row, 0),
			Name:      cell(row, 1),
			Colors:    cell(row, 2),
			UserID:    cell(row, 3),
			CreatedAt: cell(row, 4),
		})
	}

	sort.SliceStable(palettes, func(i, j int) bool {
		ti, iOK := parseTime(palettes[i].CreatedAt)
		tj, jOK := parseTime(palettes[j].CreatedAt)
		if iOK && jOK {
			return ti.After(tj)
		}
		// Unparseable timestamps sort by raw string so the order stays
		// deterministic.
		return palettes[i].CreatedAt > palettes[j].CreatedAt
	})

	return palettes
}

// CreatePalette appends one palette row and returns the constructed record.
// Quota and duplicate rules are the caller's responsibility.
func (s *Store) CreatePalette(ctx context.Context, userID, name, colors string) (*models.Palette, error) {
	palette := &models.Palette{
		ID:        uuid.NewString(),
		Name:      name,
		Colors:    colors,
		UserID:    userID,
		CreatedAt: now(),
	}

	row := []string{palette.ID, palette.Name, palette.Colors, palette.UserID, palette.CreatedAt}
	if err := s.rows.Append(ctx, palettesRange, row); err != nil {
		return nil, fmt.Errorf("failed to create palette: %w", err)
	}
	return palette, nil
}

func now() string {
	return time.Now().UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) (time.Time, bool) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// cell reads a column defensively; the sheets API drops trailing empty
// cells, so rows can come back short.
func cell(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}
