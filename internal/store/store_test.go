package store

import (
	"context"
	"errors"
	"testing"

	"github.com/paletteplay/paletteplay/internal/rowstore"
)

// failingRows simulates an unreachable spreadsheet.
type failingRows struct{}

func (failingRows) Read(ctx context.Context, rng string) ([][]string, error) {
	return nil, errors.New("sheets: backend unavailable")
}

func (failingRows) Append(ctx context.Context, rng string, row []string) error {
	return errors.New("sheets: backend unavailable")
}

func TestFindUserByEmailExactMatch(t *testing.T) {
	rows := rowstore.NewMemoryStore()
	ctx := context.Background()
	s := New(rows)

	if _, err := s.CreateUser(ctx, "ada@example.com", "hash1", "Ada"); err != nil {
		t.Fatalf("create user failed: %v", err)
	}
	if _, err := s.CreateUser(ctx, "grace@example.com", "hash2", "Grace"); err != nil {
		t.Fatalf("create user failed: %v", err)
	}

	user, err := s.FindUserByEmail(ctx, "grace@example.com")
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if user.Name != "Grace" || user.PasswordHash != "hash2" {
		t.Errorf("wrong user returned: %+v", user)
	}
	if user.ID == "" || user.CreatedAt == "" {
		t.Error("created user should have id and createdAt stamped")
	}
}

func TestFindUserByEmailIsCaseSensitive(t *testing.T) {
	rows := rowstore.NewMemoryStore()
	ctx := context.Background()
	s := New(rows)

	if _, err := s.CreateUser(ctx, "ada@example.com", "hash", ""); err != nil {
		t.Fatalf("create user failed: %v", err)
	}

	if _, err := s.FindUserByEmail(ctx, "Ada@Example.com"); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound for different casing, got %v", err)
	}
}

func TestFindUserByEmailMissing(t *testing.T) {
	s := New(rowstore.NewMemoryStore())

	_, err := s.FindUserByEmail(context.Background(), "nobody@example.com")
	if !errors.Is(err, ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}

func TestFindUserByEmailReadFailureBecomesNotFound(t *testing.T) {
	s := New(failingRows{})

	_, err := s.FindUserByEmail(context.Background(), "ada@example.com")
	if !errors.Is(err, ErrUserNotFound) {
		t.Errorf("read failure should surface as not-found, got %v", err)
	}
}

func TestListPalettesEmptyForNewUser(t *testing.T) {
	s := New(rowstore.NewMemoryStore())

	palettes := s.ListPalettesForUser(context.Background(), "no-such-user")
	if palettes == nil {
		t.Fatal("expected empty slice, got nil")
	}
	if len(palettes) != 0 {
		t.Errorf("expected no palettes, got %d", len(palettes))
	}
}

func TestListPalettesFiltersByOwnerAndSortsNewestFirst(t *testing.T) {
	rows := rowstore.NewMemoryStore()
	ctx := context.Background()

	// Seed rows directly so the timestamps are controlled.
	seed := [][]string{
		{"p1", "Oldest", "{}", "u1", "2024-01-01T10:00:00Z"},
		{"p2", "Other user", "{}", "u2", "2024-06-01T10:00:00Z"},
		{"p3", "Newest", "{}", "u1", "2024-03-01T10:00:00Z"},
		{"p4", "Middle", "{}", "u1", "2024-02-01T10:00:00Z"},
	}
	for _, row := range seed {
		if err := rows.Append(ctx, "Palettes!A:E", row); err != nil {
			t.Fatalf("seed failed: %v", err)
		}
	}

	s := New(rows)
	palettes := s.ListPalettesForUser(ctx, "u1")

	if len(palettes) != 3 {
		t.Fatalf("expected 3 palettes for u1, got %d", len(palettes))
	}
	wantOrder := []string{"p3", "p4", "p1"}
	for i, want := range wantOrder {
		if palettes[i].ID != want {
			t.Errorf("position %d: got %s, want %s (order %v)", i, palettes[i].ID, want, palettes)
			break
		}
	}
}

func TestListPalettesReadFailureReturnsEmpty(t *testing.T) {
	s := New(failingRows{})

	palettes := s.ListPalettesForUser(context.Background(), "u1")
	if len(palettes) != 0 {
		t.Errorf("expected empty list on read failure, got %v", palettes)
	}
}

func TestCreatePaletteStampsIDAndTime(t *testing.T) {
	rows := rowstore.NewMemoryStore()
	ctx := context.Background()
	s := New(rows)

	palette, err := s.CreatePalette(ctx, "u1", "Sunset", `{"background":"#FFFFFF"}`)
	if err != nil {
		t.Fatalf("create palette failed: %v", err)
	}
	if palette.ID == "" || palette.CreatedAt == "" {
		t.Errorf("palette missing generated fields: %+v", palette)
	}
	if palette.UserID != "u1" {
		t.Errorf("palette owner = %q, want u1", palette.UserID)
	}

	stored, err := rows.Read(ctx, "Palettes!A:E")
	if err != nil {
		t.Fatalf("read back failed: %v", err)
	}
	if len(stored) != 1 {
		t.Fatalf("expected 1 stored row, got %d", len(stored))
	}
	if stored[0][2] != `{"background":"#FFFFFF"}` {
		t.Errorf("colors stored verbatim mismatch: %q", stored[0][2])
	}
}

func TestCreatePaletteAppendFailure(t *testing.T) {
	s := New(failingRows{})

	if _, err := s.CreatePalette(context.Background(), "u1", "Sunset", "{}"); err == nil {
		t.Error("expected error when append fails")
	}
}

func TestCreateUserIDsAreUnique(t *testing.T) {
	s := New(rowstore.NewMemoryStore())
	ctx := context.Background()

	seen := make(map[string]bool)
	for i := 0; i < 20; i++ {
		user, err := s.CreateUser(ctx, "bulk@example.com", "hash", "")
		if err != nil {
			t.Fatalf("create user failed: %v", err)
		}
		if seen[user.ID] {
			t.Fatalf("duplicate id generated: %s", user.ID)
		}
		seen[user.ID] = true
	}
}
