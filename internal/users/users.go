package users

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/paletteplay/paletteplay/internal/auth"
	"github.com/paletteplay/paletteplay/internal/models"
	"github.com/paletteplay/paletteplay/internal/store"
)

var (
	// ErrAlreadyExists is returned when the signup email is taken.
	ErrAlreadyExists = errors.New("user with this email already exists")
	// ErrInvalidCredentials is returned for a bad email/password pair.
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// Signup creates a new account. The email is checked for an existing row
// first; the check and the append are separate store calls, so it is a
// best-effort guard rather than a constraint.
func Signup(ctx context.Context, st *store.Store, email, password, name string) (*models.User, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, fmt.Errorf("email is required")
	}
	if password == "" {
		return nil, fmt.Errorf("password is required")
	}

	if _, err := st.FindUserByEmail(ctx, email); err == nil {
		return nil, ErrAlreadyExists
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := st.CreateUser(ctx, email, hash, name)
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

// Authenticate verifies a login attempt and returns the account on success.
func Authenticate(ctx context.Context, st *store.Store, email, password string) (*models.User, error) {
	user, err := st.FindUserByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	if !auth.CheckPassword(password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}
