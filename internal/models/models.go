package models

import (
	"encoding/json"
	"fmt"
	"strings"
)

// User represents a registered account. Rows live in the Users sheet as
// [id, email, password, name, createdAt].
type User struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	Name         string `json:"name"`
	CreatedAt    string `json:"createdAt"`
}

// Palette is a saved color combination owned by one user. Rows live in the
// Palettes sheet as [id, name, colors, userId, createdAt]. Colors is kept as
// the opaque serialized string exactly as stored; the sheet layer never
// inspects it.
type Palette struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Colors    string `json:"colors"`
	UserID    string `json:"userId"`
	CreatedAt string `json:"createdAt"`
}

// ColorSet assigns hex colors to the four semantic roles every theme and
// palette carries.
type ColorSet struct {
	Background string `json:"background"`
	Text       string `json:"text"`
	Accent     string `json:"accent"`
	Secondary  string `json:"secondary"`
}

// EncodeColors serializes a ColorSet into the opaque string form used in the
// palette rows.
func EncodeColors(c ColorSet) (string, error) {
	data, err := json.Marshal(c)
	if err != nil {
		return "", fmt.Errorf("failed to encode colors: %w", err)
	}
	return string(data), nil
}

// DecodeColors parses the stored colors string back into a ColorSet.
func DecodeColors(s string) (ColorSet, error) {
	var c ColorSet
	if err := json.Unmarshal([]byte(s), &c); err != nil {
		return ColorSet{}, fmt.Errorf("failed to decode colors: %w", err)
	}
	return c, nil
}

// Valid reports whether all four roles carry a plausible hex color value.
func (c ColorSet) Valid() bool {
	for _, v := range []string{c.Background, c.Text, c.Accent, c.Secondary} {
		if !validHexColor(v) {
			return false
		}
	}
	return true
}

func validHexColor(s string) bool {
	if !strings.HasPrefix(s, "#") {
		return false
	}
	hex := s[1:]
	if len(hex) != 3 && len(hex) != 6 {
		return false
	}
	for _, r := range hex {
		switch {
		case r >= '0' && r <= '9':
		case r >= 'a' && r <= 'f':
		case r >= 'A' && r <= 'F':
		default:
			return false
		}
	}
	return true
}
