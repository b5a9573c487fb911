// Package policy decides whether a user may save another palette. It is a
// pure function over data the caller has already fetched: no I/O, no side
// effects.
package policy

import "github.com/paletteplay/paletteplay/internal/models"

// Reason classifies why a create was rejected.
type Reason int

const (
	// Allowed means the palette may be created.
	Allowed Reason = iota
	// QuotaExceeded means the user already holds the free-tier maximum.
	QuotaExceeded
	// DuplicatePalette means an existing palette has the identical color
	// combination.
	DuplicatePalette
)

// Outcome is the policy decision. Limit is populated on QuotaExceeded so the
// caller can word the upgrade prompt.
type Outcome struct {
	Reason Reason
	Limit  int
}

// Evaluate applies the free-tier rules in order: quota first, then the
// duplicate-combination check. Existing palettes whose colors no longer
// decode are compared on the raw stored string instead of being skipped.
func Evaluate(existing []models.Palette, candidate models.ColorSet, limit int) Outcome {
	if len(existing) >= limit {
		return Outcome{Reason: QuotaExceeded, Limit: limit}
	}

	for _, p := range existing {
		stored, err := models.DecodeColors(p.Colors)
		if err == nil {
			if stored == candidate {
				return Outcome{Reason: DuplicatePalette}
			}
			continue
		}
		if encoded, encErr := models.EncodeColors(candidate); encErr == nil && encoded == p.Colors {
			return Outcome{Reason: DuplicatePalette}
		}
	}

	return Outcome{Reason: Allowed}
}
