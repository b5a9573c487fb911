package themes

import (
	"testing"

	"github.com/paletteplay/paletteplay/internal/models"
)

func TestCatalogHasFifteenPresets(t *testing.T) {
	all := Catalog()
	if len(all) != 15 {
		t.Fatalf("expected 15 preset themes, got %d", len(all))
	}
	for _, theme := range all {
		if theme.Source != SourcePreset {
			t.Errorf("catalog theme %q tagged %q, want preset", theme.Name, theme.Source)
		}
		if !theme.Colors.Valid() {
			t.Errorf("catalog theme %q has invalid colors: %+v", theme.Name, theme.Colors)
		}
	}
}

func TestCatalogOrderAndDefault(t *testing.T) {
	all := Catalog()
	if all[0].Name != "Dreamy" {
		t.Errorf("first catalog entry = %q, want Dreamy", all[0].Name)
	}
}

func TestCatalogReturnsCopies(t *testing.T) {
	first := Catalog()
	first[0].Name = "mutated"
	first[0].Colors.Background = "#000000"

	again := Catalog()
	if again[0].Name != "Dreamy" || again[0].Colors.Background != "#F0E6FF" {
		t.Error("mutating a Catalog result must not change the catalog")
	}
}

func TestGet(t *testing.T) {
	theme, ok := Get("GitHub")
	if !ok {
		t.Fatal("GitHub theme should exist")
	}
	if theme.Colors.Accent != "#0366D6" {
		t.Errorf("GitHub accent = %s, want #0366D6", theme.Colors.Accent)
	}

	if _, ok := Get("github"); ok {
		t.Error("theme names are exact; lowercase should not match")
	}
	if _, ok := Get("Nope"); ok {
		t.Error("unknown theme should not be found")
	}
}

func TestCustomTag(t *testing.T) {
	colors := models.ColorSet{Background: "#FFFFFF", Text: "#111111", Accent: "#FF0000", Secondary: "#00FF00"}
	theme := Custom("My palette", colors)
	if theme.Source != SourceCustom {
		t.Errorf("custom theme tagged %q, want custom", theme.Source)
	}
	if theme.Colors != colors {
		t.Errorf("custom theme colors mismatch: %+v", theme.Colors)
	}
}
