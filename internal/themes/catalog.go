package themes

import "github.com/paletteplay/paletteplay/internal/models"

// Theme origin tags. Preset themes ship with the catalog; custom themes come
// from a visitor's palette builder or a saved palette.
const (
	SourcePreset = "preset"
	SourceCustom = "custom"
)

// Theme is a named color assignment. Both catalog entries and user palettes
// flow through this one type; Source says which kind it is.
type Theme struct {
	Name   string          `json:"name"`
	Colors models.ColorSet `json:"colors"`
	Source string          `json:"source"`
}

// catalog is the fixed set of preset brand themes. It is populated once and
// never mutated; accessors hand out copies.
var catalog = []Theme{
	{Name: "Dreamy", Source: SourcePreset, Colors: models.ColorSet{
		Background: "#F0E6FF", Text: "#4A4A6A", Accent: "#B57EDC", Secondary: "#D8BFD8"}},
	{Name: "Airbnb", Source: SourcePreset, Colors: models.ColorSet{
		Background: "#FFFFFF", Text: "#222222", Accent: "#FF385C", Secondary: "#008489"}},
	{Name: "Amazon", Source: SourcePreset, Colors: models.ColorSet{
		Background: "#FFFFFF", Text: "#0F1111", Accent: "#FF9900", Secondary: "#232F3E"}},
	{Name: "Docker", Source: SourcePreset, Colors: models.ColorSet{
		Background: "#2496ED", Text: "#FFFFFF", Accent: "#1D94C9", Secondary: "#394D54"}},
	{Name: "Stripe", Source: SourcePreset, Colors: models.ColorSet{
		Background: "#FFFFFF", Text: "#425466", Accent: "#635BFF", Secondary: "#E5E7EB"}},
	{Name: "Notion", Source: SourcePreset, Colors: models.ColorSet{
		Background: "#FFFFFF", Text: "#37352F", Accent: "#0070F3", Secondary: "#F5F5F5"}},
	{Name: "GitHub", Source: SourcePreset, Colors: models.ColorSet{
		Background: "#FFFFFF", Text: "#24292E", Accent: "#0366D6", Secondary: "#6A737D"}},
	{Name: "Apple", Source: SourcePreset, Colors: models.ColorSet{
		Background: "#FFFFFF", Text: "#1D1D1F", Accent: "#0071E3", Secondary: "#86868B"}},
	{Name: "Tech Minimalist", Source: SourcePreset, Colors: models.ColorSet{
		Background: "#F4F7F9", Text: "#1A1A2E", Accent: "#16213E", Secondary: "#0F3460"}},
	{Name: "Finance", Source: SourcePreset, Colors: models.ColorSet{
		Background: "#FFFFFF", Text: "#2C3E50", Accent: "#34495E", Secondary: "#2980B9"}},
	{Name: "Interior", Source: SourcePreset, Colors: models.ColorSet{
		Background: "#F5F5F5", Text: "#3E4444", Accent: "#8C7B75", Secondary: "#B8B8B8"}},
	{Name: "Creative Arts", Source: SourcePreset, Colors: models.ColorSet{
		Background: "#FAFAFA", Text: "#2C3E50", Accent: "#E74C3C", Secondary: "#3498DB"}},
	{Name: "Wellness", Source: SourcePreset, Colors: models.ColorSet{
		Background: "#E8F5E9", Text: "#2E7D32", Accent: "#4CAF50", Secondary: "#81C784"}},
	{Name: "Luxury", Source: SourcePreset, Colors: models.ColorSet{
		Background: "#F5F5F5", Text: "#333333", Accent: "#D4AF37", Secondary: "#8B7355"}},
	{Name: "Startup", Source: SourcePreset, Colors: models.ColorSet{
		Background: "#FFFFFF", Text: "#2C3E50", Accent: "#E74C3C", Secondary: "#3498DB"}},
}

// Catalog returns all preset themes in display order.
func Catalog() []Theme {
	out := make([]Theme, len(catalog))
	copy(out, catalog)
	return out
}

// Get returns a preset theme by exact name.
func Get(name string) (Theme, bool) {
	for _, t := range catalog {
		if t.Name == name {
			return t, true
		}
	}
	return Theme{}, false
}

// Custom wraps a user-built color set into a Theme tagged as custom.
func Custom(name string, colors models.ColorSet) Theme {
	return Theme{Name: name, Colors: colors, Source: SourceCustom}
}
