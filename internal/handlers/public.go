package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/paletteplay/paletteplay/internal/themes"
)

// HomepageHandler serves the marketing landing page. The selected theme's
// variables are injected inline so the page previews itself in that theme.
func HomepageHandler(c *gin.Context) {
	theme, ok := themes.Get(c.Query("theme"))
	if !ok {
		theme = themes.Catalog()[0]
	}

	var cards string
	for _, t := range themes.Catalog() {
		cards += fmt.Sprintf(`
      <a class="card" href="/?theme=%s">
        <div class="swatches">
          <span style="background:%s"></span><span style="background:%s"></span><span style="background:%s"></span><span style="background:%s"></span>
        </div>
        <strong>%s</strong>
      </a>`, t.Name, t.Colors.Background, t.Colors.Text, t.Colors.Accent, t.Colors.Secondary, t.Name)
	}

	html := fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>PalettePlay - Brand color themes for your next project</title>
<style>
%s
.swatches span { display: inline-block; width: 24px; height: 24px; border-radius: 4px; border: 1px solid var(--theme-secondary); }
.grid { display: grid; grid-template-columns: repeat(auto-fill, minmax(180px, 1fr)); gap: 16px; max-width: 960px; margin: 0 auto; }
header { text-align: center; padding: 48px 16px; }
</style>
</head>
<body>
<header>
  <h1>PalettePlay</h1>
  <p>Browse preset brand themes, build your own palette, and export it for any styling framework.</p>
  <p class="secondary">Previewing: <span class="accent">%s</span></p>
</header>
<div class="grid">%s
</div>
</body>
</html>`, themes.GenerateCSS(theme.Colors), theme.Name, cards)

	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}

// HealthHandler reports service liveness.
func HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "paletteplay",
	})
}
