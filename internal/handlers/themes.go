package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/paletteplay/paletteplay/internal/config"
	"github.com/paletteplay/paletteplay/internal/models"
	"github.com/paletteplay/paletteplay/internal/themes"
)

// ThemeCatalogHandler returns all preset themes.
func ThemeCatalogHandler(c *gin.Context) {
	c.JSON(http.StatusOK, themes.Catalog())
}

// ThemeHandler returns a single preset theme by name.
func ThemeHandler(c *gin.Context) {
	theme, ok := themes.Get(c.Param("name"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "theme not found"})
		return
	}
	c.JSON(http.StatusOK, theme)
}

// ThemeExportHandler renders a code snippet for a preset theme. The
// framework defaults to plain CSS.
func ThemeExportHandler(c *gin.Context) {
	theme, ok := themes.Get(c.Param("name"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "theme not found"})
		return
	}

	framework := c.DefaultQuery("framework", "css")
	code, err := themes.GenerateSnippet(framework, theme)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"framework": framework,
		"code":      code,
	})
}

type exportRequest struct {
	Framework string          `json:"framework"`
	Name      string          `json:"name"`
	Colors    models.ColorSet `json:"colors"`
}

// ExportHandler renders a snippet for an arbitrary (custom) color set, so
// the palette builder can export without saving first.
func ExportHandler(c *gin.Context) {
	var req exportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if !req.Colors.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "colors must be hex values for background, text, accent and secondary"})
		return
	}
	if req.Framework == "" {
		req.Framework = "css"
	}
	if req.Name == "" {
		req.Name = "Custom"
	}

	code, err := themes.GenerateSnippet(req.Framework, themes.Custom(req.Name, req.Colors))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"framework": req.Framework,
		"code":      code,
	})
}

// ThemeCSSHandler serves the stylesheet for the requested preset theme.
// Unknown or missing names fall back to the configured default.
func ThemeCSSHandler(c *gin.Context) {
	name := c.Query("theme")
	theme, ok := themes.Get(name)
	if !ok {
		fallback := config.GetString("themes.default")
		if fallback == "" {
			fallback = "Dreamy"
		}
		theme, ok = themes.Get(fallback)
		if !ok {
			theme = themes.Catalog()[0]
		}
	}

	c.Data(http.StatusOK, "text/css; charset=utf-8", []byte(themes.GenerateCSS(theme.Colors)))
}
