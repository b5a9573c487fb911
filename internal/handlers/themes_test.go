package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/paletteplay/paletteplay/internal/themes"
)

func TestThemeCatalogHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/api/themes", nil)

	ThemeCatalogHandler(c)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var result []themes.Theme
	if err := json.Unmarshal(w.Body.Bytes(), &result); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if len(result) != 15 {
		t.Errorf("expected 15 themes, got %d", len(result))
	}
}

func TestThemeHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/api/themes/Stripe", nil)
	c.Params = gin.Params{{Key: "name", Value: "Stripe"}}

	ThemeHandler(c)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "#635BFF") {
		t.Errorf("Stripe accent missing from body: %s", w.Body.String())
	}
}

func TestThemeHandlerNotFound(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/api/themes/Nope", nil)
	c.Params = gin.Params{{Key: "name", Value: "Nope"}}

	ThemeHandler(c)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
}

func TestThemeExportHandlerDefaultsToCSS(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/api/themes/GitHub/export", nil)
	c.Params = gin.Params{{Key: "name", Value: "GitHub"}}

	ThemeExportHandler(c)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp struct {
		Framework string `json:"framework"`
		Code      string `json:"code"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if resp.Framework != "css" {
		t.Errorf("default framework = %q, want css", resp.Framework)
	}
	if !strings.Contains(resp.Code, "#0366D6") {
		t.Error("snippet should contain the GitHub accent color")
	}
}

func TestThemeExportHandlerUnknownFramework(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/api/themes/GitHub/export?framework=svelte", nil)
	c.Params = gin.Params{{Key: "name", Value: "GitHub"}}

	ThemeExportHandler(c)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestExportHandlerCustomColors(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = jsonRequest("POST", "/api/export",
		`{"framework":"tailwind","name":"Mine","colors":{"background":"#FAFAF8","text":"#2D2D2D","accent":"#2E8B9E","secondary":"#6B7280"}}`)

	ExportHandler(c)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "tailwind.config.js") {
		t.Errorf("expected tailwind snippet, got %s", w.Body.String())
	}
}

func TestExportHandlerRejectsBadColors(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = jsonRequest("POST", "/api/export", `{"framework":"css","colors":{"background":"blue"}}`)

	ExportHandler(c)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestThemeCSSHandlerKnownTheme(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/theme.css?theme=Docker", nil)

	ThemeCSSHandler(c)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/css") {
		t.Errorf("content type = %q, want text/css", ct)
	}
	if !strings.Contains(w.Body.String(), "--theme-background: #2496ED") {
		t.Error("stylesheet should use the Docker background")
	}
}

func TestThemeCSSHandlerFallsBackOnUnknown(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/theme.css?theme=DoesNotExist", nil)

	ThemeCSSHandler(c)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 with fallback theme, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "--theme-background: #F0E6FF") {
		t.Error("fallback should be the Dreamy theme")
	}
}

func TestHomepageHandlerRendersCatalog(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/", nil)

	HomepageHandler(c)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	body := w.Body.String()
	for _, name := range []string{"Dreamy", "Airbnb", "Startup"} {
		if !strings.Contains(body, name) {
			t.Errorf("homepage missing theme %q", name)
		}
	}
}
