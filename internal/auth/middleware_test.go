package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestRequireAuthNoCookie(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/api/palettes", nil)

	RequireAuth()(c)

	if !c.IsAborted() {
		t.Error("request without cookie should be aborted")
	}
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", w.Code)
	}
}

func TestRequireAuthInvalidToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	t.Setenv("PALETTEPLAY_JWT_SECRET", "test-secret")

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/api/palettes", nil)
	c.Request.AddCookie(&http.Cookie{Name: CookieName, Value: "not-a-jwt"})

	RequireAuth()(c)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 for garbage token, got %d", w.Code)
	}
}

func TestRequireAuthValidTokenSetsClaims(t *testing.T) {
	gin.SetMode(gin.TestMode)
	t.Setenv("PALETTEPLAY_JWT_SECRET", "test-secret")

	token, err := GenerateToken(testUser())
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/api/palettes", nil)
	c.Request.AddCookie(&http.Cookie{Name: CookieName, Value: token})

	RequireAuth()(c)

	if c.IsAborted() {
		t.Fatalf("valid token should pass, got status %d", w.Code)
	}
	if CallerID(c) != "11111111-2222-3333-4444-555555555555" {
		t.Errorf("CallerID = %q, want the token's user id", CallerID(c))
	}
	claims := CallerClaims(c)
	if claims == nil || claims.Email != "ada@example.com" {
		t.Errorf("claims not stored in context: %+v", claims)
	}
}

func TestCallerIDAnonymous(t *testing.T) {
	gin.SetMode(gin.TestMode)

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	if CallerID(c) != "" {
		t.Error("anonymous request should have empty caller id")
	}
}
