package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RequireAuth validates the session cookie and stores the caller's claims in
// the request context. API callers get a JSON 401, not a redirect.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		cookie, err := c.Cookie(CookieName)
		if err != nil || cookie == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		claims, err := ValidateToken(cookie)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		c.Set("claims", claims)
		c.Next()
	}
}

// CallerClaims returns the authenticated caller's claims, or nil when the
// request carried no valid session.
func CallerClaims(c *gin.Context) *Claims {
	val, exists := c.Get("claims")
	if !exists {
		return nil
	}
	claims, ok := val.(*Claims)
	if !ok {
		return nil
	}
	return claims
}

// CallerID returns the authenticated user's id, or "" when anonymous.
func CallerID(c *gin.Context) string {
	if claims := CallerClaims(c); claims != nil {
		return claims.UserID
	}
	return ""
}
