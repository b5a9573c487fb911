package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/paletteplay/paletteplay/internal/auth"
	"github.com/paletteplay/paletteplay/internal/store"
	"github.com/paletteplay/paletteplay/internal/users"
)

type signupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignupHandler creates a new account.
func SignupHandler(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req signupRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}

		user, err := users.Signup(c.Request.Context(), st, req.Email, req.Password, req.Name)
		if err != nil {
			if errors.Is(err, users.ErrAlreadyExists) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "User already exists"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"id":    user.ID,
			"email": user.Email,
			"name":  user.Name,
		})
	}
}

// LoginHandler verifies credentials and issues the session cookie.
func LoginHandler(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req loginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}

		user, err := users.Authenticate(c.Request.Context(), st, req.Email, req.Password)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
			return
		}

		token, err := auth.GenerateToken(user)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}

		// Set SameSite attribute before setting cookie
		c.SetSameSite(http.SameSiteLaxMode)

		c.SetCookie(
			auth.CookieName,
			token,
			28800, // 8 hours in seconds
			"/",
			"",
			false, // secure (set to true in production with HTTPS)
			true,  // httpOnly
		)

		c.JSON(http.StatusOK, gin.H{
			"id":    user.ID,
			"email": user.Email,
			"name":  user.Name,
		})
	}
}

// LogoutHandler clears the session cookie.
func LogoutHandler(c *gin.Context) {
	c.SetCookie(
		auth.CookieName,
		"",
		-1, // max age -1 deletes the cookie
		"/",
		"",
		false,
		true,
	)
	c.JSON(http.StatusOK, gin.H{"status": "logged out"})
}

// MeHandler returns the authenticated caller's profile.
func MeHandler(c *gin.Context) {
	claims := auth.CallerClaims(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":    claims.UserID,
		"email": claims.Email,
		"name":  claims.Name,
	})
}
