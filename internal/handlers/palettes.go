package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/paletteplay/paletteplay/internal/auth"
	"github.com/paletteplay/paletteplay/internal/models"
	"github.com/paletteplay/paletteplay/internal/palettes"
)

type createPaletteRequest struct {
	Name   string          `json:"name"`
	Colors models.ColorSet `json:"colors"`
}

// ListPalettesHandler returns the caller's saved palettes, newest first.
func ListPalettesHandler(svc *palettes.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		result, err := svc.ListMine(c.Request.Context(), auth.CallerID(c))
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

// CreatePaletteHandler saves a palette for the caller, mapping policy
// rejections to the response codes the upgrade flow expects.
func CreatePaletteHandler(svc *palettes.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req createPaletteRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		if req.Name == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "palette name is required"})
			return
		}
		if !req.Colors.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "colors must be hex values for background, text, accent and secondary"})
			return
		}

		palette, err := svc.CreateMine(c.Request.Context(), auth.CallerID(c), req.Name, req.Colors)
		if err != nil {
			var quotaErr *palettes.QuotaError
			switch {
			case errors.Is(err, palettes.ErrUnauthorized):
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			case errors.As(err, &quotaErr):
				c.JSON(http.StatusPaymentRequired, gin.H{
					"error": fmt.Sprintf(
						"You have reached the free limit of %d palettes. Upgrade to Premium for unlimited palettes.",
						quotaErr.Limit),
					"requiresPremium": true,
				})
			case errors.Is(err, palettes.ErrDuplicatePalette):
				c.JSON(http.StatusConflict, gin.H{"error": "You already saved this color combination"})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			}
			return
		}

		c.JSON(http.StatusOK, palette)
	}
}
