package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/paletteplay/paletteplay/internal/auth"
	"github.com/paletteplay/paletteplay/internal/config"
	"github.com/paletteplay/paletteplay/internal/handlers"
	"github.com/paletteplay/paletteplay/internal/middleware"
	"github.com/paletteplay/paletteplay/internal/palettes"
	"github.com/paletteplay/paletteplay/internal/rowstore"
	"github.com/paletteplay/paletteplay/internal/store"
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Server operations",
	Long:  "Start and manage the PalettePlay HTTP server",
}

var serverStartCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the HTTP server",
	Run: func(cmd *cobra.Command, args []string) {
		if err := initConfig(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		st, err := openStore()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		limit := config.GetInt("palettes.free_limit")
		paletteSvc := palettes.NewService(st, limit)

		r := gin.Default()
		r.Use(middleware.SecurityHeaders())

		r.GET("/health", handlers.HealthHandler)
		r.GET("/", handlers.HomepageHandler)
		r.GET("/theme.css", handlers.ThemeCSSHandler)

		// Rate limiter shared by the credential endpoints
		attempts := config.GetInt("ratelimit.auth_attempts")
		if attempts == 0 {
			attempts = 5
		}
		window, parseErr := time.ParseDuration(config.GetString("ratelimit.auth_window"))
		if parseErr != nil || window == 0 {
			window = time.Minute
		}
		authLimiter := middleware.NewRateLimiter(attempts, window)

		api := r.Group("/api")
		{
			api.POST("/auth/signup", middleware.RateLimit(authLimiter), handlers.SignupHandler(st))
			api.POST("/auth/login", middleware.RateLimit(authLimiter), handlers.LoginHandler(st))
			api.POST("/auth/logout", auth.RequireAuth(), handlers.LogoutHandler)
			api.GET("/auth/me", auth.RequireAuth(), handlers.MeHandler)

			api.GET("/themes", handlers.ThemeCatalogHandler)
			api.GET("/themes/:name", handlers.ThemeHandler)
			api.GET("/themes/:name/export", handlers.ThemeExportHandler)
			api.POST("/export", handlers.ExportHandler)

			api.GET("/palettes", auth.RequireAuth(), handlers.ListPalettesHandler(paletteSvc))
			api.POST("/palettes", auth.RequireAuth(), handlers.CreatePaletteHandler(paletteSvc))
		}

		httpPort := config.GetString("server.http_port")
		httpAddr := fmt.Sprintf(":%s", httpPort)
		fmt.Printf("Starting HTTP server on %s\n", httpAddr)
		fmt.Printf("Row store backend: %s\n", config.GetString("sheets.backend"))
		fmt.Printf("Free palette limit: %d\n", limit)
		if err := r.Run(httpAddr); err != nil {
			fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
			os.Exit(1)
		}
	},
}

// openRowStore builds the configured row store backend.
func openRowStore() (rowstore.RowStore, error) {
	backend := config.GetString("sheets.backend")
	switch backend {
	case "memory":
		return rowstore.NewMemoryStore(), nil
	case "google":
		rows, err := rowstore.NewSheetsStore(
			context.Background(),
			config.GetString("sheets.credentials_file"),
			config.GetString("sheets.spreadsheet_id"),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to open sheets store: %w", err)
		}
		return rows, nil
	default:
		return nil, fmt.Errorf("unsupported sheets backend: %s", backend)
	}
}

// openStore builds the store adapter on the configured backend.
func openStore() (*store.Store, error) {
	rows, err := openRowStore()
	if err != nil {
		return nil, err
	}
	return store.New(rows), nil
}

func init() {
	serverCmd.AddCommand(serverStartCmd)
	rootCmd.AddCommand(serverCmd)
}
