package main

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"matzip-radar/internal/config"
	"matzip-radar/internal/geocode"
	"matzip-radar/internal/places"
)

// App encapsulates application dependencies
type App struct {
	router         *gin.Engine
	logger         *slog.Logger
	cfg            *config.Config
	geocodeService geocode.Service
	placesService  places.Service
}

// NewApp creates a new application with injected dependencies
func NewApp(cfg *config.Config, logger *slog.Logger) *App {
	// Set Gin mode from configuration
	gin.SetMode(cfg.Server.GinMode)

	// Create Gin router
	router := gin.New()

	// Add middleware
	router.Use(gin.Recovery())

	app := &App{
		router:         router,
		logger:         logger,
		cfg:            cfg,
		geocodeService: geocode.NewGeocodeService(cfg.Google.APIKey, logger),
		placesService:  places.NewPlacesService(cfg, logger),
	}

	// Register routes
	app.registerRoutes()

	return app
}

// Run starts the HTTP server
func (app *App) Run(addr string) error {
	return app.router.Run(addr)
}
