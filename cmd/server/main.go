// Package main is the entry point for the itinerary normalization service.
//
//	@title						Itinerary Normalization API
//	@version					1.0.0
//	@description				Normalizes raw flight search responses from heterogeneous provider schemas into a canonical itinerary model with transfer analysis, fare classification, relevance filtering and ranking.
//
//	@contact.name				API Support
//	@contact.url				https://github.com/flight-search/itinerary-normalization-service/issues
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/api/v1
//
//	@schemes					http https
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	// Import generated docs for swagger
	_ "github.com/flight-search/itinerary-normalization-service/docs"

	itinhttp "github.com/flight-search/itinerary-normalization-service/internal/adapter/http"
	"github.com/flight-search/itinerary-normalization-service/internal/adapter/http/middleware"
	"github.com/flight-search/itinerary-normalization-service/internal/config"
	"github.com/flight-search/itinerary-normalization-service/internal/infrastructure/logger"
	"github.com/flight-search/itinerary-normalization-service/internal/normalizer"
	"github.com/flight-search/itinerary-normalization-service/internal/schema"
	"github.com/flight-search/itinerary-normalization-service/internal/searchstate"
)

const (
	shutdownTimeout = 10 * time.Second
)

func main() {
	// Load configuration
	cfg := config.MustLoad()

	// Initialize the global logger from config
	logCfg := logger.DefaultConfig()
	logCfg.Level = cfg.Logging.Level
	logCfg.Format = cfg.Logging.Format
	logger.Init(logCfg)
	log := logger.Global

	log.Info().
		Str("env", cfg.App.Env).
		Int("port", cfg.Server.Port).
		Str("default_currency", cfg.Normalizer.DefaultCurrency).
		Msg("Configuration loaded")

	// Build the normalization pipeline
	pipeline, err := buildPipeline(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to build normalization pipeline")
	}

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Configure server timeouts from config
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	// Setup middleware and routes
	middleware.Setup(e, log.Logger)
	setupRoutes(e, cfg, pipeline)

	// Start server with graceful shutdown
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	go func() {
		log.Info().Str("address", addr).Msg("Starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Wait for interrupt signal
	gracefulShutdown(e, log)
}

// buildPipeline assembles the normalization pipeline from config. The alias
// tables come from the optional override file when one is configured,
// otherwise from the embedded defaults.
func buildPipeline(cfg *config.Config) (*normalizer.Pipeline, error) {
	aliases := schema.DefaultAliasConfig()
	if cfg.Normalizer.SchemaAliasFile != "" {
		loaded, err := schema.LoadAliasConfig(cfg.Normalizer.SchemaAliasFile)
		if err != nil {
			return nil, fmt.Errorf("load schema aliases: %w", err)
		}
		aliases = loaded
	}

	return normalizer.NewPipeline(aliases, &normalizer.Config{
		DefaultCurrency: cfg.Normalizer.DefaultCurrency,
		LogoURLTemplate: cfg.Normalizer.AirlineLogoURLTemplate,
	}), nil
}

// setupRoutes configures the HTTP routes.
func setupRoutes(e *echo.Echo, cfg *config.Config, pipeline *normalizer.Pipeline) {
	handler := itinhttp.NewItineraryHandler(pipeline)
	itinhttp.RegisterRoutes(e, handler)

	// Search lifecycle surface: the one stateful piece, kept outside the pipeline
	machine := searchstate.NewMachine(nil, &searchstate.Config{
		PollingTimeout:         cfg.Search.PollingTimeout,
		MaxConsecutiveFailures: cfg.Search.MaxConsecutiveFailures,
	})
	itinhttp.RegisterSearchRoutes(e, itinhttp.NewSearchHandler(machine, pipeline))

	// Swagger documentation endpoint
	e.GET("/swagger/*", echoSwagger.WrapHandler)
}

// gracefulShutdown handles graceful server shutdown on interrupt signals.
func gracefulShutdown(e *echo.Echo, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Error during server shutdown")
	}

	log.Info().Msg("Server stopped")
}
