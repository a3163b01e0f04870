package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"lexigate/internal/api"
	"lexigate/internal/config"
	"lexigate/internal/crypto"
	"lexigate/internal/database"
	"lexigate/internal/gateway"
	"lexigate/internal/llm"
	"lexigate/internal/maintenance"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// Setup logging
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})

	log.Info().Msg("Lexigate starting up")

	// Load config (.env is optional)
	if err := godotenv.Load(); err == nil {
		log.Info().Msg("loaded .env file")
	}
	cfg := config.Load()

	// Connect database
	db, err := database.New(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	// Resolve the backend model once; the gateway holds it read-only
	// for its whole lifetime.
	gw, client, catalog := buildGateway(cfg)

	// Start history pruning
	scheduler := maintenance.NewScheduler(db, cfg)
	if err := scheduler.Start(); err != nil {
		log.Fatal().Err(err).Msg("failed to start scheduler")
	}
	defer scheduler.Stop()

	// Create API server
	srv := api.NewServer(db, cfg, gw, client, catalog)

	httpServer := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      srv.Router(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server
	go func() {
		log.Info().Str("port", cfg.Port).Msg("HTTP server listening")
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	// Wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down gracefully")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("server shutdown error")
	}

	log.Info().Msg("Lexigate stopped")
}

// buildGateway wires the upstream client and resolves the model. A
// missing API key leaves the gateway unconfigured rather than aborting:
// the process still serves health, status, and history.
func buildGateway(cfg *config.Config) (*gateway.Gateway, llm.Client, []llm.Model) {
	timeout := time.Duration(cfg.UpstreamTimeout) * time.Second

	if cfg.APIKey == "" {
		log.Warn().Msg("PROVIDER_API_KEY not set, translation and definition endpoints disabled")
		return gateway.New(nil, "", timeout), nil, nil
	}

	client, err := llm.NewClient(cfg.Provider, cfg.APIKey, cfg.BaseAPIURL)
	if err != nil {
		log.Warn().Err(err).Str("provider", cfg.Provider).Msg("invalid provider configuration, endpoints disabled")
		return gateway.New(nil, "", timeout), nil, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Verify we can reach the provider. A failure is diagnostic only:
	// the catalog fetch below degrades to the fallback model anyway.
	if err := client.TestConnection(ctx); err != nil {
		log.Warn().Err(err).Str("provider", cfg.Provider).Msg("upstream connection test failed")
	} else {
		log.Info().Str("provider", cfg.Provider).Msg("upstream connection verified")
	}

	catalog := llm.FetchCatalog(ctx, client)
	policy := llm.PolicyFromPatterns(cfg.Preferences, cfg.DefaultModel)
	model := llm.Resolve(cfg.ModelOverride, catalog, policy)

	log.Info().
		Str("provider", cfg.Provider).
		Str("model", model).
		Str("api_key", crypto.MaskAPIKey(cfg.APIKey)).
		Msg("upstream model resolved")

	return gateway.New(client, model, timeout), client, catalog
}
