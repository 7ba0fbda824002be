// Package main provides the entrypoint for the SenseTheWorld API server.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/sensetheworld/sensetheworld/internal/api"
	"github.com/sensetheworld/sensetheworld/internal/api/handler"
	"github.com/sensetheworld/sensetheworld/internal/api/middleware"
	"github.com/sensetheworld/sensetheworld/internal/auth"
	"github.com/sensetheworld/sensetheworld/internal/catalog"
	"github.com/sensetheworld/sensetheworld/internal/catalog/traveladvisory"
	"github.com/sensetheworld/sensetheworld/internal/chat"
	"github.com/sensetheworld/sensetheworld/internal/chat/gemini"
	"github.com/sensetheworld/sensetheworld/internal/community"
	"github.com/sensetheworld/sensetheworld/internal/database"
	"github.com/sensetheworld/sensetheworld/internal/profile"
	"github.com/sensetheworld/sensetheworld/internal/provider/resilience"
	"github.com/sensetheworld/sensetheworld/internal/telemetry"
	"github.com/sensetheworld/sensetheworld/internal/voice"
)

// Version and BuildTime are set at compile time via ldflags.
var (
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	const serviceName = "sensetheworld-api"

	// Setup structured logging
	log := zerolog.New(os.Stdout).
		With().
		Timestamp().
		Str("service", serviceName).
		Str("version", Version).
		Logger()

	log.Info().
		Str("build_time", BuildTime).
		Msg("starting SenseTheWorld API")

	// Get configuration from environment
	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "8080"
	}

	// Initialize OpenTelemetry
	ctx := context.Background()
	telemetryConfig := telemetry.ConfigFromEnv(serviceName)
	telemetryConfig.ServiceVersion = Version

	tp, err := telemetry.Init(ctx, telemetryConfig)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize telemetry")
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if shutdownErr := tp.Shutdown(shutdownCtx); shutdownErr != nil {
			log.Error().Err(shutdownErr).Msg("failed to shutdown telemetry")
		}
	}()

	if telemetryConfig.Enabled {
		log.Info().
			Str("otlp_endpoint", telemetryConfig.OTLPEndpoint).
			Msg("OpenTelemetry initialized")
	}

	// Initialize metrics
	metrics, err := middleware.NewMetrics()
	if err != nil {
		log.Error().Err(err).Msg("failed to initialize metrics")
		os.Exit(1) //nolint:gocritic // intentional exit, telemetry cleanup is best-effort
	}

	// Connect to database
	dbConfig := database.ConfigFromEnv()
	pool, err := database.Connect(ctx, dbConfig)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer pool.Close()
	log.Info().
		Str("host", dbConfig.Host).
		Int("port", dbConfig.Port).
		Str("database", dbConfig.Database).
		Msg("database connected")

	if err := database.Migrate(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	// Initialize JWT service (get signing key from environment)
	jwtSigningKey := os.Getenv("JWT_SIGNING_KEY")
	if jwtSigningKey == "" {
		jwtSigningKey = "local-dev-signing-key-change-in-production"
		log.Warn().Msg("using default JWT signing key - not secure for production")
	}

	jwtService := auth.NewJWTService(auth.JWTConfig{
		SigningKey: jwtSigningKey,
		Issuer:     "https://api.sensetheworld.app",
		Audience:   "sensetheworld-api",
	})

	// Initialize the advisory provider (may be nil if not configured)
	var advisoryProvider catalog.AdvisoryProvider
	advisoryKey := os.Getenv("TRAVEL_ADVISORY_API_KEY")
	if advisoryKey != "" {
		advisoryProvider = traveladvisory.NewClient(traveladvisory.ClientConfig{
			APIKey: advisoryKey,
			Logger: log,
		})
		log.Info().Msg("travel advisory provider initialized")
	} else {
		log.Warn().Msg("travel advisory provider not configured - serving bundled advisory data")
	}

	catalogService := catalog.NewService(catalog.ServiceConfig{
		Provider: advisoryProvider,
		Logger:   log,
	})
	log.Info().Msg("catalog service initialized")

	// Initialize profile repository and service
	profileRepo := profile.NewPostgresRepository(pool)
	profileService := profile.NewService(profileRepo)
	log.Info().Msg("profile service initialized")

	// Initialize community repository and service
	communityRepo := community.NewPostgresRepository(pool)
	communityService := community.NewService(community.ServiceConfig{
		Repository: communityRepo,
		Logger:     log,
	})
	log.Info().Msg("community service initialized")

	// Initialize the chat model provider (may be nil if not configured)
	var modelProvider chat.Provider
	geminiKey := os.Getenv("GEMINI_API_KEY")
	if geminiKey != "" {
		modelProvider = gemini.NewClient(gemini.ClientConfig{
			APIKey: geminiKey,
			Model:  os.Getenv("GEMINI_MODEL"),
			Logger: log,
		})
		log.Info().Msg("chat model provider initialized")
	} else {
		log.Warn().Msg("chat model not configured - chat endpoint will return 503")
	}

	chatService := chat.NewService(chat.ServiceConfig{
		Provider: modelProvider,
		Logger:   log,
	})

	interpreter := voice.NewInterpreter(nil)

	opsHandler := handler.NewOpsHandler(handler.OpsHandlerConfig{
		Version:        Version,
		BuildTime:      BuildTime,
		Pool:           pool,
		Registry:       resilience.GlobalRegistry,
		CatalogService: catalogService,
	})

	// Create router with configuration
	router := api.NewRouter(api.RouterConfig{
		Version:          Version,
		BuildTime:        BuildTime,
		Logger:           log,
		ServiceName:      serviceName,
		Metrics:          metrics,
		JWTService:       jwtService,
		CatalogService:   catalogService,
		ProfileService:   profileService,
		CommunityService: communityService,
		ChatService:      chatService,
		Interpreter:      interpreter,
		OpsHandler:       opsHandler,
	})

	// Warm the advisory cache before serving traffic. Failure is not
	// fatal: the catalog falls back to the bundled snapshot.
	if advisoryProvider != nil {
		warmCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
		if err := catalogService.RefreshAdvisories(warmCtx); err != nil {
			log.Warn().Err(err).Msg("initial advisory refresh failed")
		}
		cancel()
	}

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Info().
			Str("addr", server.Addr).
			Msg("server listening")

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
		os.Exit(1)
	}

	log.Info().Msg("server stopped")
}
