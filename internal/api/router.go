// Package api provides the HTTP API for SenseTheWorld.
package api

import (
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/sensetheworld/sensetheworld/internal/api/handler"
	"github.com/sensetheworld/sensetheworld/internal/api/middleware"
	"github.com/sensetheworld/sensetheworld/internal/auth"
	"github.com/sensetheworld/sensetheworld/internal/catalog"
	"github.com/sensetheworld/sensetheworld/internal/chat"
	"github.com/sensetheworld/sensetheworld/internal/community"
	"github.com/sensetheworld/sensetheworld/internal/profile"
	"github.com/sensetheworld/sensetheworld/internal/voice"
)

// RouterConfig holds configuration for the router.
type RouterConfig struct {
	Version          string
	BuildTime        string
	Logger           zerolog.Logger
	ServiceName      string
	Metrics          *middleware.Metrics
	JWTService       *auth.JWTService
	CatalogService   *catalog.Service
	ProfileService   *profile.Service
	CommunityService *community.Service
	ChatService      *chat.Service
	Interpreter      *voice.Interpreter
	OpsHandler       *handler.OpsHandler
}

// NewRouter creates a new chi router with all API routes configured.
func NewRouter(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()

	// Set default service name if not provided
	serviceName := cfg.ServiceName
	if serviceName == "" {
		serviceName = "sensetheworld-api"
	}

	interpreter := cfg.Interpreter
	if interpreter == nil {
		interpreter = voice.NewInterpreter(nil)
	}

	// Global middleware - order matters
	r.Use(middleware.RequestID)            // Generate/propagate request ID first
	r.Use(middleware.Tracing(serviceName)) // Distributed tracing
	if cfg.Metrics != nil {
		r.Use(cfg.Metrics.Middleware()) // HTTP metrics
	}
	r.Use(middleware.Logger(cfg.Logger))   // Structured logging
	r.Use(middleware.Recovery(cfg.Logger)) // Panic recovery
	r.Use(chimiddleware.RealIP)            // Real IP extraction
	r.Use(middleware.SecurityHeaders)      // Security headers (HSTS, CSP, etc.)
	r.Use(middleware.RequireTLS)           // TLS enforcement (enabled via REQUIRE_TLS=true)
	r.Use(middleware.ContentTypeJSON)      // JSON content type
	r.Use(middleware.RequireJSON)          // Reject non-JSON request bodies

	// Initialize handlers
	opsHandler := cfg.OpsHandler
	if opsHandler == nil {
		opsHandler = handler.NewOpsHandler(handler.OpsHandlerConfig{
			Version:        cfg.Version,
			BuildTime:      cfg.BuildTime,
			CatalogService: cfg.CatalogService,
		})
	}
	riskHandler := handler.NewRiskHandler(cfg.CatalogService, cfg.ProfileService)
	comfortHandler := handler.NewComfortHandler(cfg.ProfileService)
	voiceHandler := handler.NewVoiceHandler(interpreter)
	destinationHandler := handler.NewDestinationHandler(cfg.CatalogService)
	profileHandler := handler.NewProfileHandler(cfg.ProfileService)
	communityHandler := handler.NewCommunityHandler(cfg.CommunityService)
	chatHandler := handler.NewChatHandler(cfg.ChatService, cfg.ProfileService)
	metadataHandler := handler.NewMetadataHandler(interpreter)

	// Create auth middleware
	authMiddleware := middleware.Auth(cfg.JWTService)
	optionalAuth := middleware.OptionalAuth(cfg.JWTService)

	// Create rate limit middleware for different endpoint categories
	expensiveRateLimit := middleware.RateLimitByIP(middleware.ExpensiveRateLimit) // 30 req/min
	standardRateLimit := middleware.RateLimitByIP(middleware.StandardRateLimit)   // 100 req/min

	// API v1 routes
	r.Route("/v1", func(r chi.Router) {
		// Ops endpoints (public)
		r.Route("/ops", func(r chi.Router) {
			r.Get("/health", opsHandler.HealthCheck)
			r.Get("/ready", opsHandler.ReadinessCheck)
			// Status endpoint requires authentication
			r.With(authMiddleware).Get("/status", opsHandler.SystemStatus)
		})

		// Metadata endpoints (public) - standard rate limiting
		r.Route("/metadata", func(r chi.Router) {
			r.Use(standardRateLimit)
			r.Get("/enums", metadataHandler.GetEnums)
			r.Get("/pages", metadataHandler.ListPageDescriptions)
		})

		// Destination catalog (public) - standard rate limiting
		r.Route("/destinations", func(r chi.Router) {
			r.Use(standardRateLimit)
			r.Get("/", destinationHandler.ListDestinations)
			r.Route("/{countryIso}", func(r chi.Router) {
				r.Get("/", destinationHandler.GetDestination)
				r.Get("/activities", destinationHandler.ListDestinationActivities)
			})
		})
		r.With(standardRateLimit).Get("/activities/{activityId}", destinationHandler.GetActivity)

		// Risk assessment - works anonymously with inline profiles,
		// uses the stored profile when a bearer token is present
		r.With(optionalAuth, expensiveRateLimit).Post("/risk:assess", riskHandler.AssessRisk)

		// Comfort score - same profile resolution as risk assessment
		r.With(optionalAuth, standardRateLimit).Post("/comfort:score", comfortHandler.ScoreComfort)

		// Voice command interpretation (public) - standard rate limiting
		r.With(standardRateLimit).Post("/voice:interpret", voiceHandler.InterpretVoice)

		// Me endpoints (authenticated) - user-based rate limiting
		r.Route("/me", func(r chi.Router) {
			r.Use(authMiddleware)
			r.Use(middleware.RateLimitByUser(middleware.StandardRateLimit)) // 100 req/min per user
			r.Get("/profile", profileHandler.GetProfile)
			r.Put("/profile", profileHandler.UpsertProfile)
			r.Delete("/profile", profileHandler.DeleteProfile)
		})

		// Community directory - listing is public, membership changes
		// require authentication
		r.Route("/community/members", func(r chi.Router) {
			r.With(standardRateLimit).Get("/", communityHandler.ListMembers)
			r.With(authMiddleware, middleware.RateLimitByUser(middleware.StandardRateLimit)).
				Post("/", communityHandler.JoinCommunity)
			r.With(authMiddleware, middleware.RateLimitByUser(middleware.StandardRateLimit)).
				Delete("/me", communityHandler.LeaveCommunity)
		})

		// Assistant chat (authenticated) - expensive compute, strict rate limiting
		r.With(authMiddleware, middleware.RateLimitByUser(middleware.ExpensiveRateLimit)).
			Post("/chat", chatHandler.SendMessage)
	})

	return r
}
