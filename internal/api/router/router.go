package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/stackroast/stackroast/internal/api/handlers"
	"github.com/stackroast/stackroast/internal/api/middleware"
	"github.com/stackroast/stackroast/internal/config"
	"github.com/stackroast/stackroast/internal/pkg/logger"
	"github.com/stackroast/stackroast/internal/pkg/metrics"
)

type Handlers struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Tool           *handlers.ToolHandler
	Stack          *handlers.StackHandler
	Score          *handlers.ScoreHandler
	Recommendation *handlers.RecommendationHandler
}

func New(cfg *config.Config, log *logger.Logger, h *Handlers) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(log))
	r.Use(middleware.Recovery(log))
	r.Use(middleware.DefaultCORS(cfg.Server.FrontendURL))
	r.Use(middleware.RateLimit(100, 200)) // 100 req/sec, burst of 200
	r.Use(middleware.SecurityHeaders)
	r.Use(metrics.Middleware)

	// Public routes
	r.Group(func(r chi.Router) {
		// Swagger documentation
		r.Get("/swagger/*", httpSwagger.WrapHandler)

		// Prometheus metrics
		r.Handle("/metrics", metrics.Handler())

		// Health checks
		r.Get("/health", h.Health.Healthz)
		r.Get("/healthz", h.Health.Healthz)
		r.Get("/readyz", h.Health.Readyz)

		// Auth
		r.Post("/api/v1/auth/register", h.Auth.Register)
		r.Post("/api/v1/auth/login", h.Auth.Login)
		r.Post("/api/v1/auth/refresh", h.Auth.RefreshToken)
		r.Post("/api/v1/auth/logout", h.Auth.Logout)

		// Tool catalog reads are public: the landing page form needs them
		// before anyone signs up
		r.Get("/api/v1/tools", h.Tool.List)
		r.Get("/api/v1/tools/{id}", h.Tool.Get)

		// Scoring and recommendations work without an account; a valid
		// token still gets the user attached for request logs
		r.Group(func(r chi.Router) {
			r.Use(middleware.OptionalAuthMiddleware(cfg.Auth.JWTSecret))

			r.Post("/api/v1/score", h.Score.Score)
			r.Get("/api/v1/scores/percentile", h.Score.Percentile)
			r.Get("/api/v1/recommendations/hosting", h.Recommendation.Hosting)
			r.Get("/api/v1/recommendations/database", h.Recommendation.Database)
			r.Get("/api/v1/recommendations/explain", h.Recommendation.Explain)
			r.Post("/api/v1/savings", h.Recommendation.Savings)
		})
	})

	// Protected routes (require authentication)
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthMiddleware(cfg.Auth.JWTSecret))

		// Auth
		r.Get("/api/v1/auth/me", h.Auth.Me)

		// Stacks
		r.Route("/api/v1/stacks", func(r chi.Router) {
			r.Get("/", h.Stack.List)
			r.Post("/", h.Stack.Create)
			r.Get("/{id}", h.Stack.Get)
			r.Put("/{id}", h.Stack.Update)
			r.Delete("/{id}", h.Stack.Delete)
			r.Post("/{id}/score", h.Stack.Score)
			r.Get("/{id}/scores", h.Stack.History)
			r.Post("/{id}/roast", h.Stack.Roast)
		})

		// Catalog management (admin only)
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAdmin)
			r.Post("/api/v1/tools", h.Tool.Create)
			r.Put("/api/v1/tools/{id}", h.Tool.Update)
			r.Delete("/api/v1/tools/{id}", h.Tool.Delete)
		})
	})

	return r
}
