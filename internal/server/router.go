// Package server wires the HTTP routing and middleware chain.
package server

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/iudanet/solace/internal/server/auth"
	"github.com/iudanet/solace/internal/server/handlers"
	"github.com/iudanet/solace/internal/server/metrics"
	"github.com/iudanet/solace/internal/server/middleware"
)

// RouterDeps bundles everything NewRouter needs.
type RouterDeps struct {
	Logger            *slog.Logger
	Gate              *auth.Gate
	Metrics           metrics.Recorder
	Gatherer          prometheus.Gatherer
	RateLimiter       *middleware.RateLimiter
	CORSAllowedOrigin string

	Auth    *handlers.AuthHandler
	Chat    *handlers.ChatHandler
	Mood    *handlers.MoodHandler
	Content *handlers.ContentHandler
	Health  *handlers.HealthHandler
}

// NewRouter builds the chi router. Recovery, CORS, logging and rate limiting
// apply to every route; the authorization gate applies only to the protected
// group, so chat, mood and the static-content endpoints all pass through it
// before any handler work.
func NewRouter(deps *RouterDeps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RecoveryMiddleware(deps.Logger))
	r.Use(middleware.CORSMiddleware(deps.CORSAllowedOrigin))
	r.Use(middleware.LoggingMiddleware(deps.Logger, deps.Metrics))
	r.Use(deps.RateLimiter.Middleware())

	r.Handle("/metrics", metrics.Handler(deps.Gatherer))

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", deps.Health.Health)

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", deps.Auth.Register)
			r.Post("/login", deps.Auth.Login)
		})

		// Protected routes.
		r.Group(func(r chi.Router) {
			r.Use(middleware.AuthGateMiddleware(deps.Logger, deps.Gate, deps.Metrics))

			r.Post("/chat", deps.Chat.Chat)
			r.Post("/mood", deps.Mood.LogMood)
			r.Get("/mood", deps.Mood.ListMoods)
			r.Get("/meditation", deps.Content.Meditation)
			r.Get("/wellness-plan", deps.Content.WellnessPlan)
		})
	})

	return r
}
