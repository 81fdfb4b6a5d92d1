package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"
)

// buildRouter creates the HTTP router with all routes and middleware.
func (s *Server) buildRouter() http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(s.requestIDMiddleware)
	r.Use(s.loggingMiddleware)
	r.Use(s.recoveryMiddleware)
	r.Use(s.corsMiddleware)
	r.Use(s.bodySizeLimitMiddleware)

	// Health check (no auth required)
	r.Get("/health", s.handleHealth)

	// Registration is the only endpoint open to anonymous bursts, so it
	// carries a per-IP rate limit.
	registerLimit := s.cfg.RateLimit.RegisterPerMinute
	r.With(httprate.Limit(
		registerLimit,
		time.Minute,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			writeRateLimited(w, r, registerLimit)
		}),
	)).Post("/register", s.handleRegister)

	// Token issuance (no auth required)
	r.Post("/token", s.handleToken)

	// Protected routes
	r.Group(func(r chi.Router) {
		r.Use(s.requireAuth)

		r.Get("/users/me", s.handleMe)

		r.Route("/devices", func(r chi.Router) {
			r.Get("/", s.handleListDevices)
			r.Post("/", s.handleCreateDevice)
			r.Put("/{id}/state", s.handleSetDeviceState)
		})

		r.Post("/telemetry", s.handleCreateTelemetry)
		r.Get("/telemetry/{device_id}", s.handleListTelemetry)
	})

	return r
}

// handleHealth returns the server health status.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":  "ok",
		"version": s.version,
	})
}
