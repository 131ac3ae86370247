package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
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

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		// Health check
		r.Get("/health", s.handleHealth)

		// System metrics
		r.Get("/metrics", s.handleMetrics)

		// Room endpoints
		r.Route("/rooms", func(r chi.Router) {
			r.Get("/", s.handleListRooms)
			r.Put("/{id}", s.handleUpsertRoom)
		})

		// Device endpoints
		r.Route("/devices", func(r chi.Router) {
			r.Get("/{id}", s.handleGetDevice)
			r.Put("/{id}", s.handleUpdateDeviceState)
		})

		// Whole-home singletons
		r.Get("/security", s.handleGetSecurity)
		r.Put("/security", s.handleUpsertSecurity)
		r.Get("/media", s.handleGetMedia)
		r.Put("/media", s.handleUpsertMedia)
		r.Get("/preferences", s.handleGetPreferences)
		r.Put("/preferences", s.handleUpsertPreferences)

		// Energy usage (read-only)
		r.Get("/energy", s.handleListEnergy)
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
