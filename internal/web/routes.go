package web

import (
	"github.com/go-chi/chi/v5"
	"github.com/jvokurka/tripbook/internal/web/handlers"
	"github.com/jvokurka/tripbook/internal/web/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (s *Server) setupRoutes(sessionManager *middleware.SessionManager) {
	// Create handlers
	engine := handlers.NewSuggestionEngine(s.stores.Trips, s.stores.Photos, s.stores.Albums, s.log)
	authHandler := handlers.NewAuthHandler(s.stores.Users, sessionManager, s.log)
	tripsHandler := handlers.NewTripsHandler(s.stores.Trips, s.log)
	photosHandler := handlers.NewPhotosHandler(s.stores.Trips, s.stores.Photos, s.log)
	suggestionsHandler := handlers.NewSuggestionsHandler(engine, s.stores.Trips, s.namer, s.log)
	albumsHandler := handlers.NewAlbumsHandler(engine, s.stores.Trips, s.stores.Albums, s.log)

	// Health check and metrics (no auth required)
	s.router.Get("/api/v1/health", handlers.HealthCheck)
	s.router.Handle("/metrics", promhttp.Handler())

	// API routes
	s.router.Route("/api/v1", func(r chi.Router) {
		// Auth routes
		r.Post("/auth/register", authHandler.Register)
		r.Post("/auth/login", authHandler.Login)
		r.Post("/auth/logout", authHandler.Logout)
		r.Get("/auth/status", authHandler.Status)

		// All other routes require authentication
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth(sessionManager))

			// Trips
			r.Get("/trips", tripsHandler.List)
			r.Post("/trips", tripsHandler.Create)
			r.Get("/trips/{id}", tripsHandler.Get)

			// Photos
			r.Post("/trips/{id}/photos", photosHandler.Add)
			r.Get("/trips/{id}/photos/unsorted", photosHandler.ListUnsorted)

			// Suggestions
			r.Post("/trips/{id}/suggestions", suggestionsHandler.Suggest)

			// Albums
			r.Get("/trips/{id}/albums", albumsHandler.List)
			r.Post("/trips/{id}/albums", albumsHandler.Create)
			r.Get("/albums/{albumID}", albumsHandler.Get)
			r.Get("/albums/{albumID}/photos", albumsHandler.GetPhotos)
		})
	})
}
