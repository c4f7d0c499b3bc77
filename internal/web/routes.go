package web

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/lei/deezer-web/internal/metrics"
)

// NewRouter creates and configures the HTTP router
func NewRouter(handlers *Handlers, renderer *Renderer, loggingMiddleware *LoggingMiddleware) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware - ORDER MATTERS!
	r.Use(middleware.RequestID)      // Generate request ID first
	r.Use(middleware.RealIP)         // Extract real IP
	r.Use(loggingMiddleware.Handler) // Add logger to context with request ID
	r.Use(Recoverer(renderer))       // Panic recovery onto the error page

	// CORS configuration - the site is GET-only
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "OPTIONS"},
		AllowedHeaders:   []string{"Accept"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Operational endpoints
	r.Get("/healthz", handlers.Health)
	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	// Pages
	r.Get("/", handlers.Home)
	r.Get("/search", handlers.Search)
	r.Get("/user/{id}", handlers.UserDetail)
	r.Get("/track/{id}", handlers.TrackDetail)
	r.Get("/editorial", handlers.EditorialList)
	r.Get("/editorial/{id}", handlers.EditorialDetail)
	r.Get("/album/{id}", handlers.AlbumDetail)
	r.Get("/artist/{id}", handlers.ArtistDetail)
	r.Get("/playlist/{id}", handlers.PlaylistDetail)
	r.Get("/genre", handlers.GenreList)
	r.Get("/radio", handlers.RadioList)
	r.Get("/episode/{id}", handlers.EpisodeDetail)

	r.NotFound(handlers.NotFound)

	return r
}
