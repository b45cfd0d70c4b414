package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/ewilliams-labs/moodsnap/internal/core/presets"
	"github.com/ewilliams-labs/moodsnap/internal/core/services"
)

// Handler manages the HTTP interface for our application.
type Handler struct {
	gateway  *services.Gateway
	resolver presets.Resolver
	router   chi.Router
}

// NewHandler initializes the HTTP adapter and sets up routes.
func NewHandler(gateway *services.Gateway, resolver presets.Resolver) *Handler {
	h := &Handler{
		gateway:  gateway,
		resolver: resolver,
		router:   chi.NewRouter(),
	}

	h.middleware()
	h.routes()

	return h
}

// ServeHTTP satisfies the http.Handler interface.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.router.ServeHTTP(w, r)
}

func (h *Handler) middleware() {
	h.router.Use(middleware.RequestID)
	h.router.Use(middleware.RealIP)
	h.router.Use(middleware.Logger)
	h.router.Use(middleware.Recoverer)
}

// routes defines the mapping between URLs and methods.
func (h *Handler) routes() {
	h.router.Get("/health", h.HealthCheck)

	h.router.Route("/moods", func(r chi.Router) {
		r.Post("/text", h.AnalyzeText)
		r.Post("/photo", h.AnalyzePhoto)
		r.Post("/quote", h.GenerateQuote)
		r.Post("/filter", h.RecommendFilter)
	})

	h.router.Get("/presets", h.ListPresets)
	h.router.Post("/presets/resolve", h.ResolvePresets)
}

// HealthCheck is a simple endpoint to verify the API is running.
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "message": "MoodSnap is live 📸"})
}
