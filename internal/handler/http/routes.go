package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(middleware.RealIP)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withMetrics)
	router.Use(middleware.Timeout(h.requestTimeout))
	router.Use(middleware.Compress(5, "application/json"))

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/health", h.getHealth)
		r.Get("/version", h.getVersion)
		r.Post("/login", h.login)
		r.Method(http.MethodGet, "/metrics", h.metrics.Handler())
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Get("/coins", h.getCoins)
		r.Get("/categories", h.getCategories)
		r.Get("/filtered-coins", h.getFilteredCoins)
	})

	router.NotFound(notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
