package http

import (
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withRequestID, h.withLogging, withGZip)
	router.Use(middleware.Timeout(h.requestTimeout))
	if h.rateLimit > 0 {
		router.Use(httprate.LimitByIP(h.rateLimit, time.Minute))
	}

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/api/health", h.health)
		r.Get("/api/version", h.getServerVersion)
	})

	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/cards", h.getAllCards)
		r.Get("/api/cards/ids", h.getCardRefs)
		r.Post("/api/cards/upsert", h.upsertCards)

		r.Get("/api/progress", h.getProgress)
		r.Post("/api/progress/upsert", h.upsertProgress)
		r.Post("/api/progress/increment", h.incrementProgress)
	})

	router.MethodNotAllowed(methodNotAllowed(router))

	return router
}
