package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	router.Group(func(r chi.Router) {
		r.Get("/api/jobs", h.getJobs)
		r.Get("/api/health", h.getHealth)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
