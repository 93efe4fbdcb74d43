package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, withGZip)

	router.Get("/api/health", h.health)
	router.Get("/api/version", h.getServerVersion)

	router.Route("/api/trees", func(r chi.Router) {
		r.Get("/", h.listTrees)
		r.Post("/", h.createTree)
		r.Get("/lookup", h.lookupTree)

		r.Get("/{id}", h.getTree)
		r.Put("/{id}", h.updateTree)
		r.Delete("/{id}", h.deleteTree)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
