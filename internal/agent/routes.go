package agent

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)

	router.Route("/api/trees", func(r chi.Router) {
		r.Get("/", h.listTrees)
		r.Post("/", h.createTree)
		r.Get("/{id}", h.getTree)
		r.Put("/{id}", h.updateTree)
		r.Put("/{id}/qr", h.attachQRCode)
	})

	router.Post("/api/sync", h.sweep)

	router.Get("/api/connectivity", h.getConnectivity)
	router.Put("/api/connectivity", h.setConnectivity)

	return router
}
