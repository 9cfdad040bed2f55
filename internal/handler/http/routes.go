package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, withGZip)

	router.Get("/version", h.getServerVersion)

	router.Group(func(r chi.Router) {
		r.Use(withUserScope)
		r.Get("/entries", h.listEntries)
	})

	router.Post("/entries", h.createEntry)
	router.Get("/entries/{id}", h.getEntry)
	router.Put("/entries/{id}", h.updateEntry)
	router.Delete("/entries/{id}", h.deleteEntry)

	// read path kept under its historical name
	router.Get("/events/{id}", h.getEntry)

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
