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
	if h.throttle != nil {
		router.Use(h.throttle.Middleware)
	}
	if h.features.SimpleCORS {
		router.Use(h.withSimpleCORS)
	}
	router.Use(withGZip)
	router.Use(h.withStorageRequest)

	// the endpoint is matched by suffix in withStorageRequest, so every path
	// is routed to the same handler
	router.Get("/*", h.storage)
	router.Put("/*", h.storage)
	router.Delete("/*", h.storage)
	router.Post("/*", h.storage)

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
