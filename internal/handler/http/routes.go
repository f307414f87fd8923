// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/api/version/", h.getServerVersion)
	})

	// tenant routes
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		// never compressed: gzip buffers and would hold frames back
		r.Get("/api/requests/stream", h.streamRequests)

		r.Group(func(r chi.Router) {
			r.Use(withGZip)

			r.Get("/api/requests", h.listRequests)
			r.Post("/api/requests", h.createRequest)
			r.Get("/api/requests/{id}", h.getRequest)
			r.Patch("/api/requests/{id}/status", h.updateRequestStatus)
			r.Post("/api/requests/{id}/convert", h.convertRequest)
			r.Delete("/api/requests/{id}", h.deleteRequest)
			r.Get("/api/stats", h.getStreamStats)
		})
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
