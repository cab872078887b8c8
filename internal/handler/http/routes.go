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
	// the client addresses "/restaurants/1/" and "/reviews/"
	router.Use(middleware.StripSlashes)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}
	router.Use(middleware.Compress(5, "application/json"))

	router.Get("/", h.getServerVersion)
	router.Get("/version", h.getServerVersion)
	router.Get("/health", h.checkHealth)

	router.Route("/restaurants", func(r chi.Router) {
		r.Get("/", h.getRestaurants)
		r.Get("/{id}", h.getRestaurant)
		r.Put("/{id}", h.setFavorite)
	})

	router.Route("/reviews", func(r chi.Router) {
		r.Get("/", h.getReviews)
		r.Post("/", h.createReview)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
