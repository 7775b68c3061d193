// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(middleware.RealIP)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withMetrics)
	router.Use(cors.Handler(h.corsOptions()))

	router.NotFound(notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	// JSON routes
	router.Group(func(r chi.Router) {
		r.Use(withGZip)
		r.Get("/", h.getStatus)
		r.Get("/health", h.getHealth)
	})
	router.Method(http.MethodGet, "/metrics", h.metrics.Handler())

	router.Route("/api", func(r chi.Router) {
		if h.limiter != nil {
			r.Use(h.limiter.Handler)
		}

		r.Get("/version", h.getServerVersion)

		info := r.With(withGZip)
		if h.cfg.RequestTimeout > 0 {
			info = info.With(middleware.Timeout(h.cfg.RequestTimeout))
		}
		info.Post("/info", h.getInfo)

		// streams run as long as the client keeps reading
		r.Get("/download", h.downloadVideo)
		r.Get("/audio", h.downloadAudio)
	})

	return router
}

// corsOptions allows every origin unless a list is configured. Download
// headers are exposed so browser clients can read the file name.
func (h *Handler) corsOptions() cors.Options {
	origins := h.cfg.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	return cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "Content-Encoding", traceIDHeader},
		ExposedHeaders: []string{"Content-Disposition", "Content-Length", traceIDHeader},
		MaxAge:         300,
	}
}
