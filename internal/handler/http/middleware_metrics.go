// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

// unmatchedRoute labels requests no route matched, so arbitrary paths do not
// become label values.
const unmatchedRoute = "unmatched"

// withMetrics records in-flight requests, request counts and latencies
// labelled by the matched route pattern.
func (h *Handler) withMetrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		h.metrics.IncInFlight()
		defer h.metrics.DecInFlight()

		rw := &responseWriter{ResponseWriter: w}
		// deferred so aborted streams are counted too
		defer func() {
			// the pattern is known only after chi has routed the request
			route := unmatchedRoute
			if rctx := chi.RouteContext(r.Context()); rctx != nil {
				if pattern := rctx.RoutePattern(); pattern != "" {
					route = pattern
				}
			}

			h.metrics.ObserveHTTPRequest(r.Method, route, rw.statusOrOK(), time.Since(start))
		}()

		next.ServeHTTP(rw, r)
	})
}
