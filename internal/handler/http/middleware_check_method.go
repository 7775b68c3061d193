// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/media-vault/internal/utils"
)

// CheckHTTPMethod returns a handler meant for [chi.Mux.MethodNotAllowed].
//
// Chi answers 405 when a path is known but the method is not. The returned
// handler answers 404 with the regular JSON error body instead, so a wrong
// method looks exactly like an unknown route. Requests whose method does
// match a route (chi.Mux.Match) are handed back to the router.
//
// Usage:
//
//	router := chi.NewRouter()
//	// ... register routes ...
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		if router.Match(chi.NewRouteContext(), r.Method, r.URL.Path) {
			router.ServeHTTP(w, r)
			return
		}

		notFound(w, r)
	}
}

// notFound writes the JSON 404 body used for unknown routes.
func notFound(w http.ResponseWriter, _ *http.Request) {
	utils.WriteJSON(w, errorResponse(ErrNotFound), http.StatusNotFound)
}
