// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/media-vault/internal/logger"
)

// withLogging writes one access log entry per request. Client errors are
// logged at warn level, server errors at error level. A request whose
// handler panics is logged as aborted before the panic continues.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)
		start := time.Now()

		lw := &responseWriter{ResponseWriter: w}
		defer func() {
			recovered := recover()

			status := lw.statusOrOK()
			event := accessEvent(log, status)
			if recovered != nil {
				event = event.Bool("aborted", true)
			}
			event.
				Str("uri", r.RequestURI).
				Str("method", r.Method).
				Str("remote_addr", r.RemoteAddr).
				Int("status", status).
				Dur("duration", time.Since(start)).
				Int64("size", lw.size).
				Send()

			if recovered != nil {
				panic(recovered)
			}
		}()

		next.ServeHTTP(lw, r)
	})
}

func accessEvent(log *logger.Logger, status int) *zerolog.Event {
	switch {
	case status >= http.StatusInternalServerError:
		return log.Error()
	case status >= http.StatusBadRequest:
		return log.Warn()
	default:
		return log.Info()
	}
}
