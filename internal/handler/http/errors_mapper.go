// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/media-vault/internal/app"
	"github.com/MKhiriev/media-vault/internal/service"
	"github.com/MKhiriev/media-vault/models"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidURL:     http.StatusBadRequest,
	service.ErrInvalidItag:    http.StatusBadRequest,
	service.ErrInvalidRequest: http.StatusBadRequest,
	ErrInvalidJSON:            http.StatusBadRequest,
	ErrNotFound:               http.StatusNotFound,
	ErrTooManyRequests:        http.StatusTooManyRequests,

	service.ErrFetchingInfo:    http.StatusInternalServerError,
	service.ErrDownloadFailed:  http.StatusInternalServerError,
	service.ErrAudioExtraction: http.StatusInternalServerError,
}

// errorSummaryMap holds the "error" field of the JSON body per sentinel.
var errorSummaryMap = map[error]string{
	service.ErrInvalidURL:     app.MsgInvalidURL,
	service.ErrInvalidItag:    app.MsgInvalidItag,
	service.ErrInvalidRequest: app.MsgInvalidRequest,
	ErrInvalidJSON:            app.MsgInvalidJSON,
	ErrNotFound:               app.MsgNotFound,
	ErrTooManyRequests:        app.MsgTooManyRequests,

	service.ErrFetchingInfo:    app.MsgFetchInfoFailed,
	service.ErrDownloadFailed:  app.MsgDownloadFailed,
	service.ErrAudioExtraction: app.MsgAudioExtractionFailed,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

func summaryFromError(err error) string {
	for target, summary := range errorSummaryMap {
		if errors.Is(err, target) {
			return summary
		}
	}
	return app.MsgInternalServerError
}

// errorResponse builds the JSON body for err. Server side failures carry the
// underlying cause in Message; client errors carry the summary only.
func errorResponse(err error) models.ErrorResponse {
	resp := models.ErrorResponse{
		Success: false,
		Error:   summaryFromError(err),
	}
	if statusFromError(err) >= http.StatusInternalServerError {
		resp.Message = errorMessage(err)
	}
	return resp
}

// errorMessage returns the innermost cause of err. Errors built with
// fmt.Errorf("%w: %w", sentinel, cause) are descended through their last
// wrapped error; the walk stops at the first error that wraps a single
// error or nothing, since its text already reads "<kind>: <detail>".
func errorMessage(err error) string {
	for {
		multi, ok := err.(interface{ Unwrap() []error })
		if !ok {
			return err.Error()
		}
		wrapped := multi.Unwrap()
		if len(wrapped) == 0 {
			return err.Error()
		}
		err = wrapped[len(wrapped)-1]
	}
}
