// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/media-vault/models"
)

// mapHTTPError turns a non-2xx response into an error matching one of the
// package sentinels. The server's JSON error body, when present, becomes the
// error text.
func mapHTTPError(status int, body []byte) error {
	if status >= http.StatusOK && status < http.StatusMultipleChoices {
		return nil
	}

	detail := errorDetail(body)
	if detail == "" {
		detail = http.StatusText(status)
	}

	switch {
	case status == http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, detail)
	case status == http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, detail)
	case status == http.StatusTooManyRequests:
		return fmt.Errorf("%w: %s", ErrTooManyRequests, detail)
	case status >= http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", ErrInternalServerError, detail)
	default:
		return fmt.Errorf("http %d: %s", status, detail)
	}
}

func errorDetail(body []byte) string {
	var errResp models.ErrorResponse
	if err := json.Unmarshal(body, &errResp); err != nil || errResp.Error == "" {
		return strings.TrimSpace(string(body))
	}
	if errResp.Message != "" {
		return errResp.Error + ": " + errResp.Message
	}
	return errResp.Error
}
