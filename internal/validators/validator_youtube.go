// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"strconv"

	"github.com/MKhiriev/media-vault/models"
)

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate to restrict validation to a subset
// of fields (field-level scoping).
const (
	// FieldURL targets the YouTube URL of a request.
	FieldURL = "url"

	// FieldItag targets the optional itag of a download request.
	FieldItag = "itag"
)

// YouTubeURLValidator implements the Validator interface for the API request
// models: InfoRequest, DownloadRequest and AudioRequest.
//
// When no fields are given, every field of the value is validated. The
// audio quality parameter is deliberately lenient: an unusable value falls
// back to the best audio format instead of failing the request.
type YouTubeURLValidator struct{}

// NewYouTubeURLValidator returns a ready to use [YouTubeURLValidator].
func NewYouTubeURLValidator() *YouTubeURLValidator {
	return &YouTubeURLValidator{}
}

// Validate implements [Validator].
func (v *YouTubeURLValidator) Validate(ctx context.Context, value any, fields ...string) error {
	switch req := value.(type) {
	case models.InfoRequest:
		return v.validateFields(fieldValues{FieldURL: req.URL}, fields)
	case *models.InfoRequest:
		return v.Validate(ctx, *req, fields...)
	case models.DownloadRequest:
		return v.validateFields(fieldValues{FieldURL: req.URL, FieldItag: req.Itag}, fields)
	case *models.DownloadRequest:
		return v.Validate(ctx, *req, fields...)
	case models.AudioRequest:
		return v.validateFields(fieldValues{FieldURL: req.URL}, fields)
	case *models.AudioRequest:
		return v.Validate(ctx, *req, fields...)
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, value)
	}
}

type fieldValues map[string]string

func (v *YouTubeURLValidator) validateFields(values fieldValues, fields []string) error {
	if len(fields) == 0 {
		for _, f := range []string{FieldURL, FieldItag} {
			if _, ok := values[f]; ok {
				fields = append(fields, f)
			}
		}
	}

	for _, field := range fields {
		value, ok := values[field]
		if !ok {
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}

		var err error
		switch field {
		case FieldURL:
			_, err = ExtractVideoID(value)
		case FieldItag:
			_, err = ParseItag(value)
		}
		if err != nil {
			return err
		}
	}

	return nil
}

// ParseItag parses an optional itag query value. An empty value yields 0.
func ParseItag(raw string) (int, error) {
	if raw == "" {
		return 0, nil
	}

	itag, err := strconv.Atoi(raw)
	if err != nil || itag <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidItag, raw)
	}
	return itag, nil
}
