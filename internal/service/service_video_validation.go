// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/media-vault/internal/logger"
	"github.com/MKhiriev/media-vault/internal/validators"
	"github.com/MKhiriev/media-vault/models"
)

// VideoValidationService rejects malformed requests before they reach the
// extraction library.
type VideoValidationService struct {
	inner     VideoService
	validator validators.Validator
}

func NewVideoValidationService() VideoServiceWrapper {
	return &VideoValidationService{
		validator: validators.NewYouTubeURLValidator(),
	}
}

func (v *VideoValidationService) GetInfo(ctx context.Context, req models.InfoRequest) (models.InfoResponse, error) {
	if err := v.validate(ctx, req); err != nil {
		return models.InfoResponse{}, err
	}
	return v.inner.GetInfo(ctx, req)
}

func (v *VideoValidationService) OpenVideoStream(ctx context.Context, req models.DownloadRequest) (*models.Stream, error) {
	if err := v.validate(ctx, req); err != nil {
		return nil, err
	}
	return v.inner.OpenVideoStream(ctx, req)
}

func (v *VideoValidationService) OpenAudioStream(ctx context.Context, req models.AudioRequest) (*models.Stream, error) {
	if err := v.validate(ctx, req); err != nil {
		return nil, err
	}
	return v.inner.OpenAudioStream(ctx, req)
}

func (v *VideoValidationService) Wrap(wrapped VideoService) VideoService {
	v.inner = wrapped
	return v
}

// validate maps validator errors onto the service sentinels.
func (v *VideoValidationService) validate(ctx context.Context, req any) error {
	err := v.validator.Validate(ctx, req)
	if err == nil {
		return nil
	}

	logger.FromContext(ctx).Debug().Err(err).Msg("request rejected by validation")

	switch {
	case errors.Is(err, validators.ErrInvalidItag):
		return fmt.Errorf("%w: %w", ErrInvalidItag, err)
	case errors.Is(err, validators.ErrUnsupportedType),
		errors.Is(err, validators.ErrUnknownField):
		return fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	default:
		return fmt.Errorf("%w: %w", ErrInvalidURL, err)
	}
}
