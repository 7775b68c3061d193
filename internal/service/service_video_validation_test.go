// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/media-vault/internal/mock"
	"github.com/MKhiriev/media-vault/models"
)

func newTestValidationService(t *testing.T) (VideoService, *mock.MockVideoService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	inner := mock.NewMockVideoService(ctrl)
	return NewVideoValidationService().Wrap(inner), inner
}

func TestVideoValidationService_GetInfo(t *testing.T) {
	t.Run("valid request reaches inner service", func(t *testing.T) {
		svc, inner := newTestValidationService(t)
		req := models.InfoRequest{URL: "https://youtu.be/dQw4w9WgXcQ"}
		inner.EXPECT().GetInfo(gomock.Any(), req).Return(models.InfoResponse{Success: true}, nil)

		resp, err := svc.GetInfo(context.Background(), req)
		require.NoError(t, err)
		assert.True(t, resp.Success)
	})

	t.Run("invalid url is rejected", func(t *testing.T) {
		svc, inner := newTestValidationService(t)
		inner.EXPECT().GetInfo(gomock.Any(), gomock.Any()).Times(0)

		_, err := svc.GetInfo(context.Background(), models.InfoRequest{URL: "https://example.com/watch?v=dQw4w9WgXcQ"})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidURL)
	})

	t.Run("empty url is rejected", func(t *testing.T) {
		svc, _ := newTestValidationService(t)

		_, err := svc.GetInfo(context.Background(), models.InfoRequest{})
		assert.ErrorIs(t, err, ErrInvalidURL)
	})
}

func TestVideoValidationService_OpenVideoStream(t *testing.T) {
	tests := []struct {
		name      string
		req       models.DownloadRequest
		wantErr   error
		wantInner bool
	}{
		{name: "no itag", req: models.DownloadRequest{URL: testVideoURL}, wantInner: true},
		{name: "numeric itag", req: models.DownloadRequest{URL: testVideoURL, Itag: "22"}, wantInner: true},
		{name: "non numeric itag", req: models.DownloadRequest{URL: testVideoURL, Itag: "best"}, wantErr: ErrInvalidItag},
		{name: "zero itag", req: models.DownloadRequest{URL: testVideoURL, Itag: "0"}, wantErr: ErrInvalidItag},
		{name: "shorts url", req: models.DownloadRequest{URL: "https://www.youtube.com/shorts/dQw4w9WgXcQ"}, wantInner: true},
		{name: "foreign host", req: models.DownloadRequest{URL: "https://vimeo.com/123"}, wantErr: ErrInvalidURL},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, inner := newTestValidationService(t)
			if tt.wantInner {
				inner.EXPECT().OpenVideoStream(gomock.Any(), tt.req).Return(&models.Stream{}, nil)
			}

			stream, err := svc.OpenVideoStream(context.Background(), tt.req)
			if tt.wantErr != nil {
				assert.Nil(t, stream)
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, stream)
		})
	}
}

func TestVideoValidationService_OpenAudioStream(t *testing.T) {
	svc, inner := newTestValidationService(t)
	req := models.AudioRequest{URL: "https://m.youtube.com/watch?v=dQw4w9WgXcQ", Quality: "anything"}
	inner.EXPECT().OpenAudioStream(gomock.Any(), req).Return(&models.Stream{}, nil)

	_, err := svc.OpenAudioStream(context.Background(), req)
	require.NoError(t, err)

	_, err = svc.OpenAudioStream(context.Background(), models.AudioRequest{URL: "ftp://youtube.com/watch?v=dQw4w9WgXcQ"})
	assert.ErrorIs(t, err, ErrInvalidURL)
}
