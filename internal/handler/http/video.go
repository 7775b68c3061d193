// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/MKhiriev/media-vault/internal/logger"
	"github.com/MKhiriev/media-vault/internal/service"
	"github.com/MKhiriev/media-vault/internal/utils"
	"github.com/MKhiriev/media-vault/models"
)

// Stream kinds used as metric labels.
const (
	streamKindVideo = "video"
	streamKindAudio = "audio"
)

const fallbackContentType = "application/octet-stream"

// streamFailures maps a stream kind to the error reported when its body
// fails before any byte is sent.
var streamFailures = map[string]error{
	streamKindVideo: service.ErrDownloadFailed,
	streamKindAudio: service.ErrAudioExtraction,
}

func (h *Handler) getInfo(w http.ResponseWriter, r *http.Request) {
	var req models.InfoRequest
	// an empty body is treated as a request without url
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		h.writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}

	resp, err := h.services.VideoService.GetInfo(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, resp, http.StatusOK)
}

func (h *Handler) downloadVideo(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := models.DownloadRequest{
		URL:  query.Get("url"),
		Itag: query.Get("itag"),
	}

	stream, err := h.services.VideoService.OpenVideoStream(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.streamAttachment(w, r, stream, streamKindVideo)
}

func (h *Handler) downloadAudio(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := models.AudioRequest{
		URL:     query.Get("url"),
		Quality: query.Get("quality"),
	}

	stream, err := h.services.VideoService.OpenAudioStream(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.streamAttachment(w, r, stream, streamKindAudio)
}

// streamAttachment sends the headers of stream and copies its body to the
// client. A body that fails before its first byte still gets a JSON error.
// Once the first byte is out the status cannot change, so a failed copy
// aborts the connection to make the truncation visible.
func (h *Handler) streamAttachment(w http.ResponseWriter, r *http.Request, stream *models.Stream, kind string) {
	defer stream.Body.Close()
	log := logger.FromRequest(r)

	body := bufio.NewReader(stream.Body)
	if _, err := body.Peek(1); err != nil && !errors.Is(err, io.EOF) {
		h.writeError(w, r, fmt.Errorf("%w: %w", streamFailures[kind], err))
		return
	}

	contentType := stream.Format.BaseMimeType()
	if contentType == "" {
		contentType = fallbackContentType
	}

	header := w.Header()
	header.Set("Content-Type", contentType)
	header.Set("Content-Disposition", utils.AttachmentDisposition(stream.Filename))
	if stream.Size > 0 {
		header.Set("Content-Length", strconv.FormatInt(stream.Size, 10))
	}
	w.WriteHeader(http.StatusOK)

	written, err := io.Copy(w, body)
	h.metrics.AddStreamedBytes(kind, written)

	if err == nil {
		log.Debug().
			Str("video_id", stream.VideoID).
			Int("itag", stream.Format.Itag).
			Int64("bytes", written).
			Msg("stream finished")
		return
	}

	if r.Context().Err() != nil {
		log.Info().Err(err).Str("video_id", stream.VideoID).Int64("bytes", written).Msg("client went away during stream")
	} else {
		log.Error().Err(err).Str("video_id", stream.VideoID).Int64("bytes", written).Msg("stream interrupted")
	}
	panic(http.ErrAbortHandler)
}

// writeError logs err and writes its JSON error body.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)

	log := logger.FromRequest(r)
	event := log.Warn()
	if status >= http.StatusInternalServerError {
		event = log.Error()
	}
	event.Err(err).Int("status", status).Str("path", r.URL.Path).Msg("request failed")

	utils.WriteJSON(w, errorResponse(err), status)
}
