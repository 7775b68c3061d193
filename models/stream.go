// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "io"

// Stream is an opened media stream ready to be piped to a client.
// The caller owns Body and must close it.
type Stream struct {
	Body io.ReadCloser

	// Size is the number of bytes Body will yield, zero if unknown.
	Size int64

	// Format is the rendition being streamed.
	Format Format

	// VideoID and Title identify the source video.
	VideoID string
	Title   string

	// Filename is the attachment name offered to the client.
	Filename string
}

// DownloadResult describes a file saved by the API client.
type DownloadResult struct {
	Path        string
	ContentType string
	Bytes       int64
}
