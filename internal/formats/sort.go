// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package formats

import (
	"slices"
	"strconv"
	"strings"

	"github.com/MKhiriev/media-vault/models"
)

// Codec preference, lowest index ranks lowest. A codec missing from the list
// ranks below all of them.
var (
	videoEncodingRanks = []string{"mp4v", "avc1", "sorenson h.283", "mpeg-4 visual", "vp8", "vp9", "h.264"}
	audioEncodingRanks = []string{"mp4a", "mp3", "vorbis", "aac", "opus", "flac"}
)

type rankFunc func(models.Format) int

var (
	byOverall = []rankFunc{
		func(f models.Format) int { return boolRank(f.ContentLength > 0) },
		func(f models.Format) int { return boolRank(f.HasVideo && f.HasAudio) },
		func(f models.Format) int { return boolRank(f.HasVideo) },
		videoQuality,
		videoBitrate,
		audioBitrate,
		videoEncodingRank,
		audioEncodingRank,
	}
	byVideo = []rankFunc{videoQuality, videoBitrate, videoEncodingRank}
	byAudio = []rankFunc{audioBitrate, audioEncodingRank}
)

// Sort orders list best first, in place. Ties keep their original order.
func Sort(list []models.Format) {
	sortBy(list, byOverall)
}

func sortBy(list []models.Format, ranks []rankFunc) {
	slices.SortStableFunc(list, func(a, b models.Format) int {
		return compare(a, b, ranks)
	})
}

// compare returns a negative number when a ranks better than b.
func compare(a, b models.Format, ranks []rankFunc) int {
	for _, rank := range ranks {
		if d := rank(b) - rank(a); d != 0 {
			return d
		}
	}
	return 0
}

func boolRank(b bool) int {
	if b {
		return 1
	}
	return 0
}

// videoQuality is the leading number of the quality label, so "1080p60"
// yields 1080 and an audio-only format yields 0.
func videoQuality(f models.Format) int {
	label := f.QualityLabel
	end := 0
	for end < len(label) && label[end] >= '0' && label[end] <= '9' {
		end++
	}
	q, err := strconv.Atoi(label[:end])
	if err != nil {
		return 0
	}
	return q
}

func videoBitrate(f models.Format) int {
	if !f.HasVideo {
		return 0
	}
	return f.Bitrate
}

func audioBitrate(f models.Format) int {
	return f.AudioBitrate
}

func videoEncodingRank(f models.Format) int {
	return encodingRank(f.Codecs, videoEncodingRanks)
}

func audioEncodingRank(f models.Format) int {
	return encodingRank(f.Codecs, audioEncodingRanks)
}

func encodingRank(codecs string, ranks []string) int {
	codecs = strings.ToLower(codecs)
	if codecs == "" {
		return -1
	}
	for i, enc := range ranks {
		if strings.Contains(codecs, enc) {
			return i
		}
	}
	return -1
}
