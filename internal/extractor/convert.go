// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package extractor

import (
	"mime"
	"strings"

	"github.com/MKhiriev/media-vault/models"
	"github.com/kkdai/youtube/v2"
)

// Audio bitrates (kbit/s) of the well known itags. The player response only
// reports a combined bitrate, which for muxed formats includes the video.
var itagAudioBitrates = map[int]int{
	5: 64, 6: 64, 17: 24, 18: 96, 22: 192, 34: 128, 35: 128,
	36: 38, 37: 192, 38: 192, 43: 128, 44: 128, 45: 192, 46: 192,
	82: 128, 83: 128, 84: 192, 85: 192, 100: 128, 101: 192, 102: 192,
	139: 48, 140: 128, 141: 256, 171: 128, 172: 256,
	249: 48, 250: 64, 251: 160, 256: 192, 258: 384, 327: 256, 338: 480,
}

func toVideoInfo(v *youtube.Video) models.VideoInfo {
	info := models.VideoInfo{
		ID:          v.ID,
		Title:       v.Title,
		Description: v.Description,
		Author:      v.Author,
		Duration:    v.Duration,
		Views:       v.Views,
		Thumbnails:  make([]models.Thumbnail, 0, len(v.Thumbnails)),
		Formats:     make([]models.Format, 0, len(v.Formats)),
	}

	for _, t := range v.Thumbnails {
		info.Thumbnails = append(info.Thumbnails, models.Thumbnail{URL: t.URL, Width: t.Width, Height: t.Height})
	}
	for _, f := range v.Formats {
		info.Formats = append(info.Formats, toFormat(f))
	}

	return info
}

func toFormat(f youtube.Format) models.Format {
	container, codecs := parseMimeType(f.MimeType)
	isVideoMime := strings.HasPrefix(f.MimeType, "video/")

	out := models.Format{
		Itag:          f.ItagNo,
		MimeType:      f.MimeType,
		Container:     container,
		Codecs:        codecs,
		QualityLabel:  f.QualityLabel,
		AudioQuality:  f.AudioQuality,
		Bitrate:       f.Bitrate,
		Width:         f.Width,
		Height:        f.Height,
		FPS:           f.FPS,
		AudioChannels: f.AudioChannels,
		ContentLength: f.ContentLength,
		HasVideo:      isVideoMime && (f.QualityLabel != "" || f.Width > 0),
		HasAudio:      f.AudioChannels > 0 || strings.HasPrefix(f.MimeType, "audio/"),
	}
	out.AudioBitrate = audioBitrate(f, out.HasAudio, out.HasVideo)

	return out
}

func audioBitrate(f youtube.Format, hasAudio, hasVideo bool) int {
	if !hasAudio {
		return 0
	}
	if kbps, ok := itagAudioBitrates[f.ItagNo]; ok {
		return kbps
	}
	if hasVideo {
		return 0
	}

	bitrate := f.AverageBitrate
	if bitrate <= 0 {
		bitrate = f.Bitrate
	}
	return bitrate / 1000
}

// parseMimeType splits `video/mp4; codecs="avc1.64001F, mp4a.40.2"` into
// its subtype and unquoted codecs.
func parseMimeType(mimeType string) (container, codecs string) {
	mediaType, params, err := mime.ParseMediaType(mimeType)
	if err != nil {
		base, _, _ := strings.Cut(mimeType, ";")
		mediaType = strings.ToLower(strings.TrimSpace(base))
	}

	if _, subtype, ok := strings.Cut(mediaType, "/"); ok {
		container = subtype
	}
	return container, params["codecs"]
}

// findFormat returns the library format with the given itag.
func findFormat(v *youtube.Video, itag int) *youtube.Format {
	for i := range v.Formats {
		if v.Formats[i].ItagNo == itag {
			return &v.Formats[i]
		}
	}
	return nil
}
