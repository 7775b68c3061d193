// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package formats ranks the renditions of a video and picks one according to
// a quality keyword and a filter.
//
// Quality keywords:
//
//	highest       best format overall (after filtering)
//	lowest        worst format overall
//	highestaudio  best audio track, smallest video among equals
//	lowestaudio   worst audio track
//	highestvideo  best video track, smallest audio among equals
//	lowestvideo   worst video track
//	<itag>        the format with that itag
//
// Filters: audioandvideo (alias videoandaudio), video, videoonly, audio,
// audioonly. An empty filter keeps every format.
package formats

import (
	"fmt"
	"strconv"

	"github.com/MKhiriev/media-vault/models"
)

const (
	QualityHighest      = "highest"
	QualityLowest       = "lowest"
	QualityHighestAudio = "highestaudio"
	QualityLowestAudio  = "lowestaudio"
	QualityHighestVideo = "highestvideo"
	QualityLowestVideo  = "lowestvideo"
)

const (
	FilterAudioAndVideo = "audioandvideo"
	FilterVideoAndAudio = "videoandaudio"
	FilterVideo         = "video"
	FilterVideoOnly     = "videoonly"
	FilterAudio         = "audio"
	FilterAudioOnly     = "audioonly"
)

// Filter returns the formats of list that pass filter, keeping their order.
func Filter(list []models.Format, filter string) ([]models.Format, error) {
	var keep func(models.Format) bool
	switch filter {
	case "":
		keep = func(models.Format) bool { return true }
	case FilterAudioAndVideo, FilterVideoAndAudio:
		keep = func(f models.Format) bool { return f.HasVideo && f.HasAudio }
	case FilterVideo:
		keep = func(f models.Format) bool { return f.HasVideo }
	case FilterVideoOnly:
		keep = func(f models.Format) bool { return f.HasVideo && !f.HasAudio }
	case FilterAudio:
		keep = func(f models.Format) bool { return f.HasAudio }
	case FilterAudioOnly:
		keep = func(f models.Format) bool { return f.HasAudio && !f.HasVideo }
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFilter, filter)
	}

	out := make([]models.Format, 0, len(list))
	for _, f := range list {
		if keep(f) {
			out = append(out, f)
		}
	}
	return out, nil
}

// Muxed returns the formats carrying both an audio and a video track, best
// first.
func Muxed(list []models.Format) []models.Format {
	out, _ := Filter(list, FilterAudioAndVideo)
	Sort(out)
	return out
}

// Choose picks a single format from list. The input slice is not modified.
//
// An empty Quality means highest. A positive MaxAudioBitrate makes audio
// qualities prefer the best track whose bitrate does not exceed it, falling
// back to the plain keyword when no track qualifies.
func Choose(list []models.Format, opts models.StreamOptions) (models.Format, error) {
	candidates, err := Filter(list, opts.Filter)
	if err != nil {
		return models.Format{}, err
	}
	if len(candidates) == 0 {
		return models.Format{}, ErrNoFormats
	}
	Sort(candidates)

	quality := opts.Quality
	if quality == "" {
		quality = QualityHighest
	}

	var (
		chosen models.Format
		ok     bool
	)
	switch quality {
	case QualityHighest:
		chosen, ok = candidates[0], true
	case QualityLowest:
		chosen, ok = candidates[len(candidates)-1], true
	case QualityHighestAudio:
		if opts.MaxAudioBitrate > 0 {
			chosen, ok = bestTrack(capAudio(candidates, opts.MaxAudioBitrate), FilterAudio, byAudio, videoQuality)
		}
		if !ok {
			chosen, ok = bestTrack(candidates, FilterAudio, byAudio, videoQuality)
		}
	case QualityLowestAudio:
		chosen, ok = worstTrack(candidates, FilterAudio, byAudio)
	case QualityHighestVideo:
		chosen, ok = bestTrack(candidates, FilterVideo, byVideo, audioBitrate)
	case QualityLowestVideo:
		chosen, ok = worstTrack(candidates, FilterVideo, byVideo)
	default:
		chosen, ok = byItag(candidates, quality)
	}

	if !ok {
		return models.Format{}, fmt.Errorf("%w: %s", ErrNoSuchFormat, quality)
	}
	return chosen, nil
}

// bestTrack picks the best format by ranks. Among formats ranking equal to
// the best, the one with the smallest secondary value wins, so the best audio
// comes with the least video and vice versa.
func bestTrack(list []models.Format, filter string, ranks []rankFunc, secondary rankFunc) (models.Format, bool) {
	tracks, _ := Filter(list, filter)
	if len(tracks) == 0 {
		return models.Format{}, false
	}
	sortBy(tracks, ranks)

	best := tracks[0]
	chosen := best
	for _, f := range tracks[1:] {
		if compare(best, f, ranks) != 0 {
			break
		}
		if secondary(f) < secondary(chosen) {
			chosen = f
		}
	}
	return chosen, true
}

func worstTrack(list []models.Format, filter string, ranks []rankFunc) (models.Format, bool) {
	tracks, _ := Filter(list, filter)
	if len(tracks) == 0 {
		return models.Format{}, false
	}
	sortBy(tracks, ranks)
	return tracks[len(tracks)-1], true
}

func capAudio(list []models.Format, maxKbps int) []models.Format {
	out := make([]models.Format, 0, len(list))
	for _, f := range list {
		if f.HasAudio && f.AudioBitrate > 0 && f.AudioBitrate <= maxKbps {
			out = append(out, f)
		}
	}
	return out
}

func byItag(list []models.Format, quality string) (models.Format, bool) {
	itag, err := strconv.Atoi(quality)
	if err != nil {
		return models.Format{}, false
	}
	for _, f := range list {
		if f.Itag == itag {
			return f, true
		}
	}
	return models.Format{}, false
}
