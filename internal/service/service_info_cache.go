// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/MKhiriev/media-vault/internal/extractor"
	"github.com/MKhiriev/media-vault/internal/logger"
	"github.com/MKhiriev/media-vault/internal/store"
	"github.com/MKhiriev/media-vault/models"
)

// CacheObserver is told about every cache lookup. *metrics.Metrics
// implements it.
type CacheObserver interface {
	CacheLookup(hit bool)
}

// InfoCachingExtractor serves video metadata from a store.InfoCache and
// collapses concurrent lookups of one video into a single extraction.
// Streams always go to the wrapped extractor, since playback URLs expire.
type InfoCachingExtractor struct {
	inner    extractor.Extractor
	cache    store.InfoCache
	ttl      time.Duration
	group    singleflight.Group
	observer CacheObserver

	logger *logger.Logger
}

func NewInfoCachingExtractor(cache store.InfoCache, ttl time.Duration, observer CacheObserver, logger *logger.Logger) ExtractorWrapper {
	return &InfoCachingExtractor{
		cache:    cache,
		ttl:      ttl,
		observer: observer,
		logger:   logger,
	}
}

func (c *InfoCachingExtractor) Wrap(inner extractor.Extractor) extractor.Extractor {
	c.inner = inner
	return c
}

func (c *InfoCachingExtractor) GetInfo(ctx context.Context, videoID string) (models.VideoInfo, error) {
	log := logger.FromContext(ctx)

	info, err := c.cache.Get(ctx, videoID)
	if err == nil {
		c.observe(true)
		return info, nil
	}
	c.observe(false)
	if !errors.Is(err, store.ErrInfoNotCached) {
		// a broken cache must not take the API down
		log.Warn().Err(err).Str("video_id", videoID).Msg("video info cache read failed")
	}

	// the shared call must not die with whichever caller started it
	shared := context.WithoutCancel(ctx)
	ch := c.group.DoChan(videoID, func() (any, error) {
		fetched, err := c.inner.GetInfo(shared, videoID)
		if err != nil {
			return models.VideoInfo{}, err
		}
		if err := c.cache.Save(shared, fetched, c.ttl); err != nil {
			log.Warn().Err(err).Str("video_id", videoID).Msg("video info cache write failed")
		}
		return fetched, nil
	})

	// the caller stops waiting on its own deadline; the shared call keeps
	// running and still fills the cache
	select {
	case res := <-ch:
		if res.Err != nil {
			return models.VideoInfo{}, res.Err
		}
		if res.Shared {
			log.Debug().Str("video_id", videoID).Msg("video info lookup coalesced")
		}
		return res.Val.(models.VideoInfo), nil
	case <-ctx.Done():
		return models.VideoInfo{}, ctx.Err()
	}
}

func (c *InfoCachingExtractor) OpenStream(ctx context.Context, videoID string, opts models.StreamOptions) (*models.Stream, error) {
	return c.inner.OpenStream(ctx, videoID, opts)
}

func (c *InfoCachingExtractor) observe(hit bool) {
	if c.observer != nil {
		c.observer.CacheLookup(hit)
	}
}
