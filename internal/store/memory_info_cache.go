// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/media-vault/models"
)

type memoryEntry struct {
	info      models.VideoInfo
	expiresAt time.Time
}

// memoryInfoCache keeps entries in process memory. It is used when no
// database is configured.
type memoryInfoCache struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	now     func() time.Time
}

func NewMemoryInfoCache() InfoCache {
	return &memoryInfoCache{
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
}

func (c *memoryInfoCache) Get(_ context.Context, videoID string) (models.VideoInfo, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.entries[videoID]
	if !ok || !c.now().Before(entry.expiresAt) {
		return models.VideoInfo{}, ErrInfoNotCached
	}
	return entry.info, nil
}

func (c *memoryInfoCache) Save(_ context.Context, info models.VideoInfo, ttl time.Duration) error {
	if info.ID == "" {
		return ErrEmptyVideoID
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[info.ID] = memoryEntry{info: info, expiresAt: c.now().Add(ttl)}
	return nil
}

func (c *memoryInfoCache) DeleteExpired(_ context.Context) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	var deleted int64
	for id, entry := range c.entries {
		if !now.Before(entry.expiresAt) {
			delete(c.entries, id)
			deleted++
		}
	}
	return deleted, nil
}
