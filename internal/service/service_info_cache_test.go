// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/media-vault/internal/logger"
	"github.com/MKhiriev/media-vault/internal/mock"
	"github.com/MKhiriev/media-vault/internal/store"
	"github.com/MKhiriev/media-vault/models"
)

type countingCacheObserver struct {
	hits   atomic.Int64
	misses atomic.Int64
}

func (o *countingCacheObserver) CacheLookup(hit bool) {
	if hit {
		o.hits.Add(1)
		return
	}
	o.misses.Add(1)
}

func newTestCachingExtractor(t *testing.T, ttl time.Duration) (*InfoCachingExtractor, *mock.MockExtractor, *mock.MockInfoCache, *countingCacheObserver) {
	t.Helper()
	ctrl := gomock.NewController(t)
	inner := mock.NewMockExtractor(ctrl)
	cache := mock.NewMockInfoCache(ctrl)
	observer := &countingCacheObserver{}

	wrapped := NewInfoCachingExtractor(cache, ttl, observer, logger.Nop()).Wrap(inner)
	return wrapped.(*InfoCachingExtractor), inner, cache, observer
}

func TestInfoCachingExtractor_GetInfo_Hit(t *testing.T) {
	c, _, cache, observer := newTestCachingExtractor(t, time.Minute)
	want := models.VideoInfo{ID: testVideoID, Title: "cached"}

	cache.EXPECT().Get(gomock.Any(), testVideoID).Return(want, nil)

	got, err := c.GetInfo(context.Background(), testVideoID)
	require.NoError(t, err)

	assert.Equal(t, want, got)
	assert.EqualValues(t, 1, observer.hits.Load())
	assert.EqualValues(t, 0, observer.misses.Load())
}

func TestInfoCachingExtractor_GetInfo_MissFetchesAndSaves(t *testing.T) {
	c, inner, cache, observer := newTestCachingExtractor(t, time.Minute)
	fetched := models.VideoInfo{ID: testVideoID, Title: "fresh"}

	gomock.InOrder(
		cache.EXPECT().Get(gomock.Any(), testVideoID).Return(models.VideoInfo{}, store.ErrInfoNotCached),
		inner.EXPECT().GetInfo(gomock.Any(), testVideoID).Return(fetched, nil),
		cache.EXPECT().Save(gomock.Any(), fetched, time.Minute).Return(nil),
	)

	got, err := c.GetInfo(context.Background(), testVideoID)
	require.NoError(t, err)

	assert.Equal(t, fetched, got)
	assert.EqualValues(t, 1, observer.misses.Load())
}

func TestInfoCachingExtractor_GetInfo_CacheFailuresAreNotFatal(t *testing.T) {
	c, inner, cache, _ := newTestCachingExtractor(t, time.Minute)
	fetched := models.VideoInfo{ID: testVideoID}

	cache.EXPECT().Get(gomock.Any(), testVideoID).Return(models.VideoInfo{}, errors.New("db is down"))
	inner.EXPECT().GetInfo(gomock.Any(), testVideoID).Return(fetched, nil)
	cache.EXPECT().Save(gomock.Any(), fetched, time.Minute).Return(errors.New("db is down"))

	got, err := c.GetInfo(context.Background(), testVideoID)
	require.NoError(t, err)
	assert.Equal(t, fetched, got)
}

func TestInfoCachingExtractor_GetInfo_ExtractorErrorIsNotCached(t *testing.T) {
	c, inner, cache, _ := newTestCachingExtractor(t, time.Minute)

	cache.EXPECT().Get(gomock.Any(), testVideoID).Return(models.VideoInfo{}, store.ErrInfoNotCached)
	inner.EXPECT().GetInfo(gomock.Any(), testVideoID).Return(models.VideoInfo{}, errors.New("private video"))
	cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	_, err := c.GetInfo(context.Background(), testVideoID)
	require.EqualError(t, err, "private video")
}

func TestInfoCachingExtractor_GetInfo_CoalescesConcurrentMisses(t *testing.T) {
	c, inner, cache, _ := newTestCachingExtractor(t, time.Minute)
	fetched := models.VideoInfo{ID: testVideoID}

	const callers = 8
	var arrived sync.WaitGroup
	arrived.Add(callers)
	release := make(chan struct{})

	cache.EXPECT().Get(gomock.Any(), testVideoID).
		DoAndReturn(func(context.Context, string) (models.VideoInfo, error) {
			arrived.Done()
			return models.VideoInfo{}, store.ErrInfoNotCached
		}).
		Times(callers)

	var fetches atomic.Int64
	inner.EXPECT().GetInfo(gomock.Any(), testVideoID).
		DoAndReturn(func(context.Context, string) (models.VideoInfo, error) {
			fetches.Add(1)
			<-release
			return fetched, nil
		}).
		MinTimes(1)
	cache.EXPECT().Save(gomock.Any(), fetched, time.Minute).Return(nil).MinTimes(1)

	var wg sync.WaitGroup
	results := make([]models.VideoInfo, callers)
	for i := range callers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			info, err := c.GetInfo(context.Background(), testVideoID)
			assert.NoError(t, err)
			results[i] = info
		}()
	}

	arrived.Wait()
	// let the stragglers join the in-flight call before it completes
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.Less(t, fetches.Load(), int64(callers))
	for _, info := range results {
		assert.Equal(t, fetched, info)
	}
}

func TestInfoCachingExtractor_GetInfo_CallerDeadlineReturnsEarly(t *testing.T) {
	c, inner, cache, _ := newTestCachingExtractor(t, time.Minute)
	fetched := models.VideoInfo{ID: testVideoID}

	release := make(chan struct{})
	saved := make(chan struct{})

	cache.EXPECT().Get(gomock.Any(), testVideoID).Return(models.VideoInfo{}, store.ErrInfoNotCached)
	inner.EXPECT().GetInfo(gomock.Any(), testVideoID).
		DoAndReturn(func(ctx context.Context, _ string) (models.VideoInfo, error) {
			<-release
			// the shared lookup outlives the caller that started it
			assert.NoError(t, ctx.Err())
			return fetched, nil
		})
	cache.EXPECT().Save(gomock.Any(), fetched, time.Minute).
		DoAndReturn(func(context.Context, models.VideoInfo, time.Duration) error {
			close(saved)
			return nil
		})

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := c.GetInfo(ctx, testVideoID)

	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), time.Second)

	close(release)
	select {
	case <-saved:
	case <-time.After(time.Second):
		t.Fatal("detached lookup did not fill the cache")
	}
}

func TestInfoCachingExtractor_GetInfo_CancelledCallerDoesNotWait(t *testing.T) {
	c, inner, cache, _ := newTestCachingExtractor(t, time.Minute)

	release := make(chan struct{})
	done := make(chan struct{})
	t.Cleanup(func() {
		close(release)
		<-done
	})

	cache.EXPECT().Get(gomock.Any(), testVideoID).Return(models.VideoInfo{}, store.ErrInfoNotCached)
	inner.EXPECT().GetInfo(gomock.Any(), testVideoID).
		DoAndReturn(func(context.Context, string) (models.VideoInfo, error) {
			defer close(done)
			<-release
			return models.VideoInfo{}, errors.New("gone")
		})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.GetInfo(ctx, testVideoID)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestInfoCachingExtractor_OpenStream_PassesThrough(t *testing.T) {
	c, inner, _, observer := newTestCachingExtractor(t, time.Minute)
	opts := models.StreamOptions{Quality: "22"}
	want := &models.Stream{VideoID: testVideoID}

	inner.EXPECT().OpenStream(gomock.Any(), testVideoID, opts).Return(want, nil)

	got, err := c.OpenStream(context.Background(), testVideoID, opts)
	require.NoError(t, err)

	assert.Same(t, want, got)
	assert.EqualValues(t, 0, observer.hits.Load()+observer.misses.Load())
}

func TestInfoCachingExtractor_NilObserver(t *testing.T) {
	ctrl := gomock.NewController(t)
	inner := mock.NewMockExtractor(ctrl)
	cache := mock.NewMockInfoCache(ctrl)

	c := NewInfoCachingExtractor(cache, time.Minute, nil, logger.Nop()).Wrap(inner)
	cache.EXPECT().Get(gomock.Any(), testVideoID).Return(models.VideoInfo{ID: testVideoID}, nil)

	assert.NotPanics(t, func() {
		_, _ = c.GetInfo(context.Background(), testVideoID)
	})
}
