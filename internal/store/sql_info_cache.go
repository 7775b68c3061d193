// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/media-vault/internal/logger"
	"github.com/MKhiriev/media-vault/models"
)

// infoCacheRepository is the SQL implementation of [InfoCache]. Payloads are
// stored as JSON text so the same schema serves PostgreSQL and SQLite.
type infoCacheRepository struct {
	db     *DB
	logger *logger.Logger
	now    func() time.Time
}

func NewInfoCacheRepository(db *DB, logger *logger.Logger) InfoCache {
	logger.Debug().Str("dialect", db.dialect).Msg("creating video info cache repository")
	return &infoCacheRepository{
		db:     db,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

func (r *infoCacheRepository) Get(ctx context.Context, videoID string) (models.VideoInfo, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectInfoQuery(r.db.builder(), videoID, r.now())
	if err != nil {
		return models.VideoInfo{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var (
		payload   string
		fetchedAt time.Time
	)
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&payload, &fetchedAt)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.VideoInfo{}, ErrInfoNotCached
	case err != nil:
		log.Err(err).Str("func", "*infoCacheRepository.Get").Str("video_id", videoID).Msg("error reading cached info")
		return models.VideoInfo{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	var info models.VideoInfo
	if err = json.Unmarshal([]byte(payload), &info); err != nil {
		log.Err(err).Str("func", "*infoCacheRepository.Get").Str("video_id", videoID).Msg("corrupt cached payload")
		return models.VideoInfo{}, fmt.Errorf("%w: %w", ErrDecodingPayload, err)
	}

	log.Debug().Str("video_id", videoID).Time("fetched_at", fetchedAt).Msg("video info served from cache")
	return info, nil
}

func (r *infoCacheRepository) Save(ctx context.Context, info models.VideoInfo, ttl time.Duration) error {
	log := logger.FromContext(ctx)

	if info.ID == "" {
		return ErrEmptyVideoID
	}

	payload, err := json.Marshal(info)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncodingPayload, err)
	}

	now := r.now()
	query, args, err := buildUpsertInfoQuery(r.db.builder(), info.ID, string(payload), now, now.Add(ttl))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	_, err = r.db.ExecContext(ctx, query, args...)
	if err != nil && r.db.isRetryable(err) {
		log.Warn().Err(err).Str("video_id", info.ID).Msg("retrying cache write")
		_, err = r.db.ExecContext(ctx, query, args...)
	}
	if err != nil {
		log.Err(err).Str("func", "*infoCacheRepository.Save").Str("video_id", info.ID).Msg("error writing cached info")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

func (r *infoCacheRepository) DeleteExpired(ctx context.Context) (int64, error) {
	query, args, err := buildDeleteExpiredQuery(r.db.builder(), r.now())
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	deleted, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return deleted, nil
}
