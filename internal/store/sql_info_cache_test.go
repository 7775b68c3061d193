// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/media-vault/internal/logger"
	"github.com/MKhiriev/media-vault/models"
)

var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestCacheRepo(t *testing.T) (*infoCacheRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repo := &infoCacheRepository{
		db: &DB{
			DB:                 db,
			placeholder:        sq.Dollar,
			errorClassificator: NewPostgresErrorClassifier(),
			logger:             logger.Nop(),
		},
		logger: logger.Nop(),
		now:    func() time.Time { return fixedNow },
	}
	return repo, mock
}

func sampleInfo() models.VideoInfo {
	return models.VideoInfo{
		ID:       "dQw4w9WgXcQ",
		Title:    "Never Gonna Give You Up",
		Author:   "Rick Astley",
		Duration: 212 * time.Second,
		Views:    42,
		Formats:  []models.Format{{Itag: 18, Container: "mp4", HasVideo: true, HasAudio: true}},
	}
}

var (
	selectQuery = regexp.QuoteMeta("SELECT payload, fetched_at FROM video_info_cache WHERE video_id = $1 AND expires_at > $2")
	upsertQuery = regexp.QuoteMeta("INSERT INTO video_info_cache (video_id,payload,fetched_at,expires_at) VALUES ($1,$2,$3,$4) ON CONFLICT")
	deleteQuery = regexp.QuoteMeta("DELETE FROM video_info_cache WHERE expires_at <= $1")
)

// ---------------------------------------------------------------------------
// Get
// ---------------------------------------------------------------------------

func TestInfoCacheRepository_Get_Hit(t *testing.T) {
	repo, mock := newTestCacheRepo(t)

	payload, err := json.Marshal(sampleInfo())
	require.NoError(t, err)

	mock.ExpectQuery(selectQuery).
		WithArgs("dQw4w9WgXcQ", fixedNow).
		WillReturnRows(sqlmock.NewRows([]string{"payload", "fetched_at"}).AddRow(string(payload), fixedNow.Add(-time.Minute)))

	got, err := repo.Get(context.Background(), "dQw4w9WgXcQ")
	require.NoError(t, err)
	assert.Equal(t, sampleInfo(), got)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestInfoCacheRepository_Get_Miss(t *testing.T) {
	repo, mock := newTestCacheRepo(t)

	mock.ExpectQuery(selectQuery).
		WithArgs("dQw4w9WgXcQ", fixedNow).
		WillReturnRows(sqlmock.NewRows([]string{"payload", "fetched_at"}))

	_, err := repo.Get(context.Background(), "dQw4w9WgXcQ")
	require.ErrorIs(t, err, ErrInfoNotCached)
}

func TestInfoCacheRepository_Get_QueryError(t *testing.T) {
	repo, mock := newTestCacheRepo(t)

	mock.ExpectQuery(selectQuery).WillReturnError(errors.New("connection refused"))

	_, err := repo.Get(context.Background(), "dQw4w9WgXcQ")
	require.ErrorIs(t, err, ErrScanningRow)
}

func TestInfoCacheRepository_Get_CorruptPayload(t *testing.T) {
	repo, mock := newTestCacheRepo(t)

	mock.ExpectQuery(selectQuery).
		WillReturnRows(sqlmock.NewRows([]string{"payload", "fetched_at"}).AddRow("{not json", fixedNow))

	_, err := repo.Get(context.Background(), "dQw4w9WgXcQ")
	require.ErrorIs(t, err, ErrDecodingPayload)
}

// ---------------------------------------------------------------------------
// Save
// ---------------------------------------------------------------------------

func TestInfoCacheRepository_Save(t *testing.T) {
	repo, mock := newTestCacheRepo(t)

	payload, err := json.Marshal(sampleInfo())
	require.NoError(t, err)

	mock.ExpectExec(upsertQuery).
		WithArgs("dQw4w9WgXcQ", string(payload), fixedNow, fixedNow.Add(10*time.Minute)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Save(context.Background(), sampleInfo(), 10*time.Minute))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestInfoCacheRepository_Save_EmptyID(t *testing.T) {
	repo, _ := newTestCacheRepo(t)

	err := repo.Save(context.Background(), models.VideoInfo{Title: "x"}, time.Minute)
	require.ErrorIs(t, err, ErrEmptyVideoID)
}

func TestInfoCacheRepository_Save_RetriesTransientError(t *testing.T) {
	repo, mock := newTestCacheRepo(t)

	mock.ExpectExec(upsertQuery).WillReturnError(&pgconn.PgError{Code: pgerrcode.SerializationFailure})
	mock.ExpectExec(upsertQuery).WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Save(context.Background(), sampleInfo(), time.Minute))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestInfoCacheRepository_Save_RetriesOnlyOnce(t *testing.T) {
	repo, mock := newTestCacheRepo(t)

	mock.ExpectExec(upsertQuery).WillReturnError(&pgconn.PgError{Code: pgerrcode.ConnectionFailure})
	mock.ExpectExec(upsertQuery).WillReturnError(&pgconn.PgError{Code: pgerrcode.ConnectionFailure})

	err := repo.Save(context.Background(), sampleInfo(), time.Minute)
	require.ErrorIs(t, err, ErrExecutingQuery)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestInfoCacheRepository_Save_PermanentErrorNotRetried(t *testing.T) {
	repo, mock := newTestCacheRepo(t)

	mock.ExpectExec(upsertQuery).WillReturnError(&pgconn.PgError{Code: pgerrcode.UndefinedTable})

	err := repo.Save(context.Background(), sampleInfo(), time.Minute)
	require.ErrorIs(t, err, ErrExecutingQuery)
	require.NoError(t, mock.ExpectationsWereMet())
}

// ---------------------------------------------------------------------------
// DeleteExpired
// ---------------------------------------------------------------------------

func TestInfoCacheRepository_DeleteExpired(t *testing.T) {
	repo, mock := newTestCacheRepo(t)

	mock.ExpectExec(deleteQuery).
		WithArgs(fixedNow).
		WillReturnResult(sqlmock.NewResult(0, 3))

	deleted, err := repo.DeleteExpired(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(3), deleted)
}

func TestInfoCacheRepository_DeleteExpired_Error(t *testing.T) {
	repo, mock := newTestCacheRepo(t)

	mock.ExpectExec(deleteQuery).WillReturnError(sql.ErrConnDone)

	_, err := repo.DeleteExpired(context.Background())
	require.ErrorIs(t, err, ErrExecutingQuery)
	assert.ErrorIs(t, err, sql.ErrConnDone)
}

func TestInfoCacheRepository_DeleteExpired_RowsAffectedError(t *testing.T) {
	repo, mock := newTestCacheRepo(t)

	mock.ExpectExec(deleteQuery).WillReturnResult(sqlmock.NewErrorResult(errors.New("not supported")))

	_, err := repo.DeleteExpired(context.Background())
	require.ErrorIs(t, err, ErrExecutingQuery)
}
