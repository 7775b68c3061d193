// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"
)

const (
	cacheTable = "video_info_cache"

	colVideoID   = "video_id"
	colPayload   = "payload"
	colFetchedAt = "fetched_at"
	colExpiresAt = "expires_at"
)

// PostgreSQL and SQLite 3.24+ share this upsert syntax.
const upsertConflictClause = "ON CONFLICT (" + colVideoID + ") DO UPDATE SET " +
	colPayload + " = excluded." + colPayload + ", " +
	colFetchedAt + " = excluded." + colFetchedAt + ", " +
	colExpiresAt + " = excluded." + colExpiresAt

func buildSelectInfoQuery(b sq.StatementBuilderType, videoID string, now time.Time) (string, []any, error) {
	return b.Select(colPayload, colFetchedAt).
		From(cacheTable).
		Where(sq.Eq{colVideoID: videoID}).
		Where(sq.Gt{colExpiresAt: now}).
		ToSql()
}

func buildUpsertInfoQuery(b sq.StatementBuilderType, videoID, payload string, fetchedAt, expiresAt time.Time) (string, []any, error) {
	return b.Insert(cacheTable).
		Columns(colVideoID, colPayload, colFetchedAt, colExpiresAt).
		Values(videoID, payload, fetchedAt, expiresAt).
		Suffix(upsertConflictClause).
		ToSql()
}

func buildDeleteExpiredQuery(b sq.StatementBuilderType, now time.Time) (string, []any, error) {
	return b.Delete(cacheTable).
		Where(sq.LtOrEq{colExpiresAt: now}).
		ToSql()
}
