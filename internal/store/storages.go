// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/media-vault/internal/config"
	"github.com/MKhiriev/media-vault/internal/logger"
)

type Storages struct {
	InfoCache InfoCache

	db *DB
}

// NewStorages builds the cache backend selected by cfg. An empty DSN yields
// the in-memory cache; otherwise the database is opened and migrated.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	if cfg.DB.DSN == "" {
		log.Info().Msg("no database configured, using in-memory video info cache")
		return &Storages{InfoCache: NewMemoryInfoCache()}, nil
	}

	db, err := NewConnect(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error applying migrations")
		db.Close()
		return nil, fmt.Errorf("%w: %w", ErrMigratingDB, err)
	}

	return &Storages{
		InfoCache: NewInfoCacheRepository(db, log),
		db:        db,
	}, nil
}

// Close releases the database connection, if any.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
