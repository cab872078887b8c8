// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-restaurant-reviews/internal/config"
	"github.com/MKhiriev/go-restaurant-reviews/internal/logger"
)

// Storages aggregates the server repositories.
type Storages struct {
	RestaurantRepository RestaurantRepository
	ReviewRepository     ReviewRepository

	db *DB
}

// NewStorages connects to PostgreSQL, applies the server migrations and
// builds the repositories.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, logger)
	if err != nil {
		return nil, err
	}

	if err = db.MigrateServer(ctx); err != nil {
		logger.Err(err).Str("func", "NewStorages").Msg("error migrating database")
		_ = db.Close()
		return nil, err
	}

	return NewStoragesFromDB(db, logger), nil
}

// NewStoragesFromDB builds the repositories on an already migrated handle.
func NewStoragesFromDB(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		RestaurantRepository: NewRestaurantRepository(db, logger),
		ReviewRepository:     NewReviewRepository(db, logger),
		db:                   db,
	}
}

// Ping checks the database connection.
func (s *Storages) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Storages) Close() error {
	return s.db.Close()
}
