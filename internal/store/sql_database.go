// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"

	"github.com/MKhiriev/go-restaurant-reviews/internal/logger"
	"github.com/MKhiriev/go-restaurant-reviews/migrations"
)

// DB wraps the shared *sql.DB handle.
type DB struct {
	*sql.DB
	logger *logger.Logger
}

// MigrateClient applies the local store schema.
func (db *DB) MigrateClient(ctx context.Context) error {
	return migrations.MigrateClient(ctx, db.DB)
}

// MigrateServer applies the reference server schema and seed data.
func (db *DB) MigrateServer(ctx context.Context) error {
	return migrations.MigrateServer(ctx, db.DB)
}
