// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package migrations embeds the goose SQL migrations of the local client
// store (SQLite, client/) and of the reference server (PostgreSQL, server/).
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"
)

//go:embed client/*.sql server/*.sql
var embedMigrations embed.FS

var errNilDB = errors.New("db is nil")

// MigrateClient applies the local store schema to a SQLite database.
func MigrateClient(ctx context.Context, db *sql.DB) error {
	return migrate(ctx, db, goose.DialectSQLite3, "client")
}

// MigrateServer applies the server schema and seed data to PostgreSQL.
func MigrateServer(ctx context.Context, db *sql.DB) error {
	return migrate(ctx, db, goose.DialectPostgres, "server")
}

func migrate(ctx context.Context, db *sql.DB, dialect goose.Dialect, dir string) error {
	if db == nil {
		return fmt.Errorf("migration error: %w", errNilDB)
	}

	fsys, err := fs.Sub(embedMigrations, dir)
	if err != nil {
		return fmt.Errorf("migration error opening %s migrations: %w", dir, err)
	}

	provider, err := goose.NewProvider(dialect, db, fsys)
	if err != nil {
		return fmt.Errorf("migration error creating provider: %w", err)
	}

	if _, err = provider.Up(ctx); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
