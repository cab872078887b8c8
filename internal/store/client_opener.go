// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-restaurant-reviews/internal/config"
	"github.com/MKhiriev/go-restaurant-reviews/internal/logger"
)

// Opener opens and migrates the local database at most once.
//
// Concurrent Open calls wait for the same in-flight open and all receive the
// same handle, or the same error. A failed open is not retried. Once Close
// has been called, Open fails with ErrStorageUnavailable.
type Opener struct {
	cfg    config.DB
	logger *logger.Logger

	once sync.Once
	db   *DB
	err  error

	closeOnce sync.Once
	closeErr  error
}

func NewOpener(cfg config.DB, logger *logger.Logger) *Opener {
	return &Opener{cfg: cfg, logger: logger}
}

func (o *Opener) Open(ctx context.Context) (*DB, error) {
	o.once.Do(func() {
		o.db, o.err = o.open(ctx)
	})
	return o.db, o.err
}

func (o *Opener) open(ctx context.Context) (*DB, error) {
	db, err := NewConnectSQLite(ctx, o.cfg, o.logger)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}

	if err = db.MigrateClient(ctx); err != nil {
		o.logger.Err(err).Str("func", "Opener.open").Msg("error migrating local store")
		_ = db.Close()
		return nil, fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}

	return db, nil
}

// Close waits for an in-flight Open, then closes the handle if one was
// opened. Repeated calls return the first result.
func (o *Opener) Close() error {
	o.once.Do(func() {
		o.err = fmt.Errorf("%w: local store closed", ErrStorageUnavailable)
	})

	o.closeOnce.Do(func() {
		if o.db != nil {
			o.closeErr = o.db.Close()
		}
	})
	return o.closeErr
}
