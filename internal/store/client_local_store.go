// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-restaurant-reviews/internal/logger"
)

type sqliteLocalStore struct {
	db  *DB
	now func() time.Time

	logger *logger.Logger
}

// NewLocalStore returns the SQLite implementation of [LocalStore] on top of
// an opened and migrated handle.
func NewLocalStore(db *DB, logger *logger.Logger) LocalStore {
	return &sqliteLocalStore{
		db:     db,
		now:    time.Now,
		logger: logger.WithComponent("local-store"),
	}
}

func (s *sqliteLocalStore) Get(ctx context.Context, c Collection, key int64) (Record, error) {
	query, args, err := buildGetRecordQuery(c, key)
	if err != nil {
		return Record{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var rec Record
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&rec.Key, &rec.Payload)
	if errors.Is(err, sql.ErrNoRows) {
		return Record{}, fmt.Errorf("%w: %s[%d]", ErrRecordNotFound, c, key)
	}
	if err != nil {
		return Record{}, s.unavailable("get", c, err)
	}

	return rec, nil
}

func (s *sqliteLocalStore) GetAll(ctx context.Context, c Collection) ([]Record, error) {
	query, args, err := buildGetAllRecordsQuery(c)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, s.unavailable("get all", c, err)
	}
	defer rows.Close()

	records := make([]Record, 0)
	for rows.Next() {
		var rec Record
		if err = rows.Scan(&rec.Key, &rec.Payload); err != nil {
			return nil, s.unavailable("scan", c, err)
		}
		records = append(records, rec)
	}
	if err = rows.Err(); err != nil {
		return nil, s.unavailable("iterate", c, err)
	}

	return records, nil
}

func (s *sqliteLocalStore) Put(ctx context.Context, c Collection, rec Record) error {
	query, args, err := buildUpsertRecordQuery(c, rec, s.now().UnixMilli())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		return s.unavailable("put", c, err)
	}

	return nil
}

func (s *sqliteLocalStore) PutAll(ctx context.Context, c Collection, records []Record) error {
	if len(records) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return s.unavailable("begin", c, err)
	}
	defer tx.Rollback() //nolint:errcheck

	updatedAt := s.now().UnixMilli()
	for _, rec := range records {
		query, args, err := buildUpsertRecordQuery(c, rec, updatedAt)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			return s.unavailable("put all", c, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return s.unavailable("commit", c, err)
	}

	return nil
}

func (s *sqliteLocalStore) Insert(ctx context.Context, c Collection, payload []byte) (int64, error) {
	query, args, err := buildInsertRecordQuery(c, payload, s.now().UnixMilli())
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, s.unavailable("insert", c, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, s.unavailable("insert id", c, err)
	}

	return id, nil
}

func (s *sqliteLocalStore) Delete(ctx context.Context, c Collection, key int64) error {
	query, args, err := buildDeleteRecordQuery(c, key)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		return s.unavailable("delete", c, err)
	}

	return nil
}

func (s *sqliteLocalStore) Count(ctx context.Context, c Collection) (int64, error) {
	query, args, err := buildCountRecordsQuery(c)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var count int64
	if err = s.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, s.unavailable("count", c, err)
	}

	return count, nil
}

func (s *sqliteLocalStore) unavailable(op string, c Collection, err error) error {
	s.logger.Err(err).
		Str("func", "sqliteLocalStore."+op).
		Str("collection", c.String()).
		Msg("local store operation failed")
	return fmt.Errorf("%w: %s %s: %w", ErrStorageUnavailable, op, c, err)
}
