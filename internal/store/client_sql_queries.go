// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"
)

// Local store queries use "?" placeholders (SQLite).

func buildGetRecordQuery(c Collection, key int64) (string, []any, error) {
	return sq.Select(c.key, "payload").
		From(c.name).
		Where(sq.Eq{c.key: key}).
		ToSql()
}

func buildGetAllRecordsQuery(c Collection) (string, []any, error) {
	return sq.Select(c.key, "payload").
		From(c.name).
		OrderBy(c.key + " ASC").
		ToSql()
}

func buildUpsertRecordQuery(c Collection, rec Record, updatedAt int64) (string, []any, error) {
	return sq.Insert(c.name).
		Columns(c.key, "payload", "updated_at").
		Values(rec.Key, string(rec.Payload), updatedAt).
		Suffix(fmt.Sprintf("ON CONFLICT(%s) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at", c.key)).
		ToSql()
}

func buildInsertRecordQuery(c Collection, payload []byte, updatedAt int64) (string, []any, error) {
	return sq.Insert(c.name).
		Columns("payload", "updated_at").
		Values(string(payload), updatedAt).
		ToSql()
}

func buildDeleteRecordQuery(c Collection, key int64) (string, []any, error) {
	return sq.Delete(c.name).
		Where(sq.Eq{c.key: key}).
		ToSql()
}

func buildCountRecordsQuery(c Collection) (string, []any, error) {
	return sq.Select("COUNT(*)").
		From(c.name).
		ToSql()
}
