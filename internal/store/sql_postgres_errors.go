// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

func postgresError(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	return ""
}

// mapReviewWriteError translates constraint violations raised while writing
// a review into domain sentinels.
//
//   - 23503 foreign_key_violation: the restaurant does not exist.
//   - 23514 check_violation, 23502 not_null_violation, class 22 data
//     exceptions: the review itself is invalid.
func mapReviewWriteError(err error) error {
	switch code := postgresError(err); {
	case code == pgerrcode.ForeignKeyViolation:
		return fmt.Errorf("%w: %w", ErrRestaurantNotFound, err)
	case code == pgerrcode.CheckViolation, code == pgerrcode.NotNullViolation:
		return fmt.Errorf("%w: %w", ErrInvalidReview, err)
	case pgerrcode.IsDataException(code):
		return fmt.Errorf("%w: %w", ErrInvalidReview, err)
	default:
		return fmt.Errorf("unexpected DB error: %w", err)
	}
}
