// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidRestaurantID = errors.New("invalid restaurant ID")
	ErrEmptyReviewerName   = errors.New("reviewer name is required")
	ErrReviewerNameTooLong = errors.New("reviewer name is too long")
	ErrInvalidRating       = errors.New("rating must be between 1 and 5")
	ErrCommentsTooLong     = errors.New("comments are too long")
)
