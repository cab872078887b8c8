// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-restaurant-reviews/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	FieldRestaurantID = "restaurant_id"
	FieldName         = "name"
	FieldRating       = "rating"
	FieldComments     = "comments"
)

const (
	MinRating = 1
	MaxRating = 5

	MaxNameLength     = 100
	MaxCommentsLength = 5000
)

// ReviewValidator validates review submissions ([models.NewReview]) and
// stored reviews ([models.Review]).
type ReviewValidator struct{}

func NewReviewValidator() Validator {
	return &ReviewValidator{}
}

// Validate dispatches on the dynamic type of obj. Value and pointer forms are
// accepted. Without fields every field is validated.
func (v *ReviewValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.NewReview:
		return v.validateNewReview(ctx, value, fields...)
	case *models.NewReview:
		return v.validateNewReview(ctx, *value, fields...)

	case models.Review:
		return v.validateReview(ctx, value, fields...)
	case *models.Review:
		return v.validateReview(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *ReviewValidator) validateNewReview(_ context.Context, review models.NewReview, fields ...string) error {
	return validateReviewFields(review.RestaurantID, review.Name, review.Rating, review.Comments, fields...)
}

func (v *ReviewValidator) validateReview(_ context.Context, review models.Review, fields ...string) error {
	if err := validateReviewFields(review.RestaurantID, review.Name, review.Rating, review.Comments, fields...); err != nil {
		return fmt.Errorf("review %d: %w", review.ID, err)
	}
	return nil
}

func validateReviewFields(restaurantID int64, name string, rating int, comments string, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldRestaurantID, FieldName, FieldRating, FieldComments}
	}

	for _, f := range fields {
		switch f {
		case FieldRestaurantID:
			if restaurantID <= 0 {
				return ErrInvalidRestaurantID
			}
		case FieldName:
			if strings.TrimSpace(name) == "" {
				return ErrEmptyReviewerName
			}
			if utf8.RuneCountInString(name) > MaxNameLength {
				return ErrReviewerNameTooLong
			}
		case FieldRating:
			if rating < MinRating || rating > MaxRating {
				return fmt.Errorf("%w: got %d", ErrInvalidRating, rating)
			}
		case FieldComments:
			if utf8.RuneCountInString(comments) > MaxCommentsLength {
				return ErrCommentsTooLong
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}

	return nil
}
