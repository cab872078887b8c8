// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-restaurant-reviews/internal/validators"
	"github.com/MKhiriev/go-restaurant-reviews/models"
)

type ReviewValidationService struct {
	inner     ReviewService
	validator validators.Validator
}

func NewReviewValidationService() ReviewServiceWrapper {
	return &ReviewValidationService{
		validator: validators.NewReviewValidator(),
	}
}

func (v *ReviewValidationService) GetReviews(ctx context.Context, restaurantID *int64) ([]models.Review, error) {
	if restaurantID != nil {
		probe := models.NewReview{RestaurantID: *restaurantID}
		if err := v.validator.Validate(ctx, probe, validators.FieldRestaurantID); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
		}
	}

	return v.inner.GetReviews(ctx, restaurantID)
}

func (v *ReviewValidationService) CreateReview(ctx context.Context, review models.NewReview) (models.Review, error) {
	if err := v.validator.Validate(ctx, review); err != nil {
		return models.Review{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.CreateReview(ctx, review)
}

func (v *ReviewValidationService) Wrap(inner ReviewService) ReviewService {
	v.inner = inner
	return v
}
