// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-restaurant-reviews/internal/logger"
	"github.com/MKhiriev/go-restaurant-reviews/internal/store"
	"github.com/MKhiriev/go-restaurant-reviews/models"
)

type reviewService struct {
	repository store.ReviewRepository

	logger *logger.Logger
}

func NewReviewService(repository store.ReviewRepository, logger *logger.Logger) ReviewService {
	return &reviewService{
		repository: repository,
		logger:     logger,
	}
}

func (s *reviewService) GetReviews(ctx context.Context, restaurantID *int64) ([]models.Review, error) {
	return s.repository.GetReviews(ctx, restaurantID)
}

func (s *reviewService) CreateReview(ctx context.Context, review models.NewReview) (models.Review, error) {
	created, err := s.repository.CreateReview(ctx, review)
	if err != nil {
		return models.Review{}, mapStoreError(err)
	}

	logger.FromContext(ctx).Info().
		Str("func", "*reviewService.CreateReview").
		Int64("review_id", created.ID).
		Int64("restaurant_id", created.RestaurantID).
		Msg("review created")

	return created, nil
}
