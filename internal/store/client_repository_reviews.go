// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-restaurant-reviews/internal/logger"
	"github.com/MKhiriev/go-restaurant-reviews/models"
)

type localReviewRepository struct {
	store  LocalStore
	logger *logger.Logger
}

func NewLocalReviewRepository(store LocalStore, logger *logger.Logger) LocalReviewRepository {
	return &localReviewRepository{store: store, logger: logger}
}

func (r *localReviewRepository) GetReviews(ctx context.Context, restaurantID int64) (models.ReviewCollection, error) {
	rec, err := r.store.Get(ctx, ReviewsCollection, restaurantID)
	if err != nil {
		return models.ReviewCollection{}, err
	}

	return decodeRecord[models.ReviewCollection](ReviewsCollection, rec)
}

func (r *localReviewRepository) SaveReviews(ctx context.Context, collection models.ReviewCollection) error {
	if collection.Reviews == nil {
		collection.Reviews = []models.Review{}
	}

	rec, err := encodeRecord(collection.RestaurantID, collection)
	if err != nil {
		return err
	}

	return r.store.Put(ctx, ReviewsCollection, rec)
}

func (r *localReviewRepository) DeleteReviews(ctx context.Context, restaurantID int64) error {
	return r.store.Delete(ctx, ReviewsCollection, restaurantID)
}
