// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-restaurant-reviews/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_store_mock.go -package=mock

type RestaurantRepository interface {
	GetAllRestaurants(ctx context.Context) ([]models.Restaurant, error)
	GetRestaurant(ctx context.Context, id int64) (models.Restaurant, error)
	SetFavorite(ctx context.Context, id int64, favorite bool) (models.Restaurant, error)
}

type ReviewRepository interface {
	// GetReviews returns every review, or only the reviews of restaurantID
	// when it is not nil.
	GetReviews(ctx context.Context, restaurantID *int64) ([]models.Review, error)
	CreateReview(ctx context.Context, review models.NewReview) (models.Review, error)
}
