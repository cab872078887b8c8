// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-restaurant-reviews/models"
)

//go:generate mockgen -source=interfaces.go -destination=servicemock/service_mock.go -package=servicemock

// RestaurantService is the server side of the restaurant endpoints.
type RestaurantService interface {
	GetAllRestaurants(ctx context.Context) ([]models.Restaurant, error)
	// GetRestaurant returns [ErrRestaurantNotFound] for an unknown id.
	GetRestaurant(ctx context.Context, id int64) (models.Restaurant, error)
	// SetFavorite stores the flag and returns the updated restaurant.
	SetFavorite(ctx context.Context, id int64, favorite bool) (models.Restaurant, error)
}

// ReviewService is the server side of the review endpoints.
type ReviewService interface {
	// GetReviews returns all reviews, or those of restaurantID when it is set.
	GetReviews(ctx context.Context, restaurantID *int64) ([]models.Review, error)
	CreateReview(ctx context.Context, review models.NewReview) (models.Review, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	// CheckHealth reports whether the database answers.
	CheckHealth(ctx context.Context) error
}

// ReviewServiceWrapper defines middleware composition for ReviewService.
// Implementations wrap an existing ReviewService to add behavior such as
// validation.
type ReviewServiceWrapper interface {
	Wrap(ReviewService) ReviewService
}
