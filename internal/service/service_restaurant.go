// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-restaurant-reviews/internal/logger"
	"github.com/MKhiriev/go-restaurant-reviews/internal/store"
	"github.com/MKhiriev/go-restaurant-reviews/models"
)

type restaurantService struct {
	repository store.RestaurantRepository

	logger *logger.Logger
}

func NewRestaurantService(repository store.RestaurantRepository, logger *logger.Logger) RestaurantService {
	return &restaurantService{
		repository: repository,
		logger:     logger,
	}
}

func (s *restaurantService) GetAllRestaurants(ctx context.Context) ([]models.Restaurant, error) {
	return s.repository.GetAllRestaurants(ctx)
}

func (s *restaurantService) GetRestaurant(ctx context.Context, id int64) (models.Restaurant, error) {
	restaurant, err := s.repository.GetRestaurant(ctx, id)
	return restaurant, mapStoreError(err)
}

func (s *restaurantService) SetFavorite(ctx context.Context, id int64, favorite bool) (models.Restaurant, error) {
	restaurant, err := s.repository.SetFavorite(ctx, id, favorite)
	if err != nil {
		return models.Restaurant{}, mapStoreError(err)
	}

	logger.FromContext(ctx).Info().
		Str("func", "*restaurantService.SetFavorite").
		Int64("restaurant_id", id).
		Bool("is_favorite", favorite).
		Msg("favorite flag updated")

	return restaurant, nil
}

// mapStoreError translates repository sentinels into service errors.
func mapStoreError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, store.ErrRestaurantNotFound):
		return fmt.Errorf("%w: %w", ErrRestaurantNotFound, err)
	case errors.Is(err, store.ErrInvalidReview):
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	default:
		return err
	}
}
