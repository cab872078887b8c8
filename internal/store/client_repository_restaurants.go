// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-restaurant-reviews/internal/logger"
	"github.com/MKhiriev/go-restaurant-reviews/models"
)

type localRestaurantRepository struct {
	store  LocalStore
	logger *logger.Logger
}

func NewLocalRestaurantRepository(store LocalStore, logger *logger.Logger) LocalRestaurantRepository {
	return &localRestaurantRepository{store: store, logger: logger}
}

func (r *localRestaurantRepository) GetRestaurant(ctx context.Context, id int64) (models.Restaurant, error) {
	rec, err := r.store.Get(ctx, RestaurantsCollection, id)
	if err != nil {
		return models.Restaurant{}, err
	}

	return decodeRecord[models.Restaurant](RestaurantsCollection, rec)
}

func (r *localRestaurantRepository) GetAllRestaurants(ctx context.Context) ([]models.Restaurant, error) {
	records, err := r.store.GetAll(ctx, RestaurantsCollection)
	if err != nil {
		return nil, err
	}

	restaurants := make([]models.Restaurant, 0, len(records))
	for _, rec := range records {
		restaurant, err := decodeRecord[models.Restaurant](RestaurantsCollection, rec)
		if err != nil {
			return nil, err
		}
		restaurants = append(restaurants, restaurant)
	}

	return restaurants, nil
}

func (r *localRestaurantRepository) SaveRestaurants(ctx context.Context, restaurants []models.Restaurant) error {
	records := make([]Record, 0, len(restaurants))
	for _, restaurant := range restaurants {
		rec, err := encodeRecord(restaurant.ID, restaurant)
		if err != nil {
			return err
		}
		records = append(records, rec)
	}

	if err := r.store.PutAll(ctx, RestaurantsCollection, records); err != nil {
		return err
	}

	r.logger.Debug().
		Str("func", "localRestaurantRepository.SaveRestaurants").
		Int("count", len(records)).
		Msg("restaurants cached")
	return nil
}

func (r *localRestaurantRepository) DeleteRestaurant(ctx context.Context, id int64) error {
	return r.store.Delete(ctx, RestaurantsCollection, id)
}
