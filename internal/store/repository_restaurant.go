// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-restaurant-reviews/internal/logger"
	"github.com/MKhiriev/go-restaurant-reviews/models"
)

// restaurantRepository is the PostgreSQL-backed implementation of
// [RestaurantRepository] over the "restaurants" table.
type restaurantRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewRestaurantRepository(db *DB, logger *logger.Logger) RestaurantRepository {
	logger.Debug().Msg("creating restaurant repository")
	return &restaurantRepository{
		db:     db,
		logger: logger,
	}
}

func (r *restaurantRepository) GetAllRestaurants(ctx context.Context) ([]models.Restaurant, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectRestaurantsQuery()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*restaurantRepository.GetAllRestaurants").Msg("error selecting restaurants")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	restaurants := make([]models.Restaurant, 0)
	for rows.Next() {
		restaurant, err := scanRestaurant(rows)
		if err != nil {
			log.Err(err).Str("func", "*restaurantRepository.GetAllRestaurants").Msg("error: scanning error")
			return nil, err
		}
		restaurants = append(restaurants, restaurant)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}

	return restaurants, nil
}

// GetRestaurant returns [ErrRestaurantNotFound] when id does not exist.
func (r *restaurantRepository) GetRestaurant(ctx context.Context, id int64) (models.Restaurant, error) {
	query, args, err := buildSelectRestaurantQuery(id)
	if err != nil {
		return models.Restaurant{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryOne(ctx, "*restaurantRepository.GetRestaurant", query, args)
}

// SetFavorite updates the favorite flag and returns the updated row.
func (r *restaurantRepository) SetFavorite(ctx context.Context, id int64, favorite bool) (models.Restaurant, error) {
	query, args, err := buildSetFavoriteQuery(id, favorite)
	if err != nil {
		return models.Restaurant{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryOne(ctx, "*restaurantRepository.SetFavorite", query, args)
}

func (r *restaurantRepository) queryOne(ctx context.Context, fn, query string, args []any) (models.Restaurant, error) {
	log := logger.FromContext(ctx)

	restaurant, err := scanRestaurant(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Restaurant{}, ErrRestaurantNotFound
	}
	if err != nil {
		log.Err(err).Str("func", fn).Msg("error querying restaurant")
		return models.Restaurant{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return restaurant, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRestaurant(row rowScanner) (models.Restaurant, error) {
	var (
		restaurant models.Restaurant
		photograph sql.NullString
		hours      []byte
		favorite   bool
	)

	err := row.Scan(
		&restaurant.ID,
		&restaurant.Name,
		&restaurant.Address,
		&restaurant.Neighborhood,
		&restaurant.CuisineType,
		&restaurant.LatLng.Lat,
		&restaurant.LatLng.Lng,
		&photograph,
		&hours,
		&favorite,
	)
	if err != nil {
		return models.Restaurant{}, err
	}

	if photograph.Valid && photograph.String != "" {
		restaurant.Photograph = &photograph.String
	}
	if len(hours) > 0 {
		if err = json.Unmarshal(hours, &restaurant.OperatingHours); err != nil {
			return models.Restaurant{}, fmt.Errorf("decode operating hours of restaurant %d: %w", restaurant.ID, err)
		}
	}
	restaurant.IsFavorite = models.FavoriteFlag(favorite)

	return restaurant, nil
}
