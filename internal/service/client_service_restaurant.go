// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-restaurant-reviews/internal/adapter"
	"github.com/MKhiriev/go-restaurant-reviews/internal/gateway"
	"github.com/MKhiriev/go-restaurant-reviews/internal/logger"
	"github.com/MKhiriev/go-restaurant-reviews/internal/metrics"
	"github.com/MKhiriev/go-restaurant-reviews/internal/store"
	"github.com/MKhiriev/go-restaurant-reviews/models"
)

const resourceRestaurants = "restaurants"

type clientRestaurantService struct {
	repository store.LocalRestaurantRepository
	adapter    adapter.RemoteAdapter
	requests   *gateway.RequestBuilder
	pending    ClientPendingRequestService
	metrics    *metrics.ClientMetrics

	logger *logger.Logger
}

func NewClientRestaurantService(
	repository store.LocalRestaurantRepository,
	remote adapter.RemoteAdapter,
	requests *gateway.RequestBuilder,
	pending ClientPendingRequestService,
	m *metrics.ClientMetrics,
	logger *logger.Logger,
) ClientRestaurantService {
	return &clientRestaurantService{
		repository: repository,
		adapter:    remote,
		requests:   requests,
		pending:    pending,
		metrics:    m,
		logger:     logger.WithComponent("restaurants"),
	}
}

func (s *clientRestaurantService) GetAll(ctx context.Context) ([]models.Restaurant, error) {
	return s.repository.GetAllRestaurants(ctx)
}

func (s *clientRestaurantService) Get(ctx context.Context, id int64) (models.Restaurant, bool, error) {
	restaurant, err := s.repository.GetRestaurant(ctx, id)
	if errors.Is(err, store.ErrRecordNotFound) {
		return models.Restaurant{}, false, nil
	}
	if err != nil {
		return models.Restaurant{}, false, err
	}

	return restaurant, true, nil
}

func (s *clientRestaurantService) GetFiltered(ctx context.Context, filter models.RestaurantFilter) ([]models.Restaurant, error) {
	restaurants, err := s.repository.GetAllRestaurants(ctx)
	if err != nil {
		return nil, err
	}

	filtered := make([]models.Restaurant, 0, len(restaurants))
	for _, restaurant := range restaurants {
		if filter.Matches(restaurant) {
			filtered = append(filtered, restaurant)
		}
	}

	return filtered, nil
}

func (s *clientRestaurantService) GetNeighborhoods(ctx context.Context) ([]string, error) {
	restaurants, err := s.repository.GetAllRestaurants(ctx)
	if err != nil {
		return nil, err
	}

	return distinct(restaurants, func(r models.Restaurant) string { return r.Neighborhood }), nil
}

func (s *clientRestaurantService) GetCuisines(ctx context.Context) ([]string, error) {
	restaurants, err := s.repository.GetAllRestaurants(ctx)
	if err != nil {
		return nil, err
	}

	return distinct(restaurants, func(r models.Restaurant) string { return r.CuisineType }), nil
}

// distinct returns the values of field in first-occurrence order.
func distinct[T any](items []T, field func(T) string) []string {
	seen := make(map[string]struct{}, len(items))
	values := make([]string, 0)

	for _, item := range items {
		value := field(item)
		if _, ok := seen[value]; ok {
			continue
		}
		seen[value] = struct{}{}
		values = append(values, value)
	}

	return values
}

func (s *clientRestaurantService) RefreshAll(ctx context.Context) ([]models.Restaurant, error) {
	resp, err := s.adapter.Send(ctx, s.requests.AllRestaurants())
	if err != nil {
		s.metrics.Refresh(resourceRestaurants, metrics.OutcomeFailed)
		return nil, mapAdapterError(resp, err)
	}

	restaurants, err := adapter.DecodeJSON[[]models.Restaurant](resp)
	if err != nil {
		s.metrics.Refresh(resourceRestaurants, metrics.OutcomeFailed)
		s.logger.Err(err).Str("func", "*clientRestaurantService.RefreshAll").Msg("error decoding restaurants")
		return nil, err
	}
	if restaurants == nil {
		restaurants = []models.Restaurant{}
	}

	if err = s.repository.SaveRestaurants(ctx, restaurants); err != nil {
		s.metrics.Refresh(resourceRestaurants, metrics.OutcomeFailed)
		s.logger.Err(err).
			Str("func", "*clientRestaurantService.RefreshAll").
			Int("count", len(restaurants)).
			Msg("restaurants fetched but not cached")
		return restaurants, err
	}

	s.metrics.Refresh(resourceRestaurants, metrics.OutcomeFresh)
	return restaurants, nil
}

func (s *clientRestaurantService) RefreshOne(ctx context.Context, id int64) (models.Restaurant, error) {
	resp, err := s.adapter.Send(ctx, s.requests.Restaurant(id))
	if err != nil {
		s.metrics.Refresh(resourceRestaurants, metrics.OutcomeFailed)
		if errors.Is(err, adapter.ErrNotFound) {
			s.evict(ctx, id)
		}
		return models.Restaurant{}, mapAdapterError(resp, err)
	}

	restaurant, err := adapter.DecodeJSON[models.Restaurant](resp)
	if err != nil {
		s.metrics.Refresh(resourceRestaurants, metrics.OutcomeFailed)
		s.logger.Err(err).Str("func", "*clientRestaurantService.RefreshOne").Int64("restaurant_id", id).Msg("error decoding restaurant")
		return models.Restaurant{}, err
	}

	if err = s.repository.SaveRestaurants(ctx, []models.Restaurant{restaurant}); err != nil {
		s.metrics.Refresh(resourceRestaurants, metrics.OutcomeFailed)
		s.logger.Err(err).Str("func", "*clientRestaurantService.RefreshOne").Int64("restaurant_id", id).Msg("restaurant fetched but not cached")
		return restaurant, err
	}

	s.metrics.Refresh(resourceRestaurants, metrics.OutcomeFresh)
	return restaurant, nil
}

// evict drops a restaurant the server no longer knows from the cache.
func (s *clientRestaurantService) evict(ctx context.Context, id int64) {
	if err := s.repository.DeleteRestaurant(ctx, id); err != nil {
		s.logger.Err(err).Str("func", "*clientRestaurantService.evict").Int64("restaurant_id", id).Msg("error evicting restaurant from cache")
		return
	}
	s.logger.Debug().Str("func", "*clientRestaurantService.evict").Int64("restaurant_id", id).Msg("restaurant evicted from cache")
}

func (s *clientRestaurantService) ToggleFavorite(ctx context.Context, id int64, favorite bool) (models.Restaurant, error) {
	resp, err := s.pending.RegisterRequest(ctx, s.requests.RestaurantFavorite(id, favorite))
	if errors.Is(err, ErrRequestQueued) {
		restaurant, found, cacheErr := s.Get(ctx, id)
		if cacheErr != nil || !found {
			return models.Restaurant{ID: id, IsFavorite: models.FavoriteFlag(favorite)}, err
		}
		restaurant.IsFavorite = models.FavoriteFlag(favorite)
		return restaurant, err
	}
	if err != nil {
		return models.Restaurant{}, mapAdapterError(resp, err)
	}

	restaurant, err := adapter.DecodeJSON[models.Restaurant](resp)
	if err != nil {
		// delivered: the server applied the flag even if its answer is unusable
		s.logger.Err(err).Str("func", "*clientRestaurantService.ToggleFavorite").Int64("restaurant_id", id).Msg("error decoding updated restaurant")
		return models.Restaurant{}, err
	}

	if err = s.repository.SaveRestaurants(ctx, []models.Restaurant{restaurant}); err != nil {
		s.logger.Err(err).Str("func", "*clientRestaurantService.ToggleFavorite").Int64("restaurant_id", id).Msg("updated restaurant not cached")
		return restaurant, err
	}

	return restaurant, nil
}

func (s *clientRestaurantService) LoadRestaurants(ctx context.Context, observer ReadObserver) ReadResult[[]models.Restaurant] {
	return ReadFlow[[]models.Restaurant]{
		Cache: func(ctx context.Context) ([]models.Restaurant, bool, error) {
			restaurants, err := s.GetAll(ctx)
			return restaurants, err == nil && len(restaurants) > 0, err
		},
		Refresh:  keepFetched(s.RefreshAll, s.logger, resourceRestaurants),
		Observer: s.observe(resourceRestaurants, observer),
	}.Run(ctx)
}

func (s *clientRestaurantService) LoadRestaurant(ctx context.Context, id int64, observer ReadObserver) ReadResult[models.Restaurant] {
	return ReadFlow[models.Restaurant]{
		Cache: func(ctx context.Context) (models.Restaurant, bool, error) {
			return s.Get(ctx, id)
		},
		Refresh: keepFetched(func(ctx context.Context) (models.Restaurant, error) {
			return s.RefreshOne(ctx, id)
		}, s.logger, fmt.Sprintf("%s/%d", resourceRestaurants, id)),
		Observer: s.observe(resourceRestaurants, observer),
	}.Run(ctx)
}

func (s *clientRestaurantService) observe(resource string, next ReadObserver) ReadObserver {
	return staleObserver(s.metrics, resource, next)
}

// staleObserver counts reads that fell back to the cache and forwards every
// state to next.
func staleObserver(m *metrics.ClientMetrics, resource string, next ReadObserver) ReadObserver {
	return func(state ReadState) {
		if state == ReadStaleOnError {
			m.CacheFallback(resource)
		}
		if next != nil {
			next(state)
		}
	}
}

// keepFetched turns "fetched but not cached" into a successful refresh: the
// fetched value is fresh even though the cache could not store it.
func keepFetched[T any](refresh func(context.Context) (T, error), log *logger.Logger, resource string) func(context.Context) (T, error) {
	return func(ctx context.Context) (T, error) {
		value, err := refresh(ctx)
		if err != nil && errors.Is(err, store.ErrStorageUnavailable) {
			log.Warn().Err(err).Str("func", "keepFetched").Str("resource", resource).Msg("serving fetched data that could not be cached")
			return value, nil
		}
		return value, err
	}
}
