// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-restaurant-reviews/internal/adapter"
	"github.com/MKhiriev/go-restaurant-reviews/internal/gateway"
	"github.com/MKhiriev/go-restaurant-reviews/internal/logger"
	"github.com/MKhiriev/go-restaurant-reviews/internal/metrics"
	"github.com/MKhiriev/go-restaurant-reviews/internal/store"
	"github.com/MKhiriev/go-restaurant-reviews/internal/validators"
	"github.com/MKhiriev/go-restaurant-reviews/models"
)

const resourceReviews = "reviews"

type clientReviewService struct {
	repository store.LocalReviewRepository
	adapter    adapter.RemoteAdapter
	requests   *gateway.RequestBuilder
	pending    ClientPendingRequestService
	validator  validators.Validator
	metrics    *metrics.ClientMetrics
	now        func() time.Time

	logger *logger.Logger
}

func NewClientReviewService(
	repository store.LocalReviewRepository,
	remote adapter.RemoteAdapter,
	requests *gateway.RequestBuilder,
	pending ClientPendingRequestService,
	m *metrics.ClientMetrics,
	logger *logger.Logger,
) ClientReviewService {
	return &clientReviewService{
		repository: repository,
		adapter:    remote,
		requests:   requests,
		pending:    pending,
		validator:  validators.NewReviewValidator(),
		metrics:    m,
		now:        time.Now,
		logger:     logger.WithComponent("reviews"),
	}
}

func (s *clientReviewService) GetReviews(ctx context.Context, restaurantID int64) ([]models.Review, bool, error) {
	collection, err := s.repository.GetReviews(ctx, restaurantID)
	if errors.Is(err, store.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	return collection.Reviews, true, nil
}

func (s *clientReviewService) RefreshReviews(ctx context.Context, restaurantID int64) ([]models.Review, error) {
	resp, err := s.adapter.Send(ctx, s.requests.RestaurantReviews(restaurantID))
	if err != nil {
		s.metrics.Refresh(resourceReviews, metrics.OutcomeFailed)
		return nil, mapAdapterError(resp, err)
	}

	reviews, err := adapter.DecodeJSON[[]models.Review](resp)
	if err != nil {
		s.metrics.Refresh(resourceReviews, metrics.OutcomeFailed)
		s.logger.Err(err).Str("func", "*clientReviewService.RefreshReviews").Int64("restaurant_id", restaurantID).Msg("error decoding reviews")
		return nil, err
	}
	if reviews == nil {
		reviews = []models.Review{}
	}

	err = s.repository.SaveReviews(ctx, models.ReviewCollection{RestaurantID: restaurantID, Reviews: reviews})
	if err != nil {
		s.metrics.Refresh(resourceReviews, metrics.OutcomeFailed)
		s.logger.Err(err).Str("func", "*clientReviewService.RefreshReviews").Int64("restaurant_id", restaurantID).Msg("reviews fetched but not cached")
		return reviews, err
	}

	s.metrics.Refresh(resourceReviews, metrics.OutcomeFresh)
	return reviews, nil
}

func (s *clientReviewService) PostReview(ctx context.Context, review models.NewReview) (models.Review, error) {
	if err := s.validator.Validate(ctx, review); err != nil {
		return models.Review{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	descriptor, err := s.requests.NewReview(review)
	if err != nil {
		return models.Review{}, err
	}

	submittedAt := models.NewTimestamp(s.now())

	resp, err := s.pending.RegisterRequest(ctx, descriptor)
	if errors.Is(err, ErrRequestQueued) {
		return models.Review{
			RestaurantID: review.RestaurantID,
			Name:         review.Name,
			Rating:       review.Rating,
			Comments:     review.Comments,
			UpdatedAt:    submittedAt,
		}, err
	}
	if err != nil {
		return models.Review{}, mapAdapterError(resp, err)
	}

	created, err := adapter.DecodeJSON[models.Review](resp)
	if err != nil {
		s.logger.Err(err).Str("func", "*clientReviewService.PostReview").Int64("restaurant_id", review.RestaurantID).Msg("error decoding created review")
		return models.Review{}, err
	}

	s.appendCached(ctx, created)

	return created, nil
}

// appendCached adds a delivered review to an already cached collection.
// Collections that were never fetched stay absent.
func (s *clientReviewService) appendCached(ctx context.Context, review models.Review) {
	collection, err := s.repository.GetReviews(ctx, review.RestaurantID)
	if err != nil {
		return
	}

	collection.Reviews = append(collection.Reviews, review)
	if err = s.repository.SaveReviews(ctx, collection); err != nil {
		s.logger.Err(err).Str("func", "*clientReviewService.appendCached").Int64("restaurant_id", review.RestaurantID).Msg("created review not cached")
	}
}

func (s *clientReviewService) LoadReviews(ctx context.Context, restaurantID int64, observer ReadObserver) ReadResult[[]models.Review] {
	return ReadFlow[[]models.Review]{
		Cache: func(ctx context.Context) ([]models.Review, bool, error) {
			return s.GetReviews(ctx, restaurantID)
		},
		Refresh: keepFetched(func(ctx context.Context) ([]models.Review, error) {
			return s.RefreshReviews(ctx, restaurantID)
		}, s.logger, fmt.Sprintf("%s/%d", resourceReviews, restaurantID)),
		Observer: staleObserver(s.metrics, resourceReviews, observer),
	}.Run(ctx)
}
