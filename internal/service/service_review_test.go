// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-restaurant-reviews/internal/logger"
	"github.com/MKhiriev/go-restaurant-reviews/internal/mock"
	"github.com/MKhiriev/go-restaurant-reviews/internal/store"
	"github.com/MKhiriev/go-restaurant-reviews/internal/validators"
	"github.com/MKhiriev/go-restaurant-reviews/models"
)

func newWrappedReviewService(t *testing.T) (ReviewService, *mock.MockReviewRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mock.NewMockReviewRepository(ctrl)

	return NewReviewValidationService().Wrap(NewReviewService(repo, logger.Nop())), repo
}

func TestReviewService_GetReviews(t *testing.T) {
	svc, repo := newWrappedReviewService(t)
	ctx := context.Background()

	id := int64(1)
	want := []models.Review{{ID: 1, RestaurantID: 1}}
	repo.EXPECT().GetReviews(ctx, &id).Return(want, nil)
	repo.EXPECT().GetReviews(ctx, (*int64)(nil)).Return(want, nil)

	got, err := svc.GetReviews(ctx, &id)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	// без фильтра возвращаются все отзывы
	got, err = svc.GetReviews(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestReviewService_GetReviews_InvalidRestaurantID(t *testing.T) {
	svc, _ := newWrappedReviewService(t)

	id := int64(0)
	_, err := svc.GetReviews(context.Background(), &id)
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
	assert.ErrorIs(t, err, validators.ErrInvalidRestaurantID)
}

func TestReviewService_CreateReview(t *testing.T) {
	svc, repo := newWrappedReviewService(t)
	ctx := context.Background()

	created := models.Review{ID: 31, RestaurantID: 1, Name: "Steve", Rating: 4, Comments: "Great dumplings"}
	repo.EXPECT().CreateReview(ctx, validReview).Return(created, nil)

	got, err := svc.CreateReview(ctx, validReview)
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestReviewService_CreateReview_ValidationStopsBeforeStore(t *testing.T) {
	svc, _ := newWrappedReviewService(t)

	_, err := svc.CreateReview(context.Background(), models.NewReview{RestaurantID: 1, Name: "a", Rating: 9})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
	assert.ErrorIs(t, err, validators.ErrInvalidRating)
}

func TestReviewService_CreateReview_UnknownRestaurant(t *testing.T) {
	svc, repo := newWrappedReviewService(t)
	ctx := context.Background()

	repo.EXPECT().CreateReview(ctx, validReview).Return(models.Review{}, store.ErrRestaurantNotFound)

	_, err := svc.CreateReview(ctx, validReview)
	assert.ErrorIs(t, err, ErrRestaurantNotFound)
}
