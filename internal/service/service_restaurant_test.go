// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-restaurant-reviews/internal/logger"
	"github.com/MKhiriev/go-restaurant-reviews/internal/mock"
	"github.com/MKhiriev/go-restaurant-reviews/internal/store"
	"github.com/MKhiriev/go-restaurant-reviews/models"
)

func TestRestaurantService_GetAllRestaurants(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockRestaurantRepository(ctrl)
	svc := NewRestaurantService(repo, logger.Nop())
	ctx := context.Background()

	repo.EXPECT().GetAllRestaurants(ctx).Return(catalog, nil)

	got, err := svc.GetAllRestaurants(ctx)
	require.NoError(t, err)
	assert.Equal(t, catalog, got)
}

func TestRestaurantService_GetRestaurant(t *testing.T) {
	tests := []struct {
		name    string
		repoErr error
		wantErr error
	}{
		{name: "found"},
		{name: "not found", repoErr: store.ErrRestaurantNotFound, wantErr: ErrRestaurantNotFound},
		{name: "db error", repoErr: errors.New("unexpected DB error"), wantErr: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mock.NewMockRestaurantRepository(ctrl)
			svc := NewRestaurantService(repo, logger.Nop())
			ctx := context.Background()

			repo.EXPECT().GetRestaurant(ctx, int64(1)).Return(catalog[0], tt.repoErr)

			got, err := svc.GetRestaurant(ctx, 1)
			switch {
			case tt.repoErr == nil:
				require.NoError(t, err)
				assert.Equal(t, catalog[0], got)
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
				assert.ErrorIs(t, err, tt.repoErr)
			default:
				assert.ErrorIs(t, err, tt.repoErr)
				assert.NotErrorIs(t, err, ErrRestaurantNotFound)
			}
		})
	}
}

func TestRestaurantService_SetFavorite(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockRestaurantRepository(ctrl)
	svc := NewRestaurantService(repo, logger.Nop())
	ctx := context.Background()

	updated := catalog[0]
	updated.IsFavorite = true
	repo.EXPECT().SetFavorite(ctx, int64(1), true).Return(updated, nil)
	repo.EXPECT().SetFavorite(ctx, int64(404), false).
		Return(models.Restaurant{}, fmt.Errorf("%w: id 404", store.ErrRestaurantNotFound))

	got, err := svc.SetFavorite(ctx, 1, true)
	require.NoError(t, err)
	assert.True(t, got.IsFavorite.Bool())

	_, err = svc.SetFavorite(ctx, 404, false)
	assert.ErrorIs(t, err, ErrRestaurantNotFound)
}
