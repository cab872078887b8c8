// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-restaurant-reviews/internal/adapter"
	"github.com/MKhiriev/go-restaurant-reviews/internal/app"
	"github.com/MKhiriev/go-restaurant-reviews/internal/gateway"
	"github.com/MKhiriev/go-restaurant-reviews/internal/logger"
	"github.com/MKhiriev/go-restaurant-reviews/internal/mock"
	"github.com/MKhiriev/go-restaurant-reviews/internal/store"
	"github.com/MKhiriev/go-restaurant-reviews/internal/validators"
	"github.com/MKhiriev/go-restaurant-reviews/models"
)

const testBaseURL = "http://api.test"

type restaurantFixture struct {
	svc     ClientRestaurantService
	repo    *mock.MockLocalRestaurantRepository
	pending *mock.MockLocalPendingRequestRepository
	remote  *mock.MockRemoteAdapter
	req     *gateway.RequestBuilder
}

func newRestaurantFixture(t *testing.T) restaurantFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	requests, err := gateway.NewRequestBuilder(testBaseURL)
	require.NoError(t, err)

	f := restaurantFixture{
		repo:    mock.NewMockLocalRestaurantRepository(ctrl),
		pending: mock.NewMockLocalPendingRequestRepository(ctrl),
		remote:  mock.NewMockRemoteAdapter(ctrl),
		req:     requests,
	}
	pendingSvc := NewClientPendingRequestService(f.pending, f.remote, nil, logger.Nop())
	f.svc = NewClientRestaurantService(f.repo, f.remote, requests, pendingSvc, nil, logger.Nop())

	return f
}

func jsonResponse(status int, body string) *adapter.Response {
	return &adapter.Response{StatusCode: status, Body: []byte(body)}
}

var catalog = []models.Restaurant{
	{ID: 1, Name: "Mission Chinese Food", Neighborhood: "Manhattan", CuisineType: "Asian"},
	{ID: 2, Name: "Emily", Neighborhood: "Brooklyn", CuisineType: "Pizza"},
	{ID: 3, Name: "Kang Ho Dong Baekjeong", Neighborhood: "Manhattan", CuisineType: "Asian"},
	{ID: 4, Name: "Katz's Delicatessen", Neighborhood: "Manhattan", CuisineType: "American"},
	{ID: 5, Name: "Roberta's Pizza", Neighborhood: "Brooklyn", CuisineType: "Pizza"},
}

// ── cache reads ──────────────────────────────────────────────────────────────

func TestClientRestaurantService_Get(t *testing.T) {
	f := newRestaurantFixture(t)
	ctx := context.Background()

	f.repo.EXPECT().GetRestaurant(ctx, int64(2)).Return(catalog[1], nil)
	f.repo.EXPECT().GetRestaurant(ctx, int64(99)).Return(models.Restaurant{}, store.ErrRecordNotFound)
	f.repo.EXPECT().GetRestaurant(ctx, int64(3)).Return(models.Restaurant{}, store.ErrStorageUnavailable)

	got, found, err := f.svc.Get(ctx, 2)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, catalog[1], got)

	// отсутствие записи не ошибка
	_, found, err = f.svc.Get(ctx, 99)
	require.NoError(t, err)
	assert.False(t, found)

	_, found, err = f.svc.Get(ctx, 3)
	assert.ErrorIs(t, err, store.ErrStorageUnavailable)
	assert.False(t, found)
}

func TestClientRestaurantService_GetFiltered(t *testing.T) {
	tests := []struct {
		name   string
		filter models.RestaurantFilter
		want   []int64
	}{
		{name: "all", filter: models.RestaurantFilter{Cuisine: models.FilterAll, Neighborhood: models.FilterAll}, want: []int64{1, 2, 3, 4, 5}},
		{name: "empty filter", filter: models.RestaurantFilter{}, want: []int64{1, 2, 3, 4, 5}},
		{name: "cuisine", filter: models.RestaurantFilter{Cuisine: "Pizza", Neighborhood: models.FilterAll}, want: []int64{2, 5}},
		{name: "both", filter: models.RestaurantFilter{Cuisine: "Asian", Neighborhood: "Manhattan"}, want: []int64{1, 3}},
		{name: "no match", filter: models.RestaurantFilter{Cuisine: "Pizza", Neighborhood: "Manhattan"}, want: []int64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newRestaurantFixture(t)
			ctx := context.Background()
			f.repo.EXPECT().GetAllRestaurants(ctx).Return(catalog, nil)

			got, err := f.svc.GetFiltered(ctx, tt.filter)
			require.NoError(t, err)

			ids := make([]int64, 0, len(got))
			for _, r := range got {
				ids = append(ids, r.ID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestClientRestaurantService_DistinctValues(t *testing.T) {
	f := newRestaurantFixture(t)
	ctx := context.Background()
	f.repo.EXPECT().GetAllRestaurants(ctx).Return(catalog, nil).Times(2)

	neighborhoods, err := f.svc.GetNeighborhoods(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Manhattan", "Brooklyn"}, neighborhoods)

	cuisines, err := f.svc.GetCuisines(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Asian", "Pizza", "American"}, cuisines)
}

func TestClientRestaurantService_DistinctValues_EmptyCache(t *testing.T) {
	f := newRestaurantFixture(t)
	ctx := context.Background()
	f.repo.EXPECT().GetAllRestaurants(ctx).Return([]models.Restaurant{}, nil)

	cuisines, err := f.svc.GetCuisines(ctx)
	require.NoError(t, err)
	assert.NotNil(t, cuisines)
	assert.Empty(t, cuisines)
}

// ── refresh ──────────────────────────────────────────────────────────────────

func TestClientRestaurantService_RefreshAll(t *testing.T) {
	f := newRestaurantFixture(t)
	ctx := context.Background()

	body := `[{"id":1,"name":"A","is_favorite":"true"},{"id":2,"name":"B","is_favorite":false}]`
	f.remote.EXPECT().Send(ctx, f.req.AllRestaurants()).Return(jsonResponse(http.StatusOK, body), nil)
	f.repo.EXPECT().SaveRestaurants(ctx, gomock.Len(2)).Return(nil)

	got, err := f.svc.RefreshAll(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.True(t, got[0].IsFavorite.Bool())
	assert.False(t, got[1].IsFavorite.Bool())
}

func TestClientRestaurantService_RefreshAll_FailureLeavesCacheUntouched(t *testing.T) {
	tests := []struct {
		name    string
		resp    *adapter.Response
		err     error
		wantErr error
	}{
		{name: "network", err: errNetwork, wantErr: adapter.ErrNetworkFailure},
		{name: "server error", resp: jsonResponse(http.StatusInternalServerError, ""), err: errServer, wantErr: adapter.ErrServerUnavailable},
		{name: "malformed body", resp: jsonResponse(http.StatusOK, `{"id":`), wantErr: adapter.ErrRemote},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newRestaurantFixture(t)
			ctx := context.Background()
			f.remote.EXPECT().Send(ctx, gomock.Any()).Return(tt.resp, tt.err)
			// SaveRestaurants не ожидается

			got, err := f.svc.RefreshAll(ctx)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, got)
		})
	}
}

func TestClientRestaurantService_RefreshAll_CacheWriteFailure(t *testing.T) {
	f := newRestaurantFixture(t)
	ctx := context.Background()

	f.remote.EXPECT().Send(ctx, gomock.Any()).Return(jsonResponse(http.StatusOK, `[{"id":1}]`), nil)
	f.repo.EXPECT().SaveRestaurants(ctx, gomock.Any()).Return(store.ErrStorageUnavailable)

	got, err := f.svc.RefreshAll(ctx)
	assert.ErrorIs(t, err, store.ErrStorageUnavailable)
	assert.Len(t, got, 1)
}

func TestClientRestaurantService_RefreshOne_NotFound(t *testing.T) {
	f := newRestaurantFixture(t)
	ctx := context.Background()

	f.remote.EXPECT().Send(ctx, f.req.Restaurant(42)).
		Return(jsonResponse(http.StatusNotFound, `{"error":"restaurant not found"}`),
			fmt.Errorf("%w: %w", adapter.ErrRemote, adapter.ErrNotFound))

	// ресторан, которого больше нет на сервере, удаляется из кэша
	f.repo.EXPECT().DeleteRestaurant(ctx, int64(42)).Return(nil)

	_, err := f.svc.RefreshOne(ctx, 42)
	assert.ErrorIs(t, err, ErrRestaurantNotFound)
	assert.ErrorIs(t, err, adapter.ErrNotFound)
}

func TestClientRestaurantService_RefreshOne_NotFoundEvictFailure(t *testing.T) {
	f := newRestaurantFixture(t)
	ctx := context.Background()

	f.remote.EXPECT().Send(ctx, f.req.Restaurant(42)).
		Return(jsonResponse(http.StatusNotFound, `{"error":"restaurant not found"}`),
			fmt.Errorf("%w: %w", adapter.ErrRemote, adapter.ErrNotFound))
	f.repo.EXPECT().DeleteRestaurant(ctx, int64(42)).Return(store.ErrStorageUnavailable)

	_, err := f.svc.RefreshOne(ctx, 42)
	assert.ErrorIs(t, err, ErrRestaurantNotFound)
	assert.NotErrorIs(t, err, store.ErrStorageUnavailable)
}

func TestClientRestaurantService_RefreshOne_NetworkFailureKeepsCache(t *testing.T) {
	f := newRestaurantFixture(t)
	ctx := context.Background()

	// без DeleteRestaurant: кэш не трогается, пока сервер недоступен
	f.remote.EXPECT().Send(ctx, f.req.Restaurant(4)).Return(nil, errNetwork)

	_, err := f.svc.RefreshOne(ctx, 4)
	assert.ErrorIs(t, err, adapter.ErrNetworkFailure)
}

func TestClientRestaurantService_RefreshOne(t *testing.T) {
	f := newRestaurantFixture(t)
	ctx := context.Background()

	f.remote.EXPECT().Send(ctx, f.req.Restaurant(4)).Return(jsonResponse(http.StatusOK, `{"id":4,"name":"Katz's Delicatessen"}`), nil)
	f.repo.EXPECT().SaveRestaurants(ctx, []models.Restaurant{{ID: 4, Name: "Katz's Delicatessen"}}).Return(nil)

	got, err := f.svc.RefreshOne(ctx, 4)
	require.NoError(t, err)
	assert.Equal(t, int64(4), got.ID)
}

// ── favorites ────────────────────────────────────────────────────────────────

func TestClientRestaurantService_ToggleFavorite_Delivered(t *testing.T) {
	f := newRestaurantFixture(t)
	ctx := context.Background()

	f.remote.EXPECT().Send(ctx, f.req.RestaurantFavorite(1, true)).
		Return(jsonResponse(http.StatusOK, `{"id":1,"name":"A","is_favorite":"true"}`), nil)
	f.repo.EXPECT().SaveRestaurants(ctx, []models.Restaurant{{ID: 1, Name: "A", IsFavorite: true}}).Return(nil)

	got, err := f.svc.ToggleFavorite(ctx, 1, true)
	require.NoError(t, err)
	assert.True(t, got.IsFavorite.Bool())
}

func TestClientRestaurantService_ToggleFavorite_Queued(t *testing.T) {
	f := newRestaurantFixture(t)
	ctx := context.Background()

	f.remote.EXPECT().Send(ctx, f.req.RestaurantFavorite(1, true)).Return(nil, errNetwork)
	f.pending.EXPECT().AddPendingRequest(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, request models.PendingRequest) (int64, error) {
			assert.Equal(t, f.req.RestaurantFavorite(1, true), request.Descriptor())
			return 1, nil
		})
	f.pending.EXPECT().CountPendingRequests(gomock.Any()).Return(int64(1), nil)
	f.repo.EXPECT().GetRestaurant(ctx, int64(1)).Return(catalog[0], nil)
	// кэш не меняется до подтверждения сервером

	got, err := f.svc.ToggleFavorite(ctx, 1, true)
	assert.ErrorIs(t, err, ErrRequestQueued)
	assert.Equal(t, catalog[0].Name, got.Name)
	assert.True(t, got.IsFavorite.Bool())
}

func TestClientRestaurantService_ToggleFavorite_QueuedUncached(t *testing.T) {
	f := newRestaurantFixture(t)
	ctx := context.Background()

	f.remote.EXPECT().Send(ctx, gomock.Any()).Return(nil, errNetwork)
	f.pending.EXPECT().AddPendingRequest(gomock.Any(), gomock.Any()).Return(int64(1), nil)
	f.pending.EXPECT().CountPendingRequests(gomock.Any()).Return(int64(1), nil)
	f.repo.EXPECT().GetRestaurant(ctx, int64(7)).Return(models.Restaurant{}, store.ErrRecordNotFound)

	got, err := f.svc.ToggleFavorite(ctx, 7, false)
	assert.ErrorIs(t, err, ErrRequestQueued)
	assert.Equal(t, models.Restaurant{ID: 7}, got)
}

func TestClientRestaurantService_ToggleFavorite_Rejected(t *testing.T) {
	f := newRestaurantFixture(t)
	ctx := context.Background()

	f.remote.EXPECT().Send(ctx, gomock.Any()).
		Return(jsonResponse(http.StatusNotFound, ""), fmt.Errorf("%w: %w", adapter.ErrRemote, adapter.ErrNotFound))

	_, err := f.svc.ToggleFavorite(ctx, 999, true)
	assert.ErrorIs(t, err, ErrRestaurantNotFound)
	assert.NotErrorIs(t, err, ErrRequestQueued)
}

// ── read flow ────────────────────────────────────────────────────────────────

func TestClientRestaurantService_LoadRestaurants_StaleOnError(t *testing.T) {
	f := newRestaurantFixture(t)
	ctx := context.Background()

	f.repo.EXPECT().GetAllRestaurants(ctx).Return(catalog, nil)
	f.remote.EXPECT().Send(ctx, gomock.Any()).Return(nil, errNetwork)

	var states []ReadState
	result := f.svc.LoadRestaurants(ctx, func(s ReadState) { states = append(states, s) })

	assert.Equal(t, []ReadState{ReadCached, ReadRefreshing, ReadStaleOnError}, states)
	assert.Equal(t, catalog, result.Value)
	assert.ErrorIs(t, result.RefreshErr, adapter.ErrNetworkFailure)
}

func TestClientRestaurantService_LoadRestaurants_EmptyCacheIsMissing(t *testing.T) {
	f := newRestaurantFixture(t)
	ctx := context.Background()

	f.repo.EXPECT().GetAllRestaurants(ctx).Return([]models.Restaurant{}, nil)
	f.remote.EXPECT().Send(ctx, gomock.Any()).Return(jsonResponse(http.StatusOK, `[{"id":1}]`), nil)
	f.repo.EXPECT().SaveRestaurants(ctx, gomock.Any()).Return(nil)

	result := f.svc.LoadRestaurants(ctx, nil)
	assert.Equal(t, ReadFresh, result.State)
	assert.Len(t, result.Value, 1)
}

func TestClientRestaurantService_LoadRestaurant_FetchedButNotCached(t *testing.T) {
	f := newRestaurantFixture(t)
	ctx := context.Background()

	f.repo.EXPECT().GetRestaurant(ctx, int64(1)).Return(models.Restaurant{}, store.ErrRecordNotFound)
	f.remote.EXPECT().Send(ctx, gomock.Any()).Return(jsonResponse(http.StatusOK, `{"id":1,"name":"A"}`), nil)
	f.repo.EXPECT().SaveRestaurants(ctx, gomock.Any()).Return(fmt.Errorf("%w: locked", store.ErrStorageUnavailable))

	result := f.svc.LoadRestaurant(ctx, 1, nil)
	assert.Equal(t, ReadFresh, result.State)
	assert.True(t, result.Found)
	assert.Equal(t, "A", result.Value.Name)
}

func TestMapAdapterError(t *testing.T) {
	tests := []struct {
		name string
		resp *adapter.Response
		err  error
		want error
	}{
		{name: "nil", err: nil, want: nil},
		{name: "not found", err: fmt.Errorf("%w: %w", adapter.ErrRemote, adapter.ErrNotFound), want: ErrRestaurantNotFound},
		{
			name: "known validation message",
			resp: jsonResponse(http.StatusBadRequest, `{"error":"`+app.MsgInvalidRating+`"}`),
			err:  errBadRequest,
			want: validators.ErrInvalidRating,
		},
		{name: "unknown bad request", resp: jsonResponse(http.StatusBadRequest, `oops`), err: errBadRequest, want: ErrInvalidDataProvided},
		{name: "network", err: errNetwork, want: adapter.ErrNetworkFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mapAdapterError(tt.resp, tt.err)
			if tt.want == nil {
				assert.NoError(t, got)
				return
			}
			assert.True(t, errors.Is(got, tt.want), "got %v", got)
		})
	}
}
