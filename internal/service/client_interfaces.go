// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-restaurant-reviews/internal/adapter"
	"github.com/MKhiriev/go-restaurant-reviews/internal/workers"
	"github.com/MKhiriev/go-restaurant-reviews/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=servicemock/client_service_mock.go -package=servicemock

// ClientRestaurantService serves cached restaurants and refreshes them from
// the remote API. Reads never touch the network; refreshes are explicit.
type ClientRestaurantService interface {
	// GetAll returns every cached restaurant in ascending id order. The result
	// is empty, not nil, when the cache was never populated.
	GetAll(ctx context.Context) ([]models.Restaurant, error)

	// Get returns the cached restaurant with id. found is false when it is
	// not cached.
	Get(ctx context.Context, id int64) (restaurant models.Restaurant, found bool, err error)

	// GetFiltered returns the cached restaurants matching filter exactly.
	// [models.FilterAll] disables a criterion.
	GetFiltered(ctx context.Context, filter models.RestaurantFilter) ([]models.Restaurant, error)

	// GetNeighborhoods returns the distinct neighborhoods of the cache in
	// first-occurrence order.
	GetNeighborhoods(ctx context.Context) ([]string, error)

	// GetCuisines returns the distinct cuisine types of the cache in
	// first-occurrence order.
	GetCuisines(ctx context.Context) ([]string, error)

	// RefreshAll fetches every restaurant and overwrites the cached records
	// in one transaction. The cache is untouched when the fetch or decoding
	// fails. When only the cache write fails the fetched list is returned
	// together with the store error.
	RefreshAll(ctx context.Context) ([]models.Restaurant, error)

	// RefreshOne is RefreshAll scoped to one restaurant. An id unknown to the
	// remote API yields [ErrRestaurantNotFound].
	RefreshOne(ctx context.Context, id int64) (models.Restaurant, error)

	// ToggleFavorite sends the favorite flag through the pending-write queue.
	// On delivery the restaurant returned by the server is cached. When the
	// write was queued the cached restaurant with the requested flag is
	// returned together with an error wrapping [ErrRequestQueued].
	ToggleFavorite(ctx context.Context, id int64, favorite bool) (models.Restaurant, error)

	// LoadRestaurants serves the cache, then refreshes.
	LoadRestaurants(ctx context.Context, observer ReadObserver) ReadResult[[]models.Restaurant]

	// LoadRestaurant serves one cached restaurant, then refreshes it.
	LoadRestaurant(ctx context.Context, id int64, observer ReadObserver) ReadResult[models.Restaurant]
}

// ClientReviewService mirrors [ClientRestaurantService] for the review
// collection of a restaurant.
type ClientReviewService interface {
	// GetReviews returns the cached reviews of restaurantID. found is false
	// when they were never fetched.
	GetReviews(ctx context.Context, restaurantID int64) (reviews []models.Review, found bool, err error)

	// RefreshReviews fetches the reviews of restaurantID and replaces the
	// cached collection.
	RefreshReviews(ctx context.Context, restaurantID int64) ([]models.Review, error)

	// PostReview validates review and sends it through the pending-write
	// queue. When the write was queued a local copy stamped with the
	// submission time is returned together with an error wrapping
	// [ErrRequestQueued].
	PostReview(ctx context.Context, review models.NewReview) (models.Review, error)

	LoadReviews(ctx context.Context, restaurantID int64, observer ReadObserver) ReadResult[[]models.Review]
}

// ClientPendingRequestService is the durable outbox of writes.
type ClientPendingRequestService interface {
	// RegisterRequest sends descriptor now. When the server could not be
	// reached, or answered 5xx, the descriptor is persisted and the returned
	// error wraps both [ErrRequestQueued] and the send error. Other errors
	// (4xx) are returned as is.
	RegisterRequest(ctx context.Context, descriptor models.RequestDescriptor) (*adapter.Response, error)

	// ReplayPending resends every queued write in ascending id order and
	// deletes the delivered ones. Failures are logged and stay queued.
	// Concurrent calls share one replay.
	ReplayPending(ctx context.Context) (ReplayReport, error)

	// ListPending returns the queued writes in ascending id order.
	ListPending(ctx context.Context) ([]models.PendingRequest, error)
}

// ClientConnectivityJob tracks whether the remote API is reachable and
// replays the queue at start and on every offline to online transition.
type ClientConnectivityJob interface {
	workers.Worker

	// MarkOnline records that the remote API answered. Coming from offline
	// it replays the queue before returning.
	MarkOnline(ctx context.Context)

	// MarkOffline records that a request could not reach the remote API.
	MarkOffline()

	Online() bool

	// LastReplay returns the report of the most recent completed replay.
	// ok is false until a replay has finished without error.
	LastReplay() (report ReplayReport, ok bool)
}

// ClientRefreshJob refreshes all restaurants periodically.
type ClientRefreshJob interface {
	workers.Worker
}
