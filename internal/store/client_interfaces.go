// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-restaurant-reviews/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// LocalStore is a keyed record store with a fixed set of collections.
// Every driver failure is reported as [ErrStorageUnavailable].
type LocalStore interface {
	// Get returns [ErrRecordNotFound] when key is absent.
	Get(ctx context.Context, c Collection, key int64) (Record, error)
	// GetAll returns every record of c in ascending key order.
	GetAll(ctx context.Context, c Collection) ([]Record, error)
	// Put inserts or replaces one record.
	Put(ctx context.Context, c Collection, rec Record) error
	// PutAll writes records in a single transaction: all or nothing.
	PutAll(ctx context.Context, c Collection, records []Record) error
	// Insert stores payload under a new, store-assigned, increasing key.
	Insert(ctx context.Context, c Collection, payload []byte) (int64, error)
	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, c Collection, key int64) error
	Count(ctx context.Context, c Collection) (int64, error)
}

// LocalRestaurantRepository caches restaurants keyed by id.
type LocalRestaurantRepository interface {
	GetRestaurant(ctx context.Context, id int64) (models.Restaurant, error)
	GetAllRestaurants(ctx context.Context) ([]models.Restaurant, error)
	// SaveRestaurants upserts every restaurant in one transaction.
	SaveRestaurants(ctx context.Context, restaurants []models.Restaurant) error
	DeleteRestaurant(ctx context.Context, id int64) error
}

// LocalReviewRepository caches review collections keyed by restaurant id.
type LocalReviewRepository interface {
	GetReviews(ctx context.Context, restaurantID int64) (models.ReviewCollection, error)
	// SaveReviews replaces the whole collection of the restaurant.
	SaveReviews(ctx context.Context, collection models.ReviewCollection) error
	DeleteReviews(ctx context.Context, restaurantID int64) error
}

// LocalPendingRequestRepository persists undelivered writes.
type LocalPendingRequestRepository interface {
	// AddPendingRequest stores request and returns its assigned id.
	AddPendingRequest(ctx context.Context, request models.PendingRequest) (int64, error)
	// GetAllPendingRequests returns queued requests in ascending id order.
	GetAllPendingRequests(ctx context.Context) ([]models.PendingRequest, error)
	DeletePendingRequest(ctx context.Context, id int64) error
	CountPendingRequests(ctx context.Context) (int64, error)
}
