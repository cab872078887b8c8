// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-restaurant-reviews/internal/logger"
)

// ClientStorages aggregates the local repositories sharing one handle.
type ClientStorages struct {
	Restaurants     LocalRestaurantRepository
	Reviews         LocalReviewRepository
	PendingRequests LocalPendingRequestRepository

	opener *Opener
}

// NewClientStorages opens the local database through opener and builds the
// repositories on top of it.
func NewClientStorages(ctx context.Context, opener *Opener, logger *logger.Logger) (*ClientStorages, error) {
	db, err := opener.Open(ctx)
	if err != nil {
		logger.Err(err).Str("func", "NewClientStorages").Msg("error opening local store")
		return nil, err
	}

	localStore := NewLocalStore(db, logger)

	return &ClientStorages{
		Restaurants:     NewLocalRestaurantRepository(localStore, logger),
		Reviews:         NewLocalReviewRepository(localStore, logger),
		PendingRequests: NewLocalPendingRequestRepository(localStore, logger),
		opener:          opener,
	}, nil
}

// Close releases the underlying database handle.
func (s *ClientStorages) Close() error {
	return s.opener.Close()
}
