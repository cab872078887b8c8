// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-restaurant-reviews/internal/logger"
	"github.com/MKhiriev/go-restaurant-reviews/models"
)

type localPendingRequestRepository struct {
	store  LocalStore
	logger *logger.Logger
}

func NewLocalPendingRequestRepository(store LocalStore, logger *logger.Logger) LocalPendingRequestRepository {
	return &localPendingRequestRepository{store: store, logger: logger}
}

func (r *localPendingRequestRepository) AddPendingRequest(ctx context.Context, request models.PendingRequest) (int64, error) {
	payload, err := json.Marshal(request)
	if err != nil {
		return 0, fmt.Errorf("encode pending request: %w", err)
	}

	return r.store.Insert(ctx, PendingRequestsCollection, payload)
}

func (r *localPendingRequestRepository) GetAllPendingRequests(ctx context.Context) ([]models.PendingRequest, error) {
	records, err := r.store.GetAll(ctx, PendingRequestsCollection)
	if err != nil {
		return nil, err
	}

	requests := make([]models.PendingRequest, 0, len(records))
	for _, rec := range records {
		request, err := decodeRecord[models.PendingRequest](PendingRequestsCollection, rec)
		if err != nil {
			return nil, err
		}
		request.ID = rec.Key
		requests = append(requests, request)
	}

	return requests, nil
}

func (r *localPendingRequestRepository) DeletePendingRequest(ctx context.Context, id int64) error {
	return r.store.Delete(ctx, PendingRequestsCollection, id)
}

func (r *localPendingRequestRepository) CountPendingRequests(ctx context.Context) (int64, error) {
	return r.store.Count(ctx, PendingRequestsCollection)
}
