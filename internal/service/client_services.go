// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-restaurant-reviews/internal/adapter"
	"github.com/MKhiriev/go-restaurant-reviews/internal/config"
	"github.com/MKhiriev/go-restaurant-reviews/internal/gateway"
	"github.com/MKhiriev/go-restaurant-reviews/internal/logger"
	"github.com/MKhiriev/go-restaurant-reviews/internal/metrics"
	"github.com/MKhiriev/go-restaurant-reviews/internal/store"
	"github.com/MKhiriev/go-restaurant-reviews/internal/workers"
)

type ClientServices struct {
	RestaurantService     ClientRestaurantService
	ReviewService         ClientReviewService
	PendingRequestService ClientPendingRequestService
	ConnectivityJob       ClientConnectivityJob
	RefreshJob            ClientRefreshJob

	logger *logger.Logger
}

// NewClientServices wires the client services on one set of local
// repositories. Nothing is sent until a method is called or the jobs are
// started.
func NewClientServices(
	storages *store.ClientStorages,
	remote adapter.RemoteAdapter,
	requests *gateway.RequestBuilder,
	cfg config.Workers,
	m *metrics.ClientMetrics,
	logger *logger.Logger,
) *ClientServices {
	pendingSvc := newClientPendingRequestService(storages.PendingRequests, remote, m, logger)
	connectivity := NewConnectivityJob(remote, pendingSvc, cfg.ConnectivityInterval, m, logger)
	pendingSvc.connectivity = connectivity

	restaurantSvc := NewClientRestaurantService(storages.Restaurants, remote, requests, pendingSvc, m, logger)

	return &ClientServices{
		RestaurantService:     restaurantSvc,
		ReviewService:         NewClientReviewService(storages.Reviews, remote, requests, pendingSvc, m, logger),
		PendingRequestService: pendingSvc,
		ConnectivityJob:       connectivity,
		RefreshJob:            NewRefreshJob(restaurantSvc, cfg.RefreshInterval, logger),
		logger:                logger,
	}
}

// ReplayOnStart drains the pending-write queue once, before the process
// sends any write of its own, so that older writes reach the server first.
// Failures are logged and leave the records queued.
func (s *ClientServices) ReplayOnStart(ctx context.Context) ReplayReport {
	log := s.logger
	if log == nil {
		log = logger.FromContext(ctx)
	}

	report, err := s.PendingRequestService.ReplayPending(ctx)
	if err != nil {
		log.Err(err).Str("func", "*ClientServices.ReplayOnStart").Msg("error replaying pending requests at start")
		return ReplayReport{}
	}
	if report.Remaining() > 0 {
		log.Warn().
			Str("func", "*ClientServices.ReplayOnStart").
			Int("remaining", report.Remaining()).
			Msg("pending requests still queued after start replay")
	}
	return report
}

// Workers returns the background jobs as one aggregate.
func (s *ClientServices) Workers() *workers.Workers {
	return workers.NewWorkers(s.ConnectivityJob, s.RefreshJob)
}
