// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package grpc exposes the standard gRPC health service of the reference
// server. Its serving status follows the database health check.
package grpc

import (
	"context"
	"sync"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/MKhiriev/go-restaurant-reviews/internal/logger"
	"github.com/MKhiriev/go-restaurant-reviews/internal/service"
)

// ServiceName is the health service name reported next to the overall ("")
// status.
const ServiceName = "restaurant_reviews.RestaurantAPI"

const defaultProbeInterval = 10 * time.Second

// Handler is the root gRPC transport handler.
//
// It owns the health server and, once started, re-checks the database every
// probe interval so that health clients see NOT_SERVING while it is down.
type Handler struct {
	services *service.Services
	health   *health.Server
	interval time.Duration

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup

	logger *logger.Logger
}

// NewHandler constructs a [Handler]. Every service starts NOT_SERVING until
// the first probe.
func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")

	h := &Handler{
		services: services,
		health:   health.NewServer(),
		interval: defaultProbeInterval,
		logger:   logger,
	}
	h.setStatus(healthpb.HealthCheckResponse_NOT_SERVING)

	return h
}

// Register attaches the health service to server.
func (h *Handler) Register(server *grpc.Server) {
	healthpb.RegisterHealthServer(server, h.health)
}

// Probe runs the database health check once and publishes the result.
func (h *Handler) Probe(ctx context.Context) healthpb.HealthCheckResponse_ServingStatus {
	status := healthpb.HealthCheckResponse_SERVING
	if err := h.services.AppInfoService.CheckHealth(ctx); err != nil {
		h.logger.Warn().Err(err).Str("func", "*Handler.Probe").Msg("reporting NOT_SERVING")
		status = healthpb.HealthCheckResponse_NOT_SERVING
	}

	h.setStatus(status)
	return status
}

// Start probes immediately and then every interval until ctx is done or Stop
// is called.
func (h *Handler) Start(ctx context.Context) {
	h.Stop()

	h.mu.Lock()
	probeCtx, cancel := context.WithCancel(ctx)
	h.cancel = cancel
	h.wg.Add(1)
	h.mu.Unlock()

	go func() {
		defer h.wg.Done()
		h.Probe(probeCtx)

		t := time.NewTicker(h.interval)
		defer t.Stop()

		for {
			select {
			case <-probeCtx.Done():
				return
			case <-t.C:
				h.Probe(probeCtx)
			}
		}
	}()
}

// Stop ends probing and marks every service NOT_SERVING for the shutdown.
func (h *Handler) Stop() {
	h.mu.Lock()
	cancel := h.cancel
	h.cancel = nil
	h.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	h.wg.Wait()
	h.health.Shutdown()
}

func (h *Handler) setStatus(status healthpb.HealthCheckResponse_ServingStatus) {
	h.health.SetServingStatus("", status)
	h.health.SetServingStatus(ServiceName, status)
}
