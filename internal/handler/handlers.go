// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import (
	nethttp "net/http"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/MKhiriev/go-restaurant-reviews/internal/config"
	"github.com/MKhiriev/go-restaurant-reviews/internal/handler/grpc"
	"github.com/MKhiriev/go-restaurant-reviews/internal/handler/http"
	"github.com/MKhiriev/go-restaurant-reviews/internal/logger"
	"github.com/MKhiriev/go-restaurant-reviews/internal/metrics"
	"github.com/MKhiriev/go-restaurant-reviews/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
	GRPC *grpc.Handler

	// Metrics serves the Prometheus registry the HTTP handler records into.
	Metrics nethttp.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	registry := prometheus.NewRegistry()
	handlers := &Handlers{
		Metrics: metrics.Handler(registry),
	}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, cfg.RequestTimeout, metrics.NewServerMetrics(registry), logger)
	}
	if cfg.GRPCAddress != "" {
		handlers.GRPC = grpc.NewHandler(services, logger)
	}

	if handlers.HTTP == nil && handlers.GRPC == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
