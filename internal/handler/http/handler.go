// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"time"

	"github.com/MKhiriev/go-restaurant-reviews/internal/logger"
	"github.com/MKhiriev/go-restaurant-reviews/internal/metrics"
	"github.com/MKhiriev/go-restaurant-reviews/internal/service"
	"github.com/MKhiriev/go-restaurant-reviews/internal/utils"
)

type Handler struct {
	services *service.Services
	metrics  *metrics.ServerMetrics
	traceIDs *utils.TraceIDGenerator

	// requestTimeout bounds every request when positive.
	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, requestTimeout time.Duration, m *metrics.ServerMetrics, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		metrics:        m,
		traceIDs:       utils.NewTraceIDGenerator(),
		requestTimeout: requestTimeout,
		logger:         logger,
	}
}
