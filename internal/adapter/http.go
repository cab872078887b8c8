// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-restaurant-reviews/internal/config"
	"github.com/MKhiriev/go-restaurant-reviews/internal/gateway"
	"github.com/MKhiriev/go-restaurant-reviews/internal/logger"
	"github.com/MKhiriev/go-restaurant-reviews/internal/utils"
	"github.com/MKhiriev/go-restaurant-reviews/models"
)

// TraceIDHeader carries the per-request trace id.
const TraceIDHeader = "X-Trace-ID"

type httpRemoteAdapter struct {
	client  *utils.HTTPClient
	traceID *utils.TraceIDGenerator

	logger *logger.Logger
}

// NewHTTPRemoteAdapter constructs the resty implementation of
// [RemoteAdapter] for the base URL and timeout in cfg.
func NewHTTPRemoteAdapter(cfg config.Adapter, logger *logger.Logger) (RemoteAdapter, error) {
	baseURL, err := gateway.NormalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpRemoteAdapter{
		client:  utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		traceID: utils.NewTraceIDGenerator(),
		logger:  logger.WithComponent("remote-adapter"),
	}, nil
}

func (h *httpRemoteAdapter) Send(ctx context.Context, descriptor models.RequestDescriptor) (*Response, error) {
	method := descriptor.MethodOrDefault()
	traceID := h.traceIDFor(ctx)

	req := h.client.R().
		SetContext(ctx).
		SetHeader(TraceIDHeader, traceID)
	if descriptor.Options.Body != nil {
		req.SetHeader("Content-Type", "application/json").
			SetBody(*descriptor.Options.Body)
	}

	resp, err := req.Execute(method, descriptor.URL)
	if err != nil {
		h.logger.Debug().Err(err).
			Str("func", "httpRemoteAdapter.Send").
			Str("trace_id", traceID).
			Str("request", descriptor.String()).
			Msg("request not delivered")
		return nil, fmt.Errorf("%w: %s: %w", ErrNetworkFailure, descriptor.String(), err)
	}

	out := &Response{
		StatusCode: resp.StatusCode(),
		Header:     resp.Header(),
		Body:       resp.Body(),
	}

	h.logger.Debug().
		Str("func", "httpRemoteAdapter.Send").
		Str("trace_id", traceID).
		Str("request", descriptor.String()).
		Int("status", out.StatusCode).
		Dur("duration", resp.Time()).
		Msg("request delivered")

	if err = mapHTTPError(resp); err != nil {
		return out, err
	}

	return out, nil
}

func (h *httpRemoteAdapter) Ping(ctx context.Context) error {
	_, err := h.client.R().
		SetContext(ctx).
		SetHeader(TraceIDHeader, h.traceIDFor(ctx)).
		Get("/")
	if err != nil {
		return fmt.Errorf("%w: ping: %w", ErrNetworkFailure, err)
	}

	return nil
}

func (h *httpRemoteAdapter) traceIDFor(ctx context.Context) string {
	if traceID, ok := utils.GetTraceIDFromContext(ctx); ok {
		return traceID
	}
	return h.traceID.Generate()
}
