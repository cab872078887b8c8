// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter sends [models.RequestDescriptor] values to the remote
// restaurant API and classifies the outcome.
//
// Transport failures wrap [ErrNetworkFailure]. Any non-2xx answer wraps
// [ErrRemote] plus a status refinement ([ErrBadRequest], [ErrNotFound],
// [ErrServerUnavailable]) so callers can use [errors.Is] without looking at
// status codes. [Delivered] tells whether the server processed a request.
package adapter

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-restaurant-reviews/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/remote_adapter_mock.go -package=mock

// RemoteAdapter performs requests against the remote API.
type RemoteAdapter interface {
	// Send performs the request described by descriptor. Relative URLs are
	// resolved against the configured base URL. On a non-2xx answer both the
	// response and an [ErrRemote] error are returned.
	Send(ctx context.Context, descriptor models.RequestDescriptor) (*Response, error)

	// Ping reports whether the remote host answers HTTP at all. Any status
	// code counts as reachable.
	Ping(ctx context.Context) error
}

// Response is the transport-independent outcome of a delivered request.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}
