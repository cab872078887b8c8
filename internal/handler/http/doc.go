// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the HTTP transport of the reference restaurant
// API.
//
// It wires the routes consumed by the offline-first client (restaurants,
// favorites and reviews) together with request tracing, access logging,
// request metrics and response compression. Handlers decode parameters and
// delegate to the service layer; service errors are translated into status
// codes and the shared app.Msg* messages by writeServiceError.
package http
