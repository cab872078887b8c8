// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the reference API server.
//
// It binds the HTTP API, the gRPC health service and the Prometheus
// endpoint, serves them until a stop signal arrives or one of them fails,
// and then shuts all of them down gracefully.
package server
