// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "context"

// Server defines the lifecycle of the reference server.
type Server interface {
	// RunServer binds every enabled transport and serves until SIGINT,
	// SIGTERM or SIGQUIT arrives or a transport fails.
	RunServer() error

	// Run is RunServer driven by ctx instead of process signals.
	Run(ctx context.Context) error

	// Shutdown gracefully stops every transport.
	Shutdown()
}
