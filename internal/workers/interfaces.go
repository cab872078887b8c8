// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface and a Workers aggregate that allows
// starting and stopping multiple workers in a unified way.
package workers

import "context"

// Worker is the interface that must be implemented by any background worker.
//
// Start must not block: implementations spawn their own goroutines, bound to
// ctx. Stop cancels them and waits until they exit. Stop on a worker that
// was never started is a no-op.
type Worker interface {
	Start(ctx context.Context)
	Stop()
}
