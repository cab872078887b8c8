// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import "context"

type Workers struct {
	workers []Worker
}

// NewWorkers aggregates workers. Nil entries are skipped.
func NewWorkers(workers ...Worker) *Workers {
	ws := &Workers{workers: make([]Worker, 0, len(workers))}
	for _, w := range workers {
		if w != nil {
			ws.workers = append(ws.workers, w)
		}
	}
	return ws
}

// Start starts every worker in registration order.
func (w *Workers) Start(ctx context.Context) {
	for _, worker := range w.workers {
		worker.Start(ctx)
	}
}

// Stop stops every worker in reverse registration order.
func (w *Workers) Stop() {
	for i := len(w.workers) - 1; i >= 0; i-- {
		w.workers[i].Stop()
	}
}
