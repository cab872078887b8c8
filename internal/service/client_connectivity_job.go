// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/go-restaurant-reviews/internal/adapter"
	"github.com/MKhiriev/go-restaurant-reviews/internal/logger"
	"github.com/MKhiriev/go-restaurant-reviews/internal/metrics"
)

const defaultConnectivityInterval = 30 * time.Second

type connectivityJob struct {
	adapter  adapter.RemoteAdapter
	pending  ClientPendingRequestService
	interval time.Duration
	metrics  *metrics.ClientMetrics

	online     atomic.Bool
	lastReplay atomic.Pointer[ReplayReport]

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup

	logger *logger.Logger
}

// NewConnectivityJob creates a job that probes the remote API every interval.
// If interval is zero or negative it defaults to 30 seconds. The job is idle
// and offline until Start is called.
func NewConnectivityJob(
	remote adapter.RemoteAdapter,
	pending ClientPendingRequestService,
	interval time.Duration,
	m *metrics.ClientMetrics,
	logger *logger.Logger,
) ClientConnectivityJob {
	if interval <= 0 {
		interval = defaultConnectivityInterval
	}

	return &connectivityJob{
		adapter:  remote,
		pending:  pending,
		interval: interval,
		metrics:  m,
		logger:   logger.WithComponent("connectivity"),
	}
}

// Start stops any previously running job, then launches a goroutine that
// replays the queue once and probes the remote API every interval. The
// goroutine exits when ctx is cancelled or Stop is called.
func (j *connectivityJob) Start(ctx context.Context) {
	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()

		j.replayAtStart(jobCtx)

		t := time.NewTicker(j.interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.probe(jobCtx)
			}
		}
	}()
}

// Stop cancels the background goroutine and blocks until it has exited.
// Safe to call when the job is not running.
func (j *connectivityJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}

func (j *connectivityJob) MarkOnline(ctx context.Context) {
	if j.online.Swap(true) {
		return
	}

	j.metrics.SetOnline(true)
	j.logger.Info().Str("func", "*connectivityJob.MarkOnline").Msg("remote API is reachable, replaying pending requests")
	j.replay(ctx)
}

func (j *connectivityJob) MarkOffline() {
	if !j.online.Swap(false) {
		return
	}

	j.metrics.SetOnline(false)
	j.logger.Warn().Str("func", "*connectivityJob.MarkOffline").Msg("remote API is unreachable")
}

func (j *connectivityJob) Online() bool {
	return j.online.Load()
}

func (j *connectivityJob) LastReplay() (ReplayReport, bool) {
	report := j.lastReplay.Load()
	if report == nil {
		return ReplayReport{}, false
	}
	return *report, true
}

func (j *connectivityJob) probe(ctx context.Context) {
	if err := j.adapter.Ping(ctx); err != nil {
		if ctx.Err() == nil {
			j.MarkOffline()
		}
		return
	}

	j.MarkOnline(ctx)
}

// replayAtStart replays the queue left by previous sessions. The job starts
// online unless some request could not reach the remote API.
func (j *connectivityJob) replayAtStart(ctx context.Context) {
	report, err := j.pending.ReplayPending(ctx)
	if err != nil {
		j.logger.Err(err).Str("func", "*connectivityJob.replayAtStart").Msg("error replaying pending requests")
		return
	}
	j.lastReplay.Store(&report)

	if report.Unreachable == 0 {
		j.online.Store(true)
		j.metrics.SetOnline(true)
	}
}

func (j *connectivityJob) replay(ctx context.Context) {
	report, err := j.pending.ReplayPending(ctx)
	if err != nil {
		j.logger.Err(err).Str("func", "*connectivityJob.replay").Msg("error replaying pending requests")
		return
	}
	j.lastReplay.Store(&report)

	if report.Unreachable > 0 {
		j.MarkOffline()
	}
}
