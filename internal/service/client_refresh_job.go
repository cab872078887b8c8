// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-restaurant-reviews/internal/logger"
)

type refreshJob struct {
	restaurants ClientRestaurantService
	interval    time.Duration

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup

	logger *logger.Logger
}

// NewRefreshJob creates a job that calls RefreshAll every interval. A zero or
// negative interval disables it: Start does nothing.
func NewRefreshJob(restaurants ClientRestaurantService, interval time.Duration, logger *logger.Logger) ClientRefreshJob {
	return &refreshJob{
		restaurants: restaurants,
		interval:    interval,
		logger:      logger.WithComponent("refresh"),
	}
}

func (j *refreshJob) Start(ctx context.Context) {
	if j.interval <= 0 {
		return
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(j.interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				restaurants, err := j.restaurants.RefreshAll(jobCtx)
				if err != nil {
					j.logger.Warn().Err(err).Str("func", "*refreshJob.Start").Msg("periodic refresh failed")
					continue
				}
				j.logger.Debug().Str("func", "*refreshJob.Start").Int("count", len(restaurants)).Msg("restaurants refreshed")
			}
		}
	}()
}

func (j *refreshJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
