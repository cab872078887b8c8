// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"

	"github.com/MKhiriev/go-restaurant-reviews/internal/adapter"
	"github.com/MKhiriev/go-restaurant-reviews/internal/logger"
	"github.com/MKhiriev/go-restaurant-reviews/internal/metrics"
	"github.com/MKhiriev/go-restaurant-reviews/internal/store"
	"github.com/MKhiriev/go-restaurant-reviews/models"
)

const replayKey = "replay"

// ReplayReport summarizes one replay of the pending-write queue.
type ReplayReport struct {
	Total int `json:"total"`
	// Delivered were answered 2xx and deleted.
	Delivered int `json:"delivered"`
	// Rejected were answered 4xx and deleted: resending cannot succeed.
	Rejected int `json:"rejected"`
	// Failed were answered 5xx and stay queued.
	Failed int `json:"failed"`
	// Unreachable got no answer and stay queued.
	Unreachable int `json:"unreachable"`
	// Undeleted were answered by the server but could not be removed from
	// the queue. They stay queued and will be sent again.
	Undeleted int `json:"undeleted"`
	// States holds the state of every replayed record after the attempt.
	States map[int64]models.RequestState `json:"states"`
}

// Remaining is the number of records left queued by the replay.
func (r ReplayReport) Remaining() int {
	return r.Failed + r.Unreachable + r.Undeleted
}

// offlineMarker is notified when a send could not reach the remote API.
type offlineMarker interface {
	MarkOffline()
}

type clientPendingRequestService struct {
	repository store.LocalPendingRequestRepository
	adapter    adapter.RemoteAdapter
	metrics    *metrics.ClientMetrics

	// connectivity is optional.
	connectivity offlineMarker

	group singleflight.Group
	now   func() time.Time

	logger *logger.Logger
}

func NewClientPendingRequestService(
	repository store.LocalPendingRequestRepository,
	remote adapter.RemoteAdapter,
	m *metrics.ClientMetrics,
	logger *logger.Logger,
) ClientPendingRequestService {
	return newClientPendingRequestService(repository, remote, m, logger)
}

func newClientPendingRequestService(
	repository store.LocalPendingRequestRepository,
	remote adapter.RemoteAdapter,
	m *metrics.ClientMetrics,
	logger *logger.Logger,
) *clientPendingRequestService {
	return &clientPendingRequestService{
		repository: repository,
		adapter:    remote,
		metrics:    m,
		now:        time.Now,
		logger:     logger.WithComponent("pending-requests"),
	}
}

func (s *clientPendingRequestService) RegisterRequest(ctx context.Context, descriptor models.RequestDescriptor) (*adapter.Response, error) {
	resp, err := s.adapter.Send(ctx, descriptor)
	if adapter.Delivered(err) {
		return resp, err
	}

	if errors.Is(err, adapter.ErrNetworkFailure) && s.connectivity != nil {
		s.connectivity.MarkOffline()
	}

	// the write must be persisted even when the caller gave up
	id, queueErr := s.enqueue(context.WithoutCancel(ctx), descriptor)
	if queueErr != nil {
		s.logger.Err(queueErr).
			Str("func", "*clientPendingRequestService.RegisterRequest").
			Str("request", descriptor.String()).
			Msg("request failed and could not be queued")
		return resp, fmt.Errorf("%w: %w", err, queueErr)
	}

	s.logger.Warn().Err(err).
		Str("func", "*clientPendingRequestService.RegisterRequest").
		Str("request", descriptor.String()).
		Int64("pending_id", id).
		Stringer("state", models.RequestStateQueued).
		Msg("request queued for replay")

	return resp, fmt.Errorf("%w (pending request %d): %w", ErrRequestQueued, id, err)
}

func (s *clientPendingRequestService) enqueue(ctx context.Context, descriptor models.RequestDescriptor) (int64, error) {
	id, err := s.repository.AddPendingRequest(ctx, models.PendingRequest{
		URL:       descriptor.URL,
		Options:   descriptor.Options,
		CreatedAt: s.now().UTC(),
	})
	if err != nil {
		return 0, err
	}

	s.metrics.Queued()
	s.refreshQueueSize(ctx)

	return id, nil
}

func (s *clientPendingRequestService) ReplayPending(ctx context.Context) (ReplayReport, error) {
	// the shared replay must not depend on whichever caller started it
	replayCtx := context.WithoutCancel(ctx)
	ch := s.group.DoChan(replayKey, func() (any, error) {
		return s.replay(replayCtx)
	})

	select {
	case <-ctx.Done():
		return ReplayReport{}, ctx.Err()
	case res := <-ch:
		if res.Shared {
			s.logger.Debug().Str("func", "*clientPendingRequestService.ReplayPending").Msg("joined in-flight replay")
		}
		if res.Err != nil {
			return ReplayReport{}, res.Err
		}
		return res.Val.(ReplayReport), nil
	}
}

func (s *clientPendingRequestService) replay(ctx context.Context) (ReplayReport, error) {
	pending, err := s.repository.GetAllPendingRequests(ctx)
	if err != nil {
		s.logger.Err(err).Str("func", "*clientPendingRequestService.replay").Msg("error loading pending requests")
		return ReplayReport{}, err
	}

	report := ReplayReport{
		Total:  len(pending),
		States: make(map[int64]models.RequestState, len(pending)),
	}

	for _, request := range pending {
		state := s.replayOne(ctx, request, &report)
		report.States[request.ID] = state
	}

	s.refreshQueueSize(ctx)

	if report.Total > 0 {
		s.logger.Info().
			Str("func", "*clientPendingRequestService.replay").
			Int("total", report.Total).
			Int("delivered", report.Delivered).
			Int("rejected", report.Rejected).
			Int("failed", report.Failed).
			Int("unreachable", report.Unreachable).
			Int("undeleted", report.Undeleted).
			Msg("pending requests replayed")
	}

	return report, nil
}

// replayOne resends one record. Its outcome never affects other records.
func (s *clientPendingRequestService) replayOne(ctx context.Context, request models.PendingRequest, report *ReplayReport) models.RequestState {
	log := s.logger.With().
		Str("func", "*clientPendingRequestService.replayOne").
		Int64("pending_id", request.ID).
		Str("request", request.Descriptor().String()).
		Logger()

	_, err := s.adapter.Send(ctx, request.Descriptor())
	switch {
	case err == nil:
		if !s.dequeue(ctx, request.ID, log, report) {
			return models.RequestStateQueued
		}
		report.Delivered++
		s.metrics.Replayed(metrics.ReplayDelivered)
		return models.RequestStateDelivered
	case adapter.Delivered(err):
		log.Error().Err(err).Msg("pending request rejected by the server, dropping it")
		if !s.dequeue(ctx, request.ID, log, report) {
			return models.RequestStateQueued
		}
		report.Rejected++
		s.metrics.Replayed(metrics.ReplayRejected)
		return models.RequestStateDelivered
	case errors.Is(err, adapter.ErrNetworkFailure):
		log.Debug().Err(err).Msg("pending request still unreachable")
		report.Unreachable++
		s.metrics.Replayed(metrics.ReplayUnreachable)
		return models.RequestStateQueued
	default:
		log.Warn().Err(err).Msg("pending request failed, keeping it queued")
		report.Failed++
		s.metrics.Replayed(metrics.ReplayFailed)
		return models.RequestStateQueued
	}
}

// dequeue deletes a record the server has answered. On failure the record
// stays queued, is counted as Undeleted and will be sent again.
func (s *clientPendingRequestService) dequeue(ctx context.Context, id int64, log zerolog.Logger, report *ReplayReport) bool {
	if err := s.repository.DeletePendingRequest(context.WithoutCancel(ctx), id); err != nil {
		log.Err(err).Msg("answered pending request could not be deleted, it will be sent again")
		report.Undeleted++
		s.metrics.Replayed(metrics.ReplayUndeleted)
		return false
	}
	return true
}

func (s *clientPendingRequestService) ListPending(ctx context.Context) ([]models.PendingRequest, error) {
	return s.repository.GetAllPendingRequests(ctx)
}

func (s *clientPendingRequestService) refreshQueueSize(ctx context.Context) {
	count, err := s.repository.CountPendingRequests(ctx)
	if err != nil {
		s.logger.Debug().Err(err).Str("func", "*clientPendingRequestService.refreshQueueSize").Msg("error counting pending requests")
		return
	}
	s.metrics.SetQueueSize(count)
}
