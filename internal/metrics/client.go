// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package metrics holds the Prometheus collectors of the client and the
// reference server. Every method is safe on a nil receiver, which disables
// recording.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "restaurant_reviews"

// Refresh outcomes.
const (
	OutcomeFresh  = "fresh"
	OutcomeFailed = "failed"
)

// Replay outcomes of a single pending request.
const (
	ReplayDelivered   = "delivered"
	ReplayRejected    = "rejected"
	ReplayFailed      = "failed"
	ReplayUnreachable = "unreachable"
	ReplayUndeleted   = "undeleted"
)

// ClientMetrics tracks cache refreshes and the pending-write queue.
type ClientMetrics struct {
	refreshes      *prometheus.CounterVec
	cacheFallbacks *prometheus.CounterVec
	queued         prometheus.Counter
	replayed       *prometheus.CounterVec
	queueSize      prometheus.Gauge
	online         prometheus.Gauge
}

// NewClientMetrics registers the client collectors in reg.
func NewClientMetrics(reg prometheus.Registerer) *ClientMetrics {
	factory := promauto.With(reg)

	return &ClientMetrics{
		refreshes: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "client",
				Name:      "refreshes_total",
				Help:      "Remote refreshes by resource and outcome.",
			},
			[]string{"resource", "outcome"},
		),
		cacheFallbacks: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "client",
				Name:      "cache_fallbacks_total",
				Help:      "Reads served from the local cache after a failed refresh.",
			},
			[]string{"resource"},
		),
		queued: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "client",
				Name:      "pending_requests_queued_total",
				Help:      "Writes persisted for later replay.",
			},
		),
		replayed: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "client",
				Name:      "pending_requests_replayed_total",
				Help:      "Replay attempts by outcome.",
			},
			[]string{"outcome"},
		),
		queueSize: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: "client",
				Name:      "pending_requests",
				Help:      "Writes currently waiting for replay.",
			},
		),
		online: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: "client",
				Name:      "remote_online",
				Help:      "1 when the remote API was reachable on the last check.",
			},
		),
	}
}

func (m *ClientMetrics) Refresh(resource, outcome string) {
	if m == nil {
		return
	}
	m.refreshes.WithLabelValues(resource, outcome).Inc()
}

func (m *ClientMetrics) CacheFallback(resource string) {
	if m == nil {
		return
	}
	m.cacheFallbacks.WithLabelValues(resource).Inc()
}

func (m *ClientMetrics) Queued() {
	if m == nil {
		return
	}
	m.queued.Inc()
}

func (m *ClientMetrics) Replayed(outcome string) {
	if m == nil {
		return
	}
	m.replayed.WithLabelValues(outcome).Inc()
}

func (m *ClientMetrics) SetQueueSize(size int64) {
	if m == nil {
		return
	}
	m.queueSize.Set(float64(size))
}

func (m *ClientMetrics) SetOnline(online bool) {
	if m == nil {
		return
	}
	if online {
		m.online.Set(1)
		return
	}
	m.online.Set(0)
}

// Handler exposes the collectors of gatherer in the Prometheus text format.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
