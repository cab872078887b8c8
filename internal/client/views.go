// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"time"

	"github.com/MKhiriev/go-restaurant-reviews/internal/service"
	"github.com/MKhiriev/go-restaurant-reviews/models"
)

// readView is printed by the cache-then-refresh reads.
type readView[T any] struct {
	// State is the terminal read state, "cached" for -cached reads.
	State        string `json:"state"`
	Data         T      `json:"data"`
	RefreshError string `json:"refresh_error,omitempty"`
}

// writeView is printed by writes sent through the pending-write queue.
type writeView[T any] struct {
	State models.RequestState `json:"state"`
	Data  T                   `json:"data"`
	Error string              `json:"error,omitempty"`
}

// restaurantView adds the details page link and the responsive photo
// candidates to a restaurant.
type restaurantView struct {
	models.Restaurant
	URL    string               `json:"url"`
	Photos []models.PhotoSource `json:"photos"`
}

func newRestaurantView(r models.Restaurant) restaurantView {
	return restaurantView{Restaurant: r, URL: r.URL(), Photos: r.PhotoSources()}
}

func newRestaurantViews(list []models.Restaurant) []restaurantView {
	views := make([]restaurantView, 0, len(list))
	for _, r := range list {
		views = append(views, newRestaurantView(r))
	}
	return views
}

type pendingView struct {
	ID        int64     `json:"id"`
	Method    string    `json:"method"`
	URL       string    `json:"url"`
	Body      *string   `json:"body,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func newPendingViews(requests []models.PendingRequest) []pendingView {
	views := make([]pendingView, 0, len(requests))
	for _, r := range requests {
		views = append(views, pendingView{
			ID:        r.ID,
			Method:    r.Descriptor().MethodOrDefault(),
			URL:       r.URL,
			Body:      r.Options.Body,
			CreatedAt: r.CreatedAt,
		})
	}
	return views
}

type replayView struct {
	service.ReplayReport
	Remaining int `json:"remaining"`
}

func newReplayView(report service.ReplayReport) replayView {
	return replayView{ReplayReport: report, Remaining: report.Remaining()}
}

type watchView struct {
	Online  bool `json:"online"`
	Pending int  `json:"pending"`
	// LastReplay is the last replay the connectivity worker completed.
	LastReplay *replayView `json:"last_replay,omitempty"`
}

const stateCached = "cached"

func errorText(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
