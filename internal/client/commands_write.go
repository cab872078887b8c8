// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-restaurant-reviews/internal/service"
	"github.com/MKhiriev/go-restaurant-reviews/models"
)

// favorite sets the favorite flag. A queued write is not a failure: it is
// printed with state "queued" and replayed later.
func (a *App) favorite(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return usageError("id and flag expected")
	}
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	isFavorite, err := strconv.ParseBool(args[1])
	if err != nil {
		return usageError("invalid favorite flag %q", args[1])
	}

	r, err := a.services.RestaurantService.ToggleFavorite(ctx, id, isFavorite)
	return printWriteView(a, newRestaurantView(r), err)
}

func (a *App) review(ctx context.Context, args []string) error {
	if len(args) < 4 {
		return usageError("restaurant id, name, rating and comments expected")
	}
	restaurantID, err := parseID(args[0])
	if err != nil {
		return err
	}
	rating, err := strconv.Atoi(args[2])
	if err != nil {
		return usageError("invalid rating %q", args[2])
	}

	posted, err := a.services.ReviewService.PostReview(ctx, models.NewReview{
		RestaurantID: restaurantID,
		Name:         args[1],
		Rating:       rating,
		Comments:     strings.Join(args[3:], " "),
	})
	return printWriteView(a, posted, err)
}

func (a *App) pending(ctx context.Context, args []string) error {
	if len(args) != 0 {
		return usageError("unexpected arguments %v", args)
	}

	requests, err := a.services.PendingRequestService.ListPending(ctx)
	if err != nil {
		return err
	}
	return a.print(newPendingViews(requests))
}

// replay resends the queue once, regardless of the connectivity state.
func (a *App) replay(ctx context.Context, args []string) error {
	if len(args) != 0 {
		return usageError("unexpected arguments %v", args)
	}

	report, err := a.services.PendingRequestService.ReplayPending(ctx)
	if err != nil {
		return err
	}
	return a.print(newReplayView(report))
}

func printWriteView[T any](a *App, data T, err error) error {
	if errors.Is(err, service.ErrRequestQueued) {
		return a.print(writeView[T]{State: models.RequestStateQueued, Data: data, Error: err.Error()})
	}
	if err != nil {
		return err
	}
	return a.print(writeView[T]{State: models.RequestStateDelivered, Data: data})
}
