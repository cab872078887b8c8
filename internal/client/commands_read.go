// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strconv"

	"github.com/MKhiriev/go-restaurant-reviews/internal/service"
	"github.com/MKhiriev/go-restaurant-reviews/models"
)

// restaurants prints the cached restaurants after a refresh. -cached skips
// the refresh.
func (a *App) restaurants(ctx context.Context, args []string) error {
	fs := newFlagSet("restaurants")
	cached := fs.Bool("cached", false, "serve the local cache only")
	cuisine := fs.String("cuisine", models.FilterAll, "cuisine type filter")
	neighborhood := fs.String("neighborhood", models.FilterAll, "neighborhood filter")
	if err := fs.Parse(args); err != nil {
		return usageError("%v", err)
	}
	if fs.NArg() != 0 {
		return usageError("unexpected arguments %v", fs.Args())
	}

	filter := models.RestaurantFilter{Cuisine: *cuisine, Neighborhood: *neighborhood}

	if *cached {
		list, err := a.services.RestaurantService.GetFiltered(ctx, filter)
		if err != nil {
			return err
		}
		return a.print(readView[[]restaurantView]{State: stateCached, Data: newRestaurantViews(list)})
	}

	result := a.services.RestaurantService.LoadRestaurants(ctx, a.observe("restaurants"))
	if !result.Found && result.CacheErr != nil {
		return result.CacheErr
	}

	list := make([]models.Restaurant, 0, len(result.Value))
	for _, r := range result.Value {
		if filter.Matches(r) {
			list = append(list, r)
		}
	}

	return a.print(readView[[]restaurantView]{
		State:        result.State.String(),
		Data:         newRestaurantViews(list),
		RefreshError: errorText(result.RefreshErr),
	})
}

func (a *App) restaurant(ctx context.Context, args []string) error {
	fs := newFlagSet("restaurant")
	cached := fs.Bool("cached", false, "serve the local cache only")
	if err := fs.Parse(args); err != nil {
		return usageError("%v", err)
	}
	id, err := singleID(fs.Args())
	if err != nil {
		return err
	}

	if *cached {
		r, found, err := a.services.RestaurantService.Get(ctx, id)
		if err != nil {
			return err
		}
		if !found {
			return notFound(fmt.Sprintf("restaurant %d", id), nil)
		}
		return a.print(readView[restaurantView]{State: stateCached, Data: newRestaurantView(r)})
	}

	result := a.services.RestaurantService.LoadRestaurant(ctx, id, a.observe("restaurant"))
	if !result.Found {
		return notFound(fmt.Sprintf("restaurant %d", id), result.RefreshErr)
	}

	return a.print(readView[restaurantView]{
		State:        result.State.String(),
		Data:         newRestaurantView(result.Value),
		RefreshError: errorText(result.RefreshErr),
	})
}

func (a *App) neighborhoods(ctx context.Context, args []string) error {
	if len(args) != 0 {
		return usageError("unexpected arguments %v", args)
	}

	values, err := a.services.RestaurantService.GetNeighborhoods(ctx)
	if err != nil {
		return err
	}
	return a.print(values)
}

func (a *App) cuisines(ctx context.Context, args []string) error {
	if len(args) != 0 {
		return usageError("unexpected arguments %v", args)
	}

	values, err := a.services.RestaurantService.GetCuisines(ctx)
	if err != nil {
		return err
	}
	return a.print(values)
}

func (a *App) reviews(ctx context.Context, args []string) error {
	fs := newFlagSet("reviews")
	cached := fs.Bool("cached", false, "serve the local cache only")
	if err := fs.Parse(args); err != nil {
		return usageError("%v", err)
	}
	restaurantID, err := singleID(fs.Args())
	if err != nil {
		return err
	}

	if *cached {
		reviews, found, err := a.services.ReviewService.GetReviews(ctx, restaurantID)
		if err != nil {
			return err
		}
		if !found {
			return notFound(fmt.Sprintf("reviews of restaurant %d", restaurantID), nil)
		}
		return a.print(readView[[]models.Review]{State: stateCached, Data: reviews})
	}

	result := a.services.ReviewService.LoadReviews(ctx, restaurantID, a.observe("reviews"))
	if !result.Found {
		return notFound(fmt.Sprintf("reviews of restaurant %d", restaurantID), result.RefreshErr)
	}

	return a.print(readView[[]models.Review]{
		State:        result.State.String(),
		Data:         result.Value,
		RefreshError: errorText(result.RefreshErr),
	})
}

// refresh overwrites the cache from the remote API, every restaurant or the
// one given.
func (a *App) refresh(ctx context.Context, args []string) error {
	switch len(args) {
	case 0:
		list, err := a.services.RestaurantService.RefreshAll(ctx)
		if err != nil {
			return err
		}
		return a.print(newRestaurantViews(list))
	case 1:
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		r, err := a.services.RestaurantService.RefreshOne(ctx, id)
		if err != nil {
			return err
		}
		return a.print(newRestaurantView(r))
	default:
		return usageError("at most one id expected")
	}
}

// observe logs every read state at debug level.
func (a *App) observe(resource string) service.ReadObserver {
	return func(state service.ReadState) {
		a.logger.Debug().Str("resource", resource).Stringer("state", state).Msg("read state")
	}
}

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func singleID(args []string) (int64, error) {
	if len(args) != 1 {
		return 0, usageError("exactly one id expected")
	}
	return parseID(args[0])
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, usageError("invalid id %q", raw)
	}
	return id, nil
}

func notFound(what string, cause error) error {
	if cause == nil {
		return fmt.Errorf("%w: %s", ErrNotFound, what)
	}
	return fmt.Errorf("%w: %s: %w", ErrNotFound, what, cause)
}
