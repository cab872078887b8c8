// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

// recorder собирает состояния, через которые прошло чтение.
type recorder struct {
	states []ReadState
}

func (r *recorder) observe(state ReadState) {
	r.states = append(r.states, state)
}

func TestReadFlow_CachedThenFresh(t *testing.T) {
	rec := &recorder{}
	flow := ReadFlow[string]{
		Cache:    func(context.Context) (string, bool, error) { return "cached", true, nil },
		Refresh:  func(context.Context) (string, error) { return "fresh", nil },
		Observer: rec.observe,
	}

	result := flow.Run(context.Background())

	assert.Equal(t, []ReadState{ReadCached, ReadRefreshing, ReadFresh}, rec.states)
	assert.Equal(t, "fresh", result.Value)
	assert.True(t, result.Found)
	assert.Equal(t, ReadFresh, result.State)
	assert.NoError(t, result.RefreshErr)
}

func TestReadFlow_CachedThenStale(t *testing.T) {
	rec := &recorder{}
	refreshErr := errors.New("offline")
	flow := ReadFlow[string]{
		Cache:    func(context.Context) (string, bool, error) { return "cached", true, nil },
		Refresh:  func(context.Context) (string, error) { return "", refreshErr },
		Observer: rec.observe,
	}

	result := flow.Run(context.Background())

	assert.Equal(t, []ReadState{ReadCached, ReadRefreshing, ReadStaleOnError}, rec.states)
	// ошибка обновления не ломает чтение
	assert.Equal(t, "cached", result.Value)
	assert.True(t, result.Found)
	assert.Equal(t, ReadStaleOnError, result.State)
	assert.ErrorIs(t, result.RefreshErr, refreshErr)
}

func TestReadFlow_MissingThenFresh(t *testing.T) {
	rec := &recorder{}
	flow := ReadFlow[int]{
		Cache:    func(context.Context) (int, bool, error) { return 0, false, nil },
		Refresh:  func(context.Context) (int, error) { return 7, nil },
		Observer: rec.observe,
	}

	result := flow.Run(context.Background())

	assert.Equal(t, []ReadState{ReadMissing, ReadRefreshing, ReadFresh}, rec.states)
	assert.Equal(t, 7, result.Value)
	assert.True(t, result.Found)
}

func TestReadFlow_MissingEverywhere(t *testing.T) {
	flow := ReadFlow[int]{
		Cache:   func(context.Context) (int, bool, error) { return 0, false, nil },
		Refresh: func(context.Context) (int, error) { return 0, ErrRestaurantNotFound },
	}

	result := flow.Run(context.Background())

	assert.False(t, result.Found)
	assert.Equal(t, ReadStaleOnError, result.State)
	assert.ErrorIs(t, result.RefreshErr, ErrRestaurantNotFound)
}

func TestReadFlow_CacheUnavailable(t *testing.T) {
	rec := &recorder{}
	cacheErr := errors.New("disk I/O error")
	flow := ReadFlow[int]{
		Cache:    func(context.Context) (int, bool, error) { return 0, false, cacheErr },
		Refresh:  func(context.Context) (int, error) { return 3, nil },
		Observer: rec.observe,
	}

	result := flow.Run(context.Background())

	assert.Equal(t, []ReadState{ReadMissing, ReadRefreshing, ReadFresh}, rec.states)
	assert.ErrorIs(t, result.CacheErr, cacheErr)
	assert.Equal(t, 3, result.Value)
}

func TestReadState_String(t *testing.T) {
	assert.Equal(t, "cached", ReadCached.String())
	assert.Equal(t, "missing", ReadMissing.String())
	assert.Equal(t, "refreshing", ReadRefreshing.String())
	assert.Equal(t, "fresh", ReadFresh.String())
	assert.Equal(t, "stale_on_error", ReadStaleOnError.String())
	assert.Equal(t, "ReadState(0)", ReadState(0).String())
}
