// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
)

// ReadState is a step of a "cache, then refresh" read.
type ReadState int

const (
	// ReadCached: the cache held a value and it was served.
	ReadCached ReadState = iota + 1
	// ReadMissing: the cache held nothing or could not be read.
	ReadMissing
	// ReadRefreshing: the remote fetch started.
	ReadRefreshing
	// ReadFresh: the remote value replaced the cached one. Terminal.
	ReadFresh
	// ReadStaleOnError: the refresh failed, the cached value (if any) stays.
	// Terminal.
	ReadStaleOnError
)

func (s ReadState) String() string {
	switch s {
	case ReadCached:
		return "cached"
	case ReadMissing:
		return "missing"
	case ReadRefreshing:
		return "refreshing"
	case ReadFresh:
		return "fresh"
	case ReadStaleOnError:
		return "stale_on_error"
	default:
		return fmt.Sprintf("ReadState(%d)", int(s))
	}
}

// ReadObserver receives every state the read passes through, in order.
type ReadObserver func(state ReadState)

// ReadResult is the outcome of a [ReadFlow].
type ReadResult[T any] struct {
	Value T
	// Found is false only when neither the cache nor the refresh produced a
	// value.
	Found bool
	// State is the terminal state: [ReadFresh] or [ReadStaleOnError].
	State ReadState
	// CacheErr is set when the cache could not be read.
	CacheErr error
	// RefreshErr is set when the refresh failed.
	RefreshErr error
}

// ReadFlow runs a read as Cached|Missing → Refreshing → Fresh|StaleOnError.
// A refresh failure never fails the read: the cached value is kept and the
// error is reported in [ReadResult.RefreshErr].
type ReadFlow[T any] struct {
	// Cache reads the cached value. found is false when it is absent.
	Cache func(ctx context.Context) (value T, found bool, err error)
	// Refresh fetches the remote value and updates the cache.
	Refresh func(ctx context.Context) (T, error)
	// Observer is optional.
	Observer ReadObserver
}

func (f ReadFlow[T]) Run(ctx context.Context) ReadResult[T] {
	var result ReadResult[T]

	value, found, err := f.Cache(ctx)
	switch {
	case err != nil:
		result.CacheErr = err
		f.notify(ReadMissing)
	case found:
		result.Value = value
		result.Found = true
		f.notify(ReadCached)
	default:
		f.notify(ReadMissing)
	}

	f.notify(ReadRefreshing)

	fresh, err := f.Refresh(ctx)
	if err != nil {
		result.RefreshErr = err
		result.State = ReadStaleOnError
		f.notify(ReadStaleOnError)
		return result
	}

	result.Value = fresh
	result.Found = true
	result.State = ReadFresh
	f.notify(ReadFresh)

	return result
}

func (f ReadFlow[T]) notify(state ReadState) {
	if f.Observer != nil {
		f.Observer(state)
	}
}
