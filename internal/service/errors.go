// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrRestaurantNotFound means the restaurant is unknown to the remote API
	// (client) or to the database (server).
	ErrRestaurantNotFound = errors.New("restaurant not found")

	// ErrRequestQueued means the immediate send of a write failed and the write
	// was persisted for replay. It is always wrapped together with the send
	// error.
	ErrRequestQueued = errors.New("request queued for replay")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
	ErrStorageUnavailable    = errors.New("storage unavailable")
)
