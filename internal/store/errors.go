// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

var (
	// ErrStorageUnavailable wraps every driver failure. Callers must treat it
	// as "cache unavailable", never as "no data".
	ErrStorageUnavailable = errors.New("storage unavailable")

	// ErrRecordNotFound means the key is absent from the collection.
	ErrRecordNotFound = errors.New("record not found")

	// ErrCorruptedRecord means a stored payload could not be decoded.
	ErrCorruptedRecord = errors.New("corrupted record")

	ErrBuildingSQLQuery = errors.New("error building SQL query")

	ErrRestaurantNotFound = errors.New("restaurant not found")
	ErrInvalidReview      = errors.New("invalid review")
)
