// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used by the
// reference server handlers and by the client when it interprets error
// responses.
//
// All Msg* constants are human-readable message strings written into the
// "error" field of HTTP error bodies. Keeping them in one place lets the
// client map a 400 answer back to the validation error that caused it.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgServiceUnavailable is returned when the database cannot be reached.
	MsgServiceUnavailable = "service unavailable"

	MsgRestaurantNotFound = "restaurant not found"

	// MsgInvalidRestaurantID is returned for a non-numeric or non-positive
	// restaurant id in the path or the query string.
	MsgInvalidRestaurantID = "invalid restaurant ID"

	// MsgInvalidFavoriteFlag is returned when is_favorite is missing or not
	// a boolean.
	MsgInvalidFavoriteFlag = "invalid is_favorite value"

	MsgEmptyReviewerName   = "reviewer name is required"
	MsgReviewerNameTooLong = "reviewer name is too long"
	MsgInvalidRating       = "rating must be between 1 and 5"
	MsgCommentsTooLong     = "comments are too long"

	// MsgInvalidReview is returned when the database rejected a review that
	// passed validation.
	MsgInvalidReview = "invalid review"
)
