// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-restaurant-reviews/internal/adapter"
	"github.com/MKhiriev/go-restaurant-reviews/internal/app"
	"github.com/MKhiriev/go-restaurant-reviews/internal/utils"
	"github.com/MKhiriev/go-restaurant-reviews/internal/validators"
)

// badRequestErrors maps the message of a 400 answer to the validation error
// the server reported.
var badRequestErrors = map[string]error{
	app.MsgInvalidRestaurantID: validators.ErrInvalidRestaurantID,
	app.MsgEmptyReviewerName:   validators.ErrEmptyReviewerName,
	app.MsgReviewerNameTooLong: validators.ErrReviewerNameTooLong,
	app.MsgInvalidRating:       validators.ErrInvalidRating,
	app.MsgCommentsTooLong:     validators.ErrCommentsTooLong,
}

// mapAdapterError translates the adapter's transport error into a service
// error. The original error stays in the chain, so adapter sentinels still
// match.
func mapAdapterError(resp *adapter.Response, err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, adapter.ErrNotFound):
		return fmt.Errorf("%w: %w", ErrRestaurantNotFound, err)

	case errors.Is(err, adapter.ErrBadRequest):
		if mapped, ok := badRequestErrors[remoteMessage(resp)]; ok {
			return fmt.Errorf("%w: %w", mapped, err)
		}
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return err
}

// remoteMessage extracts the "error" field of a JSON error body.
func remoteMessage(resp *adapter.Response) string {
	if resp == nil {
		return ""
	}

	var body utils.ErrorResponse
	if err := json.Unmarshal(resp.Body, &body); err != nil {
		return ""
	}

	return body.Error
}
