// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// Review is a user review of a restaurant.
type Review struct {
	ID           int64     `json:"id,omitempty"`
	RestaurantID int64     `json:"restaurant_id"`
	Name         string    `json:"name"`
	Rating       int       `json:"rating"`
	Comments     string    `json:"comments"`
	CreatedAt    Timestamp `json:"createdAt"`
	UpdatedAt    Timestamp `json:"updatedAt"`
}

// ReviewCollection is the cached review list of a single restaurant.
// It is replaced wholesale on every refresh.
type ReviewCollection struct {
	RestaurantID int64    `json:"restaurantId"`
	Reviews      []Review `json:"reviews"`
}

// NewReview is the payload of a review submission.
type NewReview struct {
	RestaurantID int64  `json:"restaurant_id"`
	Name         string `json:"name"`
	Rating       int    `json:"rating"`
	Comments     string `json:"comments"`
}

// Timestamp is a point in time exchanged as Unix milliseconds.
// Decoding also accepts RFC 3339 strings.
type Timestamp struct {
	time.Time
}

// NewTimestamp truncates t to millisecond precision in UTC.
func NewTimestamp(t time.Time) Timestamp {
	if t.IsZero() {
		return Timestamp{}
	}
	return Timestamp{Time: time.UnixMilli(t.UnixMilli()).UTC()}
}

// MarshalJSON encodes the zero value as null.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return strconv.AppendInt(nil, t.UnixMilli(), 10), nil
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*t = Timestamp{}
		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidTimestamp, err)
		}
		parsed, err := time.Parse(time.RFC3339Nano, s)
		if err != nil {
			return fmt.Errorf("%w: %q", ErrInvalidTimestamp, s)
		}
		*t = NewTimestamp(parsed)
		return nil
	}

	ms, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidTimestamp, string(data))
	}
	*t = NewTimestamp(time.UnixMilli(ms))
	return nil
}
