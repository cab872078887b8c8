// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimestamp_UnmarshalJSON(t *testing.T) {
	want := NewTimestamp(time.Date(2017, 8, 30, 12, 19, 27, 183_000_000, time.UTC))

	var fromMillis, fromString, fromNull Timestamp
	require.NoError(t, json.Unmarshal([]byte(`1504095567183`), &fromMillis))
	require.NoError(t, json.Unmarshal([]byte(`"2017-08-30T12:19:27.183Z"`), &fromString))
	require.NoError(t, json.Unmarshal([]byte(`null`), &fromNull))

	assert.Equal(t, want, fromMillis)
	assert.Equal(t, want, fromString)
	assert.True(t, fromNull.IsZero())

	var bad Timestamp
	assert.ErrorIs(t, json.Unmarshal([]byte(`"yesterday"`), &bad), ErrInvalidTimestamp)
}

func TestReview_EncodesTimestampsAsMillis(t *testing.T) {
	r := Review{
		ID:           1,
		RestaurantID: 2,
		Name:         "Steve",
		Rating:       4,
		Comments:     "Great",
		CreatedAt:    NewTimestamp(time.UnixMilli(1504095567183)),
	}

	encoded, err := json.Marshal(r)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"id": 1, "restaurant_id": 2, "name": "Steve", "rating": 4, "comments": "Great",
		"createdAt": 1504095567183, "updatedAt": null
	}`, string(encoded))
}

func TestPendingRequest_Descriptor(t *testing.T) {
	body := `{}`
	p := PendingRequest{ID: 3, URL: "/reviews", Options: RequestOptions{Method: "POST", Body: &body}}

	d := p.Descriptor()
	assert.Equal(t, "/reviews", d.URL)
	assert.Equal(t, "POST", d.MethodOrDefault())
	assert.Equal(t, "POST /reviews", d.String())
	assert.Equal(t, "GET", RequestDescriptor{URL: "/restaurants"}.MethodOrDefault())
}

func TestRequestState_String(t *testing.T) {
	assert.Equal(t, "unsent", RequestStateUnsent.String())
	assert.Equal(t, "delivered", RequestStateDelivered.String())
	assert.Equal(t, "queued", RequestStateQueued.String())
	assert.Equal(t, "RequestState(9)", RequestState(9).String())
}

func TestRequestState_TextRoundTrip(t *testing.T) {
	raw, err := json.Marshal(map[int64]RequestState{3: RequestStateQueued, 5: RequestStateDelivered})
	require.NoError(t, err)
	assert.JSONEq(t, `{"3":"queued","5":"delivered"}`, string(raw))

	var decoded map[int64]RequestState
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, RequestStateQueued, decoded[3])

	var s RequestState
	assert.Error(t, s.UnmarshalText([]byte("lost")))
}
