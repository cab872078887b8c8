// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package gateway

import (
	"testing"

	"github.com/MKhiriev/go-restaurant-reviews/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBuilder(t *testing.T) *RequestBuilder {
	t.Helper()
	b, err := NewRequestBuilder("http://localhost:1337")
	require.NoError(t, err)
	return b
}

// ── NormalizeBaseURL ─────────────────────────────────────────────────────────

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		raw     string
		want    string
		wantErr bool
	}{
		{raw: "http://localhost:1337", want: "http://localhost:1337"},
		{raw: "http://localhost:1337///", want: "http://localhost:1337"},
		{raw: "  localhost:1337 ", want: "http://localhost:1337"},
		{raw: "https://api.example.com/v1/", want: "https://api.example.com/v1"},
		{raw: "", wantErr: true},
		{raw: "ftp://files.example.com", wantErr: true},
		{raw: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := NormalizeBaseURL(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// ── descriptors ──────────────────────────────────────────────────────────────

func TestRequestBuilder_Reads(t *testing.T) {
	b := newBuilder(t)

	assert.Equal(t, models.RequestDescriptor{
		URL:     "http://localhost:1337/restaurants",
		Options: models.RequestOptions{Method: "GET"},
	}, b.AllRestaurants())

	assert.Equal(t, "http://localhost:1337/restaurants/3", b.Restaurant(3).URL)
	assert.Equal(t, "http://localhost:1337/reviews/?restaurant_id=3", b.RestaurantReviews(3).URL)
	assert.Nil(t, b.RestaurantReviews(3).Options.Body)
}

func TestRequestBuilder_NewReview(t *testing.T) {
	b := newBuilder(t)

	d, err := b.NewReview(models.NewReview{RestaurantID: 3, Name: "Ann", Rating: 5, Comments: "Great"})
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:1337/reviews", d.URL)
	assert.Equal(t, "POST", d.Options.Method)
	require.NotNil(t, d.Options.Body)
	assert.JSONEq(t, `{"restaurant_id":3,"name":"Ann","rating":5,"comments":"Great"}`, *d.Options.Body)
}

func TestRequestBuilder_RestaurantFavorite(t *testing.T) {
	b := newBuilder(t)

	on := b.RestaurantFavorite(3, true)
	off := b.RestaurantFavorite(3, false)

	assert.Equal(t, "http://localhost:1337/restaurants/3/?is_favorite=true", on.URL)
	assert.Equal(t, "PUT", on.Options.Method)
	assert.Nil(t, on.Options.Body)
	assert.Equal(t, "http://localhost:1337/restaurants/3/?is_favorite=false", off.URL)
}

func TestRequestBuilder_IsPure(t *testing.T) {
	b := newBuilder(t)

	// одинаковый вход даёт одинаковый дескриптор
	assert.Equal(t, b.RestaurantFavorite(9, true), b.RestaurantFavorite(9, true))
	assert.Equal(t, b.AllRestaurants(), b.AllRestaurants())
}
