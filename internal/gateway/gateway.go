// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package gateway knows the URL layout of the remote restaurant API and
// turns domain intents into [models.RequestDescriptor] values.
//
// It performs no I/O: descriptors are sent by the adapter package, and a
// descriptor built here can be persisted and replayed later unchanged.
package gateway

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-restaurant-reviews/models"
)

// RequestBuilder builds descriptors against one base URL.
type RequestBuilder struct {
	baseURL string
}

// NewRequestBuilder normalizes baseURL (a missing scheme defaults to http,
// trailing slashes are dropped).
func NewRequestBuilder(baseURL string) (*RequestBuilder, error) {
	normalized, err := NormalizeBaseURL(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid remote base url: %w", err)
	}

	return &RequestBuilder{baseURL: normalized}, nil
}

// BaseURL returns the normalized base URL.
func (b *RequestBuilder) BaseURL() string {
	return b.baseURL
}

// AllRestaurants describes GET {base}/restaurants.
func (b *RequestBuilder) AllRestaurants() models.RequestDescriptor {
	return b.get(b.baseURL + "/restaurants")
}

// Restaurant describes GET {base}/restaurants/{id}.
func (b *RequestBuilder) Restaurant(id int64) models.RequestDescriptor {
	return b.get(b.restaurantURL(id))
}

// RestaurantReviews describes GET {base}/reviews/?restaurant_id={id}.
func (b *RequestBuilder) RestaurantReviews(restaurantID int64) models.RequestDescriptor {
	query := url.Values{}
	query.Set("restaurant_id", strconv.FormatInt(restaurantID, 10))

	return b.get(b.baseURL + "/reviews/?" + query.Encode())
}

// NewReview describes POST {base}/reviews with review as the JSON body.
func (b *RequestBuilder) NewReview(review models.NewReview) (models.RequestDescriptor, error) {
	payload, err := json.Marshal(review)
	if err != nil {
		return models.RequestDescriptor{}, fmt.Errorf("encode review: %w", err)
	}
	body := string(payload)

	return models.RequestDescriptor{
		URL: b.baseURL + "/reviews",
		Options: models.RequestOptions{
			Method: http.MethodPost,
			Body:   &body,
		},
	}, nil
}

// RestaurantFavorite describes PUT {base}/restaurants/{id}/?is_favorite={bool}.
func (b *RequestBuilder) RestaurantFavorite(id int64, isFavorite bool) models.RequestDescriptor {
	query := url.Values{}
	query.Set("is_favorite", strconv.FormatBool(isFavorite))

	return models.RequestDescriptor{
		URL:     b.restaurantURL(id) + "/?" + query.Encode(),
		Options: models.RequestOptions{Method: http.MethodPut},
	}
}

func (b *RequestBuilder) restaurantURL(id int64) string {
	return b.baseURL + "/restaurants/" + strconv.FormatInt(id, 10)
}

func (b *RequestBuilder) get(u string) models.RequestDescriptor {
	return models.RequestDescriptor{URL: u, Options: models.RequestOptions{Method: http.MethodGet}}
}

// NormalizeBaseURL validates raw as an absolute http(s) URL.
func NormalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return "", fmt.Errorf("address must include host and http(s) scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}
