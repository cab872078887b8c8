// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Restaurant is a catalog entry as served by the remote API.
//
// Restaurants are owned by the server. The client never fabricates them and
// only caches what it received, keyed by ID.
type Restaurant struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Address      string `json:"address"`
	Neighborhood string `json:"neighborhood"`
	CuisineType  string `json:"cuisine_type"`
	LatLng       LatLng `json:"latlng"`

	// Photograph is the image base name without extension. A nil or empty
	// value means the restaurant has no photo.
	Photograph *string `json:"photograph"`

	// OperatingHours maps a weekday name to its free-form opening hours.
	OperatingHours map[string]string `json:"operating_hours,omitempty"`

	IsFavorite FavoriteFlag `json:"is_favorite"`
}

// LatLng is a geographic coordinate pair.
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// FavoriteFlag is the favorite marker of a restaurant.
//
// The remote API is inconsistent about its encoding: freshly seeded records
// carry a JSON boolean while records updated through the favorite endpoint
// come back with "true" or "false" strings. FavoriteFlag accepts both and
// always encodes as a boolean.
type FavoriteFlag bool

// UnmarshalJSON decodes a boolean, a boolean string or null.
func (f *FavoriteFlag) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidFavoriteFlag, err)
	}

	switch value := raw.(type) {
	case nil:
		*f = false
	case bool:
		*f = FavoriteFlag(value)
	case string:
		parsed, err := strconv.ParseBool(strings.TrimSpace(value))
		if err != nil {
			return fmt.Errorf("%w: %q", ErrInvalidFavoriteFlag, value)
		}
		*f = FavoriteFlag(parsed)
	default:
		return fmt.Errorf("%w: %s", ErrInvalidFavoriteFlag, string(data))
	}

	return nil
}

// Bool returns the flag as a plain bool.
func (f FavoriteFlag) Bool() bool {
	return bool(f)
}

// PhotoSource is one candidate image for a responsive picture element.
type PhotoSource struct {
	URL   string `json:"url"`
	Width int    `json:"width"`
}

var (
	photoWidths = []int{400, 800}
	iconWidths  = []int{16, 96, 144, 192, 256, 512}
)

// PhotoSources returns the responsive image candidates for r, falling back
// to the application icon set when the restaurant has no photograph.
func (r Restaurant) PhotoSources() []PhotoSource {
	if r.Photograph == nil || *r.Photograph == "" {
		sources := make([]PhotoSource, 0, len(iconWidths))
		for _, w := range iconWidths {
			sources = append(sources, PhotoSource{URL: fmt.Sprintf("img/icons/icon%d.png", w), Width: w})
		}
		return sources
	}

	sources := make([]PhotoSource, 0, len(photoWidths))
	for _, w := range photoWidths {
		sources = append(sources, PhotoSource{URL: fmt.Sprintf("img/%d/%s.jpg", w, *r.Photograph), Width: w})
	}
	return sources
}

// URL returns the relative details page link of r.
func (r Restaurant) URL() string {
	return fmt.Sprintf("./restaurant.html?id=%d", r.ID)
}
