// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// FilterAll is the filter value that disables a restaurant filter dimension.
const FilterAll = "all"

// RestaurantFilter narrows a restaurant list by cuisine and neighborhood.
// An empty field behaves like FilterAll.
type RestaurantFilter struct {
	Cuisine      string `json:"cuisine"`
	Neighborhood string `json:"neighborhood"`
}

// Matches reports whether r satisfies every active dimension of f.
func (f RestaurantFilter) Matches(r Restaurant) bool {
	if active(f.Cuisine) && r.CuisineType != f.Cuisine {
		return false
	}
	if active(f.Neighborhood) && r.Neighborhood != f.Neighborhood {
		return false
	}
	return true
}

func active(value string) bool {
	return value != "" && value != FilterAll
}
