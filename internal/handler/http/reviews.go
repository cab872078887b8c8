// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-restaurant-reviews/internal/utils"
	"github.com/MKhiriev/go-restaurant-reviews/models"
)

// getReviews handles GET /reviews with an optional restaurant_id filter.
func (h *Handler) getReviews(w http.ResponseWriter, r *http.Request) {
	var restaurantID *int64
	if raw := r.URL.Query().Get("restaurant_id"); raw != "" {
		id, err := parseID(raw)
		if err != nil {
			writeServiceError(w, r, "*Handler.getReviews", err)
			return
		}
		restaurantID = &id
	}

	reviews, err := h.services.ReviewService.GetReviews(r.Context(), restaurantID)
	if err != nil {
		writeServiceError(w, r, "*Handler.getReviews", err)
		return
	}

	utils.WriteJSON(w, reviews, http.StatusOK)
}

func (h *Handler) createReview(w http.ResponseWriter, r *http.Request) {
	var review models.NewReview
	if err := json.NewDecoder(r.Body).Decode(&review); err != nil {
		writeServiceError(w, r, "*Handler.createReview", fmt.Errorf("%w: %w", errInvalidJSON, err))
		return
	}

	created, err := h.services.ReviewService.CreateReview(r.Context(), review)
	if err != nil {
		writeServiceError(w, r, "*Handler.createReview", err)
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}
