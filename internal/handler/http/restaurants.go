// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-restaurant-reviews/internal/utils"
	"github.com/MKhiriev/go-restaurant-reviews/internal/validators"
	"github.com/MKhiriev/go-restaurant-reviews/models"
)

func (h *Handler) getRestaurants(w http.ResponseWriter, r *http.Request) {
	restaurants, err := h.services.RestaurantService.GetAllRestaurants(r.Context())
	if err != nil {
		writeServiceError(w, r, "*Handler.getRestaurants", err)
		return
	}

	utils.WriteJSON(w, restaurants, http.StatusOK)
}

func (h *Handler) getRestaurant(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, r, "*Handler.getRestaurant", err)
		return
	}

	restaurant, err := h.services.RestaurantService.GetRestaurant(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, "*Handler.getRestaurant", err)
		return
	}

	utils.WriteJSON(w, restaurant, http.StatusOK)
}

// setFavorite handles PUT /restaurants/{id}?is_favorite={bool}.
func (h *Handler) setFavorite(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, r, "*Handler.setFavorite", err)
		return
	}

	raw := r.URL.Query().Get("is_favorite")
	favorite, err := strconv.ParseBool(raw)
	if err != nil {
		writeServiceError(w, r, "*Handler.setFavorite", fmt.Errorf("%w: %q", models.ErrInvalidFavoriteFlag, raw))
		return
	}

	restaurant, err := h.services.RestaurantService.SetFavorite(r.Context(), id, favorite)
	if err != nil {
		writeServiceError(w, r, "*Handler.setFavorite", err)
		return
	}

	utils.WriteJSON(w, restaurant, http.StatusOK)
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q", validators.ErrInvalidRestaurantID, raw)
	}
	return id, nil
}
