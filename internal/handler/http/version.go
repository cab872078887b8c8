// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-restaurant-reviews/internal/utils"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	serverVersion := h.services.AppInfoService.GetAppVersion(r.Context())

	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte(serverVersion))
}

type healthResponse struct {
	Status string `json:"status"`
}

// checkHealth answers 200 while the database is reachable and 503 otherwise.
func (h *Handler) checkHealth(w http.ResponseWriter, r *http.Request) {
	if err := h.services.AppInfoService.CheckHealth(r.Context()); err != nil {
		writeServiceError(w, r, "*Handler.checkHealth", err)
		return
	}

	utils.WriteJSON(w, healthResponse{Status: "ok"}, http.StatusOK)
}
