// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-user-auth/internal/utils"
	"github.com/MKhiriev/go-user-auth/models"
)

func (h *Handler) healthz(w http.ResponseWriter, r *http.Request) {
	if err := h.services.HealthService.Check(r.Context()); err != nil {
		utils.WriteJSON(w, models.ErrorResponse{Error: msgServiceUnavailable}, http.StatusServiceUnavailable)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: "ok"}, http.StatusOK)
}
