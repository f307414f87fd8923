// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-request-inbox/internal/utils"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	serverVersion := h.services.AppInfoService.GetAppVersion(r.Context())

	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte(serverVersion))
}

type streamStatsResponse struct {
	Subscribers int    `json:"subscribers"`
	Published   uint64 `json:"published"`
	Overflowed  uint64 `json:"overflowed"`
}

// getStreamStats reports broker activity across all tenants.
func (h *Handler) getStreamStats(w http.ResponseWriter, r *http.Request) {
	stats := h.services.AppInfoService.GetStreamStats(r.Context())

	utils.WriteJSON(w, streamStatsResponse{
		Subscribers: stats.Subscribers,
		Published:   stats.Published,
		Overflowed:  stats.Overflowed,
	}, http.StatusOK)
}
