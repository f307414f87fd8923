// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-request-inbox/internal/logger"
	"github.com/MKhiriev/go-request-inbox/internal/service"
	"github.com/MKhiriev/go-request-inbox/internal/utils"
	"github.com/MKhiriev/go-request-inbox/models"
)

// maxBodySize caps JSON request bodies.
const maxBodySize = 1 << 20

func tenantFromRequest(r *http.Request) (string, error) {
	tenantID, ok := utils.GetTenantIDFromContext(r.Context())
	if !ok {
		return "", ErrNoTenantID
	}
	return tenantID, nil
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) error {
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodySize))
	if err := decoder.Decode(dst); err != nil {
		return fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, err)
	}
	return nil
}

func (h *Handler) listRequests(w http.ResponseWriter, r *http.Request) {
	tenantID, err := tenantFromRequest(r)
	if err != nil {
		h.writeError(w, r, "*Handler.listRequests", err)
		return
	}

	filter := models.ListFilter{
		Status: models.RequestStatus(r.URL.Query().Get("status")),
		Query:  r.URL.Query().Get("q"),
	}

	requests, err := h.services.RequestService.List(r.Context(), tenantID, filter)
	if err != nil {
		h.writeError(w, r, "*Handler.listRequests", err)
		return
	}

	utils.WriteJSON(w, requests, http.StatusOK)
}

func (h *Handler) createRequest(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	tenantID, err := tenantFromRequest(r)
	if err != nil {
		h.writeError(w, r, "*Handler.createRequest", err)
		return
	}

	var payload models.RequestPayload
	if err = decodeBody(w, r, &payload); err != nil {
		h.writeError(w, r, "*Handler.createRequest", err)
		return
	}

	created, err := h.services.RequestService.Create(r.Context(), tenantID, payload)
	if err != nil {
		h.writeError(w, r, "*Handler.createRequest", err)
		return
	}

	log.Debug().Str("func", "*Handler.createRequest").Str("request_id", created.ID).Msg("request created")
	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) getRequest(w http.ResponseWriter, r *http.Request) {
	tenantID, err := tenantFromRequest(r)
	if err != nil {
		h.writeError(w, r, "*Handler.getRequest", err)
		return
	}

	request, err := h.services.RequestService.Get(r.Context(), tenantID, chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, "*Handler.getRequest", err)
		return
	}

	utils.WriteJSON(w, request, http.StatusOK)
}

func (h *Handler) updateRequestStatus(w http.ResponseWriter, r *http.Request) {
	tenantID, err := tenantFromRequest(r)
	if err != nil {
		h.writeError(w, r, "*Handler.updateRequestStatus", err)
		return
	}

	var body models.StatusUpdateRequest
	if err = decodeBody(w, r, &body); err != nil {
		h.writeError(w, r, "*Handler.updateRequestStatus", err)
		return
	}

	updated, err := h.services.RequestService.UpdateStatus(r.Context(), tenantID, chi.URLParam(r, "id"), body.Status)
	if err != nil {
		h.writeError(w, r, "*Handler.updateRequestStatus", err)
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) convertRequest(w http.ResponseWriter, r *http.Request) {
	tenantID, err := tenantFromRequest(r)
	if err != nil {
		h.writeError(w, r, "*Handler.convertRequest", err)
		return
	}

	converted, err := h.services.RequestService.Convert(r.Context(), tenantID, chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, "*Handler.convertRequest", err)
		return
	}

	utils.WriteJSON(w, converted, http.StatusOK)
}

func (h *Handler) deleteRequest(w http.ResponseWriter, r *http.Request) {
	tenantID, err := tenantFromRequest(r)
	if err != nil {
		h.writeError(w, r, "*Handler.deleteRequest", err)
		return
	}

	id, err := h.services.RequestService.Delete(r.Context(), tenantID, chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, "*Handler.deleteRequest", err)
		return
	}

	utils.WriteJSON(w, models.DeleteResponse{RequestID: id}, http.StatusOK)
}
