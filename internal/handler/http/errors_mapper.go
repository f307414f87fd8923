// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-request-inbox/internal/app"
	"github.com/MKhiriev/go-request-inbox/internal/broker"
	"github.com/MKhiriev/go-request-inbox/internal/logger"
	"github.com/MKhiriev/go-request-inbox/internal/service"
	"github.com/MKhiriev/go-request-inbox/internal/store"
)

type errorResponse struct {
	target  error
	status  int
	message string
}

// errorResponses is checked in order, so more specific errors come first:
// a status validation failure also wraps the generic invalid-data error.
var errorResponses = []errorResponse{
	{service.ErrInvalidStatus, http.StatusBadRequest, app.MsgInvalidStatus},
	{service.ErrInvalidDataProvided, http.StatusBadRequest, app.MsgInvalidDataProvided},
	{service.ErrInvalidTransition, http.StatusConflict, app.MsgInvalidTransition},
	{service.ErrEmptyTenantID, http.StatusUnauthorized, app.MsgNoTenantIDProvided},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized, app.MsgTokenIsExpiredOrInvalid},
	{ErrNoTenantID, http.StatusUnauthorized, app.MsgNoTenantIDProvided},
	{ErrEmptyAuthorizationHeader, http.StatusUnauthorized, app.MsgTokenIsExpiredOrInvalid},
	{ErrInvalidAuthorizationHeader, http.StatusUnauthorized, app.MsgTokenIsExpiredOrInvalid},
	{ErrStreamingUnsupported, http.StatusInternalServerError, app.MsgStreamingUnsupported},

	{store.ErrRequestNotFound, http.StatusNotFound, app.MsgRequestNotFound},

	{broker.ErrBrokerClosed, http.StatusServiceUnavailable, app.MsgServerShuttingDown},
}

// responseFromError maps err to a status code and the message written to the
// response body. Unknown errors become a 500 without leaking details.
func responseFromError(err error) (int, string) {
	for _, r := range errorResponses {
		if errors.Is(err, r.target) {
			return r.status, r.message
		}
	}
	return http.StatusInternalServerError, app.MsgInternalServerError
}

// writeError logs err and writes its mapped status and message.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, funcName string, err error) {
	status, message := responseFromError(err)

	log := logger.FromRequest(r)
	event := log.Warn()
	if status >= http.StatusInternalServerError {
		event = log.Error()
	}
	event.Err(err).Str("func", funcName).Int("status", status).Send()

	http.Error(w, message, status)
}
