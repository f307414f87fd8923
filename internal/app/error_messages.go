// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used by the
// request inbox server handlers and the client that reads their responses.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies. The client matches on them to recover the precise
// failure behind a status code, so server and client must agree on wording.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or fails validation.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidStatus is returned when a status update names an unknown
	// status or a list filter carries one.
	MsgInvalidStatus = "invalid status"

	// MsgInvalidTransition is returned when the requested status change is
	// not allowed from the request's current status, e.g. converting a
	// discarded request.
	MsgInvalidTransition = "invalid status transition"

	// MsgRequestNotFound is returned when the request id does not exist for
	// the caller's tenant.
	MsgRequestNotFound = "request not found"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgTokenIsExpiredOrInvalid is returned when a JWT bearer token is
	// either expired or cannot be verified (e.g. wrong signature).
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	// MsgNoTenantIDProvided is returned when a handler requires the tenant id
	// extracted from the token but none is present in the request context.
	MsgNoTenantIDProvided = "no tenant ID provided"

	// MsgStreamingUnsupported is returned when the response writer cannot
	// flush, so server-sent events cannot be delivered.
	MsgStreamingUnsupported = "streaming unsupported"

	// MsgServerShuttingDown is returned to new stream subscribers once the
	// server has begun its graceful shutdown.
	MsgServerShuttingDown = "server is shutting down"
)
