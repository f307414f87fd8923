// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors used by the authentication middleware when parsing the
// "Authorization" HTTP header. Callers can match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is not of the form "Bearer <token>".
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrNoTenantID is returned by tenant routes reached without a tenant in
	// the request context.
	ErrNoTenantID = errors.New("no tenant ID in request context")

	// ErrStreamingUnsupported is returned when the response writer cannot
	// flush partial responses.
	ErrStreamingUnsupported = errors.New("streaming unsupported")
)
