// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrInvalidStatus       = errors.New("invalid status")

	// ErrInvalidTransition is returned when the requested status change is
	// not allowed from the request's current status.
	ErrInvalidTransition = errors.New("invalid status transition")

	ErrEmptyTenantID = errors.New("empty tenant ID")

	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")

	ErrVersionIsNotSpecified = errors.New("version is not specified")
)

// Client-side errors produced by mapping adapter failures.
var (
	ErrRequestNotFound   = errors.New("request not found")
	ErrUnauthorized      = errors.New("not authorized")
	ErrServerUnavailable = errors.New("server unavailable")
	ErrServerError       = errors.New("server error")
)
