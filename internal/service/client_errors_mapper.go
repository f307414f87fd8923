// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-request-inbox/internal/adapter"
	"github.com/MKhiriev/go-request-inbox/internal/app"
)

// mapAdapterError translates the adapter's transport error into a service
// business error. The response body carries one of the app.Msg* texts when
// the status code alone is ambiguous.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	msg := extractBody(err)

	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return err

	case errors.Is(err, adapter.ErrBadRequest):
		if msg == app.MsgInvalidStatus {
			return ErrInvalidStatus
		}
		return ErrInvalidDataProvided

	case errors.Is(err, adapter.ErrUnauthorized), errors.Is(err, adapter.ErrForbidden):
		if msg == app.MsgTokenIsExpiredOrInvalid {
			return ErrTokenIsExpiredOrInvalid
		}
		return ErrUnauthorized

	case errors.Is(err, adapter.ErrNotFound):
		return ErrRequestNotFound

	case errors.Is(err, adapter.ErrConflict):
		return ErrInvalidTransition

	case errors.Is(err, adapter.ErrServiceUnavailable), errors.Is(err, adapter.ErrBadGateway):
		return ErrServerUnavailable

	case errors.Is(err, adapter.ErrInternalServerError):
		return ErrServerError
	}

	// anything else never produced a response
	return fmt.Errorf("%w: %w", ErrServerUnavailable, err)
}

// extractBody extracts the body from a message of the form "bad request: <body>"
func extractBody(err error) string {
	msg := err.Error()
	if idx := strings.Index(msg, ": "); idx != -1 {
		return msg[idx+2:]
	}
	return msg
}

// UserMessage returns the text shown in the error dialog for err.
func UserMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrRequestNotFound):
		return "This request no longer exists. It may have been deleted from another session."
	case errors.Is(err, ErrInvalidTransition):
		return "The request cannot move to that status from its current one."
	case errors.Is(err, ErrInvalidStatus):
		return "Unknown status."
	case errors.Is(err, ErrInvalidDataProvided):
		return "The server rejected the request data."
	case errors.Is(err, ErrTokenIsExpiredOrInvalid):
		return "Your access token is expired or invalid. Restart with a new token."
	case errors.Is(err, ErrUnauthorized):
		return "You are not allowed to do that."
	case errors.Is(err, ErrServerUnavailable):
		return "The server cannot be reached. Try again in a moment."
	case errors.Is(err, ErrServerError):
		return "The server failed to process the action. Try again later."
	case errors.Is(err, context.DeadlineExceeded):
		return "The server took too long to answer."
	default:
		return "Something went wrong: " + err.Error()
	}
}
