// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the inbox client's transport to the request
// server.
//
// [ServerAdapter] covers the CRUD API and opening the live event stream.
// The package ships an HTTP/REST implementation ([NewHTTPServerAdapter]).
//
// Non-2xx responses are mapped by mapHTTPError to the sentinel errors in
// errors.go so callers can use [errors.Is] (e.g. [ErrConflict] for 409,
// [ErrNotFound] for 404).
package adapter

import (
	"context"
	"io"

	"github.com/MKhiriev/go-request-inbox/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines communication with the request server on behalf of
// one tenant. Every call carries the tenant bearer token.
type ServerAdapter interface {
	// List returns the tenant's requests, newest first, narrowed by filter.
	List(ctx context.Context, filter models.ListFilter) ([]models.Request, error)

	// Get returns the canonical value of one request.
	Get(ctx context.Context, id string) (models.Request, error)

	// Create submits a new request and returns it as stored.
	Create(ctx context.Context, payload models.RequestPayload) (models.Request, error)

	// UpdateStatus asks the server to move a request to status and returns
	// the canonical result. The server decides whether the transition is
	// allowed; [ErrConflict] means it is not.
	UpdateStatus(ctx context.Context, id string, status models.RequestStatus) (models.Request, error)

	// Convert turns a request into a client and a budget and returns the
	// request with its linked ids set.
	Convert(ctx context.Context, id string) (models.Request, error)

	// Delete removes a request and returns its id.
	Delete(ctx context.Context, id string) (string, error)

	// OpenStream subscribes to the tenant's live event stream and returns
	// the raw text/event-stream body. It returns once the server accepted
	// the subscription; the body stays open until ctx is cancelled, the
	// caller closes it or the server ends the stream.
	OpenStream(ctx context.Context) (io.ReadCloser, error)

	// GetServerVersion returns the server build version.
	GetServerVersion(ctx context.Context) (string, error)
}
