// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-request-inbox/internal/broker"
	"github.com/MKhiriev/go-request-inbox/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// RequestService is the server-side use case layer for budget requests.
// Every method is scoped to a tenant; successful mutations are published to
// the tenant's live streams.
type RequestService interface {
	Create(ctx context.Context, tenantID string, payload models.RequestPayload) (models.Request, error)
	Get(ctx context.Context, tenantID, id string) (models.Request, error)
	List(ctx context.Context, tenantID string, filter models.ListFilter) ([]models.Request, error)

	// UpdateStatus moves the request to status. Converting goes through
	// Convert, and a converted request cannot change status again.
	UpdateStatus(ctx context.Context, tenantID, id string, status models.RequestStatus) (models.Request, error)

	// Convert turns the request into a client and a budget, returning it
	// with status converted and both linked ids set.
	Convert(ctx context.Context, tenantID, id string) (models.Request, error)

	// Delete removes the request and returns its id.
	Delete(ctx context.Context, tenantID, id string) (string, error)

	// Subscribe opens a live feed of the tenant's frames. Callers must
	// Unsubscribe when done.
	Subscribe(ctx context.Context, tenantID string) (*broker.Subscription, error)
	Unsubscribe(sub *broker.Subscription)
}

// RequestServiceWrapper defines middleware composition for RequestService.
// Implementations wrap an existing RequestService to add behavior such as
// validation.
type RequestServiceWrapper interface {
	Wrap(RequestService) RequestService
}

type AuthService interface {
	// CreateToken issues a bearer token whose subject is tenantID.
	CreateToken(ctx context.Context, tenantID string) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	// GetStreamStats summarises subscribers and published frames.
	GetStreamStats(ctx context.Context) broker.Stats
}
