// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-request-inbox/models"
)

// RequestRepository persists budget requests scoped by tenant. Every method
// fails with [ErrRequestNotFound] when the tenant owns no request with the
// given id.
type RequestRepository interface {
	// Create stores request, assigning the next per-tenant sequence number,
	// and returns the stored value.
	Create(ctx context.Context, tenantID string, request models.Request) (models.Request, error)
	Get(ctx context.Context, tenantID, id string) (models.Request, error)
	// List returns the tenant's requests newest first. An empty status
	// matches every request.
	List(ctx context.Context, tenantID string, status models.RequestStatus) ([]models.Request, error)
	UpdateStatus(ctx context.Context, tenantID, id string, status models.RequestStatus) (models.Request, error)
	// Convert marks the request converted and links the created client
	// and budget.
	Convert(ctx context.Context, tenantID, id, clientID, budgetID string) (models.Request, error)
	Delete(ctx context.Context, tenantID, id string) error
}

// ErrorClassificator decides whether a failed database operation may be
// retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
