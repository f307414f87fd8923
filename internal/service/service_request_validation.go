// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-request-inbox/internal/broker"
	"github.com/MKhiriev/go-request-inbox/internal/validators"
	"github.com/MKhiriev/go-request-inbox/models"
)

// RequestValidationService checks every input before it reaches the wrapped
// RequestService. Status errors surface as [ErrInvalidStatus], everything
// else as [ErrInvalidDataProvided].
type RequestValidationService struct {
	inner     RequestService
	validator validators.Validator
}

func NewRequestValidationService() RequestServiceWrapper {
	return &RequestValidationService{
		validator: validators.NewRequestValidator(),
	}
}

func (v *RequestValidationService) Wrap(inner RequestService) RequestService {
	v.inner = inner
	return v
}

func (v *RequestValidationService) Create(ctx context.Context, tenantID string, payload models.RequestPayload) (models.Request, error) {
	if err := checkTenant(tenantID); err != nil {
		return models.Request{}, err
	}
	if err := v.validator.Validate(ctx, payload); err != nil {
		return models.Request{}, validationError(err)
	}

	return v.inner.Create(ctx, tenantID, payload)
}

func (v *RequestValidationService) Get(ctx context.Context, tenantID, id string) (models.Request, error) {
	if err := checkTenantAndID(tenantID, id); err != nil {
		return models.Request{}, err
	}

	return v.inner.Get(ctx, tenantID, id)
}

func (v *RequestValidationService) List(ctx context.Context, tenantID string, filter models.ListFilter) ([]models.Request, error) {
	if err := checkTenant(tenantID); err != nil {
		return nil, err
	}
	if err := v.validator.Validate(ctx, filter); err != nil {
		return nil, validationError(err)
	}

	return v.inner.List(ctx, tenantID, filter)
}

func (v *RequestValidationService) UpdateStatus(ctx context.Context, tenantID, id string, status models.RequestStatus) (models.Request, error) {
	if err := checkTenantAndID(tenantID, id); err != nil {
		return models.Request{}, err
	}
	if err := v.validator.Validate(ctx, models.StatusUpdateRequest{Status: status}); err != nil {
		return models.Request{}, validationError(err)
	}

	return v.inner.UpdateStatus(ctx, tenantID, id, status)
}

func (v *RequestValidationService) Convert(ctx context.Context, tenantID, id string) (models.Request, error) {
	if err := checkTenantAndID(tenantID, id); err != nil {
		return models.Request{}, err
	}

	return v.inner.Convert(ctx, tenantID, id)
}

func (v *RequestValidationService) Delete(ctx context.Context, tenantID, id string) (string, error) {
	if err := checkTenantAndID(tenantID, id); err != nil {
		return "", err
	}

	return v.inner.Delete(ctx, tenantID, id)
}

func (v *RequestValidationService) Subscribe(ctx context.Context, tenantID string) (*broker.Subscription, error) {
	if err := checkTenant(tenantID); err != nil {
		return nil, err
	}

	return v.inner.Subscribe(ctx, tenantID)
}

func (v *RequestValidationService) Unsubscribe(sub *broker.Subscription) {
	v.inner.Unsubscribe(sub)
}

func checkTenant(tenantID string) error {
	if strings.TrimSpace(tenantID) == "" {
		return ErrEmptyTenantID
	}
	return nil
}

func checkTenantAndID(tenantID, id string) error {
	if err := checkTenant(tenantID); err != nil {
		return err
	}
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, validators.ErrInvalidRequestID)
	}
	return nil
}

func validationError(err error) error {
	if errors.Is(err, validators.ErrInvalidStatus) {
		return fmt.Errorf("%w: %w", ErrInvalidStatus, err)
	}
	return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
}
