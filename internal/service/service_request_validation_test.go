// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-request-inbox/internal/mock"
	"github.com/MKhiriev/go-request-inbox/internal/validators"
	"github.com/MKhiriev/go-request-inbox/models"
)

func newTestValidationSvc(t *testing.T) (RequestService, *mock.MockRequestService) {
	t.Helper()
	inner := mock.NewMockRequestService(gomock.NewController(t))
	return NewRequestValidationService().Wrap(inner), inner
}

func TestRequestValidationService_Create(t *testing.T) {
	tests := []struct {
		name    string
		tenant  string
		payload models.RequestPayload
		wantErr error
	}{
		{name: "valid", tenant: tenant, payload: models.RequestPayload{Name: "Ana", Email: "ana@example.com"}},
		{name: "empty tenant", tenant: " ", payload: models.RequestPayload{Name: "Ana", Email: "ana@example.com"}, wantErr: ErrEmptyTenantID},
		{name: "no name", tenant: tenant, payload: models.RequestPayload{Email: "ana@example.com"}, wantErr: ErrInvalidDataProvided},
		{name: "no contact", tenant: tenant, payload: models.RequestPayload{Name: "Ana"}, wantErr: ErrInvalidDataProvided},
		{name: "bad email", tenant: tenant, payload: models.RequestPayload{Name: "Ana", Email: "not-an-email"}, wantErr: ErrInvalidDataProvided},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, inner := newTestValidationSvc(t)
			ctx := context.Background()

			if tt.wantErr == nil {
				inner.EXPECT().Create(ctx, tt.tenant, tt.payload).Return(models.Request{ID: "r1"}, nil)
			}

			got, err := svc.Create(ctx, tt.tenant, tt.payload)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "r1", got.ID)
		})
	}
}

func TestRequestValidationService_UpdateStatus_InvalidStatus(t *testing.T) {
	svc, _ := newTestValidationSvc(t)

	_, err := svc.UpdateStatus(context.Background(), tenant, "r1", "archived")
	require.ErrorIs(t, err, ErrInvalidStatus)
	require.ErrorIs(t, err, validators.ErrInvalidStatus)
}

func TestRequestValidationService_UpdateStatus_Valid(t *testing.T) {
	svc, inner := newTestValidationSvc(t)
	ctx := context.Background()

	inner.EXPECT().UpdateStatus(ctx, tenant, "r1", models.StatusInContact).Return(models.Request{ID: "r1"}, nil)

	_, err := svc.UpdateStatus(ctx, tenant, "r1", models.StatusInContact)
	require.NoError(t, err)
}

func TestRequestValidationService_EmptyID(t *testing.T) {
	svc, _ := newTestValidationSvc(t)
	ctx := context.Background()

	_, err := svc.Get(ctx, tenant, "")
	require.ErrorIs(t, err, ErrInvalidDataProvided)

	_, err = svc.Convert(ctx, tenant, "  ")
	require.ErrorIs(t, err, ErrInvalidDataProvided)

	_, err = svc.Delete(ctx, tenant, "")
	require.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestRequestValidationService_List(t *testing.T) {
	svc, inner := newTestValidationSvc(t)
	ctx := context.Background()

	_, err := svc.List(ctx, tenant, models.ListFilter{Status: "archived"})
	require.ErrorIs(t, err, ErrInvalidStatus)

	_, err = svc.List(ctx, tenant, models.ListFilter{Query: strings.Repeat("x", 10_000)})
	require.ErrorIs(t, err, ErrInvalidDataProvided)

	inner.EXPECT().List(ctx, tenant, models.ListFilter{Query: "ana"}).Return([]models.Request{}, nil)
	_, err = svc.List(ctx, tenant, models.ListFilter{Query: "ana"})
	require.NoError(t, err)
}

func TestRequestValidationService_Subscribe(t *testing.T) {
	svc, inner := newTestValidationSvc(t)
	ctx := context.Background()

	_, err := svc.Subscribe(ctx, "")
	require.ErrorIs(t, err, ErrEmptyTenantID)

	inner.EXPECT().Subscribe(ctx, tenant).Return(nil, nil)
	inner.EXPECT().Unsubscribe(gomock.Nil())

	_, err = svc.Subscribe(ctx, tenant)
	require.NoError(t, err)
	svc.Unsubscribe(nil)
}
