// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-request-inbox/internal/config"
	"github.com/MKhiriev/go-request-inbox/internal/logger"
	"github.com/MKhiriev/go-request-inbox/internal/mock"
	"github.com/MKhiriev/go-request-inbox/internal/service"
	"github.com/MKhiriev/go-request-inbox/internal/utils"
	"github.com/MKhiriev/go-request-inbox/models"
)

const testTenant = "tenant-1"

var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

type testHandler struct {
	*Handler
	requests *mock.MockRequestService
	auth     *mock.MockAuthService
	appInfo  *mock.MockAppInfoService
}

func newTestHandler(t *testing.T) *testHandler {
	t.Helper()

	ctrl := gomock.NewController(t)
	th := &testHandler{
		requests: mock.NewMockRequestService(ctrl),
		auth:     mock.NewMockAuthService(ctrl),
		appInfo:  mock.NewMockAppInfoService(ctrl),
	}
	th.Handler = NewHandler(&service.Services{
		RequestService: th.requests,
		AuthService:    th.auth,
		AppInfoService: th.appInfo,
	}, config.Server{StreamKeepAlive: time.Hour}, logger.Nop())

	return th
}

// tenantRequest builds a request that already passed the auth middleware.
// urlParams are key/value pairs for chi.
func tenantRequest(t *testing.T, method, target string, body any, urlParams ...string) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if raw, ok := body.(string); ok {
			buf.WriteString(raw)
		} else {
			require.NoError(t, json.NewEncoder(&buf).Encode(body))
		}
	}

	req := httptest.NewRequest(method, target, &buf)

	rctx := chi.NewRouteContext()
	for i := 0; i+1 < len(urlParams); i += 2 {
		rctx.URLParams.Add(urlParams[i], urlParams[i+1])
	}
	ctx := context.WithValue(req.Context(), chi.RouteCtxKey, rctx)
	return req.WithContext(utils.WithTenantID(ctx, testTenant))
}

func sampleRequest(id string, status models.RequestStatus) models.Request {
	return models.Request{
		ID:             id,
		SequenceNumber: 1,
		Status:         status,
		Payload: models.RequestPayload{
			Name:  "Ana Souza",
			Phone: "+55 11 99999-0000",
			Email: "ana@example.com",
		},
		CreatedAt: testNow,
		UpdatedAt: testNow,
	}
}
