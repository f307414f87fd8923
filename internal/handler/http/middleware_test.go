// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-request-inbox/internal/logger"
	"github.com/MKhiriev/go-request-inbox/internal/service"
	"github.com/MKhiriev/go-request-inbox/internal/utils"
	"github.com/MKhiriev/go-request-inbox/models"
)

func TestAuth(t *testing.T) {
	tests := []struct {
		name       string
		header     string
		token      *models.Token
		parseErr   error
		wantStatus int
		wantTenant string
	}{
		{
			name:       "valid token",
			header:     "Bearer good",
			token:      &models.Token{RegisteredClaims: jwt.RegisteredClaims{Subject: testTenant}},
			wantStatus: http.StatusOK,
			wantTenant: testTenant,
		},
		{
			name:       "lowercase scheme",
			header:     "bearer good",
			token:      &models.Token{RegisteredClaims: jwt.RegisteredClaims{Subject: testTenant}},
			wantStatus: http.StatusOK,
			wantTenant: testTenant,
		},
		{
			name:       "missing header",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "not a bearer header",
			header:     "Basic dXNlcjpwYXNz",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "token without value",
			header:     "Bearer",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "expired or invalid token",
			header:     "Bearer bad",
			token:      &models.Token{},
			parseErr:   service.ErrTokenIsExpiredOrInvalid,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "token without subject",
			header:     "Bearer good",
			token:      &models.Token{},
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			th := newTestHandler(t)
			if tt.token != nil {
				tokenString := strings.Fields(tt.header)[1]
				th.auth.EXPECT().ParseToken(gomock.Any(), tokenString).Return(*tt.token, tt.parseErr)
			}

			var gotTenant string
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotTenant, _ = utils.GetTenantIDFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/api/requests", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rr := httptest.NewRecorder()
			th.Handler.auth(next).ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantTenant, gotTenant)
		})
	}
}

func TestWithTraceID(t *testing.T) {
	tests := []struct {
		name          string
		incoming      string
		wantSame      bool
		wantGenerated bool
	}{
		{name: "reuses incoming id", incoming: "my-trace-id", wantSame: true},
		{name: "generates id when absent", wantGenerated: true},
		{name: "replaces oversized id", incoming: strings.Repeat("x", maxTraceIDLength+1), wantGenerated: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := &Handler{logger: logger.Nop()}

			var nextCalled bool
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				assert.NotNil(t, logger.FromRequest(r))
			})

			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			if tt.incoming != "" {
				req.Header.Set(traceIDHeader, tt.incoming)
			}
			rr := httptest.NewRecorder()
			h.withTraceID(next).ServeHTTP(rr, req)

			require.True(t, nextCalled)
			got := rr.Header().Get(traceIDHeader)
			if tt.wantSame {
				assert.Equal(t, tt.incoming, got)
			}
			if tt.wantGenerated {
				_, err := uuid.Parse(got)
				assert.NoError(t, err)
			}
		})
	}
}

func TestWithLogging(t *testing.T) {
	tests := []struct {
		name         string
		status       int
		body         string
		wantContains []string
	}{
		{
			name:   "success",
			status: http.StatusOK,
			body:   "OK",
			wantContains: []string{
				`"level":"info"`, `"method":"GET"`, `"uri":"/api/requests"`, `"status":200`, `"size":2`,
			},
		},
		{
			name:         "server error logged as warning",
			status:       http.StatusServiceUnavailable,
			wantContains: []string{`"level":"warn"`, `"status":503`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			l := zerolog.New(&buf)

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			req := httptest.NewRequest(http.MethodGet, "/api/requests", nil)
			req = req.WithContext(l.WithContext(req.Context()))

			h := &Handler{logger: logger.Nop()}
			h.withLogging(next).ServeHTTP(httptest.NewRecorder(), req)

			for _, want := range tt.wantContains {
				assert.Contains(t, buf.String(), want)
			}
			assert.Contains(t, buf.String(), `"duration":`)
		})
	}
}

func TestResponseWriter(t *testing.T) {
	t.Run("first status wins", func(t *testing.T) {
		rr := httptest.NewRecorder()
		rw := &responseWriter{ResponseWriter: rr}

		rw.WriteHeader(http.StatusCreated)
		rw.WriteHeader(http.StatusInternalServerError)

		assert.Equal(t, http.StatusCreated, rw.status)
		assert.Equal(t, http.StatusCreated, rr.Code)
	})

	t.Run("write implies 200 and counts bytes", func(t *testing.T) {
		rw := &responseWriter{ResponseWriter: httptest.NewRecorder()}

		_, _ = rw.Write([]byte("abc"))
		_, _ = rw.Write([]byte("de"))

		assert.Equal(t, http.StatusOK, rw.status)
		assert.Equal(t, 5, rw.size)
	})

	t.Run("flush reaches the underlying writer", func(t *testing.T) {
		rr := httptest.NewRecorder()
		rw := &responseWriter{ResponseWriter: rr}

		var w http.ResponseWriter = rw
		flusher, ok := w.(http.Flusher)
		require.True(t, ok)
		flusher.Flush()

		assert.True(t, rr.Flushed)
		assert.Equal(t, http.StatusOK, rw.status)
		assert.Same(t, rr, rw.Unwrap())
	})
}

func TestCheckHTTPMethod(t *testing.T) {
	router := chi.NewRouter()
	router.Get("/api/requests", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	router.Get("/api/requests/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	router.Delete("/api/requests/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	router.MethodNotAllowed(CheckHTTPMethod(router))

	tests := []struct {
		method     string
		path       string
		wantStatus int
	}{
		{http.MethodGet, "/api/requests", http.StatusOK},
		{http.MethodPut, "/api/requests", http.StatusNotFound},
		{http.MethodDelete, "/api/requests/r1", http.StatusOK},
		{http.MethodPatch, "/api/requests/r1", http.StatusNotFound},
		{http.MethodGet, "/api/unknown", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, tt.wantStatus, rr.Code)
		})
	}
}
