// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-request-inbox/internal/utils"
)

// auth enforces a bearer JWT on tenant routes.
//
// The token subject is the tenant id; it is stored in the request context
// via [utils.WithTenantID] so handlers never re-parse the token. Missing,
// malformed, expired or foreign tokens are rejected with 401.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			h.writeError(w, r, "*Handler.auth", ErrEmptyAuthorizationHeader)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			h.writeError(w, r, "*Handler.auth", fmt.Errorf("%w: %w", ErrInvalidAuthorizationHeader, err))
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			h.writeError(w, r, "*Handler.auth", err)
			return
		}

		tenantID, err := token.GetTenantID()
		if err != nil {
			h.writeError(w, r, "*Handler.auth", fmt.Errorf("%w: %w", ErrNoTenantID, err))
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithTenantID(ctx, tenantID)))
	})
}
