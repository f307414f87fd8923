// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Token wraps a tenant bearer JWT.
//
// It embeds [jwt.Token] for signing and parsing and [jwt.RegisteredClaims]
// for standard claim access. The "sub" claim carries the tenant id: every
// request, list and stream is scoped to it.
type Token struct {
	*jwt.Token `json:"-"`

	jwt.RegisteredClaims

	// SignedString is the compact JWS form sent in the Authorization header.
	SignedString string `json:"-"`

	// TenantID is a cached copy of the subject claim.
	TenantID string `json:"-"`
}

// GetTenantID returns the tenant id from the subject claim.
func (t *Token) GetTenantID() (string, error) {
	tenantID, err := t.GetSubject()
	if err != nil {
		return "", fmt.Errorf("error extracting TenantID from token: %w", err)
	}
	if tenantID == "" {
		return "", errors.New("empty tenant id in token subject")
	}

	return tenantID, nil
}

// String implements [fmt.Stringer] and returns the signed token.
func (t *Token) String() string {
	return t.SignedString
}
