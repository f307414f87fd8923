// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-request-inbox/internal/config"
	"github.com/MKhiriev/go-request-inbox/internal/logger"
)

func newTestAuthSvc(duration time.Duration) AuthService {
	return NewAuthService(config.App{
		TokenSignKey:  "secret",
		TokenIssuer:   "request-inbox",
		TokenDuration: duration,
	}, logger.Nop())
}

func TestAuthService_CreateAndParseToken(t *testing.T) {
	svc := newTestAuthSvc(time.Hour)
	ctx := context.Background()

	token, err := svc.CreateToken(ctx, tenant)
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)

	parsed, err := svc.ParseToken(ctx, token.SignedString)
	require.NoError(t, err)
	gotTenant, err := parsed.GetTenantID()
	require.NoError(t, err)
	assert.Equal(t, tenant, gotTenant)
}

func TestAuthService_CreateToken_EmptyTenant(t *testing.T) {
	_, err := newTestAuthSvc(time.Hour).CreateToken(context.Background(), "")
	require.ErrorIs(t, err, ErrEmptyTenantID)
}

func TestAuthService_ParseToken_Rejections(t *testing.T) {
	ctx := context.Background()

	expired, err := newTestAuthSvc(-time.Minute).CreateToken(ctx, tenant)
	require.NoError(t, err)

	otherKey := NewAuthService(config.App{TokenSignKey: "other", TokenIssuer: "request-inbox", TokenDuration: time.Hour}, logger.Nop())
	foreign, err := otherKey.CreateToken(ctx, tenant)
	require.NoError(t, err)

	svc := newTestAuthSvc(time.Hour)
	for name, raw := range map[string]string{
		"expired":   expired.SignedString,
		"wrong key": foreign.SignedString,
		"garbage":   "not.a.jwt",
		"empty":     "",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := svc.ParseToken(ctx, raw)
			require.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
		})
	}
}
