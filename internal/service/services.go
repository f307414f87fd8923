// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-request-inbox/internal/broker"
	"github.com/MKhiriev/go-request-inbox/internal/config"
	"github.com/MKhiriev/go-request-inbox/internal/logger"
	"github.com/MKhiriev/go-request-inbox/internal/store"
)

type Services struct {
	AuthService    AuthService
	RequestService RequestService
	AppInfoService AppInfoService
}

// NewServices wires the server use cases. The request service is wrapped
// with input validation.
func NewServices(repositories *store.Repositories, b broker.Broker, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, b, logger)
	if err != nil {
		return nil, err
	}

	requests := NewRequestService(repositories.RequestRepository, b, logger)

	return &Services{
		AuthService:    NewAuthService(cfg.App, logger),
		RequestService: NewRequestValidationService().Wrap(requests),
		AppInfoService: appInfo,
	}, nil
}
