// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-request-inbox/internal/broker"
	"github.com/MKhiriev/go-request-inbox/internal/config"
	"github.com/MKhiriev/go-request-inbox/internal/logger"
)

type appInfoService struct {
	appVersion string
	broker     broker.Broker

	logger *logger.Logger
}

// NewAppInfoService reports the configured version and live stream activity
// of b. b may be nil, in which case stream stats are always zero.
func NewAppInfoService(cfg config.App, b broker.Broker, logger *logger.Logger) (AppInfoService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		appVersion: cfg.Version,
		broker:     b,
		logger:     logger,
	}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.appVersion
}

func (s *appInfoService) GetStreamStats(ctx context.Context) broker.Stats {
	if s.broker == nil {
		return broker.Stats{}
	}
	return s.broker.Stats()
}
