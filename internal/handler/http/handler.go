// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"time"

	"github.com/MKhiriev/go-request-inbox/internal/config"
	"github.com/MKhiriev/go-request-inbox/internal/logger"
	"github.com/MKhiriev/go-request-inbox/internal/service"
)

const defaultStreamKeepAlive = 15 * time.Second

type Handler struct {
	services *service.Services

	// streamKeepAlive is the interval between ": ping" comments on idle
	// streams.
	streamKeepAlive time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	keepAlive := cfg.StreamKeepAlive
	if keepAlive <= 0 {
		keepAlive = defaultStreamKeepAlive
	}

	logger.Info().Dur("stream_keepalive", keepAlive).Msg("http handler created")
	return &Handler{
		services:        services,
		streamKeepAlive: keepAlive,
		logger:          logger,
	}
}
