// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package grpc exposes the standard gRPC health service of the request inbox
// server so orchestrators can probe it without a tenant token.
package grpc

import (
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/MKhiriev/go-request-inbox/internal/logger"
	"github.com/MKhiriev/go-request-inbox/internal/service"
)

// StreamServiceName is the health service name reported for the live
// request stream, next to the overall "" service.
const StreamServiceName = "requestinbox.v1.RequestStream"

// Handler is the root gRPC transport handler.
//
// It owns the health server; serving status flips to NOT_SERVING when the
// server starts shutting down so load balancers drain it first.
type Handler struct {
	services *service.Services
	health   *health.Server

	logger *logger.Logger
}

// NewHandler constructs a [Handler]. Both services start as SERVING.
func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	h := &Handler{
		services: services,
		health:   health.NewServer(),
		logger:   logger,
	}
	h.health.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	h.health.SetServingStatus(StreamServiceName, healthpb.HealthCheckResponse_SERVING)

	logger.Debug().Msg("gRPC handler created")
	return h
}

// Register attaches the health service to server.
func (h *Handler) Register(server *grpc.Server) {
	healthpb.RegisterHealthServer(server, h.health)
}

// Shutdown marks every service NOT_SERVING. Later status updates are ignored.
func (h *Handler) Shutdown() {
	h.logger.Info().Str("func", "*Handler.Shutdown").Msg("health status set to NOT_SERVING")
	h.health.Shutdown()
}
