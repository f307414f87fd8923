// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-request-inbox/internal/adapter"
	"github.com/MKhiriev/go-request-inbox/internal/inbox"
	"github.com/MKhiriev/go-request-inbox/internal/logger"
	"github.com/MKhiriev/go-request-inbox/models"
)

type clientInboxService struct {
	adapter adapter.ServerAdapter
	merger  FrameMerger

	logger *logger.Logger
}

// NewClientInboxService returns a [ClientInboxService] that talks to the
// server through serverAdapter and merges results into merger.
func NewClientInboxService(serverAdapter adapter.ServerAdapter, merger FrameMerger, logger *logger.Logger) ClientInboxService {
	return &clientInboxService{
		adapter: serverAdapter,
		merger:  merger,
		logger:  logger,
	}
}

func (c *clientInboxService) Create(ctx context.Context, payload models.RequestPayload) (models.Request, error) {
	created, err := c.adapter.Create(ctx, payload)
	if err != nil {
		return models.Request{}, c.fail("*clientInboxService.Create", "", err)
	}

	return created, c.merge(ctx, models.InsertFrame{Request: created})
}

func (c *clientInboxService) UpdateStatus(ctx context.Context, id string, status models.RequestStatus) (models.Request, error) {
	if !status.IsValid() {
		return models.Request{}, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	updated, err := c.adapter.UpdateStatus(ctx, id, status)
	if err != nil {
		return models.Request{}, c.fail("*clientInboxService.UpdateStatus", id, err)
	}

	return updated, c.merge(ctx, models.UpdateFrame{Request: updated})
}

func (c *clientInboxService) Convert(ctx context.Context, id string) (models.Request, error) {
	converted, err := c.adapter.Convert(ctx, id)
	if err != nil {
		return models.Request{}, c.fail("*clientInboxService.Convert", id, err)
	}

	return converted, c.merge(ctx, models.UpdateFrame{Request: converted})
}

func (c *clientInboxService) Delete(ctx context.Context, id string) error {
	deletedID, err := c.adapter.Delete(ctx, id)
	if err != nil {
		return c.fail("*clientInboxService.Delete", id, err)
	}

	return c.merge(ctx, models.DeleteFrame{RequestID: deletedID})
}

func (c *clientInboxService) ServerVersion(ctx context.Context) (string, error) {
	version, err := c.adapter.GetServerVersion(ctx)
	if err != nil {
		return "", c.fail("*clientInboxService.ServerVersion", "", err)
	}
	return version, nil
}

// merge feeds a canonical result into the inbox. A closed inbox means the
// view was unmounted, which is not the caller's failure.
func (c *clientInboxService) merge(ctx context.Context, f models.Frame) error {
	err := c.merger.Merge(ctx, f, inbox.OriginLocal)
	if errors.Is(err, inbox.ErrInboxClosed) {
		c.logger.Debug().Str("func", "*clientInboxService.merge").Msg("inbox closed, result not merged")
		return nil
	}
	if err != nil {
		return fmt.Errorf("merge %s result: %w", f.Type(), err)
	}
	return nil
}

func (c *clientInboxService) fail(funcName, id string, err error) error {
	mapped := mapAdapterError(err)
	c.logger.Err(err).Str("func", funcName).Str("request_id", id).Msg("server call failed")
	return mapped
}
