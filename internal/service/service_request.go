// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-request-inbox/internal/broker"
	"github.com/MKhiriev/go-request-inbox/internal/inbox"
	"github.com/MKhiriev/go-request-inbox/internal/logger"
	"github.com/MKhiriev/go-request-inbox/internal/store"
	"github.com/MKhiriev/go-request-inbox/internal/utils"
	"github.com/MKhiriev/go-request-inbox/models"
)

// requestService persists requests through the repository and publishes the
// canonical result of every successful mutation to the tenant's streams.
// Frames are published only after the write commits. Writes to one request
// hold its lock until the frame is published, so frames leave in commit
// order.
type requestService struct {
	repository store.RequestRepository
	broker     broker.Broker
	locks      requestLocks

	newID func() string
	now   func() time.Time

	logger *logger.Logger
}

func NewRequestService(repository store.RequestRepository, b broker.Broker, logger *logger.Logger) RequestService {
	ids := utils.NewUUIDGenerator()
	return &requestService{
		repository: repository,
		broker:     b,
		newID:      ids.Generate,
		now:        func() time.Time { return time.Now().UTC() },
		logger:     logger,
	}
}

func (s *requestService) Create(ctx context.Context, tenantID string, payload models.RequestPayload) (models.Request, error) {
	log := logger.FromContext(ctx)

	now := s.now()
	request := models.Request{
		ID:        s.newID(),
		Status:    models.StatusPending,
		Payload:   payload,
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := s.repository.Create(ctx, tenantID, request)
	if err != nil {
		log.Err(err).Str("func", "*requestService.Create").Str("tenant_id", tenantID).Msg("request creation ended with error")
		return models.Request{}, fmt.Errorf("request creation ended with error: %w", err)
	}

	s.broker.Publish(tenantID, models.InsertFrame{Request: created})
	log.Info().Str("func", "*requestService.Create").
		Str("tenant_id", tenantID).
		Str("request_id", created.ID).
		Int64("sequence_number", created.SequenceNumber).
		Msg("request created")

	return created, nil
}

func (s *requestService) Get(ctx context.Context, tenantID, id string) (models.Request, error) {
	return s.repository.Get(ctx, tenantID, id)
}

// List filters by status in storage and applies the text query with the same
// matching rules the inbox uses on the client.
func (s *requestService) List(ctx context.Context, tenantID string, filter models.ListFilter) ([]models.Request, error) {
	requests, err := s.repository.List(ctx, tenantID, filter.Status)
	if err != nil {
		return nil, err
	}

	if filter.Query == "" {
		return requests, nil
	}

	return inbox.View(inbox.Collection(requests), inbox.Filter{Query: filter.Query}), nil
}

func (s *requestService) UpdateStatus(ctx context.Context, tenantID, id string, status models.RequestStatus) (models.Request, error) {
	log := logger.FromContext(ctx)

	unlock := s.locks.lock(tenantID, id)
	defer unlock()

	current, err := s.repository.Get(ctx, tenantID, id)
	if err != nil {
		return models.Request{}, err
	}

	if err = checkStatusTransition(current.Status, status); err != nil {
		log.Warn().Err(err).Str("func", "*requestService.UpdateStatus").
			Str("request_id", id).
			Str("from", current.Status.String()).
			Str("to", status.String()).
			Msg("status transition rejected")
		return models.Request{}, err
	}

	if current.Status == status {
		return current, nil
	}

	updated, err := s.repository.UpdateStatus(ctx, tenantID, id, status)
	if errors.Is(err, store.ErrStatusConflict) {
		log.Warn().Err(err).Str("func", "*requestService.UpdateStatus").Str("request_id", id).Msg("status changed concurrently")
		return models.Request{}, fmt.Errorf("%w: %w", ErrInvalidTransition, err)
	}
	if err != nil {
		log.Err(err).Str("func", "*requestService.UpdateStatus").Str("request_id", id).Msg("status update ended with error")
		return models.Request{}, fmt.Errorf("status update ended with error: %w", err)
	}

	s.broker.Publish(tenantID, models.UpdateFrame{Request: updated})
	return updated, nil
}

func (s *requestService) Convert(ctx context.Context, tenantID, id string) (models.Request, error) {
	log := logger.FromContext(ctx)

	unlock := s.locks.lock(tenantID, id)
	defer unlock()

	current, err := s.repository.Get(ctx, tenantID, id)
	if err != nil {
		return models.Request{}, err
	}

	if err = checkConvert(current.Status); err != nil {
		log.Warn().Err(err).Str("func", "*requestService.Convert").Str("request_id", id).Msg("conversion rejected")
		return models.Request{}, err
	}

	converted, err := s.repository.Convert(ctx, tenantID, id, s.newID(), s.newID())
	if errors.Is(err, store.ErrStatusConflict) {
		log.Warn().Err(err).Str("func", "*requestService.Convert").Str("request_id", id).Msg("status changed concurrently")
		return models.Request{}, fmt.Errorf("%w: %w", ErrInvalidTransition, err)
	}
	if err != nil {
		log.Err(err).Str("func", "*requestService.Convert").Str("request_id", id).Msg("conversion ended with error")
		return models.Request{}, fmt.Errorf("conversion ended with error: %w", err)
	}

	s.broker.Publish(tenantID, models.UpdateFrame{Request: converted})
	return converted, nil
}

func (s *requestService) Delete(ctx context.Context, tenantID, id string) (string, error) {
	unlock := s.locks.lock(tenantID, id)
	defer unlock()

	if err := s.repository.Delete(ctx, tenantID, id); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*requestService.Delete").Str("request_id", id).Msg("deletion ended with error")
		return "", fmt.Errorf("deletion ended with error: %w", err)
	}

	s.broker.Publish(tenantID, models.DeleteFrame{RequestID: id})
	return id, nil
}

func (s *requestService) Subscribe(_ context.Context, tenantID string) (*broker.Subscription, error) {
	return s.broker.Subscribe(tenantID)
}

func (s *requestService) Unsubscribe(sub *broker.Subscription) {
	s.broker.Unsubscribe(sub)
}
