// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package broker

import (
	"sync"
	"sync/atomic"

	"github.com/MKhiriev/go-request-inbox/internal/logger"
	"github.com/MKhiriev/go-request-inbox/models"
)

// DefaultBufferSize is the per-subscriber frame buffer used when New is
// given a non-positive size.
const DefaultBufferSize = 32

// Stats is a point-in-time summary of broker activity.
type Stats struct {
	Subscribers int
	Published   uint64
	Overflowed  uint64
}

type broker struct {
	mu          sync.RWMutex
	subscribers map[string]map[uint64]*Subscription
	closed      bool

	buffer int
	nextID atomic.Uint64

	published  atomic.Uint64
	overflowed atomic.Uint64

	logger *logger.Logger
}

// New creates a Broker whose subscribers buffer up to bufferSize frames.
func New(bufferSize int, log *logger.Logger) Broker {
	if bufferSize <= 0 {
		bufferSize = DefaultBufferSize
	}
	return &broker{
		subscribers: make(map[string]map[uint64]*Subscription),
		buffer:      bufferSize,
		logger:      log,
	}
}

func (b *broker) Subscribe(tenantID string) (*Subscription, error) {
	if tenantID == "" {
		return nil, ErrEmptyTenantID
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return nil, ErrBrokerClosed
	}

	sub := newSubscription(b.nextID.Add(1), tenantID, b.buffer)
	tenantSubs, ok := b.subscribers[tenantID]
	if !ok {
		tenantSubs = make(map[uint64]*Subscription)
		b.subscribers[tenantID] = tenantSubs
	}
	tenantSubs[sub.id] = sub

	b.logger.Debug().Str("func", "*broker.Subscribe").
		Str("tenant_id", tenantID).
		Uint64("subscription_id", sub.id).
		Msg("subscribed")

	return sub, nil
}

func (b *broker) Publish(tenantID string, frame models.Frame) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.closed || frame == nil {
		return
	}

	b.published.Add(1)

	for _, sub := range b.subscribers[tenantID] {
		if sub.offer(frame) {
			b.overflowed.Add(1)
			b.logger.Warn().Str("func", "*broker.Publish").
				Str("tenant_id", tenantID).
				Uint64("subscription_id", sub.id).
				Msg("subscriber buffer full, ending subscription")
		}
	}
}

func (b *broker) Unsubscribe(sub *Subscription) {
	if sub == nil {
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	sub.end()

	tenantSubs, ok := b.subscribers[sub.tenantID]
	if !ok {
		return
	}
	delete(tenantSubs, sub.id)
	if len(tenantSubs) == 0 {
		delete(b.subscribers, sub.tenantID)
	}
}

func (b *broker) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}
	b.closed = true

	for _, tenantSubs := range b.subscribers {
		for _, sub := range tenantSubs {
			sub.end()
		}
	}
	b.subscribers = nil

	b.logger.Info().Str("func", "*broker.Close").Msg("broker closed")
}

func (b *broker) Stats() Stats {
	b.mu.RLock()
	defer b.mu.RUnlock()

	count := 0
	for _, tenantSubs := range b.subscribers {
		count += len(tenantSubs)
	}

	return Stats{
		Subscribers: count,
		Published:   b.published.Load(),
		Overflowed:  b.overflowed.Load(),
	}
}
