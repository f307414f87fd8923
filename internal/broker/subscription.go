// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package broker

import (
	"sync"
	"sync/atomic"

	"github.com/MKhiriev/go-request-inbox/models"
)

// Subscription is one stream's view of the broker. Frames arrive on
// [Subscription.Frames] in publish order until [Subscription.Done] is closed.
type Subscription struct {
	id       uint64
	tenantID string

	frames chan models.Frame
	done   chan struct{}
	once   sync.Once

	overflowed atomic.Bool
	sent       atomic.Uint64
}

func newSubscription(id uint64, tenantID string, buffer int) *Subscription {
	return &Subscription{
		id:       id,
		tenantID: tenantID,
		frames:   make(chan models.Frame, buffer),
		done:     make(chan struct{}),
	}
}

// Frames is never closed; select on Done as well.
func (s *Subscription) Frames() <-chan models.Frame {
	return s.frames
}

// Done is closed when the subscription ends: unsubscribed, overflowed, or
// the broker closed.
func (s *Subscription) Done() <-chan struct{} {
	return s.done
}

// Overflowed reports whether the subscription ended because its buffer was
// full when a frame was published.
func (s *Subscription) Overflowed() bool {
	return s.overflowed.Load()
}

func (s *Subscription) TenantID() string {
	return s.tenantID
}

// Sent returns the number of frames queued for this subscriber.
func (s *Subscription) Sent() uint64 {
	return s.sent.Load()
}

func (s *Subscription) end() {
	s.once.Do(func() { close(s.done) })
}

func (s *Subscription) ended() bool {
	select {
	case <-s.done:
		return true
	default:
		return false
	}
}

// offer queues frame without blocking. A full buffer ends the subscription;
// only the call that caused the overflow returns true.
func (s *Subscription) offer(frame models.Frame) (overflowed bool) {
	if s.ended() {
		return false
	}

	select {
	case s.frames <- frame:
		s.sent.Add(1)
		return false
	default:
		overflowed = s.overflowed.CompareAndSwap(false, true)
		s.end()
		return overflowed
	}
}
