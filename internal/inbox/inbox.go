// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package inbox

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/MKhiriev/go-request-inbox/internal/logger"
	"github.com/MKhiriev/go-request-inbox/models"
)

// DefaultQueueSize is used by [New] when queueSize is not positive.
const DefaultQueueSize = 64

// Origin tells where a merged frame comes from.
type Origin int

const (
	// OriginStream marks frames pushed by the server over the stream.
	OriginStream Origin = iota
	// OriginLocal marks canonical results of mutating calls made by this
	// client.
	OriginLocal
)

func (o Origin) String() string {
	if o == OriginLocal {
		return "local"
	}
	return "stream"
}

// Notification announces a request that arrived over the stream. Opening it
// selects the request.
type Notification struct {
	RequestID string
	Name      string
}

// Snapshot is an immutable copy of the inbox state handed to the UI.
type Snapshot struct {
	Requests     Collection
	Selection    Selection
	Notification *Notification

	// Version grows by one for every processed message.
	Version uint64
}

type state struct {
	requests     Collection
	selection    Selection
	notification *Notification
	version      uint64
}

type mutation func(s *state)

// Inbox owns the collection and the selection of one mounted inbox view.
//
// Every change goes through a FIFO queue drained by [Inbox.Run], so the
// state is only ever touched by a single goroutine. Callers enqueue with
// [Inbox.Merge], [Inbox.Select] and friends and observe results through
// [Inbox.Updates] or [Inbox.Snapshot].
type Inbox struct {
	queue   chan mutation
	updates chan Snapshot
	done    chan struct{}

	closeOnce sync.Once
	closed    atomic.Bool

	mu      sync.RWMutex
	current Snapshot

	logger *logger.Logger
}

// New creates an empty inbox whose queue holds up to queueSize pending
// messages.
func New(queueSize int, log *logger.Logger) *Inbox {
	if queueSize <= 0 {
		queueSize = DefaultQueueSize
	}

	return &Inbox{
		queue:   make(chan mutation, queueSize),
		updates: make(chan Snapshot, 1),
		done:    make(chan struct{}),
		logger:  log,
	}
}

// Merge enqueues f for reconciliation. It is the single entry point for
// both stream frames and local mutation results; applying the same
// canonical value twice is a no-op.
//
// Merge blocks while the queue is full, until ctx is done or the inbox is
// closed.
func (i *Inbox) Merge(ctx context.Context, f models.Frame, origin Origin) error {
	if f == nil {
		return ErrNilFrame
	}

	return i.enqueue(ctx, func(s *state) {
		s.merge(f, origin)
	})
}

// Deliver merges a frame received from the stream.
func (i *Inbox) Deliver(ctx context.Context, f models.Frame) error {
	return i.Merge(ctx, f, OriginStream)
}

// Select points the selection at the request with id. Unknown ids clear it.
func (i *Inbox) Select(ctx context.Context, id string) error {
	return i.enqueue(ctx, func(s *state) {
		s.selection = Select(s.requests, id)
	})
}

// ClearSelection drops the current selection.
func (i *Inbox) ClearSelection(ctx context.Context) error {
	return i.enqueue(ctx, func(s *state) {
		s.selection = Selection{}
	})
}

// OpenNotification selects the request of the pending notification and
// dismisses it.
func (i *Inbox) OpenNotification(ctx context.Context) error {
	return i.enqueue(ctx, func(s *state) {
		if s.notification == nil {
			return
		}
		s.selection = Select(s.requests, s.notification.RequestID)
		s.notification = nil
	})
}

// DismissNotification drops the pending notification.
func (i *Inbox) DismissNotification(ctx context.Context) error {
	return i.enqueue(ctx, func(s *state) {
		s.notification = nil
	})
}

// Updates delivers the latest snapshot after each processed message. Slow
// readers only see the most recent one. The channel is closed when Run
// returns.
func (i *Inbox) Updates() <-chan Snapshot {
	return i.updates
}

// Snapshot returns the most recently published state.
func (i *Inbox) Snapshot() Snapshot {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.current
}

// Run drains the queue until ctx is done or Close is called. It must be
// called at most once.
func (i *Inbox) Run(ctx context.Context) error {
	defer close(i.updates)

	var st state
	for {
		select {
		case <-ctx.Done():
			i.Close()
			return nil
		case <-i.done:
			return nil
		case m := <-i.queue:
			if i.closed.Load() {
				i.logger.Debug().Msg("inbox closed, dropping queued message")
				continue
			}
			m(&st)
			st.version++
			i.publish(st.snapshot())
		}
	}
}

// Close stops accepting messages. Messages still queued are dropped.
// Close is idempotent.
func (i *Inbox) Close() {
	i.closeOnce.Do(func() {
		i.closed.Store(true)
		close(i.done)
	})
}

func (i *Inbox) enqueue(ctx context.Context, m mutation) error {
	if i.closed.Load() {
		return ErrInboxClosed
	}

	select {
	case i.queue <- m:
		return nil
	case <-i.done:
		return ErrInboxClosed
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (i *Inbox) publish(snap Snapshot) {
	i.mu.Lock()
	i.current = snap
	i.mu.Unlock()

	select {
	case i.updates <- snap:
		return
	default:
	}

	// Run is the only sender: replace the stale snapshot with the new one.
	select {
	case <-i.updates:
	default:
	}
	select {
	case i.updates <- snap:
	default:
	}
}

func (s *state) merge(f models.Frame, origin Origin) {
	prev := s.requests
	s.requests = Apply(prev, f)
	s.selection = s.selection.Follow(s.requests)

	if insert, ok := f.(models.InsertFrame); ok && origin == OriginStream && prev.IndexOf(insert.Request.ID) < 0 {
		s.notification = &Notification{
			RequestID: insert.Request.ID,
			Name:      insert.Request.Payload.Name,
		}
	}

	if s.notification != nil && s.requests.IndexOf(s.notification.RequestID) < 0 {
		s.notification = nil
	}
}

func (s *state) snapshot() Snapshot {
	var n *Notification
	if s.notification != nil {
		copied := *s.notification
		n = &copied
	}

	return Snapshot{
		Requests:     s.requests,
		Selection:    s.selection,
		Notification: n,
		Version:      s.version,
	}
}
