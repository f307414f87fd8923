// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package stream

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-request-inbox/internal/logger"
)

// DefaultRetryDelay is the pause between a failed attempt and the next one.
const DefaultRetryDelay = 3 * time.Second

// Supervisor keeps one subscription alive for the lifetime of a mounted
// inbox view.
//
//	disconnected --Start--> connecting --opened--> open
//	connecting|open --failure--> errored --retry delay--> connecting
//	any --Stop--> disconnected
//
// Failures are logged and retried after a fixed delay, without limit.
// They never reach the caller.
type Supervisor struct {
	opener     Opener
	retryDelay time.Duration
	observer   Observer
	logger     *logger.Logger

	mu      sync.Mutex
	state   State
	started bool
	stopped bool
	cancel  context.CancelFunc
	done    chan struct{}
}

// NewSupervisor creates a supervisor for opener. A non-positive retryDelay
// selects DefaultRetryDelay. observer may be nil.
func NewSupervisor(opener Opener, retryDelay time.Duration, observer Observer, logger *logger.Logger) *Supervisor {
	if retryDelay <= 0 {
		retryDelay = DefaultRetryDelay
	}

	return &Supervisor{
		opener:     opener,
		retryDelay: retryDelay,
		observer:   observer,
		logger:     logger,
		state:      StateDisconnected,
	}
}

// Start begins connecting in the background. A supervisor can be started
// once; after Stop it stays disconnected.
func (s *Supervisor) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopped {
		return ErrSupervisorStopped
	}
	if s.started {
		return ErrSupervisorStarted
	}

	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})
	s.started = true

	go s.loop(ctx, s.done)
	return nil
}

// Run starts the supervisor and blocks until ctx is done, then stops it.
func (s *Supervisor) Run(ctx context.Context) error {
	if err := s.Start(ctx); err != nil {
		return err
	}
	<-ctx.Done()
	s.Stop()
	return nil
}

// Stop cancels the open subscription and any pending retry and waits for
// the supervisor to finish. No frame is delivered after Stop returns.
// Stop is idempotent.
func (s *Supervisor) Stop() {
	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()
		return
	}
	s.stopped = true
	cancel, done := s.cancel, s.done
	s.mu.Unlock()

	if cancel != nil {
		cancel()
		<-done
	}
	s.setState(StateDisconnected)
}

// State returns the current connection state.
func (s *Supervisor) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Supervisor) loop(ctx context.Context, done chan<- struct{}) {
	defer close(done)

	for attempt := 1; ; attempt++ {
		s.setState(StateConnecting)

		err := s.connect(ctx)
		if ctx.Err() != nil {
			return
		}
		s.logger.Warn().Err(err).Int("attempt", attempt).
			Dur("retry_in", s.retryDelay).Msg("request stream failed, retrying")
		s.setState(StateErrored)

		timer := time.NewTimer(s.retryDelay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case <-timer.C:
		}
	}
}

// connect runs one subscription until it fails or ctx is done.
func (s *Supervisor) connect(ctx context.Context) error {
	h, err := s.opener.Open(ctx)
	if err != nil {
		return err
	}
	defer h.Close()

	s.setState(StateOpen)
	s.logger.Info().Msg("request stream open")

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-h.Done():
		return h.Err()
	}
}

func (s *Supervisor) setState(next State) {
	s.mu.Lock()
	if s.state == next || (s.stopped && next != StateDisconnected) {
		s.mu.Unlock()
		return
	}
	s.state = next
	observer := s.observer
	s.mu.Unlock()

	s.logger.Debug().Str("state", next.String()).Msg("stream state changed")
	if observer != nil {
		observer(next)
	}
}
