// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package stream

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/MKhiriev/go-request-inbox/internal/logger"
	"github.com/MKhiriev/go-request-inbox/models"
)

// Client turns a stream subscription into frames delivered to a sink.
type Client struct {
	dialer       Dialer
	sink         FrameSink
	maxEventSize int
	logger       *logger.Logger
}

// ClientOption customizes a [Client].
type ClientOption func(*Client)

// WithMaxEventSize limits the size of one event. Larger events are skipped
// and the subscription stays open.
func WithMaxEventSize(n int) ClientOption {
	return func(c *Client) {
		c.maxEventSize = n
	}
}

// NewClient creates a Client reading from dialer and delivering to sink.
func NewClient(dialer Dialer, sink FrameSink, logger *logger.Logger, opts ...ClientOption) *Client {
	c := &Client{
		dialer:       dialer,
		sink:         sink,
		maxEventSize: DefaultMaxEventSize,
		logger:       logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Open establishes one subscription and starts relaying its frames.
// The returned handle must be closed by the caller.
func (c *Client) Open(ctx context.Context) (*Handle, error) {
	ctx, cancel := context.WithCancel(ctx)

	body, err := c.dialer.OpenStream(ctx)
	if err != nil {
		cancel()
		return nil, fmt.Errorf("%w: %w", ErrOpenStream, err)
	}

	h := &Handle{
		body:   body,
		cancel: cancel,
		done:   make(chan struct{}),
	}

	go func() {
		defer close(h.done)
		h.err = c.relay(ctx, body)
	}()

	return h, nil
}

// relay reads events until the body ends, ctx is cancelled or the sink
// refuses a frame. Malformed, oversized and unknown frames are dropped.
func (c *Client) relay(ctx context.Context, body io.Reader) error {
	events := NewEventReaderSize(body, c.maxEventSize)
	for {
		event, err := events.Read()
		if errors.Is(err, ErrEventTooLarge) {
			c.logger.Warn().Str("event", event.Name).Int("limit", c.maxEventSize).Msg("dropping oversized frame")
			continue
		}
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			if errors.Is(err, io.EOF) {
				return ErrStreamEnded
			}
			return fmt.Errorf("error reading stream: %w", err)
		}

		frame, err := models.DecodeFrame([]byte(event.Data))
		switch {
		case errors.Is(err, models.ErrUnknownFrameType):
			c.logger.Debug().Err(err).Str("event", event.Name).Msg("ignoring unknown frame")
			continue
		case err != nil:
			c.logger.Warn().Err(err).Str("event", event.Name).Msg("dropping malformed frame")
			continue
		}

		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err = c.sink.Deliver(ctx, frame); err != nil {
			return fmt.Errorf("error delivering %s frame: %w", frame.Type(), err)
		}
	}
}

// Handle is one open subscription.
type Handle struct {
	body   io.ReadCloser
	cancel context.CancelFunc
	done   chan struct{}
	err    error

	closeOnce sync.Once
	closeErr  error
}

// Done is closed when the subscription stops relaying frames.
func (h *Handle) Done() <-chan struct{} {
	return h.done
}

// Err returns why the subscription stopped. Only valid after Done is closed.
func (h *Handle) Err() error {
	select {
	case <-h.done:
		return h.err
	default:
		return nil
	}
}

// Close cancels the subscription and waits until no more frames can be
// delivered. It is safe to call more than once.
func (h *Handle) Close() error {
	h.closeOnce.Do(func() {
		h.cancel()
		h.closeErr = h.body.Close()
		<-h.done
	})
	return h.closeErr
}
