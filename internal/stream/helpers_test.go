// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package stream

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/MKhiriev/go-request-inbox/models"
)

// recordingSink collects delivered frames.
type recordingSink struct {
	mu     sync.Mutex
	frames []models.Frame
	err    error
}

func (s *recordingSink) Deliver(_ context.Context, f models.Frame) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.frames = append(s.frames, f)
	return nil
}

func (s *recordingSink) Frames() []models.Frame {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Frame(nil), s.frames...)
}

// pipeDialer hands out io.Pipe readers; the test writes frames into the
// matching writer. The first failures calls fail.
type pipeDialer struct {
	mu       sync.Mutex
	failures int
	attempts int
	writers  []*io.PipeWriter
}

func (d *pipeDialer) OpenStream(ctx context.Context) (io.ReadCloser, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.attempts++
	if d.attempts <= d.failures {
		return nil, errors.New("connection refused")
	}

	pr, pw := io.Pipe()
	d.writers = append(d.writers, pw)
	return pr, nil
}

func (d *pipeDialer) Attempts() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.attempts
}

func (d *pipeDialer) Writer(i int) *io.PipeWriter {
	d.mu.Lock()
	defer d.mu.Unlock()
	if i >= len(d.writers) {
		return nil
	}
	return d.writers[i]
}

func (d *pipeDialer) Connections() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.writers)
}

func sseFrame(t models.FrameType, data string) string {
	return fmt.Sprintf("event: %s\ndata: %s\n\n", t, data)
}

// stateRecorder is an Observer that remembers every transition.
type stateRecorder struct {
	mu     sync.Mutex
	states []State
}

func (r *stateRecorder) Observe(s State) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.states = append(r.states, s)
}

func (r *stateRecorder) States() []State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]State(nil), r.states...)
}
