// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// mockWorker is a test implementation of the Worker interface
// that tracks how many times Run was called.
type mockWorker struct {
	runCount atomic.Int32
	err      error
}

func (m *mockWorker) Run(ctx context.Context) error {
	m.runCount.Add(1)
	if m.err != nil {
		return m.err
	}
	<-ctx.Done()
	return nil
}

func runWithTimeout(t *testing.T, ws *Workers, ctx context.Context) error {
	t.Helper()

	errCh := make(chan error, 1)
	go func() { errCh <- ws.Run(ctx) }()

	select {
	case err := <-errCh:
		return err
	case <-time.After(time.Second):
		t.Fatal("Workers.Run did not return")
		return nil
	}
}

func TestWorkers_Run_AllWorkersAreCalled(t *testing.T) {
	w1, w2, w3 := &mockWorker{}, &mockWorker{}, &mockWorker{}
	ws := New(w1, w2, w3)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	assert.NoError(t, runWithTimeout(t, ws, ctx))
	for i, w := range []*mockWorker{w1, w2, w3} {
		assert.Equal(t, int32(1), w.runCount.Load(), "worker[%d]", i)
	}
}

func TestWorkers_Run_Empty(t *testing.T) {
	ws := &Workers{}

	assert.NoError(t, runWithTimeout(t, ws, context.Background()))
}

func TestWorkers_Run_FailureCancelsOthers(t *testing.T) {
	boom := errors.New("boom")
	failing := &mockWorker{err: boom}
	waiting := &mockWorker{}

	err := runWithTimeout(t, New(waiting, failing), context.Background())

	assert.ErrorIs(t, err, boom)
	assert.Equal(t, int32(1), waiting.runCount.Load())
}

func TestWorkers_Run_JoinsErrors(t *testing.T) {
	errA, errB := errors.New("a"), errors.New("b")

	err := runWithTimeout(t, New(&mockWorker{err: errA}, &mockWorker{err: errB}), context.Background())

	assert.ErrorIs(t, err, errA)
	assert.ErrorIs(t, err, errB)
}
