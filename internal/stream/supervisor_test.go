// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package stream

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/MKhiriev/go-request-inbox/internal/logger"
	"github.com/MKhiriev/go-request-inbox/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSupervisor(dialer *pipeDialer, sink FrameSink, delay time.Duration, rec *stateRecorder) *Supervisor {
	client := NewClient(dialer, sink, logger.Nop())
	return NewSupervisor(client, delay, rec.Observe, logger.Nop())
}

func waitState(t *testing.T, s *Supervisor, want State) {
	t.Helper()
	require.Eventually(t, func() bool { return s.State() == want }, 2*time.Second, 5*time.Millisecond,
		"state never became %s", want)
}

func TestSupervisor_InitialStateIsDisconnected(t *testing.T) {
	s := NewSupervisor(NewClient(&pipeDialer{}, &recordingSink{}, logger.Nop()), 0, nil, logger.Nop())

	assert.Equal(t, StateDisconnected, s.State())
	assert.Equal(t, DefaultRetryDelay, s.retryDelay)
}

func TestSupervisor_OpensStream(t *testing.T) {
	dialer := &pipeDialer{}
	rec := &stateRecorder{}
	s := newTestSupervisor(dialer, &recordingSink{}, 10*time.Millisecond, rec)

	require.NoError(t, s.Start(context.Background()))
	defer s.Stop()

	waitState(t, s, StateOpen)
	assert.Equal(t, []State{StateConnecting, StateOpen}, rec.States())
}

func TestSupervisor_RetriesAfterFailedAttempts(t *testing.T) {
	dialer := &pipeDialer{failures: 2}
	rec := &stateRecorder{}
	s := newTestSupervisor(dialer, &recordingSink{}, 10*time.Millisecond, rec)

	require.NoError(t, s.Start(context.Background()))
	defer s.Stop()

	waitState(t, s, StateOpen)
	assert.Equal(t, 3, dialer.Attempts())
	assert.Equal(t, []State{
		StateConnecting, StateErrored,
		StateConnecting, StateErrored,
		StateConnecting, StateOpen,
	}, rec.States())
}

func TestSupervisor_ReconnectsWhenStreamEnds(t *testing.T) {
	dialer := &pipeDialer{}
	sink := &recordingSink{}
	s := newTestSupervisor(dialer, sink, 10*time.Millisecond, &stateRecorder{})

	require.NoError(t, s.Start(context.Background()))
	defer s.Stop()

	waitState(t, s, StateOpen)
	require.NoError(t, dialer.Writer(0).Close())

	require.Eventually(t, func() bool { return dialer.Connections() == 2 }, 2*time.Second, 5*time.Millisecond)
	waitState(t, s, StateOpen)

	_, err := io.WriteString(dialer.Writer(1), sseFrame(models.FrameRefresh, `{"type":"refresh","requests":[]}`))
	require.NoError(t, err)
	require.Eventually(t, func() bool { return len(sink.Frames()) == 1 }, time.Second, 5*time.Millisecond)
}

func TestSupervisor_StopIsSynchronousAndNoFrameAfterStop(t *testing.T) {
	dialer := &pipeDialer{}
	sink := &recordingSink{}
	rec := &stateRecorder{}
	s := newTestSupervisor(dialer, sink, 10*time.Millisecond, rec)

	require.NoError(t, s.Start(context.Background()))
	waitState(t, s, StateOpen)

	s.Stop()

	assert.Equal(t, StateDisconnected, s.State())
	_, err := io.WriteString(dialer.Writer(0), sseFrame(models.FrameDelete, `{"type":"delete","requestId":"a"}`))
	assert.Error(t, err, "transport must be closed by Stop")
	assert.Empty(t, sink.Frames())

	states := rec.States()
	assert.Equal(t, StateDisconnected, states[len(states)-1])
}

func TestSupervisor_StopCancelsPendingRetry(t *testing.T) {
	dialer := &pipeDialer{failures: 1}
	s := newTestSupervisor(dialer, &recordingSink{}, time.Hour, &stateRecorder{})

	require.NoError(t, s.Start(context.Background()))
	waitState(t, s, StateErrored)

	stopped := make(chan struct{})
	go func() {
		s.Stop()
		close(stopped)
	}()

	select {
	case <-stopped:
	case <-time.After(time.Second):
		t.Fatal("Stop waited for the retry timer")
	}
	assert.Equal(t, 1, dialer.Attempts())
	assert.Equal(t, StateDisconnected, s.State())
}

func TestSupervisor_StopIsIdempotentAndTerminal(t *testing.T) {
	s := newTestSupervisor(&pipeDialer{}, &recordingSink{}, 10*time.Millisecond, &stateRecorder{})

	require.NoError(t, s.Start(context.Background()))
	assert.ErrorIs(t, s.Start(context.Background()), ErrSupervisorStarted)

	assert.NotPanics(t, func() {
		s.Stop()
		s.Stop()
	})
	assert.ErrorIs(t, s.Start(context.Background()), ErrSupervisorStopped)
}

func TestSupervisor_StopWithoutStart(t *testing.T) {
	rec := &stateRecorder{}
	s := newTestSupervisor(&pipeDialer{}, &recordingSink{}, 10*time.Millisecond, rec)

	assert.NotPanics(t, s.Stop)
	assert.Equal(t, StateDisconnected, s.State())
	assert.Empty(t, rec.States())
}

func TestSupervisor_RunStopsOnContextCancel(t *testing.T) {
	dialer := &pipeDialer{}
	s := newTestSupervisor(dialer, &recordingSink{}, 10*time.Millisecond, &stateRecorder{})

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- s.Run(ctx) }()

	waitState(t, s, StateOpen)
	cancel()

	select {
	case err := <-errCh:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("Run did not return")
	}
	assert.Equal(t, StateDisconnected, s.State())
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "disconnected", StateDisconnected.String())
	assert.Equal(t, "connecting", StateConnecting.String())
	assert.Equal(t, "open", StateOpen.String())
	assert.Equal(t, "errored", StateErrored.String())
	assert.Equal(t, "unknown", State(42).String())
}
