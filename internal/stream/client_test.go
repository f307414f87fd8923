// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package stream

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-request-inbox/internal/logger"
	"github.com/MKhiriev/go-request-inbox/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openClient(t *testing.T, sink FrameSink) (*Handle, *io.PipeWriter) {
	t.Helper()

	dialer := &pipeDialer{}
	h, err := NewClient(dialer, sink, logger.Nop()).Open(context.Background())
	require.NoError(t, err)
	t.Cleanup(func() { _ = h.Close() })

	return h, dialer.Writer(0)
}

func write(t *testing.T, w *io.PipeWriter, s string) {
	t.Helper()
	_, err := io.WriteString(w, s)
	require.NoError(t, err)
}

func TestClient_DeliversFramesInArrivalOrder(t *testing.T) {
	sink := &recordingSink{}
	_, w := openClient(t, sink)

	write(t, w, sseFrame(models.FrameRefresh, `{"type":"refresh","requests":[{"id":"a"}]}`))
	write(t, w, sseFrame(models.FrameInsert, `{"type":"insert","request":{"id":"b"}}`))
	write(t, w, sseFrame(models.FrameDelete, `{"type":"delete","requestId":"a"}`))

	require.Eventually(t, func() bool { return len(sink.Frames()) == 3 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, []models.Frame{
		models.RefreshFrame{Requests: []models.Request{{ID: "a"}}},
		models.InsertFrame{Request: models.Request{ID: "b"}},
		models.DeleteFrame{RequestID: "a"},
	}, sink.Frames())
}

func TestClient_MalformedFrameIsDroppedAndStreamStaysOpen(t *testing.T) {
	sink := &recordingSink{}
	h, w := openClient(t, sink)

	write(t, w, "data: {not json\n\n")
	write(t, w, sseFrame(models.FrameInsert, `{"type":"insert","request":{}}`))
	write(t, w, sseFrame(models.FrameDelete, `{"type":"delete"}`))
	write(t, w, sseFrame(models.FrameDelete, `{"type":"delete","requestId":"x"}`))

	require.Eventually(t, func() bool { return len(sink.Frames()) == 1 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, []models.Frame{models.DeleteFrame{RequestID: "x"}}, sink.Frames())

	select {
	case <-h.Done():
		t.Fatal("stream closed after malformed frame")
	default:
	}
}

func TestClient_OversizedFrameIsDroppedAndStreamStaysOpen(t *testing.T) {
	sink := &recordingSink{}
	dialer := &pipeDialer{}
	h, err := NewClient(dialer, sink, logger.Nop(), WithMaxEventSize(128)).Open(context.Background())
	require.NoError(t, err)
	t.Cleanup(func() { _ = h.Close() })
	w := dialer.Writer(0)

	notes := strings.Repeat("n", 512)
	write(t, w, sseFrame(models.FrameInsert, `{"type":"insert","request":{"id":"big","payload":{"name":"x","notes":"`+notes+`"}}}`))
	write(t, w, sseFrame(models.FrameDelete, `{"type":"delete","requestId":"small"}`))

	require.Eventually(t, func() bool { return len(sink.Frames()) == 1 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, []models.Frame{models.DeleteFrame{RequestID: "small"}}, sink.Frames())

	select {
	case <-h.Done():
		t.Fatalf("stream closed after oversized frame: %v", h.Err())
	default:
	}
}

func TestClient_UnknownFrameTypeIsIgnored(t *testing.T) {
	sink := &recordingSink{}
	_, w := openClient(t, sink)

	write(t, w, sseFrame("archive", `{"type":"archive","requestId":"x"}`))
	write(t, w, ": ping\n\n")
	write(t, w, sseFrame(models.FrameDelete, `{"type":"delete","requestId":"y"}`))

	require.Eventually(t, func() bool { return len(sink.Frames()) == 1 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, []models.Frame{models.DeleteFrame{RequestID: "y"}}, sink.Frames())
}

func TestClient_StreamEndIsReported(t *testing.T) {
	h, w := openClient(t, &recordingSink{})

	require.NoError(t, w.Close())

	select {
	case <-h.Done():
		assert.ErrorIs(t, h.Err(), ErrStreamEnded)
	case <-time.After(time.Second):
		t.Fatal("handle not done after EOF")
	}
}

func TestClient_SinkErrorStopsRelay(t *testing.T) {
	sinkErr := errors.New("inbox closed")
	h, w := openClient(t, &recordingSink{err: sinkErr})

	write(t, w, sseFrame(models.FrameDelete, `{"type":"delete","requestId":"y"}`))

	select {
	case <-h.Done():
		assert.ErrorIs(t, h.Err(), sinkErr)
	case <-time.After(time.Second):
		t.Fatal("handle not done after sink error")
	}
}

func TestClient_OpenFailure(t *testing.T) {
	dialer := &pipeDialer{failures: 1}

	h, err := NewClient(dialer, &recordingSink{}, logger.Nop()).Open(context.Background())

	assert.Nil(t, h)
	assert.ErrorIs(t, err, ErrOpenStream)
}

func TestHandle_CloseIsIdempotentAndStopsDelivery(t *testing.T) {
	sink := &recordingSink{}
	h, w := openClient(t, sink)

	write(t, w, sseFrame(models.FrameDelete, `{"type":"delete","requestId":"a"}`))
	require.Eventually(t, func() bool { return len(sink.Frames()) == 1 }, time.Second, 5*time.Millisecond)

	assert.NotPanics(t, func() {
		_ = h.Close()
		_ = h.Close()
	})

	_, err := io.WriteString(w, sseFrame(models.FrameDelete, `{"type":"delete","requestId":"b"}`))
	assert.Error(t, err)
	assert.Len(t, sink.Frames(), 1)

	select {
	case <-h.Done():
	default:
		t.Fatal("Done not closed after Close")
	}
}

func TestHandle_ErrBeforeDoneIsNil(t *testing.T) {
	h, _ := openClient(t, &recordingSink{})

	assert.NoError(t, h.Err())
}
