// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package broker

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-request-inbox/internal/logger"
	"github.com/MKhiriev/go-request-inbox/models"
)

func newTestBroker(buffer int) Broker {
	return New(buffer, logger.Nop())
}

func deleteFrame(id string) models.Frame {
	return models.DeleteFrame{RequestID: id}
}

func receive(t *testing.T, sub *Subscription) models.Frame {
	t.Helper()
	select {
	case f := <-sub.Frames():
		return f
	default:
		t.Fatal("expected a queued frame")
		return nil
	}
}

func TestBroker_PublishReachesOnlySameTenant(t *testing.T) {
	b := newTestBroker(4)

	a1, err := b.Subscribe("tenant-a")
	require.NoError(t, err)
	a2, err := b.Subscribe("tenant-a")
	require.NoError(t, err)
	other, err := b.Subscribe("tenant-b")
	require.NoError(t, err)

	b.Publish("tenant-a", deleteFrame("r1"))

	assert.Equal(t, deleteFrame("r1"), receive(t, a1))
	assert.Equal(t, deleteFrame("r1"), receive(t, a2))
	assert.Empty(t, other.Frames())
	assert.Equal(t, uint64(1), a1.Sent())
}

func TestBroker_PreservesPublishOrder(t *testing.T) {
	b := newTestBroker(8)
	sub, err := b.Subscribe("t")
	require.NoError(t, err)

	for _, id := range []string{"a", "b", "c"} {
		b.Publish("t", deleteFrame(id))
	}

	for _, id := range []string{"a", "b", "c"} {
		assert.Equal(t, deleteFrame(id), receive(t, sub))
	}
}

func TestBroker_OverflowEndsSubscription(t *testing.T) {
	b := newTestBroker(1)
	slow, err := b.Subscribe("t")
	require.NoError(t, err)
	fast, err := b.Subscribe("t")
	require.NoError(t, err)

	b.Publish("t", deleteFrame("1"))
	receive(t, fast)
	b.Publish("t", deleteFrame("2"))

	assert.True(t, slow.Overflowed())
	select {
	case <-slow.Done():
	default:
		t.Fatal("overflowed subscription should be done")
	}

	assert.False(t, fast.Overflowed())
	assert.Equal(t, deleteFrame("2"), receive(t, fast))
	assert.Equal(t, uint64(1), b.Stats().Overflowed)

	// further publishes skip the ended subscriber without counting again
	b.Publish("t", deleteFrame("3"))
	assert.Equal(t, uint64(1), b.Stats().Overflowed)
}

func TestBroker_Unsubscribe(t *testing.T) {
	b := newTestBroker(4)
	sub, err := b.Subscribe("t")
	require.NoError(t, err)
	require.Equal(t, 1, b.Stats().Subscribers)

	b.Unsubscribe(sub)
	b.Unsubscribe(sub)
	b.Unsubscribe(nil)

	assert.Equal(t, 0, b.Stats().Subscribers)
	assert.False(t, sub.Overflowed())
	<-sub.Done()

	b.Publish("t", deleteFrame("x"))
	assert.Empty(t, sub.Frames())
}

func TestBroker_Close(t *testing.T) {
	b := newTestBroker(4)
	sub, err := b.Subscribe("t")
	require.NoError(t, err)

	b.Close()
	b.Close()

	<-sub.Done()
	_, err = b.Subscribe("t")
	require.ErrorIs(t, err, ErrBrokerClosed)

	b.Publish("t", deleteFrame("x"))
	assert.Equal(t, uint64(0), b.Stats().Published)
	assert.Equal(t, 0, b.Stats().Subscribers)
}

func TestBroker_SubscribeRejectsEmptyTenant(t *testing.T) {
	_, err := newTestBroker(1).Subscribe("")
	require.ErrorIs(t, err, ErrEmptyTenantID)
}

func TestBroker_ConcurrentPublishAndUnsubscribe(t *testing.T) {
	b := newTestBroker(2)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				b.Publish("t", deleteFrame("x"))
			}
		}()
		go func() {
			defer wg.Done()
			sub, err := b.Subscribe("t")
			if err != nil {
				return
			}
			b.Unsubscribe(sub)
		}()
	}
	wg.Wait()

	assert.Equal(t, uint64(800), b.Stats().Published)
	assert.Equal(t, 0, b.Stats().Subscribers)
}
