package server

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nictuku/splitrun/internal/attempt"
	"github.com/nictuku/splitrun/internal/session"
)

func TestBroadcastDeliversToAllSubscribers(t *testing.T) {
	b := NewBroadcast(nil)
	ch1, unsub1 := b.Subscribe("a")
	defer unsub1()
	ch2, unsub2 := b.Subscribe("b")
	defer unsub2()

	ev := session.ResetEvent{Info: attempt.Info{Total: 1}}
	b.Publish(ev)

	assert.Equal(t, ev, <-ch1)
	assert.Equal(t, ev, <-ch2)
}

func TestBroadcastUnsubscribeStopsDelivery(t *testing.T) {
	b := NewBroadcast(nil)
	ch, unsub := b.Subscribe("a")
	unsub()

	b.Publish(session.ResetEvent{})

	select {
	case _, ok := <-ch:
		assert.False(t, ok, "channel should not have anything delivered after unsubscribe")
	case <-time.After(10 * time.Millisecond):
	}
}

func TestBroadcastDropsWhenSubscriberFull(t *testing.T) {
	m := NewMetrics()
	b := NewBroadcast(m)
	_, unsub := b.Subscribe("slow")
	defer unsub()

	for i := 0; i < subscriberCapacity+5; i++ {
		b.Publish(session.ResetEvent{Info: attempt.Info{Total: i}})
	}

	count := testutil.ToFloat64(m.broadcastLag.WithLabelValues("slow"))
	require.Greater(t, count, 0.0)
}
