package server

import (
	"sync"

	"github.com/nictuku/splitrun/internal/session"
)

// subscriberCapacity bounds each subscriber's event buffer (spec §5 "bounded
// ... multi-consumer"). A subscriber that falls this far behind has
// each new event dropped for it rather than blocking the session loop.
const subscriberCapacity = 64

// subscriber is one connection's inbound event queue.
type subscriber struct {
	id string
	ch chan session.Event
}

// Broadcast is the session loop's single event producer fanned out to a
// small, rarely-changing set of per-connection subscriber channels (spec §5
// "The event broadcast is a small hand-rolled fan-out... a mutex-guarded
// slice, since the subscriber set changes rarely... compared to event
// volume"). It is not a generic pub-sub: exactly one Publish caller exists
// per server (the session loop), matching the single-producer invariant.
type Broadcast struct {
	metrics *Metrics

	mu   sync.Mutex
	subs []*subscriber
}

// NewBroadcast builds a broadcast fan-out reporting drop counts to metrics
// (metrics may be nil in tests).
func NewBroadcast(metrics *Metrics) *Broadcast {
	return &Broadcast{metrics: metrics}
}

// Subscribe registers a new connection and returns its event channel plus
// an unsubscribe func to call on disconnect (spec §5 "dropping a connection
// task closes ... its receive half of the broadcast").
func (b *Broadcast) Subscribe(connID string) (<-chan session.Event, func()) {
	sub := &subscriber{id: connID, ch: make(chan session.Event, subscriberCapacity)}
	b.mu.Lock()
	b.subs = append(b.subs, sub)
	b.mu.Unlock()

	unsubscribe := func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		for i, s := range b.subs {
			if s == sub {
				b.subs = append(b.subs[:i], b.subs[i+1:]...)
				return
			}
		}
	}
	return sub.ch, unsubscribe
}

// Publish delivers ev to every current subscriber, in emission order (spec
// §5 "events from any single action are broadcast in emission order and
// delivered in that order to every live subscriber"). A subscriber whose
// buffer is full is skipped rather than blocking the rest of the fan-out;
// the drop is counted against that subscriber as lag, never fatal to the
// session (spec §4.H "a broadcast lag on a slow client is logged but does
// not kill the session").
func (b *Broadcast) Publish(ev session.Event) {
	b.mu.Lock()
	subs := append([]*subscriber(nil), b.subs...)
	b.mu.Unlock()

	for _, s := range subs {
		select {
		case s.ch <- ev:
		default:
			if b.metrics != nil {
				b.metrics.lagged(s.id)
			}
		}
	}
}
