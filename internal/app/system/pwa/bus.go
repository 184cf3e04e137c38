package pwa

import (
	"sync"
	"time"
)

// Bus fans host events out to subscribers. Delivery is synchronous, in
// subscription order, on the publishing goroutine.
type Bus struct {
	mu     sync.Mutex
	subs   []subscription
	nextID uint64
	closed bool

	now func() time.Time
}

type subscription struct {
	id uint64
	fn func(Event)
}

// NewBus returns an open Bus.
func NewBus() *Bus {
	return &Bus{now: time.Now}
}

// Subscribe registers fn and returns a function that removes it. Subscribing
// to a closed bus registers nothing.
func (b *Bus) Subscribe(fn func(Event)) (unsubscribe func()) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed || fn == nil {
		return func() {}
	}
	b.nextID++
	id := b.nextID
	b.subs = append(b.subs, subscription{id: id, fn: fn})

	var once sync.Once
	return func() {
		once.Do(func() { b.remove(id) })
	}
}

func (b *Bus) remove(id uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i, s := range b.subs {
		if s.id == id {
			b.subs = append(b.subs[:i:i], b.subs[i+1:]...)
			return
		}
	}
}

// Publish delivers e to every current subscriber. A zero At is set to the
// current time. Publishing on a closed bus is a no-op.
func (b *Bus) Publish(e Event) {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return
	}
	subs := b.subs
	if e.At.IsZero() {
		e.At = b.now()
	}
	b.mu.Unlock()

	// Subscribers run outside the lock so they may publish or unsubscribe.
	for _, s := range subs {
		s.fn(e)
	}
}

// Close drops all subscribers. Further publishes are ignored.
func (b *Bus) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.closed = true
	b.subs = nil
}
