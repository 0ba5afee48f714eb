// Package notify implements the coarse change-notification bus the ledger
// store publishes on. Observers receive no payload; a notification means
// "something changed, re-query current state".
package notify

import (
	"sync"

	"github.com/rs/zerolog"
)

// Observer is invoked synchronously on every store mutation.
type Observer func()

// Bus fans a change signal out to registered observers. There is no
// buffering or coalescing; two mutations mean two notifications.
type Bus struct {
	mu        sync.Mutex
	next      uint64
	observers map[uint64]Observer
	log       zerolog.Logger
}

// NewBus creates an empty bus. Observer panics are logged through log and
// never propagate to the mutating caller or to other observers.
func NewBus(log zerolog.Logger) *Bus {
	return &Bus{
		observers: make(map[uint64]Observer),
		log:       log,
	}
}

// Subscribe registers an observer and returns its unsubscribe handle.
// Invoking the handle more than once is a no-op.
func (b *Bus) Subscribe(fn Observer) (unsubscribe func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	token := b.next
	b.next++
	b.observers[token] = fn

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		delete(b.observers, token)
	}
}

// Notify invokes every currently registered observer, in unspecified order.
// A panicking observer is isolated so the rest still run.
func (b *Bus) Notify() {
	b.mu.Lock()
	snapshot := make([]Observer, 0, len(b.observers))
	for _, fn := range b.observers {
		snapshot = append(snapshot, fn)
	}
	b.mu.Unlock()

	for _, fn := range snapshot {
		b.invoke(fn)
	}
}

// Len returns the number of registered observers.
func (b *Bus) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.observers)
}

func (b *Bus) invoke(fn Observer) {
	defer func() {
		if r := recover(); r != nil {
			b.log.Error().Interface("panic", r).Msg("observer panicked during notify")
		}
	}()
	fn()
}
