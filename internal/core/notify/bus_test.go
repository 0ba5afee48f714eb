package notify

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestBus_NotifyInvokesEveryObserverOnce(t *testing.T) {
	bus := NewBus(zerolog.Nop())

	var first, second int
	bus.Subscribe(func() { first++ })
	bus.Subscribe(func() { second++ })

	bus.Notify()
	assert.Equal(t, 1, first)
	assert.Equal(t, 1, second)

	bus.Notify()
	assert.Equal(t, 2, first)
	assert.Equal(t, 2, second)
}

func TestBus_UnsubscribeRemovesOnlyThatObserver(t *testing.T) {
	bus := NewBus(zerolog.Nop())

	var first, second int
	unsub := bus.Subscribe(func() { first++ })
	bus.Subscribe(func() { second++ })

	unsub()
	bus.Notify()

	assert.Equal(t, 0, first)
	assert.Equal(t, 1, second)
	assert.Equal(t, 1, bus.Len())
}

func TestBus_UnsubscribeIsIdempotent(t *testing.T) {
	bus := NewBus(zerolog.Nop())

	unsubA := bus.Subscribe(func() {})
	bus.Subscribe(func() {})

	unsubA()
	unsubA() // second invocation must not remove anyone else

	assert.Equal(t, 1, bus.Len())
}

func TestBus_PanickingObserverDoesNotBlockOthers(t *testing.T) {
	bus := NewBus(zerolog.Nop())

	var survived int
	bus.Subscribe(func() { panic("observer failure") })
	bus.Subscribe(func() { survived++ })

	assert.NotPanics(t, func() { bus.Notify() })
	assert.Equal(t, 1, survived)
}

func TestBus_NoCoalescing(t *testing.T) {
	bus := NewBus(zerolog.Nop())

	var calls int
	bus.Subscribe(func() { calls++ })

	bus.Notify()
	bus.Notify()
	bus.Notify()

	assert.Equal(t, 3, calls)
}
