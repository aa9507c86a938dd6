// Package host models boolean signals owned by the host environment, such as
// whether the terminal has focus or whether it prefers a dark color scheme.
package host

import (
	"sort"
	"sync"
)

// Signal is a read-only boolean with change notification
type Signal interface {
	Value() bool
	// Subscribe registers fn for value changes and returns an unsubscribe func
	Subscribe(fn func(bool)) func()
}

// Flag is a settable Signal
type Flag struct {
	mu       sync.Mutex
	value    bool
	nextID   int
	handlers map[int]func(bool)
}

// NewFlag creates a flag with an initial value
func NewFlag(initial bool) *Flag {
	return &Flag{
		value:    initial,
		handlers: make(map[int]func(bool)),
	}
}

// Value returns the current value
func (f *Flag) Value() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.value
}

// Set updates the value. Subscribers are notified only when it changes.
func (f *Flag) Set(v bool) {
	f.mu.Lock()
	if f.value == v {
		f.mu.Unlock()
		return
	}
	f.value = v
	ids := make([]int, 0, len(f.handlers))
	for id := range f.handlers {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	handlers := make([]func(bool), 0, len(ids))
	for _, id := range ids {
		handlers = append(handlers, f.handlers[id])
	}
	f.mu.Unlock()

	for _, h := range handlers {
		h(v)
	}
}

// Subscribe implements Signal
func (f *Flag) Subscribe(fn func(bool)) func() {
	f.mu.Lock()
	defer f.mu.Unlock()

	id := f.nextID
	f.nextID++
	f.handlers[id] = fn

	var once sync.Once
	return func() {
		once.Do(func() {
			f.mu.Lock()
			defer f.mu.Unlock()
			delete(f.handlers, id)
		})
	}
}

// Subscribers returns how many handlers are registered
func (f *Flag) Subscribers() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.handlers)
}
