// Package clock abstracts timer scheduling so interaction state machines can be
// driven by real timers in the TUI and by virtual time in tests.
package clock

import "time"

// Timer is a pending callback returned by a Scheduler
type Timer interface {
	// Stop prevents the callback from running. It reports whether the call
	// stopped the timer before it fired.
	Stop() bool
}

// Scheduler schedules one-shot callbacks
type Scheduler interface {
	AfterFunc(d time.Duration, fn func()) Timer
}

// Real schedules callbacks with time.AfterFunc. Callbacks run on their own
// goroutine.
type Real struct{}

// AfterFunc implements Scheduler
func (Real) AfterFunc(d time.Duration, fn func()) Timer {
	return time.AfterFunc(d, fn)
}
