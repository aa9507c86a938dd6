// Package blink drives the header cursor: on for three seconds, off for one,
// phase-locked to the wall clock.
package blink

import (
	"time"

	"folio/internal/clock"
	"folio/internal/host"
)

const (
	OnDuration    = 3000 * time.Millisecond
	OffDuration   = 1000 * time.Millisecond
	CycleDuration = OnDuration + OffDuration
)

// StateAt reports whether the cursor is visible at t
func StateAt(t time.Time) bool {
	return phase(t) < OnDuration
}

// NextDelay returns how long until the cursor next changes state
func NextDelay(t time.Time) time.Duration {
	p := phase(t)
	if p < OnDuration {
		return OnDuration - p
	}
	return CycleDuration - p
}

func phase(t time.Time) time.Duration {
	ms := t.UnixMilli() % CycleDuration.Milliseconds()
	if ms < 0 {
		ms += CycleDuration.Milliseconds()
	}
	return time.Duration(ms) * time.Millisecond
}

// Blinker keeps an On flag in sync with the blink phase
type Blinker struct {
	sched        clock.Scheduler
	now          func() time.Time
	visible      host.Signal
	reduceMotion bool
	onChange     func(bool)

	on          bool
	timer       clock.Timer
	unsubscribe func()
}

// New starts a blinker. With reduceMotion the cursor stays on and no timer is
// scheduled.
func New(sched clock.Scheduler, now func() time.Time, visible host.Signal, reduceMotion bool, onChange func(bool)) *Blinker {
	b := &Blinker{
		sched:        sched,
		now:          now,
		visible:      visible,
		reduceMotion: reduceMotion,
		onChange:     onChange,
		on:           true,
	}
	if reduceMotion {
		return b
	}
	b.unsubscribe = visible.Subscribe(func(v bool) {
		if v {
			b.schedule()
		} else {
			b.cancel()
		}
	})
	if visible.Value() {
		b.schedule()
	}
	return b
}

// On reports whether the cursor is shown
func (b *Blinker) On() bool { return b.on }

// Running reports whether a phase change is scheduled
func (b *Blinker) Running() bool { return b.timer != nil }

// Close cancels the pending timer and detaches from the visibility signal
func (b *Blinker) Close() {
	b.cancel()
	if b.unsubscribe != nil {
		b.unsubscribe()
		b.unsubscribe = nil
	}
}

// schedule syncs the flag to the current phase and waits for the next edge
func (b *Blinker) schedule() {
	b.cancel()
	now := b.now()
	b.set(StateAt(now))
	var t clock.Timer
	t = b.sched.AfterFunc(NextDelay(now), func() {
		if b.timer != t {
			return
		}
		b.timer = nil
		b.schedule()
	})
	b.timer = t
}

func (b *Blinker) cancel() {
	if b.timer != nil {
		b.timer.Stop()
		b.timer = nil
	}
}

func (b *Blinker) set(on bool) {
	if on == b.on {
		return
	}
	b.on = on
	if b.onChange != nil {
		b.onChange(on)
	}
}
