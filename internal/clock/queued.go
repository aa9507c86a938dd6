package clock

import (
	"sync"
	"time"

	"go.uber.org/zap"
)

// Queued runs real timers but does not execute callbacks on the timer
// goroutine. Fired callbacks are delivered on C so that one owner goroutine
// (the UI event loop) runs them in order with everything else it handles.
type Queued struct {
	c      chan func()
	logger *zap.Logger
}

// NewQueued creates a queued scheduler with the given delivery buffer
func NewQueued(buffer int, logger *zap.Logger) *Queued {
	if logger == nil {
		logger = zap.NewNop()
	}
	if buffer < 1 {
		buffer = 1
	}
	return &Queued{
		c:      make(chan func(), buffer),
		logger: logger,
	}
}

// C returns the channel fired callbacks are delivered on
func (q *Queued) C() <-chan func() {
	return q.c
}

// AfterFunc implements Scheduler
func (q *Queued) AfterFunc(d time.Duration, fn func()) Timer {
	qt := &queuedTimer{fn: fn}
	qt.timer = time.AfterFunc(d, func() {
		select {
		case q.c <- qt.run:
		default:
			q.logger.Warn("timer queue full, dropping fired callback", zap.Duration("after", d))
		}
	})
	return qt
}

// queuedTimer guards against a callback that was already queued when Stop
// was called: run checks the stopped flag on the owner goroutine.
type queuedTimer struct {
	mu      sync.Mutex
	timer   *time.Timer
	fn      func()
	stopped bool
	fired   bool
}

func (t *queuedTimer) Stop() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	t.timer.Stop()
	return true
}

func (t *queuedTimer) run() {
	t.mu.Lock()
	if t.stopped || t.fired {
		t.mu.Unlock()
		return
	}
	t.fired = true
	t.mu.Unlock()

	t.fn()
}
