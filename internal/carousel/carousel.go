// Package carousel tracks the active slide of a bounded sequence and advances it
// automatically while the host is visible.
//
// A Controller is not safe for concurrent use. All calls, including timer
// callbacks and visibility notifications, must arrive on one goroutine; the TUI
// guarantees this by running timers through clock.Queued.
package carousel

import (
	"time"

	"go.uber.org/zap"

	"folio/internal/clock"
	"folio/internal/host"
)

// DefaultInterval is the auto-advance period used when none is configured
const DefaultInterval = 5 * time.Second

// Direction is the direction of the most recent transition
type Direction int

const (
	// Left means the sequence moved forward (content slides in from the right)
	Left Direction = iota
	// Right means the sequence moved backward
	Right
)

func (d Direction) String() string {
	if d == Right {
		return "right"
	}
	return "left"
}

// State is a snapshot of a controller
type State struct {
	Index     int
	Direction Direction
	Total     int
	Key       string
	Running   bool
}

// Options configures a Controller
type Options struct {
	Total    int
	Interval time.Duration
	Key      string

	// OnChange is called after every change of index, direction or scheduler state
	OnChange func(State)
	Logger   *zap.Logger
}

// Controller owns the current index and slide direction of a carousel
type Controller struct {
	sched    clock.Scheduler
	visible  host.Signal
	onChange func(State)
	logger   *zap.Logger

	index     int
	direction Direction
	total     int
	interval  time.Duration
	key       string

	timer       clock.Timer
	generation  uint64
	unsubscribe func()
	closed      bool
}

// New creates a controller and starts auto-advance when the host is visible
func New(sched clock.Scheduler, visible host.Signal, opts Options) *Controller {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	total := opts.Total
	if total < 0 {
		total = 0
	}

	c := &Controller{
		sched:     sched,
		visible:   visible,
		onChange:  opts.OnChange,
		logger:    logger,
		direction: Left,
		total:     total,
		interval:  opts.Interval,
		key:       opts.Key,
	}
	c.unsubscribe = visible.Subscribe(c.handleVisibility)
	c.restart()
	return c
}

// State returns a snapshot of the controller
func (c *Controller) State() State {
	return State{
		Index:     c.index,
		Direction: c.direction,
		Total:     c.total,
		Key:       c.key,
		Running:   c.timer != nil,
	}
}

// Index returns the current index
func (c *Controller) Index() int { return c.index }

// Direction returns the direction of the last transition
func (c *Controller) Direction() Direction { return c.direction }

// Running reports whether an auto-advance tick is scheduled
func (c *Controller) Running() bool { return c.timer != nil }

// Next moves forward one slide, wrapping from the last to the first
func (c *Controller) Next() {
	if c.closed || c.total <= 1 {
		return
	}
	c.move(normalize(c.index+1, c.total), Left)
	c.restart()
	c.notify()
}

// Previous moves back one slide, wrapping from the first to the last
func (c *Controller) Previous() {
	if c.closed || c.total <= 1 {
		return
	}
	c.move(normalize(c.index-1, c.total), Right)
	c.restart()
	c.notify()
}

// GoTo jumps to target, normalized into range. The direction is Left when the
// target lies after the current index and Right otherwise.
func (c *Controller) GoTo(target int) {
	if c.closed || c.total <= 0 {
		return
	}
	n := normalize(target, c.total)
	dir := Right
	if n > c.index {
		dir = Left
	}
	c.goTo(n, dir)
}

// GoToDirection jumps to target using an explicit direction
func (c *Controller) GoToDirection(target int, dir Direction) {
	if c.closed || c.total <= 0 {
		return
	}
	c.goTo(normalize(target, c.total), dir)
}

func (c *Controller) goTo(n int, dir Direction) {
	if c.total > 1 {
		c.move(n, dir)
		c.restart()
	} else {
		c.index = n
	}
	c.notify()
}

// SetTotal updates the number of items. The index is folded into the new range.
func (c *Controller) SetTotal(total int) {
	if total < 0 {
		total = 0
	}
	if c.closed || total == c.total {
		return
	}
	c.total = total
	c.index = normalize(c.index, total)
	c.restart()
	c.notify()
}

// SetInterval changes the auto-advance period. Zero or negative disables it.
func (c *Controller) SetInterval(d time.Duration) {
	if c.closed || d == c.interval {
		return
	}
	c.interval = d
	c.restart()
	c.notify()
}

// SetKey resets the carousel when the identity key changes
func (c *Controller) SetKey(key string) {
	if c.closed || key == c.key {
		return
	}
	c.logger.Debug("carousel identity changed", zap.String("from", c.key), zap.String("to", key))
	c.key = key
	c.index = 0
	c.direction = Left
	c.restart()
	c.notify()
}

// Close cancels the pending tick and detaches from the visibility signal
func (c *Controller) Close() {
	if c.closed {
		return
	}
	c.cancel()
	c.closed = true
	if c.unsubscribe != nil {
		c.unsubscribe()
		c.unsubscribe = nil
	}
}

func (c *Controller) move(index int, dir Direction) {
	c.index = index
	c.direction = dir
	c.logger.Debug("carousel moved",
		zap.String("key", c.key),
		zap.Int("index", index),
		zap.Stringer("direction", dir))
}

func (c *Controller) handleVisibility(visible bool) {
	if c.closed {
		return
	}
	if visible {
		c.restart()
	} else {
		c.cancel()
	}
	c.notify()
}

// restart cancels any pending tick and schedules a fresh full interval when
// auto-advance applies. At most one tick is ever outstanding.
func (c *Controller) restart() {
	c.cancel()
	if c.closed || c.total <= 1 || c.interval <= 0 || !c.visible.Value() {
		return
	}
	c.generation++
	gen := c.generation
	c.timer = c.sched.AfterFunc(c.interval, func() { c.tick(gen) })
}

func (c *Controller) cancel() {
	if c.timer == nil {
		return
	}
	c.timer.Stop()
	c.timer = nil
}

// tick ignores fires that belong to a cancelled schedule
func (c *Controller) tick(gen uint64) {
	if c.closed || gen != c.generation || c.timer == nil {
		return
	}
	c.timer = nil
	if c.total > 1 {
		c.move(normalize(c.index+1, c.total), Left)
	}
	c.restart()
	c.notify()
}

func (c *Controller) notify() {
	if c.onChange != nil {
		c.onChange(c.State())
	}
}

func normalize(index, total int) int {
	if total <= 0 {
		return 0
	}
	return ((index % total) + total) % total
}
