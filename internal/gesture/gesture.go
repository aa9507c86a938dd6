// Package gesture classifies a press-drag-release interaction as a horizontal
// swipe or a tap.
package gesture

import "math"

// Default thresholds, in the same unit as the coordinates fed to the recognizer
const (
	DefaultSwipeThreshold = 50
	DefaultTapThreshold   = 10
)

// Kind is the classification of a finished gesture
type Kind int

const (
	None Kind = iota
	SwipeLeft
	SwipeRight
	Tap
)

func (k Kind) String() string {
	switch k {
	case SwipeLeft:
		return "swipe-left"
	case SwipeRight:
		return "swipe-right"
	case Tap:
		return "tap"
	default:
		return "none"
	}
}

// Classify decides what a movement of (dx, dy) means, where dx and dy are
// start minus end. A positive dx is a drag towards the left.
func Classify(dx, dy, swipeThreshold, tapThreshold float64) Kind {
	adx, ady := math.Abs(dx), math.Abs(dy)

	if adx > swipeThreshold && adx > ady {
		if dx > 0 {
			return SwipeLeft
		}
		return SwipeRight
	}
	if adx < tapThreshold && ady < tapThreshold {
		return Tap
	}
	return None
}

// Options configures a Recognizer. Zero thresholds take the defaults.
type Options struct {
	SwipeThreshold float64
	TapThreshold   float64

	OnSwipeLeft  func()
	OnSwipeRight func()
	OnTap        func()
}

// Recognizer tracks one gesture session at a time
type Recognizer struct {
	opts Options

	startX, startY     float64
	currentX, currentY float64
	active             bool
}

// NewRecognizer creates a recognizer
func NewRecognizer(opts Options) *Recognizer {
	if opts.SwipeThreshold <= 0 {
		opts.SwipeThreshold = DefaultSwipeThreshold
	}
	if opts.TapThreshold <= 0 {
		opts.TapThreshold = DefaultTapThreshold
	}
	return &Recognizer{opts: opts}
}

// Active reports whether a session is in progress
func (r *Recognizer) Active() bool { return r.active }

// Start begins a session at (x, y), replacing any session in progress
func (r *Recognizer) Start(x, y float64) {
	r.startX, r.startY = x, y
	r.currentX, r.currentY = x, y
	r.active = true
}

// Move records the latest position. It does nothing without a session.
func (r *Recognizer) Move(x, y float64) {
	if !r.active {
		return
	}
	r.currentX, r.currentY = x, y
}

// End finishes the session, fires at most one callback and returns the
// classification. It does nothing without a session.
func (r *Recognizer) End() Kind {
	if !r.active {
		return None
	}
	kind := Classify(r.startX-r.currentX, r.startY-r.currentY, r.opts.SwipeThreshold, r.opts.TapThreshold)
	r.reset()

	switch kind {
	case SwipeLeft:
		call(r.opts.OnSwipeLeft)
	case SwipeRight:
		call(r.opts.OnSwipeRight)
	case Tap:
		call(r.opts.OnTap)
	}
	return kind
}

// Cancel ends the session the way End does. It exists for the pointer
// leaving the surface mid-drag.
func (r *Recognizer) Cancel() Kind {
	return r.End()
}

func (r *Recognizer) reset() {
	r.startX, r.startY = 0, 0
	r.currentX, r.currentY = 0, 0
	r.active = false
}

func call(fn func()) {
	if fn != nil {
		fn()
	}
}
