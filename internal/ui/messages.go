package ui

import (
	"folio/internal/eventbus"
)

// EventMsg wraps a domain event for the UI
type EventMsg struct {
	Event eventbus.DomainEvent
}

// TimerMsg carries a fired timer callback onto the UI goroutine
type TimerMsg struct {
	Fire func()
}

// queuedTimerMsg carries a callback from the model's own timer queue
type queuedTimerMsg struct {
	fire func()
}

// copyResultMsg contains the result of a clipboard copy
type copyResultMsg struct {
	url string
	err error
}

// pagerMsg contains the result of a pager session
type pagerMsg struct {
	err error
}

// pauseRenderingMsg signals that an external program owns the terminal
type pauseRenderingMsg struct{}

// resumeRenderingMsg signals that the terminal is back
type resumeRenderingMsg struct{}
