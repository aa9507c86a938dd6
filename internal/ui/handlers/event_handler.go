package handlers

import (
	"fmt"

	"folio/internal/eventbus"
	"folio/internal/ui/state"
)

// EventHandler turns domain events forwarded to the UI into status updates
type EventHandler struct {
	state *state.AppState
}

// NewEventHandler creates a new event handler
func NewEventHandler(appState *state.AppState) *EventHandler {
	return &EventHandler{
		state: appState,
	}
}

// HandleEvent processes a domain event. It returns the sequence number of the
// status message it set, or 0 when the event left the status line alone.
func (h *EventHandler) HandleEvent(event eventbus.DomainEvent) uint64 {
	switch e := event.(type) {
	case eventbus.ErrorEvent:
		if e.Err != nil {
			return h.state.SetStatus(fmt.Sprintf("Error: %s: %v", e.Message, e.Err), true)
		}
		return h.state.SetStatus(fmt.Sprintf("Error: %s", e.Message), true)

	case eventbus.LinkCopiedEvent:
		return h.state.SetStatus(fmt.Sprintf("Copied %s", e.URL), false)

	case eventbus.ConfigSavedEvent:
		return h.state.SetStatus(fmt.Sprintf("Settings saved to %s", e.Path), false)

	case eventbus.ThemeChangedEvent:
		return h.state.SetStatus(fmt.Sprintf("Theme: %s (%s)", e.Mode, e.Resolved), false)
	}

	return 0
}
