package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"folio/internal/routes"
)

// handleMouse feeds drags on the carousel card to the gesture recognizer and
// wheel events to the changelog viewport
func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if m.state.ShowHelp {
		return nil
	}

	if m.history.Current().Kind == routes.Easter {
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return cmd
	}

	x, y := float64(msg.X), float64(msg.Y)
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft && m.layout.Contains(msg.Y) {
			m.gesture.Start(x, y)
		}
	case tea.MouseActionMotion:
		m.gesture.Move(x, y)
	case tea.MouseActionRelease:
		m.gesture.Move(x, y)
		m.gesture.End()
	}
	return nil
}
