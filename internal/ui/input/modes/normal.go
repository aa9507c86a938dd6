package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"folio/internal/routes"
	"folio/internal/ui/input/types"
)

type NormalMode struct{}

func NewNormalMode() *NormalMode {
	return &NormalMode{}
}

func (m *NormalMode) Name() string {
	return "normal"
}

func (m *NormalMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	route := ctx.CurrentRoute()

	// The help popup swallows everything except its own toggles
	if ctx.ShowingHelp() {
		switch msg.String() {
		case "ctrl+c":
			return []types.Action{types.QuitAction{Force: true}}, true
		case "?", "esc", "q":
			return []types.Action{types.ToggleHelpAction{}}, true
		}
		return nil, true
	}

	switch msg.Type {
	case tea.KeyCtrlC:
		return []types.Action{types.QuitAction{Force: true}}, true

	case tea.KeyLeft:
		return []types.Action{types.NavigateAction{Direction: "left"}}, true

	case tea.KeyRight:
		return []types.Action{types.NavigateAction{Direction: "right"}}, true

	case tea.KeyUp:
		return []types.Action{types.ScrollAction{Direction: "up"}}, true

	case tea.KeyDown:
		return []types.Action{types.ScrollAction{Direction: "down"}}, true

	case tea.KeyPgUp:
		return []types.Action{types.ScrollAction{Direction: "pageup"}}, true

	case tea.KeyPgDown:
		return []types.Action{types.ScrollAction{Direction: "pagedown"}}, true

	case tea.KeyHome:
		return []types.Action{types.ScrollAction{Direction: "top"}}, true

	case tea.KeyEnd:
		return []types.Action{types.ScrollAction{Direction: "bottom"}}, true

	case tea.KeyEnter:
		if route.Kind == routes.Home && ctx.SlideCount() > 0 {
			return []types.Action{types.OpenProjectAction{}}, true
		}
		return nil, false

	case tea.KeyEsc, tea.KeyBackspace:
		return []types.Action{types.BackAction{}}, true
	}

	switch key := msg.String(); key {
	case "h":
		return []types.Action{types.NavigateAction{Direction: "left"}}, true

	case "l":
		return []types.Action{types.NavigateAction{Direction: "right"}}, true

	case "j":
		return []types.Action{types.ScrollAction{Direction: "down"}}, true

	case "k":
		return []types.Action{types.ScrollAction{Direction: "up"}}, true

	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		n := int(key[0] - '1')
		if n < ctx.SlideCount() {
			return []types.Action{types.GoToSlideAction{Index: n}}, true
		}
		return nil, true

	case "t":
		return []types.Action{types.ToggleThemeAction{}}, true

	case "e":
		return []types.Action{types.OpenPathAction{Path: routes.EasterPath}}, true

	case "y":
		return []types.Action{types.CopyLinkAction{}}, true

	case "p":
		if route.Kind == routes.Easter {
			return []types.Action{types.OpenPagerAction{}}, true
		}
		return nil, false

	case ":":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeGoto}}, true

	case "?":
		return []types.Action{types.ToggleHelpAction{}}, true

	case "q":
		return []types.Action{types.QuitAction{Force: false}}, true
	}

	return nil, false
}
