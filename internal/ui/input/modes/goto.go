package modes

import (
	"github.com/charmbracelet/bubbles/textinput"

	"folio/internal/ui/input/types"
)

// GotoMode prompts for a path such as /projects/<slug> or /easter
type GotoMode struct {
	TextInputMode
}

func NewGotoMode(ti *textinput.Model) *GotoMode {
	return &GotoMode{
		TextInputMode: NewTextInputMode(types.ModeGoto, "goto", ":", ti),
	}
}
