package types

// Slide navigation
type NavigateAction struct {
	Direction string // "left" or "right"
}

func (a NavigateAction) Type() string { return "navigate" }

type GoToSlideAction struct {
	Index int
}

func (a GoToSlideAction) Type() string { return "goto_slide" }

// ScrollAction scrolls long content such as the changelog
type ScrollAction struct {
	Direction string // "up", "down", "pageup", "pagedown", "top", "bottom"
}

func (a ScrollAction) Type() string { return "scroll" }

// Route actions
type OpenProjectAction struct{}

func (a OpenProjectAction) Type() string { return "open_project" }

type BackAction struct{}

func (a BackAction) Type() string { return "back" }

type OpenPathAction struct {
	Path string
}

func (a OpenPathAction) Type() string { return "open_path" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Text input actions
type UpdateTextAction struct {
	Text string
}

func (a UpdateTextAction) Type() string { return "update_text" }

type SubmitTextAction struct {
	Text string
	Mode Mode // Which mode submitted the text
}

func (a SubmitTextAction) Type() string { return "submit_text" }

type CancelTextAction struct{}

func (a CancelTextAction) Type() string { return "cancel_text" }

// Commands
type ToggleThemeAction struct{}

func (a ToggleThemeAction) Type() string { return "toggle_theme" }

type CopyLinkAction struct{}

func (a CopyLinkAction) Type() string { return "copy_link" }

type OpenPagerAction struct{}

func (a OpenPagerAction) Type() string { return "open_pager" }

type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type QuitAction struct {
	Force bool // true for Ctrl+C, false for 'q'
}

func (a QuitAction) Type() string { return "quit" }
