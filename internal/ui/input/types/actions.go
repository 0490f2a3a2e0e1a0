package types

// Navigation actions
type NavigateAction struct {
	Direction string // "prev", "next", "first", "last"
}

func (a NavigateAction) Type() string { return "navigate" }

// JumpAction scrolls straight to a zero-based index
type JumpAction struct {
	Index int
}

func (a JumpAction) Type() string { return "jump" }

// ScrollByAction moves the strip without touching the index
type ScrollByAction struct {
	Delta int // cells; negative scrolls left
}

func (a ScrollByAction) Type() string { return "scroll_by" }

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

// Command actions
type ToggleAutoAction struct{}

func (a ToggleAutoAction) Type() string { return "toggle_auto" }

type CopySlideAction struct{}

func (a CopySlideAction) Type() string { return "copy_slide" }

type ReloadConfigAction struct{}

func (a ReloadConfigAction) Type() string { return "reload_config" }

type ShowHelpPagerAction struct{}

func (a ShowHelpPagerAction) Type() string { return "show_help_pager" }

type QuitAction struct {
	Force bool
}

func (a QuitAction) Type() string { return "quit" }
