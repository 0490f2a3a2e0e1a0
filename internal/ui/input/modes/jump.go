package modes

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"carousel/internal/ui/input/types"
)

// JumpMode reads a 1-based slide number
type JumpMode struct {
	TextInputMode
}

func NewJumpMode(ti *textinput.Model) *JumpMode {
	return &JumpMode{
		TextInputMode: NewTextInputMode(types.ModeJump, "jump", "Go to slide: ", ti),
	}
}

func (m *JumpMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	// Only digits reach the text input
	if msg.Type == tea.KeyRunes {
		for _, r := range msg.Runes {
			if r < '0' || r > '9' {
				return nil, true
			}
		}
	}
	return m.TextInputMode.HandleKey(msg, ctx)
}
