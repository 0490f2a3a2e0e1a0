package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"carousel/internal/ui/input/keys"
	"carousel/internal/ui/input/types"
)

// NudgeCells is how far the nudge keys move the strip
const NudgeCells = 4

type NormalMode struct {
	keys keys.KeyMap
}

func NewNormalMode(km keys.KeyMap) *NormalMode {
	return &NormalMode{keys: km}
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
	switch {
	case key.Matches(msg, m.keys.ForceQuit):
		return []types.Action{types.QuitAction{Force: true}}, true
	case key.Matches(msg, m.keys.Quit):
		return []types.Action{types.QuitAction{}}, true

	case key.Matches(msg, m.keys.Prev):
		return []types.Action{types.NavigateAction{Direction: "prev"}}, true
	case key.Matches(msg, m.keys.Next):
		return []types.Action{types.NavigateAction{Direction: "next"}}, true
	case key.Matches(msg, m.keys.First):
		return []types.Action{types.NavigateAction{Direction: "first"}}, true
	case key.Matches(msg, m.keys.Last):
		return []types.Action{types.NavigateAction{Direction: "last"}}, true
	case key.Matches(msg, m.keys.NudgeLeft):
		return []types.Action{types.ScrollByAction{Delta: -NudgeCells}}, true
	case key.Matches(msg, m.keys.NudgeRight):
		return []types.Action{types.ScrollByAction{Delta: NudgeCells}}, true

	case key.Matches(msg, m.keys.Jump):
		if ctx.ItemCount() == 0 {
			return nil, true
		}
		return []types.Action{types.ChangeModeAction{Mode: types.ModeJump}}, true

	case key.Matches(msg, m.keys.ToggleAuto):
		return []types.Action{types.ToggleAutoAction{}}, true
	case key.Matches(msg, m.keys.Copy):
		return []types.Action{types.CopySlideAction{}}, true
	case key.Matches(msg, m.keys.Reload):
		return []types.Action{types.ReloadConfigAction{}}, true
	case key.Matches(msg, m.keys.Help):
		return []types.Action{types.ShowHelpPagerAction{}}, true
	}

	// Digits jump straight to the first nine slides
	if msg.Type == tea.KeyRunes && len(msg.Runes) == 1 {
		r := msg.Runes[0]
		if r >= '1' && r <= '9' {
			index := int(r - '1')
			if index >= ctx.ItemCount() {
				return nil, true
			}
			return []types.Action{types.JumpAction{Index: index}}, true
		}
	}

	return nil, false
}
