package commands

import (
	tea "github.com/charmbracelet/bubbletea"

	"carousel/internal/carousel"
	"carousel/internal/eventbus"
	"carousel/internal/ui/state"
	"carousel/internal/ui/strip"
)

// Executor handles command execution
type Executor struct {
	ctx *CommandContext
}

// NewExecutor creates a new command executor
func NewExecutor(state *state.AppState, bus eventbus.EventBus, c *carousel.Carousel, s *strip.Strip) *Executor {
	return &Executor{
		ctx: &CommandContext{
			State:    state,
			Bus:      bus,
			Carousel: c,
			Strip:    s,
		},
	}
}

// SetClipboard replaces the clipboard writer
func (e *Executor) SetClipboard(write func(text string) error) {
	e.ctx.Clipboard = write
}

// ExecuteNavigate creates and executes a navigate command
func (e *Executor) ExecuteNavigate(direction string) tea.Cmd {
	return NewNavigateCommand(e.ctx, direction).Execute()
}

// ExecuteJump creates and executes a jump command
func (e *Executor) ExecuteJump(index int) tea.Cmd {
	return NewJumpCommand(e.ctx, index).Execute()
}

// ExecuteNudge creates and executes a nudge command
func (e *Executor) ExecuteNudge(delta int) tea.Cmd {
	return NewNudgeCommand(e.ctx, delta).Execute()
}

// ExecuteToggleAuto creates and executes a toggle auto command
func (e *Executor) ExecuteToggleAuto() tea.Cmd {
	return NewToggleAutoCommand(e.ctx).Execute()
}

// ExecuteCopySlide creates and executes a copy slide command
func (e *Executor) ExecuteCopySlide() tea.Cmd {
	return NewCopySlideCommand(e.ctx).Execute()
}
