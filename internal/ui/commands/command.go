package commands

import (
	"fmt"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"carousel/internal/carousel"
	"carousel/internal/eventbus"
	"carousel/internal/ui/parts"
	"carousel/internal/ui/state"
	"carousel/internal/ui/strip"
)

// Command represents an executable action
type Command interface {
	Execute() tea.Cmd
}

// CommandContext provides context for command execution
type CommandContext struct {
	State    *state.AppState
	Bus      eventbus.EventBus
	Carousel *carousel.Carousel
	Strip    *strip.Strip
	// Clipboard writes text to the system clipboard
	Clipboard func(text string) error
}

// SlideCopiedMsg reports the result of a CopySlideCommand
type SlideCopiedMsg struct {
	Index int
	Title string
	Err   error
}

// NavigateCommand moves one slide or to either end
type NavigateCommand struct {
	ctx       *CommandContext
	direction string
}

// NewNavigateCommand creates a new navigate command
func NewNavigateCommand(ctx *CommandContext, direction string) *NavigateCommand {
	return &NavigateCommand{ctx: ctx, direction: direction}
}

// Execute performs the navigation
func (c *NavigateCommand) Execute() tea.Cmd {
	s := c.ctx.Carousel.Snapshot()
	if s.ItemCount == 0 {
		return nil
	}
	switch c.direction {
	case "prev":
		if !(parts.Prev{}).Activate(s) {
			c.ctx.State.SetStatus("Already at the first slide", false)
		}
	case "next":
		if !(parts.Next{}).Activate(s) {
			c.ctx.State.SetStatus("Already at the last slide", false)
		}
	case "first":
		parts.IndexJump{Index: 0}.Activate(s)
	case "last":
		parts.IndexJump{Index: s.ItemCount - 1}.Activate(s)
	}
	return nil
}

// JumpCommand scrolls straight to one slide
type JumpCommand struct {
	ctx   *CommandContext
	index int
}

// NewJumpCommand creates a new jump command for a zero-based index
func NewJumpCommand(ctx *CommandContext, index int) *JumpCommand {
	return &JumpCommand{ctx: ctx, index: index}
}

// Execute performs the jump
func (c *JumpCommand) Execute() tea.Cmd {
	s := c.ctx.Carousel.Snapshot()
	if c.index < 0 || c.index >= s.ItemCount {
		c.ctx.State.SetStatus(fmt.Sprintf("No slide %d (1-%d)", c.index+1, s.ItemCount), true)
		return nil
	}
	parts.IndexJump{Index: c.index}.Activate(s)
	return nil
}

// NudgeCommand scrolls the strip by a number of cells without changing the index
type NudgeCommand struct {
	ctx   *CommandContext
	delta int
}

// NewNudgeCommand creates a new nudge command
func NewNudgeCommand(ctx *CommandContext, delta int) *NudgeCommand {
	return &NudgeCommand{ctx: ctx, delta: delta}
}

// Execute performs the nudge
func (c *NudgeCommand) Execute() tea.Cmd {
	if c.ctx.Strip != nil {
		c.ctx.Strip.ScrollBy(c.delta)
	}
	return nil
}

// ToggleAutoCommand switches auto-advance on or off in loop mode
type ToggleAutoCommand struct {
	ctx *CommandContext
}

// NewToggleAutoCommand creates a new toggle auto command
func NewToggleAutoCommand(ctx *CommandContext) *ToggleAutoCommand {
	return &ToggleAutoCommand{ctx: ctx}
}

// Execute flips auto-advance and asks for the setting to be saved
func (c *ToggleAutoCommand) Execute() tea.Cmd {
	s := c.ctx.Carousel.Snapshot()
	loop, ok := s.Mode.(carousel.Loop)
	if !ok {
		c.ctx.State.SetStatus("Auto-advance needs loop mode", true)
		return nil
	}
	loop.Auto = !loop.Auto
	c.ctx.Carousel.Configure(carousel.Options{ItemCount: s.ItemCount, Mode: loop})

	if loop.Auto {
		c.ctx.State.SetStatus(fmt.Sprintf("Auto-advance on (%s)", loop.Period()), false)
	} else {
		c.ctx.State.SetStatus("Auto-advance off", false)
	}
	if c.ctx.Bus != nil {
		c.ctx.Bus.Publish(eventbus.ConfigChangedEvent{Mode: "loop", Auto: loop.Auto})
	}
	return nil
}

// CopySlideCommand copies the current slide's text to the clipboard
type CopySlideCommand struct {
	ctx *CommandContext
}

// NewCopySlideCommand creates a new copy command
func NewCopySlideCommand(ctx *CommandContext) *CopySlideCommand {
	return &CopySlideCommand{ctx: ctx}
}

// Execute returns a command that writes to the clipboard off the UI loop
func (c *CopySlideCommand) Execute() tea.Cmd {
	index := c.ctx.Carousel.Snapshot().CurrentIndex
	slide, ok := c.ctx.State.CurrentSlide(index)
	if !ok {
		c.ctx.State.SetStatus("Nothing to copy", false)
		return nil
	}
	write := c.ctx.Clipboard
	if write == nil {
		write = clipboard.WriteAll
	}
	text := slide.Text()
	return func() tea.Msg {
		if err := write(text); err != nil {
			return SlideCopiedMsg{Index: index, Title: slide.Title, Err: fmt.Errorf("clipboard error: %w", err)}
		}
		return SlideCopiedMsg{Index: index, Title: slide.Title}
	}
}
