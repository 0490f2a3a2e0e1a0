package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/noborus/ov/oviewer"

	"carousel/internal/ui/input/keys"
)

// helpPagerMsg contains the result of a help pager command
type helpPagerMsg struct {
	err error
}

var helpSections = []string{"Navigation", "Scrolling", "Slides", "Other"}

// HelpRenderer handles help content rendering
type HelpRenderer struct {
	keys keys.KeyMap
}

// NewHelpRenderer creates a new help renderer
func NewHelpRenderer(km keys.KeyMap) *HelpRenderer {
	return &HelpRenderer{keys: km}
}

// RenderHelpContent generates help content with colors for the pager
func (r *HelpRenderer) RenderHelpContent(configPath string) string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		MarginBottom(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39")).
		MarginTop(1)

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220"))

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	var help strings.Builder

	help.WriteString(titleStyle.Render("Carousel Help"))
	help.WriteString("\n")

	for i, group := range r.keys.FullHelp() {
		name := "Other"
		if i < len(helpSections) {
			name = helpSections[i]
		}
		help.WriteString(sectionStyle.Render(name))
		help.WriteString("\n")
		for _, b := range group {
			help.WriteString(helpLine(b, keyStyle, descStyle))
		}
		help.WriteString("\n")
	}

	help.WriteString(sectionStyle.Render("Mouse"))
	help.WriteString("\n")
	help.WriteString(helpRow("click", "prev / next / dot under the pointer", keyStyle, descStyle))
	help.WriteString(helpRow("wheel", "scroll the strip", keyStyle, descStyle))
	help.WriteString("\n")

	if configPath != "" {
		help.WriteString(lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("241")).
			Render(fmt.Sprintf("  Deck: %s (reloaded on change)", configPath)))
		help.WriteString("\n")
	}

	return help.String()
}

func helpLine(b key.Binding, keyStyle, descStyle lipgloss.Style) string {
	h := b.Help()
	if h.Key == "" {
		return ""
	}
	return helpRow(h.Key, h.Desc, keyStyle, descStyle)
}

func helpRow(k, desc string, keyStyle, descStyle lipgloss.Style) string {
	// Pad before styling so escape codes do not count towards the width
	return fmt.Sprintf("  %s %s\n", keyStyle.Render(fmt.Sprintf("%-12s", k)), descStyle.Render(desc))
}

// HelpOps handles help operations
type HelpOps struct {
	program *tea.Program // reference to Bubble Tea program for terminal management
}

// NewHelpOps creates a new help operations instance
func NewHelpOps(program *tea.Program) *HelpOps {
	return &HelpOps{
		program: program,
	}
}

// ShowHelpInPager shows help content using ov pager
func (h *HelpOps) ShowHelpInPager(helpContent string) error {
	if h.program == nil {
		return fmt.Errorf("program not set")
	}

	// Release terminal control to run ov
	if err := h.program.ReleaseTerminal(); err != nil {
		return err
	}

	// Ensure terminal is restored even if ov fails
	defer func() {
		// Give ov time to exit before restoring the terminal
		time.Sleep(100 * time.Millisecond)
		_ = h.program.RestoreTerminal()
	}()

	root, err := oviewer.NewRoot(strings.NewReader(helpContent))
	if err != nil {
		return fmt.Errorf("open help pager: %w", err)
	}

	// Don't write the content back to our screen on exit
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}
