package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"github.com/mattn/go-runewidth"

	"carousel/internal/carousel"
	"carousel/internal/domain"
	"carousel/internal/ui/parts"
)

const (
	chromeWidth = 4 // Main padding
	// padding, header, gap, gap, controls, status
	chromeHeight = 7
	minPage      = 3
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width          int
	Height         int
	Title          string
	ConfigPath     string
	Slides         []domain.Slide
	Snapshot       carousel.Snapshot
	PadStart       int
	ShowDots       bool
	ShowHelpFooter bool
	StatusMessage  string
	StatusIsError  bool
	InputPrompt    string
	TextInput      string
	HelpView       string
	// Window cuts the visible columns out of the rendered pages
	Window func(pages []string) string
}

// Renderer handles all view rendering
type Renderer struct {
	styles *Styles
	zone   *zone.Manager
}

// NewRenderer creates a new renderer. z may be nil, in which case no click
// zones are marked.
func NewRenderer(z *zone.Manager) *Renderer {
	return &Renderer{
		styles: NewStyles(),
		zone:   z,
	}
}

// PageWidth is the strip viewport for a terminal width
func PageWidth(width int) int {
	return max(width-chromeWidth, 1)
}

// PageHeight is the slide height for a terminal height
func PageHeight(height int, helpFooter bool) int {
	h := height - chromeHeight
	if helpFooter {
		h--
	}
	return max(h, minPage)
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	width := PageWidth(state.Width)
	height := PageHeight(state.Height, state.ShowHelpFooter)

	content := &strings.Builder{}
	content.WriteString(r.renderHeader(state, width))
	content.WriteString("\n\n")

	if len(state.Slides) == 0 || state.Window == nil {
		empty := "No slides."
		if state.ConfigPath != "" {
			empty = fmt.Sprintf("No slides. Add [[slides]] to %s", state.ConfigPath)
		}
		content.WriteString(lipgloss.NewStyle().Width(width).Height(height).Render(r.styles.Dim.Render(empty)))
	} else {
		pages := make([]string, len(state.Slides))
		for i, slide := range state.Slides {
			pages[i] = r.RenderPage(slide, width, height, state.Snapshot.IsActive(i))
		}
		content.WriteString(state.Window(pages))
	}
	content.WriteString("\n\n")

	content.WriteString(r.renderControls(state, width))
	content.WriteString("\n")
	content.WriteString(r.renderStatus(state, width))

	if state.ShowHelpFooter && state.HelpView != "" {
		content.WriteString("\n")
		content.WriteString(r.styles.Help.Render(state.HelpView))
	}

	return r.styles.Main.MaxHeight(max(state.Height, 1)).Render(content.String())
}

func (r *Renderer) renderHeader(state ViewState, width int) string {
	s := state.Snapshot
	counter := r.styles.Counter.Render(fmt.Sprintf("%s / %s",
		parts.FormatCount(s, state.PadStart), parts.FormatMax(s, state.PadStart)))

	badge := ""
	if s.Mode != nil {
		badge = s.Mode.String()
		if l, ok := s.Mode.(carousel.Loop); ok && l.Auto {
			badge = fmt.Sprintf("loop · auto %s", l.Period())
		}
		badge = r.styles.ModeBadge.Render(badge)
	}

	right := strings.TrimSpace(badge + "  " + counter)
	titleRoom := width - lipgloss.Width(right) - 2
	title := state.Title
	if title == "" {
		title = "carousel"
	}
	left := ""
	if titleRoom > 0 {
		left = r.styles.Title.Render(runewidth.Truncate(title, titleRoom, "…"))
	}

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		return right
	}
	return left + strings.Repeat(" ", gap) + right
}

// RenderPage renders one slide as a bordered page of exactly width x height cells
func (r *Renderer) RenderPage(slide domain.Slide, width, height int, active bool) string {
	style := r.styles.Page
	if active {
		style = r.styles.ActivePage
	}

	// Too small for a border
	if width < 6 || height < minPage {
		return lipgloss.NewStyle().Width(width).Height(height).MaxHeight(height).
			Render(runewidth.Truncate(slide.Title, width, ""))
	}

	innerWidth := width - style.GetHorizontalFrameSize()
	innerHeight := height - style.GetVerticalFrameSize()

	var lines []string
	if slide.Title != "" {
		lines = append(lines, strings.Split(r.styles.SlideTitle.Render(runewidth.Truncate(slide.Title, innerWidth, "…")), "\n")...)
	}
	if body := strings.TrimSpace(slide.Body); body != "" {
		wrapped := r.styles.SlideBody.Width(innerWidth).Render(body)
		lines = append(lines, strings.Split(wrapped, "\n")...)
	}
	if len(lines) > innerHeight {
		lines = lines[:innerHeight]
	}

	return style.
		Width(width - style.GetHorizontalBorderSize()).
		Height(height - style.GetVerticalBorderSize()).
		Render(strings.Join(lines, "\n"))
}

func (r *Renderer) renderControls(state ViewState, width int) string {
	s := state.Snapshot
	if s.ItemCount == 0 {
		return ""
	}

	prev := r.renderControl(parts.Prev{}, "‹ prev", s)
	next := r.renderControl(parts.Next{}, "next ›", s)

	middle := ""
	if state.ShowDots {
		dots := make([]string, 0, s.ItemCount)
		for _, jump := range parts.Jumps(s) {
			dot := r.styles.Dot.Render("○")
			if jump.Active(s) {
				dot = r.styles.ActiveDot.Render("●")
			}
			dots = append(dots, r.mark(jump.ZoneID(), dot))
		}
		middle = strings.Join(dots, " ")
		// Fall back to the plain row when the dots would not fit
		if lipgloss.Width(prev)+lipgloss.Width(next)+lipgloss.Width(middle)+4 > width {
			middle = ""
		}
	}

	row := prev + "  " + next
	if middle != "" {
		row = prev + "  " + middle + "  " + next
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, row)
}

func (r *Renderer) renderControl(c parts.Control, label string, s carousel.Snapshot) string {
	if c.Disabled(s) {
		return r.styles.ControlOff.Render(label)
	}
	return r.mark(c.ZoneID(), r.styles.Control.Render(label))
}

func (r *Renderer) renderStatus(state ViewState, width int) string {
	if state.InputPrompt != "" {
		return r.styles.Prompt.Render(state.InputPrompt) + state.TextInput
	}
	if state.StatusMessage == "" {
		return ""
	}
	msg := runewidth.Truncate(state.StatusMessage, width, "…")
	if state.StatusIsError {
		return r.styles.StatusError.Render(msg)
	}
	return r.styles.Status.Render(msg)
}

func (r *Renderer) mark(id, s string) string {
	if r.zone == nil {
		return s
	}
	return r.zone.Mark(id, s)
}
