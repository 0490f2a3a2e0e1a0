package strip

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Window lays pages side by side and cuts out the columns currently in view.
// Each page should already be rendered at the viewport width.
func (s *Strip) Window(pages []string) string {
	if len(pages) == 0 || s.viewport == 0 {
		return ""
	}

	row := lipgloss.JoinHorizontal(lipgloss.Top, pages...)
	lines := strings.Split(row, "\n")
	for i, line := range lines {
		cut := ansi.Cut(line, s.offset, s.offset+s.viewport)
		if w := ansi.StringWidth(cut); w < s.viewport {
			cut += strings.Repeat(" ", s.viewport-w)
		}
		lines[i] = cut
	}
	return strings.Join(lines, "\n")
}
