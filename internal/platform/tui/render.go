package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-trainer/internal/core"
)

// cellStyle is the colour pair a run of cells shares.
type cellStyle struct {
	fg, bg core.Color
}

// Styler caches one lipgloss style per colour pair for a renderer.
type Styler struct {
	renderer *lipgloss.Renderer
	styles   map[cellStyle]lipgloss.Style
}

// NewStyler creates a styler for the given renderer, or for the default
// renderer when r is nil.
func NewStyler(r *lipgloss.Renderer) *Styler {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return &Styler{
		renderer: r,
		styles:   make(map[cellStyle]lipgloss.Style),
	}
}

func (st *Styler) style(cs cellStyle) lipgloss.Style {
	if s, ok := st.styles[cs]; ok {
		return s
	}
	s := st.renderer.NewStyle().
		Foreground(lipgloss.Color(cs.fg.Hex())).
		Background(lipgloss.Color(cs.bg.Hex()))
	st.styles[cs] = s
	return s
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colours to minimize ANSI escape sequences.
func (st *Styler) RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same colours for efficiency
		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			start := cellStyle{fg: cell.FG, bg: cell.BG}

			// Collect consecutive cells with same colours
			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if (cellStyle{fg: cell.FG, bg: cell.BG}) != start {
					break
				}
				// Trailing half of a wide rune
				if cell.Rune != 0 {
					run.WriteRune(cell.Rune)
				}
				x++
			}

			sb.WriteString(st.style(start).Render(run.String()))
		}
	}
	return sb.String()
}
