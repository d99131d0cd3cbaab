package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/sdeming/dropjack-sub000/internal/core"
)

// palette holds the ANSI color code for each core.Color. ColorDefault keeps
// the terminal foreground.
var palette = [...]string{
	core.ColorDefault:       "",
	core.ColorRed:           "1",
	core.ColorGreen:         "2",
	core.ColorYellow:        "3",
	core.ColorBlue:          "4",
	core.ColorMagenta:       "5",
	core.ColorCyan:          "6",
	core.ColorWhite:         "7",
	core.ColorBrightRed:     "9",
	core.ColorBrightGreen:   "10",
	core.ColorBrightYellow:  "11",
	core.ColorBrightBlue:    "12",
	core.ColorBrightMagenta: "13",
	core.ColorBrightCyan:    "14",
	core.ColorBrightWhite:   "15",
	core.ColorOrange:        "208",
	core.ColorGray:          "245",
}

// Renderer turns screen buffers into styled strings. SSH sessions each get
// their own renderer so colors follow the remote terminal.
type Renderer struct {
	styles [len(palette)]lipgloss.Style
}

// NewRenderer builds styles with r, or the default renderer when r is nil.
func NewRenderer(r *lipgloss.Renderer) *Renderer {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	out := &Renderer{}
	for i, code := range palette {
		st := r.NewStyle()
		if code != "" {
			st = st.Foreground(lipgloss.Color(code))
		}
		out.styles[i] = st
	}
	return out
}

func (r *Renderer) style(c core.Color) lipgloss.Style {
	if int(c) >= len(r.styles) {
		return r.styles[core.ColorDefault]
	}
	return r.styles[c]
}

// Render converts s row by row, styling each run of same-colored cells once.
func (r *Renderer) Render(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteByte('\n')
		}
		x := 0
		for x < s.Width() {
			color := s.GetCell(x, y).Color
			run.Reset()
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != color {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}
			sb.WriteString(r.style(color).Render(run.String()))
		}
	}
	return sb.String()
}

// RenderScreen renders s with the default renderer.
func RenderScreen(s *core.Screen) string {
	return NewRenderer(nil).Render(s)
}
