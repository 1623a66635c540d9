package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/core"
)

var palette = map[core.Color]lipgloss.Style{
	core.ColorRed:          fg("1"),
	core.ColorGreen:        fg("2"),
	core.ColorYellow:       fg("3"),
	core.ColorBlue:         fg("4"),
	core.ColorMagenta:      fg("5"),
	core.ColorCyan:         fg("6"),
	core.ColorWhite:        fg("7"),
	core.ColorBrightGreen:  fg("10").Bold(true),
	core.ColorBrightYellow: fg("11").Bold(true),
	core.ColorOrange:       fg("208"),
	core.ColorGray:         fg("245"),
}

func fg(code string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(code))
}

// paint renders text in c. Default-colored text is written as is.
func paint(c core.Color, text string) string {
	style, ok := palette[c]
	if !ok {
		return text
	}
	return style.Render(text)
}

// RenderScreen converts a Screen buffer to a styled string. Adjacent cells
// of one color share a single styled run.
func RenderScreen(s *core.Screen) string {
	var out, run strings.Builder
	out.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			out.WriteByte('\n')
		}

		color := s.GetCell(0, y).Color
		for x := 0; x < s.Width(); x++ {
			cell := s.GetCell(x, y)
			if cell.Color != color {
				out.WriteString(paint(color, run.String()))
				run.Reset()
				color = cell.Color
			}
			run.WriteRune(cell.Rune)
		}
		out.WriteString(paint(color, run.String()))
		run.Reset()
	}
	return out.String()
}
