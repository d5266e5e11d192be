package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/fapbird/internal/core"
)

// palette maps core.Color to terminal colors.
var palette = map[core.Color]lipgloss.Color{
	core.ColorBlack:       lipgloss.Color("0"),
	core.ColorRed:         lipgloss.Color("1"),
	core.ColorGreen:       lipgloss.Color("2"),
	core.ColorYellow:      lipgloss.Color("3"),
	core.ColorBlue:        lipgloss.Color("4"),
	core.ColorWhite:       lipgloss.Color("7"),
	core.ColorBrightRed:   lipgloss.Color("9"),
	core.ColorBrightGreen: lipgloss.Color("10"),
	core.ColorBrightWhite: lipgloss.Color("15"),
	core.ColorGray:        lipgloss.Color("245"),
}

// helpStyle renders the key help bar under the playfield.
var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

type colorPair struct {
	fg, bg core.Color
}

// styles caches one lipgloss style per foreground/background pair.
var styles = map[colorPair]lipgloss.Style{}

func styleFor(p colorPair) lipgloss.Style {
	if s, ok := styles[p]; ok {
		return s
	}
	s := lipgloss.NewStyle()
	if c, ok := palette[p.fg]; ok {
		s = s.Foreground(c)
	}
	if c, ok := palette[p.bg]; ok {
		s = s.Background(c)
	}
	styles[p] = s
	return s
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells with the same colors share one styled run.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			pair := colorPair{cell.Color, cell.Background}

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if (colorPair{cell.Color, cell.Background}) != pair {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			if pair == (colorPair{}) {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(styleFor(pair).Render(run.String()))
		}
	}
	return sb.String()
}
