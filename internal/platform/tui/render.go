package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/randscreen/internal/core"
)

// colorPair is a foreground/background combination.
type colorPair struct {
	fg, bg core.Color
}

// cellStyles holds a lipgloss style for every color combination.
var cellStyles = buildCellStyles()

func buildCellStyles() map[colorPair]lipgloss.Style {
	colors := append([]core.Color{core.ColorDefault}, core.Palette()...)
	styles := make(map[colorPair]lipgloss.Style, len(colors)*len(colors))

	for _, fg := range colors {
		for _, bg := range colors {
			style := lipgloss.NewStyle()
			if c, ok := lipglossColor(fg); ok {
				style = style.Foreground(c)
			}
			if c, ok := lipglossColor(bg); ok {
				style = style.Background(c)
			}
			styles[colorPair{fg, bg}] = style
		}
	}
	return styles
}

// lipglossColor maps a console color to its ANSI index. ColorDefault has none.
func lipglossColor(c core.Color) (lipgloss.Color, bool) {
	idx := c.ANSI()
	if idx < 0 {
		return "", false
	}
	return lipgloss.Color(strconv.Itoa(idx)), true
}

// Swatch renders text in the given colors.
func Swatch(text string, fg, bg core.Color) string {
	style, ok := cellStyles[colorPair{fg, bg}]
	if !ok {
		return text
	}
	return style.Render(text)
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := s.GetCell(x, y)
			pair := colorPair{start.Fg, start.Bg}

			// Collect consecutive cells with same colors
			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Fg != pair.fg || cell.Bg != pair.bg {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(Swatch(run.String(), pair.fg, pair.bg))
		}
	}
	return sb.String()
}
