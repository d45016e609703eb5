package tui

import (
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-pacman/internal/core"
)

// palette turns core colors into lipgloss styles. Styles are built from
// Color.RGB so the terminal shows the same colors as the window. SSH
// sessions render concurrently, hence the lock.
type palette struct {
	mu     sync.Mutex
	styles map[core.Color]lipgloss.Style
}

var colors = &palette{styles: map[core.Color]lipgloss.Style{}}

// hexColor is the lipgloss true-color value of c.
func hexColor(c core.Color) lipgloss.Color {
	r, g, b := c.RGB()
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", r, g, b))
}

// style returns the cached style for c. ColorDefault keeps the terminal's
// own foreground.
func (p *palette) style(c core.Color) lipgloss.Style {
	p.mu.Lock()
	defer p.mu.Unlock()
	if s, ok := p.styles[c]; ok {
		return s
	}
	s := lipgloss.NewStyle()
	if c != core.ColorDefault {
		s = s.Foreground(hexColor(c))
	}
	p.styles[c] = s
	return s
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Each row is cut into runs of one color so a run costs one escape sequence.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for _, run := range colorRuns(s, y) {
			sb.WriteString(colors.style(run.color).Render(run.text))
		}
	}
	return sb.String()
}

// colorRun is a stretch of one row drawn in a single color.
type colorRun struct {
	color core.Color
	text  string
}

func colorRuns(s *core.Screen, y int) []colorRun {
	var runs []colorRun
	var text strings.Builder
	for x := range s.Width() {
		cell := s.GetCell(x, y)
		if n := len(runs); n > 0 && runs[n-1].color == cell.Color {
			text.WriteRune(cell.Rune)
			continue
		}
		if n := len(runs); n > 0 {
			runs[n-1].text = text.String()
			text.Reset()
		}
		runs = append(runs, colorRun{color: cell.Color})
		text.WriteRune(cell.Rune)
	}
	if n := len(runs); n > 0 {
		runs[n-1].text = text.String()
	}
	return runs
}
