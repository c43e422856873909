package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/olivier-w/glowgrid/internal/field"
)

// button is the call-to-action box, placed in field-local terminal cells.
type button struct {
	x, y  int
	w, h  int
	lines []string
}

// layoutButton renders label with style and centers it in a cols x rows
// field.
func layoutButton(label string, style lipgloss.Style, cols, rows int) button {
	rendered := style.Render(label)
	b := button{
		w:     lipgloss.Width(rendered),
		h:     lipgloss.Height(rendered),
		lines: strings.Split(rendered, "\n"),
	}
	b.x = (cols - b.w) / 2
	b.y = (rows - b.h) / 2
	if b.x < 0 {
		b.x = 0
	}
	if b.y < 0 {
		b.y = 0
	}
	return b
}

func (b button) contains(cx, cy int) bool {
	return cx >= b.x && cx < b.x+b.w && cy >= b.y && cy < b.y+b.h
}

// center returns the box center in pixels for a pw x ph character cell.
func (b button) center(pw, ph float64) (x, y float64) {
	return (float64(b.x) + float64(b.w)/2) * pw, (float64(b.y) + float64(b.h)/2) * ph
}

func (b button) overlay() field.Overlay {
	return field.Overlay{X: b.x, Y: b.y, Width: b.w, Lines: b.lines}
}
