package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
)

// Box returns the framed box style of the current theme.
func Box() lipgloss.Style {
	t := Current()
	return lipgloss.NewStyle().
		Border(t.Border).
		BorderForeground(t.BorderColor).
		Padding(0, 1)
}

// Panel draws lines inside a framed box.
func Panel(w io.Writer, lines []string) {
	fmt.Fprintln(w, Box().Render(strings.Join(lines, "\n")))
}

// SignatureBar renders count relative to max as a bar followed by the
// comma-grouped count, e.g. "█████░░░░░ 12,345".
func SignatureBar(count, max, width int) string {
	if max <= 0 {
		max = 1
	}
	if width < 5 {
		width = 5
	}
	filled := int(float64(count) / float64(max) * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	t := Current()
	return strings.Repeat(t.BarFull, filled) + strings.Repeat(t.BarEmpty, width-filled) + " " + Signatures(count)
}

// Signatures formats a signature count with thousands separators.
func Signatures(n int) string {
	return humanize.Comma(int64(n))
}
