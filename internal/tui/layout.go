package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// clipTo cuts a line to the terminal width, counting wide CJK runes as two
// cells so mixed English/Chinese lines never overflow. Lines arrive here
// already styled, so the cut has to skip escape sequences and keep the
// trailing reset.
func clipTo(line string, width int) string {
	if width <= 0 {
		return line
	}
	return ansi.Truncate(line, width, "")
}

// centered places a block of lines in the middle of the screen. With
// unknown dimensions the block is returned as-is, matching the first frame
// before the size message arrives.
func centered(width, height int, lines []string) string {
	content := strings.Join(lines, "\n")
	if width == 0 || height == 0 {
		return content
	}
	clipped := make([]string, len(lines))
	for i, l := range lines {
		clipped[i] = clipTo(l, width)
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, strings.Join(clipped, "\n"))
}

// footerLine pins a hint line to the bottom of an already placed body.
func footerLine(width int, body, footer string) string {
	if width == 0 || footer == "" {
		return body
	}
	return body + "\n" + lipgloss.Place(width, 1, lipgloss.Center, lipgloss.Center, clipTo(footer, width))
}
