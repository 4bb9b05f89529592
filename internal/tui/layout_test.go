package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

func TestClipToCountsWideRunes(t *testing.T) {
	line := "apple 苹果 banana"
	clipped := clipTo(line, 9)
	if w := runewidth.StringWidth(clipped); w > 9 {
		t.Fatalf("clipped width %d exceeds limit: %q", w, clipped)
	}
	if !strings.HasPrefix(line, clipped) {
		t.Fatalf("clip must be a prefix, got %q", clipped)
	}
}

func TestClipToStyledLineKeepsWidthAndReset(t *testing.T) {
	styled := "\x1b[38;5;243m" + strings.Repeat("x", 96) + "\x1b[0m"
	clipped := clipTo(styled, 80)
	if w := ansi.StringWidth(clipped); w != 80 {
		t.Fatalf("visible width %d, want 80: %q", w, clipped)
	}
	if !strings.Contains(clipped, "\x1b[38;5;243m") {
		t.Fatalf("opening color sequence lost: %q", clipped)
	}
	if !strings.Contains(clipped, "\x1b[0m") {
		t.Fatalf("color left open after clip: %q", clipped)
	}
}

func TestClipToZeroWidthPassesThrough(t *testing.T) {
	if got := clipTo("hello", 0); got != "hello" {
		t.Fatalf("unknown width should not clip, got %q", got)
	}
}

func TestCenteredWithoutDimensions(t *testing.T) {
	lines := []string{"a", "b"}
	if got := centered(0, 0, lines); got != "a\nb" {
		t.Fatalf("zero dimensions should join lines verbatim, got %q", got)
	}
}
