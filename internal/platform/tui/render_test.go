package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

func TestPainterRender(t *testing.T) {
	s := core.NewScreen(10, 3)
	s.DrawText(0, 0, "hi")
	s.SetColor(5, 1, '#', core.ColorGreen)
	s.SetColor(6, 1, '#', core.Color(200))

	out := NewPainter(lipgloss.DefaultRenderer()).Render(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	if !strings.Contains(lines[0], "hi") {
		t.Errorf("first line missing text: %q", lines[0])
	}
	if strings.Count(lines[1], "#") != 2 {
		t.Errorf("unknown colors should still render their runes: %q", lines[1])
	}
}

func TestCenterText(t *testing.T) {
	if got := centerText("ab", 6); got != "  ab" {
		t.Errorf("centerText = %q", got)
	}
	if got := centerText("too long", 4); got != "too long" {
		t.Errorf("overflowing text should be unchanged, got %q", got)
	}
}
