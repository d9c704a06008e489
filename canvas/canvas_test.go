package canvas

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func newTestCanvas(t *testing.T, cols, rows int) (*Canvas, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("initializing simulation screen: %v", err)
	}
	screen.SetSize(cols, rows)
	t.Cleanup(screen.Fini)

	c := New(screen)
	c.Refresh()
	return c, screen
}

func cellRune(t *testing.T, screen tcell.SimulationScreen, x, y int) rune {
	t.Helper()
	r, _, _, _ := screen.GetContent(x, y)
	return r
}

func TestDrawRect(t *testing.T) {
	c, screen := newTestCanvas(t, 20, 10)

	c.DrawRect(2, 1, 10, 5)
	c.Flush()

	corners := []struct {
		name string
		x, y int
		want rune
	}{
		{"top-left", 2, 1, '┌'},
		{"top-right", 10, 1, '┐'},
		{"bottom-left", 2, 5, '└'},
		{"bottom-right", 10, 5, '┘'},
		{"top edge", 5, 1, '─'},
		{"bottom edge", 5, 5, '─'},
		{"left edge", 2, 3, '│'},
		{"right edge", 10, 3, '│'},
	}
	for _, tt := range corners {
		t.Run(tt.name, func(t *testing.T) {
			if got := cellRune(t, screen, tt.x, tt.y); got != tt.want {
				t.Errorf("Expected %q at (%d,%d), got %q", tt.want, tt.x, tt.y, got)
			}
		})
	}

	// Interior stays untouched
	if got := cellRune(t, screen, 5, 3); got != ' ' {
		t.Errorf("Expected interior to stay blank, got %q", got)
	}
}

func TestWriteTextReturnsCharacterCount(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{"ascii", "hello", 5},
		{"empty", "", 0},
		{"accented", "crème", 5},
		{"wide glyphs", "米飯", 2},
	}

	c, _ := newTestCanvas(t, 40, 5)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c.MoveTo(0, 0)
			if got := c.WriteText(tt.text); got != tt.want {
				t.Errorf("Expected %d characters written for %q, got %d", tt.want, tt.text, got)
			}
		})
	}
}

func TestWriteTextAdvancesPenByDisplayWidth(t *testing.T) {
	c, screen := newTestCanvas(t, 40, 5)

	c.MoveTo(0, 0)
	c.WriteText("米")
	c.WriteText("x")
	c.Flush()

	// The wide glyph occupies cells 0-1, so 'x' must land at cell 2.
	if got := cellRune(t, screen, 2, 0); got != 'x' {
		t.Errorf("Expected 'x' at column 2 after wide glyph, got %q", got)
	}
}

func TestRefreshTracksResize(t *testing.T) {
	c, screen := newTestCanvas(t, 80, 24)

	screen.SetSize(100, 40)
	c.Refresh()

	cols, rows := c.Size()
	if cols != 100 || rows != 40 {
		t.Errorf("Expected size 100x40 after resize, got %dx%d", cols, rows)
	}
}
