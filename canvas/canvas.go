// Package canvas provides the low-level drawing primitives over a tcell
// screen: box drawing, text placement, cursor addressing and buffered flush.
package canvas

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Single-line box drawing glyphs.
const (
	glyphH  = '─'
	glyphV  = '│'
	glyphTL = '┌'
	glyphTR = '┐'
	glyphBL = '└'
	glyphBR = '┘'
)

// Canvas wraps a tcell.Screen with a write pen. All drawing goes to the
// back buffer; nothing is visible until Flush.
type Canvas struct {
	screen        tcell.Screen
	width, height int
	penX, penY    int
	style         tcell.Style
}

// New creates a canvas over an initialized screen.
func New(screen tcell.Screen) *Canvas {
	c := &Canvas{screen: screen, style: tcell.StyleDefault}
	c.width, c.height = screen.Size()
	return c
}

// Size returns the current terminal dimensions in cells.
func (c *Canvas) Size() (cols, rows int) {
	return c.width, c.height
}

// Refresh re-queries the terminal size. Call after a resize event.
func (c *Canvas) Refresh() {
	c.screen.Sync()
	c.width, c.height = c.screen.Size()
}

// MoveTo repositions the write pen for subsequent writes.
func (c *Canvas) MoveTo(x, y int) {
	c.penX, c.penY = x, y
}

// WriteText writes s at the pen position and returns the number of
// characters written. The pen advances by display width, so wide glyphs
// occupy two cells but still count as one character.
func (c *Canvas) WriteText(s string) int {
	n := 0
	for _, r := range s {
		c.screen.SetContent(c.penX, c.penY, r, nil, c.style)
		c.penX += runewidth.RuneWidth(r)
		n++
	}
	return n
}

// DrawRect renders a rectangle from the upper-left corner (x1, y1) to the
// bottom-right corner (x2, y2) with single-line box drawing glyphs.
func (c *Canvas) DrawRect(x1, y1, x2, y2 int) {
	for x := x1 + 1; x < x2; x++ {
		c.screen.SetContent(x, y1, glyphH, nil, c.style)
		c.screen.SetContent(x, y2, glyphH, nil, c.style)
	}
	for y := y1 + 1; y < y2; y++ {
		c.screen.SetContent(x1, y, glyphV, nil, c.style)
		c.screen.SetContent(x2, y, glyphV, nil, c.style)
	}
	c.screen.SetContent(x1, y1, glyphTL, nil, c.style)
	c.screen.SetContent(x2, y1, glyphTR, nil, c.style)
	c.screen.SetContent(x1, y2, glyphBL, nil, c.style)
	c.screen.SetContent(x2, y2, glyphBR, nil, c.style)
}

// Clear wipes the back buffer. The next Flush repaints the whole screen.
func (c *Canvas) Clear() {
	c.screen.Clear()
}

// Flush makes all buffered drawing visible. One flush per logical redraw.
func (c *Canvas) Flush() {
	c.screen.Show()
}

// ShowCursor places the visible terminal cursor at (x, y).
func (c *Canvas) ShowCursor(x, y int) {
	c.screen.ShowCursor(x, y)
}

// HideCursor removes the visible terminal cursor.
func (c *Canvas) HideCursor() {
	c.screen.HideCursor()
}
