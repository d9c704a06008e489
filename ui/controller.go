// Package ui owns the view state machine and the event loop: it converts
// terminal events into state transitions and canvas calls.
package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"go.uber.org/zap"

	"macrolog/canvas"
	"macrolog/catalog"
	"macrolog/logging"
	"macrolog/macros"
)

// ViewState selects which screen is displayed and which keys are meaningful.
type ViewState int

const (
	StateOverview ViewState = iota
	StateFormEntry
)

// Screen layout. Each form field is a label plus a 3-row input box around a
// single content row; the form block is centered.
const (
	helpHeight = 3
	helpPad    = 5
	labelWidth = 10
	inputWidth = 50
	fieldPitch = 3
)

// Chimer produces audible feedback for form submissions.
type Chimer interface {
	Confirm()
	Reject()
}

// Controller owns the view state, the form buffers, the catalog and the
// running totals. All mutation happens inside its event handlers, which run
// one at a time on the event loop.
type Controller struct {
	canvas *canvas.Canvas
	foods  []catalog.Food
	totals macros.Totals
	form   form
	state  ViewState
	chime  Chimer
}

// NewController creates a controller in the overview state. chime may be nil.
func NewController(cv *canvas.Canvas, foods []catalog.Food, chime Chimer) *Controller {
	return &Controller{canvas: cv, foods: foods, chime: chime}
}

func (c *Controller) State() ViewState {
	return c.state
}

func (c *Controller) Totals() macros.Totals {
	return c.totals
}

// SetFoods swaps the catalog, e.g. after a reload, and redraws.
func (c *Controller) SetFoods(foods []catalog.Food) {
	c.foods = foods
	c.Render()
}

// Render draws the screen for the current state from scratch. Redraws are
// always a full clear plus repaint; there is no partial update path.
func (c *Controller) Render() {
	switch c.state {
	case StateOverview:
		c.renderOverview()
	case StateFormEntry:
		c.renderForm()
	}
}

// Resize refreshes the canvas dimensions and redraws the active screen.
func (c *Controller) Resize() {
	c.canvas.Refresh()
	c.Render()
}

// HandleKey dispatches a key event for the current state. The returned flag
// is false when the program should quit.
func (c *Controller) HandleKey(ev *tcell.EventKey) bool {
	switch c.state {
	case StateOverview:
		return c.handleOverviewKey(ev)
	case StateFormEntry:
		c.handleFormKey(ev)
	}
	return true
}

// handleOverviewKey recognizes quit and add-food. Quit only works here, so
// typing a food name containing 'q' can never exit the program.
func (c *Controller) handleOverviewKey(ev *tcell.EventKey) bool {
	if ev.Key() != tcell.KeyRune {
		return true
	}
	switch ev.Rune() {
	case 'q':
		return false
	case 'a':
		c.enterForm()
	}
	return true
}

func (c *Controller) handleFormKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyTab:
		if c.form.next() {
			c.renderForm()
		}
	case tcell.KeyBacktab:
		if c.form.prev() {
			c.renderForm()
		}
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if c.form.deleteBackward() {
			c.renderForm()
		}
	case tcell.KeyEnter:
		c.submit()
	case tcell.KeyEscape:
		c.cancel()
	case tcell.KeyRune:
		c.form.insert(ev.Rune())
		c.renderForm()
	}
}

// enterForm switches to the entry form with fresh buffers.
func (c *Controller) enterForm() {
	c.form.clear()
	c.state = StateFormEntry
	c.renderForm()
}

// submit parses the form. A failed parse discards the attempt with the
// reason logged, never rendered; either way the view returns to the
// overview showing current totals.
func (c *Controller) submit() {
	ent, err := c.form.submit()
	if err != nil {
		logging.Warn("discarding submission", zap.Error(err))
		if c.chime != nil {
			c.chime.Reject()
		}
	} else {
		c.totals.AddScaled(ent.food, ent.quantity)
		logging.Info("added food",
			zap.String("name", ent.food.Name),
			zap.Float64("quantity", ent.quantity),
		)
		if c.chime != nil {
			c.chime.Confirm()
		}
	}
	c.state = StateOverview
	c.renderOverview()
}

// cancel discards the buffers without committing.
func (c *Controller) cancel() {
	c.state = StateOverview
	c.renderOverview()
}

// drawBorder frames the whole window above the help area.
func (c *Controller) drawBorder() {
	cols, rows := c.canvas.Size()
	c.canvas.DrawRect(0, 0, cols-1, rows-helpHeight)
}

// drawHelp writes the key legend below the border.
func (c *Controller) drawHelp(labels []string) {
	_, rows := c.canvas.Size()
	n := 0
	for i, label := range labels {
		c.canvas.MoveTo(1+n+i*helpPad, rows-helpHeight+1)
		n += c.canvas.WriteText(label)
	}
}

func (c *Controller) renderOverview() {
	cols, rows := c.canvas.Size()
	c.canvas.Clear()
	c.drawBorder()
	c.drawHelp([]string{"q Quit", "a Add Food"})

	line := fmt.Sprintf("Calories: %.0f Protein: %.0f Carbs: %.0f Fat: %.0f",
		c.totals.Calories, c.totals.Protein, c.totals.Carbs, c.totals.Fat)
	x := cols/2 - len(line)/2
	y := rows / 2
	c.canvas.MoveTo(x, y)
	c.canvas.WriteText("Today:")
	c.canvas.MoveTo(x, y+1)
	c.canvas.WriteText(line)

	count := fmt.Sprintf("%d foods in catalog", len(c.foods))
	c.canvas.MoveTo(cols/2-len(count)/2, y+3)
	c.canvas.WriteText(count)

	c.canvas.HideCursor()
	c.canvas.Flush()
}

// formOrigin returns the top-left of the first field's label row.
func (c *Controller) formOrigin() (x, y int) {
	cols, rows := c.canvas.Size()
	x = cols/2 - (labelWidth+inputWidth+1)/2
	y = rows/2 - (fieldPitch*fieldCount+1)/2
	return x, y
}

// cursorPos computes the terminal cursor cell for the active field from the
// field index and the display width of its buffer. It is recomputed on
// every redraw rather than patched incrementally, so field changes and wide
// glyphs cannot make it drift.
func (c *Controller) cursorPos() (x, y int) {
	ox, oy := c.formOrigin()
	x = ox + labelWidth + 2 + runewidth.StringWidth(c.form.value(c.form.active))
	y = oy + fieldPitch*c.form.active
	return x, y
}

func (c *Controller) renderForm() {
	c.canvas.Clear()
	c.drawBorder()
	c.drawHelp([]string{"Tab Next", "S-Tab Prev", "Ret Submit", "Esc Cancel"})

	ox, oy := c.formOrigin()
	for i, label := range fieldLabels {
		rowY := oy + fieldPitch*i
		c.canvas.MoveTo(ox, rowY)
		c.canvas.WriteText(label)
		c.canvas.DrawRect(ox+labelWidth+1, rowY-1, ox+labelWidth+1+inputWidth, rowY+1)
		c.canvas.MoveTo(ox+labelWidth+2, rowY)
		c.canvas.WriteText(c.form.value(i))
	}

	c.canvas.ShowCursor(c.cursorPos())
	c.canvas.Flush()
}
