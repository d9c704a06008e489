package ui

import (
	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"macrolog/canvas"
	"macrolog/catalog"
	"macrolog/logging"
)

// EventCatalog delivers reloaded catalog records into the event loop, so
// the controller only ever mutates state on the loop goroutine.
type EventCatalog struct {
	tcell.EventTime
	Foods []catalog.Food
}

// App ties the screen, canvas and controller together and runs the event
// loop: one blocking read per iteration, each handler running to completion
// before the next event is read.
type App struct {
	screen tcell.Screen
	ctrl   *Controller
}

// NewApp creates the application over an initialized screen. chime may be nil.
func NewApp(screen tcell.Screen, foods []catalog.Food, chime Chimer) *App {
	return &App{
		screen: screen,
		ctrl:   NewController(canvas.New(screen), foods, chime),
	}
}

// PostCatalog hands a reloaded food list to the event loop. Safe to call
// from other goroutines.
func (a *App) PostCatalog(foods []catalog.Food) {
	ev := &EventCatalog{Foods: foods}
	ev.SetEventNow()
	if err := a.screen.PostEvent(ev); err != nil {
		logging.Warn("dropping catalog reload event", zap.Error(err))
	}
}

// Run draws the initial screen and blocks on the event loop until quit.
// Key events go to the controller, resizes refresh the canvas, catalog
// events swap the food list. Focus, paste and mouse events are observed
// but not acted on.
func (a *App) Run() {
	a.ctrl.Render()
	for {
		ev := a.screen.PollEvent()
		if ev == nil {
			return
		}
		switch ev := ev.(type) {
		case *tcell.EventKey:
			if !a.ctrl.HandleKey(ev) {
				return
			}
		case *tcell.EventResize:
			a.ctrl.Resize()
		case *EventCatalog:
			a.ctrl.SetFoods(ev.Foods)
		}
	}
}
