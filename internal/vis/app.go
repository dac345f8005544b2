// Package vis implements a Gio-based view of the hotel.
package vis

import (
	"gioui.org/app"
	"gioui.org/io/event"
	"gioui.org/io/key"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/paint"
	"gioui.org/widget/material"

	"github.com/elektrokombinacija/hotel-alloc/internal/booking"
	"github.com/elektrokombinacija/hotel-alloc/internal/vis/draw"
	"github.com/elektrokombinacija/hotel-alloc/internal/vis/state"
	"github.com/elektrokombinacija/hotel-alloc/internal/vis/widgets"
)

// App is the main visualization application.
type App struct {
	state   *state.State
	theme   *material.Theme
	toolbar *widgets.Toolbar
	floors  *widgets.Floors
}

// NewApp creates a new visualization application for a desk.
func NewApp(desk *booking.Desk) *App {
	th := material.NewTheme()
	st := state.NewState(desk)

	return &App{
		state:   st,
		theme:   th,
		toolbar: widgets.NewToolbar(st),
		floors:  widgets.NewFloors(st),
	}
}

// Run starts the application event loop.
func (a *App) Run(w *app.Window) error {
	var ops op.Ops

	// Event filters for keyboard input
	tag := new(int)
	focused := false

	for {
		switch e := w.Event().(type) {
		case app.DestroyEvent:
			return e.Err

		case app.FrameEvent:
			gtx := app.NewContext(&ops, e)

			// Handle keyboard events
			for {
				ev, ok := gtx.Event(key.Filter{Focus: tag, Optional: key.ModCtrl | key.ModShift})
				if !ok {
					break
				}
				if ke, ok := ev.(key.Event); ok && ke.State == key.Press {
					a.handleKeyEvent(ke)
				}
			}

			// Request focus for keyboard input
			event.Op(gtx.Ops, tag)
			if !focused {
				gtx.Execute(key.FocusCmd{Tag: tag})
				focused = true
			}

			a.layout(gtx)
			e.Frame(gtx.Ops)
		}
	}
}

func (a *App) handleKeyEvent(e key.Event) {
	switch e.Name {
	case key.NameReturn, "B":
		a.state.Book()
	case key.NameUpArrow:
		a.state.SetRequested(a.state.Requested + 1)
	case key.NameDownArrow:
		a.state.SetRequested(a.state.Requested - 1)
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		a.state.SetRequested(int(e.Name[0] - '0'))
	case "R":
		a.state.Randomize()
	case "X":
		a.state.Reset()
	case "Z":
		if e.Modifiers.Contain(key.ModCtrl) {
			a.state.Undo()
		}
	case "Y":
		if e.Modifiers.Contain(key.ModCtrl) {
			a.state.Redo()
		}
	}
}

func (a *App) layout(gtx layout.Context) layout.Dimensions {
	paint.Fill(gtx.Ops, draw.ColorBackground)

	return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return a.toolbar.Layout(gtx, a.theme)
		}),
		layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
			return a.floors.Layout(gtx, a.theme)
		}),
	)
}
