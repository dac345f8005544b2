package widgets

import (
	"fmt"
	"image"

	"gioui.org/layout"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"

	"github.com/elektrokombinacija/hotel-alloc/internal/core"
	"github.com/elektrokombinacija/hotel-alloc/internal/vis/draw"
	"github.com/elektrokombinacija/hotel-alloc/internal/vis/state"
)

// Floors draws the hotel top floor first, stairs/lift on the left.
// Clicking a room toggles its occupancy.
type Floors struct {
	state  *state.State
	rooms  map[core.RoomID]*widget.Clickable
	list   widget.List
	floors []int
}

// NewFloors creates the floor grid widget.
func NewFloors(st *state.State) *Floors {
	inv := st.Desk.Inventory()
	rooms := make(map[core.RoomID]*widget.Clickable, len(inv.Rooms))
	for _, r := range inv.Rooms {
		rooms[r.ID] = new(widget.Clickable)
	}

	asc := inv.Floors()
	floors := make([]int, len(asc))
	for i, f := range asc {
		floors[len(asc)-1-i] = f
	}

	f := &Floors{
		state:  st,
		rooms:  rooms,
		floors: floors,
	}
	f.list.Axis = layout.Vertical
	return f
}

// Layout renders the grid.
func (f *Floors) Layout(gtx layout.Context, th *material.Theme) layout.Dimensions {
	f.handleClicks(gtx)

	return layout.UniformInset(unit.Dp(12)).Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return material.List(th, &f.list).Layout(gtx, len(f.floors), func(gtx layout.Context, i int) layout.Dimensions {
			return layout.Inset{Bottom: unit.Dp(6)}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
				return f.layoutFloor(gtx, th, f.floors[i])
			})
		})
	})
}

func (f *Floors) layoutFloor(gtx layout.Context, th *material.Theme, floor int) layout.Dimensions {
	rooms := f.state.Desk.Inventory().OnFloor(floor)

	children := []layout.FlexChild{
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			gtx.Constraints.Min.X = gtx.Dp(unit.Dp(44))
			label := material.Label(th, 14, fmt.Sprintf("F%d", floor))
			label.Color = draw.ColorTextDim
			return label.Layout(gtx)
		}),
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			size := image.Point{X: gtx.Dp(unit.Dp(6)), Y: gtx.Dp(unit.Dp(36))}
			return draw.FillRect(gtx, size, draw.ColorStairs)
		}),
	}
	for _, r := range rooms {
		r := r // per-iteration copy; go.mod targets go1.21 loop semantics
		children = append(children,
			layout.Rigid(layout.Spacer{Width: unit.Dp(6)}.Layout),
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				return f.layoutRoom(gtx, th, r)
			}),
		)
	}

	return layout.Flex{Axis: layout.Horizontal, Alignment: layout.Middle}.Layout(gtx, children...)
}

func (f *Floors) layoutRoom(gtx layout.Context, th *material.Theme, r *core.Room) layout.Dimensions {
	btn := f.rooms[r.ID]
	col := draw.StatusColor(f.state.StatusOf(r.ID))
	if btn.Hovered() {
		col = draw.Lighten(col, 20)
	}

	return btn.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		size := image.Point{X: gtx.Dp(unit.Dp(64)), Y: gtx.Dp(unit.Dp(36))}
		gtx.Constraints = layout.Exact(size)
		return layout.Stack{Alignment: layout.Center}.Layout(gtx,
			layout.Expanded(func(gtx layout.Context) layout.Dimensions {
				return draw.FillRoundRect(gtx, size, 6, col)
			}),
			layout.Stacked(func(gtx layout.Context) layout.Dimensions {
				label := material.Label(th, 13, r.String())
				label.Color = draw.ColorText
				return label.Layout(gtx)
			}),
		)
	})
}

func (f *Floors) handleClicks(gtx layout.Context) {
	for _, r := range f.state.Desk.Inventory().Rooms {
		for f.rooms[r.ID].Clicked(gtx) {
			f.state.Toggle(r.ID)
		}
	}
}
