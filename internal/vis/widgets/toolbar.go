// Package widgets provides Gio UI widgets for the visualizer.
package widgets

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"gioui.org/layout"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"

	"github.com/elektrokombinacija/hotel-alloc/internal/core"
	"github.com/elektrokombinacija/hotel-alloc/internal/vis/draw"
	"github.com/elektrokombinacija/hotel-alloc/internal/vis/state"
)

// Toolbar provides control buttons and the status line.
type Toolbar struct {
	state *state.State

	// Request size
	lessBtn widget.Clickable
	moreBtn widget.Clickable

	// Actions
	bookBtn   widget.Clickable
	randomBtn widget.Clickable
	resetBtn  widget.Clickable

	// Undo/redo
	undoBtn widget.Clickable
	redoBtn widget.Clickable
}

// NewToolbar creates a new toolbar.
func NewToolbar(st *state.State) *Toolbar {
	return &Toolbar{
		state: st,
	}
}

// Layout renders the toolbar.
func (t *Toolbar) Layout(gtx layout.Context, th *material.Theme) layout.Dimensions {
	t.handleClicks(gtx)

	return layout.Background{}.Layout(gtx,
		func(gtx layout.Context) layout.Dimensions {
			return draw.FillRect(gtx, gtx.Constraints.Min, draw.ColorPanel)
		},
		func(gtx layout.Context) layout.Dimensions {
			gtx.Constraints.Min.X = gtx.Constraints.Max.X
			return layout.UniformInset(unit.Dp(10)).Layout(gtx, func(gtx layout.Context) layout.Dimensions {
				return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
					layout.Rigid(func(gtx layout.Context) layout.Dimensions {
						return t.layoutControls(gtx, th)
					}),
					layout.Rigid(layout.Spacer{Height: unit.Dp(8)}.Layout),
					layout.Rigid(func(gtx layout.Context) layout.Dimensions {
						return t.layoutStatus(gtx, th)
					}),
				)
			})
		},
	)
}

func (t *Toolbar) layoutControls(gtx layout.Context, th *material.Theme) layout.Dimensions {
	return layout.Flex{Axis: layout.Horizontal, Alignment: layout.Middle}.Layout(gtx,
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			label := material.Label(th, 13, "Rooms to book")
			label.Color = draw.ColorTextDim
			return label.Layout(gtx)
		}),
		layout.Rigid(layout.Spacer{Width: unit.Dp(8)}.Layout),
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return t.button(gtx, th, &t.lessBtn, "-")
		}),
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return layout.Inset{Left: unit.Dp(8), Right: unit.Dp(8)}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
				label := material.Label(th, 15, fmt.Sprint(t.state.Requested))
				label.Color = draw.ColorText
				return label.Layout(gtx)
			})
		}),
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return t.button(gtx, th, &t.moreBtn, "+")
		}),
		layout.Rigid(layout.Spacer{Width: unit.Dp(16)}.Layout),
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return t.button(gtx, th, &t.bookBtn, "Book Optimally")
		}),
		layout.Rigid(layout.Spacer{Width: unit.Dp(4)}.Layout),
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return t.button(gtx, th, &t.randomBtn, "Random Occupancy")
		}),
		layout.Rigid(layout.Spacer{Width: unit.Dp(4)}.Layout),
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return t.button(gtx, th, &t.resetBtn, "Reset All")
		}),
		layout.Rigid(layout.Spacer{Width: unit.Dp(16)}.Layout),
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return t.button(gtx, th, &t.undoBtn, "<-")
		}),
		layout.Rigid(layout.Spacer{Width: unit.Dp(2)}.Layout),
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return t.button(gtx, th, &t.redoBtn, "->")
		}),
	)
}

func (t *Toolbar) layoutStatus(gtx layout.Context, th *material.Theme) layout.Dimensions {
	children := []layout.FlexChild{
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return Badge(gtx, th, "Available", draw.ColorAvailable)
		}),
		layout.Rigid(layout.Spacer{Width: unit.Dp(4)}.Layout),
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return Badge(gtx, th, "Occupied", draw.ColorOccupied)
		}),
		layout.Rigid(layout.Spacer{Width: unit.Dp(4)}.Layout),
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return Badge(gtx, th, "Booked", draw.ColorBooked)
		}),
		layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
			return layout.Dimensions{}
		}),
	}

	if sel := t.state.Selected(); sel != nil {
		nums := make([]string, len(sel.Rooms))
		for i, r := range sel.Rooms {
			nums[i] = r.String()
		}
		strategy := "Same floor"
		if sel.Strategy == core.CrossFloor {
			strategy = "Cross-floor"
		}
		children = append(children,
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				return Badge(gtx, th, "Selected: "+strings.Join(nums, ", "), draw.ColorBooked)
			}),
			layout.Rigid(layout.Spacer{Width: unit.Dp(4)}.Layout),
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				return Badge(gtx, th, fmt.Sprintf("Time: %d min", sel.Cost), draw.ColorAvailable)
			}),
			layout.Rigid(layout.Spacer{Width: unit.Dp(4)}.Layout),
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				return Badge(gtx, th, "Strategy: "+strategy, color.NRGBA{R: 180, G: 83, B: 9, A: 255})
			}),
		)
	}

	if t.state.Message != "" {
		children = append(children,
			layout.Rigid(layout.Spacer{Width: unit.Dp(8)}.Layout),
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				label := material.Label(th, 13, t.state.Message)
				label.Color = draw.ColorOccupied
				return label.Layout(gtx)
			}),
		)
	}

	return layout.Flex{Axis: layout.Horizontal, Alignment: layout.Middle}.Layout(gtx, children...)
}

func (t *Toolbar) button(gtx layout.Context, th *material.Theme, btn *widget.Clickable, text string) layout.Dimensions {
	bg := color.NRGBA{R: 55, G: 58, B: 65, A: 255}
	if btn.Hovered() {
		bg = draw.Lighten(bg, 15)
	}

	return btn.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return layout.Background{}.Layout(gtx,
			func(gtx layout.Context) layout.Dimensions {
				return draw.FillRoundRect(gtx, gtx.Constraints.Min, 4, bg)
			},
			func(gtx layout.Context) layout.Dimensions {
				gtx.Constraints.Min = image.Point{X: 32, Y: 28}
				return layout.Inset{Left: unit.Dp(8), Right: unit.Dp(8)}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
					return layout.Center.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
						label := material.Label(th, 12, text)
						label.Color = draw.ColorText
						return label.Layout(gtx)
					})
				})
			},
		)
	})
}

// Badge draws a small rounded label.
func Badge(gtx layout.Context, th *material.Theme, text string, bg color.NRGBA) layout.Dimensions {
	return layout.Background{}.Layout(gtx,
		func(gtx layout.Context) layout.Dimensions {
			return draw.FillRoundRect(gtx, gtx.Constraints.Min, 10, bg)
		},
		func(gtx layout.Context) layout.Dimensions {
			return layout.Inset{Left: unit.Dp(8), Right: unit.Dp(8), Top: unit.Dp(3), Bottom: unit.Dp(3)}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
				label := material.Label(th, 12, text)
				label.Color = draw.ColorText
				return label.Layout(gtx)
			})
		},
	)
}

func (t *Toolbar) handleClicks(gtx layout.Context) {
	for t.lessBtn.Clicked(gtx) {
		t.state.SetRequested(t.state.Requested - 1)
	}
	for t.moreBtn.Clicked(gtx) {
		t.state.SetRequested(t.state.Requested + 1)
	}

	for t.bookBtn.Clicked(gtx) {
		t.state.Book()
	}
	for t.randomBtn.Clicked(gtx) {
		t.state.Randomize()
	}
	for t.resetBtn.Clicked(gtx) {
		t.state.Reset()
	}

	for t.undoBtn.Clicked(gtx) {
		t.state.Undo()
	}
	for t.redoBtn.Clicked(gtx) {
		t.state.Redo()
	}
}
