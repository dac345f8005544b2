// Package draw provides rendering functions for visualization.
package draw

import (
	"image"
	"image/color"

	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"

	"github.com/elektrokombinacija/hotel-alloc/internal/core"
)

// Colors for room states and chrome
var (
	ColorAvailable  = color.NRGBA{R: 16, G: 185, B: 129, A: 255}
	ColorOccupied   = color.NRGBA{R: 220, G: 38, B: 38, A: 255}
	ColorBooked     = color.NRGBA{R: 79, G: 70, B: 229, A: 255}
	ColorText       = color.NRGBA{R: 240, G: 240, B: 240, A: 255}
	ColorTextDim    = color.NRGBA{R: 160, G: 165, B: 170, A: 255}
	ColorPanel      = color.NRGBA{R: 40, G: 43, B: 48, A: 255}
	ColorBackground = color.NRGBA{R: 25, G: 28, B: 32, A: 255}
	ColorStairs     = color.NRGBA{R: 90, G: 95, B: 105, A: 255}
)

// StatusColor returns the fill color for a room status.
func StatusColor(s core.Status) color.NRGBA {
	switch s {
	case core.Occupied:
		return ColorOccupied
	case core.Booked:
		return ColorBooked
	default:
		return ColorAvailable
	}
}

// Lighten brightens a color for hover feedback.
func Lighten(c color.NRGBA, amount uint8) color.NRGBA {
	c.R = addU8(c.R, amount)
	c.G = addU8(c.G, amount)
	c.B = addU8(c.B, amount)
	return c
}

func addU8(a, b uint8) uint8 {
	if int(a)+int(b) > 255 {
		return 255
	}
	return a + b
}

// FillRoundRect fills a rounded rectangle of the given size at the origin.
func FillRoundRect(gtx layout.Context, size image.Point, radius int, col color.NRGBA) layout.Dimensions {
	rect := image.Rectangle{Max: size}
	paint.FillShape(gtx.Ops, col, clip.UniformRRect(rect, radius).Op(gtx.Ops))
	return layout.Dimensions{Size: size}
}

// FillRect fills a plain rectangle of the given size at the origin.
func FillRect(gtx layout.Context, size image.Point, col color.NRGBA) layout.Dimensions {
	paint.FillShape(gtx.Ops, col, clip.Rect(image.Rectangle{Max: size}).Op())
	return layout.Dimensions{Size: size}
}
