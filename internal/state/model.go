package state

import (
	"image"
	"image/color"
)

// Point is a location in logical user coordinates.
type Point struct{ X, Y float64 }

// PressEvent records a single handled mouse press.
type PressEvent struct {
	Session string
	Seq     uint64
	Pixel   image.Point // where the press landed on the raster
	User    Point       // logical point the press mapped to
	Color   color.Color
}
