package state

import (
	"fmt"
	"math"
)

// Border is the fraction of a range added on each side by the Set*scale calls.
const Border = 0.05

const (
	DefaultXMin = 0.0
	DefaultXMax = 1.0
	DefaultYMin = 0.0
	DefaultYMax = 1.0
)

// Scale maps between logical user coordinates and pixel coordinates of a
// fixed-size raster. The y axis is flipped: larger logical y is a smaller
// pixel row.
type Scale struct {
	width, height          int
	xmin, xmax, ymin, ymax float64
}

// NewScale returns a mapper for a width x height raster using the default
// [0,1] x [0,1] ranges.
func NewScale(width, height int) Scale {
	s := Scale{width: width, height: height}
	s.SetDefaultXscale()
	s.SetDefaultYscale()
	return s
}

func expand(min, max float64) (float64, float64, error) {
	if math.IsNaN(min) || math.IsNaN(max) || math.IsInf(min, 0) || math.IsInf(max, 0) || min >= max {
		return 0, 0, fmt.Errorf("range [%v, %v]: %w", min, max, ErrInvalidRange)
	}
	size := max - min
	return min - Border*size, max + Border*size, nil
}

// SetXscale sets the visible x range to [min, max] plus the border.
func (s *Scale) SetXscale(min, max float64) error {
	lo, hi, err := expand(min, max)
	if err != nil {
		return err
	}
	s.xmin, s.xmax = lo, hi
	return nil
}

// SetYscale sets the visible y range to [min, max] plus the border.
func (s *Scale) SetYscale(min, max float64) error {
	lo, hi, err := expand(min, max)
	if err != nil {
		return err
	}
	s.ymin, s.ymax = lo, hi
	return nil
}

// SetScale sets both ranges to [min, max] plus the border.
func (s *Scale) SetScale(min, max float64) error {
	lo, hi, err := expand(min, max)
	if err != nil {
		return err
	}
	s.xmin, s.xmax = lo, hi
	s.ymin, s.ymax = lo, hi
	return nil
}

func (s *Scale) SetDefaultXscale() {
	s.xmin, s.xmax, _ = expand(DefaultXMin, DefaultXMax)
}

func (s *Scale) SetDefaultYscale() {
	s.ymin, s.ymax, _ = expand(DefaultYMin, DefaultYMax)
}

// Bounds returns the expanded logical bounds.
func (s Scale) Bounds() (xmin, xmax, ymin, ymax float64) {
	return s.xmin, s.xmax, s.ymin, s.ymax
}

func (s Scale) Width() int  { return s.width }
func (s Scale) Height() int { return s.height }

func (s Scale) ScaleX(x float64) float64 {
	return float64(s.width) * (x - s.xmin) / (s.xmax - s.xmin)
}

func (s Scale) ScaleY(y float64) float64 {
	return float64(s.height) * (s.ymax - y) / (s.ymax - s.ymin)
}

func (s Scale) UserX(px float64) float64 {
	return s.xmin + px*(s.xmax-s.xmin)/float64(s.width)
}

func (s Scale) UserY(py float64) float64 {
	return s.ymax - py*(s.ymax-s.ymin)/float64(s.height)
}
