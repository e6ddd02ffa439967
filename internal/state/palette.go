package state

import (
	"fmt"
	"image/color"
)

// Pre-defined pen colors.
var (
	Black     = color.NRGBA{R: 0, G: 0, B: 0, A: 255}
	Blue      = color.NRGBA{R: 0, G: 0, B: 255, A: 255}
	Cyan      = color.NRGBA{R: 0, G: 255, B: 255, A: 255}
	DarkGray  = color.NRGBA{R: 64, G: 64, B: 64, A: 255}
	Gray      = color.NRGBA{R: 128, G: 128, B: 128, A: 255}
	Green     = color.NRGBA{R: 0, G: 255, B: 0, A: 255}
	LightGray = color.NRGBA{R: 192, G: 192, B: 192, A: 255}
	Magenta   = color.NRGBA{R: 255, G: 0, B: 255, A: 255}
	Orange    = color.NRGBA{R: 255, G: 200, B: 0, A: 255}
	Pink      = color.NRGBA{R: 255, G: 175, B: 175, A: 255}
	Red       = color.NRGBA{R: 255, G: 0, B: 0, A: 255}
	White     = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow    = color.NRGBA{R: 255, G: 255, B: 0, A: 255}
)

var (
	DefaultPenColor   color.Color = Black
	DefaultClearColor color.Color = White
)

// NamedColor pairs a palette entry with its display name.
type NamedColor struct {
	Name  string
	Color color.NRGBA
}

// Palette lists the pre-defined colors in toolbar order.
var Palette = []NamedColor{
	{"black", Black},
	{"blue", Blue},
	{"cyan", Cyan},
	{"dark gray", DarkGray},
	{"gray", Gray},
	{"green", Green},
	{"light gray", LightGray},
	{"magenta", Magenta},
	{"orange", Orange},
	{"pink", Pink},
	{"red", Red},
	{"white", White},
	{"yellow", Yellow},
}

func sameColor(a, b color.Color) bool {
	ar, ag, ab, aa := a.RGBA()
	br, bg, bb, ba := b.RGBA()
	return ar == br && ag == bg && ab == bb && aa == ba
}

// ColorName returns the palette name of c, or its hex form when c is not a
// palette color.
func ColorName(c color.Color) string {
	if c == nil {
		return "none"
	}
	for _, nc := range Palette {
		if sameColor(c, nc.Color) {
			return nc.Name
		}
	}
	return hexColor(toNRGBA(c))
}

func toNRGBA(c color.Color) color.NRGBA {
	return color.NRGBAModel.Convert(c).(color.NRGBA)
}

func hexColor(n color.NRGBA) string {
	return fmt.Sprintf("#%02x%02x%02x%02x", n.R, n.G, n.B, n.A)
}
