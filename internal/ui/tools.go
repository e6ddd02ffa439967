package ui

import (
	"fmt"
	"image/color"
	"log"

	"WhiteBoard/internal/state"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

const (
	swatchSize    = 20
	maxPenRadius  = 0.05
	penRadiusStep = 0.001
)

type colorSwatch struct {
	widget.BaseWidget
	Name     string
	Color    color.Color
	OnTapped func(name string, c color.Color)
}

func newColorSwatch(nc state.NamedColor, tapped func(string, color.Color)) *colorSwatch {
	s := &colorSwatch{Name: nc.Name, Color: nc.Color, OnTapped: tapped}
	s.ExtendBaseWidget(s)
	return s
}

func (s *colorSwatch) CreateRenderer() fyne.WidgetRenderer {
	rect := canvas.NewRectangle(s.Color)
	rect.SetMinSize(fyne.NewSize(swatchSize, swatchSize))

	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = color.Gray{Y: 150}
	border.StrokeWidth = 1

	return widget.NewSimpleRenderer(container.NewStack(rect, border))
}

func (s *colorSwatch) Tapped(_ *fyne.PointEvent) {
	if s.OnTapped != nil {
		s.OnTapped(s.Name, s.Color)
	}
}

// toolbar drives the pen and clear operations of a board.
type toolbar struct {
	board    *BoardWidget
	status   *widget.Label
	swatches []*colorSwatch
	radius   *widget.Slider
	actions  *widget.Toolbar
}

func newToolbar(board *BoardWidget, status *widget.Label) *toolbar {
	t := &toolbar{board: board, status: status}

	t.actions = widget.NewToolbar(
		widget.NewToolbarAction(theme.DocumentCreateIcon(), t.resetPen), // Pen
		widget.NewToolbarAction(theme.DeleteIcon(), t.clear),            // Clear
		widget.NewToolbarAction(theme.ViewRestoreIcon(), t.resetScale),  // Default scale
	)

	for _, nc := range state.Palette {
		t.swatches = append(t.swatches, newColorSwatch(nc, t.setColor))
	}

	t.radius = widget.NewSlider(0, maxPenRadius)
	t.radius.Step = penRadiusStep
	t.radius.SetValue(board.Canvas().PenRadius())
	t.radius.OnChanged = t.setRadius

	return t
}

func (t *toolbar) setColor(name string, c color.Color) {
	t.board.Canvas().SetPenColor(c)
	t.status.SetText("Pen: " + name)
}

func (t *toolbar) setRadius(r float64) {
	if err := t.board.Canvas().SetPenRadius(r); err != nil {
		log.Printf("[UI] %v", err)
		t.status.SetText(err.Error())
		return
	}
	t.status.SetText(fmt.Sprintf("Radius: %.3f", r))
}

func (t *toolbar) resetPen() {
	c := t.board.Canvas()
	c.SetDefaultPenColor()
	c.SetDefaultPenRadius()
	t.radius.Value = c.PenRadius()
	t.radius.Refresh()
	t.status.SetText("Pen reset")
}

func (t *toolbar) resetScale() {
	c := t.board.Canvas()
	c.SetDefaultXscale()
	c.SetDefaultYscale()
	t.status.SetText("Scale reset")
}

func (t *toolbar) clear() {
	t.board.Canvas().Clear()
	t.status.SetText("Cleared")
}

func (t *toolbar) object() fyne.CanvasObject {
	objs := make([]fyne.CanvasObject, 0, len(t.swatches))
	for _, s := range t.swatches {
		objs = append(objs, s)
	}
	sliderBox := container.New(layout.NewGridWrapLayout(fyne.NewSize(150, 35)), t.radius)

	return container.NewVBox(
		container.NewHBox(
			widget.NewLabel("Tool:"),
			t.actions,
			widget.NewSeparator(),
			widget.NewLabel("Radius:"),
			sliderBox,
			layout.NewSpacer(),
		),
		container.NewHBox(objs...),
	)
}

// NewToolbar builds the pen palette, radius slider, clear and scale reset
// actions for board.
func NewToolbar(board *BoardWidget, status *widget.Label) fyne.CanvasObject {
	return newToolbar(board, status).object()
}
