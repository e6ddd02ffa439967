package ui

import (
	"image"
	"image/draw"
	"math"

	"WhiteBoard/internal/state"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
	xdraw "golang.org/x/image/draw"
)

// BoardWidget shows the display buffer of a state.Canvas and turns primary
// mouse presses into single painted points.
type BoardWidget struct {
	widget.BaseWidget
	board  *state.Canvas
	raster *canvas.Raster

	// OnPress is called after a press has been painted.
	OnPress func(ev state.PressEvent)
}

var _ fyne.Widget = (*BoardWidget)(nil)
var _ desktop.Mouseable = (*BoardWidget)(nil)
var _ desktop.Hoverable = (*BoardWidget)(nil)

func NewBoardWidget(c *state.Canvas) *BoardWidget {
	b := &BoardWidget{board: c}
	b.raster = canvas.NewRaster(b.render)
	b.raster.ScaleMode = canvas.ImageScalePixels
	b.raster.SetMinSize(fyne.NewSize(float32(c.Width()), float32(c.Height())))

	// Repaints can be requested from any goroutine through the public API.
	c.AddRepaintHook(func() {
		fyne.Do(b.raster.Refresh)
	})
	b.ExtendBaseWidget(b)
	return b
}

// render returns the display buffer at w x h device pixels. On scaled
// outputs each canvas pixel becomes a solid block.
func (b *BoardWidget) render(w, h int) image.Image {
	snap := b.board.Snapshot()
	if w <= 0 || h <= 0 || (w == snap.Rect.Dx() && h == snap.Rect.Dy()) {
		return snap
	}
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), snap, snap.Bounds(), draw.Src, nil)
	return dst
}

// Canvas returns the drawing state behind the widget.
func (b *BoardWidget) Canvas() *state.Canvas { return b.board }

func (b *BoardWidget) MouseDown(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	px := int(math.Floor(float64(e.Position.X)))
	py := int(math.Floor(float64(e.Position.Y)))
	ev, ok := b.board.Press(px, py)
	if !ok {
		return
	}
	if b.OnPress != nil {
		b.OnPress(ev)
	}
}

func (b *BoardWidget) MouseUp(*desktop.MouseEvent)    {}
func (b *BoardWidget) MouseIn(*desktop.MouseEvent)    {}
func (b *BoardWidget) MouseOut()                      {}
func (b *BoardWidget) MouseMoved(*desktop.MouseEvent) {}

func (b *BoardWidget) CreateRenderer() fyne.WidgetRenderer {
	return &boardWidgetRenderer{board: b}
}

type boardWidgetRenderer struct {
	board *BoardWidget
}

func (r *boardWidgetRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.board.raster}
}

func (r *boardWidgetRenderer) Layout(size fyne.Size) {
	r.board.raster.Resize(r.MinSize())
}

func (r *boardWidgetRenderer) MinSize() fyne.Size {
	return r.board.raster.MinSize()
}

func (r *boardWidgetRenderer) Refresh() {
	r.board.raster.Refresh()
}

func (r *boardWidgetRenderer) Destroy() {}
