package state

import (
	"fmt"
	"image"
	"image/color"
	"log"
	"math"
	"sync"
)

const (
	// DefaultSize is the default width and height of the raster in pixels.
	// Pen radii are converted to pixels against this size.
	DefaultSize = 512
	// DefaultPenRadius is in logical units.
	DefaultPenRadius = 0.002
)

// Canvas is a fixed-size double-buffered raster with a pen and a logical
// coordinate system. Drawing mutates the offscreen buffer; Draw copies it to
// the display buffer and fires the repaint hooks. Buffers hold
// non-premultiplied colors so translucent pens read back unchanged.
type Canvas struct {
	mu        sync.RWMutex
	scale     Scale
	penColor  color.Color
	penRadius float64
	offscreen *image.NRGBA
	onscreen  *image.NRGBA
	last      *PressEvent
	session   *session
	logger    *log.Logger
	repaint   []func()
}

// Option configures a Canvas at construction.
type Option func(*Canvas)

// WithSize overrides the default 512x512 raster size.
func WithSize(width, height int) Option {
	return func(c *Canvas) {
		if width > 0 && height > 0 {
			c.scale.width, c.scale.height = width, height
		}
	}
}

// WithLogger sends canvas logs to l instead of the standard logger.
func WithLogger(l *log.Logger) Option {
	return func(c *Canvas) {
		if l != nil {
			c.logger = l
		}
	}
}

// NewCanvas returns a cleared canvas with the default scale, pen color and
// pen radius.
func NewCanvas(opts ...Option) *Canvas {
	c := &Canvas{
		scale:   Scale{width: DefaultSize, height: DefaultSize},
		session: newSession(),
		logger:  log.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.scale.SetDefaultXscale()
	c.scale.SetDefaultYscale()

	r := image.Rect(0, 0, c.scale.width, c.scale.height)
	c.offscreen = image.NewNRGBA(r)
	c.onscreen = image.NewNRGBA(r)
	c.penColor = DefaultPenColor
	c.penRadius = DefaultPenRadius
	c.Clear()

	c.logger.Printf("[CANVAS %s] created %dx%d", c.session.short(), c.scale.width, c.scale.height)
	return c
}

// ID returns the session UUID of this canvas.
func (c *Canvas) ID() string { return c.session.id }

func (c *Canvas) Width() int  { return c.scale.width }
func (c *Canvas) Height() int { return c.scale.height }

// Scale returns a copy of the current coordinate mapper.
func (c *Canvas) Scale() Scale {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.scale
}

func (c *Canvas) SetXscale(min, max float64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.scale.SetXscale(min, max)
}

func (c *Canvas) SetYscale(min, max float64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.scale.SetYscale(min, max)
}

func (c *Canvas) SetScale(min, max float64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.scale.SetScale(min, max)
}

func (c *Canvas) SetDefaultXscale() {
	c.mu.Lock()
	c.scale.SetDefaultXscale()
	c.mu.Unlock()
}

func (c *Canvas) SetDefaultYscale() {
	c.mu.Lock()
	c.scale.SetDefaultYscale()
	c.mu.Unlock()
}

func (c *Canvas) PenColor() color.Color {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.penColor
}

// SetPenColor sets the color used by subsequent points. A nil color resets
// the pen to the default.
func (c *Canvas) SetPenColor(col color.Color) {
	if col == nil {
		col = DefaultPenColor
	}
	c.mu.Lock()
	c.penColor = col
	c.mu.Unlock()
}

func (c *Canvas) SetDefaultPenColor() { c.SetPenColor(DefaultPenColor) }

func (c *Canvas) PenRadius() float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.penRadius
}

// SetPenRadius sets the pen radius in logical units.
func (c *Canvas) SetPenRadius(r float64) error {
	if r < 0 || math.IsNaN(r) {
		return fmt.Errorf("pen radius %v must be non-negative: %w", r, ErrInvalidArgument)
	}
	c.mu.Lock()
	c.penRadius = r
	c.mu.Unlock()
	return nil
}

func (c *Canvas) SetDefaultPenRadius() {
	c.mu.Lock()
	c.penRadius = DefaultPenRadius
	c.mu.Unlock()
}

// StrokeWidth is the pen radius in pixels. It depends on DefaultSize only,
// not on the current scale.
func (c *Canvas) StrokeWidth() float64 {
	return c.PenRadius() * DefaultSize
}

// Clear fills the canvas with the default clear color.
func (c *Canvas) Clear() { c.ClearColor(DefaultClearColor) }

// ClearColor fills the whole offscreen buffer with col and repaints. The pen
// color is kept.
func (c *Canvas) ClearColor(col color.Color) {
	if col == nil {
		col = DefaultClearColor
	}
	n := toNRGBA(col)
	c.mu.Lock()
	b := c.offscreen.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c.offscreen.SetNRGBA(x, y, n)
		}
	}
	c.mu.Unlock()
	c.Draw()
}

// Point paints the single pixel at logical (x, y) in the pen color and
// repaints. Points that fall outside the raster are dropped.
func (c *Canvas) Point(x, y float64) {
	c.mu.Lock()
	c.paint(x, y)
	c.mu.Unlock()
	c.Draw()
}

func (c *Canvas) paint(x, y float64) image.Point {
	p := image.Pt(int(math.Round(c.scale.ScaleX(x))), int(math.Round(c.scale.ScaleY(y))))
	if !p.In(c.offscreen.Bounds()) {
		return p
	}
	c.offscreen.SetNRGBA(p.X, p.Y, toNRGBA(c.penColor))
	return p
}

// Press handles a mouse press at raster pixel (px, py). The pixel is mapped
// to logical coordinates, painted in the pen color and the canvas is
// repainted. Presses outside the raster are ignored and report false.
func (c *Canvas) Press(px, py int) (PressEvent, bool) {
	c.mu.Lock()
	if !image.Pt(px, py).In(c.offscreen.Bounds()) {
		c.mu.Unlock()
		return PressEvent{}, false
	}
	u := Point{X: c.scale.UserX(float64(px)), Y: c.scale.UserY(float64(py))}
	painted := c.paint(u.X, u.Y)
	ev := PressEvent{
		Session: c.session.id,
		Seq:     c.session.next(),
		Pixel:   painted,
		User:    u,
		Color:   c.penColor,
	}
	c.last = &ev
	c.mu.Unlock()

	c.logger.Printf("[CANVAS %s] press #%d at (%d, %d) -> (%.4f, %.4f) %s",
		c.session.short(), ev.Seq, px, py, u.X, u.Y, ColorName(ev.Color))
	c.Draw()
	return ev, true
}

// LastPress returns the most recent handled press.
func (c *Canvas) LastPress() (PressEvent, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.last == nil {
		return PressEvent{}, false
	}
	return *c.last, true
}

// AddRepaintHook registers fn to run after every Draw, outside the canvas
// lock. Hooks run in registration order.
func (c *Canvas) AddRepaintHook(fn func()) {
	if fn == nil {
		return
	}
	c.mu.Lock()
	c.repaint = append(c.repaint, fn)
	c.mu.Unlock()
}

// Draw copies the offscreen buffer to the display buffer and runs the
// repaint hooks.
func (c *Canvas) Draw() {
	c.mu.Lock()
	copy(c.onscreen.Pix, c.offscreen.Pix)
	hooks := make([]func(), len(c.repaint))
	copy(hooks, c.repaint)
	c.mu.Unlock()
	for _, fn := range hooks {
		fn()
	}
}

// At reads a pixel of the offscreen buffer.
func (c *Canvas) At(px, py int) color.Color {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.offscreen.At(px, py)
}

// Snapshot returns a copy of the display buffer.
func (c *Canvas) Snapshot() *image.NRGBA {
	c.mu.RLock()
	defer c.mu.RUnlock()
	img := image.NewNRGBA(c.onscreen.Bounds())
	copy(img.Pix, c.onscreen.Pix)
	return img
}
