package state

import (
	"image"
	"image/color"
	"io"
	"log"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCanvas(t *testing.T, opts ...Option) *Canvas {
	t.Helper()
	opts = append([]Option{WithLogger(log.New(io.Discard, "", 0))}, opts...)
	return NewCanvas(opts...)
}

func nrgba(c color.Color) color.NRGBA {
	return color.NRGBAModel.Convert(c).(color.NRGBA)
}

// painted returns every pixel of the offscreen buffer that differs from bg.
func painted(c *Canvas, bg color.Color) map[image.Point]color.NRGBA {
	out := make(map[image.Point]color.NRGBA)
	want := nrgba(bg)
	for y := 0; y < c.Height(); y++ {
		for x := 0; x < c.Width(); x++ {
			if got := nrgba(c.At(x, y)); got != want {
				out[image.Pt(x, y)] = got
			}
		}
	}
	return out
}

func TestNewCanvasDefaults(t *testing.T) {
	c := newTestCanvas(t)
	assert.Equal(t, DefaultSize, c.Width())
	assert.Equal(t, DefaultSize, c.Height())
	assert.Equal(t, DefaultPenRadius, c.PenRadius())
	assert.Equal(t, nrgba(Black), nrgba(c.PenColor()))
	assert.Empty(t, painted(c, White))

	_, err := uuid.Parse(c.ID())
	assert.NoError(t, err)

	_, ok := c.LastPress()
	assert.False(t, ok)
}

func TestSetPenRadius(t *testing.T) {
	c := newTestCanvas(t)

	for _, r := range []float64{-0.001, -1} {
		err := c.SetPenRadius(r)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidArgument)
		assert.Equal(t, DefaultPenRadius, c.PenRadius())
	}

	for _, r := range []float64{0, 0.01, 0.5, 3} {
		require.NoError(t, c.SetPenRadius(r))
		assert.Equal(t, r, c.PenRadius())
	}

	require.NoError(t, c.SetPenRadius(0.01))
	assert.InDelta(t, 5.12, c.StrokeWidth(), 1e-9)
	// stroke width ignores the logical scale
	require.NoError(t, c.SetScale(0, 100))
	assert.InDelta(t, 5.12, c.StrokeWidth(), 1e-9)

	c.SetDefaultPenRadius()
	assert.Equal(t, DefaultPenRadius, c.PenRadius())
}

func TestPenColor(t *testing.T) {
	c := newTestCanvas(t)
	c.SetPenColor(Red)
	assert.Equal(t, nrgba(Red), nrgba(c.PenColor()))
	c.SetDefaultPenColor()
	assert.Equal(t, nrgba(Black), nrgba(c.PenColor()))
	c.SetPenColor(nil)
	assert.Equal(t, nrgba(Black), nrgba(c.PenColor()))
}

func TestClearColorFillsEveryPixel(t *testing.T) {
	c := newTestCanvas(t, WithSize(64, 48))
	c.SetPenColor(Magenta)
	c.Point(0.5, 0.5)

	c.ClearColor(Orange)
	assert.Empty(t, painted(c, Orange))
	assert.Equal(t, nrgba(Magenta), nrgba(c.PenColor()), "pen color survives clear")

	snap := c.Snapshot()
	for y := 0; y < 48; y++ {
		for x := 0; x < 64; x++ {
			require.Equal(t, nrgba(Orange), snap.NRGBAAt(x, y))
		}
	}

	c.Clear()
	assert.Empty(t, painted(c, White))
}

func TestClearColorKeepsTranslucentColors(t *testing.T) {
	for _, col := range []color.NRGBA{
		{R: 1, G: 2, B: 3, A: 3},
		{R: 200, G: 100, B: 50, A: 128},
		{R: 255, G: 255, B: 255, A: 0},
	} {
		c := newTestCanvas(t, WithSize(8, 8))
		c.ClearColor(col)
		for y := 0; y < 8; y++ {
			for x := 0; x < 8; x++ {
				require.Equal(t, col, nrgba(c.At(x, y)), "%v at (%d, %d)", col, x, y)
			}
		}
		assert.Equal(t, col, c.Snapshot().NRGBAAt(7, 7))
	}
}

func TestTranslucentPenPoint(t *testing.T) {
	c := newTestCanvas(t, WithSize(16, 16))
	pen := color.NRGBA{R: 10, G: 20, B: 30, A: 40}
	c.SetPenColor(pen)
	_, ok := c.Press(4, 9)
	require.True(t, ok)
	assert.Equal(t, pen, nrgba(c.At(4, 9)))
	assert.Equal(t, pen, c.Snapshot().NRGBAAt(4, 9))
}

func TestPressCenter(t *testing.T) {
	c := newTestCanvas(t)

	ev, ok := c.Press(256, 256)
	require.True(t, ok)
	assert.InDelta(t, 0.5, ev.User.X, 1e-9)
	assert.InDelta(t, 0.5, ev.User.Y, 1e-9)
	assert.Equal(t, image.Pt(256, 256), ev.Pixel)
	assert.Equal(t, c.ID(), ev.Session)
	assert.Equal(t, uint64(1), ev.Seq)

	s := c.Scale()
	assert.InDelta(t, 0.5, s.UserX(float64(ev.Pixel.X)), 1e-9)
	assert.InDelta(t, 0.5, s.UserY(float64(ev.Pixel.Y)), 1e-9)

	px := painted(c, White)
	require.Len(t, px, 1)
	assert.Equal(t, nrgba(Black), px[image.Pt(256, 256)])
}

func TestTwoPressesPaintTwoPixels(t *testing.T) {
	c := newTestCanvas(t)

	c.SetPenColor(Red)
	first, ok := c.Press(10, 20)
	require.True(t, ok)
	c.SetPenColor(Blue)
	second, ok := c.Press(400, 300)
	require.True(t, ok)

	assert.Equal(t, uint64(2), second.Seq)
	assert.Equal(t, map[image.Point]color.NRGBA{
		image.Pt(10, 20):   nrgba(Red),
		image.Pt(400, 300): nrgba(Blue),
	}, painted(c, White))

	last, ok := c.LastPress()
	require.True(t, ok)
	assert.Equal(t, second, last)
	assert.NotEqual(t, first.Pixel, last.Pixel)
}

func TestPressOutsideIgnored(t *testing.T) {
	c := newTestCanvas(t, WithSize(32, 32))
	for _, p := range []image.Point{{-1, 0}, {0, -1}, {32, 0}, {0, 32}} {
		_, ok := c.Press(p.X, p.Y)
		assert.False(t, ok, "%v", p)
	}
	assert.Empty(t, painted(c, White))
}

func TestPressFollowsScale(t *testing.T) {
	c := newTestCanvas(t)
	require.NoError(t, c.SetXscale(-100, 100))
	require.NoError(t, c.SetYscale(0, 10))

	ev, ok := c.Press(256, 128)
	require.True(t, ok)
	assert.InDelta(t, 0, ev.User.X, 1e-9)
	assert.Equal(t, image.Pt(256, 128), ev.Pixel)
	assert.Equal(t, nrgba(Black), nrgba(c.At(256, 128)))
}

func TestPointOutsideClipped(t *testing.T) {
	c := newTestCanvas(t)
	c.Point(-5, 2)
	assert.Empty(t, painted(c, White))

	c.Point(0, 0)
	px := painted(c, White)
	require.Len(t, px, 1)
	// logical origin sits inside the border
	for p := range px {
		assert.Equal(t, image.Pt(23, 489), p)
	}
}

func TestDrawCopiesAndRepaints(t *testing.T) {
	c := newTestCanvas(t, WithSize(16, 16))
	repaints := 0
	c.AddRepaintHook(func() { repaints++ })

	c.SetPenColor(Green)
	c.Point(0.5, 0.5)
	assert.Equal(t, 1, repaints)
	_, ok := c.Press(3, 3)
	require.True(t, ok)
	assert.Equal(t, 2, repaints)
	c.Clear()
	assert.Equal(t, 3, repaints)

	c.SetPenColor(Cyan)
	c.Point(0.5, 0.5)
	snap := c.Snapshot()
	assert.Equal(t, nrgba(c.At(8, 8)), snap.NRGBAAt(8, 8))

	// the snapshot is detached from the canvas
	snap.SetNRGBA(0, 0, nrgba(Red))
	assert.Equal(t, nrgba(White), nrgba(c.At(0, 0)))
}

func TestInvalidScaleLeavesCanvasUsable(t *testing.T) {
	c := newTestCanvas(t)
	assert.ErrorIs(t, c.SetScale(1, 1), ErrInvalidRange)
	ev, ok := c.Press(256, 256)
	require.True(t, ok)
	assert.InDelta(t, 0.5, ev.User.X, 1e-9)
}

func TestRepaintHooksAllRun(t *testing.T) {
	c := newTestCanvas(t, WithSize(8, 8))
	var order []string
	c.AddRepaintHook(func() { order = append(order, "first") })
	c.AddRepaintHook(nil)
	c.AddRepaintHook(func() { order = append(order, "second") })

	c.Draw()
	assert.Equal(t, []string{"first", "second"}, order)
}

func TestDefaultScaleSetters(t *testing.T) {
	c := newTestCanvas(t)
	require.NoError(t, c.SetXscale(-50, 50))
	require.NoError(t, c.SetYscale(100, 200))

	c.SetDefaultXscale()
	xmin, xmax, ymin, ymax := c.Scale().Bounds()
	assert.InDelta(t, -0.05, xmin, 1e-9)
	assert.InDelta(t, 1.05, xmax, 1e-9)
	assert.InDelta(t, 95, ymin, 1e-9, "y untouched")
	assert.InDelta(t, 205, ymax, 1e-9, "y untouched")

	c.SetDefaultYscale()
	_, _, ymin, ymax = c.Scale().Bounds()
	assert.InDelta(t, -0.05, ymin, 1e-9)
	assert.InDelta(t, 1.05, ymax, 1e-9)

	ev, ok := c.Press(256, 256)
	require.True(t, ok)
	assert.InDelta(t, 0.5, ev.User.X, 1e-9)
	assert.InDelta(t, 0.5, ev.User.Y, 1e-9)
}
