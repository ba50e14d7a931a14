package circlelayout

import (
	"image"
	"image/color"
	"io"
	"math"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"

	"github.com/go-drift/circlelayout/pkg/gestures"
	"github.com/go-drift/circlelayout/pkg/graphics"
	"github.com/go-drift/circlelayout/pkg/layout"
)

// slice is a test child: it fills its size with a color, counts paints and
// records the events it receives.
type slice struct {
	layout.RenderBoxBase
	color  graphics.Color
	width  float64
	height float64
	paints int
	events []gestures.PointerEvent
	reject bool
}

func newSlice(c graphics.Color) *slice {
	s := &slice{color: c, width: 40, height: 40}
	s.SetSelf(s)
	return s
}

func (s *slice) PerformLayout() {
	s.SetSize(s.Constraints().Constrain(graphics.Size{Width: s.width, Height: s.height}))
}

func (s *slice) Paint(ctx *layout.PaintContext) {
	s.paints++
	size := s.Size()
	ctx.Canvas.DrawRect(graphics.RectFromLTWH(0, 0, size.Width, size.Height), graphics.FillPaint(s.color))
}

func (s *slice) HandlePointer(event gestures.PointerEvent) bool {
	s.events = append(s.events, event)
	return !s.reject
}

func (s *slice) phases() []gestures.PointerPhase {
	out := make([]gestures.PointerPhase, len(s.events))
	for i, e := range s.events {
		out[i] = e.Phase
	}
	return out
}

var (
	red   = graphics.RGB(255, 0, 0)
	green = graphics.RGB(0, 255, 0)
	blue  = graphics.RGB(0, 0, 255)

	square = graphics.Size{Width: 200, Height: 200}
)

func quietOptions(mode LayoutMode) Options {
	opts := DefaultOptions()
	opts.Mode = mode
	opts.Logger = log.New(io.Discard)
	return opts
}

// newCircle builds a container with one slice per percentage, colored
// red, green, blue in turn, and lays it out at size.
func newCircle(t *testing.T, opts Options, params LayoutParams, size graphics.Size, percents ...float64) (*CircleLayout, []*slice, []ChildID) {
	t.Helper()
	palette := []graphics.Color{red, green, blue}
	c := New(opts)
	slices := make([]*slice, len(percents))
	ids := make([]ChildID, len(percents))
	for i, p := range percents {
		slices[i] = newSlice(palette[i%len(palette)])
		ids[i] = c.AddChild(slices[i], params, StaticModel{Percent: p})
	}
	c.Layout(layout.Tight(size), false)
	return c, slices, ids
}

// scenario is the 50/25/25 chart starting at the top of a 200x200 box.
func scenario(t *testing.T, mode LayoutMode) (*CircleLayout, []*slice, []ChildID) {
	t.Helper()
	opts := quietOptions(mode)
	opts.AngleOffset = 270
	return newCircle(t, opts, DefaultLayoutParams(), square, 50, 25, 25)
}

// fillParams make every slice span the container so the sector mask is
// the only thing shaping its pixels.
func fillParams() LayoutParams {
	p := DefaultLayoutParams()
	p.Width = Fill()
	p.Height = Fill()
	return p
}

func paint(c *CircleLayout) *image.RGBA {
	size := c.Size()
	img := image.NewRGBA(image.Rect(0, 0, int(size.Width), int(size.Height)))
	c.Paint(&layout.PaintContext{Canvas: graphics.NewRasterCanvas(img)})
	return img
}

// polarPoint returns the pixel at angle degrees and distance r from the
// center of a 200x200 box.
func polarPoint(degrees, r float64) (int, int) {
	g := graphics.Offset{X: 100, Y: 100}
	rad := graphics.Radians(degrees)
	return int(math.Round(g.X + r*math.Cos(rad))), int(math.Round(g.Y + r*math.Sin(rad)))
}

func assertPixel(t *testing.T, img *image.RGBA, x, y int, want graphics.Color) {
	t.Helper()
	got := img.RGBAAt(x, y)
	w := color.RGBAModel.Convert(want.NRGBA()).(color.RGBA)
	near := func(a, b uint8) bool {
		d := int(a) - int(b)
		return d >= -2 && d <= 2
	}
	assert.Truef(t, near(got.R, w.R) && near(got.G, w.G) && near(got.B, w.B) && near(got.A, w.A),
		"pixel (%d,%d) = %v, want %v", x, y, got, w)
}

func down(x, y float64) gestures.PointerEvent {
	return gestures.PointerEvent{PointerID: 1, Position: graphics.Offset{X: x, Y: y}, Phase: gestures.PointerPhaseDown}
}

func move(x, y float64) gestures.PointerEvent {
	return gestures.PointerEvent{PointerID: 1, Position: graphics.Offset{X: x, Y: y}, Phase: gestures.PointerPhaseMove}
}

func up(x, y float64) gestures.PointerEvent {
	return gestures.PointerEvent{PointerID: 1, Position: graphics.Offset{X: x, Y: y}, Phase: gestures.PointerPhaseUp}
}
