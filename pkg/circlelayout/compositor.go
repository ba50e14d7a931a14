package circlelayout

import (
	"math"

	"github.com/go-drift/circlelayout/pkg/graphics"
	"github.com/go-drift/circlelayout/pkg/layout"
	"github.com/go-drift/circlelayout/pkg/sector"
)

// highlightWidth is the stroke width of a highlighted sector outline.
const highlightWidth = 5

// revealState tracks the sweep-reveal of the last sector.
type revealState struct {
	active bool
	sweep  float64
}

var stencilPaint = graphics.FillPaint(graphics.ColorBlack)

var maskPaint = graphics.Paint{BlendMode: graphics.BlendModeSrcIn}

var highlightPaint = graphics.Paint{
	Color:       graphics.ColorWhite,
	Style:       graphics.PaintStyleStroke,
	StrokeWidth: highlightWidth,
	StrokeCap:   graphics.CapRound,
	StrokeJoin:  graphics.JoinRound,
	BlendMode:   graphics.BlendModeSrcOver,
}

// Paint draws the container. ModeNormal paints children as plain boxes;
// ModePie masks each one to its sector.
func (c *CircleLayout) Paint(ctx *layout.PaintContext) {
	if c.opts.Mode == ModeNormal {
		c.paintNormal(ctx)
		return
	}
	c.paintPie(ctx)
}

func (c *CircleLayout) paintNormal(ctx *layout.PaintContext) {
	c.drawBackground(ctx.Canvas)
	for _, ch := range c.children {
		ctx.PaintChildClipped(ch.box, ch.frame.TopLeft())
		clearChildPaint(ch.box)
	}
}

func (c *CircleLayout) paintPie(ctx *layout.PaintContext) {
	if !c.targets.ready() {
		return
	}
	c.drawBackground(ctx.Canvas)

	if c.needsRender || !c.targets.cacheValid || c.reveal.active || c.childrenNeedPaint() {
		c.composite()
	}
	ctx.Canvas.DrawImage(c.targets.cache, graphics.Offset{}, graphics.DefaultPaint())

	c.drawDividers(ctx.Canvas)
	c.drawInnerCircle(ctx.Canvas)
}

// composite rebuilds the cache from every child's masked sector.
func (c *CircleLayout) composite() {
	t := &c.targets
	t.cacheCanvas.Clear(graphics.ColorTransparent)
	c.needsRender = false

	last := len(c.children) - 1
	for i, ch := range c.children {
		c.drawChild(ch, i == last && c.reveal.active)
		t.cacheCanvas.DrawImage(t.dst, graphics.Offset{}, graphics.DefaultPaint())
		clearChildPaint(ch.box)
	}

	t.cacheValid = true
}

// drawChild leaves the child's pixels, masked to its sector, in dst.
func (c *CircleLayout) drawChild(ch *child, revealing bool) {
	t := &c.targets

	t.srcCanvas.Clear(graphics.ColorTransparent)
	t.dstCanvas.Clear(graphics.ColorTransparent)

	src := &layout.PaintContext{Canvas: t.srcCanvas}
	src.PaintChildClipped(ch.box, ch.frame.TopLeft())

	s := sector.Sector{Start: ch.params.StartAngle, End: ch.params.EndAngle}
	sweep := s.DrawSweep()
	if revealing {
		sweep = c.advanceReveal(sweep)
	}

	t.dstCanvas.DrawArc(c.geometry.Bounds, s.Start, sweep, true, stencilPaint)
	t.dstCanvas.DrawImage(t.src, graphics.Offset{}, maskPaint)

	if revealing {
		return
	}
	if m, ok := c.models[ch.id]; ok && m.NeedsHighlight() {
		t.dstCanvas.DrawArc(c.geometry.Bounds, s.Start, sweep, true, highlightPaint)
	}
}

// advanceReveal returns the sweep to draw on this paint, starting at 0, and
// grows the reveal by one increment. Every paint requests another; the one
// after the reveal reaches full rebuilds the cache with the whole sector.
func (c *CircleLayout) advanceReveal(full float64) float64 {
	inc := c.opts.SweepIncrement
	if inc <= 0 {
		inc = math.Abs(full)
	}
	drawn := c.reveal.sweep
	c.reveal.sweep += inc
	if c.reveal.sweep >= math.Abs(full) {
		c.reveal = revealState{}
		c.needsRender = true
		c.logger.Debug("sweep reveal finished")
	}
	c.MarkNeedsPaint()
	return math.Copysign(drawn, full)
}

// SetAnimationOnly arms or cancels the sweep-reveal of the last sector.
func (c *CircleLayout) SetAnimationOnly(enabled bool) {
	c.opts.AnimationOnly = enabled
	c.reveal = revealState{active: enabled}
	c.needsRender = true
	c.MarkNeedsPaint()
}

// Revealing reports whether a sweep-reveal is in progress.
func (c *CircleLayout) Revealing() bool {
	return c.reveal.active
}

func (c *CircleLayout) drawBackground(canvas graphics.Canvas) {
	if c.opts.Background == nil {
		return
	}
	size := c.Size()
	c.opts.Background.Draw(canvas, graphics.RectFromLTWH(0, 0, size.Width, size.Height))
}

// drawDividers draws a spoke at every sector start plus the end of the
// last sector. A single child gets none.
func (c *CircleLayout) drawDividers(canvas graphics.Canvas) {
	if len(c.children) < 2 {
		return
	}
	paint := graphics.StrokePaint(c.opts.DividerColor, c.opts.DividerWidth)
	center := c.geometry.Center
	radius := c.geometry.DividerRadius()
	last := len(c.children) - 1
	for i, ch := range c.children {
		canvas.DrawLine(center, c.geometry.PointAt(ch.params.StartAngle, radius), paint)
		if i == last {
			canvas.DrawLine(center, c.geometry.PointAt(ch.params.EndAngle, radius), paint)
		}
	}
}

// drawInnerCircle paints the hole. A ColorDrawable becomes a filled
// circle; anything else draws into the square around the hole.
func (c *CircleLayout) drawInnerCircle(canvas graphics.Canvas) {
	switch d := c.opts.InnerCircle.(type) {
	case nil:
	case ColorDrawable:
		canvas.DrawCircle(c.geometry.Center, c.opts.InnerRadius, graphics.FillPaint(d.Color))
	case *ColorDrawable:
		canvas.DrawCircle(c.geometry.Center, c.opts.InnerRadius, graphics.FillPaint(d.Color))
	default:
		d.Draw(canvas, c.geometry.InnerBounds())
	}
}

func (c *CircleLayout) childrenNeedPaint() bool {
	for _, ch := range c.children {
		if np, ok := ch.box.(interface{ NeedsPaint() bool }); ok && np.NeedsPaint() {
			return true
		}
	}
	return false
}

func clearChildPaint(box layout.RenderBox) {
	if cp, ok := box.(interface{ ClearNeedsPaint() }); ok {
		cp.ClearNeedsPaint()
	}
}
