package widgets

import (
	"github.com/go-drift/circlelayout/pkg/gestures"
	"github.com/go-drift/circlelayout/pkg/graphics"
	"github.com/go-drift/circlelayout/pkg/layout"
)

// ColoredBox fills its size with a color and optionally draws a child on
// top. It prefers Width x Height, clamped to its constraints.
type ColoredBox struct {
	layout.RenderBoxBase

	color  graphics.Color
	width  float64
	height float64
	child  layout.RenderBox

	// OnPointer is called for every event delivered to the box. Its result
	// is the box's answer; a nil OnPointer accepts every event.
	OnPointer func(event gestures.PointerEvent) bool

	// Events records delivered events in order.
	Events []gestures.PointerEvent
}

// NewColoredBox returns a box of the given color and preferred size.
func NewColoredBox(color graphics.Color, width, height float64) *ColoredBox {
	b := &ColoredBox{color: color, width: width, height: height}
	b.SetSelf(b)
	return b
}

// SetColor changes the fill color.
func (b *ColoredBox) SetColor(color graphics.Color) {
	if b.color == color {
		return
	}
	b.color = color
	b.MarkNeedsPaint()
}

// Color returns the fill color.
func (b *ColoredBox) Color() graphics.Color {
	return b.color
}

// SetChild sets the box's content.
func (b *ColoredBox) SetChild(child layout.RenderBox) {
	if b.child != nil {
		layout.SetParentOnChild(b.child, nil)
	}
	b.child = child
	if child != nil {
		child.SetOwner(b.Owner())
		layout.SetParentOnChild(child, b)
	}
	b.MarkNeedsLayout()
}

// VisitChildren calls the visitor for the child, if any.
func (b *ColoredBox) VisitChildren(visitor func(layout.RenderObject)) {
	if b.child != nil {
		visitor(b.child)
	}
}

// SetOwner attaches the box and its child to a pipeline owner.
func (b *ColoredBox) SetOwner(owner *layout.PipelineOwner) {
	b.RenderBoxBase.SetOwner(owner)
	if b.child != nil {
		b.child.SetOwner(owner)
	}
}

// PerformLayout sizes the box and centers the child.
func (b *ColoredBox) PerformLayout() {
	constraints := b.Constraints()
	size := constraints.Constrain(graphics.Size{Width: b.width, Height: b.height})
	b.SetSize(size)
	if b.child == nil {
		return
	}
	b.child.Layout(layout.Loose(size), true) // true: we read child.Size()
	cs := b.child.Size()
	b.child.SetParentData(&layout.BoxParentData{Offset: graphics.Offset{
		X: (size.Width - cs.Width) / 2,
		Y: (size.Height - cs.Height) / 2,
	}})
}

// Paint fills the box and paints the child over it.
func (b *ColoredBox) Paint(ctx *layout.PaintContext) {
	size := b.Size()
	if size.Width <= 0 || size.Height <= 0 {
		return
	}
	ctx.Canvas.DrawRect(graphics.RectFromLTWH(0, 0, size.Width, size.Height), graphics.FillPaint(b.color))
	if b.child != nil {
		var offset graphics.Offset
		if pd, ok := b.child.ParentData().(*layout.BoxParentData); ok {
			offset = pd.Offset
		}
		ctx.PaintChild(b.child, offset)
	}
}

// HandlePointer records the event and reports OnPointer's answer.
func (b *ColoredBox) HandlePointer(event gestures.PointerEvent) bool {
	b.Events = append(b.Events, event)
	if b.OnPointer == nil {
		return true
	}
	return b.OnPointer(event)
}
