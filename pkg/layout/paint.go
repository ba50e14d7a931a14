package layout

import (
	"github.com/go-drift/circlelayout/pkg/gestures"
	"github.com/go-drift/circlelayout/pkg/graphics"
)

// HitTestResult collects hit test entries in paint order.
type HitTestResult struct {
	Entries []RenderObject
}

// Add inserts a render object into the hit test result list.
func (h *HitTestResult) Add(target RenderObject) {
	h.Entries = append(h.Entries, target)
}

// PointerHandler receives pointer events routed from hit testing.
// Positions are in the receiver's local coordinate space. The return value
// reports whether the event was consumed.
type PointerHandler interface {
	HandlePointer(event gestures.PointerEvent) bool
}

// PaintContext provides the canvas for painting render objects.
type PaintContext struct {
	Canvas graphics.Canvas
}

// PaintChild paints a child render box at the given offset.
func (p *PaintContext) PaintChild(child RenderBox, offset graphics.Offset) {
	if child == nil {
		return
	}
	p.Canvas.Save()
	p.Canvas.Translate(offset.X, offset.Y)
	child.Paint(p)
	p.Canvas.Restore()
}

// PaintChildClipped paints a child at offset with the canvas clipped to the
// child's own size.
func (p *PaintContext) PaintChildClipped(child RenderBox, offset graphics.Offset) {
	if child == nil {
		return
	}
	size := child.Size()
	p.Canvas.Save()
	p.Canvas.ClipRect(graphics.RectFromLTWH(offset.X, offset.Y, size.Width, size.Height))
	p.Canvas.Translate(offset.X, offset.Y)
	child.Paint(p)
	p.Canvas.Restore()
}
