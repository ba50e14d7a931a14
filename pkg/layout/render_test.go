package layout

import (
	"math"
	"testing"

	"github.com/go-drift/circlelayout/pkg/graphics"
)

func TestConstraints(t *testing.T) {
	size := graphics.Size{Width: 30, Height: 40}
	tight := Tight(size)
	if !tight.IsTight() {
		t.Error("Tight should be tight")
	}
	if got := tight.Constrain(graphics.Size{Width: 100, Height: 1}); got != size {
		t.Errorf("Constrain = %v, want %v", got, size)
	}

	loose := Loose(size)
	if loose.IsTight() {
		t.Error("Loose should not be tight")
	}
	if got := loose.Constrain(graphics.Size{Width: 10, Height: 100}); got != (graphics.Size{Width: 10, Height: 40}) {
		t.Errorf("Constrain = %v", got)
	}
	if got := loose.Biggest(); got != size {
		t.Errorf("Biggest = %v, want %v", got, size)
	}

	unbounded := Unbounded()
	if unbounded.HasBoundedWidth() || unbounded.HasBoundedHeight() {
		t.Error("Unbounded should have no bounds")
	}
	if got := unbounded.Biggest(); got != (graphics.Size{}) {
		t.Errorf("Biggest of unbounded = %v, want zero", got)
	}
	if got := unbounded.Constrain(graphics.Size{Width: 1e9, Height: 3}); got.Width != 1e9 || math.IsInf(got.Height, 0) {
		t.Errorf("Constrain unbounded = %v", got)
	}
}

func TestLayoutSkipsWhenClean(t *testing.T) {
	box := newTestRenderBox(graphics.Size{Width: 10, Height: 10})
	c := Loose(graphics.Size{Width: 50, Height: 50})

	box.Layout(c, false)
	box.Layout(c, false)
	if box.layoutCalls != 1 {
		t.Fatalf("layoutCalls = %d, want 1", box.layoutCalls)
	}

	box.Layout(Tight(graphics.Size{Width: 20, Height: 20}), false)
	if box.layoutCalls != 2 {
		t.Fatalf("layoutCalls = %d, want 2 after constraint change", box.layoutCalls)
	}
	if box.Size() != (graphics.Size{Width: 20, Height: 20}) {
		t.Errorf("Size = %v", box.Size())
	}
}

func TestMarkNeedsLayoutSchedulesBoundary(t *testing.T) {
	owner := &PipelineOwner{}
	parent := newTestRenderBox(graphics.Size{Width: 100, Height: 100})
	child := newTestRenderBox(graphics.Size{Width: 10, Height: 10})
	parent.SetOwner(owner)
	child.SetOwner(owner)
	SetParentOnChild(child, parent)

	parent.Layout(Loose(graphics.Size{Width: 100, Height: 100}), false)
	child.Layout(Loose(graphics.Size{Width: 100, Height: 100}), true)

	if child.RelayoutBoundary() != parent {
		t.Fatalf("child boundary = %v, want parent", child.RelayoutBoundary())
	}

	child.MarkNeedsLayout()
	if !parent.NeedsLayout() {
		t.Error("parent should be marked through the child")
	}
	if !owner.NeedsLayout() {
		t.Error("owner should have the boundary scheduled")
	}
	if child.Depth() != 1 {
		t.Errorf("child depth = %d, want 1", child.Depth())
	}

	owner.FlushLayoutForRoot(parent, Loose(graphics.Size{Width: 100, Height: 100}))
	if owner.NeedsLayout() {
		t.Error("owner should be clean after flush")
	}
	if parent.layoutCalls != 2 {
		t.Errorf("parent layoutCalls = %d, want 2", parent.layoutCalls)
	}
}

func TestMarkNeedsPaintBubblesToRoot(t *testing.T) {
	owner := &PipelineOwner{}
	parent := newTestRenderBox(graphics.Size{Width: 100, Height: 100})
	child := newTestRenderBox(graphics.Size{Width: 10, Height: 10})
	parent.SetOwner(owner)
	child.SetOwner(owner)
	SetParentOnChild(child, parent)
	owner.FlushPaint()

	child.MarkNeedsPaint()
	dirty := owner.FlushPaint()
	if len(dirty) != 1 || dirty[0] != parent {
		t.Fatalf("dirty = %v, want [parent]", dirty)
	}
	if owner.NeedsPaint() {
		t.Error("owner should be clean after FlushPaint")
	}
}

func TestSetParentDataMarksParentPaint(t *testing.T) {
	parent := newTestRenderBox(graphics.Size{})
	child := newTestRenderBox(graphics.Size{})
	SetParentOnChild(child, parent)
	parent.ClearNeedsPaint()

	child.SetParentData(&BoxParentData{Offset: graphics.Offset{X: 1}})
	if !parent.NeedsPaint() {
		t.Error("offset change should repaint the parent")
	}

	parent.ClearNeedsPaint()
	child.SetParentData(&BoxParentData{Offset: graphics.Offset{X: 1}})
	if parent.NeedsPaint() {
		t.Error("unchanged offset should not repaint the parent")
	}
}
