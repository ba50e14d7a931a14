package testing

import (
	"fmt"

	"github.com/go-drift/circlelayout/pkg/gestures"
	"github.com/go-drift/circlelayout/pkg/graphics"
	"github.com/go-drift/circlelayout/pkg/layout"
)

func (t *RenderTester) allocPointerID() int64 {
	t.nextID++
	return t.nextID
}

// Tap simulates a tap at the center of the first render object matched by
// finder.
func (t *RenderTester) Tap(finder Finder) (bool, error) {
	result := t.Find(finder)
	if !result.Exists() {
		return false, fmt.Errorf("Tap: finder matched nothing: %s", finder.Description())
	}
	return t.TapAt(RenderCenter(result.First()))
}

// TapAt simulates a tap at the given surface position. It reports whether
// the down event was handled.
func (t *RenderTester) TapAt(pos graphics.Offset) (bool, error) {
	id := t.allocPointerID()
	handled, err := t.SendPointerDown(pos, id)
	if err != nil {
		return false, err
	}
	if _, err := t.SendPointerUp(pos, id); err != nil {
		return handled, err
	}
	return handled, nil
}

// DragFrom simulates a drag from start by delta in steps move events.
func (t *RenderTester) DragFrom(start, delta graphics.Offset, steps int) error {
	if steps < 1 {
		steps = 1
	}
	id := t.allocPointerID()
	if _, err := t.SendPointerDown(start, id); err != nil {
		return err
	}
	for i := 1; i <= steps; i++ {
		frac := float64(i) / float64(steps)
		pos := graphics.Offset{X: start.X + delta.X*frac, Y: start.Y + delta.Y*frac}
		if _, err := t.SendPointerMove(pos, id); err != nil {
			return err
		}
	}
	_, err := t.SendPointerUp(start.Add(delta), id)
	return err
}

// SendPointerDown sends a pointer-down event at pos.
func (t *RenderTester) SendPointerDown(pos graphics.Offset, pointerID int64) (bool, error) {
	return t.sendPointer(gestures.PointerEvent{
		PointerID: pointerID,
		Position:  pos,
		Phase:     gestures.PointerPhaseDown,
	})
}

// SendPointerMove sends a pointer-move event at pos.
func (t *RenderTester) SendPointerMove(pos graphics.Offset, pointerID int64) (bool, error) {
	return t.sendPointer(gestures.PointerEvent{
		PointerID: pointerID,
		Position:  pos,
		Phase:     gestures.PointerPhaseMove,
	})
}

// SendPointerUp sends a pointer-up event at pos.
func (t *RenderTester) SendPointerUp(pos graphics.Offset, pointerID int64) (bool, error) {
	return t.sendPointer(gestures.PointerEvent{
		PointerID: pointerID,
		Position:  pos,
		Phase:     gestures.PointerPhaseUp,
	})
}

// SendPointerCancel cancels the gesture of pointerID at its last position.
func (t *RenderTester) SendPointerCancel(pointerID int64) (bool, error) {
	return t.sendPointer(gestures.PointerEvent{
		PointerID: pointerID,
		Position:  t.pointers[pointerID],
		Phase:     gestures.PointerPhaseCancel,
	})
}

func (t *RenderTester) sendPointer(event gestures.PointerEvent) (bool, error) {
	if t.engine == nil {
		return false, errNoRoot
	}
	if event.Phase.Ends() {
		delete(t.pointers, event.PointerID)
	} else {
		t.pointers[event.PointerID] = event.Position
	}
	return t.engine.HandlePointer(event), nil
}

// RenderCenter returns the center of a render object in root coordinates.
func RenderCenter(ro layout.RenderObject) graphics.Offset {
	size := ro.Size()
	abs := absoluteOffset(ro)
	return graphics.Offset{X: abs.X + size.Width/2, Y: abs.Y + size.Height/2}
}

// absoluteOffset walks up the parent chain accumulating offsets from
// BoxParentData to compute the root-relative position of a render object.
func absoluteOffset(ro layout.RenderObject) graphics.Offset {
	offset := graphics.Offset{}
	cur := ro
	for cur != nil {
		if pd, ok := cur.ParentData().(*layout.BoxParentData); ok {
			offset.X += pd.Offset.X
			offset.Y += pd.Offset.Y
		}
		parent, ok := cur.(interface{ Parent() layout.RenderObject })
		if !ok {
			break
		}
		cur = parent.Parent()
	}
	return offset
}
