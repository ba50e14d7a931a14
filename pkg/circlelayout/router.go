package circlelayout

import (
	"github.com/go-drift/circlelayout/pkg/gestures"
	"github.com/go-drift/circlelayout/pkg/graphics"
	"github.com/go-drift/circlelayout/pkg/layout"
	"github.com/go-drift/circlelayout/pkg/sector"
)

// HandlePointer routes a container-local pointer event.
//
// In ModePie a down event resolves the child whose sector contains the
// pointer's angle and captures it when the child accepts; later events of
// the gesture go to the captured child until up or cancel. Events no child
// takes fall back to the container's own OnTouch handler. ModeNormal uses
// plain box routing instead.
func (c *CircleLayout) HandlePointer(event gestures.PointerEvent) bool {
	if c.opts.Mode == ModeNormal {
		return c.dispatchNormal(event)
	}

	if event.Phase == gestures.PointerPhaseDown {
		c.cancelTarget(event)

		radius, angle := sector.Polar(event.Position, c.Size(), c.opts.AngleRange)
		if !sector.InRing(radius, c.opts.InnerRadius, c.Size()) {
			return false
		}

		for _, ch := range c.children {
			s := sector.Sector{Start: ch.params.StartAngle, End: ch.params.EndAngle}
			if !sector.Contains(s, angle, c.opts.AngleRange) {
				continue
			}
			if deliver(ch, event) {
				c.captureTarget(ch)
				return true
			}
			return c.onTouch(event.WithPosition(graphics.Offset{}))
		}
	} else if t := c.target; t != nil {
		deliver(t, event)
		if event.Phase.Ends() {
			c.releaseTarget()
		}
	}

	return c.onTouch(event)
}

// dispatchNormal routes like a plain container: the topmost child whose
// frame contains a down event gets it and captures the gesture.
func (c *CircleLayout) dispatchNormal(event gestures.PointerEvent) bool {
	if event.Phase == gestures.PointerPhaseDown {
		c.cancelTarget(event)
		for i := len(c.children) - 1; i >= 0; i-- {
			ch := c.children[i]
			if !ch.frame.Contains(event.Position) {
				continue
			}
			if deliver(ch, event) {
				c.captureTarget(ch)
				return true
			}
		}
		return c.onTouch(event)
	}

	if t := c.target; t != nil {
		handled := deliver(t, event)
		if event.Phase.Ends() {
			c.releaseTarget()
		}
		return handled
	}
	return c.onTouch(event)
}

// cancelTarget sends a cancel built from event to the captured child, if
// any, and releases it.
func (c *CircleLayout) cancelTarget(event gestures.PointerEvent) {
	t := c.target
	if t == nil {
		return
	}
	deliver(t, event.WithPhase(gestures.PointerPhaseCancel))
	c.releaseTarget()
}

// deliver hands a container-local event to ch in its own coordinates.
func deliver(ch *child, event gestures.PointerEvent) bool {
	handler, ok := ch.box.(layout.PointerHandler)
	if !ok {
		return false
	}
	return handler.HandlePointer(event.Translated(-ch.frame.Left, -ch.frame.Top))
}

func (c *CircleLayout) onTouch(event gestures.PointerEvent) bool {
	if c.opts.OnTouch == nil {
		return false
	}
	return c.opts.OnTouch(event)
}

func (c *CircleLayout) captureTarget(ch *child) {
	c.target = ch
	c.logger.Debug("pointer captured", "child", ch.id)
	c.notifyCapture(ch.id, true)
}

func (c *CircleLayout) releaseTarget() {
	t := c.target
	if t == nil {
		return
	}
	c.target = nil
	c.logger.Debug("pointer released", "child", t.id)
	c.notifyCapture(t.id, false)
}

// CapturedChild returns the child holding the current gesture.
func (c *CircleLayout) CapturedChild() (ChildID, bool) {
	if c.target == nil {
		return 0, false
	}
	return c.target.id, true
}

// AddCaptureListener registers fn to observe capture (true) and release
// (false) of gesture targets. Returns an unsubscribe function.
func (c *CircleLayout) AddCaptureListener(fn func(id ChildID, captured bool)) func() {
	id := c.nextListenerID
	c.nextListenerID++
	c.captureListeners[id] = fn
	return func() {
		delete(c.captureListeners, id)
	}
}

func (c *CircleLayout) notifyCapture(id ChildID, captured bool) {
	for _, fn := range c.captureListeners {
		fn(id, captured)
	}
}

// ChildAt resolves a container-local point to a child without delivering
// anything. In ModePie it uses the sector rules of HandlePointer; in
// ModeNormal the topmost frame containing the point.
func (c *CircleLayout) ChildAt(point graphics.Offset) (ChildID, bool) {
	if c.opts.Mode == ModeNormal {
		for i := len(c.children) - 1; i >= 0; i-- {
			if c.children[i].frame.Contains(point) {
				return c.children[i].id, true
			}
		}
		return 0, false
	}
	i := sector.HitTest(c.Sectors(), point, c.Size(), c.opts.InnerRadius, c.opts.AngleRange)
	if i < 0 {
		return 0, false
	}
	return c.children[i].id, true
}
