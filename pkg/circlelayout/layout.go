package circlelayout

import (
	"github.com/go-drift/circlelayout/pkg/graphics"
	"github.com/go-drift/circlelayout/pkg/layout"
	"github.com/go-drift/circlelayout/pkg/sector"
)

// PerformLayout measures children, assigns each a sector and places it on
// the layout circle.
func (c *CircleLayout) PerformLayout() {
	constraints := c.Constraints()
	size := constraints.Constrain(constraints.Biggest())

	for _, ch := range c.children {
		ch.box.Layout(ch.params.constraints(layout.Loose(size)), true)
	}
	c.SetSize(size)

	if c.targets.ensure(size) {
		c.logger.Debug("render targets allocated", "width", c.targets.width, "height", c.targets.height)
		c.needsRender = true
	}

	geometry := sector.NewGeometry(size, c.opts.InnerRadius, c.opts.Padding)
	if geometry.Bounds != c.geometry.Bounds {
		c.needsRender = true
	}
	c.geometry = geometry

	sectors := sector.Compute(c.percentages(), c.opts.AngleOffset, c.opts.AngleRange)
	changed := false
	for i, ch := range c.children {
		s := sectors[i]
		placement := geometry.Placement(s, len(c.children))
		frame := sector.Frame(placement, ch.box.Size(), ch.params.Width.IsFill(), ch.params.Height.IsFill(), size)

		if frame != ch.frame || ch.params.StartAngle != s.Start || ch.params.EndAngle != s.End {
			changed = true
		}
		ch.frame = frame
		ch.params.StartAngle = s.Start
		ch.params.EndAngle = s.End
		ch.box.SetParentData(&layout.BoxParentData{Offset: frame.TopLeft()})
	}
	if changed {
		c.logger.Debug("sectors changed", "children", len(c.children))
		c.needsRender = true
	}

	c.MarkNeedsPaint()
}

// percentages reads each child's model. A missing model counts as zero and
// is logged once until the child gets one.
func (c *CircleLayout) percentages() []float64 {
	out := make([]float64, len(c.children))
	for i, ch := range c.children {
		m, ok := c.models[ch.id]
		if !ok {
			if !ch.warned {
				c.logger.Warn("child has no model", "child", ch.id)
				ch.warned = true
			}
			continue
		}
		ch.warned = false
		out[i] = m.Percentage()
	}
	return out
}

// Geometry returns the layout circle of the last layout pass.
func (c *CircleLayout) Geometry() sector.Geometry {
	return c.geometry
}

// HitTest adds the container when position lies inside it. Children are
// not hit tested individually: pointer events reach them through
// HandlePointer.
func (c *CircleLayout) HitTest(position graphics.Offset, result *layout.HitTestResult) bool {
	if !layout.WithinBounds(position, c.Size()) {
		return false
	}
	result.Add(c)
	return true
}
