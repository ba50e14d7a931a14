package sector

import (
	"math"

	"github.com/go-drift/circlelayout/pkg/graphics"
)

// Geometry is the layout circle derived from a container size.
type Geometry struct {
	// Size is the container size the geometry was computed for.
	Size graphics.Size
	// Center is the container center.
	Center graphics.Offset
	// Radius is the distance from Center at which children are placed.
	Radius float64
	// InnerRadius is the radius of the central hole.
	InnerRadius float64
	// Bounds is the inscribed square inset by padding, used as the oval for
	// arc stencils.
	Bounds graphics.Rect
}

// NewGeometry computes the layout circle for a container.
func NewGeometry(size graphics.Size, innerRadius, padding float64) Geometry {
	minDimen := size.Shortest()
	center := graphics.Offset{X: size.Width / 2, Y: size.Height / 2}
	return Geometry{
		Size:        size,
		Center:      center,
		Radius:      (minDimen - innerRadius) / 2,
		InnerRadius: innerRadius,
		Bounds:      graphics.RectFromCenter(center, minDimen/2, minDimen/2).Inset(padding),
	}
}

// DividerRadius is the length of the divider spokes: the smaller half
// dimension of the container.
func (g Geometry) DividerRadius() float64 {
	return math.Min(g.Size.Width/2, g.Size.Height/2)
}

// Placement returns the point a child is centered on. With a single child
// this is the container center; otherwise it lies on the layout circle at
// the sector's bisecting angle.
func (g Geometry) Placement(s Sector, count int) graphics.Offset {
	if count <= 1 {
		return g.Center
	}
	return g.PointAt(s.Center(), g.Radius)
}

// PointAt returns the point at angle degrees and distance r from the center.
func (g Geometry) PointAt(degrees, r float64) graphics.Offset {
	rad := graphics.Radians(degrees)
	return graphics.Offset{
		X: g.Center.X + r*math.Cos(rad),
		Y: g.Center.Y + r*math.Sin(rad),
	}
}

// InnerBounds is the square circumscribing the central hole.
func (g Geometry) InnerBounds() graphics.Rect {
	return graphics.RectFromCenter(g.Center, g.InnerRadius, g.InnerRadius)
}

// Frame expands placement by half of child on each axis. An axis marked
// fill spans the whole container instead.
func Frame(placement graphics.Offset, child graphics.Size, fillWidth, fillHeight bool, container graphics.Size) graphics.Rect {
	halfW, halfH := child.Width/2, child.Height/2
	frame := graphics.Rect{
		Left:   placement.X - halfW,
		Top:    placement.Y - halfH,
		Right:  placement.X + halfW,
		Bottom: placement.Y + halfH,
	}
	if fillWidth {
		frame.Left, frame.Right = 0, container.Width
	}
	if fillHeight {
		frame.Top, frame.Bottom = 0, container.Height
	}
	return frame
}
