package graphics

import (
	"fmt"
	"math"
)

// PathOp represents a path drawing operation type.
type PathOp int

const (
	PathOpMoveTo  PathOp = iota // Start new subpath at point (x, y)
	PathOpLineTo                // Draw line to point (x, y)
	PathOpCubicTo               // Draw cubic curve to (x3, y3) via controls (x1, y1), (x2, y2)
	PathOpClose                 // Close subpath with line to start point
)

// String returns a human-readable representation of the path operation.
func (o PathOp) String() string {
	switch o {
	case PathOpMoveTo:
		return "move_to"
	case PathOpLineTo:
		return "line_to"
	case PathOpCubicTo:
		return "cubic_to"
	case PathOpClose:
		return "close"
	default:
		return fmt.Sprintf("PathOp(%d)", int(o))
	}
}

// PathCommand represents a single path operation with its coordinate arguments.
type PathCommand struct {
	Op   PathOp    // The operation type
	Args []float64 // Coordinates: MoveTo/LineTo=[x,y], CubicTo=[x1,y1,x2,y2,x3,y3]
}

// Path represents a vector path for drawing arbitrary shapes.
//
// Build paths using MoveTo, LineTo, CubicTo, AddArc and Close.
// Paths are filled with the nonzero winding rule.
type Path struct {
	Commands []PathCommand
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{}
}

// MoveTo starts a new subpath at the given point.
func (p *Path) MoveTo(x, y float64) {
	p.Commands = append(p.Commands, PathCommand{Op: PathOpMoveTo, Args: []float64{x, y}})
}

// LineTo adds a line segment from the current point to (x, y).
func (p *Path) LineTo(x, y float64) {
	p.Commands = append(p.Commands, PathCommand{Op: PathOpLineTo, Args: []float64{x, y}})
}

// CubicTo adds a cubic bezier curve from the current point to (x3, y3)
// with control points (x1, y1) and (x2, y2).
func (p *Path) CubicTo(x1, y1, x2, y2, x3, y3 float64) {
	p.Commands = append(p.Commands, PathCommand{
		Op:   PathOpCubicTo,
		Args: []float64{x1, y1, x2, y2, x3, y3},
	})
}

// Close closes the current subpath by drawing a line to the starting point.
func (p *Path) Close() {
	p.Commands = append(p.Commands, PathCommand{Op: PathOpClose})
}

// IsEmpty returns true if the path has no commands.
func (p *Path) IsEmpty() bool {
	return len(p.Commands) == 0
}

// AddArc appends the arc of the oval inscribed in oval, starting at
// startDegrees and sweeping sweepDegrees clockwise (y down). When useCenter
// is true the arc is closed through the oval's center, producing a wedge.
// A sweep of zero adds nothing; sweeps beyond a full turn are clamped.
func (p *Path) AddArc(oval Rect, startDegrees, sweepDegrees float64, useCenter bool) {
	if sweepDegrees == 0 || oval.IsEmpty() {
		return
	}
	sweepDegrees = math.Max(-360, math.Min(360, sweepDegrees))

	center := oval.Center()
	rx := oval.Width() / 2
	ry := oval.Height() / 2
	start := Radians(startDegrees)
	sweep := Radians(sweepDegrees)

	if useCenter {
		p.MoveTo(center.X, center.Y)
		p.LineTo(center.X+rx*math.Cos(start), center.Y+ry*math.Sin(start))
	} else {
		p.MoveTo(center.X+rx*math.Cos(start), center.Y+ry*math.Sin(start))
	}

	// Split into segments of at most 90 degrees; k = (4/3) tan(angle/4)
	// places the cubic control points on the tangents.
	const maxSegment = math.Pi / 2
	remaining := sweep
	current := start
	for math.Abs(remaining) > 1e-9 {
		segment := remaining
		if math.Abs(segment) > maxSegment {
			segment = math.Copysign(maxSegment, segment)
		}
		end := current + segment
		k := (4.0 / 3.0) * math.Tan(segment/4)

		x0 := center.X + rx*math.Cos(current)
		y0 := center.Y + ry*math.Sin(current)
		x3 := center.X + rx*math.Cos(end)
		y3 := center.Y + ry*math.Sin(end)

		p.CubicTo(
			x0-k*rx*math.Sin(current), y0+k*ry*math.Cos(current),
			x3+k*rx*math.Sin(end), y3-k*ry*math.Cos(end),
			x3, y3,
		)

		current = end
		remaining -= segment
	}

	if useCenter {
		p.Close()
	}
}

// AddCircle appends a closed circle.
func (p *Path) AddCircle(center Offset, radius float64) {
	p.AddArc(RectFromCenter(center, radius, radius), 0, 360, false)
	p.Close()
}

// Subpath is a flattened run of points. Closed subpaths connect the last
// point back to the first.
type Subpath struct {
	Points []Offset
	Closed bool
}

// Flatten converts the path into polylines, subdividing cubics so that each
// chord deviates from the curve by at most tolerance pixels.
func (p *Path) Flatten(tolerance float64) []Subpath {
	if tolerance <= 0 {
		tolerance = 0.25
	}
	var out []Subpath
	var cur *Subpath
	var pen Offset

	flush := func() {
		if cur != nil && len(cur.Points) > 0 {
			out = append(out, *cur)
		}
		cur = nil
	}

	for _, cmd := range p.Commands {
		switch cmd.Op {
		case PathOpMoveTo:
			flush()
			pen = Offset{X: cmd.Args[0], Y: cmd.Args[1]}
			cur = &Subpath{Points: []Offset{pen}}
		case PathOpLineTo:
			if cur == nil {
				cur = &Subpath{Points: []Offset{pen}}
			}
			pen = Offset{X: cmd.Args[0], Y: cmd.Args[1]}
			cur.Points = append(cur.Points, pen)
		case PathOpCubicTo:
			if cur == nil {
				cur = &Subpath{Points: []Offset{pen}}
			}
			c1 := Offset{X: cmd.Args[0], Y: cmd.Args[1]}
			c2 := Offset{X: cmd.Args[2], Y: cmd.Args[3]}
			end := Offset{X: cmd.Args[4], Y: cmd.Args[5]}
			cur.Points = appendCubic(cur.Points, pen, c1, c2, end, tolerance)
			pen = end
		case PathOpClose:
			if cur != nil {
				cur.Closed = true
				pen = cur.Points[0]
			}
			flush()
		}
	}
	flush()
	return out
}

// appendCubic appends the flattened cubic (without its start point).
func appendCubic(points []Offset, p0, p1, p2, p3 Offset, tolerance float64) []Offset {
	// Control polygon deviation bound; n segments keep error under tolerance.
	dd := math.Max(
		p0.Sub(p1.Add(p1)).Add(p2).Distance(),
		p1.Sub(p2.Add(p2)).Add(p3).Distance(),
	)
	n := int(math.Ceil(math.Sqrt(0.75 * dd / tolerance)))
	if n < 1 {
		n = 1
	}
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		u := 1 - t
		a := u * u * u
		b := 3 * u * u * t
		c := 3 * u * t * t
		d := t * t * t
		points = append(points, Offset{
			X: a*p0.X + b*p1.X + c*p2.X + d*p3.X,
			Y: a*p0.Y + b*p1.Y + c*p2.Y + d*p3.Y,
		})
	}
	return points
}
