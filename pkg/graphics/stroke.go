package graphics

import (
	"github.com/chewxy/math32"
)

// polygon is a closed outline in device space. x/image/vector works in
// float32, so outlines are built there.
type polygon []vec2

type vec2 struct{ X, Y float32 }

func (a vec2) add(b vec2) vec2        { return vec2{a.X + b.X, a.Y + b.Y} }
func (a vec2) sub(b vec2) vec2        { return vec2{a.X - b.X, a.Y - b.Y} }
func (a vec2) scale(s float32) vec2   { return vec2{a.X * s, a.Y * s} }
func (a vec2) length() float32        { return math32.Hypot(a.X, a.Y) }
func toVec2(o Offset) vec2            { return vec2{float32(o.X), float32(o.Y)} }

func signedArea(p polygon) float32 {
	var sum float32
	for i := range p {
		j := (i + 1) % len(p)
		sum += p[i].X*p[j].Y - p[j].X*p[i].Y
	}
	return sum / 2
}

// oriented returns p wound with positive signed area. The rasteriser
// accumulates signed coverage, so overlapping stroke pieces must share a
// winding direction or they cancel out.
func oriented(p polygon) polygon {
	if signedArea(p) >= 0 {
		return p
	}
	out := make(polygon, len(p))
	for i, v := range p {
		out[len(p)-1-i] = v
	}
	return out
}

// disc approximates a circle with enough vertices for sub-pixel error.
func disc(center vec2, radius float32) polygon {
	if radius <= 0 {
		return nil
	}
	n := int(math32.Ceil(math32.Pi / math32.Acos(1-math32.Min(0.25/radius, 1))))
	if n < 8 {
		n = 8
	}
	p := make(polygon, n)
	for i := range n {
		s, c := math32.Sincos(2 * math32.Pi * float32(i) / float32(n))
		p[i] = vec2{center.X + radius*c, center.Y + radius*s}
	}
	return p
}

// strokeOutline converts flattened subpaths into filled polygons covering the
// stroke of the given paint: one quad per segment plus joins and caps.
func strokeOutline(subpaths []Subpath, paint Paint) []polygon {
	half := float32(paint.StrokeWidth / 2)
	if half <= 0 {
		half = 0.5
	}
	var out []polygon
	for _, sp := range subpaths {
		pts := make([]vec2, 0, len(sp.Points))
		for _, o := range sp.Points {
			v := toVec2(o)
			if len(pts) > 0 && pts[len(pts)-1].sub(v).length() < 1e-4 {
				continue
			}
			pts = append(pts, v)
		}
		if sp.Closed && len(pts) > 1 && pts[0].sub(pts[len(pts)-1]).length() >= 1e-4 {
			pts = append(pts, pts[0])
		}
		if len(pts) == 1 {
			if paint.StrokeCap == CapRound {
				out = append(out, oriented(disc(pts[0], half)))
			}
			continue
		}

		for i := 0; i+1 < len(pts); i++ {
			a, b := pts[i], pts[i+1]
			d := b.sub(a)
			t := d.scale(1 / d.length())
			n := vec2{-t.Y, t.X}.scale(half)
			first := i == 0 && !sp.Closed
			last := i+2 == len(pts) && !sp.Closed
			if paint.StrokeCap == CapSquare {
				if first {
					a = a.sub(t.scale(half))
				}
				if last {
					b = b.add(t.scale(half))
				}
			}
			out = append(out, oriented(polygon{a.sub(n), b.sub(n), b.add(n), a.add(n)}))
		}

		// Joins at interior vertices, and at the seam of closed paths.
		joinAt := func(prev, at, next vec2) {
			switch paint.StrokeJoin {
			case JoinRound:
				out = append(out, oriented(disc(at, half)))
			default:
				n1 := perp(at.sub(prev), half)
				n2 := perp(next.sub(at), half)
				out = append(out,
					oriented(polygon{at, at.add(n1), at.add(n2)}),
					oriented(polygon{at, at.sub(n1), at.sub(n2)}),
				)
			}
		}
		for i := 1; i+1 < len(pts); i++ {
			joinAt(pts[i-1], pts[i], pts[i+1])
		}
		if sp.Closed && len(pts) > 2 {
			joinAt(pts[len(pts)-2], pts[0], pts[1])
		}

		if !sp.Closed && paint.StrokeCap == CapRound {
			out = append(out, oriented(disc(pts[0], half)), oriented(disc(pts[len(pts)-1], half)))
		}
	}
	return out
}

func perp(d vec2, half float32) vec2 {
	l := d.length()
	if l == 0 {
		return vec2{}
	}
	return vec2{-d.Y / l * half, d.X / l * half}
}

// fillOutline converts flattened subpaths into closed polygons for filling.
func fillOutline(subpaths []Subpath) []polygon {
	out := make([]polygon, 0, len(subpaths))
	for _, sp := range subpaths {
		if len(sp.Points) < 3 {
			continue
		}
		p := make(polygon, len(sp.Points))
		for i, o := range sp.Points {
			p[i] = toVec2(o)
		}
		out = append(out, p)
	}
	return out
}
