package sector

import (
	"math"

	"github.com/go-drift/circlelayout/pkg/graphics"
)

// Polar converts a position relative to the container center into a radial
// distance and an angle in [0, angleRange) when the raw atan2 angle is
// negative. Positive raw angles are returned unchanged.
func Polar(local graphics.Offset, size graphics.Size, angleRange float64) (radius, angle float64) {
	x := local.X - size.Width/2
	y := local.Y - size.Height/2
	radius = math.Hypot(x, y)
	angle = graphics.Degrees(math.Atan2(y, x))
	if angle < 0 {
		angle += angleRange
	}
	return radius, angle
}

// InRing reports whether radius lies on the touchable ring: no closer than
// innerRadius and no further than half of either container dimension.
func InRing(radius, innerRadius float64, size graphics.Size) bool {
	return !(radius < innerRadius || radius > size.Width/2 || radius > size.Height/2)
}

// Contains reports whether touchAngle falls in s once both bounds are
// reduced modulo angleRange. An interval whose reduced start exceeds its
// reduced end wraps past the range boundary and is compared on the unrolled
// axis, where the reduced end itself is excluded. Otherwise both bounds are
// inclusive. A sector spanning the whole range contains every angle.
func Contains(s Sector, touchAngle, angleRange float64) bool {
	if s.Sweep() >= angleRange {
		return true
	}
	start := normalize(s.Start, angleRange)
	end := normalize(s.End, angleRange)
	if start > end {
		if touchAngle < start && touchAngle < end {
			touchAngle += angleRange
		}
		end += angleRange
	}
	return start <= touchAngle && end >= touchAngle
}

// Find returns the index of the first sector containing touchAngle, or -1.
func Find(sectors []Sector, touchAngle, angleRange float64) int {
	for i, s := range sectors {
		if Contains(s, touchAngle, angleRange) {
			return i
		}
	}
	return -1
}

// HitTest resolves a container-local position to a sector index. It returns
// -1 when the position is in the central hole, outside the circle, or in no
// sector.
func HitTest(sectors []Sector, local graphics.Offset, size graphics.Size, innerRadius, angleRange float64) int {
	radius, angle := Polar(local, size, angleRange)
	if !InRing(radius, innerRadius, size) {
		return -1
	}
	return Find(sectors, angle, angleRange)
}

// normalize reduces deg into [0, angleRange).
func normalize(deg, angleRange float64) float64 {
	deg = math.Mod(deg, angleRange)
	if deg < 0 {
		deg += angleRange
	}
	return deg
}
