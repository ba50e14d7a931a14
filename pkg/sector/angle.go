// Package sector holds the geometry behind the circle layout: turning
// per-child percentages into angular intervals, placing children on the
// layout circle, and mapping pointer positions back to an interval.
//
// Angles are in degrees, clockwise from the positive x axis in a y-down
// coordinate space. Intervals are stored un-normalised; callers reduce them
// modulo the angle range only when testing containment.
package sector

import (
	"fmt"
	"math"

	"github.com/go-drift/circlelayout/pkg/errors"
)

// Sector is the angular interval assigned to one child.
type Sector struct {
	Start float64
	End   float64
}

// Sweep returns the angular span of the sector.
func (s Sector) Sweep() float64 {
	return s.End - s.Start
}

// Center returns the bisecting angle of the sector.
func (s Sector) Center() float64 {
	return s.Start + s.Sweep()/2
}

// DrawSweep returns the sweep to hand to an arc primitive. Sweeps above a
// full turn are reduced modulo 360; a sweep of exactly 360 stays a full disc.
func (s Sector) DrawSweep() float64 {
	sweep := s.Sweep()
	if sweep > 360 {
		sweep = math.Mod(sweep, 360)
	}
	return sweep
}

func (s Sector) String() string {
	return fmt.Sprintf("[%g, %g)", s.Start, s.End)
}

// Compute assigns contiguous intervals to children in index order.
//
// Child i spans angleRange*percentages[i]/100 degrees starting where child
// i-1 ended; child 0 starts at offset. Percentages that do not sum to 100
// are not corrected, so the total sweep drifts proportionally.
func Compute(percentages []float64, offset, angleRange float64) []Sector {
	sectors := make([]Sector, len(percentages))
	start := offset
	for i, p := range percentages {
		angle := angleRange * (p / 100)
		sectors[i] = Sector{Start: start, End: start + angle}
		start += angle
	}
	return sectors
}

const sumTolerance = 1e-6

// Validate reports percentages that will make Compute drift: values outside
// [0,100] or a total other than 100. It returns nil for a clean sequence or
// an empty one.
func Validate(percentages []float64) error {
	if len(percentages) == 0 {
		return nil
	}
	var sum float64
	for i, p := range percentages {
		if math.IsNaN(p) || p < 0 || p > 100 {
			return errors.Errorf("sector.Validate", errors.KindLayout,
				"percentage %d is %g, want a value in [0,100]", i, p)
		}
		sum += p
	}
	if math.Abs(sum-100) > sumTolerance {
		return errors.Errorf("sector.Validate", errors.KindLayout,
			"percentages sum to %g, want 100", sum)
	}
	return nil
}

// PercentagesFromWeights converts relative weights into percentages of
// their total. Non-positive weights count as zero. A zero total yields
// all-zero percentages.
func PercentagesFromWeights(weights []float64) []float64 {
	var total float64
	for _, w := range weights {
		if w > 0 {
			total += w
		}
	}
	out := make([]float64, len(weights))
	if total == 0 {
		return out
	}
	for i, w := range weights {
		if w > 0 {
			out[i] = w / total * 100
		}
	}
	return out
}

// Total returns the summed sweep of sectors.
func Total(sectors []Sector) float64 {
	var total float64
	for _, s := range sectors {
		total += s.Sweep()
	}
	return total
}
