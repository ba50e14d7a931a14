package circlelayout

import (
	"fmt"
	"math"

	"github.com/go-drift/circlelayout/pkg/layout"
)

// SizeMode selects how a child's extent on one axis is measured.
type SizeMode int

const (
	// SizeWrap lets the child pick any size up to the container.
	SizeWrap SizeMode = iota
	// SizeFixed forces an exact size in pixels.
	SizeFixed
	// SizeFill makes the child span the whole container on that axis.
	SizeFill
)

func (m SizeMode) String() string {
	switch m {
	case SizeWrap:
		return "wrap"
	case SizeFixed:
		return "fixed"
	case SizeFill:
		return "fill"
	default:
		return fmt.Sprintf("SizeMode(%d)", int(m))
	}
}

// SizeSpec is a child's sizing policy on one axis.
type SizeSpec struct {
	Mode SizeMode
	// Value is the size in pixels for SizeFixed.
	Value float64
}

// Fixed returns a spec for an exact size in pixels.
func Fixed(px float64) SizeSpec { return SizeSpec{Mode: SizeFixed, Value: px} }

// Wrap returns a spec letting the child size itself.
func Wrap() SizeSpec { return SizeSpec{Mode: SizeWrap} }

// Fill returns a spec spanning the container.
func Fill() SizeSpec { return SizeSpec{Mode: SizeFill} }

// IsFill reports whether the spec fills the container.
func (s SizeSpec) IsFill() bool { return s.Mode == SizeFill }

// bounds returns the min and max extent for a child on an axis whose
// container maximum is limit.
func (s SizeSpec) bounds(limit float64) (float64, float64) {
	switch s.Mode {
	case SizeFixed:
		return s.Value, s.Value
	case SizeFill:
		if math.IsInf(limit, 1) {
			return 0, limit
		}
		return limit, limit
	default:
		return 0, limit
	}
}

// LayoutParams carries a child's placement inputs and the angles the
// layout assigned to it.
type LayoutParams struct {
	Width  SizeSpec
	Height SizeSpec
	// Weight is the child's relative share. It defaults to 1.
	Weight float64

	// StartAngle and EndAngle are written by the layout pass and read back
	// by painting and hit testing. They are not normalised.
	StartAngle float64
	EndAngle   float64
}

// DefaultLayoutParams returns wrap-sized params with weight 1.
func DefaultLayoutParams() LayoutParams {
	return LayoutParams{Width: Wrap(), Height: Wrap(), Weight: 1}
}

// LinearParams are the params of a linear weighting container.
type LinearParams struct {
	Width  SizeSpec
	Height SizeSpec
	Weight float64
}

// ParamsFromLinear migrates params from a linear weighting container,
// keeping its sizing and weight.
func ParamsFromLinear(p LinearParams) LayoutParams {
	return LayoutParams{Width: p.Width, Height: p.Height, Weight: p.Weight}
}

// constraints returns the child constraints for params inside c.
func (p LayoutParams) constraints(c layout.Constraints) layout.Constraints {
	minW, maxW := p.Width.bounds(c.MaxWidth)
	minH, maxH := p.Height.bounds(c.MaxHeight)
	return layout.Constraints{MinWidth: minW, MaxWidth: maxW, MinHeight: minH, MaxHeight: maxH}
}
