package animation

import (
	"fmt"
	"math"
	"strings"
)

// EasingFunc maps linear progress t in [0, 1] to eased progress. Curves such
// as the Back and Elastic families leave [0, 1] mid-flight but always end at
// 0 and 1.
type EasingFunc func(t float64) float64

// Easing is implemented by EasingFunc and EasingOption so that APIs can
// accept either a custom curve or a preset.
type Easing interface {
	Ease(t float64) float64
}

// Ease calls f.
func (f EasingFunc) Ease(t float64) float64 { return f(t) }

// Ease applies the preset's curve.
func (o EasingOption) Ease(t float64) float64 { return o.Func()(t) }

// Resolve converts an Easing to an EasingFunc. Nil yields nil.
func Resolve(e Easing) EasingFunc {
	switch v := e.(type) {
	case nil:
		return nil
	case EasingFunc:
		return v
	case EasingOption:
		return v.Func()
	default:
		return v.Ease
	}
}

// Linear returns linear progress (no easing).
var Linear EasingFunc = func(t float64) float64 { return t }

// Ease is equivalent to CSS ease.
var Ease = CubicBezier(0.25, 0.1, 0.25, 1.0)

// CubicBezier returns an easing function matching CSS cubic-bezier().
// The parameters define the two control points (x1,y1) and (x2,y2) of the curve.
// The curve starts at (0,0) and ends at (1,1).
func CubicBezier(x1, y1, x2, y2 float64) EasingFunc {
	return func(t float64) float64 {
		if t <= 0 {
			return 0
		}
		if t >= 1 {
			return 1
		}

		u := t
		// Newton-Raphson converges quickly for most values.
		for range 8 {
			x := sampleCurve(x1, x2, u) - t
			if math.Abs(x) < 1e-7 {
				return sampleCurve(y1, y2, clampUnit(u))
			}
			dx := sampleCurveDerivative(x1, x2, u)
			if math.Abs(dx) < 1e-7 {
				break
			}
			u -= x / dx
		}

		// Bisection keeps the solution in [0,1] when Newton stalls.
		lo, hi := 0.0, 1.0
		u = clampUnit(u)
		for range 12 {
			x := sampleCurve(x1, x2, u) - t
			if math.Abs(x) < 1e-7 {
				break
			}
			if x > 0 {
				hi = u
			} else {
				lo = u
			}
			u = (lo + hi) * 0.5
		}

		return sampleCurve(y1, y2, u)
	}
}

func sampleCurve(a, b, t float64) float64 {
	inv := 1 - t
	return 3*inv*inv*t*a + 3*inv*t*t*b + t*t*t
}

func sampleCurveDerivative(a, b, t float64) float64 {
	inv := 1 - t
	return 3*inv*inv*a + 6*inv*t*(b-a) + 3*t*t*(1-b)
}

func clampUnit(value float64) float64 {
	if value < 0 {
		return 0
	}
	if value > 1 {
		return 1
	}
	return value
}

// EasingOption names a predefined easing curve.
type EasingOption int

// Predefined easing curves, one per family and direction.
const (
	EaseLinear EasingOption = iota
	EaseInQuad
	EaseOutQuad
	EaseInOutQuad
	EaseInCubic
	EaseOutCubic
	EaseInOutCubic
	EaseInQuart
	EaseOutQuart
	EaseInOutQuart
	EaseInSine
	EaseOutSine
	EaseInOutSine
	EaseInExpo
	EaseOutExpo
	EaseInOutExpo
	EaseInCirc
	EaseOutCirc
	EaseInOutCirc
	EaseInElastic
	EaseOutElastic
	EaseInOutElastic
	EaseInBack
	EaseOutBack
	EaseInOutBack
	EaseInBounce
	EaseOutBounce
	EaseInOutBounce
)

var easingNames = [...]string{
	"linear",
	"easeInQuad", "easeOutQuad", "easeInOutQuad",
	"easeInCubic", "easeOutCubic", "easeInOutCubic",
	"easeInQuart", "easeOutQuart", "easeInOutQuart",
	"easeInSine", "easeOutSine", "easeInOutSine",
	"easeInExpo", "easeOutExpo", "easeInOutExpo",
	"easeInCirc", "easeOutCirc", "easeInOutCirc",
	"easeInElastic", "easeOutElastic", "easeInOutElastic",
	"easeInBack", "easeOutBack", "easeInOutBack",
	"easeInBounce", "easeOutBounce", "easeInOutBounce",
}

var easingFuncs = [...]EasingFunc{
	Linear,
	easeInQuad, easeOutQuad, easeInOutQuad,
	easeInCubic, easeOutCubic, easeInOutCubic,
	easeInQuart, easeOutQuart, easeInOutQuart,
	easeInSine, easeOutSine, easeInOutSine,
	easeInExpo, easeOutExpo, easeInOutExpo,
	easeInCirc, easeOutCirc, easeInOutCirc,
	easeInElastic, easeOutElastic, easeInOutElastic,
	easeInBack, easeOutBack, easeInOutBack,
	easeInBounce, easeOutBounce, easeInOutBounce,
}

func (o EasingOption) String() string {
	if o < 0 || int(o) >= len(easingNames) {
		return fmt.Sprintf("EasingOption(%d)", int(o))
	}
	return easingNames[o]
}

// Func returns the easing function for o. Unknown options fall back to Linear.
func (o EasingOption) Func() EasingFunc {
	if o < 0 || int(o) >= len(easingFuncs) {
		return Linear
	}
	return easingFuncs[o]
}

// ParseEasingOption resolves a case-insensitive preset name such as
// "easeOutCubic" or "ease-out-cubic".
func ParseEasingOption(name string) (EasingOption, error) {
	key := strings.ToLower(strings.NewReplacer("-", "", "_", "", " ", "").Replace(name))
	for i, n := range easingNames {
		if strings.ToLower(n) == key {
			return EasingOption(i), nil
		}
	}
	return EaseLinear, fmt.Errorf("unknown easing %q", name)
}

func easeInQuad(t float64) float64  { return t * t }
func easeOutQuad(t float64) float64 { return -t * (t - 2) }
func easeInOutQuad(t float64) float64 {
	t *= 2
	if t < 1 {
		return 0.5 * t * t
	}
	t--
	return -0.5 * (t*(t-2) - 1)
}

func easeInCubic(t float64) float64 { return t * t * t }
func easeOutCubic(t float64) float64 {
	t--
	return t*t*t + 1
}
func easeInOutCubic(t float64) float64 {
	t *= 2
	if t < 1 {
		return 0.5 * t * t * t
	}
	t -= 2
	return 0.5 * (t*t*t + 2)
}

func easeInQuart(t float64) float64 { return t * t * t * t }
func easeOutQuart(t float64) float64 {
	t--
	return -(t*t*t*t - 1)
}
func easeInOutQuart(t float64) float64 {
	t *= 2
	if t < 1 {
		return 0.5 * t * t * t * t
	}
	t -= 2
	return -0.5 * (t*t*t*t - 2)
}

func easeInSine(t float64) float64    { return -math.Cos(t*math.Pi/2) + 1 }
func easeOutSine(t float64) float64   { return math.Sin(t * math.Pi / 2) }
func easeInOutSine(t float64) float64 { return -0.5 * (math.Cos(math.Pi*t) - 1) }

func easeInExpo(t float64) float64 {
	if t == 0 {
		return 0
	}
	return math.Pow(2, 10*(t-1))
}
func easeOutExpo(t float64) float64 {
	if t == 1 {
		return 1
	}
	return -math.Pow(2, -10*t) + 1
}
func easeInOutExpo(t float64) float64 {
	switch t {
	case 0, 1:
		return t
	}
	t *= 2
	if t < 1 {
		return 0.5 * math.Pow(2, 10*(t-1))
	}
	t--
	return 0.5 * (-math.Pow(2, -10*t) + 2)
}

func easeInCirc(t float64) float64 { return -(math.Sqrt(1-t*t) - 1) }
func easeOutCirc(t float64) float64 {
	t--
	return math.Sqrt(1 - t*t)
}
func easeInOutCirc(t float64) float64 {
	t *= 2
	if t < 1 {
		return -0.5 * (math.Sqrt(1-t*t) - 1)
	}
	t -= 2
	return 0.5 * (math.Sqrt(1-t*t) + 1)
}

const elasticPeriod = 0.3

func easeInElastic(t float64) float64 {
	switch t {
	case 0, 1:
		return t
	}
	s := elasticPeriod / (2 * math.Pi) * math.Asin(1)
	t--
	return -(math.Pow(2, 10*t) * math.Sin((t-s)*(2*math.Pi)/elasticPeriod))
}
func easeOutElastic(t float64) float64 {
	switch t {
	case 0, 1:
		return t
	}
	s := elasticPeriod / (2 * math.Pi) * math.Asin(1)
	return math.Pow(2, -10*t)*math.Sin((t-s)*(2*math.Pi)/elasticPeriod) + 1
}
func easeInOutElastic(t float64) float64 {
	switch t {
	case 0, 1:
		return t
	}
	const p = elasticPeriod * 1.5
	s := p / (2 * math.Pi) * math.Asin(1)
	t = t*2 - 1
	if t < 0 {
		return -0.5 * math.Pow(2, 10*t) * math.Sin((t-s)*(2*math.Pi)/p)
	}
	return math.Pow(2, -10*t)*math.Sin((t-s)*(2*math.Pi)/p)*0.5 + 1
}

const backOvershoot = 1.70158

func easeInBack(t float64) float64 {
	return t * t * ((backOvershoot+1)*t - backOvershoot)
}
func easeOutBack(t float64) float64 {
	t--
	return t*t*((backOvershoot+1)*t+backOvershoot) + 1
}
func easeInOutBack(t float64) float64 {
	const s = backOvershoot * 1.525
	t *= 2
	if t < 1 {
		return 0.5 * (t * t * ((s+1)*t - s))
	}
	t -= 2
	return 0.5 * (t*t*((s+1)*t+s) + 2)
}

func easeInBounce(t float64) float64 { return 1 - easeOutBounce(1-t) }
func easeOutBounce(t float64) float64 {
	switch {
	case t < 1/2.75:
		return 7.5625 * t * t
	case t < 2/2.75:
		t -= 1.5 / 2.75
		return 7.5625*t*t + 0.75
	case t < 2.5/2.75:
		t -= 2.25 / 2.75
		return 7.5625*t*t + 0.9375
	default:
		t -= 2.625 / 2.75
		return 7.5625*t*t + 0.984375
	}
}
func easeInOutBounce(t float64) float64 {
	if t < 0.5 {
		return easeInBounce(t*2) * 0.5
	}
	return easeOutBounce(t*2-1)*0.5 + 0.5
}
