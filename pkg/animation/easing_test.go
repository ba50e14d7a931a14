package animation

import (
	"math"
	"testing"
)

func TestEasingEndpoints(t *testing.T) {
	for i := range easingFuncs {
		opt := EasingOption(i)
		f := opt.Func()
		if got := f(0); math.Abs(got) > 1e-9 {
			t.Errorf("%v(0) = %v, want 0", opt, got)
		}
		if got := f(1); math.Abs(got-1) > 1e-9 {
			t.Errorf("%v(1) = %v, want 1", opt, got)
		}
	}
}

func TestEasingNamesRoundTrip(t *testing.T) {
	if len(easingNames) != len(easingFuncs) {
		t.Fatalf("names %d != funcs %d", len(easingNames), len(easingFuncs))
	}
	for i, name := range easingNames {
		opt, err := ParseEasingOption(name)
		if err != nil {
			t.Fatalf("ParseEasingOption(%q): %v", name, err)
		}
		if int(opt) != i {
			t.Errorf("ParseEasingOption(%q) = %d, want %d", name, opt, i)
		}
	}
}

func TestParseEasingOptionForms(t *testing.T) {
	tests := []struct {
		in   string
		want EasingOption
	}{
		{"EaseOutBounce", EaseOutBounce},
		{"ease_in_sine", EaseInSine},
		{"ease in out back", EaseInOutBack},
		{"LINEAR", EaseLinear},
	}
	for _, tt := range tests {
		got, err := ParseEasingOption(tt.in)
		if err != nil || got != tt.want {
			t.Errorf("ParseEasingOption(%q) = %v, %v; want %v", tt.in, got, err, tt.want)
		}
	}
	if _, err := ParseEasingOption("wobble"); err == nil {
		t.Error("expected error for unknown easing")
	}
}

func TestEasingOptionOutOfRange(t *testing.T) {
	opt := EasingOption(99)
	if opt.String() != "EasingOption(99)" {
		t.Errorf("String = %q", opt.String())
	}
	if opt.Func()(0.3) != 0.3 {
		t.Error("unknown option should be linear")
	}
}

func TestCubicBezierMonotonic(t *testing.T) {
	f := CubicBezier(0.4, 0.0, 0.2, 1.0)
	prev := 0.0
	for i := 1; i <= 100; i++ {
		v := f(float64(i) / 100)
		if v < prev-1e-9 {
			t.Fatalf("curve decreased at %d: %v < %v", i, v, prev)
		}
		prev = v
	}
}
