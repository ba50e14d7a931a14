package graphics

import "fmt"

// PaintStyle describes how shapes are filled or stroked.
type PaintStyle int

const (
	// PaintStyleFill fills the shape interior.
	PaintStyleFill PaintStyle = iota

	// PaintStyleStroke draws only the outline.
	PaintStyleStroke

	// PaintStyleFillAndStroke fills and then strokes the outline.
	PaintStyleFillAndStroke
)

// String returns a human-readable representation of the paint style.
func (s PaintStyle) String() string {
	switch s {
	case PaintStyleFill:
		return "fill"
	case PaintStyleStroke:
		return "stroke"
	case PaintStyleFillAndStroke:
		return "fill_and_stroke"
	default:
		return fmt.Sprintf("PaintStyle(%d)", int(s))
	}
}

// StrokeCap describes how stroke endpoints are drawn.
type StrokeCap int

const (
	CapButt   StrokeCap = iota // Flat edge at endpoint (default)
	CapRound                   // Semicircle at endpoint
	CapSquare                  // Square extending past endpoint
)

// String returns a human-readable representation of the stroke cap.
func (c StrokeCap) String() string {
	switch c {
	case CapButt:
		return "butt"
	case CapRound:
		return "round"
	case CapSquare:
		return "square"
	default:
		return fmt.Sprintf("StrokeCap(%d)", int(c))
	}
}

// StrokeJoin describes how stroke corners are drawn.
type StrokeJoin int

const (
	JoinMiter StrokeJoin = iota // Sharp corner (default)
	JoinRound                   // Rounded corner
	JoinBevel                   // Flattened corner
)

// String returns a human-readable representation of the stroke join.
func (j StrokeJoin) String() string {
	switch j {
	case JoinMiter:
		return "miter"
	case JoinRound:
		return "round"
	case JoinBevel:
		return "bevel"
	default:
		return fmt.Sprintf("StrokeJoin(%d)", int(j))
	}
}

// BlendMode controls how source and destination colors are composited.
// The Porter-Duff subset keeps Skia's SkBlendMode ordering.
type BlendMode int

const (
	BlendModeClear   BlendMode = iota // clear
	BlendModeSrc                      // src
	BlendModeDst                      // dst
	BlendModeSrcOver                  // src_over
	BlendModeDstOver                  // dst_over
	BlendModeSrcIn                    // src_in
	BlendModeDstIn                    // dst_in
	BlendModeSrcOut                   // src_out
	BlendModeDstOut                   // dst_out
	BlendModeSrcATop                  // src_atop
	BlendModeDstATop                  // dst_atop
	BlendModeXor                      // xor
)

var _BlendMode_names = []string{
	"clear", "src", "dst", "src_over", "dst_over",
	"src_in", "dst_in", "src_out", "dst_out",
	"src_atop", "dst_atop", "xor",
}

// String returns a human-readable representation of the blend mode.
func (b BlendMode) String() string {
	if int(b) >= 0 && int(b) < len(_BlendMode_names) {
		return _BlendMode_names[b]
	}
	return fmt.Sprintf("BlendMode(%d)", int(b))
}

// factors returns the Porter-Duff source and destination coefficients for
// premultiplied alpha sa (source) and da (destination), both in [0,1].
func (b BlendMode) factors(sa, da float64) (fs, fd float64) {
	switch b {
	case BlendModeClear:
		return 0, 0
	case BlendModeSrc:
		return 1, 0
	case BlendModeDst:
		return 0, 1
	case BlendModeDstOver:
		return 1 - da, 1
	case BlendModeSrcIn:
		return da, 0
	case BlendModeDstIn:
		return 0, sa
	case BlendModeSrcOut:
		return 1 - da, 0
	case BlendModeDstOut:
		return 0, 1 - sa
	case BlendModeSrcATop:
		return da, 1 - sa
	case BlendModeDstATop:
		return 1 - da, sa
	case BlendModeXor:
		return 1 - da, 1 - sa
	default:
		return 1, 1 - sa
	}
}

// Paint describes how to draw a shape on the canvas.
//
// A zero-value Paint is a transparent fill with BlendModeClear.
// Use DefaultPaint for a basic opaque white fill.
type Paint struct {
	Color       Color
	Style       PaintStyle // Fill, stroke, or both
	StrokeWidth float64    // Width of stroke in pixels

	// Stroke styling (only applies when Style includes stroke)
	StrokeCap  StrokeCap  // How endpoints are drawn; 0 = CapButt
	StrokeJoin StrokeJoin // How corners are drawn; 0 = JoinMiter

	// BlendMode is the compositing rule used when this paint touches pixels.
	BlendMode BlendMode
}

// DefaultPaint returns a basic opaque white fill paint with standard compositing.
func DefaultPaint() Paint {
	return Paint{
		Color:       ColorWhite,
		Style:       PaintStyleFill,
		StrokeWidth: 1,
		StrokeCap:   CapButt,
		StrokeJoin:  JoinMiter,
		BlendMode:   BlendModeSrcOver,
	}
}

// FillPaint returns a SrcOver fill of the given color.
func FillPaint(c Color) Paint {
	p := DefaultPaint()
	p.Color = c
	return p
}

// StrokePaint returns a SrcOver stroke of the given color and width.
func StrokePaint(c Color, width float64) Paint {
	p := DefaultPaint()
	p.Color = c
	p.Style = PaintStyleStroke
	p.StrokeWidth = width
	return p
}
