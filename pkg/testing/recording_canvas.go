package testing

import (
	"fmt"
	"image"
	"math"

	"github.com/go-drift/circlelayout/pkg/graphics"
)

// DisplayOp represents a serialized canvas drawing operation.
type DisplayOp struct {
	Op     string         `json:"op"`
	Params map[string]any `json:"params,omitempty"`
}

// RecordingCanvas implements graphics.Canvas and records every call as a
// DisplayOp instead of drawing it.
type RecordingCanvas struct {
	ops  []DisplayOp
	size graphics.Size
}

// NewRecordingCanvas returns an empty recording canvas reporting size.
func NewRecordingCanvas(size graphics.Size) *RecordingCanvas {
	return &RecordingCanvas{size: size}
}

// Ops returns the recorded operations in call order.
func (c *RecordingCanvas) Ops() []DisplayOp {
	return c.ops
}

// OpNames returns just the operation names, handy for sequence assertions.
func (c *RecordingCanvas) OpNames() []string {
	names := make([]string, len(c.ops))
	for i, op := range c.ops {
		names[i] = op.Op
	}
	return names
}

// Reset drops all recorded operations.
func (c *RecordingCanvas) Reset() {
	c.ops = nil
}

func (c *RecordingCanvas) record(op string, params map[string]any) {
	c.ops = append(c.ops, DisplayOp{Op: op, Params: params})
}

func (c *RecordingCanvas) Save() {
	c.record("save", nil)
}

func (c *RecordingCanvas) Restore() {
	c.record("restore", nil)
}

func (c *RecordingCanvas) Translate(dx, dy float64) {
	c.record("translate", sortedMap("dx", round2(dx), "dy", round2(dy)))
}

func (c *RecordingCanvas) ClipRect(rect graphics.Rect) {
	c.record("clipRect", sortedMap("rect", serializeRect(rect)))
}

func (c *RecordingCanvas) Clear(color graphics.Color) {
	c.record("clear", sortedMap("color", serializeColor(color)))
}

func (c *RecordingCanvas) DrawRect(rect graphics.Rect, paint graphics.Paint) {
	c.record("drawRect", withPaint(sortedMap("rect", serializeRect(rect)), paint))
}

func (c *RecordingCanvas) DrawCircle(center graphics.Offset, radius float64, paint graphics.Paint) {
	c.record("drawCircle", withPaint(sortedMap(
		"cx", round2(center.X),
		"cy", round2(center.Y),
		"radius", round2(radius),
	), paint))
}

func (c *RecordingCanvas) DrawLine(start, end graphics.Offset, paint graphics.Paint) {
	c.record("drawLine", withPaint(sortedMap(
		"x1", round2(start.X), "y1", round2(start.Y),
		"x2", round2(end.X), "y2", round2(end.Y),
	), paint))
}

func (c *RecordingCanvas) DrawArc(oval graphics.Rect, startDegrees, sweepDegrees float64, useCenter bool, paint graphics.Paint) {
	c.record("drawArc", withPaint(sortedMap(
		"oval", serializeRect(oval),
		"start", round2(startDegrees),
		"sweep", round2(sweepDegrees),
		"useCenter", useCenter,
	), paint))
}

func (c *RecordingCanvas) DrawPath(_ *graphics.Path, paint graphics.Paint) {
	c.record("drawPath", withPaint(map[string]any{}, paint))
}

func (c *RecordingCanvas) DrawImage(img image.Image, position graphics.Offset, paint graphics.Paint) {
	b := img.Bounds()
	c.record("drawImage", sortedMap(
		"x", round2(position.X), "y", round2(position.Y),
		"width", b.Dx(), "height", b.Dy(),
		"blend", paint.BlendMode.String(),
	))
}

func (c *RecordingCanvas) DrawImageRect(_ image.Image, _, dstRect graphics.Rect) {
	c.record("drawImageRect", sortedMap("dst", serializeRect(dstRect)))
}

func (c *RecordingCanvas) DrawText(text string, origin graphics.Offset, style graphics.TextStyle) {
	c.record("drawText", sortedMap(
		"text", text,
		"x", round2(origin.X), "y", round2(origin.Y),
		"color", serializeColor(style.Color),
	))
}

func (c *RecordingCanvas) Size() graphics.Size {
	return c.size
}

// --- Serialization helpers ---

func withPaint(params map[string]any, paint graphics.Paint) map[string]any {
	params["color"] = serializeColor(paint.Color)
	params["style"] = paint.Style.String()
	params["blend"] = paint.BlendMode.String()
	if paint.Style != graphics.PaintStyleFill {
		params["strokeWidth"] = round2(paint.StrokeWidth)
	}
	return params
}

func serializeRect(r graphics.Rect) map[string]any {
	return sortedMap(
		"left", round2(r.Left),
		"top", round2(r.Top),
		"right", round2(r.Right),
		"bottom", round2(r.Bottom),
	)
}

func serializeColor(c graphics.Color) string {
	return fmt.Sprintf("0x%08X", uint32(c))
}

// round2 rounds a float64 to 2 decimal places.
func round2(f float64) float64 {
	return math.Round(f*100) / 100
}

// sortedMap creates a map from alternating key-value pairs. JSON encoding
// emits map keys sorted, so snapshots stay stable.
func sortedMap(kvs ...any) map[string]any {
	m := make(map[string]any, len(kvs)/2)
	for i := 0; i+1 < len(kvs); i += 2 {
		m[kvs[i].(string)] = kvs[i+1]
	}
	return m
}
