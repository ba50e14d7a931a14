package engine

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/circlelayout/pkg/errors"
	"github.com/go-drift/circlelayout/pkg/gestures"
	"github.com/go-drift/circlelayout/pkg/graphics"
	"github.com/go-drift/circlelayout/pkg/layout"
)

// testBox fills its size with a color and records pointer events.
type testBox struct {
	layout.RenderBoxBase
	color    graphics.Color
	child    *testBox
	repaints int // paint requests to make from inside Paint
	paints   int
	layouts  int
	panicOn  string
	events   []gestures.PointerEvent
	accept   bool
}

func newTestBox(c graphics.Color) *testBox {
	b := &testBox{color: c, accept: true}
	b.SetSelf(b)
	return b
}

func (b *testBox) PerformLayout() {
	b.layouts++
	b.SetSize(b.Constraints().Biggest())
	if b.child != nil {
		b.child.Layout(layout.Tight(graphics.Size{Width: 10, Height: 10}), false)
		b.child.SetParentData(&layout.BoxParentData{})
	}
}

func (b *testBox) Paint(ctx *layout.PaintContext) {
	if b.panicOn == "paint" {
		panic("paint exploded")
	}
	b.paints++
	size := b.Size()
	ctx.Canvas.DrawRect(graphics.RectFromLTWH(0, 0, size.Width, size.Height), graphics.FillPaint(b.color))
	if b.repaints > 0 {
		b.repaints--
		b.MarkNeedsPaint()
	}
}

func (b *testBox) VisitChildren(visitor func(layout.RenderObject)) {
	if b.child != nil {
		visitor(b.child)
	}
}

func (b *testBox) HandlePointer(event gestures.PointerEvent) bool {
	if b.panicOn == "pointer" {
		panic("pointer exploded")
	}
	b.events = append(b.events, event)
	return b.accept
}

// recordingHandler collects reported errors and panics.
type recordingHandler struct {
	errs   []*errors.Error
	panics []*errors.PanicError
}

func (h *recordingHandler) HandleError(err *errors.Error)       { h.errs = append(h.errs, err) }
func (h *recordingHandler) HandlePanic(err *errors.PanicError) { h.panics = append(h.panics, err) }

func installHandler(t *testing.T) *recordingHandler {
	t.Helper()
	h := &recordingHandler{}
	prev := errors.SetHandler(h)
	t.Cleanup(func() { errors.SetHandler(prev) })
	return h
}

var testSize = graphics.Size{Width: 40, Height: 30}

func newRGBA(w, h int) *image.RGBA {
	return image.NewRGBA(image.Rect(0, 0, w, h))
}

func TestStepFrame_LaysOutAndPaints(t *testing.T) {
	root := newTestBox(graphics.RGB(255, 0, 0))
	e := New(root, Options{Size: testSize, Background: graphics.RGB(0, 0, 255)})

	require.True(t, e.NeedsFrame())
	snap, err := e.StepFrame()
	require.NoError(t, err)
	assert.True(t, snap.LaidOut)
	assert.True(t, snap.Painted)
	assert.Equal(t, testSize, root.Size())
	assert.Equal(t, 1, root.paints)

	surface := e.Surface()
	require.NotNil(t, surface)
	assert.Equal(t, 40, surface.Bounds().Dx())
	assert.Equal(t, color.RGBA{R: 255, A: 255}, surface.RGBAAt(20, 15))

	assert.False(t, e.NeedsFrame())
	snap, err = e.StepFrame()
	require.NoError(t, err)
	assert.False(t, snap.LaidOut)
	assert.False(t, snap.Painted)
	assert.Equal(t, 1, root.paints)
}

func TestStepFrame_FrameIDsIncrease(t *testing.T) {
	e := New(newTestBox(0), Options{Size: testSize})
	first, _ := e.StepFrame()
	second, _ := e.StepFrame()
	assert.Less(t, first.FrameID, second.FrameID)
}

func TestStepFrame_PaintRequestedDuringPaint(t *testing.T) {
	root := newTestBox(graphics.RGB(0, 255, 0))
	root.repaints = 2
	e := New(root, Options{Size: testSize})

	frames, err := e.PumpFrames(10)
	require.NoError(t, err)
	assert.Equal(t, 3, frames)
	assert.Equal(t, 3, root.paints)
	assert.False(t, e.NeedsFrame())
}

func TestSetSize_RelayoutsRoot(t *testing.T) {
	root := newTestBox(0)
	e := New(root, Options{Size: testSize})
	_, err := e.StepFrame()
	require.NoError(t, err)

	e.SetSize(graphics.Size{Width: 64, Height: 48})
	assert.True(t, e.NeedsFrame())
	snap, err := e.StepFrame()
	require.NoError(t, err)
	assert.True(t, snap.LaidOut)
	assert.Equal(t, graphics.Size{Width: 64, Height: 48}, root.Size())
	assert.Equal(t, 64, e.Surface().Bounds().Dx())
	assert.Equal(t, 2, root.layouts)
}

func TestSetSize_ZeroReleasesSurface(t *testing.T) {
	e := New(newTestBox(0), Options{Size: testSize})
	e.SetSize(graphics.Size{})
	assert.Nil(t, e.Surface())
	snap, err := e.StepFrame()
	require.NoError(t, err)
	assert.False(t, snap.Painted)
}

func TestDispatch_RunsOnNextFrame(t *testing.T) {
	e := New(newTestBox(0), Options{Size: testSize})
	_, _ = e.StepFrame()

	ran := 0
	e.Dispatch(func() { ran++ })
	assert.Equal(t, 0, ran)
	assert.True(t, e.NeedsFrame())

	_, _ = e.StepFrame()
	assert.Equal(t, 1, ran)
	_, _ = e.StepFrame()
	assert.Equal(t, 1, ran)
}

func TestRequestFrame(t *testing.T) {
	e := New(newTestBox(0), Options{Size: testSize})
	_, _ = e.StepFrame()
	assert.False(t, e.NeedsFrame())
	e.RequestFrame()
	assert.True(t, e.NeedsFrame())
	_, _ = e.StepFrame()
	assert.False(t, e.NeedsFrame())
}

func TestStepFrame_RecoversPaintPanic(t *testing.T) {
	h := installHandler(t)
	root := newTestBox(0)
	root.panicOn = "paint"
	e := New(root, Options{Size: testSize})

	_, err := e.StepFrame()
	require.Error(t, err)
	assert.Equal(t, errors.KindPanic, errors.KindOf(err))
	require.Len(t, h.panics, 1)
	assert.Equal(t, "engine.StepFrame", h.panics[0].Op)

	root.panicOn = ""
	assert.True(t, e.NeedsFrame())
	snap, err := e.StepFrame()
	require.NoError(t, err)
	assert.True(t, snap.Painted)
}

func TestRenderFrame_PaintsIntoCanvas(t *testing.T) {
	root := newTestBox(graphics.RGB(10, 20, 30))
	e := New(root, Options{Size: testSize})
	_, err := e.StepFrame()
	require.NoError(t, err)

	canvas := graphics.NewRasterCanvas(newRGBA(40, 30))
	require.NoError(t, e.RenderFrame(canvas))
	assert.Equal(t, color.RGBA{R: 10, G: 20, B: 30, A: 255}, canvas.Image().RGBAAt(1, 1))
}

func TestRenderFrame_NoRoot(t *testing.T) {
	e := New(nil, Options{Size: testSize})
	err := e.RenderFrame(graphics.NewRasterCanvas(newRGBA(4, 4)))
	require.Error(t, err)
	assert.Equal(t, errors.KindPaint, errors.KindOf(err))
	assert.False(t, e.NeedsFrame())
}

func TestHandlePointer_GestureStaysWithDownTarget(t *testing.T) {
	root := newTestBox(0)
	e := New(root, Options{Size: testSize})
	_, _ = e.StepFrame()

	assert.True(t, e.HandlePointer(gestures.PointerEvent{PointerID: 1, Position: graphics.Offset{X: 5, Y: 5}, Phase: gestures.PointerPhaseDown}))
	// Moves outside the root still reach the handler found on down.
	assert.True(t, e.HandlePointer(gestures.PointerEvent{PointerID: 1, Position: graphics.Offset{X: 50, Y: 8}, Phase: gestures.PointerPhaseMove}))
	assert.True(t, e.HandlePointer(gestures.PointerEvent{PointerID: 1, Position: graphics.Offset{X: 52, Y: 8}, Phase: gestures.PointerPhaseUp}))

	require.Len(t, root.events, 3)
	assert.Equal(t, graphics.Offset{X: 45, Y: 3}, root.events[1].Delta)
	assert.Equal(t, graphics.Offset{X: 2, Y: 0}, root.events[2].Delta)

	// The gesture ended, so a stray move has no target.
	assert.False(t, e.HandlePointer(gestures.PointerEvent{PointerID: 1, Position: graphics.Offset{X: 5, Y: 5}, Phase: gestures.PointerPhaseMove}))
	assert.Len(t, root.events, 3)
}

func TestHandlePointer_MissOutsideRoot(t *testing.T) {
	root := newTestBox(0)
	e := New(root, Options{Size: testSize})
	_, _ = e.StepFrame()

	assert.False(t, e.HandlePointer(gestures.PointerEvent{PointerID: 2, Position: graphics.Offset{X: 100, Y: 5}, Phase: gestures.PointerPhaseDown}))
	assert.Empty(t, root.events)
}

func TestHandlePointer_RejectedEvent(t *testing.T) {
	root := newTestBox(0)
	root.accept = false
	e := New(root, Options{Size: testSize})
	_, _ = e.StepFrame()

	assert.False(t, e.HandlePointer(gestures.PointerEvent{PointerID: 3, Position: graphics.Offset{X: 1, Y: 1}, Phase: gestures.PointerPhaseDown}))
	assert.Len(t, root.events, 1)
}

func TestHandlePointer_RecoversPanic(t *testing.T) {
	h := installHandler(t)
	root := newTestBox(0)
	root.panicOn = "pointer"
	e := New(root, Options{Size: testSize})
	_, _ = e.StepFrame()

	assert.False(t, e.HandlePointer(gestures.PointerEvent{PointerID: 4, Position: graphics.Offset{X: 1, Y: 1}, Phase: gestures.PointerPhaseDown}))
	require.Len(t, h.panics, 1)
	assert.Equal(t, "engine.HandlePointer", h.panics[0].Op)
	assert.True(t, e.NeedsFrame())
}

func TestTrace_RecordsSamples(t *testing.T) {
	root := newTestBox(0)
	root.child = newTestBox(0)
	layout.SetParentOnChild(root.child, root)
	e := New(root, Options{Size: testSize, Trace: true})

	_, err := e.StepFrame()
	require.NoError(t, err)
	_, err = e.StepFrame()
	require.NoError(t, err)

	timeline := e.Trace().Snapshot()
	require.Len(t, timeline.Samples, 2)
	assert.Equal(t, 2, timeline.Samples[0].Counts.RenderNodeCount)
	assert.Equal(t, 1, timeline.Samples[0].Counts.DirtyPaint)
	assert.Equal(t, 0, timeline.Samples[1].Counts.DirtyPaint)
}

func TestTrace_DisabledByDefault(t *testing.T) {
	e := New(newTestBox(0), Options{Size: testSize})
	assert.Nil(t, e.Trace())
}
