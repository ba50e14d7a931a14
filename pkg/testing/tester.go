package testing

import (
	"errors"
	"image"
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/go-drift/circlelayout/pkg/animation"
	"github.com/go-drift/circlelayout/pkg/engine"
	"github.com/go-drift/circlelayout/pkg/graphics"
	"github.com/go-drift/circlelayout/pkg/layout"
)

const (
	// DefaultTestWidth is the default width of the test surface.
	DefaultTestWidth = 400
	// DefaultTestHeight is the default height of the test surface.
	DefaultTestHeight = 400
)

// ErrSettleTimeout is returned when PumpAndSettle exceeds its timeout.
var ErrSettleTimeout = errors.New("PumpAndSettle timed out: render tree did not settle")

// RenderTester drives a render tree through a real engine.Engine with a
// fake clock, so layout, paint, pointer routing and animations run exactly
// as they do in production but deterministically.
type RenderTester struct {
	engine    *engine.Engine
	clock     *FakeClock
	prevClock animation.Clock
	size      graphics.Size
	logger    *log.Logger
	pointers  map[int64]graphics.Offset
	nextID    int64
}

// NewRenderTester creates a tester with the default surface size.
// Call Cleanup() when done, or use NewRenderTesterWithT() instead.
func NewRenderTester() *RenderTester {
	clk := NewFakeClock()
	t := &RenderTester{
		clock:    clk,
		size:     graphics.Size{Width: DefaultTestWidth, Height: DefaultTestHeight},
		logger:   log.New(io.Discard),
		pointers: make(map[int64]graphics.Offset),
	}
	t.prevClock = animation.SetClock(clk)
	return t
}

// NewRenderTesterWithT creates a tester that auto-cleans up via t.Cleanup().
// This is the recommended constructor for tests.
func NewRenderTesterWithT(t *testing.T) *RenderTester {
	tester := NewRenderTester()
	t.Cleanup(tester.Cleanup)
	return tester
}

// Cleanup restores the animation clock. Must be called if not using
// NewRenderTesterWithT.
func (t *RenderTester) Cleanup() {
	animation.SetClock(t.prevClock)
}

// SetSize sets the surface size. After PumpRoot it also resizes the
// engine, which relays the tree out on the next Pump.
func (t *RenderTester) SetSize(size graphics.Size) {
	t.size = size
	if t.engine != nil {
		t.engine.SetSize(size)
	}
}

// Size returns the surface size.
func (t *RenderTester) Size() graphics.Size {
	return t.size
}

// SetLogger replaces the engine logger. Must be called before PumpRoot.
func (t *RenderTester) SetLogger(logger *log.Logger) {
	t.logger = logger
}

// Clock returns the fake clock for advancing time in tests.
func (t *RenderTester) Clock() *FakeClock {
	return t.clock
}

// Engine returns the engine driving the current root, or nil before
// PumpRoot.
func (t *RenderTester) Engine() *engine.Engine {
	return t.engine
}

// PumpRoot installs root in a fresh engine and runs one full frame.
func (t *RenderTester) PumpRoot(root layout.RenderBox) error {
	t.engine = engine.New(root, engine.Options{Size: t.size, Logger: t.logger})
	t.pointers = make(map[int64]graphics.Offset)
	return t.Pump()
}

// Pump runs a single frame: dispatches, tickers, layout and paint.
func (t *RenderTester) Pump() error {
	if t.engine == nil {
		return errNoRoot
	}
	_, err := t.engine.StepFrame()
	return err
}

// PumpAndSettle runs frames until the engine is idle or the timeout is
// reached. Each frame advances the fake clock by frameDuration (16ms).
// Returns ErrSettleTimeout if the tree does not settle within timeout.
func (t *RenderTester) PumpAndSettle(timeout time.Duration) error {
	const frameDuration = 16 * time.Millisecond
	var elapsed time.Duration
	for elapsed < timeout {
		if err := t.Pump(); err != nil {
			return err
		}
		if !t.engine.NeedsFrame() {
			return nil
		}
		t.clock.Advance(frameDuration)
		elapsed += frameDuration
	}
	return ErrSettleTimeout
}

// Dispatch queues a callback for the next frame.
func (t *RenderTester) Dispatch(fn func()) {
	if t.engine != nil {
		t.engine.Dispatch(fn)
	}
}

// Root returns the root render box, or nil before PumpRoot.
func (t *RenderTester) Root() layout.RenderBox {
	if t.engine == nil {
		return nil
	}
	return t.engine.Root()
}

// Surface returns the pixels of the last painted frame.
func (t *RenderTester) Surface() *image.RGBA {
	if t.engine == nil {
		return nil
	}
	return t.engine.Surface()
}

// PixelAt returns the color of the last painted frame at (x, y).
func (t *RenderTester) PixelAt(x, y int) graphics.Color {
	surface := t.Surface()
	if surface == nil {
		return graphics.ColorTransparent
	}
	return graphics.ColorFrom(surface.At(x, y))
}

// Record paints the current tree into a RecordingCanvas without touching
// the engine surface.
func (t *RenderTester) Record() (*RecordingCanvas, error) {
	if t.engine == nil {
		return nil, errNoRoot
	}
	canvas := NewRecordingCanvas(t.size)
	if err := t.engine.RenderFrame(canvas); err != nil {
		return nil, err
	}
	return canvas, nil
}

// Find evaluates a finder against the current render tree.
func (t *RenderTester) Find(finder Finder) FinderResult {
	root := t.Root()
	if root == nil {
		return FinderResult{finder: finder}
	}
	return FinderResult{
		objects: finder.Evaluate(root),
		finder:  finder,
	}
}

var errNoRoot = errors.New("no root installed: call PumpRoot first")
