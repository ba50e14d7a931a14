// Package engine drives frames for a render tree rooted at a single box.
//
// An Engine owns the pipeline owner and an offscreen RGBA surface. Each
// frame drains dispatched callbacks, steps animation tickers, flushes layout
// with tight constraints at the surface size, and repaints the tree when any
// render object asked for paint. Pointer events are hit tested against the
// root and delivered to the PointerHandlers found on pointer down.
package engine

import (
	"image"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"

	"github.com/go-drift/circlelayout/pkg/animation"
	"github.com/go-drift/circlelayout/pkg/errors"
	"github.com/go-drift/circlelayout/pkg/gestures"
	"github.com/go-drift/circlelayout/pkg/graphics"
	"github.com/go-drift/circlelayout/pkg/layout"
)

// Options configures an Engine.
type Options struct {
	// Size is the logical surface size the root is laid out at.
	Size graphics.Size
	// Background clears the surface before every painted frame.
	Background graphics.Color
	// Logger receives frame diagnostics. Nil uses log.Default().
	Logger *log.Logger
	// Trace enables per-frame timing samples.
	Trace bool
}

// Engine runs the layout and paint pipeline for one root render box.
type Engine struct {
	frameLock sync.Mutex

	root       layout.RenderBox
	pipeline   *layout.PipelineOwner
	size       graphics.Size
	background graphics.Color
	logger     *log.Logger

	surface *image.RGBA
	canvas  *graphics.RasterCanvas

	dispatchMu    sync.Mutex
	dispatchQueue []func()

	pendingFrameRequest atomic.Bool
	frameCounter        atomic.Uint64

	pointerHandlers  map[int64][]layout.PointerHandler
	pointerPositions map[int64]graphics.Offset

	trace *FrameTraceBuffer
}

// New attaches root to a fresh pipeline owner and schedules its first
// layout and paint.
func New(root layout.RenderBox, opts Options) *Engine {
	e := &Engine{
		root:             root,
		pipeline:         &layout.PipelineOwner{},
		background:       opts.Background,
		logger:           opts.Logger,
		pointerHandlers:  make(map[int64][]layout.PointerHandler),
		pointerPositions: make(map[int64]graphics.Offset),
	}
	if e.logger == nil {
		e.logger = log.Default()
	}
	if opts.Trace {
		e.trace = NewFrameTraceBuffer(0, 0)
	}
	e.resize(opts.Size)
	if root != nil {
		root.SetOwner(e.pipeline)
		e.pipeline.ScheduleLayout(root)
		e.pipeline.SchedulePaint(root)
	}
	return e
}

// Root returns the root render box.
func (e *Engine) Root() layout.RenderBox {
	return e.root
}

// Size returns the current surface size.
func (e *Engine) Size() graphics.Size {
	e.frameLock.Lock()
	defer e.frameLock.Unlock()
	return e.size
}

// SetSize resizes the surface. The root is laid out again at the new size
// on the next frame.
func (e *Engine) SetSize(size graphics.Size) {
	e.frameLock.Lock()
	defer e.frameLock.Unlock()
	if size == e.size {
		return
	}
	e.resize(size)
	if e.root != nil {
		e.root.MarkNeedsLayout()
		e.pipeline.ScheduleLayout(e.root)
	}
}

func (e *Engine) resize(size graphics.Size) {
	e.size = size
	w, h := int(size.Width+0.5), int(size.Height+0.5)
	if w <= 0 || h <= 0 {
		e.surface = nil
		e.canvas = nil
		return
	}
	e.surface = image.NewRGBA(image.Rect(0, 0, w, h))
	e.canvas = graphics.NewRasterCanvas(e.surface)
}

// Surface returns the image the last frame was painted into, or nil when
// the surface has no area.
func (e *Engine) Surface() *image.RGBA {
	e.frameLock.Lock()
	defer e.frameLock.Unlock()
	return e.surface
}

// Trace returns the frame trace buffer, or nil when tracing is disabled.
func (e *Engine) Trace() *FrameTraceBuffer {
	return e.trace
}

// RequestFrame asks for another frame even if nothing is dirty.
func (e *Engine) RequestFrame() {
	e.pendingFrameRequest.Store(true)
}

// Dispatch schedules a callback to run at the start of the next frame and
// is safe to call from any goroutine.
func (e *Engine) Dispatch(callback func()) {
	e.dispatchMu.Lock()
	e.dispatchQueue = append(e.dispatchQueue, callback)
	e.dispatchMu.Unlock()
	e.pendingFrameRequest.Store(true)
}

func (e *Engine) drainDispatchQueue() []func() {
	e.dispatchMu.Lock()
	defer e.dispatchMu.Unlock()
	callbacks := e.dispatchQueue
	e.dispatchQueue = nil
	return callbacks
}

// NeedsFrame reports whether a frame would do any work.
//
// If another goroutine holds the frame lock a frame is in progress, so it
// reports true rather than blocking.
func (e *Engine) NeedsFrame() bool {
	if !e.frameLock.TryLock() {
		return true
	}
	defer e.frameLock.Unlock()
	return e.needsFrameLocked()
}

func (e *Engine) needsFrameLocked() bool {
	if e.root == nil {
		return false
	}
	if e.pendingFrameRequest.Load() {
		return true
	}
	if animation.HasActiveTickers() {
		return true
	}
	return e.pipeline.NeedsLayout() || e.pipeline.NeedsPaint()
}

// StepFrame runs one frame: dispatch, animate, layout and paint.
//
// A panic anywhere in the frame is recovered, reported through the errors
// package and returned as a KindPanic error. The next frame repaints the
// whole tree.
func (e *Engine) StepFrame() (snapshot *FrameSnapshot, err error) {
	e.frameLock.Lock()
	defer e.frameLock.Unlock()

	snapshot = &FrameSnapshot{FrameID: e.frameCounter.Add(1), Size: e.size}
	defer errors.RecoverWithCallback("engine.StepFrame", func(r any) {
		err = errors.Errorf("engine.StepFrame", errors.KindPanic, "frame %d: %v", snapshot.FrameID, r)
		e.pendingFrameRequest.Store(true)
		if e.root != nil {
			e.root.MarkNeedsPaint()
		}
	})

	frameStart := time.Now()
	var sample FrameSample
	sample.Timestamp = frameStart.UnixMilli()
	phaseStart := frameStart

	e.pendingFrameRequest.Store(false)
	for _, callback := range e.drainDispatchQueue() {
		callback()
	}
	sample.Phases.DispatchMs = durationToMillis(time.Since(phaseStart))

	phaseStart = time.Now()
	animation.StepTickers()
	sample.Phases.AnimateMs = durationToMillis(time.Since(phaseStart))

	if e.root == nil {
		return snapshot, nil
	}

	phaseStart = time.Now()
	snapshot.LaidOut = e.pipeline.NeedsLayout()
	e.pipeline.FlushLayoutForRoot(e.root, layout.Tight(e.size))
	sample.Phases.LayoutMs = durationToMillis(time.Since(phaseStart))

	phaseStart = time.Now()
	dirty := e.pipeline.FlushPaint()
	sample.Counts.DirtyPaint = len(dirty)
	if len(dirty) > 0 && e.canvas != nil {
		e.paintLocked()
		snapshot.Painted = true
	}
	sample.Phases.PaintMs = durationToMillis(time.Since(phaseStart))

	if e.trace != nil {
		sample.Counts.RenderNodeCount = countRenderTree(e.root)
		frameDuration := time.Since(frameStart)
		sample.FrameMs = durationToMillis(frameDuration)
		e.trace.Add(sample, frameDuration)
	}
	if snapshot.Painted {
		e.logger.Debug("frame painted", "frame", snapshot.FrameID, "dirty", len(dirty))
	}
	return snapshot, nil
}

// paintLocked clears the root's paint flag before painting so that paint
// requests made while painting schedule the next frame.
func (e *Engine) paintLocked() {
	if cp, ok := e.root.(interface{ ClearNeedsPaint() }); ok {
		cp.ClearNeedsPaint()
	}
	e.canvas.Save()
	e.canvas.Clear(e.background)
	e.root.Paint(&layout.PaintContext{Canvas: e.canvas})
	e.canvas.Restore()
}

// RenderFrame paints the root into canvas without touching the pipeline.
func (e *Engine) RenderFrame(canvas graphics.Canvas) error {
	e.frameLock.Lock()
	defer e.frameLock.Unlock()

	if e.root == nil {
		return errors.Errorf("engine.RenderFrame", errors.KindPaint, "no root render object")
	}
	canvas.Save()
	canvas.Clear(e.background)
	e.root.Paint(&layout.PaintContext{Canvas: canvas})
	canvas.Restore()
	return nil
}

// PumpFrames steps frames until nothing is pending or limit frames ran.
// It returns the number of frames stepped.
func (e *Engine) PumpFrames(limit int) (int, error) {
	n := 0
	for n < limit && e.NeedsFrame() {
		if _, err := e.StepFrame(); err != nil {
			return n + 1, err
		}
		n++
	}
	return n, nil
}

// HandlePointer delivers an event in surface coordinates.
//
// A down event hit tests the root and remembers the PointerHandlers found
// for that pointer; later events of the gesture go to the same handlers.
// It reports whether any handler consumed the event.
func (e *Engine) HandlePointer(event gestures.PointerEvent) (handled bool) {
	defer errors.RecoverWithCallback("engine.HandlePointer", func(any) {
		handled = false
		e.pendingFrameRequest.Store(true)
	})

	event, handlers := e.resolveHandlers(event)
	for _, handler := range handlers {
		if handler.HandlePointer(event) {
			handled = true
		}
	}
	return handled
}

// resolveHandlers fills in the event delta and returns the handlers the
// event goes to.
func (e *Engine) resolveHandlers(event gestures.PointerEvent) (gestures.PointerEvent, []layout.PointerHandler) {
	e.frameLock.Lock()
	defer e.frameLock.Unlock()

	if e.root == nil {
		return event, nil
	}
	pointerID := event.PointerID
	if event.Phase != gestures.PointerPhaseDown {
		if last, ok := e.pointerPositions[pointerID]; ok {
			event.Delta = event.Position.Sub(last)
		}
	}
	e.pointerPositions[pointerID] = event.Position

	var handlers []layout.PointerHandler
	if event.Phase == gestures.PointerPhaseDown {
		handlers = HitTest(e.root, event.Position)
		if len(handlers) > 0 {
			e.pointerHandlers[pointerID] = handlers
		}
	} else {
		handlers = e.pointerHandlers[pointerID]
	}
	if event.Phase.Ends() {
		delete(e.pointerHandlers, pointerID)
		delete(e.pointerPositions, pointerID)
	}
	return event, handlers
}
