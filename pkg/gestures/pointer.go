// Package gestures defines the pointer events delivered to render objects.
package gestures

import (
	"fmt"

	"github.com/go-drift/circlelayout/pkg/graphics"
)

// PointerPhase is the stage of a pointer gesture.
type PointerPhase int

const (
	// PointerPhaseDown starts a gesture.
	PointerPhaseDown PointerPhase = iota
	// PointerPhaseMove reports movement while the pointer is down.
	PointerPhaseMove
	// PointerPhaseUp ends a gesture normally.
	PointerPhaseUp
	// PointerPhaseCancel aborts a gesture.
	PointerPhaseCancel
)

// String returns a human-readable representation of the phase.
func (p PointerPhase) String() string {
	switch p {
	case PointerPhaseDown:
		return "down"
	case PointerPhaseMove:
		return "move"
	case PointerPhaseUp:
		return "up"
	case PointerPhaseCancel:
		return "cancel"
	default:
		return fmt.Sprintf("PointerPhase(%d)", int(p))
	}
}

// Ends reports whether the phase terminates the gesture.
func (p PointerPhase) Ends() bool {
	return p == PointerPhaseUp || p == PointerPhaseCancel
}

// PointerEvent is a single pointer sample. Position is in the receiver's
// local coordinate space.
type PointerEvent struct {
	PointerID int64
	Position  graphics.Offset
	Delta     graphics.Offset
	Phase     PointerPhase
}

// Translated returns a copy with Position shifted by (dx, dy).
func (e PointerEvent) Translated(dx, dy float64) PointerEvent {
	e.Position = graphics.Offset{X: e.Position.X + dx, Y: e.Position.Y + dy}
	return e
}

// WithPhase returns a copy with the given phase.
func (e PointerEvent) WithPhase(phase PointerPhase) PointerEvent {
	e.Phase = phase
	return e
}

// WithPosition returns a copy located at position.
func (e PointerEvent) WithPosition(position graphics.Offset) PointerEvent {
	e.Position = position
	return e
}
