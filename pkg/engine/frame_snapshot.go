package engine

import "github.com/go-drift/circlelayout/pkg/graphics"

// FrameSnapshot summarizes what a single StepFrame call did.
type FrameSnapshot struct {
	FrameID uint64        `json:"frameId"`
	Size    graphics.Size `json:"size"`
	// LaidOut is set when layout was pending at the start of the frame.
	LaidOut bool `json:"laidOut"`
	// Painted is set when the surface was repainted.
	Painted bool `json:"painted"`
}
