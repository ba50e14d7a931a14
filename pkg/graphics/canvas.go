package graphics

import (
	"image"

	"golang.org/x/image/font"
)

// TextStyle describes how DrawText renders a string.
type TextStyle struct {
	Face  font.Face
	Color Color
}

// Canvas records or renders drawing commands.
//
// Coordinates are in pixels with the origin at the top-left and y growing
// downwards. Angles are in degrees, clockwise from the positive x axis.
type Canvas interface {
	// Save pushes the current transform and clip state.
	Save()

	// Restore pops the most recent transform and clip state.
	Restore()

	// Translate moves the origin by the given offset.
	Translate(dx, dy float64)

	// ClipRect restricts future drawing to the given rectangle, intersected
	// with the current clip.
	ClipRect(rect Rect)

	// Clear replaces every pixel inside the clip with color, ignoring blending.
	Clear(color Color)

	// DrawRect draws a rectangle with the provided paint.
	DrawRect(rect Rect, paint Paint)

	// DrawCircle draws a circle with the provided paint.
	DrawCircle(center Offset, radius float64, paint Paint)

	// DrawLine draws a line segment with the provided paint.
	DrawLine(start, end Offset, paint Paint)

	// DrawArc draws the arc of the oval inscribed in oval. With useCenter the
	// arc is closed through the center, producing a wedge.
	DrawArc(oval Rect, startDegrees, sweepDegrees float64, useCenter bool, paint Paint)

	// DrawPath draws a path with the provided paint.
	DrawPath(path *Path, paint Paint)

	// DrawImage draws an image with its top-left corner at position, composited
	// with paint.BlendMode.
	DrawImage(img image.Image, position Offset, paint Paint)

	// DrawImageRect scales the srcRect region of img into dstRect.
	// A zero srcRect selects the whole image.
	DrawImageRect(img image.Image, srcRect, dstRect Rect)

	// DrawText draws a single line of text with its baseline starting at origin.
	DrawText(text string, origin Offset, style TextStyle)

	// Size returns the size of the canvas in pixels.
	Size() Size
}
