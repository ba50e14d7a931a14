package circlelayout

import (
	"image"

	"github.com/go-drift/circlelayout/pkg/graphics"
)

// Drawable paints itself into a rectangle.
type Drawable interface {
	Draw(canvas graphics.Canvas, bounds graphics.Rect)
}

// ColorDrawable fills its bounds with a flat color. As the inner circle it
// is drawn as a filled circle instead.
type ColorDrawable struct {
	Color graphics.Color
}

// Draw fills bounds.
func (d ColorDrawable) Draw(canvas graphics.Canvas, bounds graphics.Rect) {
	canvas.DrawRect(bounds, graphics.FillPaint(d.Color))
}

// ImageDrawable scales an image into its bounds.
type ImageDrawable struct {
	Image image.Image
}

// Draw scales the whole image into bounds.
func (d ImageDrawable) Draw(canvas graphics.Canvas, bounds graphics.Rect) {
	canvas.DrawImageRect(d.Image, graphics.Rect{}, bounds)
}

// Resources resolves drawable resource identifiers.
type Resources interface {
	Drawable(id int) (Drawable, bool)
}

// ResourceMap is an in-memory Resources.
type ResourceMap map[int]Drawable

// Drawable returns the drawable registered under id.
func (m ResourceMap) Drawable(id int) (Drawable, bool) {
	d, ok := m[id]
	return d, ok
}
