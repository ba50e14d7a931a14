package circlelayout

import (
	"image"
	"math"

	"github.com/go-drift/circlelayout/pkg/graphics"
)

// renderTargets are the offscreen buffers used to mask children into
// sectors. src receives a child's pixels, dst the sector stencil, and cache
// the composite of all sectors. They are sized to the container and only
// reallocated when that size changes.
type renderTargets struct {
	width, height int

	src, dst, cache                   *image.RGBA
	srcCanvas, dstCanvas, cacheCanvas *graphics.RasterCanvas

	// cacheValid reports whether cache holds a complete composite.
	cacheValid bool
}

// ensure sizes the targets for size. It reports whether they were
// reallocated. A zero-area size releases them.
func (t *renderTargets) ensure(size graphics.Size) bool {
	w := int(math.Ceil(size.Width))
	h := int(math.Ceil(size.Height))
	if w <= 0 || h <= 0 {
		changed := t.src != nil
		*t = renderTargets{}
		return changed
	}
	if t.src != nil && t.width == w && t.height == h {
		return false
	}

	bounds := image.Rect(0, 0, w, h)
	t.width, t.height = w, h
	t.src = image.NewRGBA(bounds)
	t.dst = image.NewRGBA(bounds)
	t.cache = image.NewRGBA(bounds)
	t.srcCanvas = graphics.NewRasterCanvas(t.src)
	t.dstCanvas = graphics.NewRasterCanvas(t.dst)
	t.cacheCanvas = graphics.NewRasterCanvas(t.cache)
	t.clear()
	return true
}

// ready reports whether the targets are allocated.
func (t *renderTargets) ready() bool {
	return t.src != nil && t.dst != nil && t.cache != nil
}

// clear makes every buffer fully transparent and drops the cache.
func (t *renderTargets) clear() {
	t.srcCanvas.Clear(graphics.ColorTransparent)
	t.dstCanvas.Clear(graphics.ColorTransparent)
	t.cacheCanvas.Clear(graphics.ColorTransparent)
	t.cacheValid = false
}
