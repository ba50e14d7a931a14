package graphics

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// flattenTolerance is the maximum chord error, in pixels, when curves are
// converted to polygons.
const flattenTolerance = 0.2

type rasterState struct {
	dx, dy float64
	clip   image.Rectangle
}

// RasterCanvas is a software Canvas drawing into an *image.RGBA.
//
// Shapes are rasterised with golang.org/x/image/vector into a coverage mask
// and composited with the paint's blend mode. Only translation is supported
// as a transform.
type RasterCanvas struct {
	img   *image.RGBA
	state rasterState
	stack []rasterState
	ras   *vector.Rasterizer
	mask  *image.Alpha
}

// NewRasterCanvas wraps img. The canvas draws directly into its pixels.
func NewRasterCanvas(img *image.RGBA) *RasterCanvas {
	b := img.Bounds()
	return &RasterCanvas{
		img:   img,
		state: rasterState{clip: b},
		ras:   vector.NewRasterizer(b.Dx(), b.Dy()),
		mask:  image.NewAlpha(b),
	}
}

// Image returns the backing image.
func (c *RasterCanvas) Image() *image.RGBA {
	return c.img
}

// Save pushes the current transform and clip state.
func (c *RasterCanvas) Save() {
	c.stack = append(c.stack, c.state)
}

// Restore pops the most recent transform and clip state.
func (c *RasterCanvas) Restore() {
	if len(c.stack) == 0 {
		return
	}
	c.state = c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
}

// Translate moves the origin by the given offset.
func (c *RasterCanvas) Translate(dx, dy float64) {
	c.state.dx += dx
	c.state.dy += dy
}

// ClipRect intersects the clip with rect.
func (c *RasterCanvas) ClipRect(rect Rect) {
	r := rect.Translate(c.state.dx, c.state.dy)
	device := image.Rect(
		int(math.Floor(r.Left)), int(math.Floor(r.Top)),
		int(math.Ceil(r.Right)), int(math.Ceil(r.Bottom)),
	)
	c.state.clip = c.state.clip.Intersect(device)
}

// Clear replaces every pixel inside the clip with color.
func (c *RasterCanvas) Clear(col Color) {
	draw.Draw(c.img, c.state.clip, image.NewUniform(col.NRGBA()), image.Point{}, draw.Src)
}

// DrawRect draws a rectangle with the provided paint.
func (c *RasterCanvas) DrawRect(rect Rect, paint Paint) {
	path := NewPath()
	path.MoveTo(rect.Left, rect.Top)
	path.LineTo(rect.Right, rect.Top)
	path.LineTo(rect.Right, rect.Bottom)
	path.LineTo(rect.Left, rect.Bottom)
	path.Close()
	c.DrawPath(path, paint)
}

// DrawCircle draws a circle with the provided paint.
func (c *RasterCanvas) DrawCircle(center Offset, radius float64, paint Paint) {
	if radius <= 0 {
		return
	}
	path := NewPath()
	path.AddCircle(center, radius)
	c.DrawPath(path, paint)
}

// DrawLine draws a line segment. Lines are always stroked.
func (c *RasterCanvas) DrawLine(start, end Offset, paint Paint) {
	path := NewPath()
	path.MoveTo(start.X, start.Y)
	path.LineTo(end.X, end.Y)
	paint.Style = PaintStyleStroke
	c.DrawPath(path, paint)
}

// DrawArc draws an arc or wedge of the oval inscribed in oval.
func (c *RasterCanvas) DrawArc(oval Rect, startDegrees, sweepDegrees float64, useCenter bool, paint Paint) {
	path := NewPath()
	path.AddArc(oval, startDegrees, sweepDegrees, useCenter)
	if path.IsEmpty() {
		return
	}
	c.DrawPath(path, paint)
}

// DrawPath fills and/or strokes path according to paint.Style.
func (c *RasterCanvas) DrawPath(path *Path, paint Paint) {
	if path == nil || path.IsEmpty() || c.state.clip.Empty() {
		return
	}
	subpaths := c.toDevice(path.Flatten(flattenTolerance))
	if paint.Style == PaintStyleFill || paint.Style == PaintStyleFillAndStroke {
		c.fill(fillOutline(subpaths), paint)
	}
	if paint.Style == PaintStyleStroke || paint.Style == PaintStyleFillAndStroke {
		c.fill(strokeOutline(subpaths, paint), paint)
	}
}

// DrawImage composites img at position using paint.BlendMode.
func (c *RasterCanvas) DrawImage(img image.Image, position Offset, paint Paint) {
	if img == nil {
		return
	}
	src := img.Bounds()
	origin := image.Pt(
		int(math.Round(position.X+c.state.dx)),
		int(math.Round(position.Y+c.state.dy)),
	)
	r := src.Sub(src.Min).Add(origin).Intersect(c.state.clip)
	if r.Empty() {
		return
	}
	sp := src.Min.Add(r.Min.Sub(origin))

	switch paint.BlendMode {
	case BlendModeSrcOver:
		draw.Draw(c.img, r, img, sp, draw.Over)
	case BlendModeSrc:
		draw.Draw(c.img, r, img, sp, draw.Src)
	case BlendModeSrcIn:
		// Destination alpha becomes the mask: dst = src * dst.alpha.
		alpha := image.NewAlpha(r)
		draw.Draw(alpha, r, c.img, r.Min, draw.Src)
		draw.DrawMask(c.img, r, img, sp, alpha, r.Min, draw.Src)
	default:
		c.blendEach(r, paint.BlendMode, func(x, y int) (color.RGBA, float64) {
			return color.RGBAModel.Convert(img.At(sp.X+x-r.Min.X, sp.Y+y-r.Min.Y)).(color.RGBA), 1
		})
	}
}

// DrawImageRect scales the srcRect region of img into dstRect.
func (c *RasterCanvas) DrawImageRect(img image.Image, srcRect, dstRect Rect) {
	if img == nil || dstRect.IsEmpty() {
		return
	}
	sr := img.Bounds()
	if !srcRect.IsEmpty() {
		sr = image.Rect(int(srcRect.Left), int(srcRect.Top), int(srcRect.Right), int(srcRect.Bottom)).Intersect(sr)
	}
	d := dstRect.Translate(c.state.dx, c.state.dy)
	dr := image.Rect(int(math.Round(d.Left)), int(math.Round(d.Top)), int(math.Round(d.Right)), int(math.Round(d.Bottom)))
	target, ok := c.img.SubImage(c.state.clip).(*image.RGBA)
	if !ok {
		return
	}
	draw.ApproxBiLinear.Scale(target, dr, img, sr, draw.Over, nil)
}

// DrawText draws text with its baseline starting at origin.
func (c *RasterCanvas) DrawText(text string, origin Offset, style TextStyle) {
	if style.Face == nil || text == "" {
		return
	}
	target, ok := c.img.SubImage(c.state.clip).(*image.RGBA)
	if !ok {
		return
	}
	d := &font.Drawer{
		Dst:  target,
		Src:  image.NewUniform(style.Color.NRGBA()),
		Face: style.Face,
		Dot:  fixed.P(int(math.Round(origin.X+c.state.dx)), int(math.Round(origin.Y+c.state.dy))),
	}
	d.DrawString(text)
}

// Size returns the size of the canvas in pixels.
func (c *RasterCanvas) Size() Size {
	b := c.img.Bounds()
	return Size{Width: float64(b.Dx()), Height: float64(b.Dy())}
}

func (c *RasterCanvas) toDevice(subpaths []Subpath) []Subpath {
	if c.state.dx == 0 && c.state.dy == 0 {
		return subpaths
	}
	off := Offset{X: c.state.dx, Y: c.state.dy}
	for i := range subpaths {
		for j := range subpaths[i].Points {
			subpaths[i].Points[j] = subpaths[i].Points[j].Add(off)
		}
	}
	return subpaths
}

// fill rasterises polygons into the coverage mask and composites paint.Color
// through it.
func (c *RasterCanvas) fill(polys []polygon, paint Paint) {
	if len(polys) == 0 {
		return
	}
	b := c.img.Bounds()
	c.ras.Reset(b.Dx(), b.Dy())
	c.ras.DrawOp = draw.Src
	for _, p := range polys {
		if len(p) < 3 {
			continue
		}
		c.ras.MoveTo(p[0].X-float32(b.Min.X), p[0].Y-float32(b.Min.Y))
		for _, v := range p[1:] {
			c.ras.LineTo(v.X-float32(b.Min.X), v.Y-float32(b.Min.Y))
		}
		c.ras.ClosePath()
	}
	r := c.state.clip
	c.ras.Draw(c.mask, b, image.Opaque, image.Point{})

	if paint.BlendMode == BlendModeSrcOver {
		draw.DrawMask(c.img, r, image.NewUniform(paint.Color.NRGBA()), image.Point{}, c.mask, r.Min, draw.Over)
		return
	}
	src := color.RGBAModel.Convert(paint.Color.NRGBA()).(color.RGBA)
	c.blendEach(r, paint.BlendMode, func(x, y int) (color.RGBA, float64) {
		return src, float64(c.mask.AlphaAt(x, y).A) / 255
	})
}

// blendEach applies a Porter-Duff mode pixel by pixel over r. source returns
// the premultiplied source color and the coverage for a device pixel.
func (c *RasterCanvas) blendEach(r image.Rectangle, mode BlendMode, source func(x, y int) (color.RGBA, float64)) {
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			s, coverage := source(x, y)
			if coverage <= 0 {
				continue
			}
			d := c.img.RGBAAt(x, y)
			sa := float64(s.A) / 255
			da := float64(d.A) / 255
			fs, fd := mode.factors(sa, da)
			mix := func(sc, dc uint8) uint8 {
				v := float64(sc)*fs + float64(dc)*fd
				v = float64(dc) + (v-float64(dc))*coverage
				return uint8(math.Max(0, math.Min(255, math.Round(v))))
			}
			c.img.SetRGBA(x, y, color.RGBA{
				R: mix(s.R, d.R),
				G: mix(s.G, d.G),
				B: mix(s.B, d.B),
				A: mix(s.A, d.A),
			})
		}
	}
}
