package widgets

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/circlelayout/pkg/gestures"
	"github.com/go-drift/circlelayout/pkg/graphics"
	"github.com/go-drift/circlelayout/pkg/layout"
)

func render(box layout.RenderBox, w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	box.Paint(&layout.PaintContext{Canvas: graphics.NewRasterCanvas(img)})
	return img
}

func TestColoredBox_LayoutClampsPreferredSize(t *testing.T) {
	b := NewColoredBox(graphics.ColorBlack, 40, 30)
	b.Layout(layout.Loose(graphics.Size{Width: 100, Height: 20}), false)
	assert.Equal(t, graphics.Size{Width: 40, Height: 20}, b.Size())

	b.Layout(layout.Tight(graphics.Size{Width: 60, Height: 60}), false)
	assert.Equal(t, graphics.Size{Width: 60, Height: 60}, b.Size())
}

func TestColoredBox_PaintsChildCentered(t *testing.T) {
	outer := NewColoredBox(graphics.RGB(255, 0, 0), 20, 20)
	inner := NewColoredBox(graphics.RGB(0, 0, 255), 4, 4)
	outer.SetChild(inner)
	outer.Layout(layout.Tight(graphics.Size{Width: 20, Height: 20}), false)

	pd, ok := inner.ParentData().(*layout.BoxParentData)
	require.True(t, ok)
	assert.Equal(t, graphics.Offset{X: 8, Y: 8}, pd.Offset)

	img := render(outer, 20, 20)
	assert.Equal(t, uint8(255), img.RGBAAt(1, 1).R)
	assert.Equal(t, uint8(255), img.RGBAAt(9, 9).B)
	assert.Equal(t, uint8(0), img.RGBAAt(9, 9).R)
}

func TestColoredBox_SetColorRequestsPaint(t *testing.T) {
	b := NewColoredBox(graphics.ColorBlack, 10, 10)
	b.ClearNeedsPaint()
	b.SetColor(graphics.ColorBlack)
	assert.False(t, b.NeedsPaint())
	b.SetColor(graphics.ColorWhite)
	assert.True(t, b.NeedsPaint())
	assert.Equal(t, graphics.ColorWhite, b.Color())
}

func TestColoredBox_Pointer(t *testing.T) {
	b := NewColoredBox(graphics.ColorBlack, 10, 10)
	ev := gestures.PointerEvent{Phase: gestures.PointerPhaseDown}
	assert.True(t, b.HandlePointer(ev))

	b.OnPointer = func(gestures.PointerEvent) bool { return false }
	assert.False(t, b.HandlePointer(ev.WithPhase(gestures.PointerPhaseUp)))
	require.Len(t, b.Events, 2)
	assert.Equal(t, gestures.PointerPhaseUp, b.Events[1].Phase)
}

func TestColoredBox_VisitChildren(t *testing.T) {
	b := NewColoredBox(graphics.ColorBlack, 10, 10)
	count := 0
	b.VisitChildren(func(layout.RenderObject) { count++ })
	assert.Equal(t, 0, count)

	owner := &layout.PipelineOwner{}
	b.SetOwner(owner)
	child := NewColoredBox(graphics.ColorWhite, 1, 1)
	b.SetChild(child)
	b.VisitChildren(func(layout.RenderObject) { count++ })
	assert.Equal(t, 1, count)
	assert.Same(t, owner, child.Owner())
	assert.Same(t, b, child.Parent())
}

func TestLabel_MeasuresText(t *testing.T) {
	l := NewLabel("abc", graphics.ColorBlack)
	l.Layout(layout.Loose(graphics.Size{Width: 100, Height: 100}), false)
	assert.Equal(t, graphics.Size{Width: 21, Height: 13}, l.Size())

	l.SetText("")
	assert.True(t, l.NeedsLayout())
	l.Layout(layout.Loose(graphics.Size{Width: 100, Height: 100}), false)
	assert.Equal(t, graphics.Size{}, l.Size())
}

func TestLabel_Paints(t *testing.T) {
	l := NewLabel("MM", graphics.ColorBlack)
	l.Layout(layout.Loose(graphics.Size{Width: 100, Height: 100}), false)
	img := render(l, 14, 13)

	inked := 0
	for i := 3; i < len(img.Pix); i += 4 {
		if img.Pix[i] != 0 {
			inked++
		}
	}
	assert.Positive(t, inked)
	assert.Equal(t, "MM", l.Text())
}
