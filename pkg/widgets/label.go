package widgets

import (
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/go-drift/circlelayout/pkg/graphics"
	"github.com/go-drift/circlelayout/pkg/layout"
)

// Label draws a single line of text in a bitmap face.
type Label struct {
	layout.RenderBoxBase

	text  string
	color graphics.Color
	face  font.Face
}

// NewLabel returns a label using basicfont.Face7x13.
func NewLabel(text string, color graphics.Color) *Label {
	l := &Label{text: text, color: color, face: basicfont.Face7x13}
	l.SetSelf(l)
	return l
}

// SetText changes the label text.
func (l *Label) SetText(text string) {
	if l.text == text {
		return
	}
	l.text = text
	l.MarkNeedsLayout()
	l.MarkNeedsPaint()
}

// Text returns the label text.
func (l *Label) Text() string {
	return l.text
}

// SetFace replaces the font face.
func (l *Label) SetFace(face font.Face) {
	l.face = face
	l.MarkNeedsLayout()
	l.MarkNeedsPaint()
}

// PerformLayout sizes the label to its text.
func (l *Label) PerformLayout() {
	l.SetSize(l.Constraints().Constrain(l.measure()))
}

func (l *Label) measure() graphics.Size {
	if l.face == nil || l.text == "" {
		return graphics.Size{}
	}
	metrics := l.face.Metrics()
	advance := font.MeasureString(l.face, l.text)
	return graphics.Size{
		Width:  float64(advance.Ceil()),
		Height: float64((metrics.Ascent + metrics.Descent).Ceil()),
	}
}

// Paint draws the text with its top-left at the origin.
func (l *Label) Paint(ctx *layout.PaintContext) {
	if l.face == nil || l.text == "" {
		return
	}
	ascent := float64(l.face.Metrics().Ascent.Ceil())
	ctx.Canvas.DrawText(l.text, graphics.Offset{Y: ascent}, graphics.TextStyle{Face: l.face, Color: l.color})
}
