// Package circlelayout provides CircleLayout, a container that arranges its
// children as sectors of a circle.
//
// Each child owns a contiguous angular interval sized by its Model's
// percentage. In ModePie the container paints every child masked to its
// wedge, draws divider spokes and an inner circle over the result, and
// routes pointer events to the child whose wedge is under the pointer. In
// ModeNormal children are still placed on the circle but paint and receive
// events as ordinary boxes.
package circlelayout

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/go-drift/circlelayout/pkg/animation"
	"github.com/go-drift/circlelayout/pkg/errors"
	"github.com/go-drift/circlelayout/pkg/gestures"
	"github.com/go-drift/circlelayout/pkg/graphics"
	"github.com/go-drift/circlelayout/pkg/layout"
	"github.com/go-drift/circlelayout/pkg/sector"
)

// LayoutMode selects between plain and sector rendering.
type LayoutMode int

const (
	// ModeNormal paints children as plain boxes at their placements.
	ModeNormal LayoutMode = 1
	// ModePie masks each child to its sector.
	ModePie LayoutMode = 2
)

func (m LayoutMode) String() string {
	switch m {
	case ModeNormal:
		return "normal"
	case ModePie:
		return "pie"
	default:
		return fmt.Sprintf("LayoutMode(%d)", int(m))
	}
}

// Options configures a CircleLayout. Start from DefaultOptions.
type Options struct {
	// AngleOffset is the start angle of the first sector, in degrees.
	AngleOffset float64
	// AngleRange is the total sweep shared by all sectors, in degrees.
	AngleRange float64
	// InnerRadius is the radius of the central hole in pixels.
	InnerRadius float64
	// DividerWidth is the stroke width of the divider spokes.
	DividerWidth float64
	// DividerColor is the color of the divider spokes.
	DividerColor graphics.Color
	// Padding insets the arc bounds from the inscribed square.
	Padding float64
	// InnerCircle is painted over the hole. Nil paints nothing.
	InnerCircle Drawable
	// Background is painted under the sectors. Nil paints nothing.
	Background Drawable
	// Mode selects plain or sector rendering.
	Mode LayoutMode
	// SweepIncrement is the reveal step in degrees per paint.
	SweepIncrement float64
	// AnimationOnly starts with the last sector's reveal pending.
	AnimationOnly bool
	// Resources resolves ids passed to SetInnerCircleResource.
	Resources Resources
	// OnTouch is the container's own pointer handler, used when no child
	// takes an event. Nil rejects.
	OnTouch func(gestures.PointerEvent) bool
	// Logger receives debug and warning output. Nil uses log.Default().
	Logger *log.Logger
}

// DefaultOptions returns the stock configuration.
func DefaultOptions() Options {
	return Options{
		AngleOffset:    0,
		AngleRange:     360,
		InnerRadius:    80,
		DividerWidth:   1,
		DividerColor:   graphics.ColorDarkGray,
		Padding:        7.5,
		Mode:           ModeNormal,
		SweepIncrement: 0.5,
	}
}

// child is one entry of the container.
type child struct {
	id     ChildID
	box    layout.RenderBox
	params LayoutParams
	frame  graphics.Rect
	// warned is set once a missing model has been logged.
	warned bool
}

// CircleLayout is a render box arranging children as circle sectors.
type CircleLayout struct {
	layout.RenderBoxBase

	opts     Options
	logger   *log.Logger
	children []*child
	models   map[ChildID]Model
	nextID   ChildID
	geometry sector.Geometry

	// needsRender is set when frames, angles or arc bounds changed and the
	// cached composite must be rebuilt.
	needsRender bool
	targets     renderTargets
	reveal      revealState

	target           *child
	captureListeners map[int]func(ChildID, bool)
	nextListenerID   int

	animator *animation.Animator
}

// New returns an empty CircleLayout configured by opts.
func New(opts Options) *CircleLayout {
	c := &CircleLayout{
		opts:             opts,
		logger:           opts.Logger,
		models:           make(map[ChildID]Model),
		captureListeners: make(map[int]func(ChildID, bool)),
		needsRender:      true,
	}
	if c.logger == nil {
		c.logger = log.Default()
	}
	c.SetSelf(c)
	c.animator = animation.NewAnimator(c.MarkNeedsPaint)
	c.reveal.active = opts.AnimationOnly
	return c
}

// invalidate requests layout and paint after a configuration change.
func (c *CircleLayout) invalidate() {
	c.MarkNeedsLayout()
	c.MarkNeedsPaint()
}

// SetOwner attaches the container and its children to a pipeline owner.
func (c *CircleLayout) SetOwner(owner *layout.PipelineOwner) {
	c.RenderBoxBase.SetOwner(owner)
	for _, ch := range c.children {
		ch.box.SetOwner(owner)
	}
}

// AddChild appends box with the given params and model and returns its id.
// A nil model leaves the child with a zero-width sector until SetModel.
func (c *CircleLayout) AddChild(box layout.RenderBox, params LayoutParams, model Model) ChildID {
	id := c.nextID
	c.nextID++
	c.children = append(c.children, &child{id: id, box: box, params: params})
	if model != nil {
		c.models[id] = model
	}
	box.SetOwner(c.Owner())
	layout.SetParentOnChild(box, c)
	c.needsRender = true
	c.invalidate()
	return id
}

// RemoveChild detaches the child with id. It reports whether it existed.
func (c *CircleLayout) RemoveChild(id ChildID) bool {
	for i, ch := range c.children {
		if ch.id != id {
			continue
		}
		if c.target == ch {
			c.releaseTarget()
		}
		c.children = append(c.children[:i], c.children[i+1:]...)
		delete(c.models, id)
		layout.SetParentOnChild(ch.box, nil)
		c.needsRender = true
		c.invalidate()
		return true
	}
	return false
}

// SetModel replaces the data model of the child with id.
func (c *CircleLayout) SetModel(id ChildID, model Model) {
	if model == nil {
		delete(c.models, id)
	} else {
		c.models[id] = model
	}
	c.needsRender = true
	c.invalidate()
}

// Model returns the data model of the child with id.
func (c *CircleLayout) Model(id ChildID) (Model, bool) {
	m, ok := c.models[id]
	return m, ok
}

// ModelsChanged must be called after mutating models in place.
func (c *CircleLayout) ModelsChanged() {
	c.needsRender = true
	c.invalidate()
}

// Params returns the layout params of the child with id, including the
// angles assigned by the last layout pass.
func (c *CircleLayout) Params(id ChildID) (LayoutParams, bool) {
	if ch := c.find(id); ch != nil {
		return ch.params, true
	}
	return LayoutParams{}, false
}

// SetParams replaces the sizing params of the child with id. The assigned
// angles are kept until the next layout pass.
func (c *CircleLayout) SetParams(id ChildID, params LayoutParams) {
	ch := c.find(id)
	if ch == nil {
		return
	}
	params.StartAngle, params.EndAngle = ch.params.StartAngle, ch.params.EndAngle
	ch.params = params
	c.invalidate()
}

// Children returns the child ids in index order.
func (c *CircleLayout) Children() []ChildID {
	ids := make([]ChildID, len(c.children))
	for i, ch := range c.children {
		ids[i] = ch.id
	}
	return ids
}

// Child returns the render box of the child with id.
func (c *CircleLayout) Child(id ChildID) layout.RenderBox {
	if ch := c.find(id); ch != nil {
		return ch.box
	}
	return nil
}

// Frame returns the rectangle the last layout pass assigned to id.
func (c *CircleLayout) Frame(id ChildID) (graphics.Rect, bool) {
	if ch := c.find(id); ch != nil {
		return ch.frame, true
	}
	return graphics.Rect{}, false
}

// Sectors returns the intervals assigned by the last layout pass, in
// child order.
func (c *CircleLayout) Sectors() []sector.Sector {
	out := make([]sector.Sector, len(c.children))
	for i, ch := range c.children {
		out[i] = sector.Sector{Start: ch.params.StartAngle, End: ch.params.EndAngle}
	}
	return out
}

// VisitChildren calls the visitor for each child.
func (c *CircleLayout) VisitChildren(visitor func(layout.RenderObject)) {
	for _, ch := range c.children {
		visitor(ch.box)
	}
}

func (c *CircleLayout) find(id ChildID) *child {
	for _, ch := range c.children {
		if ch.id == id {
			return ch
		}
	}
	return nil
}

// SetLayoutMode switches between plain and sector rendering.
func (c *CircleLayout) SetLayoutMode(mode LayoutMode) {
	c.opts.Mode = mode
	c.needsRender = true
	c.invalidate()
}

// LayoutMode returns the current rendering mode.
func (c *CircleLayout) LayoutMode() LayoutMode {
	return c.opts.Mode
}

// Radius returns the distance from the center at which children are
// placed for the current size.
func (c *CircleLayout) Radius() float64 {
	return (c.Size().Shortest() - c.opts.InnerRadius) / 2
}

// Center returns the container center for the current size.
func (c *CircleLayout) Center() graphics.Offset {
	size := c.Size()
	return graphics.Offset{X: size.Width / 2, Y: size.Height / 2}
}

// SetAngleOffset sets the start angle of the first sector.
func (c *CircleLayout) SetAngleOffset(degrees float64) {
	c.opts.AngleOffset = degrees
	c.invalidate()
}

// AngleOffset returns the start angle of the first sector.
func (c *CircleLayout) AngleOffset() float64 {
	return c.opts.AngleOffset
}

// SetAngleRange sets the total sweep shared by the sectors.
func (c *CircleLayout) SetAngleRange(degrees float64) {
	c.opts.AngleRange = degrees
	c.invalidate()
}

// AngleRange returns the total sweep shared by the sectors.
func (c *CircleLayout) AngleRange() float64 {
	return c.opts.AngleRange
}

// SetInnerRadius sets the radius of the central hole.
func (c *CircleLayout) SetInnerRadius(radius float64) {
	c.opts.InnerRadius = radius
	c.invalidate()
}

// InnerRadius returns the radius of the central hole.
func (c *CircleLayout) InnerRadius() float64 {
	return c.opts.InnerRadius
}

// SetPadding sets the inset of the arc bounds.
func (c *CircleLayout) SetPadding(padding float64) {
	c.opts.Padding = padding
	c.invalidate()
}

// Padding returns the inset of the arc bounds.
func (c *CircleLayout) Padding() float64 {
	return c.opts.Padding
}

// SetDivider sets the divider color and width.
func (c *CircleLayout) SetDivider(color graphics.Color, width float64) {
	c.opts.DividerColor = color
	c.opts.DividerWidth = width
	c.invalidate()
}

// SetInnerCircle sets the drawable painted over the hole.
func (c *CircleLayout) SetInnerCircle(d Drawable) {
	c.opts.InnerCircle = d
	c.invalidate()
}

// SetInnerCircleColor paints the hole as a flat colored circle.
func (c *CircleLayout) SetInnerCircleColor(color graphics.Color) {
	c.SetInnerCircle(ColorDrawable{Color: color})
}

// SetInnerCircleResource sets the inner circle from Options.Resources.
func (c *CircleLayout) SetInnerCircleResource(id int) error {
	const op = "circlelayout.SetInnerCircleResource"
	if c.opts.Resources == nil {
		return errors.Errorf(op, errors.KindResource, "no resources configured for drawable %d", id)
	}
	d, ok := c.opts.Resources.Drawable(id)
	if !ok {
		return errors.Errorf(op, errors.KindResource, "drawable %d not found", id)
	}
	c.SetInnerCircle(d)
	return nil
}

// InnerCircle returns the drawable painted over the hole.
func (c *CircleLayout) InnerCircle() Drawable {
	return c.opts.InnerCircle
}

// SetBackground sets the drawable painted under the sectors.
func (c *CircleLayout) SetBackground(d Drawable) {
	c.opts.Background = d
	c.MarkNeedsPaint()
}

// SetOnTouch sets the container's own pointer handler.
func (c *CircleLayout) SetOnTouch(fn func(gestures.PointerEvent) bool) {
	c.opts.OnTouch = fn
}

// Animator returns the animator driving AnimateX, AnimateY and AnimateXY.
func (c *CircleLayout) Animator() *animation.Animator {
	return c.animator
}
