package circlelayout

import (
	"time"

	"github.com/go-drift/circlelayout/pkg/animation"
)

// AnimateX runs the X phase over d with an optional easing, a custom
// animation.EasingFunc or an animation.EasingOption preset. Every tick
// requests a repaint.
func (c *CircleLayout) AnimateX(d time.Duration, easing ...animation.Easing) {
	c.animator.AnimateX(d, first(easing))
}

// AnimateY runs the Y phase over d with an optional easing.
func (c *CircleLayout) AnimateY(d time.Duration, easing ...animation.Easing) {
	c.animator.AnimateY(d, first(easing))
}

// AnimateXY runs both phases. Easings, when given, apply to X then Y.
func (c *CircleLayout) AnimateXY(dx, dy time.Duration, easing ...animation.Easing) {
	var ex, ey animation.EasingFunc
	if len(easing) > 0 {
		ex = animation.Resolve(easing[0])
	}
	if len(easing) > 1 {
		ey = animation.Resolve(easing[1])
	}
	c.animator.AnimateXY(dx, dy, ex, ey)
}

func first(easing []animation.Easing) animation.EasingFunc {
	if len(easing) == 0 {
		return nil
	}
	return animation.Resolve(easing[0])
}
