package animation

import "time"

// Animator owns two independent phases, X and Y, each running from 0 to 1
// over its own duration and easing. Every phase tick calls the update
// function, which is where a render object requests its repaint.
type Animator struct {
	x, y   *Phase
	update func()
}

// NewAnimator returns an Animator that calls update on every phase tick.
// Both phases start completed at 1 so that content renders fully before
// any animation is requested.
func NewAnimator(update func()) *Animator {
	a := &Animator{update: update}
	a.x = NewPhase(a.notify)
	a.y = NewPhase(a.notify)
	return a
}

func (a *Animator) notify() {
	if a.update != nil {
		a.update()
	}
}

// PhaseX returns the eased progress of the X phase.
func (a *Animator) PhaseX() float64 { return a.x.Value }

// PhaseY returns the eased progress of the Y phase.
func (a *Animator) PhaseY() float64 { return a.y.Value }

// IsAnimating reports whether either phase is running.
func (a *Animator) IsAnimating() bool {
	return a.x.IsRunning() || a.y.IsRunning()
}

// AnimateX runs the X phase from 0 to 1 over d. A nil easing is linear.
func (a *Animator) AnimateX(d time.Duration, easing EasingFunc) {
	a.x.Run(d, easing)
}

// AnimateY runs the Y phase from 0 to 1 over d. A nil easing is linear.
func (a *Animator) AnimateY(d time.Duration, easing EasingFunc) {
	a.y.Run(d, easing)
}

// AnimateXY runs both phases together, each with its own duration and
// easing.
func (a *Animator) AnimateXY(dx, dy time.Duration, easingX, easingY EasingFunc) {
	a.x.Run(dx, easingX)
	a.y.Run(dy, easingY)
}

// Stop halts both phases at their current values.
func (a *Animator) Stop() {
	a.x.Stop()
	a.y.Stop()
}
