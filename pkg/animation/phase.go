package animation

import "time"

// Phase runs Value from 0 to 1 over a duration, shaped by an easing. It is
// driven by a [Ticker] and therefore only moves when [StepTickers] runs.
// An idle phase rests at 1.
type Phase struct {
	// Value is the eased progress, 0 at the start of a run and 1 at rest.
	Value float64

	duration time.Duration
	easing   EasingFunc
	ticker   *Ticker
	onChange func()
}

// NewPhase returns an idle phase that calls onChange on every tick.
func NewPhase(onChange func()) *Phase {
	return &Phase{Value: 1, easing: Linear, onChange: onChange}
}

// Run restarts the phase at 0 and animates it to 1 over d. A nil easing is
// linear; a non-positive d completes on the next tick.
func (p *Phase) Run(d time.Duration, easing EasingFunc) {
	p.Stop()
	if easing == nil {
		easing = Linear
	}
	p.duration = d
	p.easing = easing
	p.Value = 0
	p.ticker = NewTicker(p.tick)
	p.ticker.Start()
}

func (p *Phase) tick(elapsed time.Duration) {
	progress := 1.0
	if p.duration > 0 {
		progress = min(float64(elapsed)/float64(p.duration), 1)
	}
	if progress >= 1 {
		p.Value = 1
	} else {
		p.Value = p.easing(progress)
	}
	if p.onChange != nil {
		p.onChange()
	}
	if progress >= 1 {
		p.Stop()
	}
}

// Stop halts the phase at its current value.
func (p *Phase) Stop() {
	if p.ticker != nil {
		p.ticker.Stop()
		p.ticker = nil
	}
}

// IsRunning reports whether the phase is between Run and its last tick.
func (p *Phase) IsRunning() bool {
	return p.ticker != nil
}
