package anim

import (
	"time"

	"github.com/tanema/gween"
)

// Timing is a scalar that moves towards a target over a fixed duration.
// Calling To while a transition is running restarts it from the current
// value, so the latest target always wins.
type Timing struct {
	easing   Easing
	tween    *gween.Tween
	to       float64
	value    float64
	elapsed  time.Duration
	duration time.Duration
}

// NewTiming returns a settled value. A nil easing selects EaseInOut.
func NewTiming(v float64, e Easing) *Timing {
	if e == nil {
		e = EaseInOut
	}
	return &Timing{easing: e, to: v, value: v}
}

// To starts a transition from the current value to target.
func (t *Timing) To(target float64, d time.Duration) {
	t.to = target
	t.elapsed = 0
	t.duration = d
	if d <= 0 {
		t.tween = nil
		t.value = target
		return
	}
	t.tween = newTween(t.value, target, d, t.easing)
}

// Step advances the transition by dt.
func (t *Timing) Step(dt time.Duration) {
	if t.Done() {
		return
	}
	t.elapsed += dt
	if t.elapsed >= t.duration {
		t.elapsed = t.duration
		t.tween = nil
		t.value = t.to
		return
	}
	v, _ := t.tween.Set(seconds(t.elapsed))
	t.value = float64(v)
}

// Value is the current animated value.
func (t *Timing) Value() float64 { return t.value }

// Target is the value the current transition settles on.
func (t *Timing) Target() float64 { return t.to }

// Done reports whether the value has settled on its target.
func (t *Timing) Done() bool {
	return t.duration <= 0 || t.elapsed >= t.duration
}
