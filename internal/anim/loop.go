package anim

import (
	"time"

	"github.com/tanema/gween"
)

// Loop oscillates between Low and High forever. Each half cycle lasts Half;
// the first half rises. Elapsed time is kept as a time.Duration and only
// converted when sampling a half, so boundaries fall exactly on k*Half.
type Loop struct {
	Low, High float64

	half    time.Duration
	up      *gween.Tween
	down    *gween.Tween
	elapsed time.Duration
	rising  bool
	halves  int
}

// NewLoop returns a loop sitting at low, about to rise. A nil easing
// selects EaseInOut.
func NewLoop(low, high float64, half time.Duration, e Easing) *Loop {
	if e == nil {
		e = EaseInOut
	}
	return &Loop{
		Low:    low,
		High:   high,
		half:   half,
		up:     newTween(low, high, half, e),
		down:   newTween(high, low, half, e),
		rising: true,
	}
}

// Step advances the loop by dt. Time past a boundary is carried into the
// following half.
func (l *Loop) Step(dt time.Duration) {
	if l.half <= 0 || dt <= 0 {
		return
	}
	l.elapsed += dt
	for l.elapsed >= l.half {
		l.elapsed -= l.half
		l.rising = !l.rising
		l.halves++
	}
}

// Value is the current position between Low and High.
func (l *Loop) Value() float64 {
	if l.half <= 0 {
		return l.Low
	}
	if l.elapsed == 0 {
		if l.rising {
			return l.Low
		}
		return l.High
	}
	tw := l.down
	if l.rising {
		tw = l.up
	}
	v, _ := tw.Set(seconds(l.elapsed))
	return float64(v)
}

// Rising reports whether the loop is heading towards High.
func (l *Loop) Rising() bool { return l.rising }

// Halves is the number of completed half cycles.
func (l *Loop) Halves() int { return l.halves }
