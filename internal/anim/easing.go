// Package anim provides the time-driven scalar animations the deck is built
// on: a retargetable timing value and an endless ping-pong loop. Both are
// advanced explicitly with Step so the frame clock stays with the caller.
package anim

import "math"

// Easing maps linear progress in [0,1] to eased progress. Every easing here
// returns exactly 0 at 0 and exactly 1 at 1.
type Easing func(t float64) float64

// Linear is the identity easing.
func Linear(t float64) float64 { return Clamp01(t) }

// Bezier returns a CSS-style cubic-bezier easing with control points
// (x1,y1) and (x2,y2).
func Bezier(x1, y1, x2, y2 float64) Easing {
	cx := 3 * x1
	bx := 3*(x2-x1) - cx
	ax := 1 - cx - bx
	cy := 3 * y1
	by := 3*(y2-y1) - cy
	ay := 1 - cy - by

	sampleX := func(s float64) float64 { return ((ax*s+bx)*s + cx) * s }
	sampleY := func(s float64) float64 { return ((ay*s+by)*s + cy) * s }
	slopeX := func(s float64) float64 { return (3*ax*s+2*bx)*s + cx }

	solve := func(x float64) float64 {
		s := x
		for i := 0; i < 8; i++ {
			dx := sampleX(s) - x
			if math.Abs(dx) < 1e-7 {
				return s
			}
			d := slopeX(s)
			if math.Abs(d) < 1e-6 {
				break
			}
			s -= dx / d
		}
		// Newton stalled, fall back to bisection
		lo, hi := 0.0, 1.0
		s = x
		for i := 0; i < 32; i++ {
			v := sampleX(s)
			if math.Abs(v-x) < 1e-7 {
				break
			}
			if v < x {
				lo = s
			} else {
				hi = s
			}
			s = (lo + hi) / 2
		}
		return s
	}

	return func(t float64) float64 {
		if t <= 0 {
			return 0
		}
		if t >= 1 {
			return 1
		}
		return sampleY(solve(t))
	}
}

// InOut makes an easing symmetric: the first half runs e forwards, the
// second half runs it mirrored.
func InOut(e Easing) Easing {
	return func(t float64) float64 {
		if t <= 0 {
			return 0
		}
		if t >= 1 {
			return 1
		}
		if t < 0.5 {
			return e(t*2) / 2
		}
		return 1 - e((1-t)*2)/2
	}
}

// Ease is the standard cubic-bezier(0.42, 0, 1, 1) curve.
var Ease = Bezier(0.42, 0, 1, 1)

// EaseInOut is the default easing for timing animations.
var EaseInOut = InOut(Ease)

// Clamp01 limits v to [0,1].
func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
