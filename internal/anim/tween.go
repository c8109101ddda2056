package anim

import (
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// tweenFunc adapts a normalised easing to gween's (t, b, c, d) form.
func tweenFunc(e Easing) ease.TweenFunc {
	return func(t, b, c, d float32) float32 {
		if d <= 0 {
			return b + c
		}
		return b + c*float32(e(float64(t)/float64(d)))
	}
}

func seconds(d time.Duration) float32 { return float32(d.Seconds()) }

// newTween builds a gween tween from from to to over d.
func newTween(from, to float64, d time.Duration, e Easing) *gween.Tween {
	return gween.New(float32(from), float32(to), seconds(d), tweenFunc(e))
}
