package deck

import (
	"image/color"
	"math"

	"github.com/iburimskiy/portfolio-slides/internal/anim"
)

// Lerp blends a towards b channel by channel, rounding to nearest.
// t is clamped to [0,1].
func Lerp(a, b color.RGBA, t float64) color.RGBA {
	t = anim.Clamp01(t)
	return color.RGBA{
		R: lerpU8(a.R, b.R, t),
		G: lerpU8(a.G, b.G, t),
		B: lerpU8(a.B, b.B, t),
		A: lerpU8(a.A, b.A, t),
	}
}

func lerpU8(a, b uint8, t float64) uint8 {
	return uint8(math.Round(float64(a) + (float64(b)-float64(a))*t))
}
