package deck

import (
	"image/color"
	"time"

	"github.com/iburimskiy/portfolio-slides/internal/anim"
	"github.com/iburimskiy/portfolio-slides/internal/config"
)

// Background cycles the screen colour between two endpoints, independent
// of the slides.
type Background struct {
	phase *anim.Loop
}

// NewBackground returns a background at the low colour, starting to rise.
func NewBackground(half time.Duration) *Background {
	return &Background{phase: anim.NewLoop(0, 1, half, anim.EaseInOut)}
}

// Step advances the colour loop by dt.
func (b *Background) Step(dt time.Duration) { b.phase.Step(dt) }

// Phase is the current blend position in [0,1].
func (b *Background) Phase() float64 { return b.phase.Value() }

// Rising reports whether the colour is heading towards the high endpoint.
func (b *Background) Rising() bool { return b.phase.Rising() }

// Color is the background colour for the current phase.
func (b *Background) Color() color.RGBA { return ColorAt(b.Phase()) }

// ColorAt blends the background endpoints by phase.
func ColorAt(phase float64) color.RGBA {
	return Lerp(config.BackgroundLow, config.BackgroundHigh, phase)
}
