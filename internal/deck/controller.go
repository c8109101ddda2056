// Package deck is the presentation logic of the slide deck: which slide is
// current, where the slide strip sits on screen, what colour the background
// is, and how each card is laid out. It has no rendering dependencies; the
// game package drives it from the frame clock and draws what it computes.
package deck

import (
	"time"

	"github.com/iburimskiy/portfolio-slides/internal/anim"
)

// Controller owns the current slide and the animated strip offset.
// The index commits on tap; the offset catches up over the transition.
type Controller struct {
	index    int
	count    int
	duration time.Duration
	offset   *anim.Timing
}

// NewController returns a controller over count slides, at slide 0.
// A count below 1 is treated as 1.
func NewController(count int, d time.Duration) *Controller {
	if count < 1 {
		count = 1
	}
	return &Controller{
		count:    count,
		duration: d,
		offset:   anim.NewTiming(0, anim.EaseInOut),
	}
}

// Advance moves to the next slide, wrapping to the first, and returns the
// new index. A transition already in flight is retargeted.
func (c *Controller) Advance() int {
	next := (c.index + 1) % c.count
	c.offset.To(float64(next), c.duration)
	c.index = next
	return next
}

// Step advances the slide transition by dt.
func (c *Controller) Step(dt time.Duration) { c.offset.Step(dt) }

// Index is the committed slide, already updated for an in-flight transition.
func (c *Controller) Index() int { return c.index }

// Count is the number of slides.
func (c *Controller) Count() int { return c.count }

// Offset is the fractional slide position currently on screen.
func (c *Controller) Offset() float64 { return c.offset.Value() }

// Settled reports whether the strip has come to rest on Index.
func (c *Controller) Settled() bool { return c.offset.Done() }

// TranslationAt is the strip translation when the offset sits at position.
func TranslationAt(position, width float64) float64 {
	return -position * width
}

// ContainerX is the horizontal translation of the whole strip this frame.
func (c *Controller) ContainerX(width float64) float64 {
	return TranslationAt(c.Offset(), width)
}

// SlideX is where slide i's left edge lands this frame.
func (c *Controller) SlideX(i int, width float64) float64 {
	return c.ContainerX(width) + float64(i)*width
}
