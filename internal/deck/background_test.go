package deck

import (
	"image/color"
	"testing"
	"time"

	"github.com/iburimskiy/portfolio-slides/internal/config"
)

func TestColorAtEndpoints(t *testing.T) {
	tests := []struct {
		phase float64
		want  color.RGBA
	}{
		{0, config.BackgroundLow},
		{1, config.BackgroundHigh},
		{0.5, color.RGBA{R: 52, G: 19, B: 61, A: 255}},
		{-0.5, config.BackgroundLow},
		{1.5, config.BackgroundHigh},
	}
	for _, tc := range tests {
		if got := ColorAt(tc.phase); got != tc.want {
			t.Errorf("ColorAt(%v) = %v, want %v", tc.phase, got, tc.want)
		}
	}
}

func TestBackgroundBoundaries(t *testing.T) {
	const half = 10 * time.Second
	for k := 0; k < 5; k++ {
		b := NewBackground(half)
		b.Step(time.Duration(k) * half)
		want := 0.0
		if k%2 == 1 {
			want = 1
		}
		if got := b.Phase(); got != want {
			t.Errorf("k=%d: Phase() = %v, want %v", k, got, want)
		}
	}
}

func TestBackgroundIgnoresSlides(t *testing.T) {
	a := NewBackground(10 * time.Second)
	b := NewBackground(10 * time.Second)
	c := NewController(4, transition)

	for i := 0; i < 90; i++ {
		if i%7 == 0 {
			c.Advance()
		}
		c.Step(time.Second / 60)
		a.Step(time.Second / 60)
		b.Step(time.Second / 60)
	}
	if a.Phase() != b.Phase() || a.Color() != b.Color() {
		t.Errorf("phase diverged: %v vs %v", a.Phase(), b.Phase())
	}
}

func TestBackgroundFallsAfterFirstHalf(t *testing.T) {
	b := NewBackground(10 * time.Second)
	if !b.Rising() {
		t.Fatal("Rising() = false at start")
	}
	b.Step(12 * time.Second)
	if b.Rising() {
		t.Error("Rising() = true in second half")
	}
	if p := b.Phase(); p <= 0 || p >= 1 {
		t.Errorf("Phase() = %v, want in (0,1)", p)
	}
}
