package deck

import (
	"testing"
	"time"
)

const transition = 800 * time.Millisecond

func TestAdvanceFollowsTapCount(t *testing.T) {
	for _, count := range []int{1, 2, 4, 7} {
		c := NewController(count, transition)
		for n := 1; n <= 3*count+1; n++ {
			got := c.Advance()
			if want := n % count; got != want || c.Index() != want {
				t.Fatalf("count=%d taps=%d: Advance() = %d Index() = %d, want %d", count, n, got, c.Index(), want)
			}
			if c.Index() < 0 || c.Index() >= count {
				t.Fatalf("Index() = %d out of [0,%d)", c.Index(), count)
			}
		}
	}
}

func TestFullCycleReturnsToStart(t *testing.T) {
	c := NewController(4, transition)
	c.Advance()
	start := c.Index()
	for i := 0; i < c.Count(); i++ {
		c.Advance()
	}
	if c.Index() != start {
		t.Errorf("Index() = %d after full cycle, want %d", c.Index(), start)
	}
}

func TestFourSlideScenario(t *testing.T) {
	c := NewController(4, transition)
	if c.Index() != 0 {
		t.Fatalf("initial Index() = %d, want 0", c.Index())
	}
	c.Advance()
	if c.Index() != 1 {
		t.Errorf("after 1 tap Index() = %d, want 1", c.Index())
	}
	for i := 0; i < 3; i++ {
		c.Advance()
	}
	if c.Index() != 0 {
		t.Errorf("after 4 taps Index() = %d, want 0", c.Index())
	}
	c.Advance()
	if c.Index() != 1 {
		t.Errorf("after 5 taps Index() = %d, want 1", c.Index())
	}
}

func TestIndexCommitsBeforeAnimation(t *testing.T) {
	c := NewController(4, transition)
	c.Advance()
	if c.Index() != 1 {
		t.Fatalf("Index() = %d, want 1", c.Index())
	}
	if c.Offset() != 0 || c.Settled() {
		t.Errorf("Offset() = %v Settled() = %v right after tap, want 0 false", c.Offset(), c.Settled())
	}
	c.Step(transition / 2)
	if off := c.Offset(); off <= 0 || off >= 1 {
		t.Errorf("Offset() = %v mid transition, want in (0,1)", off)
	}
	c.Step(transition / 2)
	if !c.Settled() || c.Offset() != float64(c.Index()) {
		t.Errorf("Offset() = %v Settled() = %v, want %d true", c.Offset(), c.Settled(), c.Index())
	}
}

func TestRapidTapsRetarget(t *testing.T) {
	c := NewController(4, transition)
	c.Advance()
	c.Step(200 * time.Millisecond)
	before := c.Offset()

	c.Advance()
	if c.Index() != 2 {
		t.Fatalf("Index() = %d, want 2", c.Index())
	}
	if c.Offset() != before {
		t.Errorf("Offset() jumped from %v to %v on retarget", before, c.Offset())
	}
	c.Step(transition)
	if c.Offset() != 2 {
		t.Errorf("Offset() = %v, want 2", c.Offset())
	}
}

func TestWrapAnimatesBackToZero(t *testing.T) {
	c := NewController(4, transition)
	for i := 0; i < 3; i++ {
		c.Advance()
		c.Step(transition)
	}
	c.Advance()
	c.Step(transition / 4)
	if off := c.Offset(); off <= 0 || off >= 3 {
		t.Errorf("Offset() = %v while wrapping, want in (0,3)", off)
	}
	c.Step(transition)
	if c.Offset() != 0 {
		t.Errorf("Offset() = %v, want 0", c.Offset())
	}
}

func TestTranslationAt(t *testing.T) {
	const w = 390.0
	tests := []struct {
		position float64
		want     float64
	}{
		{0, 0},
		{1, -w},
		{2, -2 * w},
		{3, -3 * w},
		{1.5, -1.5 * w},
	}
	for _, tc := range tests {
		if got := TranslationAt(tc.position, w); got != tc.want {
			t.Errorf("TranslationAt(%v, %v) = %v, want %v", tc.position, w, got, tc.want)
		}
	}
}

func TestSettledAtIndexTwo(t *testing.T) {
	const w = 400.0
	c := NewController(4, transition)
	c.Advance()
	c.Advance()
	c.Step(transition)

	if got := c.ContainerX(w); got != -2*w {
		t.Errorf("ContainerX() = %v, want %v", got, -2*w)
	}
	for i := 0; i < 4; i++ {
		if got, want := c.SlideX(i, w), float64(i-2)*w; got != want {
			t.Errorf("SlideX(%d) = %v, want %v", i, got, want)
		}
	}
}

func TestZeroCountIsClamped(t *testing.T) {
	c := NewController(0, transition)
	if c.Count() != 1 {
		t.Fatalf("Count() = %d, want 1", c.Count())
	}
	if got := c.Advance(); got != 0 {
		t.Errorf("Advance() = %d, want 0", got)
	}
}
