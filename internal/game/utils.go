package game

import (
	"fmt"
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/portfolio-slides/internal/anim"
)

// frameStep is the simulated time covered by one Update call.
func frameStep() time.Duration {
	tps := ebiten.TPS()
	if tps <= 0 {
		tps = ebiten.DefaultTPS
	}
	return time.Second / time.Duration(tps)
}

// withAlpha returns opaque c at opacity f as a straight-alpha colour.
func withAlpha(c color.RGBA, f float64) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(math.Round(255 * anim.Clamp01(f)))}
}

// formatPage formats a zero-based index as "n / total".
func formatPage(index, total int) string {
	return fmt.Sprintf("%d / %d", index+1, total)
}
