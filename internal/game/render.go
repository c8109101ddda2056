package game

import (
	"image"
	"image/color"
	"math"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/portfolio-slides/internal/config"
	"github.com/iburimskiy/portfolio-slides/internal/deck"
)

const softEdgeLayers = 6

var whiteSubImage *ebiten.Image

// solid returns a 1x1 white source for DrawTriangles.
func solid() *ebiten.Image {
	if whiteSubImage == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		whiteSubImage = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return whiteSubImage
}

func (g *Game) drawBackground(screen *ebiten.Image) {
	screen.Fill(g.bg.Color())
}

// drawCircles draws the two blurred decorative discs.
func (g *Game) drawCircles(screen *ebiten.Image) {
	w, h := float64(g.width), float64(g.height)
	drawSoftCircle(screen, 100, 100, config.Circle1Radius, config.CircleViolet)
	drawSoftCircle(screen, w-100, h-100, config.Circle2Radius, config.CirclePink)
}

// drawSoftCircle stacks faint discs so the edge fades out while the core
// reaches CircleOpacity.
func drawSoftCircle(screen *ebiten.Image, cx, cy, r float64, c color.RGBA) {
	layer := 1 - math.Pow(1-config.CircleOpacity, 1.0/softEdgeLayers)
	for i := 0; i < softEdgeLayers; i++ {
		radius := r * (1.2 - 0.04*float64(i))
		vector.DrawFilledCircle(screen, float32(cx), float32(cy), float32(radius), withAlpha(c, layer), true)
	}
}

func (g *Game) drawSlides(screen *ebiten.Image) {
	w := float64(g.width)
	for i, s := range g.slides {
		x := g.ctrl.SlideX(i, w)
		if x >= w || x+w <= 0 {
			continue
		}
		card := g.card(i, s)
		g.drawCard(screen, card, x)
		g.drawHint(screen, x)
	}
}

func (g *Game) drawCard(screen *ebiten.Image, c deck.Card, slideX float64) {
	x := slideX + c.X
	y := c.Y

	for i := 3; i >= 1; i-- {
		spread := float64(i) * 6
		shadow := config.CardShadow
		shadow.A /= 3
		fillRoundedRect(screen, x-spread/2, y+10-spread/2, c.W+spread, c.H+spread, config.CardRadius+spread/2, shadow)
	}
	fillRoundedRect(screen, x, y, c.W, c.H, config.CardRadius, config.CardFill)
	strokeRoundedRect(screen, x, y, c.W, c.H, config.CardRadius, config.CardBorder, config.CardStroke)

	cx := x + c.W/2
	for _, l := range c.Lines {
		if l.Text == "" {
			continue
		}
		mid := y + l.Y + l.Height/2
		if l.Style == deck.TitleStyle {
			g.drawText(screen, l.Text, l.Style, config.TextShadow, cx, mid+2)
		}
		g.drawText(screen, l.Text, l.Style, l.Color, cx, mid)
	}

	for _, ch := range c.Chips {
		fillRoundedRect(screen, x+ch.X, y+ch.Y, ch.W, ch.H, config.ChipRadius, config.ChipFill)
		strokeRoundedRect(screen, x+ch.X, y+ch.Y, ch.W, ch.H, config.ChipRadius, 1, config.ChipStroke)
		lineH := deck.ChipStyle.LineHeight()
		top := y + ch.Y + config.ChipPadY
		for i, l := range ch.Lines {
			g.drawText(screen, l, deck.ChipStyle, config.TitleColor, x+ch.X+ch.W/2, top+lineH*(float64(i)+0.5))
		}
	}
}

func (g *Game) drawHint(screen *ebiten.Image, slideX float64) {
	y := float64(g.height) - config.HintBottom - deck.HintStyle.LineHeight()/2
	g.drawTracked(screen, strings.ToUpper("Tap to continue"), deck.HintStyle, config.HintSpacing, config.HintColor, slideX+float64(g.width)/2, y)
}

func (g *Game) drawPager(screen *ebiten.Image) {
	s := formatPage(g.ctrl.Index(), g.ctrl.Count())
	face := g.fonts.face(deck.PagerStyle)
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(g.width)-12, 12)
	op.ColorScale.ScaleWithColor(config.PagerColor)
	op.PrimaryAlign = text.AlignEnd
	text.Draw(screen, s, face, op)
}

// drawText draws s centred on (cx, cy).
func (g *Game) drawText(screen *ebiten.Image, s string, style deck.TextStyle, clr color.Color, cx, cy float64) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(cx, cy)
	op.ColorScale.ScaleWithColor(clr)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	text.Draw(screen, s, g.fonts.face(style), op)
}

// drawTracked draws s centred on (cx, cy) with spacing extra pixels between
// glyphs.
func (g *Game) drawTracked(screen *ebiten.Image, s string, style deck.TextStyle, spacing float64, clr color.Color, cx, cy float64) {
	x := cx - deck.TrackedWidth(s, style, spacing, g.fonts.measure)/2
	face := g.fonts.face(style)
	for _, r := range s {
		glyph := string(r)
		op := &text.DrawOptions{}
		op.GeoM.Translate(x, cy)
		op.ColorScale.ScaleWithColor(clr)
		op.SecondaryAlign = text.AlignCenter
		text.Draw(screen, glyph, face, op)
		x += g.fonts.measure(glyph, style) + spacing
	}
}

func roundedRectPath(x, y, w, h, r float32) *vector.Path {
	r = min(r, w/2, h/2)
	var p vector.Path
	p.MoveTo(x+r, y)
	p.LineTo(x+w-r, y)
	p.ArcTo(x+w, y, x+w, y+r, r)
	p.LineTo(x+w, y+h-r)
	p.ArcTo(x+w, y+h, x+w-r, y+h, r)
	p.LineTo(x+r, y+h)
	p.ArcTo(x, y+h, x, y+h-r, r)
	p.LineTo(x, y+r)
	p.ArcTo(x, y, x+r, y, r)
	p.Close()
	return &p
}

func fillRoundedRect(screen *ebiten.Image, x, y, w, h, r float64, c color.NRGBA) {
	if w <= 0 || h <= 0 {
		return
	}
	p := roundedRectPath(float32(x), float32(y), float32(w), float32(h), float32(r))
	vs, is := p.AppendVerticesAndIndicesForFilling(nil, nil)
	drawVertices(screen, vs, is, c)
}

func strokeRoundedRect(screen *ebiten.Image, x, y, w, h, r, width float64, c color.NRGBA) {
	if w <= 0 || h <= 0 {
		return
	}
	p := roundedRectPath(float32(x), float32(y), float32(w), float32(h), float32(r))
	vs, is := p.AppendVerticesAndIndicesForStroke(nil, nil, &vector.StrokeOptions{Width: float32(width)})
	drawVertices(screen, vs, is, c)
}

func drawVertices(screen *ebiten.Image, vs []ebiten.Vertex, is []uint16, c color.NRGBA) {
	r := float32(c.R) / 0xff
	gr := float32(c.G) / 0xff
	b := float32(c.B) / 0xff
	a := float32(c.A) / 0xff
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = r
		vs[i].ColorG = gr
		vs[i].ColorB = b
		vs[i].ColorA = a
	}
	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	screen.DrawTriangles(vs, is, solid(), op)
}
