package deck

import (
	"image/color"
	"math"
	"strings"

	"github.com/iburimskiy/portfolio-slides/internal/config"
	"github.com/iburimskiy/portfolio-slides/internal/slides"
)

// Weight selects a font face.
type Weight int

const (
	Regular Weight = iota
	Medium
	Bold
)

// TextStyle is a font size and weight.
type TextStyle struct {
	Size   float64
	Weight Weight
}

// LineHeight is the default line box height for the style.
func (s TextStyle) LineHeight() float64 { return math.Ceil(s.Size * 1.2) }

var (
	TitleStyle    = TextStyle{Size: config.TitleSize, Weight: Bold}
	SubtitleStyle = TextStyle{Size: config.SubtitleSize, Weight: Bold}
	ContentStyle  = TextStyle{Size: config.ContentSize, Weight: Regular}
	ChipStyle     = TextStyle{Size: config.ChipSize, Weight: Medium}
	HintStyle     = TextStyle{Size: config.HintSize, Weight: Regular}
	PagerStyle    = TextStyle{Size: config.PagerSize, Weight: Regular}
)

// MeasureFunc returns the advance width of s drawn in style.
type MeasureFunc func(s string, style TextStyle) float64

// Line is one centred line of text. Y is the top of its line box, relative
// to the card.
type Line struct {
	Text   string
	Style  TextStyle
	Color  color.RGBA
	Y      float64
	Height float64
}

// Chip is a pill around one list item, relative to the card. Lines is the
// label wrapped to fit the pill; H grows with it.
type Chip struct {
	Text       string
	Lines      []string
	X, Y, W, H float64
}

// Card is a laid out slide card. X and Y are relative to the slide's
// top-left corner.
type Card struct {
	X, Y, W, H float64
	Lines      []Line
	Chips      []Chip
}

// WrapText breaks text into lines no wider than maxWidth. Explicit newlines
// always break; a single word wider than maxWidth gets a line of its own.
func WrapText(text string, style TextStyle, maxWidth float64, measure MeasureFunc) []string {
	var out []string
	for _, para := range strings.Split(text, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			out = append(out, "")
			continue
		}
		line := words[0]
		for _, w := range words[1:] {
			candidate := line + " " + w
			if measure(candidate, style) <= maxWidth {
				line = candidate
				continue
			}
			out = append(out, line)
			line = w
		}
		out = append(out, line)
	}
	return out
}

// FlowChips packs chips of the given widths into rows no wider than
// maxWidth, keeping their order. A chip wider than a row sits alone.
func FlowChips(widths []float64, maxWidth, gap float64) [][]int {
	var rows [][]int
	var row []int
	used := 0.0
	for i, w := range widths {
		if len(row) > 0 && used+gap+w > maxWidth {
			rows = append(rows, row)
			row, used = nil, 0
		}
		if len(row) > 0 {
			used += gap
		}
		row = append(row, i)
		used += w
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}
	return rows
}

// layoutChips sizes one pill per item. A label that does not fit on one
// line inside inner is wrapped, and its pill grows taller instead of wider.
func layoutChips(items []string, inner float64, measure MeasureFunc) []Chip {
	lineH := ChipStyle.LineHeight()
	maxText := math.Max(0, inner-2*config.ChipPadX)
	chips := make([]Chip, len(items))
	for i, item := range items {
		lines := []string{item}
		textW := measure(item, ChipStyle)
		if textW > maxText {
			lines = WrapText(item, ChipStyle, maxText, measure)
			textW = 0
			for _, l := range lines {
				textW = math.Max(textW, measure(l, ChipStyle))
			}
		}
		chips[i] = Chip{
			Text:  item,
			Lines: lines,
			W:     math.Min(textW+2*config.ChipPadX, inner),
			H:     float64(len(lines))*lineH + 2*config.ChipPadY,
		}
	}
	return chips
}

// TrackedWidth is the width of s drawn rune by rune with spacing extra
// pixels between glyphs.
func TrackedWidth(s string, style TextStyle, spacing float64, measure MeasureFunc) float64 {
	w, n := 0.0, 0
	for _, r := range s {
		w += measure(string(r), style)
		n++
	}
	if n > 1 {
		w += spacing * float64(n-1)
	}
	return w
}

// CardWidth is the card width for a viewport width.
func CardWidth(viewportW float64) float64 {
	return math.Max(0, math.Min(viewportW-2*config.SlidePadding, config.CardMaxWidth))
}

// LayoutCard positions a slide's card and its contents inside a viewport.
func LayoutCard(s slides.Slide, viewportW, viewportH float64, measure MeasureFunc) Card {
	c := Card{W: CardWidth(viewportW)}
	inner := math.Max(0, c.W-2*config.CardPadding)
	y := float64(config.CardPadding)

	addBlock := func(text string, style TextStyle, col color.RGBA, leading, marginBottom float64) {
		for _, l := range WrapText(text, style, inner, measure) {
			c.Lines = append(c.Lines, Line{Text: l, Style: style, Color: col, Y: y, Height: leading})
			y += leading
		}
		y += marginBottom
	}

	addBlock(s.Title, TitleStyle, config.TitleColor, TitleStyle.LineHeight(), config.TitleMargin)
	if s.Subtitle != "" {
		addBlock(s.Subtitle, SubtitleStyle, config.SubColor, SubtitleStyle.LineHeight(), config.SubtitleMargin)
	}
	if s.Content != "" {
		addBlock(s.Content, ContentStyle, config.BodyColor, config.ContentLeading, config.ContentMargin)
	}

	if s.HasList() {
		y += config.ListMarginTop
		chips := layoutChips(s.List, inner, measure)
		widths := make([]float64, len(chips))
		for i, ch := range chips {
			widths[i] = ch.W
		}
		rows := FlowChips(widths, inner, config.ChipGap)
		for r, row := range rows {
			rowW := float64(config.ChipGap * (len(row) - 1))
			rowH := 0.0
			for _, i := range row {
				rowW += widths[i]
				rowH = math.Max(rowH, chips[i].H)
			}
			x := config.CardPadding + (inner-rowW)/2
			for _, i := range row {
				ch := chips[i]
				ch.X, ch.Y = x, y+(rowH-ch.H)/2
				c.Chips = append(c.Chips, ch)
				x += ch.W + config.ChipGap
			}
			y += rowH
			if r < len(rows)-1 {
				y += config.ChipGap
			}
		}
	}

	c.H = y + config.CardPadding
	c.X = (viewportW - c.W) / 2
	c.Y = (viewportH - c.H) / 2
	return c
}
