package game

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomedium"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/iburimskiy/portfolio-slides/internal/deck"
)

type fonts struct {
	sources map[deck.Weight]*text.GoTextFaceSource
	faces   map[deck.TextStyle]*text.GoTextFace
}

func loadFonts() (*fonts, error) {
	ttfs := map[deck.Weight][]byte{
		deck.Regular: goregular.TTF,
		deck.Medium:  gomedium.TTF,
		deck.Bold:    gobold.TTF,
	}
	f := &fonts{
		sources: make(map[deck.Weight]*text.GoTextFaceSource, len(ttfs)),
		faces:   map[deck.TextStyle]*text.GoTextFace{},
	}
	for w, ttf := range ttfs {
		src, err := text.NewGoTextFaceSource(bytes.NewReader(ttf))
		if err != nil {
			return nil, fmt.Errorf("load font weight %d: %w", w, err)
		}
		f.sources[w] = src
	}
	return f, nil
}

func (f *fonts) face(style deck.TextStyle) *text.GoTextFace {
	if face, ok := f.faces[style]; ok {
		return face
	}
	face := &text.GoTextFace{Source: f.sources[style.Weight], Size: style.Size}
	f.faces[style] = face
	return face
}

func (f *fonts) measure(s string, style deck.TextStyle) float64 {
	return text.Advance(s, f.face(style))
}
