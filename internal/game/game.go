// Package game runs the slide deck on Ebiten: it turns taps into slide
// advances, steps the animations once per tick, and draws the frame.
package game

import (
	"fmt"
	"log"
	"time"

	"github.com/faiface/beep"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/iburimskiy/portfolio-slides/internal/config"
	"github.com/iburimskiy/portfolio-slides/internal/deck"
	"github.com/iburimskiy/portfolio-slides/internal/slides"
)

// Options controls optional subsystems.
type Options struct {
	// Sound plays a click on every tap.
	Sound bool
}

type player interface {
	play()
}

type viewport struct{ w, h int }

// Game implements ebiten.Game.
type Game struct {
	slides []slides.Slide
	ctrl   *deck.Controller
	bg     *deck.Background
	fonts  *fonts
	sound  player

	// viewport, refreshed by Layout
	width  int
	height int

	// card layouts for the current viewport
	cards    map[int]deck.Card
	cardsFor viewport
}

// New builds the deck over the fixed slides. Sound failures are logged and
// leave the game silent.
func New(opts Options) (*Game, error) {
	f, err := loadFonts()
	if err != nil {
		return nil, fmt.Errorf("load fonts: %w", err)
	}
	g := newGame(slides.Deck(), f)
	if opts.Sound {
		s, err := newTapSound(beep.SampleRate(config.SoundSampleRate), config.ClickFrequency, config.ClickLength, config.ClickVolume)
		if err != nil {
			log.Printf("tap sound disabled: %v", err)
		} else {
			g.sound = s
		}
	}
	return g, nil
}

func newGame(deckSlides []slides.Slide, f *fonts) *Game {
	return &Game{
		slides: deckSlides,
		ctrl:   deck.NewController(len(deckSlides), config.SlideTransition),
		bg:     deck.NewBackground(config.BackgroundHalf),
		fonts:  f,
		width:  config.WindowWidth,
		height: config.WindowHeight,
	}
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	g.tick(g.taps(), frameStep())
	return nil
}

// taps counts pointers released anywhere in the window this tick.
func (g *Game) taps() int {
	return countTaps(inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft), inpututil.AppendJustReleasedTouchIDs(nil))
}

// countTaps is one tap for a mouse release plus one per released touch.
func countTaps(mouseReleased bool, releasedTouches []ebiten.TouchID) int {
	n := len(releasedTouches)
	if mouseReleased {
		n++
	}
	return n
}

// tick applies this frame's taps, then moves both animations forward by dt.
func (g *Game) tick(taps int, dt time.Duration) {
	for i := 0; i < taps; i++ {
		g.ctrl.Advance()
		if g.sound != nil {
			g.sound.play()
		}
	}
	g.ctrl.Step(dt)
	g.bg.Step(dt)
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.drawBackground(screen)
	g.drawCircles(screen)
	g.drawSlides(screen)
	g.drawPager(screen)
}

// Layout renders at the outside size so the deck always fills the screen.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth > 0 && outsideHeight > 0 {
		g.width, g.height = outsideWidth, outsideHeight
	}
	return g.width, g.height
}

// card returns slide i's layout for the current viewport.
func (g *Game) card(i int, s slides.Slide) deck.Card {
	vp := viewport{g.width, g.height}
	if g.cards == nil || g.cardsFor != vp {
		g.cards = make(map[int]deck.Card, len(g.slides))
		g.cardsFor = vp
	}
	if c, ok := g.cards[i]; ok {
		return c
	}
	c := deck.LayoutCard(s, float64(vp.w), float64(vp.h), g.fonts.measure)
	g.cards[i] = c
	return c
}
