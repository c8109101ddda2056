package config

import (
	"image/color"
	"time"
)

const (
	WindowWidth  = 480
	WindowHeight = 860
	WindowTitle  = "Anvita S Reddy - Portfolio (tap to continue, Esc to quit)"

	// Animation timings
	SlideTransition = 800 * time.Millisecond
	BackgroundHalf  = 10 * time.Second

	// Slide and card metrics
	SlidePadding   = 20
	CardMaxWidth   = 500
	CardPadding    = 30
	CardRadius     = 25
	CardBorder     = 1
	HintBottom     = 40
	HintSpacing    = 2
	TitleMargin    = 10
	SubtitleMargin = 20
	ContentMargin  = 24
	ContentLeading = 28
	ListMarginTop  = 10

	// Chips
	ChipPadX   = 16
	ChipPadY   = 8
	ChipGap    = 10
	ChipRadius = 20

	// Font sizes
	TitleSize    = 36
	SubtitleSize = 20
	ContentSize  = 18
	ChipSize     = 16
	HintSize     = 14
	PagerSize    = 12

	// Decorative circles
	Circle1Radius = 150
	Circle2Radius = 200
	CircleOpacity = 0.4

	// Tap click
	SoundEnabled    = true
	SoundSampleRate = 44100
	ClickFrequency  = 880.0
	ClickLength     = 60 * time.Millisecond
	ClickVolume     = 0.25
)

var (
	BackgroundLow  = color.RGBA{R: 0x1a, G: 0x0b, B: 0x2e, A: 0xff}
	BackgroundHigh = color.RGBA{R: 0x4e, G: 0x1b, B: 0x4b, A: 0xff}

	CircleViolet = color.RGBA{R: 0x7c, G: 0x3a, B: 0xed, A: 0xff}
	CirclePink   = color.RGBA{R: 0xec, G: 0x48, B: 0x99, A: 0xff}

	TitleColor = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	SubColor   = color.RGBA{R: 0xa5, G: 0xb4, B: 0xfc, A: 0xff}
	BodyColor  = color.RGBA{R: 0xe0, G: 0xe7, B: 0xff, A: 0xff}

	// Translucent colours are straight alpha.
	CardFill   = color.NRGBA{R: 52, G: 0, B: 74, A: 212}
	CardStroke = color.NRGBA{R: 255, G: 255, B: 255, A: 51}
	CardShadow = color.NRGBA{R: 0, G: 0, B: 0, A: 77}
	ChipFill   = color.NRGBA{R: 255, G: 255, B: 255, A: 38}
	ChipStroke = color.NRGBA{R: 255, G: 255, B: 255, A: 26}
	TextShadow = color.NRGBA{R: 0, G: 0, B: 0, A: 77}
	HintColor  = color.NRGBA{R: 255, G: 255, B: 255, A: 128}
	PagerColor = color.NRGBA{R: 255, G: 255, B: 255, A: 90}
)
