package main

import (
	"errors"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/portfolio-slides/internal/config"
	"github.com/iburimskiy/portfolio-slides/internal/game"
)

func main() {
	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := run(); err != nil {
		fatal(err)
	}
}

func run() error {
	g, err := game.New(game.Options{Sound: config.SoundEnabled})
	if err != nil {
		return err
	}
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

// fatal reports err in a native dialog as well as the log, then exits.
func fatal(err error) {
	if derr := zenity.Error(err.Error(), zenity.Title(config.WindowTitle), zenity.ErrorIcon); derr != nil {
		log.Printf("error dialog: %v", derr)
	}
	log.Fatalf("portfolio: %v", err)
}
