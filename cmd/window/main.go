package main

import (
	"errors"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/tomz197/spacedodger/internal/config"
	"github.com/tomz197/spacedodger/internal/game"
)

func main() {
	host, err := config.LoadHost(0)
	if err != nil {
		log.Fatal("invalid configuration", "err", err)
	}
	logger := host.Logger(os.Stderr, "window")

	w := newWindow(game.New(host.GameConfig(), host.Rand()), logger)

	ebiten.SetWindowSize(game.ScreenWidth, game.ScreenHeight)
	ebiten.SetWindowTitle("Space Dodger")
	logger.Info("window opened", "extras", host.Extras)
	if err := ebiten.RunGame(w); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Fatal("window closed", "err", err)
	}
	logger.Info("window closed", "best", w.frame.HighScore)
}
