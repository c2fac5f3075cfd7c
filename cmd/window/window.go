package main

import (
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/tomz197/spacedodger/internal/game"
	"github.com/tomz197/spacedodger/internal/object"
)

// window adapts a game session to ebiten's Update/Draw/Layout callbacks.
type window struct {
	game      *game.Game
	frame     game.Frame
	particles []*object.Particle
	fx        *rand.Rand
	logger    *log.Logger
	wasOver   bool
}

func newWindow(g *game.Game, logger *log.Logger) *window {
	return &window{
		game:   g,
		frame:  g.Frame(),
		fx:     rand.New(rand.NewSource(time.Now().UnixNano())),
		logger: logger,
	}
}

// Update advances the game by one ebiten tick.
func (w *window) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		w.game.Quit()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) ||
		(w.frame.GameOver && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)) {
		w.restart()
	}

	dt := 1.0 / float64(ebiten.TPS())
	w.frame = w.game.Tick(dt, game.Input{
		MoveLeft:  ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		MoveRight: ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		FireHeld:  ebiten.IsKeyPressed(ebiten.KeySpace),
	})
	if w.frame.Quit {
		return ebiten.Termination
	}

	if w.frame.GameOver && !w.wasOver {
		w.logger.Info("game over", "score", w.frame.Score, "best", w.frame.HighScore)
	}
	w.wasOver = w.frame.GameOver

	for _, h := range w.frame.Hits {
		count, speed := 14+int(h.Radius/4), 90.0
		if h.Player {
			count, speed = 40, 160
		}
		w.particles = append(w.particles, object.SpawnExplosion(h.X, h.Y, count, speed, 0.8, w.fx)...)
	}
	kept := w.particles[:0]
	for _, p := range w.particles {
		if p.Update(dt) {
			p.Release()
			continue
		}
		kept = append(kept, p)
	}
	clear(w.particles[len(kept):])
	w.particles = kept
	return nil
}

func (w *window) restart() {
	w.game.Restart()
	for _, p := range w.particles {
		p.Release()
	}
	w.particles = w.particles[:0]
	w.wasOver = false
}

// Layout keeps the logical playfield size; ebiten scales it to the window.
func (w *window) Layout(outsideWidth, outsideHeight int) (int, int) {
	return game.ScreenWidth, game.ScreenHeight
}
