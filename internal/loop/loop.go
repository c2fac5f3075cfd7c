// Package loop runs a game session on an ANSI terminal: it samples input,
// ticks the simulation and draws each frame.
package loop

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/spacedodger/internal/draw"
	"github.com/tomz197/spacedodger/internal/game"
	"github.com/tomz197/spacedodger/internal/input"
	"github.com/tomz197/spacedodger/internal/object"
)

// Options configures a session.
type Options struct {
	TermSizeFunc draw.TermSizeFunc // Defaults to the size of os.Stdout
	Logger       *log.Logger       // Defaults to log.Default()
	Config       game.Config       // Zero value means game.DefaultConfig()
	Rand         object.Rand       // Game randomness; nil seeds from the clock
	IdleTimeout  time.Duration     // Quit after this long without a key press; 0 disables
	FrameTime    time.Duration     // Defaults to TargetFrameTime
}

// session holds the per-connection state of a running game.
type session struct {
	game   *game.Game
	frame  game.Frame
	stream *input.Stream
	logger *log.Logger
	extras game.Extras

	writer   io.Writer
	canvas   *draw.Canvas
	cw       *draw.ChunkWriter
	termSize draw.TermSizeFunc
	offCol   int
	offRow   int

	particles []*object.Particle
	fx        *rand.Rand // Cosmetic randomness, kept apart from the game's

	idleTimeout time.Duration
	lastInput   time.Time
	idle        bool
	wasOver     bool
	frameTime   time.Duration
}

// Run plays one session until the player quits, the input stream ends or ctx
// is cancelled.
func Run(ctx context.Context, r *bufio.Reader, w io.Writer, opts Options) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	s := newSession(w, opts)
	s.stream = input.StartStream(ctx, r)
	return s.run(ctx)
}

func newSession(w io.Writer, opts Options) *session {
	termSize := opts.TermSizeFunc
	if termSize == nil {
		termSize = draw.DefaultTermSizeFunc
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	cfg := opts.Config
	if cfg.Screen.Width == 0 || cfg.Screen.Height == 0 {
		cfg = game.DefaultConfig().WithExtras(cfg.Extras)
	}
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	frameTime := opts.FrameTime
	if frameTime <= 0 {
		frameTime = TargetFrameTime
	}

	g := game.New(cfg, rng)
	s := &session{
		game:        g,
		frame:       g.Frame(),
		logger:      logger,
		extras:      cfg.Extras,
		writer:      w,
		canvas:      draw.NewCanvas(0, 0, cfg.Screen.Width, cfg.Screen.Height),
		cw:          draw.NewChunkWriter(w, 0, 0),
		termSize:    termSize,
		fx:          rand.New(rand.NewSource(time.Now().UnixNano())),
		idleTimeout: opts.IdleTimeout,
		lastInput:   time.Now(),
		frameTime:   frameTime,
	}
	s.updateScreen()
	return s
}

func (s *session) run(ctx context.Context) error {
	draw.HideCursor(s.writer)
	defer draw.ShowCursor(s.writer)
	draw.ClearScreen(s.writer)

	s.logger.Info("session started",
		"enemy_fire", s.extras.EnemyFire,
		"power_ups", s.extras.PowerUps,
		"boss", s.extras.Boss,
	)

	lastTime := time.Now()
	for {
		frameStart := time.Now()
		dt := min(frameStart.Sub(lastTime).Seconds(), maxFrameDelta)
		lastTime = frameStart

		s.updateScreen()
		if !s.step(frameStart, dt, input.ReadInput(s.stream)) {
			break
		}
		if err := s.drawFrame(); err != nil {
			return fmt.Errorf("draw frame: %w", err)
		}

		wait := s.frameTime - time.Since(frameStart)
		select {
		case <-ctx.Done():
			s.logger.Info("session cancelled", "score", s.frame.Score, "best", s.frame.HighScore)
			draw.ClearScreen(s.writer)
			return nil
		case <-time.After(wait):
		}
	}

	s.logger.Info("session ended", "best", s.frame.HighScore)
	draw.ClearScreen(s.writer)
	return nil
}

// step applies one frame of input, ticks the game and updates the effects.
// It returns false once the session should end.
func (s *session) step(now time.Time, dt float64, in input.Input) bool {
	if len(in.Pressed) > 0 {
		s.lastInput = now
	}
	if in.Quit {
		s.game.Quit()
	}
	if s.idleTimeout > 0 {
		idleFor := now.Sub(s.lastInput)
		s.idle = idleFor > time.Duration(float64(s.idleTimeout)*idleWarnFraction)
		if idleFor > s.idleTimeout {
			s.logger.Info("disconnecting idle player", "idle", idleFor.Round(time.Second))
			s.game.Quit()
		}
	}
	if in.Restart {
		s.game.Restart()
		s.releaseParticles()
		s.wasOver = false
		s.logger.Debug("restarted")
	}

	s.frame = s.game.Tick(dt, game.Input{
		MoveLeft:  in.Left,
		MoveRight: in.Right,
		FireHeld:  in.Fire,
	})

	if s.frame.GameOver && !s.wasOver {
		s.logger.Info("game over",
			"score", s.frame.Score,
			"best", s.frame.HighScore,
			"elapsed", time.Duration(s.frame.Elapsed*float64(time.Second)).Round(time.Millisecond),
		)
	}
	s.wasOver = s.frame.GameOver

	s.spawnExplosions(s.frame.Hits)
	s.updateParticles(dt)
	return !s.frame.Quit
}

// updateScreen fits the canvas to the terminal. On size changes it clears the
// terminal to remove residue outside the new canvas area.
func (s *session) updateScreen() {
	termCols, termRows, err := s.termSize()
	if err != nil {
		return
	}
	cols, rows, offCol, offRow := draw.Fit(termCols, termRows, s.frame.Screen.Width, s.frame.Screen.Height)

	curCols, curRows := s.canvas.Size()
	if cols != curCols || rows != curRows || offCol != s.offCol || offRow != s.offRow {
		draw.ClearScreen(s.cw)
	}
	s.canvas.Resize(cols, rows)
	s.cw.SetOffset(offCol, offRow)
	s.offCol, s.offRow = offCol, offRow
}

func (s *session) spawnExplosions(hits []game.Hit) {
	for _, h := range hits {
		if h.Player {
			s.particles = append(s.particles, object.SpawnExplosion(h.X, h.Y,
				playerExplosionParticles, playerExplosionSpeed, playerExplosionLifetime, s.fx)...)
			continue
		}
		count := enemyExplosionParticles + int(h.Radius/4)
		s.particles = append(s.particles, object.SpawnExplosion(h.X, h.Y,
			count, enemyExplosionSpeed, enemyExplosionLifetime, s.fx)...)
	}
}

// updateParticles runs even in GameOver so the final explosion plays out.
func (s *session) updateParticles(dt float64) {
	kept := s.particles[:0]
	for _, p := range s.particles {
		if p.Update(dt) {
			p.Release()
			continue
		}
		kept = append(kept, p)
	}
	clear(s.particles[len(kept):])
	s.particles = kept
}

func (s *session) releaseParticles() {
	for _, p := range s.particles {
		p.Release()
	}
	clear(s.particles)
	s.particles = s.particles[:0]
}
