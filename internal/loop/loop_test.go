package loop

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomz197/spacedodger/internal/game"
	"github.com/tomz197/spacedodger/internal/input"
)

func fixedSize(cols, rows int) func() (int, int, error) {
	return func() (int, int, error) { return cols, rows, nil }
}

func testOptions() Options {
	return Options{
		TermSizeFunc: fixedSize(80, 24),
		Logger:       log.New(io.Discard),
		Rand:         rand.New(rand.NewSource(1)),
		FrameTime:    time.Millisecond,
	}
}

func TestRunQuitsOnKey(t *testing.T) {
	var out bytes.Buffer

	err := Run(context.Background(), bufio.NewReader(strings.NewReader("q")), &out, testOptions())

	require.NoError(t, err)
	s := out.String()
	assert.True(t, strings.HasPrefix(s, "\033[?25l"), "cursor hidden first")
	assert.True(t, strings.HasSuffix(s, "\033[?25h"), "cursor restored last")
}

func TestRunStopsOnClosedInput(t *testing.T) {
	done := make(chan error, 1)
	go func() {
		done <- Run(context.Background(), bufio.NewReader(strings.NewReader("")), io.Discard, testOptions())
	}()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after the input closed")
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		done <- Run(ctx, bufio.NewReader(pr), io.Discard, testOptions())
	}()
	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestStepQuit(t *testing.T) {
	s := newSession(io.Discard, testOptions())

	assert.True(t, s.step(time.Now(), frameDt, input.Input{}))
	assert.False(t, s.step(time.Now(), frameDt, input.Input{Quit: true, Pressed: []byte("q")}))
}

func TestStepRestart(t *testing.T) {
	s := newSession(io.Discard, testOptions())
	for range 30 {
		s.step(time.Now(), frameDt, input.Input{Fire: true})
	}
	require.NotEmpty(t, s.frame.Bullets)

	s.step(time.Now(), frameDt, input.Input{Restart: true, Pressed: []byte("r")})

	assert.Equal(t, game.StatePlaying, s.frame.State)
	assert.InDelta(t, frameDt, s.frame.Elapsed, 1e-9)
	assert.Empty(t, s.frame.Bullets)
}

func TestStepIdleTimeout(t *testing.T) {
	opts := testOptions()
	opts.IdleTimeout = time.Minute
	s := newSession(io.Discard, opts)
	start := s.lastInput

	assert.True(t, s.step(start.Add(30*time.Second), frameDt, input.Input{}))
	assert.False(t, s.idle)

	assert.True(t, s.step(start.Add(50*time.Second), frameDt, input.Input{}))
	assert.True(t, s.idle, "warned before the disconnect")

	assert.True(t, s.step(start.Add(55*time.Second), frameDt, input.Input{Pressed: []byte("a"), Left: true}))
	assert.False(t, s.idle, "a key press resets the timer")

	assert.False(t, s.step(start.Add(2*time.Minute), frameDt, input.Input{}))
}

func TestStepSpawnsExplosions(t *testing.T) {
	s := newSession(io.Discard, testOptions())

	s.spawnExplosions([]game.Hit{{X: 100, Y: 100, Radius: 12}, {X: 240, Y: 576, Player: true}})

	assert.Len(t, s.particles, enemyExplosionParticles+3+playerExplosionParticles)

	for range 200 {
		s.updateParticles(frameDt)
	}
	assert.Empty(t, s.particles)
}

func TestDrawFrameHUD(t *testing.T) {
	var out bytes.Buffer
	s := newSession(&out, testOptions())
	s.step(time.Now(), frameDt, input.Input{})

	require.NoError(t, s.drawFrame())

	assert.Contains(t, out.String(), "Score: 0")
	assert.Contains(t, out.String(), "Best: 0")
	assert.NotContains(t, out.String(), "GAME OVER")
}

func TestDrawFrameGameOver(t *testing.T) {
	var out bytes.Buffer
	s := newSession(&out, testOptions())
	s.frame.GameOver = true
	s.frame.Score = 42
	s.frame.HighScore = 42

	require.NoError(t, s.drawFrame())

	assert.Contains(t, out.String(), "GAME OVER")
	assert.Contains(t, out.String(), "Score: 42")
	assert.Contains(t, out.String(), "New best!")
}

func TestDrawFrameTinyTerminal(t *testing.T) {
	opts := testOptions()
	opts.TermSizeFunc = fixedSize(0, 0)
	s := newSession(io.Discard, opts)

	assert.NoError(t, s.drawFrame())
}

const frameDt = 1.0 / 60
