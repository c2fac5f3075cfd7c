package main

import (
	"errors"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"

	"github.com/tomz197/spacedodger/internal/draw"
)

var errNoWindow = errors.New("client reported no window size")

// windowSize follows the PTY window-change requests of one session and serves
// them to the game loop.
type windowSize struct {
	logger *log.Logger

	mu          sync.RWMutex
	cols, rows  int
	resizeCount int
}

func newWindowSize(win ssh.Window, logger *log.Logger) *windowSize {
	return &windowSize{logger: logger, cols: win.Width, rows: win.Height}
}

// watch applies window changes until the session closes winCh.
func (w *windowSize) watch(winCh <-chan ssh.Window) {
	for win := range winCh {
		w.set(win.Width, win.Height)
	}
	w.logger.Debug("window watch ended", "resizes", w.resizes())
}

func (w *windowSize) set(cols, rows int) {
	w.mu.Lock()
	if cols == w.cols && rows == w.rows {
		w.mu.Unlock()
		return
	}
	from := [2]int{w.cols, w.rows}
	w.cols, w.rows = cols, rows
	w.resizeCount++
	w.mu.Unlock()

	w.logger.Debug("window resized", "from", from, "to", [2]int{cols, rows})
}

func (w *windowSize) resizes() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.resizeCount
}

// size reports the last known window. A zero size makes the loop keep its
// current layout.
func (w *windowSize) size() (int, int, error) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	if w.cols <= 0 || w.rows <= 0 {
		return 0, 0, errNoWindow
	}
	return w.cols, w.rows, nil
}

var _ draw.TermSizeFunc = (*windowSize)(nil).size
