// Package draw renders to ANSI terminals with half-block characters.
package draw

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// Point represents a 2D coordinate.
type Point struct {
	X, Y float64
}

// Block characters for drawing.
const (
	BlockFull      = '█'
	BlockEmpty     = ' '
	BlockUpperHalf = '▀'
	BlockLowerHalf = '▄'
)

// ClearScreen clears the terminal and moves cursor to top-left.
func ClearScreen(w io.Writer) {
	fmt.Fprint(w, "\033[H\033[2J")
}

// HideCursor hides the terminal cursor.
func HideCursor(w io.Writer) {
	fmt.Fprint(w, "\033[?25l")
}

// ShowCursor shows the terminal cursor.
func ShowCursor(w io.Writer) {
	fmt.Fprint(w, "\033[?25h")
}

// TermSizeFunc is a function that returns the terminal dimensions.
type TermSizeFunc func() (width, height int, err error)

// DefaultTermSizeFunc returns terminal size from os.Stdout.
var DefaultTermSizeFunc TermSizeFunc = func() (int, int, error) {
	return term.GetSize(int(os.Stdout.Fd()))
}

// Fit returns the largest cols x rows area with the aspect ratio of the
// logical playfield that fits the terminal, and the 0-based offsets that
// center it. Each row holds two sub-pixels.
func Fit(termCols, termRows int, logicalWidth, logicalHeight float64) (cols, rows, offCol, offRow int) {
	if termCols <= 0 || termRows <= 0 || logicalWidth <= 0 || logicalHeight <= 0 {
		return 0, 0, 0, 0
	}
	aspect := logicalWidth / logicalHeight

	cols = termCols
	rows = int(float64(cols) / aspect / 2)
	if rows > termRows {
		rows = termRows
		cols = int(float64(rows*2) * aspect)
	}
	cols = max(cols, 1)
	rows = max(rows, 1)
	return cols, rows, (termCols - cols) / 2, (termRows - rows) / 2
}
