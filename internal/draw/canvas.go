package draw

import (
	"math"
	"slices"
	"strings"
)

// Canvas is a drawing buffer with 2x vertical resolution using half-block
// characters. Shapes are given in logical playfield coordinates and scaled to
// the terminal area the canvas covers.
type Canvas struct {
	cols    int    // Terminal columns covered
	rows    int    // Terminal rows covered
	subRows int    // rows * 2
	pixels  []bool // Flat slice: [y * cols + x]

	logicalWidth  float64
	logicalHeight float64
	scaleX        float64 // cols / logicalWidth
	scaleY        float64 // subRows / logicalHeight

	// Reusable buffers to reduce allocations
	scaledBuf       []Point
	intersectionBuf []float64
}

// NewCanvas creates a canvas covering cols x rows terminal cells that maps
// the logical playfield onto them.
func NewCanvas(cols, rows int, logicalWidth, logicalHeight float64) *Canvas {
	c := &Canvas{logicalWidth: logicalWidth, logicalHeight: logicalHeight}
	c.Resize(cols, rows)
	return c
}

// Resize updates the covered terminal area while keeping the logical size.
func (c *Canvas) Resize(cols, rows int) {
	cols = max(cols, 0)
	rows = max(rows, 0)
	if cols != c.cols || rows != c.rows || c.pixels == nil {
		c.cols = cols
		c.rows = rows
		c.subRows = rows * 2
		c.pixels = make([]bool, c.subRows*cols)
	}
	c.scaleX = float64(cols) / c.logicalWidth
	c.scaleY = float64(c.subRows) / c.logicalHeight
}

// Size returns the covered terminal columns and rows.
func (c *Canvas) Size() (cols, rows int) {
	return c.cols, c.rows
}

// Clear resets all pixels in the canvas.
func (c *Canvas) Clear() {
	clear(c.pixels)
}

// setPixel sets a pixel at sub-pixel coordinates, ignoring out-of-range ones.
func (c *Canvas) setPixel(x, y int) {
	if x >= 0 && x < c.cols && y >= 0 && y < c.subRows {
		c.pixels[y*c.cols+x] = true
	}
}

func (c *Canvas) pixel(x, y int) bool {
	return c.pixels[y*c.cols+x]
}

// toPixel scales a logical point to the nearest sub-pixel.
func (c *Canvas) toPixel(x, y float64) (int, int) {
	return int(math.Round(x * c.scaleX)), int(math.Round(y * c.scaleY))
}

// SetFloat sets the pixel nearest to a logical point.
func (c *Canvas) SetFloat(x, y float64) {
	c.setPixel(c.toPixel(x, y))
}

// DrawLine draws a line on the canvas using Bresenham's algorithm.
func (c *Canvas) DrawLine(p1, p2 Point) {
	x1, y1 := c.toPixel(p1.X, p1.Y)
	x2, y2 := c.toPixel(p2.X, p2.Y)

	dx := abs(x2 - x1)
	dy := abs(y2 - y1)
	sx := 1
	if x1 > x2 {
		sx = -1
	}
	sy := 1
	if y1 > y2 {
		sy = -1
	}

	err := dx - dy
	for {
		c.setPixel(x1, y1)
		if x1 == x2 && y1 == y2 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

// DrawPolygon draws a polygon outline, filling the interior when filled is set.
func (c *Canvas) DrawPolygon(points []Point, filled bool) {
	if len(points) < 3 {
		return
	}
	if filled {
		c.fillPolygon(points)
	}
	n := len(points)
	for i := 0; i < n; i++ {
		c.DrawLine(points[i], points[(i+1)%n])
	}
}

// fillPolygon fills a polygon with a scanline pass in pixel space.
func (c *Canvas) fillPolygon(points []Point) {
	c.scaledBuf = slices.Grow(c.scaledBuf[:0], len(points))
	scaled := c.scaledBuf[:len(points)]
	minY, maxY := math.Inf(1), math.Inf(-1)
	for i, p := range points {
		scaled[i] = Point{X: p.X * c.scaleX, Y: p.Y * c.scaleY}
		minY = min(minY, scaled[i].Y)
		maxY = max(maxY, scaled[i].Y)
	}

	for y := int(math.Floor(minY)); y <= int(math.Ceil(maxY)); y++ {
		scanY := float64(y) + 0.5 // Sample at pixel center

		xs := c.intersectionBuf[:0]
		for i := range scaled {
			p1 := scaled[i]
			p2 := scaled[(i+1)%len(scaled)]
			if (p1.Y <= scanY && p2.Y > scanY) || (p2.Y <= scanY && p1.Y > scanY) {
				t := (scanY - p1.Y) / (p2.Y - p1.Y)
				xs = append(xs, p1.X+t*(p2.X-p1.X))
			}
		}
		c.intersectionBuf = xs
		slices.Sort(xs)

		for i := 0; i+1 < len(xs); i += 2 {
			for x := int(math.Ceil(xs[i])); x <= int(math.Floor(xs[i+1])); x++ {
				c.setPixel(x, y)
			}
		}
	}
}

// FillCircle fills the circle at (cx, cy). Circles smaller than a pixel
// still mark their center.
func (c *Canvas) FillCircle(cx, cy, r float64) {
	c.SetFloat(cx, cy)

	px, py := cx*c.scaleX, cy*c.scaleY
	rx, ry := r*c.scaleX, r*c.scaleY
	if rx <= 0 || ry <= 0 {
		return
	}
	for y := int(math.Floor(py - ry)); y <= int(math.Ceil(py+ry)); y++ {
		dy := (float64(y) + 0.5 - py) / ry
		if dy*dy > 1 {
			continue
		}
		for x := int(math.Floor(px - rx)); x <= int(math.Ceil(px+rx)); x++ {
			dx := (float64(x) + 0.5 - px) / rx
			if dx*dx+dy*dy <= 1 {
				c.setPixel(x, y)
			}
		}
	}
}

// FillRect fills the logical rectangle [left, right) x [top, bottom).
func (c *Canvas) FillRect(left, top, right, bottom float64) {
	x0 := int(math.Floor(left * c.scaleX))
	x1 := max(int(math.Ceil(right*c.scaleX)), x0+1)
	y0 := int(math.Floor(top * c.scaleY))
	y1 := max(int(math.Ceil(bottom*c.scaleY)), y0+1)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			c.setPixel(x, y)
		}
	}
}

// Render writes the set cells to cw. Consecutive cells on a row share one
// cursor move; empty cells are skipped.
func (c *Canvas) Render(cw *ChunkWriter) {
	for row := 0; row < c.rows; row++ {
		run := false
		for col := 0; col < c.cols; col++ {
			top := c.pixel(col, row*2)
			bottom := c.pixel(col, row*2+1)

			var ch rune
			switch {
			case top && bottom:
				ch = BlockFull
			case top:
				ch = BlockUpperHalf
			case bottom:
				ch = BlockLowerHalf
			default:
				run = false
				continue
			}

			if !run {
				cw.MoveCursor(col+1, row+1)
				run = true
			}
			cw.WriteRune(ch)
		}
	}
}

// RenderBorder frames the canvas when the offsets leave room around it.
// offCol and offRow are the 0-based offsets the ChunkWriter applies.
func (c *Canvas) RenderBorder(cw *ChunkWriter, offCol, offRow int) {
	hasH := offCol >= 1 // Room for left/right vertical bars
	hasV := offRow >= 1 // Room for top/bottom horizontal bars
	if !hasH && !hasV {
		return
	}

	// Positions relative to the canvas origin at (1, 1)
	left, right := 0, c.cols+1
	top, bottom := 0, c.rows+1
	line := strings.Repeat("─", c.cols)

	if hasV {
		if hasH {
			cw.WriteAt(left, top, "┌"+line+"┐")
			cw.WriteAt(left, bottom, "└"+line+"┘")
		} else {
			cw.WriteAt(1, top, line)
			cw.WriteAt(1, bottom, line)
		}
	}
	if hasH {
		for row := 1; row <= c.rows; row++ {
			cw.WriteAt(left, row, "│")
			cw.WriteAt(right, row, "│")
		}
	}
}

// ToTerminal converts a logical point to a 1-based canvas cell (col, row),
// for placing text overlays next to drawn objects.
func (c *Canvas) ToTerminal(x, y float64) (col, row int) {
	px, py := c.toPixel(x, y)
	return px + 1, py/2 + 1
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
