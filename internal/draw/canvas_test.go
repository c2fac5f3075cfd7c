package draw

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFit(t *testing.T) {
	cols, rows, offCol, offRow := Fit(80, 24, 480, 640)
	assert.Equal(t, 36, cols)
	assert.Equal(t, 24, rows)
	assert.Equal(t, 22, offCol)
	assert.Equal(t, 0, offRow)

	// A tall terminal is limited by its width.
	cols, rows, offCol, offRow = Fit(30, 100, 480, 640)
	assert.Equal(t, 30, cols)
	assert.Equal(t, 20, rows)
	assert.Equal(t, 0, offCol)
	assert.Equal(t, 40, offRow)

	cols, rows, _, _ = Fit(0, 24, 480, 640)
	assert.Zero(t, cols)
	assert.Zero(t, rows)
}

func TestCanvasScaling(t *testing.T) {
	c := NewCanvas(48, 32, 480, 640)

	c.SetFloat(240, 320)

	assert.True(t, c.pixel(24, 32))
	col, row := c.ToTerminal(240, 320)
	assert.Equal(t, 25, col)
	assert.Equal(t, 17, row)
}

func TestSetOutsideIsIgnored(t *testing.T) {
	c := NewCanvas(10, 10, 10, 20)

	c.SetFloat(-5, 3)
	c.SetFloat(3, 100)

	assert.NotContains(t, c.pixels, true)
}

func TestFillCircle(t *testing.T) {
	c := NewCanvas(20, 10, 20, 20)

	c.FillCircle(10, 10, 3)

	assert.True(t, c.pixel(10, 10))
	assert.True(t, c.pixel(8, 10))
	assert.False(t, c.pixel(14, 10))
	assert.False(t, c.pixel(10, 15))
}

func TestFillCircleTiny(t *testing.T) {
	c := NewCanvas(20, 10, 480, 640)

	c.FillCircle(240, 320, 0.5)

	assert.True(t, c.pixel(10, 10))
}

func TestFillRect(t *testing.T) {
	c := NewCanvas(10, 5, 10, 10)

	c.FillRect(2, 2, 4, 3)

	assert.True(t, c.pixel(2, 2))
	assert.True(t, c.pixel(3, 2))
	assert.False(t, c.pixel(4, 2))
	assert.False(t, c.pixel(2, 3))
}

func TestDrawPolygonFilled(t *testing.T) {
	c := NewCanvas(20, 10, 20, 20)

	c.DrawPolygon([]Point{{2, 2}, {12, 2}, {12, 12}, {2, 12}}, true)

	assert.True(t, c.pixel(7, 7), "interior")
	assert.True(t, c.pixel(2, 2), "corner")
	assert.False(t, c.pixel(15, 7))
}

func TestRenderRuns(t *testing.T) {
	var out bytes.Buffer
	cw := NewChunkWriter(&out, 0, 0)
	c := NewCanvas(4, 2, 4, 4)
	c.setPixel(0, 0)
	c.setPixel(0, 1)
	c.setPixel(1, 0)
	c.setPixel(3, 3)

	c.Render(cw)
	require.NoError(t, cw.Flush())

	assert.Equal(t, "\033[1;1H█▀\033[2;4H▄", out.String())
}

func TestRenderAppliesOffset(t *testing.T) {
	var out bytes.Buffer
	cw := NewChunkWriter(&out, 5, 2)
	c := NewCanvas(2, 1, 2, 2)
	c.setPixel(1, 1)

	c.Render(cw)
	require.NoError(t, cw.Flush())

	assert.Equal(t, "\033[3;7H▄", out.String())
}

func TestClear(t *testing.T) {
	c := NewCanvas(4, 2, 4, 4)
	c.FillRect(0, 0, 4, 4)

	c.Clear()

	assert.NotContains(t, c.pixels, true)
}

func TestRenderBorder(t *testing.T) {
	var out bytes.Buffer
	cw := NewChunkWriter(&out, 1, 1)
	c := NewCanvas(3, 1, 3, 2)

	c.RenderBorder(cw, 1, 1)
	require.NoError(t, cw.Flush())

	s := out.String()
	assert.Contains(t, s, "\033[1;1H┌───┐")
	assert.Contains(t, s, "\033[3;1H└───┘")
	assert.Contains(t, s, "\033[2;5H│")
}

func TestChunkWriterFlushesEverything(t *testing.T) {
	var out bytes.Buffer
	cw := NewChunkWriter(&out, 0, 0)
	big := strings.Repeat("x", maxChunkSize*3+17)

	cw.WriteString(big)
	require.Equal(t, len(big), cw.Len())
	require.NoError(t, cw.Flush())

	assert.Equal(t, big, out.String())
	assert.Zero(t, cw.Len())
}
