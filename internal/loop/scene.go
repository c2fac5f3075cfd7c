package loop

import (
	"math"

	"github.com/tomz197/spacedodger/internal/draw"
	"github.com/tomz197/spacedodger/internal/game"
	"github.com/tomz197/spacedodger/internal/object"
)

const shieldRingSegments = 16

// drawFrame clears the terminal and draws the current frame.
func (s *session) drawFrame() error {
	draw.ClearScreen(s.cw)
	s.canvas.Clear()

	drawScene(s.canvas, &s.frame, s.particles)
	s.canvas.Render(s.cw)
	s.canvas.RenderBorder(s.cw, s.offCol, s.offRow)

	// UI overlay goes last so it sits on top
	s.drawUI()

	return s.cw.Flush()
}

// drawScene draws every entity of f in logical coordinates.
func drawScene(c *draw.Canvas, f *game.Frame, particles []*object.Particle) {
	for _, p := range f.PowerUps {
		drawPowerUp(c, p)
	}
	for _, e := range f.Enemies {
		c.FillCircle(e.X, e.Y, e.Radius)
	}
	if f.Boss != nil {
		drawBoss(c, f.Boss)
	}
	for _, b := range f.Bullets {
		c.FillRect(b.X-object.BulletWidth/2, b.Y-object.BulletHeight, b.X+object.BulletWidth/2, b.Y)
	}
	for _, b := range f.EnemyBullets {
		c.FillCircle(b.X, b.Y, b.Radius)
	}
	if !f.GameOver {
		drawPlayer(c, &f.Player, f.Effects.Shield > 0)
	}
	for _, p := range particles {
		if p.Visible() {
			c.SetFloat(p.X, p.Y)
		}
	}
}

// drawPlayer draws the ship as an upward triangle over its collision box.
func drawPlayer(c *draw.Canvas, p *object.Player, shielded bool) {
	left := p.X - object.PlayerWidth/2
	right := p.X + object.PlayerWidth/2
	top := p.Y - object.PlayerHeight/2
	bottom := p.Y + object.PlayerHeight/2

	c.DrawPolygon([]draw.Point{
		{X: p.X, Y: top},
		{X: right, Y: bottom},
		{X: left, Y: bottom},
	}, true)

	if shielded {
		drawRing(c, p.X, p.Y, object.PlayerWidth/2+8)
	}
}

// drawBoss draws a filled body inside a ring.
func drawBoss(c *draw.Canvas, b *object.Boss) {
	c.FillCircle(b.X, b.Y, b.Radius)
	drawRing(c, b.X, b.Y, b.Radius+6)
}

// drawPowerUp draws a diamond outline.
func drawPowerUp(c *draw.Canvas, p object.PowerUp) {
	r := p.Radius
	c.DrawPolygon([]draw.Point{
		{X: p.X, Y: p.Y - r},
		{X: p.X + r, Y: p.Y},
		{X: p.X, Y: p.Y + r},
		{X: p.X - r, Y: p.Y},
	}, false)
	c.SetFloat(p.X, p.Y)
}

func drawRing(c *draw.Canvas, cx, cy, r float64) {
	var pts [shieldRingSegments]draw.Point
	for i := range pts {
		a := 2 * math.Pi * float64(i) / shieldRingSegments
		pts[i] = draw.Point{X: cx + r*math.Cos(a), Y: cy + r*math.Sin(a)}
	}
	c.DrawPolygon(pts[:], false)
}
