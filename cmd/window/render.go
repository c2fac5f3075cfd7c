package main

import (
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/bitmapfont/v3"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/tomz197/spacedodger/internal/game"
	"github.com/tomz197/spacedodger/internal/object"
)

var (
	colorBackground  = color.RGBA{5, 8, 20, 255}
	colorPlayer      = color.RGBA{94, 234, 212, 255}
	colorShield      = color.RGBA{120, 200, 255, 255}
	colorBullet      = color.RGBA{255, 240, 160, 255}
	colorEnemy       = color.RGBA{196, 182, 166, 255}
	colorEnemyBullet = color.RGBA{255, 120, 120, 255}
	colorPowerUp     = color.RGBA{130, 200, 255, 255}
	colorBoss        = color.RGBA{220, 100, 100, 255}
	colorText        = color.RGBA{220, 220, 220, 255}
	colorHUD         = color.RGBA{180, 180, 180, 255}
	colorEffect      = color.RGBA{200, 240, 200, 255}
	colorOverlay     = color.RGBA{0, 0, 0, 180}

	fontFace = text.NewGoXFace(bitmapfont.Face)
)

const starCount = 60

// Draw renders the last frame.
func (w *window) Draw(screen *ebiten.Image) {
	f := &w.frame
	screen.Fill(colorBackground)
	drawStars(screen, f.Elapsed)

	for _, b := range f.Bullets {
		vector.DrawFilledRect(screen, float32(b.X-object.BulletWidth/2), float32(b.Y-object.BulletHeight),
			object.BulletWidth, object.BulletHeight, colorBullet, false)
	}
	for _, b := range f.EnemyBullets {
		vector.DrawFilledCircle(screen, float32(b.X), float32(b.Y), float32(b.Radius), colorEnemyBullet, true)
	}
	for _, e := range f.Enemies {
		drawEnemy(screen, e.X, e.Y, e.Radius, tint(colorEnemy, e.Radius))
	}
	for _, p := range f.PowerUps {
		vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), float32(p.Radius), colorPowerUp, true)
		drawText(screen, p.Kind.String()[:1], p.X-3, p.Y-6, color.Black)
	}
	if f.Boss != nil {
		drawEnemy(screen, f.Boss.X, f.Boss.Y, f.Boss.Radius, colorBoss)
	}
	if !f.GameOver {
		drawPlayer(screen, &f.Player, f.Effects.Shield > 0)
	}
	for _, p := range w.particles {
		if p.Visible() {
			vector.DrawFilledRect(screen, float32(p.X-1), float32(p.Y-1), 2, 2, colorText, false)
		}
	}

	drawHUD(screen, f)
	if f.GameOver {
		drawGameOver(screen, f)
	}
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("TPS: %0.0f", ebiten.ActualTPS()), game.ScreenWidth-60, game.ScreenHeight-16)
}

// drawStars scrolls a fixed pattern of dots with the clock.
func drawStars(screen *ebiten.Image, elapsed float64) {
	for i := range starCount {
		x := (i * 37) % game.ScreenWidth
		y := (i*61 + int(elapsed*10)) % game.ScreenHeight
		size := float32(1)
		if i%7 == 0 {
			size = 2
		}
		shade := uint8(90 + (i%6)*20)
		vector.DrawFilledRect(screen, float32(x), float32(y), size, size, color.RGBA{shade, shade, shade, 255}, false)
	}
}

func drawPlayer(screen *ebiten.Image, p *object.Player, shielded bool) {
	x, y := float32(p.X), float32(p.Y)
	hw, hh := float32(object.PlayerWidth/2), float32(object.PlayerHeight/2)

	var path vector.Path
	path.MoveTo(x, y-hh)
	path.LineTo(x+hw, y+hh)
	path.LineTo(x-hw, y+hh)
	path.Close()
	fillPath(screen, &path, colorPlayer)

	if shielded {
		vector.StrokeCircle(screen, x, y, float32(object.PlayerWidth), 2, colorShield, true)
	}
}

// drawEnemy draws a round face with two ears.
func drawEnemy(screen *ebiten.Image, cx, cy, r float64, c color.RGBA) {
	x, y, rf := float32(cx), float32(cy), float32(r)
	vector.DrawFilledCircle(screen, x, y, rf, c, true)

	for _, side := range [...]float32{-1, 1} {
		var ear vector.Path
		ear.MoveTo(x+side*rf*0.8, y-rf*0.3)
		ear.LineTo(x+side*rf*0.6, y-rf*1.2)
		ear.LineTo(x+side*rf*0.2, y-rf*0.8)
		ear.Close()
		fillPath(screen, &ear, c)
	}

	eye := darken(c, 120)
	vector.DrawFilledCircle(screen, x-rf*0.35, y-rf*0.1, max(rf*0.12, 1), eye, true)
	vector.DrawFilledCircle(screen, x+rf*0.35, y-rf*0.1, max(rf*0.12, 1), eye, true)
}

func fillPath(screen *ebiten.Image, path *vector.Path, c color.RGBA) {
	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = float32(c.R) / 255
		vs[i].ColorG = float32(c.G) / 255
		vs[i].ColorB = float32(c.B) / 255
		vs[i].ColorA = float32(c.A) / 255
	}
	screen.DrawTriangles(vs, is, whitePixel, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

// whitePixel is the source texture for solid triangles. Sampling its center
// avoids bleeding from the image edge.
var whitePixel = func() *ebiten.Image {
	img := ebiten.NewImage(3, 3)
	img.Fill(color.White)
	return img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
}()

func drawHUD(screen *ebiten.Image, f *game.Frame) {
	drawText(screen, fmt.Sprintf("Score: %d  High: %d", f.Score, f.HighScore), 8, 8, colorText)
	drawText(screen, fmt.Sprintf("Time: %ds", int(f.Elapsed)), 8, 30, colorHUD)

	y := 54.0
	for _, e := range []struct {
		name string
		left float64
	}{
		{"Rapid", f.Effects.Rapid},
		{"Spread", f.Effects.Spread},
		{"Shield", f.Effects.Shield},
	} {
		if e.left > 0 {
			drawText(screen, fmt.Sprintf("%s: %ds", e.name, int(e.left)), 8, y, colorEffect)
			y += 18
		}
	}

	if f.Boss != nil {
		hp := fmt.Sprintf("Boss HP: %d", f.Boss.HP)
		width, _ := text.Measure(hp, fontFace, 0)
		drawText(screen, hp, game.ScreenWidth-width-8, 8, color.RGBA{255, 200, 200, 255})
	}
}

func drawGameOver(screen *ebiten.Image, f *game.Frame) {
	vector.DrawFilledRect(screen, 0, 0, game.ScreenWidth, game.ScreenHeight, colorOverlay, false)
	drawCentered(screen, "GAME OVER", game.ScreenHeight/2-50, color.White)
	drawCentered(screen, fmt.Sprintf("Score: %d  Press R or click to restart", f.Score), game.ScreenHeight/2+10, colorText)
}

func drawCentered(screen *ebiten.Image, s string, y float64, c color.Color) {
	width, _ := text.Measure(s, fontFace, 0)
	drawText(screen, s, (game.ScreenWidth-width)/2, y, c)
}

func drawText(screen *ebiten.Image, s string, x, y float64, c color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	text.Draw(screen, s, fontFace, op)
}

// tint varies the enemy color slightly with its size.
func tint(c color.RGBA, r float64) color.RGBA {
	ri := int(r)
	scale := func(v uint8, mod int) uint8 {
		return uint8(int(float64(v)*(0.85+float64(ri%mod)*0.02)) % 255)
	}
	return color.RGBA{scale(c.R, 10), scale(c.G, 8), scale(c.B, 6), c.A}
}

func darken(c color.RGBA, by uint8) color.RGBA {
	sub := func(v uint8) uint8 {
		if v < by {
			return 0
		}
		return v - by
	}
	return color.RGBA{sub(c.R), sub(c.G), sub(c.B), c.A}
}
