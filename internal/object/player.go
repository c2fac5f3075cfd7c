package object

import "github.com/tomz197/spacedodger/internal/physics"

// Player ship dimensions and handling.
const (
	PlayerWidth        = 36.0
	PlayerHeight       = 24.0
	PlayerSpeed        = 320.0 // px/s before the difficulty ramp
	PlayerBottomOffset = 64.0  // Distance of the ship center from the bottom edge
	PlayerFireCooldown = 0.22  // Seconds between shots
)

// Player is the ship at the bottom of the playfield. Only X moves.
type Player struct {
	X, Y     float64 // Center of the ship
	VX       float64 // Horizontal velocity of the last tick
	Cooldown float64 // Seconds until the next shot is allowed
}

// NewPlayer creates a ship centered horizontally on the screen.
func NewPlayer(screen Screen) *Player {
	return &Player{
		X: screen.CenterX(),
		Y: screen.Height - PlayerBottomOffset,
	}
}

// Advance integrates the ship's horizontal motion. Holding both directions
// cancels out.
func (p *Player) Advance(ctx UpdateContext, left, right bool) {
	dir := 0.0
	if left {
		dir--
	}
	if right {
		dir++
	}
	p.VX = dir * PlayerSpeed * ctx.Difficulty
	p.X += p.VX * ctx.Dt
	p.X = physics.Clamp(p.X, PlayerWidth/2, ctx.Screen.Width-PlayerWidth/2)
}

// DecayCooldown counts the fire cooldown down by dt, stopping at zero.
func (p *Player) DecayCooldown(dt float64) {
	p.Cooldown -= dt
	if p.Cooldown < 0 {
		p.Cooldown = 0
	}
}

// CanFire reports whether the cooldown has expired.
func (p *Player) CanFire() bool {
	return p.Cooldown <= 0
}

// Nose returns the point bullets leave the ship from.
func (p *Player) Nose() (float64, float64) {
	return p.X, p.Y - PlayerHeight/2
}

// Bounds returns the ship's collision rectangle.
func (p *Player) Bounds() physics.Rect {
	return physics.RectAround(p.X, p.Y, PlayerWidth, PlayerHeight)
}
