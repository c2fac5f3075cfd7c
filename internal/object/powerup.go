package object

import "github.com/tomz197/spacedodger/internal/physics"

// PowerUpKind selects the effect of a pickup.
type PowerUpKind int

const (
	PowerUpRapid  PowerUpKind = iota // Shorter fire cooldown
	PowerUpShield                    // Absorbs one hit
	PowerUpSpread                    // Three bullets per shot
)

var powerUpKinds = [...]PowerUpKind{PowerUpRapid, PowerUpShield, PowerUpSpread}

func (k PowerUpKind) String() string {
	switch k {
	case PowerUpRapid:
		return "rapid"
	case PowerUpShield:
		return "shield"
	case PowerUpSpread:
		return "spread"
	default:
		return "unknown"
	}
}

// Power-up tuning.
const (
	PowerUpRadius    = 10.0
	PowerUpFallSpeed = 90.0
	PowerUpDuration  = 8.0 // Seconds an effect lasts
)

// PowerUp is a falling pickup dropped by a destroyed enemy.
type PowerUp struct {
	X, Y   float64
	Kind   PowerUpKind
	Radius float64
}

// NewPowerUp drops a pickup of a random kind at (x, y).
func NewPowerUp(x, y float64, rng Rand) *PowerUp {
	return &PowerUp{
		X:      x,
		Y:      y,
		Kind:   powerUpKinds[rng.Intn(len(powerUpKinds))],
		Radius: PowerUpRadius,
	}
}

// Advance drops the pickup.
func (p *PowerUp) Advance(dt float64) {
	p.Y += PowerUpFallSpeed * dt
}

// OffScreen reports whether the pickup fell past the bottom edge.
func (p *PowerUp) OffScreen(s Screen) bool {
	return p.Y-p.Radius > s.Height
}

// Reaches reports whether the player ship is close enough to collect it.
func (p *PowerUp) Reaches(pl *Player) bool {
	return physics.PointInCircle(p.X, p.Y, pl.X, pl.Y, p.Radius+PlayerWidth/2)
}
