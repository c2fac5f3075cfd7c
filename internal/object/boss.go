package object

import (
	"math"

	"github.com/tomz197/spacedodger/internal/physics"
)

// Boss tuning.
const (
	BossRadius        = 60.0
	BossHP            = 18
	BossSpeed         = 60.0 // Horizontal px/s once in position
	BossEntrySpeed    = 40.0 // Descent px/s
	BossHoverY        = 80.0
	BossSpawnY        = -80.0
	BossShootInterval = 1.0
	bossShotSpeed     = 200.0
	bossShotRadius    = 4.0
	bossMuzzleInset   = 6.0
)

// bossFan is the set of shot angles (radians from straight down).
var bossFan = [...]float64{-0.5, -0.25, 0, 0.25, 0.5}

// Boss is the large enemy that replaces regular spawns at high scores.
type Boss struct {
	X, Y          float64
	Radius        float64
	HP            int
	VX            float64
	ShootTimer    float64
	ShootInterval float64
}

// NewBoss places a boss above the top edge, centered.
func NewBoss(screen Screen) *Boss {
	return &Boss{
		X:             screen.CenterX(),
		Y:             BossSpawnY,
		Radius:        BossRadius,
		HP:            BossHP,
		VX:            BossSpeed,
		ShootInterval: BossShootInterval,
	}
}

// Advance moves the boss and returns true on ticks where it fires a fan.
// It descends until BossHoverY, then patrols between the walls.
func (b *Boss) Advance(ctx UpdateContext) bool {
	if b.Y < BossHoverY {
		b.Y += BossEntrySpeed * ctx.Dt
		return false
	}

	b.X += b.VX * ctx.Dt
	if b.X < b.Radius || b.X > ctx.Screen.Width-b.Radius {
		b.VX = -b.VX
	}

	b.ShootTimer += ctx.Dt
	if b.ShootTimer < b.ShootInterval {
		return false
	}
	b.ShootTimer = 0
	return true
}

// Fan returns one volley of shots spreading downward.
func (b *Boss) Fan() []*EnemyBullet {
	shots := make([]*EnemyBullet, 0, len(bossFan))
	for _, angle := range bossFan {
		shots = append(shots, &EnemyBullet{
			X:      b.X,
			Y:      b.Y + b.Radius - bossMuzzleInset,
			VX:     math.Sin(angle) * bossShotSpeed,
			VY:     math.Cos(angle) * bossShotSpeed,
			Radius: bossShotRadius,
		})
	}
	return shots
}

// Struck reports whether a bullet at (x, y) is inside the boss.
func (b *Boss) Struck(x, y float64) bool {
	return physics.PointInCircle(x, y, b.X, b.Y, b.Radius)
}

// Damage removes one hit point and reports whether the boss is defeated.
func (b *Boss) Damage() bool {
	b.HP--
	return b.HP <= 0
}
