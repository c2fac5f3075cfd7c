package object

import (
	"math"

	"github.com/tomz197/spacedodger/internal/physics"
)

// Pattern identifies an enemy's horizontal motion rule.
type Pattern int

const (
	PatternStraight Pattern = iota
	PatternSine
	PatternZigzag
)

func (p Pattern) String() string {
	switch p {
	case PatternStraight:
		return "straight"
	case PatternSine:
		return "sine"
	case PatternZigzag:
		return "zigzag"
	default:
		return "unknown"
	}
}

// Motion is the variant-specific part of an enemy. It is one of Straight,
// *Sine or *Zigzag.
type Motion interface {
	Pattern() Pattern
	clone() Motion
}

// Straight enemies only fall.
type Straight struct{}

// Sine enemies sway around BaseX.
type Sine struct {
	Amplitude float64 // px
	Frequency float64 // Hz
	BaseX     float64
}

// Zigzag enemies drift sideways and flip direction on a timer or a wall.
type Zigzag struct {
	HSpeed      float64 // px/s
	Dir         float64 // -1 or +1
	SwitchTime  float64 // Seconds between timed flips
	SinceSwitch float64
}

func (Straight) Pattern() Pattern { return PatternStraight }
func (*Sine) Pattern() Pattern { return PatternSine }
func (*Zigzag) Pattern() Pattern { return PatternZigzag }

func (m Straight) clone() Motion { return m }

func (m *Sine) clone() Motion {
	c := *m
	return &c
}

func (m *Zigzag) clone() Motion {
	c := *m
	return &c
}

// Enemy is a descending circle.
type Enemy struct {
	X, Y      float64 // Center
	Radius    float64
	Speed     float64 // Fall speed before the difficulty ramp
	Motion    Motion
	SpawnTime float64 // Simulation clock at creation

	CanShoot      bool
	ShootTimer    float64
	ShootInterval float64
}

// Pattern returns the enemy's motion variant.
func (e *Enemy) Pattern() Pattern {
	return e.Motion.Pattern()
}

// Clone returns a deep copy, including the motion parameters.
func (e *Enemy) Clone() Enemy {
	c := *e
	if e.Motion != nil {
		c.Motion = e.Motion.clone()
	}
	return c
}

// Advance moves the enemy one tick according to its motion variant.
func (e *Enemy) Advance(ctx UpdateContext) {
	e.Y += e.Speed * ctx.Difficulty * ctx.Dt

	switch m := e.Motion.(type) {
	case Straight:
	case *Sine:
		t := ctx.Elapsed - e.SpawnTime
		e.X = m.BaseX + m.Amplitude*math.Sin(2*math.Pi*m.Frequency*t)
		// Clamping flattens the wave near the walls.
		e.X = physics.Clamp(e.X, e.Radius, ctx.Screen.Width-e.Radius)
	case *Zigzag:
		m.SinceSwitch += ctx.Dt
		if m.SinceSwitch >= m.SwitchTime {
			m.SinceSwitch = 0
			m.Dir = -m.Dir
		}
		e.X += m.Dir * m.HSpeed * ctx.Dt
		if e.X < e.Radius {
			e.X = e.Radius
			m.Dir = -m.Dir
			m.SinceSwitch = 0
		}
		if e.X > ctx.Screen.Width-e.Radius {
			e.X = ctx.Screen.Width - e.Radius
			m.Dir = -m.Dir
			m.SinceSwitch = 0
		}
	}
}

// OffScreen reports whether the enemy has fully passed the bottom edge.
func (e *Enemy) OffScreen(s Screen) bool {
	return e.Y-e.Radius > s.Height
}

// Points returns the score for destroying the enemy.
func (e *Enemy) Points() int {
	return 10 + int(math.Floor(e.Radius))
}

// Bounds returns the square spanned by the enemy's radius.
func (e *Enemy) Bounds() physics.Rect {
	return physics.SquareAround(e.X, e.Y, e.Radius)
}

// Enemy shot tuning.
const (
	enemyShotSpeed      = 180.0
	enemyShotSpreadSlow = -30.0
	enemyShotSpreadFast = 60.0
	enemyShotRadius     = 5.0
)

// Shoot advances the enemy's shot timer and, when it fires, returns a shot
// aimed at (tx, ty).
func (e *Enemy) Shoot(dt, tx, ty float64, rng Rand) (*EnemyBullet, bool) {
	if !e.CanShoot {
		return nil, false
	}
	e.ShootTimer += dt
	if e.ShootTimer < e.ShootInterval {
		return nil, false
	}
	e.ShootTimer = 0

	dx := tx - e.X
	dy := ty - e.Y
	dist := math.Hypot(dx, dy)
	if dist == 0 {
		dist = 1
	}
	speed := enemyShotSpeed + uniform(rng, enemyShotSpreadSlow, enemyShotSpreadFast)
	return &EnemyBullet{
		X:      e.X,
		Y:      e.Y + e.Radius,
		VX:     dx / dist * speed,
		VY:     dy / dist * speed,
		Radius: enemyShotRadius,
	}, true
}
