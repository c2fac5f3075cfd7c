package object

const (
	BulletSpeed  = 480.0
	BulletWidth  = 4.0
	BulletHeight = 10.0
)

// Bullet is a shot fired by the player. (X, Y) is the bottom center; the
// bullet occupies BulletHeight above that point.
type Bullet struct {
	X, Y float64
	VY   float64
}

// NewBullet creates an upward bullet at (x, y).
func NewBullet(x, y float64) *Bullet {
	return &Bullet{X: x, Y: y, VY: -BulletSpeed}
}

// Advance moves the bullet. Bullets ignore the difficulty ramp.
func (b *Bullet) Advance(dt float64) {
	b.Y += b.VY * dt
}

// OffScreen reports whether the bullet has fully left the top edge.
func (b *Bullet) OffScreen() bool {
	return b.Y+BulletHeight < 0
}

// EnemyBullet is a round shot fired by an enemy or the boss.
type EnemyBullet struct {
	X, Y   float64
	VX, VY float64
	Radius float64
}

// enemyBulletMargin is how far outside the side walls a shot survives.
const enemyBulletMargin = 20.0

// Advance moves the shot along its velocity.
func (b *EnemyBullet) Advance(dt float64) {
	b.X += b.VX * dt
	b.Y += b.VY * dt
}

// OffScreen reports whether the shot left the bottom or drifted past a wall.
func (b *EnemyBullet) OffScreen(s Screen) bool {
	return b.Y-b.Radius > s.Height || b.X < -enemyBulletMargin || b.X > s.Width+enemyBulletMargin
}
