package loop

import "time"

// Frame timing
const (
	TargetFPS       = 60
	TargetFrameTime = time.Second / TargetFPS
	maxFrameDelta   = 0.1 // Seconds; longer stalls are replayed as one short tick
)

// Explosions
const (
	enemyExplosionParticles  = 14
	enemyExplosionSpeed      = 90.0
	enemyExplosionLifetime   = 0.6
	playerExplosionParticles = 40
	playerExplosionSpeed     = 160.0
	playerExplosionLifetime  = 1.5
)

// Inactivity
const (
	idleWarnFraction = 0.75 // Share of the idle timeout before the warning shows
)
