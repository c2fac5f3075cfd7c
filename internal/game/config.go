// Package game is the simulation core: it owns the clock, the entities, the
// score and the Playing/GameOver state machine. It performs no I/O.
package game

import "github.com/tomz197/spacedodger/internal/object"

// Playfield
const (
	ScreenWidth  = 480
	ScreenHeight = 640
)

// Difficulty
const (
	DifficultyDivisor = 60.0 // Seconds of play per +1 on the speed multiplier
)

// Extras tuning
const (
	PowerUpChance       = 0.04 // Drop chance per destroyed enemy
	BossAppearScore     = 300
	BossHitScore        = 15
	BossDefeatScore     = 200
	ShieldAbsorbScore   = 5
	RapidCooldownFactor = 0.4
	SurvivalScoreRate   = 5.0 // Points per second, scaled by difficulty
)

// spreadOffsets are the horizontal offsets of a spread volley.
var spreadOffsets = [...]float64{-8, 0, 8}

// Extras toggles the features layered on top of the classic rules.
type Extras struct {
	EnemyFire bool // Some enemies shoot at the player
	PowerUps  bool // Destroyed enemies may drop rapid/shield/spread pickups
	Boss      bool // A boss replaces regular spawns once the score is high enough
	Survival  bool // Staying alive earns points over time
}

// Config holds every tunable of a session.
type Config struct {
	Screen            object.Screen
	DifficultyDivisor float64
	Spawn             object.SpawnConfig
	Extras            Extras
	PowerUpChance     float64
	BossScore         int
}

// DefaultConfig returns the classic rules with every extra disabled.
func DefaultConfig() Config {
	return Config{
		Screen:            object.Screen{Width: ScreenWidth, Height: ScreenHeight},
		DifficultyDivisor: DifficultyDivisor,
		Spawn:             object.DefaultSpawnConfig(),
		PowerUpChance:     PowerUpChance,
		BossScore:         BossAppearScore,
	}
}

// WithExtras returns a copy of c with the extras set to e.
func (c Config) WithExtras(e Extras) Config {
	c.Extras = e
	c.Spawn.EnemyFire = e.EnemyFire
	return c
}

// AllExtras enables enemy fire, power-ups and the boss. Survival points stay
// off so kills remain the only scoring source.
func AllExtras() Extras {
	return Extras{EnemyFire: true, PowerUps: true, Boss: true}
}
