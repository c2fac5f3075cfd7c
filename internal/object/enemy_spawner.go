package object

import "math"

// Enemy sampling ranges.
const (
	EnemySizeMin  = 14.0 // Diameter
	EnemySizeMax  = 38.0
	EnemySpeedMin = 70.0
	EnemySpeedMax = 160.0

	sineAmplitudeMin = 30.0
	sineAmplitudeMax = 90.0
	sineFrequencyMin = 0.8
	sineFrequencyMax = 1.6
	zigzagSpeedMin   = 50.0
	zigzagSpeedMax   = 120.0
	zigzagSwitchMin  = 0.35
	zigzagSwitchMax  = 0.9
	shootChance      = 0.35
	lateShootChance  = 0.5
	lateShootAfter   = 30.0 // Seconds of play before lateShootChance applies
	shootIntervalMin = 1.0
	shootIntervalMax = 3.0
)

// Spawn interval defaults.
const (
	SpawnIntervalStart = 0.95
	SpawnIntervalMin   = 0.4
	SpawnRampDivisor   = 60.0
)

// patternWeights are the relative odds of each motion variant.
var patternWeights = [...]struct {
	pattern Pattern
	weight  float64
}{
	{PatternStraight, 45},
	{PatternSine, 35},
	{PatternZigzag, 20},
}

// SpawnConfig tunes the enemy spawner.
type SpawnConfig struct {
	IntervalStart float64 // Interval at elapsed = 0
	IntervalMin   float64 // Floor of the linear shrink
	RampDivisor   float64 // Seconds of play per second of interval shrink
	EnemyFire     bool    // Sample CanShoot for new enemies
}

// DefaultSpawnConfig returns the classic spawn schedule.
func DefaultSpawnConfig() SpawnConfig {
	return SpawnConfig{
		IntervalStart: SpawnIntervalStart,
		IntervalMin:   SpawnIntervalMin,
		RampDivisor:   SpawnRampDivisor,
	}
}

// SpawnInterval returns the time between spawns at the given elapsed time.
func SpawnInterval(elapsed float64, cfg SpawnConfig) float64 {
	return math.Max(cfg.IntervalMin, cfg.IntervalStart-elapsed/cfg.RampDivisor)
}

// EnemySpawner creates enemies on a schedule that tightens over time.
type EnemySpawner struct {
	cfg      SpawnConfig
	screen   Screen
	rng      Rand
	timer    float64
	interval float64
}

// NewEnemySpawner creates a spawner for the given playfield.
func NewEnemySpawner(screen Screen, cfg SpawnConfig, rng Rand) *EnemySpawner {
	return &EnemySpawner{
		cfg:      cfg,
		screen:   screen,
		rng:      rng,
		interval: cfg.IntervalStart,
	}
}

// Reset restores the initial timer and interval.
func (s *EnemySpawner) Reset() {
	s.timer = 0
	s.interval = s.cfg.IntervalStart
}

// Interval returns the interval computed on the last MaybeSpawn call.
func (s *EnemySpawner) Interval() float64 {
	return s.interval
}

// Timer returns the time accumulated toward the next spawn.
func (s *EnemySpawner) Timer() float64 {
	return s.timer
}

// MaybeSpawn advances the spawn timer by dt and returns a new enemy when the
// timer reaches the current interval.
func (s *EnemySpawner) MaybeSpawn(elapsed, dt float64) (*Enemy, bool) {
	s.timer += dt
	s.interval = SpawnInterval(elapsed, s.cfg)
	if s.timer < s.interval {
		return nil, false
	}
	s.timer = 0
	return s.NewEnemy(elapsed), true
}

// NewEnemy samples a fresh enemy just above the top edge.
func (s *EnemySpawner) NewEnemy(elapsed float64) *Enemy {
	size := uniform(s.rng, EnemySizeMin, EnemySizeMax)
	r := size / 2
	x := uniform(s.rng, r, s.screen.Width-r)
	speed := uniform(s.rng, EnemySpeedMin, EnemySpeedMax)

	e := &Enemy{
		X:         x,
		Y:         -size,
		Radius:    r,
		Speed:     speed,
		SpawnTime: elapsed,
	}

	switch s.pickPattern() {
	case PatternStraight:
		e.Motion = Straight{}
	case PatternSine:
		e.Motion = &Sine{
			Amplitude: uniform(s.rng, sineAmplitudeMin, sineAmplitudeMax),
			Frequency: uniform(s.rng, sineFrequencyMin, sineFrequencyMax),
			BaseX:     x,
		}
	case PatternZigzag:
		e.Motion = &Zigzag{
			HSpeed:     uniform(s.rng, zigzagSpeedMin, zigzagSpeedMax),
			Dir:        sign(s.rng),
			SwitchTime: uniform(s.rng, zigzagSwitchMin, zigzagSwitchMax),
		}
	}

	if s.cfg.EnemyFire {
		e.CanShoot = s.rng.Float64() < shootChance ||
			(elapsed > lateShootAfter && s.rng.Float64() < lateShootChance)
		e.ShootInterval = uniform(s.rng, shootIntervalMin, shootIntervalMax)
	}
	return e
}

func (s *EnemySpawner) pickPattern() Pattern {
	total := 0.0
	for _, pw := range patternWeights {
		total += pw.weight
	}
	roll := s.rng.Float64() * total
	for _, pw := range patternWeights {
		if roll < pw.weight {
			return pw.pattern
		}
		roll -= pw.weight
	}
	return patternWeights[len(patternWeights)-1].pattern
}
