// Package object holds the game entities and their per-tick motion.
package object

// Screen is the logical playfield size.
type Screen struct {
	Width  float64
	Height float64
}

// CenterX returns the horizontal center of the playfield.
func (s Screen) CenterX() float64 {
	return s.Width / 2
}

// UpdateContext provides everything an entity needs to advance one tick.
type UpdateContext struct {
	Dt         float64 // Seconds since the previous tick
	Elapsed    float64 // Simulation clock after this tick's advance
	Difficulty float64 // Global speed multiplier, see Difficulty
	Screen     Screen
}

// Difficulty returns the global ramp 1 + elapsed/divisor.
func Difficulty(elapsed, divisor float64) float64 {
	return 1 + elapsed/divisor
}

// Rand is the randomness source entities are sampled from.
// *math/rand.Rand satisfies it.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// uniform returns a value in [lo, hi).
func uniform(rng Rand, lo, hi float64) float64 {
	return lo + (hi-lo)*rng.Float64()
}

// sign returns -1 or +1 with equal probability.
func sign(rng Rand) float64 {
	if rng.Intn(2) == 0 {
		return -1
	}
	return 1
}
