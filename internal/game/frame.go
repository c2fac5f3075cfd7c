package game

import "github.com/tomz197/spacedodger/internal/object"

// Hit marks a destruction that happened during the last tick. Hosts use it
// to spawn explosion particles.
type Hit struct {
	X, Y   float64
	Radius float64
	Player bool // The player ship was destroyed
}

// Effects reports the remaining seconds of each active power-up.
type Effects struct {
	Rapid  float64
	Shield float64
	Spread float64
}

// Frame is a read-only snapshot of a session for rendering. It shares no
// memory with the Game that produced it.
type Frame struct {
	State  State
	Screen object.Screen

	Player       object.Player
	Bullets      []object.Bullet
	Enemies      []object.Enemy
	EnemyBullets []object.EnemyBullet
	PowerUps     []object.PowerUp
	Boss         *object.Boss

	Effects       Effects
	Score         int
	HighScore     int
	Elapsed       float64
	SpawnInterval float64

	GameOver bool
	Quit     bool
	Hits     []Hit
}

// Frame snapshots the current session.
func (g *Game) Frame() Frame {
	f := Frame{
		State:         g.state,
		Screen:        g.cfg.Screen,
		Player:        *g.player,
		Bullets:       make([]object.Bullet, 0, len(g.bullets)),
		Enemies:       make([]object.Enemy, 0, len(g.enemies)),
		EnemyBullets:  make([]object.EnemyBullet, 0, len(g.enemyBullets)),
		PowerUps:      make([]object.PowerUp, 0, len(g.powerUps)),
		Effects:       Effects{Rapid: g.effects.rapid, Shield: g.effects.shield, Spread: g.effects.spread},
		Score:         g.score,
		HighScore:     g.highScore,
		Elapsed:       g.elapsed,
		SpawnInterval: g.spawner.Interval(),
		GameOver:      g.state == StateGameOver,
		Quit:          g.quit,
		Hits:          append([]Hit(nil), g.hits...),
	}

	for _, b := range g.bullets {
		f.Bullets = append(f.Bullets, *b)
	}
	for _, e := range g.enemies {
		f.Enemies = append(f.Enemies, e.Clone())
	}
	for _, b := range g.enemyBullets {
		f.EnemyBullets = append(f.EnemyBullets, *b)
	}
	for _, p := range g.powerUps {
		f.PowerUps = append(f.PowerUps, *p)
	}
	if g.boss != nil {
		boss := *g.boss
		f.Boss = &boss
	}
	return f
}
