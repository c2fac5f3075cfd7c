package game

import (
	"slices"

	"github.com/tomz197/spacedodger/internal/object"
)

// State is the session phase.
type State int

const (
	StatePlaying  State = iota // Simulation advancing
	StateGameOver              // Frozen until Restart
)

func (s State) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// Input is the control state sampled once at the start of a tick.
type Input struct {
	MoveLeft  bool
	MoveRight bool
	FireHeld  bool
}

// effects holds the remaining seconds of each power-up.
type effects struct {
	rapid  float64
	shield float64
	spread float64
}

func (e *effects) decay(dt float64) {
	e.rapid = max(0, e.rapid-dt)
	e.shield = max(0, e.shield-dt)
	e.spread = max(0, e.spread-dt)
}

// Game is one player session. It is not safe for concurrent use; the host
// loop owns it and drives it through Tick.
type Game struct {
	cfg Config
	rng object.Rand

	state     State
	elapsed   float64
	score     int
	highScore int
	survival  float64 // Fractional survival points not yet scored
	quit      bool

	player       *object.Player
	bullets      []*object.Bullet
	enemies      []*object.Enemy
	spawner      *object.EnemySpawner
	enemyBullets []*object.EnemyBullet
	powerUps     []*object.PowerUp
	boss         *object.Boss
	effects      effects

	hits []Hit // Explosions produced by the current tick
}

// New creates a session in the Playing state.
func New(cfg Config, rng object.Rand) *Game {
	g := &Game{
		cfg:     cfg,
		rng:     rng,
		spawner: object.NewEnemySpawner(cfg.Screen, cfg.Spawn, rng),
	}
	g.reset()
	return g
}

// reset reinitializes the session. The high score survives.
func (g *Game) reset() {
	g.state = StatePlaying
	g.elapsed = 0
	g.score = 0
	g.survival = 0
	g.player = object.NewPlayer(g.cfg.Screen)
	g.bullets = nil
	g.enemies = nil
	g.enemyBullets = nil
	g.powerUps = nil
	g.boss = nil
	g.effects = effects{}
	g.hits = nil
	g.spawner.Reset()
}

// Restart starts a fresh session from any state.
func (g *Game) Restart() {
	g.reset()
}

// Quit asks the host to terminate. The core only records the request.
func (g *Game) Quit() {
	g.quit = true
}

// State returns the current phase.
func (g *Game) State() State {
	return g.state
}

// Score returns the current score.
func (g *Game) Score() int {
	return g.score
}

// Elapsed returns the simulation clock.
func (g *Game) Elapsed() float64 {
	return g.elapsed
}

// Fire shoots from the ship's nose unless the cooldown is still running or
// the game is over.
func (g *Game) Fire() {
	if g.state != StatePlaying || !g.player.CanFire() {
		return
	}

	x, y := g.player.Nose()
	if g.effects.spread > 0 {
		for _, off := range spreadOffsets {
			g.bullets = append(g.bullets, object.NewBullet(x+off, y))
		}
	} else {
		g.bullets = append(g.bullets, object.NewBullet(x, y))
	}

	cooldown := object.PlayerFireCooldown
	if g.effects.rapid > 0 {
		cooldown *= RapidCooldownFactor
	}
	g.player.Cooldown = cooldown
}

// Tick advances the simulation by dt seconds and returns the resulting frame.
// Ticks in GameOver change nothing.
func (g *Game) Tick(dt float64, in Input) Frame {
	g.hits = g.hits[:0]
	if g.state != StatePlaying {
		return g.Frame()
	}

	if in.FireHeld {
		g.Fire()
	}
	g.player.DecayCooldown(dt)

	g.elapsed += dt
	ctx := object.UpdateContext{
		Dt:         dt,
		Elapsed:    g.elapsed,
		Difficulty: object.Difficulty(g.elapsed, g.cfg.DifficultyDivisor),
		Screen:     g.cfg.Screen,
	}

	g.spawn(dt)
	g.advance(ctx, in)
	g.collide()
	if g.state == StatePlaying {
		g.collectPowerUps()
		g.dropPowerUps(ctx)
		g.scoreSurvival(ctx)
	}

	return g.Frame()
}

// spawn runs the regular spawner and, with the boss extra, brings in a boss.
func (g *Game) spawn(dt float64) {
	if g.regularSpawnsActive() {
		if e, ok := g.spawner.MaybeSpawn(g.elapsed, dt); ok {
			g.enemies = append(g.enemies, e)
		}
	}
	if g.cfg.Extras.Boss && g.boss == nil && g.score >= g.cfg.BossScore {
		g.boss = object.NewBoss(g.cfg.Screen)
	}
}

func (g *Game) regularSpawnsActive() bool {
	if !g.cfg.Extras.Boss {
		return true
	}
	return g.boss == nil && g.score < g.cfg.BossScore
}

// advance moves every entity and drops the ones that left the playfield.
func (g *Game) advance(ctx object.UpdateContext, in Input) {
	g.player.Advance(ctx, in.MoveLeft, in.MoveRight)
	g.effects.decay(ctx.Dt)

	for _, b := range g.bullets {
		b.Advance(ctx.Dt)
	}
	g.bullets = slices.DeleteFunc(g.bullets, (*object.Bullet).OffScreen)

	for _, b := range g.enemyBullets {
		b.Advance(ctx.Dt)
	}
	g.enemyBullets = slices.DeleteFunc(g.enemyBullets, func(b *object.EnemyBullet) bool {
		return b.OffScreen(ctx.Screen)
	})

	for _, e := range g.enemies {
		e.Advance(ctx)
		if shot, ok := e.Shoot(ctx.Dt, g.player.X, g.player.Y, g.rng); ok {
			g.enemyBullets = append(g.enemyBullets, shot)
		}
	}
	g.enemies = slices.DeleteFunc(g.enemies, func(e *object.Enemy) bool {
		return e.OffScreen(ctx.Screen)
	})

	if g.boss != nil && g.boss.Advance(ctx) {
		g.enemyBullets = append(g.enemyBullets, g.boss.Fan()...)
	}
}

// collide resolves every collision of the tick in a fixed order: bullets vs
// enemies, bullets vs boss, enemy shots vs player, enemies vs player.
func (g *Game) collide() {
	out := Resolve(g.bullets, g.enemies, g.player.Bounds())

	for _, i := range out.DestroyedEnemies {
		e := g.enemies[i]
		g.hits = append(g.hits, Hit{X: e.X, Y: e.Y, Radius: e.Radius})
		g.maybeDropPowerUp(e.X, e.Y)
	}
	g.addScore(out.ScoreDelta)

	consumed := out.ConsumedBullets
	if g.boss != nil {
		consumed = g.strikeBoss(consumed)
	}

	shotDown := g.shotsHitPlayer()

	destroyed := out.DestroyedEnemies
	if !shotDown && out.PlayerHit && g.effects.shield > 0 {
		g.effects.shield = 0
		e := g.enemies[out.HitBy]
		g.hits = append(g.hits, Hit{X: e.X, Y: e.Y, Radius: e.Radius})
		g.addScore(ShieldAbsorbScore)
		destroyed = append(destroyed, out.HitBy)

		skip := make([]bool, len(g.enemies))
		for _, i := range destroyed {
			skip[i] = true
		}
		out.HitBy = firstPlayerHit(g.enemies, skip, g.player.Bounds())
		out.PlayerHit = out.HitBy >= 0
	}

	g.enemies = removeIndices(g.enemies, destroyed)
	g.bullets = removeIndices(g.bullets, consumed)

	if shotDown || out.PlayerHit {
		g.gameOver()
	}
}

func (g *Game) addScore(points int) {
	if points <= 0 {
		return
	}
	g.score += points
	if g.score > g.highScore {
		g.highScore = g.score
	}
}

// gameOver freezes the session.
func (g *Game) gameOver() {
	g.state = StateGameOver
	g.hits = append(g.hits, Hit{X: g.player.X, Y: g.player.Y, Radius: object.PlayerWidth / 2, Player: true})
}
