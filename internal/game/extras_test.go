package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomz197/spacedodger/internal/object"
)

func extrasConfig() Config {
	return quietConfig().WithExtras(AllExtras())
}

func TestWithExtrasEnablesEnemyFire(t *testing.T) {
	cfg := DefaultConfig()
	assert.False(t, cfg.Spawn.EnemyFire)
	assert.Equal(t, Extras{}, cfg.Extras)

	cfg = cfg.WithExtras(AllExtras())
	assert.True(t, cfg.Spawn.EnemyFire)
	assert.True(t, cfg.Extras.Boss)
}

func TestSpreadFiresThreeBullets(t *testing.T) {
	g := newGame(extrasConfig())
	g.effects.spread = 5

	g.Fire()

	require.Len(t, g.bullets, 3)
	assert.Equal(t, 232.0, g.bullets[0].X)
	assert.Equal(t, 240.0, g.bullets[1].X)
	assert.Equal(t, 248.0, g.bullets[2].X)
}

func TestRapidShortensCooldown(t *testing.T) {
	g := newGame(extrasConfig())
	g.effects.rapid = 5

	g.Fire()

	assert.InDelta(t, object.PlayerFireCooldown*RapidCooldownFactor, g.player.Cooldown, 1e-9)
}

func TestShieldAbsorbsEnemy(t *testing.T) {
	g := newGame(extrasConfig())
	g.effects.shield = 5
	g.enemies = []*object.Enemy{enemyAt(240, 576, 12)}

	f := g.Tick(frameDt, Input{})

	assert.Equal(t, StatePlaying, f.State)
	assert.Equal(t, ShieldAbsorbScore, f.Score)
	assert.Zero(t, f.Effects.Shield)
	assert.Empty(t, f.Enemies)
	assert.Len(t, f.Hits, 1)
}

func TestShieldAbsorbsOnlyOneEnemy(t *testing.T) {
	g := newGame(extrasConfig())
	g.effects.shield = 5
	g.enemies = []*object.Enemy{enemyAt(235, 576, 12), enemyAt(245, 576, 12)}

	f := g.Tick(frameDt, Input{})

	assert.Equal(t, StateGameOver, f.State)
	assert.Len(t, f.Enemies, 1)
}

func TestEnemyShotEndsGame(t *testing.T) {
	g := newGame(extrasConfig())
	g.enemyBullets = []*object.EnemyBullet{{X: 240, Y: 576, Radius: 5}}

	f := g.Tick(frameDt, Input{})

	assert.Equal(t, StateGameOver, f.State)
	assert.Empty(t, f.EnemyBullets)
}

func TestShieldAbsorbsEnemyShot(t *testing.T) {
	g := newGame(extrasConfig())
	g.effects.shield = 5
	g.enemyBullets = []*object.EnemyBullet{
		{X: 240, Y: 576, Radius: 5},
		{X: 40, Y: 100, Radius: 5},
	}

	f := g.Tick(frameDt, Input{})

	assert.Equal(t, StatePlaying, f.State)
	assert.Zero(t, f.Effects.Shield)
	require.Len(t, f.EnemyBullets, 1)
	assert.Equal(t, 40.0, f.EnemyBullets[0].X)
	assert.Zero(t, f.Score, "absorbing a shot scores nothing")
}

func TestPowerUpPickup(t *testing.T) {
	g := newGame(extrasConfig())
	g.powerUps = []*object.PowerUp{
		{X: 240, Y: 576, Kind: object.PowerUpShield, Radius: object.PowerUpRadius},
		{X: 40, Y: 100, Kind: object.PowerUpRapid, Radius: object.PowerUpRadius},
	}

	f := g.Tick(frameDt, Input{})

	assert.Equal(t, object.PowerUpDuration, f.Effects.Shield)
	assert.Zero(t, f.Effects.Rapid)
	require.Len(t, f.PowerUps, 1)
	assert.InDelta(t, 100+object.PowerUpFallSpeed*frameDt, f.PowerUps[0].Y, 1e-9)
}

func TestPowerUpFallsOffScreen(t *testing.T) {
	g := newGame(extrasConfig())
	g.powerUps = []*object.PowerUp{{X: 40, Y: 650, Kind: object.PowerUpSpread, Radius: object.PowerUpRadius}}

	f := g.Tick(frameDt, Input{})

	assert.Empty(t, f.PowerUps)
}

func TestDestroyedEnemyDropsPowerUp(t *testing.T) {
	cfg := extrasConfig()
	cfg.PowerUpChance = 1
	g := newGame(cfg)
	g.enemies = []*object.Enemy{enemyAt(100, 200, 15)}
	g.bullets = []*object.Bullet{object.NewBullet(100, 205)}

	f := g.Tick(frameDt, Input{})

	require.Len(t, f.PowerUps, 1)
	assert.Equal(t, 100.0, f.PowerUps[0].X)
}

func TestPowerUpsNeedTheExtra(t *testing.T) {
	cfg := quietConfig()
	cfg.PowerUpChance = 1
	g := newGame(cfg)
	g.enemies = []*object.Enemy{enemyAt(100, 200, 15)}
	g.bullets = []*object.Bullet{object.NewBullet(100, 205)}

	f := g.Tick(frameDt, Input{})

	assert.Equal(t, 25, f.Score)
	assert.Empty(t, f.PowerUps)
}

func TestBossAppearsAtScore(t *testing.T) {
	cfg := DefaultConfig().WithExtras(AllExtras())
	g := newGame(cfg)
	g.score = BossAppearScore

	f := g.Tick(frameDt, Input{})
	require.NotNil(t, f.Boss)
	assert.Equal(t, 240.0, f.Boss.X)
	assert.Equal(t, object.BossHP, f.Boss.HP)

	for range 120 {
		f = g.Tick(frameDt, Input{})
	}
	assert.Empty(t, f.Enemies, "regular spawns pause while a boss is up")
	assert.Greater(t, f.Boss.Y, object.BossSpawnY)
}

func TestNoBossWithoutTheExtra(t *testing.T) {
	g := newGame(quietConfig())
	g.score = 1000

	f := g.Tick(frameDt, Input{})

	assert.Nil(t, f.Boss)
}

func TestBossTakesHits(t *testing.T) {
	g := newGame(extrasConfig())
	boss := object.NewBoss(g.cfg.Screen)
	boss.Y = 100
	boss.HP = 3
	g.boss = boss
	g.bullets = []*object.Bullet{object.NewBullet(240, 110)}

	f := g.Tick(frameDt, Input{})

	require.NotNil(t, f.Boss)
	assert.Equal(t, 2, f.Boss.HP)
	assert.Equal(t, BossHitScore, f.Score)
	assert.Empty(t, f.Bullets)
}

func TestBossDefeat(t *testing.T) {
	g := newGame(extrasConfig())
	boss := object.NewBoss(g.cfg.Screen)
	boss.Y = 100
	boss.HP = 2
	g.boss = boss
	g.bullets = []*object.Bullet{
		object.NewBullet(240, 110),
		object.NewBullet(250, 110),
		object.NewBullet(230, 110),
	}

	f := g.Tick(frameDt, Input{})

	assert.Nil(t, f.Boss)
	assert.Equal(t, 2*BossHitScore+BossDefeatScore, f.Score)
	assert.Len(t, f.Bullets, 1, "bullets after the kill fly on")
	require.Len(t, f.Hits, 1)
	assert.Equal(t, object.BossRadius, f.Hits[0].Radius)
}

func TestBossFiresFan(t *testing.T) {
	g := newGame(extrasConfig())
	boss := object.NewBoss(g.cfg.Screen)
	boss.Y = object.BossHoverY
	g.boss = boss

	var f Frame
	for range 61 {
		f = g.Tick(frameDt, Input{})
	}

	assert.Len(t, f.EnemyBullets, 5)
}

func TestSurvivalScore(t *testing.T) {
	cfg := quietConfig().WithExtras(Extras{Survival: true})
	g := newGame(cfg)

	for range 60 {
		g.Tick(frameDt, Input{})
	}
	// 5 points per second at a difficulty just above 1
	assert.Equal(t, 5, g.Score())
	assert.Equal(t, 5, g.Frame().HighScore)
	assert.Less(t, g.survival, 1.0)

	g.Restart()
	assert.Zero(t, g.Score())
	assert.Zero(t, g.survival, "remainder does not carry into a new session")
}

func TestSurvivalScoreNeedsTheExtra(t *testing.T) {
	g := newGame(quietConfig())

	for range 600 {
		g.Tick(frameDt, Input{})
	}
	assert.Zero(t, g.Score())
}

func TestSurvivalScoreStopsAtGameOver(t *testing.T) {
	g := newGame(quietConfig().WithExtras(Extras{Survival: true}))
	g.enemies = append(g.enemies, enemyAt(g.player.X, g.player.Y, 20))

	g.Tick(frameDt, Input{})
	require.Equal(t, StateGameOver, g.State())
	score := g.Score()

	for range 120 {
		g.Tick(frameDt, Input{})
	}
	assert.Equal(t, score, g.Score())
}
