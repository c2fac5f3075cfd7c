package game

import (
	"slices"

	"github.com/tomz197/spacedodger/internal/object"
	"github.com/tomz197/spacedodger/internal/physics"
)

func (g *Game) maybeDropPowerUp(x, y float64) {
	if !g.cfg.Extras.PowerUps {
		return
	}
	if g.rng.Float64() < g.cfg.PowerUpChance {
		g.powerUps = append(g.powerUps, object.NewPowerUp(x, y, g.rng))
	}
}

// strikeBoss checks the bullets not yet consumed against the boss and
// returns the grown consumed list.
func (g *Game) strikeBoss(consumed []int) []int {
	used := make(map[int]struct{}, len(consumed))
	for _, i := range consumed {
		used[i] = struct{}{}
	}

	for i, b := range g.bullets {
		if _, ok := used[i]; ok {
			continue
		}
		if !g.boss.Struck(b.X, b.Y) {
			continue
		}
		consumed = append(consumed, i)
		g.addScore(BossHitScore)
		if g.boss.Damage() {
			g.addScore(BossDefeatScore)
			g.hits = append(g.hits, Hit{X: g.boss.X, Y: g.boss.Y, Radius: g.boss.Radius})
			g.boss = nil
			break
		}
	}
	return consumed
}

// shotsHitPlayer removes enemy shots touching the player. A shield absorbs
// the first one; it reports whether the player was shot down.
func (g *Game) shotsHitPlayer() bool {
	bounds := g.player.Bounds()
	var spent []int
	shotDown := false
	for i, b := range g.enemyBullets {
		if !physics.CircleTouchesRect(b.X, b.Y, b.Radius, bounds) {
			continue
		}
		spent = append(spent, i)
		if g.effects.shield > 0 {
			g.effects.shield = 0
			continue
		}
		shotDown = true
		break
	}
	g.enemyBullets = removeIndices(g.enemyBullets, spent)
	return shotDown
}

// collectPowerUps applies and removes every pickup within reach of the ship.
func (g *Game) collectPowerUps() {
	g.powerUps = slices.DeleteFunc(g.powerUps, func(p *object.PowerUp) bool {
		if !p.Reaches(g.player) {
			return false
		}
		switch p.Kind {
		case object.PowerUpRapid:
			g.effects.rapid = object.PowerUpDuration
		case object.PowerUpShield:
			g.effects.shield = object.PowerUpDuration
		case object.PowerUpSpread:
			g.effects.spread = object.PowerUpDuration
		}
		return true
	})
}

// dropPowerUps moves pickups down and drops the ones past the bottom edge.
func (g *Game) dropPowerUps(ctx object.UpdateContext) {
	for _, p := range g.powerUps {
		p.Advance(ctx.Dt)
	}
	g.powerUps = slices.DeleteFunc(g.powerUps, func(p *object.PowerUp) bool {
		return p.OffScreen(ctx.Screen)
	})
}

// scoreSurvival accrues passive points for a tick survived. Whole points go to
// the score and the remainder carries over.
func (g *Game) scoreSurvival(ctx object.UpdateContext) {
	if !g.cfg.Extras.Survival {
		return
	}
	g.survival += ctx.Dt * SurvivalScoreRate * ctx.Difficulty
	whole := int(g.survival)
	g.survival -= float64(whole)
	g.addScore(whole)
}
