package game

import (
	"github.com/tomz197/spacedodger/internal/object"
	"github.com/tomz197/spacedodger/internal/physics"
)

// Outcome is the result of one collision pass. Indices refer to the slices
// passed to Resolve.
type Outcome struct {
	DestroyedEnemies []int
	ConsumedBullets  []int
	ScoreDelta       int
	PlayerHit        bool
	HitBy            int // Enemy that touched the player, -1 if none
}

// Resolve detects bullet↔enemy and enemy↔player collisions without mutating
// anything. Each bullet destroys at most the first enemy it overlaps in list
// order; the first surviving enemy touching the player wins.
func Resolve(bullets []*object.Bullet, enemies []*object.Enemy, player physics.Rect) Outcome {
	out := Outcome{HitBy: -1}
	destroyed := make([]bool, len(enemies))

	for bi, b := range bullets {
		for ei, e := range enemies {
			if destroyed[ei] {
				continue
			}
			if bulletHitsEnemy(b, e) {
				destroyed[ei] = true
				out.DestroyedEnemies = append(out.DestroyedEnemies, ei)
				out.ConsumedBullets = append(out.ConsumedBullets, bi)
				out.ScoreDelta += e.Points()
				break
			}
		}
	}

	out.HitBy = firstPlayerHit(enemies, destroyed, player)
	out.PlayerHit = out.HitBy >= 0
	return out
}

// bulletHitsEnemy clamps the bullet point into the enemy's bounding square
// and compares the remaining distance with the radius. This is a circle vs
// AABB test, not a circle vs circle one.
func bulletHitsEnemy(b *object.Bullet, e *object.Enemy) bool {
	return physics.CircleTouchesRect(b.X, b.Y, e.Radius, e.Bounds())
}

// firstPlayerHit returns the index of the first enemy not in skip that
// touches the player rectangle, or -1.
func firstPlayerHit(enemies []*object.Enemy, skip []bool, player physics.Rect) int {
	for i, e := range enemies {
		if i < len(skip) && skip[i] {
			continue
		}
		if physics.CircleTouchesRect(e.X, e.Y, e.Radius, player) {
			return i
		}
	}
	return -1
}

// removeIndices drops the elements at the given indices, keeping order.
// Repeated or out-of-range indices are ignored.
func removeIndices[T any](items []T, indices []int) []T {
	if len(indices) == 0 {
		return items
	}
	drop := make(map[int]struct{}, len(indices))
	for _, i := range indices {
		drop[i] = struct{}{}
	}

	kept := items[:0]
	for i, item := range items {
		if _, ok := drop[i]; !ok {
			kept = append(kept, item)
		}
	}
	clear(items[len(kept):])
	return kept
}
