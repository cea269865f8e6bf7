package system

import (
	"github.com/seltf/shape-game/core"
	"github.com/seltf/shape-game/engine"
)

// nearestEnemy finds the closest living enemy to (x, y)
//
// maxDistSq < 0 means unbounded. skip, when non-nil, excludes entities
// (used for ricochet and chain hit sets). Ties resolve to the first
// store entity found
func nearestEnemy(w *engine.World, x, y, maxDistSq float64, skip func(core.Entity) bool) (core.Entity, float64, bool) {
	best := core.NoEntity
	bestDistSq := maxDistSq
	if bestDistSq < 0 {
		bestDistSq = 1e18
	}

	for _, e := range w.Component.Enemy.All() {
		if skip != nil && skip(e) {
			continue
		}
		ec, ok := w.Component.Enemy.Get(e)
		if !ok || ec.Health <= 0 {
			continue
		}
		kc, ok := w.Component.Kinetic.Get(e)
		if !ok {
			continue
		}
		dx := kc.X - x
		dy := kc.Y - y
		distSq := dx*dx + dy*dy
		if distSq < bestDistSq {
			bestDistSq = distSq
			best = e
		}
	}

	if best == core.NoEntity {
		return core.NoEntity, 0, false
	}
	return best, bestDistSq, true
}
