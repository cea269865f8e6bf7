package system

import (
	"github.com/seltf/shape-game/component"
	"github.com/seltf/shape-game/core"
	"github.com/seltf/shape-game/engine"
	"github.com/seltf/shape-game/parameter"
	"github.com/seltf/shape-game/physics"
	"github.com/seltf/shape-game/vmath"
)

// EnemySystem steers enemies toward the player
//
// Steering precedence per enemy, highest first:
//  1. Gravity well pull while captured
//  2. Residual fling after a well detonation
//  3. Knockback push from a shield break
//  4. Chase
type EnemySystem struct {
	world *engine.World
}

func NewEnemySystem(world *engine.World) *EnemySystem {
	return &EnemySystem{world: world}
}

func (s *EnemySystem) Name() string { return "enemy" }

func (s *EnemySystem) Priority() int { return parameter.PriorityEnemy }

func (s *EnemySystem) Update() {
	w := s.world

	playerKC, haveTarget := w.Component.Kinetic.Get(w.Resource.Player.Entity)

	enemies := w.Component.Enemy.All()
	for _, e := range enemies {
		ec, ok := w.Component.Enemy.Get(e)
		if !ok {
			continue
		}
		kc, ok := w.Component.Kinetic.Get(e)
		if !ok {
			continue
		}

		if ec.ImmuneTicks > 0 {
			ec.ImmuneTicks--
		}

		switch {
		case ec.CapturedBy != core.NoEntity:
			if !s.applyWellPull(&ec, &kc) {
				ec.CapturedBy = core.NoEntity
				kc.VelX, kc.VelY = 0, 0
			}
		case ec.PullTicks > 0:
			kc.VelX, kc.VelY = ec.PullVelX, ec.PullVelY
			ec.PullTicks--
		case ec.PushTicks > 0:
			kc.VelX, kc.VelY = ec.PushVelX, ec.PushVelY
			ec.PushTicks--
		case haveTarget:
			physics.ApplyChase(&kc.Kinetic, playerKC.X, playerKC.Y, ec.Speed)
		}

		physics.Integrate(&kc.Kinetic)

		w.Component.Enemy.Set(e, ec)
		w.Component.Kinetic.Set(e, kc)
	}

	s.separate(enemies)
}

// applyWellPull steers a captured enemy toward its well.
// Returns false when the well no longer exists
func (s *EnemySystem) applyWellPull(ec *component.EnemyComponent, kc *component.KineticComponent) bool {
	w := s.world

	wc, ok := w.Component.Well.Get(ec.CapturedBy)
	if !ok {
		return false
	}
	wk, ok := w.Component.Kinetic.Get(ec.CapturedBy)
	if !ok {
		return false
	}

	vx, vy, inside := physics.RadialPull(wk.X, wk.Y, kc.X, kc.Y, physics.PullProfile{
		Radius:    wc.Radius,
		Strength:  parameter.WellPullStrength,
		MinFactor: parameter.WellPullMinFactor,
	})
	if !inside {
		// Drifted past the rim or sitting on the center; hold position
		kc.VelX, kc.VelY = 0, 0
		return true
	}
	kc.VelX, kc.VelY = vx, vy
	return true
}

// separate nudges overlapping enemies apart so packs do not stack
func (s *EnemySystem) separate(enemies []core.Entity) {
	w := s.world

	for i := 0; i < len(enemies); i++ {
		a, ok := w.Component.Kinetic.Get(enemies[i])
		if !ok {
			continue
		}
		ea, ok := w.Component.Enemy.Get(enemies[i])
		if !ok {
			continue
		}
		moved := false
		for j := i + 1; j < len(enemies); j++ {
			b, ok := w.Component.Kinetic.Get(enemies[j])
			if !ok {
				continue
			}
			eb, ok := w.Component.Enemy.Get(enemies[j])
			if !ok {
				continue
			}
			minDist := ea.Radius + eb.Radius
			distSq := vmath.DistSq(a.X, a.Y, b.X, b.Y)
			if distSq >= minDist*minDist || distSq == 0 {
				continue
			}
			dist := vmath.Magnitude(b.X-a.X, b.Y-a.Y)
			push := (minDist - dist) * parameter.SeparationFactor / 2
			nx := (b.X - a.X) / dist
			ny := (b.Y - a.Y) / dist
			a.X -= nx * push
			a.Y -= ny * push
			b.X += nx * push
			b.Y += ny * push
			w.Component.Kinetic.Set(enemies[j], b)
			moved = true
		}
		if moved {
			w.Component.Kinetic.Set(enemies[i], a)
		}
	}
}
