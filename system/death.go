package system

import (
	"github.com/seltf/shape-game/component"
	"github.com/seltf/shape-game/core"
	"github.com/seltf/shape-game/engine"
	"github.com/seltf/shape-game/event"
	"github.com/seltf/shape-game/parameter"
	"github.com/seltf/shape-game/vmath"
	"github.com/seltf/shape-game/weapon"
)

// DeathSystem reaps dead enemies after all combat systems ran.
// Each kill spawns a particle poof, awards XP and score, and a level
// crossing publishes an upgrade offer
type DeathSystem struct {
	world *engine.World
	rng   *vmath.FastRand
}

func NewDeathSystem(world *engine.World, seed uint64) *DeathSystem {
	return &DeathSystem{
		world: world,
		rng:   vmath.NewFastRand(seed),
	}
}

func (s *DeathSystem) Name() string { return "death" }

func (s *DeathSystem) Priority() int { return parameter.PriorityDeath }

func (s *DeathSystem) Update() {
	w := s.world

	var toDestroy []core.Entity
	leveled := false

	for _, e := range w.Component.Enemy.All() {
		ec, ok := w.Component.Enemy.Get(e)
		if !ok || ec.Health > 0 {
			continue
		}
		kc, _ := w.Component.Kinetic.Get(e)

		s.spawnPoof(kc.X, kc.Y)

		progress := w.Resource.Progress
		progress.Score += ec.XP
		progress.Kills++
		if progress.AddXP(ec.XP, parameter.XPThresholdGrowth) {
			leveled = true
		}

		w.PushEvent(event.EventEnemyKilled, &event.EnemyKilledPayload{
			Entity:  e,
			Variant: ec.Variant,
			XP:      ec.XP,
			X:       kc.X,
			Y:       kc.Y,
		})
		toDestroy = append(toDestroy, e)
	}

	if len(toDestroy) == 0 {
		return
	}
	w.DestroyBatch(toDestroy)

	if leveled {
		progress := w.Resource.Progress
		w.PushEvent(event.EventLevelUp, &event.LevelUpPayload{
			Level:   progress.Level,
			Choices: weapon.Offer(w.Resource.Weapon.Owned, s.rng, parameter.UpgradeOfferCount),
		})
		w.PushEvent(event.EventSoundRequest, &event.SoundRequestPayload{Sound: core.SoundLevelUp})
	} else {
		w.PushEvent(event.EventSoundRequest, &event.SoundRequestPayload{Sound: core.SoundKill})
	}
}

// spawnPoof throws a small ring of short-lived sparks
func (s *DeathSystem) spawnPoof(x, y float64) {
	w := s.world

	for i := 0; i < parameter.ParticleCount; i++ {
		dx, dy := vmath.FromAngle(s.rng.Angle())
		e := w.CreateEntity()
		w.Component.Kinetic.Set(e, component.KineticComponent{
			Kinetic: core.Kinetic{
				X: x, Y: y,
				VelX: dx * parameter.ParticleSpeed,
				VelY: dy * parameter.ParticleSpeed,
			},
		})
		w.Component.Particle.Set(e, component.ParticleComponent{
			TicksLeft: parameter.ParticleLife,
			MaxTicks:  parameter.ParticleLife,
		})
	}
}
