package system

import (
	"github.com/seltf/shape-game/component"
	"github.com/seltf/shape-game/core"
	"github.com/seltf/shape-game/engine"
	"github.com/seltf/shape-game/event"
	"github.com/seltf/shape-game/parameter"
	"github.com/seltf/shape-game/physics"
	"github.com/seltf/shape-game/vmath"
)

// ShardSystem flies shrapnel fragments. Shards decelerate under drag,
// die on their first hit or at end of life, and explosive shards burst
// into a second full-circle ring on impact
type ShardSystem struct {
	world *engine.World
	rng   *vmath.FastRand
}

func NewShardSystem(world *engine.World, seed uint64) *ShardSystem {
	return &ShardSystem{
		world: world,
		rng:   vmath.NewFastRand(seed),
	}
}

func (s *ShardSystem) Init() {
	s.world.DestroyBatch(s.world.Component.Shard.All())
}

func (s *ShardSystem) Name() string { return "shard" }

func (s *ShardSystem) Priority() int { return parameter.PriorityShard }

func (s *ShardSystem) EventTypes() []event.EventType {
	return []event.EventType{event.EventGameReset}
}

func (s *ShardSystem) HandleEvent(ev event.GameEvent) {
	if ev.Type == event.EventGameReset {
		s.Init()
	}
}

func (s *ShardSystem) Update() {
	w := s.world
	dt := w.Resource.Time.DeltaTime

	var toDestroy []core.Entity
	type burst struct {
		x, y float64
	}
	var bursts []burst

	for _, e := range w.Component.Shard.All() {
		sc, ok := w.Component.Shard.Get(e)
		if !ok {
			continue
		}
		kc, ok := w.Component.Kinetic.Get(e)
		if !ok {
			continue
		}

		sc.Age += dt
		if sc.Age >= sc.Lifetime {
			toDestroy = append(toDestroy, e)
			continue
		}

		kc.VelX *= parameter.ShardDrag
		kc.VelY *= parameter.ShardDrag
		physics.Integrate(&kc.Kinetic)

		if physics.OutOfBounds(&kc.Kinetic, w.Resource.Config.Width, w.Resource.Config.Height) {
			toDestroy = append(toDestroy, e)
			continue
		}

		if hit, _, found := nearestEnemy(w, kc.X, kc.Y, parameter.CollisionDistanceSq, nil); found {
			s.damageEnemy(hit, sc.Damage)
			if sc.Explosive {
				bursts = append(bursts, burst{kc.X, kc.Y})
			}
			toDestroy = append(toDestroy, e)
			continue
		}

		w.Component.Shard.Set(e, sc)
		w.Component.Kinetic.Set(e, kc)
	}

	w.DestroyBatch(toDestroy)

	for _, b := range bursts {
		s.spawnBurst(b.x, b.y)
	}
}

func (s *ShardSystem) damageEnemy(e core.Entity, damage int) {
	ec, ok := s.world.Component.Enemy.Get(e)
	if !ok {
		return
	}
	ec.Health -= damage
	if ec.Health < 0 {
		ec.Health = 0
	}
	s.world.Component.Enemy.Set(e, ec)
}

// spawnBurst throws a level-scaled ring of plain shards.
// Burst shards never re-burst
func (s *ShardSystem) spawnBurst(x, y float64) {
	w := s.world

	stats := w.Resource.Weapon.Stats
	count := parameter.BurstShardBase + parameter.BurstShardPerLevel*stats.ExplosiveLevel
	speed := parameter.BurstSpeedBase + parameter.BurstSpeedPerLevel*float64(stats.ExplosiveLevel)

	for i := 0; i < count; i++ {
		dx, dy := vmath.FromAngle(s.rng.Angle())
		e := w.CreateEntity()
		w.Component.Kinetic.Set(e, component.KineticComponent{
			Kinetic: core.Kinetic{X: x, Y: y, VelX: dx * speed, VelY: dy * speed},
		})
		w.Component.Shard.Set(e, component.ShardComponent{
			Lifetime: parameter.ShardLifetime,
			Damage:   stats.Damage,
		})
	}
	w.PushEvent(event.EventSoundRequest, &event.SoundRequestPayload{Sound: core.SoundShrapnel})
}
