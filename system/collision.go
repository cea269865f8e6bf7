package system

import (
	"github.com/seltf/shape-game/component"
	"github.com/seltf/shape-game/core"
	"github.com/seltf/shape-game/engine"
	"github.com/seltf/shape-game/event"
	"github.com/seltf/shape-game/parameter"
	"github.com/seltf/shape-game/physics"
)

// CollisionSystem resolves player-enemy contact
//
// While shield rings are up, the outermost ring absorbs one contact
// per tick: the ring breaks, every enemy in the blast radius is shoved
// back, and the attacker gets a short immunity window. When the last
// ring breaks a restore cooldown starts; rings come back in full when
// it elapses. Unshielded contact costs player health
type CollisionSystem struct {
	world *engine.World
}

func NewCollisionSystem(world *engine.World) *CollisionSystem {
	return &CollisionSystem{world: world}
}

func (s *CollisionSystem) Name() string { return "collision" }

func (s *CollisionSystem) Priority() int { return parameter.PriorityCollision }

func (s *CollisionSystem) Update() {
	w := s.world
	playerEntity := w.Resource.Player.Entity

	pc, ok := w.Component.Player.Get(playerEntity)
	if !ok || pc.Health <= 0 {
		return
	}
	pk, ok := w.Component.Kinetic.Get(playerEntity)
	if !ok {
		return
	}

	now := w.Resource.Time.GameTime
	if pc.ShieldDepleted && now >= pc.ShieldRestoreAt {
		if level := w.Resource.Weapon.Stats.ShieldLevel; level > 0 {
			pc.ShieldRings = level
			pc.ShieldDepleted = false
			w.PushEvent(event.EventShieldRestored, &event.ShieldRingPayload{Remaining: level})
		}
	}

	// Contact reach: the outermost ring while shielded, the body otherwise
	reach := pc.Radius
	if pc.ShieldRings > 0 {
		reach = pc.Radius + parameter.ShieldRingOffset + float64(pc.ShieldRings-1)*parameter.ShieldRingSpacing
	}

	// One absorbed contact per tick
	for _, e := range w.Component.Enemy.All() {
		ec, ok := w.Component.Enemy.Get(e)
		if !ok || ec.ImmuneTicks > 0 || ec.Health <= 0 {
			continue
		}
		ek, ok := w.Component.Kinetic.Get(e)
		if !ok {
			continue
		}
		if !physics.CirclesOverlap(pk.X, pk.Y, reach, ek.X, ek.Y, ec.Radius) {
			continue
		}

		if pc.ShieldRings > 0 {
			s.breakRing(&pc, pk.X, pk.Y, e)
		} else {
			s.damagePlayer(&pc, e)
		}
		break
	}

	w.Component.Player.Set(playerEntity, pc)
}

// breakRing consumes the outermost ring and shoves nearby enemies back
func (s *CollisionSystem) breakRing(pc *component.PlayerComponent, originX, originY float64, attacker core.Entity) {
	w := s.world

	pc.ShieldRings--

	profile := physics.KnockbackProfile{
		Radius:   parameter.ShieldPushRadius,
		Force:    parameter.ShieldPushForce,
		Duration: parameter.ShieldPushTicks,
	}
	for _, e := range w.Component.Enemy.All() {
		ek, ok := w.Component.Kinetic.Get(e)
		if !ok {
			continue
		}
		vx, vy, inside := physics.RadialPush(originX, originY, ek.X, ek.Y, profile)
		if !inside {
			continue
		}
		ec, ok := w.Component.Enemy.Get(e)
		if !ok {
			continue
		}
		ec.PushVelX, ec.PushVelY = vx, vy
		ec.PushTicks = profile.Duration
		ec.CapturedBy = core.NoEntity
		if e == attacker {
			ec.ImmuneTicks = parameter.ShieldImmuneTicks
		}
		w.Component.Enemy.Set(e, ec)
	}

	if pc.ShieldRings == 0 {
		pc.ShieldDepleted = true
		pc.ShieldRestoreAt = w.Resource.Time.GameTime + parameter.ShieldCooldown
		w.PushEvent(event.EventShieldDepleted, nil)
		w.PushEvent(event.EventSoundRequest, &event.SoundRequestPayload{Sound: core.SoundShieldDown})
	} else {
		w.PushEvent(event.EventShieldRingBroken, &event.ShieldRingPayload{Remaining: pc.ShieldRings})
		w.PushEvent(event.EventSoundRequest, &event.SoundRequestPayload{Sound: core.SoundShieldBlock})
	}
}

// damagePlayer applies unshielded contact damage
func (s *CollisionSystem) damagePlayer(pc *component.PlayerComponent, attacker core.Entity) {
	w := s.world

	pc.Health--

	if ec, ok := w.Component.Enemy.Get(attacker); ok {
		ec.ImmuneTicks = parameter.ContactImmuneTicks
		w.Component.Enemy.Set(attacker, ec)
	}

	w.PushEvent(event.EventPlayerDamaged, &event.PlayerDamagedPayload{Remaining: pc.Health})
	if pc.Health <= 0 {
		w.PushEvent(event.EventPlayerDied, nil)
		w.PushEvent(event.EventSoundRequest, &event.SoundRequestPayload{Sound: core.SoundGameOver})
	} else {
		w.PushEvent(event.EventSoundRequest, &event.SoundRequestPayload{Sound: core.SoundPlayerHurt})
	}
}
