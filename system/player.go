package system

import (
	"github.com/seltf/shape-game/component"
	"github.com/seltf/shape-game/core"
	"github.com/seltf/shape-game/engine"
	"github.com/seltf/shape-game/event"
	"github.com/seltf/shape-game/parameter"
	"github.com/seltf/shape-game/physics"
	"github.com/seltf/shape-game/vmath"
	"github.com/seltf/shape-game/weapon"
)

// PlayerSystem handles avatar movement, dash, and the fire trigger.
// It also owns the player-facing resources (weapon, progression, input)
// across game resets
type PlayerSystem struct {
	world *engine.World
}

func NewPlayerSystem(world *engine.World) *PlayerSystem {
	s := &PlayerSystem{world: world}
	s.Init()
	return s
}

// Init recreates the player at arena center with base loadout
func (s *PlayerSystem) Init() {
	w := s.world

	if old := w.Resource.Player.Entity; old != core.NoEntity {
		w.DestroyEntity(old)
	}

	w.Resource.Input.Reset()
	w.Resource.Weapon.Reset()
	w.Resource.Progress.Reset()

	e := w.CreateEntity()
	w.Component.Kinetic.Set(e, component.KineticComponent{
		Kinetic: core.Kinetic{
			X: w.Resource.Config.Width / 2,
			Y: w.Resource.Config.Height / 2,
		},
	})
	w.Component.Player.Set(e, component.PlayerComponent{
		Radius:  parameter.PlayerRadius,
		Health:  parameter.PlayerMaxHealth,
		FacingX: 1,
	})
	w.Resource.Player.Entity = e
}

func (s *PlayerSystem) Name() string { return "player" }

func (s *PlayerSystem) Priority() int { return parameter.PriorityPlayer }

func (s *PlayerSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventUpgradeChosen,
		event.EventGameReset,
	}
}

func (s *PlayerSystem) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventGameReset:
		s.Init()
	case event.EventUpgradeChosen:
		if p, ok := ev.Payload.(*event.UpgradeChosenPayload); ok {
			s.applyUpgrade(p.ID)
		}
	}
}

func (s *PlayerSystem) Update() {
	w := s.world
	e := w.Resource.Player.Entity

	pc, ok := w.Component.Player.Get(e)
	if !ok {
		return
	}
	kc, ok := w.Component.Kinetic.Get(e)
	if !ok {
		return
	}

	axisX, axisY := w.Resource.Input.Axes()
	dirX, dirY := vmath.Normalize2D(axisX, axisY)
	if dirX != 0 || dirY != 0 {
		pc.FacingX, pc.FacingY = dirX, dirY
	}

	s.handleDash(&pc, dirX, dirY)

	if pc.DashTicks > 0 {
		// Dash overrides steering and skips friction for its duration
		physics.SetImpulse(&kc.Kinetic, pc.DashDirX*parameter.DashSpeed, pc.DashDirY*parameter.DashSpeed)
		physics.Integrate(&kc.Kinetic)
		pc.DashTicks--
		if pc.DashTicks == 0 {
			physics.SetImpulse(&kc.Kinetic, 0, 0)
		}
	} else {
		if dirX != 0 || dirY != 0 {
			physics.ApplyImpulse(&kc.Kinetic, dirX*parameter.PlayerAcceleration, dirY*parameter.PlayerAcceleration)
		}
		physics.CapSpeed(&kc.Kinetic, parameter.PlayerMaxSpeed)
		physics.Integrate(&kc.Kinetic)
		physics.ApplyFriction(&kc.Kinetic, parameter.PlayerFriction, parameter.PlayerVelocityEpsilon)
	}
	physics.ClampBounds(&kc.Kinetic, 0, 0, w.Resource.Config.Width, w.Resource.Config.Height, pc.Radius)

	s.handleFire(&pc, &kc)

	w.Component.Player.Set(e, pc)
	w.Component.Kinetic.Set(e, kc)
}

// handleDash starts a burst along the current movement direction,
// falling back to facing when the player is standing still
func (s *PlayerSystem) handleDash(pc *component.PlayerComponent, dirX, dirY float64) {
	w := s.world

	if !w.Resource.Input.ConsumeDash() {
		return
	}
	now := w.Resource.Time.GameTime
	if now < pc.DashReadyAt || pc.DashTicks > 0 {
		return
	}

	if dirX == 0 && dirY == 0 {
		dirX, dirY = pc.FacingX, pc.FacingY
	}
	pc.DashTicks = parameter.DashTicks
	pc.DashDirX, pc.DashDirY = dirX, dirY

	pc.DashReadyAt = now + parameter.DashCooldown
	w.PushEvent(event.EventSoundRequest, &event.SoundRequestPayload{Sound: core.SoundDash})
}

// handleFire emits a fire request when the trigger is armed, the
// cooldown elapsed, and no primary shot family is still in flight
func (s *PlayerSystem) handleFire(pc *component.PlayerComponent, kc *component.KineticComponent) {
	w := s.world

	pressed, aimX, aimY, aimValid := w.Resource.Input.ConsumeFire()
	if !pressed {
		return
	}
	now := w.Resource.Time.GameTime
	if now < pc.FireReadyAt {
		return
	}
	if s.shotInFlight() {
		return
	}

	var dirX, dirY float64
	switch {
	case aimValid:
		dirX, dirY = vmath.Normalize2D(aimX-kc.X, aimY-kc.Y)
	default:
		if target, _, found := nearestEnemy(w, kc.X, kc.Y, -1, nil); found {
			tk, _ := w.Component.Kinetic.Get(target)
			dirX, dirY = vmath.Normalize2D(tk.X-kc.X, tk.Y-kc.Y)
		}
	}
	if dirX == 0 && dirY == 0 {
		dirX, dirY = pc.FacingX, pc.FacingY
	}
	if dirX == 0 && dirY == 0 {
		return
	}

	pc.FireReadyAt = now + parameter.AttackCooldown
	w.PushEvent(event.EventFireRequest, &event.FireRequestPayload{DirX: dirX, DirY: dirY})
}

// shotInFlight reports whether any non-fork projectile is alive.
// Mini-forks from chain lightning never block the trigger
func (s *PlayerSystem) shotInFlight() bool {
	for _, e := range s.world.Component.Projectile.All() {
		pr, ok := s.world.Component.Projectile.Get(e)
		if !ok {
			continue
		}
		if pr.Kind != component.ProjectileMiniFork {
			return true
		}
	}
	return false
}

// applyUpgrade recompiles weapon stats and syncs shield rings
func (s *PlayerSystem) applyUpgrade(id weapon.UpgradeID) {
	w := s.world
	w.Resource.Weapon.AddUpgrade(id)

	e := w.Resource.Player.Entity
	pc, ok := w.Component.Player.Get(e)
	if !ok {
		return
	}
	level := w.Resource.Weapon.Stats.ShieldLevel
	if level > pc.ShieldRings {
		pc.ShieldRings = level
		pc.ShieldDepleted = false
		w.Component.Player.Set(e, pc)
	}
}
