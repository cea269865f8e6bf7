package system

import (
	"github.com/seltf/shape-game/component"
	"github.com/seltf/shape-game/core"
	"github.com/seltf/shape-game/engine"
	"github.com/seltf/shape-game/event"
	"github.com/seltf/shape-game/parameter"
)

// recorder captures routed events for assertions
type recorder struct {
	received []event.GameEvent
}

func (r *recorder) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventGameReset,
		event.EventSoundRequest,
		event.EventFireRequest,
		event.EventEnemyKilled,
		event.EventWellSpawnRequest,
		event.EventWellExpired,
		event.EventShieldRingBroken,
		event.EventShieldDepleted,
		event.EventShieldRestored,
		event.EventPlayerDamaged,
		event.EventPlayerDied,
		event.EventLevelUp,
		event.EventUpgradeChosen,
	}
}

func (r *recorder) HandleEvent(ev event.GameEvent) {
	r.received = append(r.received, ev)
}

func (r *recorder) count(t event.EventType) int {
	n := 0
	for _, ev := range r.received {
		if ev.Type == t {
			n++
		}
	}
	return n
}

func (r *recorder) last(t event.EventType) (event.GameEvent, bool) {
	for i := len(r.received) - 1; i >= 0; i-- {
		if r.received[i].Type == t {
			return r.received[i], true
		}
	}
	return event.GameEvent{}, false
}

// rig wires a world, router, and clock around the systems under test
type rig struct {
	world *engine.World
	clock *engine.Clock
	rec   *recorder
}

func newTestWorld() *engine.World {
	w := engine.NewWorld()
	w.Resource.Config.Width = parameter.ArenaWidth
	w.Resource.Config.Height = parameter.ArenaHeight
	return w
}

func newRig(w *engine.World, systems ...engine.System) *rig {
	router := event.NewRouter(w.Events())
	rec := &recorder{}
	router.Register(rec)

	for _, s := range systems {
		w.AddSystem(s)
		if h, ok := s.(event.Handler); ok {
			router.Register(h)
		}
	}

	return &rig{
		world: w,
		clock: engine.NewClock(w, router, parameter.TickInterval),
		rec:   rec,
	}
}

func (r *rig) step(n int) {
	for i := 0; i < n; i++ {
		r.clock.Step()
	}
}

// placePlayer creates a bare player entity without the player system
func placePlayer(w *engine.World, x, y float64, rings int) core.Entity {
	e := w.CreateEntity()
	w.Component.Kinetic.Set(e, component.KineticComponent{
		Kinetic: core.Kinetic{X: x, Y: y},
	})
	w.Component.Player.Set(e, component.PlayerComponent{
		Radius:      parameter.PlayerRadius,
		Health:      parameter.PlayerMaxHealth,
		FacingX:     1,
		ShieldRings: rings,
	})
	w.Resource.Player.Entity = e
	return e
}

// placeEnemy creates a stationary chaser-class enemy for collision tests
func placeEnemy(w *engine.World, x, y float64, health int) core.Entity {
	e := w.CreateEntity()
	w.Component.Kinetic.Set(e, component.KineticComponent{
		Kinetic: core.Kinetic{X: x, Y: y},
	})
	w.Component.Enemy.Set(e, component.EnemyComponent{
		Variant: component.EnemyChaser,
		Health:  health,
		Speed:   parameter.ChaserSpeed,
		Radius:  parameter.EnemyRadius,
		XP:      parameter.ChaserXP,
	})
	return e
}
