package system

import (
	"github.com/seltf/shape-game/core"
	"github.com/seltf/shape-game/engine"
	"github.com/seltf/shape-game/event"
	"github.com/seltf/shape-game/parameter"
	"github.com/seltf/shape-game/physics"
)

// ParticleSystem ages the death poof sparks
type ParticleSystem struct {
	world *engine.World
}

func NewParticleSystem(world *engine.World) *ParticleSystem {
	return &ParticleSystem{world: world}
}

func (s *ParticleSystem) Init() {
	s.world.DestroyBatch(s.world.Component.Particle.All())
}

func (s *ParticleSystem) Name() string { return "particle" }

func (s *ParticleSystem) Priority() int { return parameter.PriorityParticle }

func (s *ParticleSystem) EventTypes() []event.EventType {
	return []event.EventType{event.EventGameReset}
}

func (s *ParticleSystem) HandleEvent(ev event.GameEvent) {
	if ev.Type == event.EventGameReset {
		s.Init()
	}
}

func (s *ParticleSystem) Update() {
	w := s.world

	var toDestroy []core.Entity
	for _, e := range w.Component.Particle.All() {
		pc, ok := w.Component.Particle.Get(e)
		if !ok {
			continue
		}
		pc.TicksLeft--
		if pc.TicksLeft <= 0 {
			toDestroy = append(toDestroy, e)
			continue
		}
		if kc, ok := w.Component.Kinetic.Get(e); ok {
			physics.Integrate(&kc.Kinetic)
			w.Component.Kinetic.Set(e, kc)
		}
		w.Component.Particle.Set(e, pc)
	}
	w.DestroyBatch(toDestroy)
}
