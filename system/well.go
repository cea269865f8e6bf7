package system

import (
	"github.com/seltf/shape-game/component"
	"github.com/seltf/shape-game/core"
	"github.com/seltf/shape-game/engine"
	"github.com/seltf/shape-game/event"
	"github.com/seltf/shape-game/parameter"
	"github.com/seltf/shape-game/vmath"
)

// WellSystem runs the gravity well: spawn on request (one at a time),
// grow the capture radius in, drag enemies toward the center, grind
// the ones at the core, then detonate at end of life and fling the
// captives outward
type WellSystem struct {
	world *engine.World
}

func NewWellSystem(world *engine.World) *WellSystem {
	return &WellSystem{world: world}
}

func (s *WellSystem) Init() {
	s.world.DestroyBatch(s.world.Component.Well.All())
}

func (s *WellSystem) Name() string { return "well" }

func (s *WellSystem) Priority() int { return parameter.PriorityWell }

func (s *WellSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventWellSpawnRequest,
		event.EventGameReset,
	}
}

func (s *WellSystem) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventGameReset:
		s.Init()
	case event.EventWellSpawnRequest:
		if p, ok := ev.Payload.(*event.WellSpawnRequestPayload); ok {
			s.spawn(p)
		}
	}
}

// spawn places a well at the impact point unless one is already active
func (s *WellSystem) spawn(p *event.WellSpawnRequestPayload) {
	w := s.world

	if w.Component.Well.Count() > 0 {
		return
	}

	e := w.CreateEntity()
	w.Component.Kinetic.Set(e, component.KineticComponent{
		Kinetic: core.Kinetic{X: p.X, Y: p.Y},
	})
	w.Component.Well.Set(e, component.WellComponent{
		Level:     p.Level,
		Duration:  parameter.WellDuration,
		MaxRadius: parameter.WellBaseRadius + parameter.WellRadiusPerLevel*float64(p.Level),
	})
}

func (s *WellSystem) Update() {
	w := s.world
	dt := w.Resource.Time.DeltaTime

	var toDestroy []core.Entity

	for _, e := range w.Component.Well.All() {
		wc, ok := w.Component.Well.Get(e)
		if !ok {
			continue
		}
		kc, ok := w.Component.Kinetic.Get(e)
		if !ok {
			continue
		}

		wc.Age += dt
		if wc.Age >= wc.Duration {
			s.detonate(e, &kc)
			toDestroy = append(toDestroy, e)
			continue
		}

		// Capture radius ramps up over the grow window
		growth := float64(wc.Age) / float64(parameter.WellGrowTime)
		if growth > 1 {
			growth = 1
		}
		wc.Radius = wc.MaxRadius * growth

		s.capture(e, &wc, &kc)
		s.grindCore(&wc, &kc)

		w.Component.Well.Set(e, wc)
	}

	w.DestroyBatch(toDestroy)
}

// capture claims every enemy inside the current radius.
// The enemy system runs the actual pull while CapturedBy is set
func (s *WellSystem) capture(well core.Entity, wc *component.WellComponent, kc *component.KineticComponent) {
	w := s.world

	for _, e := range w.Component.Enemy.All() {
		ec, ok := w.Component.Enemy.Get(e)
		if !ok || ec.CapturedBy == well {
			continue
		}
		ek, ok := w.Component.Kinetic.Get(e)
		if !ok {
			continue
		}
		if vmath.DistSq(kc.X, kc.Y, ek.X, ek.Y) < wc.Radius*wc.Radius {
			ec.CapturedBy = well
			w.Component.Enemy.Set(e, ec)
		}
	}
}

// grindCore damages enemies sitting at the well center each tick
func (s *WellSystem) grindCore(wc *component.WellComponent, kc *component.KineticComponent) {
	w := s.world

	damage := parameter.WellCoreDamage
	if wc.Level >= parameter.WellHighLevel {
		damage = parameter.WellCoreDamageHigh
	}

	for _, e := range w.Component.Enemy.All() {
		ek, ok := w.Component.Kinetic.Get(e)
		if !ok {
			continue
		}
		if vmath.DistSq(kc.X, kc.Y, ek.X, ek.Y) >= parameter.WellCoreRadius*parameter.WellCoreRadius {
			continue
		}
		ec, ok := w.Component.Enemy.Get(e)
		if !ok {
			continue
		}
		ec.Health -= damage
		w.Component.Enemy.Set(e, ec)
	}
}

// detonate releases every captive with an outward fling
func (s *WellSystem) detonate(well core.Entity, kc *component.KineticComponent) {
	w := s.world

	for _, e := range w.Component.Enemy.All() {
		ec, ok := w.Component.Enemy.Get(e)
		if !ok || ec.CapturedBy != well {
			continue
		}
		ek, ok := w.Component.Kinetic.Get(e)
		if !ok {
			continue
		}

		dirX, dirY := vmath.Normalize2D(ek.X-kc.X, ek.Y-kc.Y)
		if dirX == 0 && dirY == 0 {
			dirX, dirY = 1, 0
		}
		ec.CapturedBy = core.NoEntity
		ec.PullVelX = dirX * parameter.WellFlingSpeed
		ec.PullVelY = dirY * parameter.WellFlingSpeed
		ec.PullTicks = parameter.WellFlingTicks
		w.Component.Enemy.Set(e, ec)
	}

	w.PushEvent(event.EventWellExpired, &event.WellExpiredPayload{X: kc.X, Y: kc.Y})
	w.PushEvent(event.EventSoundRequest, &event.SoundRequestPayload{Sound: core.SoundWellDetonate})
}
