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

// ProjectileSystem runs the boomerang shot lifecycle
//
// A shot flies outbound, bouncing off walls and redirecting between
// enemies while its ricochet budget lasts; past its attack range or
// flight window it returns straight to the player and retires on
// arrival. Hits trigger the compiled weapon
// abilities: split forks, shrapnel, chain lightning, and gravity well
// spawn requests. A shared hit set keeps the whole shot family from
// damaging the same enemy twice
type ProjectileSystem struct {
	world *engine.World
	rng   *vmath.FastRand
}

// spawnRequest defers offspring creation until after store iteration
type spawnRequest struct {
	kinetic    component.KineticComponent
	projectile component.ProjectileComponent
}

func NewProjectileSystem(world *engine.World, seed uint64) *ProjectileSystem {
	s := &ProjectileSystem{
		world: world,
		rng:   vmath.NewFastRand(seed),
	}
	return s
}

func (s *ProjectileSystem) Init() {
	s.world.DestroyBatch(s.world.Component.Projectile.All())
}

func (s *ProjectileSystem) Name() string { return "projectile" }

func (s *ProjectileSystem) Priority() int { return parameter.PriorityProjectile }

func (s *ProjectileSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventFireRequest,
		event.EventGameReset,
	}
}

func (s *ProjectileSystem) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventGameReset:
		s.Init()
	case event.EventFireRequest:
		if p, ok := ev.Payload.(*event.FireRequestPayload); ok {
			s.fire(p.DirX, p.DirY)
		}
	}
}

// fire launches the primary shot from the player position with the
// currently compiled weapon stats snapshotted onto it
func (s *ProjectileSystem) fire(dirX, dirY float64) {
	w := s.world

	pk, ok := w.Component.Kinetic.Get(w.Resource.Player.Entity)
	if !ok {
		return
	}
	stats := w.Resource.Weapon.Stats

	pr := component.ProjectileComponent{
		Kind:           component.ProjectilePrimary,
		Phase:          component.PhaseOutbound,
		Damage:         stats.Damage,
		Speed:          stats.ProjectileSpeed,
		Homing:         stats.Homing,
		MaxBounces:     stats.Bounces,
		AllowSplit:     stats.Splits,
		ShrapnelLevel:  stats.ShrapnelLevel,
		ExplosiveLevel: stats.ExplosiveLevel,
		ChainLevel:     stats.ChainLevel,
		BlackHoleLevel: stats.BlackHoleLevel,
		Lifetime:       parameter.ProjectileLifetime,
		MaxDistance:    parameter.MaxAttackRange,
	}
	if target, _, found := nearestEnemy(w, pk.X, pk.Y, -1, nil); found {
		pr.Target = target
	}

	e := w.CreateEntity()
	w.Component.Kinetic.Set(e, component.KineticComponent{
		Kinetic: core.Kinetic{
			X: pk.X, Y: pk.Y,
			VelX: dirX * stats.ProjectileSpeed,
			VelY: dirY * stats.ProjectileSpeed,
		},
	})
	w.Component.Projectile.Set(e, pr)

	w.PushEvent(event.EventSoundRequest, &event.SoundRequestPayload{Sound: core.SoundFire})
}

func (s *ProjectileSystem) Update() {
	w := s.world
	dt := w.Resource.Time.DeltaTime

	var toDestroy []core.Entity
	var pending []spawnRequest

	for _, e := range w.Component.Projectile.All() {
		pr, ok := w.Component.Projectile.Get(e)
		if !ok {
			continue
		}
		kc, ok := w.Component.Kinetic.Get(e)
		if !ok {
			continue
		}

		pr.TimeAlive += dt
		if pr.TimeAlive >= pr.Lifetime {
			toDestroy = append(toDestroy, e)
			continue
		}

		var retired bool
		switch pr.Phase {
		case component.PhaseOutbound:
			retired = s.updateOutbound(&pr, &kc, &pending)
		case component.PhaseReturning:
			retired = s.updateReturning(&kc)
		}
		if retired {
			toDestroy = append(toDestroy, e)
			continue
		}

		w.Component.Projectile.Set(e, pr)
		w.Component.Kinetic.Set(e, kc)
	}

	for _, req := range pending {
		e := w.CreateEntity()
		w.Component.Kinetic.Set(e, req.kinetic)
		w.Component.Projectile.Set(e, req.projectile)
	}
	w.DestroyBatch(toDestroy)
}

// updateOutbound advances one outbound projectile.
// Returns true when the projectile should be destroyed
func (s *ProjectileSystem) updateOutbound(pr *component.ProjectileComponent, kc *component.KineticComponent, pending *[]spawnRequest) bool {
	w := s.world

	if pr.Homing > 0 {
		s.steerHoming(pr, kc)
	}

	physics.Integrate(&kc.Kinetic)
	pr.DistanceTraveled += vmath.Magnitude(kc.VelX, kc.VelY)

	if s.bounceWalls(pr, kc) {
		pr.Phase = component.PhaseReturning
		return false
	}

	if hit, _, found := nearestEnemy(w, kc.X, kc.Y, parameter.CollisionDistanceSq, pr.HasHit); found {
		s.resolveHit(pr, kc, hit, pending)
	}

	if pr.Phase == component.PhaseOutbound &&
		(pr.DistanceTraveled > pr.MaxDistance || pr.TimeAlive >= parameter.ReturnTriggerTime) {
		pr.Phase = component.PhaseReturning
	}
	return false
}

// bounceWalls reflects the shot off the arena edges while ricochet
// budget remains, consuming one bounce per contact. Reports true on a
// wall contact with the budget spent
func (s *ProjectileSystem) bounceWalls(pr *component.ProjectileComponent, kc *component.KineticComponent) bool {
	cfg := s.world.Resource.Config
	if !physics.OutOfBounds(&kc.Kinetic, cfg.Width, cfg.Height) {
		return false
	}
	if pr.Bounces >= pr.MaxBounces {
		physics.ClampBounds(&kc.Kinetic, 0, 0, cfg.Width, cfg.Height, 0)
		return true
	}
	reflected := physics.ReflectBoundsX(&kc.Kinetic, 0, cfg.Width)
	if physics.ReflectBoundsY(&kc.Kinetic, 0, cfg.Height) {
		reflected = true
	}
	if reflected {
		pr.Bounces++
		s.chargeRicochet(pr)
	}
	return false
}

// updateReturning flies straight back to the player, no overshoot.
// Returns true on arrival
func (s *ProjectileSystem) updateReturning(kc *component.KineticComponent) bool {
	pk, ok := s.world.Component.Kinetic.Get(s.world.Resource.Player.Entity)
	if !ok {
		return true
	}
	return physics.StepToward(&kc.Kinetic, pk.X, pk.Y, parameter.ReturnSpeed, parameter.ReturnArriveDistance)
}

// steerHoming blends velocity toward the current target, retargeting
// the nearest unhit enemy when the target is gone
func (s *ProjectileSystem) steerHoming(pr *component.ProjectileComponent, kc *component.KineticComponent) {
	w := s.world

	tk, alive := w.Component.Kinetic.Get(pr.Target)
	if !alive || !w.Component.Enemy.Has(pr.Target) || pr.HasHit(pr.Target) {
		target, _, found := nearestEnemy(w, kc.X, kc.Y, -1, pr.HasHit)
		if !found {
			return
		}
		pr.Target = target
		tk, _ = w.Component.Kinetic.Get(target)
	}

	physics.ApplyHoming(&kc.Kinetic, tk.X, tk.Y, physics.HomingProfile{
		Speed:    pr.Speed,
		Strength: pr.Homing,
	})
}

// resolveHit applies damage and the weapon abilities for one impact
func (s *ProjectileSystem) resolveHit(pr *component.ProjectileComponent, kc *component.KineticComponent, hit core.Entity, pending *[]spawnRequest) {
	w := s.world

	s.damageEnemy(hit, pr.Damage)
	pr.MarkHit(hit)
	w.PushEvent(event.EventSoundRequest, &event.SoundRequestPayload{Sound: core.SoundHit})

	// Chain forks hit exactly once, then come home
	if pr.Kind == component.ProjectileMiniFork {
		pr.Phase = component.PhaseReturning
		return
	}

	if pr.ShrapnelLevel > 0 {
		s.spawnShrapnel(kc, pr)
	}
	// Chain lightning fires on the initial hit only, never on ricochets
	if pr.ChainLevel > 0 && pr.Bounces == 0 {
		s.resolveChain(kc.X, kc.Y, pr, pending)
	}
	if pr.AllowSplit && !pr.HasSplit {
		s.split(pr, kc, pending)
	}
	s.rollWellSpawn(pr, kc)

	// Ricochet: redirect at the next nearest unhit enemy, charging the
	// flight window for each bounce
	if pr.Bounces < pr.MaxBounces {
		if next, _, found := nearestEnemy(w, kc.X, kc.Y, -1, pr.HasHit); found {
			nk, _ := w.Component.Kinetic.Get(next)
			if physics.ApplyChase(&kc.Kinetic, nk.X, nk.Y, pr.Speed) {
				pr.Bounces++
				pr.Target = next
				s.chargeRicochet(pr)
				return
			}
		}
	}
	pr.Phase = component.PhaseReturning
}

// chargeRicochet credits flight time and range back to the shot so a
// bounce extends the return window
func (s *ProjectileSystem) chargeRicochet(pr *component.ProjectileComponent) {
	pr.TimeAlive -= parameter.RicochetTimeCredit
	if pr.TimeAlive < 0 {
		pr.TimeAlive = 0
	}
	pr.DistanceTraveled = 0
}

// damageEnemy subtracts health, never below zero; the death system
// reaps at zero
func (s *ProjectileSystem) damageEnemy(e core.Entity, damage int) {
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

// split forks the shot into two copies at ±SplitAngle.
// Forks keep the remaining abilities but can never re-split
func (s *ProjectileSystem) split(pr *component.ProjectileComponent, kc *component.KineticComponent, pending *[]spawnRequest) {
	pr.HasSplit = true

	for _, angle := range [2]float64{parameter.SplitAngle, -parameter.SplitAngle} {
		vx, vy := vmath.RotateVector(kc.VelX, kc.VelY, angle)
		fork := component.ProjectileComponent{
			Kind:           component.ProjectileSplit,
			Phase:          component.PhaseOutbound,
			Damage:         pr.Damage,
			Speed:          pr.Speed,
			Homing:         pr.Homing,
			MaxBounces:     pr.MaxBounces - pr.Bounces,
			ShrapnelLevel:  pr.ShrapnelLevel,
			ExplosiveLevel: pr.ExplosiveLevel,
			ChainLevel:     pr.ChainLevel,
			Hit:            pr.CloneHits(),
			TimeAlive:      pr.TimeAlive,
			Lifetime:       pr.Lifetime,
			MaxDistance:    pr.MaxDistance,
		}
		*pending = append(*pending, spawnRequest{
			kinetic: component.KineticComponent{
				Kinetic: core.Kinetic{X: kc.X, Y: kc.Y, VelX: vx, VelY: vy},
			},
			projectile: fork,
		})
	}
}

// spawnShrapnel throws a forward cone of shards from the impact point
func (s *ProjectileSystem) spawnShrapnel(kc *component.KineticComponent, pr *component.ProjectileComponent) {
	w := s.world

	count := 1 + pr.ShrapnelLevel
	baseAngle := vmath.Angle(kc.VelX, kc.VelY)
	for i := 0; i < count; i++ {
		angle := baseAngle + s.rng.Range(-parameter.ShardCone/2, parameter.ShardCone/2)
		dx, dy := vmath.FromAngle(angle)

		e := w.CreateEntity()
		w.Component.Kinetic.Set(e, component.KineticComponent{
			Kinetic: core.Kinetic{
				X: kc.X, Y: kc.Y,
				VelX: dx * parameter.ShardSpeed,
				VelY: dy * parameter.ShardSpeed,
			},
		})
		w.Component.Shard.Set(e, component.ShardComponent{
			Lifetime:  parameter.ShardLifetime,
			Damage:    pr.Damage,
			Explosive: pr.ExplosiveLevel > 0,
		})
	}
	w.PushEvent(event.EventSoundRequest, &event.SoundRequestPayload{Sound: core.SoundShrapnel})
}

// resolveChain arcs lightning through up to ChainLevel nearby enemies.
// Range shrinks per link; odd links also launch a mini-fork at another
// unhit enemy. All links share the projectile's hit set
func (s *ProjectileSystem) resolveChain(fromX, fromY float64, pr *component.ProjectileComponent, pending *[]spawnRequest) {
	w := s.world

	curX, curY := fromX, fromY
	reach := parameter.ChainBaseRange + parameter.ChainRangePerLevel*float64(pr.ChainLevel)

	for link := 0; link < pr.ChainLevel; link++ {
		target, _, found := nearestEnemy(w, curX, curY, reach*reach, pr.HasHit)
		if !found {
			return
		}
		s.damageEnemy(target, pr.Damage)
		pr.MarkHit(target)

		tk, _ := w.Component.Kinetic.Get(target)

		if link%2 == 0 {
			s.spawnMiniFork(curX, curY, pr, reach*parameter.ForkRangeFactor, pending)
		}

		curX, curY = tk.X, tk.Y
		reach *= parameter.ChainRangeFalloff
	}
}

// spawnMiniFork launches a one-hit fork at the nearest unhit enemy in reach
func (s *ProjectileSystem) spawnMiniFork(x, y float64, pr *component.ProjectileComponent, reach float64, pending *[]spawnRequest) {
	w := s.world

	target, _, found := nearestEnemy(w, x, y, reach*reach, pr.HasHit)
	if !found {
		return
	}
	tk, _ := w.Component.Kinetic.Get(target)
	dirX, dirY := vmath.Normalize2D(tk.X-x, tk.Y-y)
	if dirX == 0 && dirY == 0 {
		return
	}

	fork := component.ProjectileComponent{
		Kind:        component.ProjectileMiniFork,
		Phase:       component.PhaseOutbound,
		Damage:      pr.Damage,
		Speed:       pr.Speed,
		Homing:      pr.Homing,
		Target:      target,
		Hit:         pr.CloneHits(),
		Lifetime:    pr.Lifetime,
		MaxDistance: pr.MaxDistance,
	}
	*pending = append(*pending, spawnRequest{
		kinetic: component.KineticComponent{
			Kinetic: core.Kinetic{X: x, Y: y, VelX: dirX * pr.Speed, VelY: dirY * pr.Speed},
		},
		projectile: fork,
	})
}

// rollWellSpawn asks for a gravity well at the impact point.
// At most one well exists; the chance scales with the upgrade level
func (s *ProjectileSystem) rollWellSpawn(pr *component.ProjectileComponent, kc *component.KineticComponent) {
	w := s.world

	if pr.BlackHoleLevel == 0 || w.Component.Well.Count() > 0 {
		return
	}
	chance := parameter.WellTriggerChance * float64(pr.BlackHoleLevel)
	if s.rng.Float64() >= chance {
		return
	}
	w.PushEvent(event.EventWellSpawnRequest, &event.WellSpawnRequestPayload{
		X: kc.X, Y: kc.Y,
		Level: pr.BlackHoleLevel,
	})
}
