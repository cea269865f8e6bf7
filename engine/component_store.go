package engine

import (
	"github.com/seltf/shape-game/component"
	"github.com/seltf/shape-game/core"
)

// ComponentStore bundles the typed stores for every component kind.
// Systems reach components as world.Component.X.Get/Set/Has/Remove
type ComponentStore struct {
	Kinetic    *Store[component.KineticComponent]
	Player     *Store[component.PlayerComponent]
	Enemy      *Store[component.EnemyComponent]
	Projectile *Store[component.ProjectileComponent]
	Shard      *Store[component.ShardComponent]
	Well       *Store[component.WellComponent]
	Particle   *Store[component.ParticleComponent]
}

func initComponentStores(w *World) {
	w.Component = ComponentStore{
		Kinetic:    NewStore[component.KineticComponent](),
		Player:     NewStore[component.PlayerComponent](),
		Enemy:      NewStore[component.EnemyComponent](),
		Projectile: NewStore[component.ProjectileComponent](),
		Shard:      NewStore[component.ShardComponent](),
		Well:       NewStore[component.WellComponent](),
		Particle:   NewStore[component.ParticleComponent](),
	}
}

// removeFromAll strips every component attached to an entity
func (c *ComponentStore) removeFromAll(e core.Entity) {
	c.Kinetic.Remove(e)
	c.Player.Remove(e)
	c.Enemy.Remove(e)
	c.Projectile.Remove(e)
	c.Shard.Remove(e)
	c.Well.Remove(e)
	c.Particle.Remove(e)
}

// clearAll empties every store
func (c *ComponentStore) clearAll() {
	c.Kinetic.Clear()
	c.Player.Clear()
	c.Enemy.Clear()
	c.Projectile.Clear()
	c.Shard.Clear()
	c.Well.Clear()
	c.Particle.Clear()
}
