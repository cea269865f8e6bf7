package engine

import (
	"sync"

	"github.com/seltf/shape-game/core"
	"github.com/seltf/shape-game/event"
)

// System updates one slice of game state each tick
// Systems run in ascending Priority order
type System interface {
	Priority() int
	Update()
}

// World contains all entities and their components using typed stores
type World struct {
	mu           sync.Mutex
	nextEntityID core.Entity

	Component ComponentStore
	Resource  *Resource

	eventQueue *event.Queue

	systems     []System
	updateMutex sync.Mutex
}

// NewWorld creates a new ECS world
func NewWorld() *World {
	w := &World{
		nextEntityID: 1,
		Resource:     newResource(),
		eventQueue:   event.NewQueue(),
		systems:      make([]System, 0),
	}

	initComponentStores(w)

	return w
}

// CreateEntity reserves a new entity ID
func (w *World) CreateEntity() core.Entity {
	w.mu.Lock()
	defer w.mu.Unlock()

	id := w.nextEntityID
	w.nextEntityID++
	return id
}

// DestroyEntity removes all components associated with an entity
func (w *World) DestroyEntity(e core.Entity) {
	w.Component.removeFromAll(e)
}

// DestroyBatch removes a set of entities from every store in one pass
func (w *World) DestroyBatch(entities []core.Entity) {
	if len(entities) == 0 {
		return
	}
	w.Component.Kinetic.RemoveBatch(entities)
	w.Component.Player.RemoveBatch(entities)
	w.Component.Enemy.RemoveBatch(entities)
	w.Component.Projectile.RemoveBatch(entities)
	w.Component.Shard.RemoveBatch(entities)
	w.Component.Well.RemoveBatch(entities)
	w.Component.Particle.RemoveBatch(entities)
}

// Clear removes all entities; resources and systems survive
func (w *World) Clear() {
	w.Component.clearAll()
}

// AddSystem inserts a system keeping ascending priority order
func (w *World) AddSystem(s System) {
	w.systems = append(w.systems, s)

	// Insertion-stable bubble toward the right slot
	for i := len(w.systems) - 1; i > 0; i-- {
		if w.systems[i].Priority() < w.systems[i-1].Priority() {
			w.systems[i], w.systems[i-1] = w.systems[i-1], w.systems[i]
		} else {
			break
		}
	}
}

// Update runs all systems in priority order
func (w *World) Update() {
	w.updateMutex.Lock()
	defer w.updateMutex.Unlock()

	for _, s := range w.systems {
		s.Update()
	}
}

// PushEvent queues an event for the next dispatch phase
func (w *World) PushEvent(t event.EventType, payload any) {
	w.eventQueue.Push(event.GameEvent{Type: t, Payload: payload})
}

// Events exposes the queue for router construction
func (w *World) Events() *event.Queue {
	return w.eventQueue
}
