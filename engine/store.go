package engine

import (
	"sync"

	"github.com/seltf/shape-game/core"
)

// Store is a generic container for one component type T, laid out as a
// dense sparse set: components sit in a packed slice for iteration,
// with an entity index mapping into it
type Store[T any] struct {
	mu       sync.RWMutex
	index    map[core.Entity]int
	entities []core.Entity
	data     []T
}

// NewStore creates a new component store for type T
func NewStore[T any]() *Store[T] {
	return &Store[T]{
		index:    make(map[core.Entity]int, 64),
		entities: make([]core.Entity, 0, 64),
		data:     make([]T, 0, 64),
	}
}

// Set inserts or updates a component for an entity
func (s *Store[T]) Set(e core.Entity, val T) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i, ok := s.index[e]; ok {
		s.data[i] = val
		return
	}
	s.index[e] = len(s.entities)
	s.entities = append(s.entities, e)
	s.data = append(s.data, val)
}

// Get retrieves a component for an entity
func (s *Store[T]) Get(e core.Entity) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if i, ok := s.index[e]; ok {
		return s.data[i], true
	}
	var zero T
	return zero, false
}

// Remove deletes a component from an entity.
// Swap-removes from the packed slices; a no-op for missing entities
func (s *Store[T]) Remove(e core.Entity) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.index[e]
	if !ok {
		return
	}
	last := len(s.entities) - 1
	if i != last {
		s.entities[i] = s.entities[last]
		s.data[i] = s.data[last]
		s.index[s.entities[i]] = i
	}
	var zero T
	s.data[last] = zero
	s.entities = s.entities[:last]
	s.data = s.data[:last]
	delete(s.index, e)
}

// Has checks if entity has this component
func (s *Store[T]) Has(e core.Entity) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.index[e]
	return ok
}

// All returns a snapshot of all entities with this component type
// Safe to iterate while the store is mutated
func (s *Store[T]) All() []core.Entity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]core.Entity, len(s.entities))
	copy(result, s.entities)
	return result
}

// Count returns number of entities with this component
func (s *Store[T]) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entities)
}

// Clear removes all components from this store
func (s *Store[T]) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.index = make(map[core.Entity]int, 64)
	s.entities = s.entities[:0]
	s.data = s.data[:0]
}

// RemoveBatch deletes multiple entities in one compaction pass,
// preserving the order of the survivors
func (s *Store[T]) RemoveBatch(entities []core.Entity) {
	if len(entities) == 0 {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	toRemove := make(map[core.Entity]struct{}, len(entities))
	removed := 0
	for _, e := range entities {
		if _, ok := s.index[e]; ok {
			toRemove[e] = struct{}{}
			delete(s.index, e)
			removed++
		}
	}
	if removed == 0 {
		return
	}

	writeIdx := 0
	for i, e := range s.entities {
		if _, drop := toRemove[e]; drop {
			continue
		}
		s.entities[writeIdx] = e
		s.data[writeIdx] = s.data[i]
		s.index[e] = writeIdx
		writeIdx++
	}
	var zero T
	for i := writeIdx; i < len(s.data); i++ {
		s.data[i] = zero
	}
	s.entities = s.entities[:writeIdx]
	s.data = s.data[:writeIdx]
}
