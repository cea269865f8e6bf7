package engine

import (
	"sync"
	"testing"

	"github.com/seltf/shape-game/core"
)

type mockComponent struct {
	Value int
}

func TestStoreSetGet(t *testing.T) {
	store := NewStore[mockComponent]()

	store.Set(1, mockComponent{Value: 10})
	store.Set(2, mockComponent{Value: 20})

	val, ok := store.Get(1)
	if !ok || val.Value != 10 {
		t.Errorf("Expected value 10, got %v (ok=%v)", val.Value, ok)
	}
	if store.Count() != 2 {
		t.Errorf("Expected count 2, got %d", store.Count())
	}

	// Overwrite must not duplicate the entity
	store.Set(1, mockComponent{Value: 11})
	if store.Count() != 2 {
		t.Errorf("Expected count 2 after overwrite, got %d", store.Count())
	}
	val, _ = store.Get(1)
	if val.Value != 11 {
		t.Errorf("Expected overwritten value 11, got %d", val.Value)
	}
}

func TestStoreRemove(t *testing.T) {
	store := NewStore[mockComponent]()
	store.Set(1, mockComponent{Value: 1})
	store.Set(2, mockComponent{Value: 2})

	store.Remove(1)
	if store.Has(1) {
		t.Error("Expected entity 1 removed")
	}
	if !store.Has(2) {
		t.Error("Expected entity 2 to survive")
	}
	if store.Count() != 1 {
		t.Errorf("Expected count 1, got %d", store.Count())
	}

	// Removing a missing entity is a no-op
	store.Remove(99)
	if store.Count() != 1 {
		t.Errorf("Expected count 1 after no-op remove, got %d", store.Count())
	}
}

func TestStoreAllSnapshot(t *testing.T) {
	store := NewStore[mockComponent]()
	store.Set(1, mockComponent{})
	store.Set(2, mockComponent{})
	store.Set(3, mockComponent{})

	snapshot := store.All()
	if len(snapshot) != 3 {
		t.Fatalf("Expected 3 entities, got %d", len(snapshot))
	}

	// Mutating the store must not corrupt an in-flight snapshot
	for _, e := range snapshot {
		store.Remove(e)
	}
	if store.Count() != 0 {
		t.Errorf("Expected empty store, got %d", store.Count())
	}
	if len(snapshot) != 3 {
		t.Errorf("Expected snapshot untouched, got %d", len(snapshot))
	}
}

func TestStoreRemoveBatch(t *testing.T) {
	store := NewStore[mockComponent]()
	for i := core.Entity(1); i <= 10; i++ {
		store.Set(i, mockComponent{Value: int(i)})
	}

	store.RemoveBatch([]core.Entity{2, 4, 6, 8, 10, 99})
	if store.Count() != 5 {
		t.Errorf("Expected 5 entities after batch remove, got %d", store.Count())
	}
	for _, e := range []core.Entity{1, 3, 5, 7, 9} {
		if !store.Has(e) {
			t.Errorf("Expected entity %d to survive", e)
		}
	}

	store.RemoveBatch(nil)
	if store.Count() != 5 {
		t.Errorf("Expected empty batch to be a no-op, got %d", store.Count())
	}
}

func TestStoreConcurrentAccess(t *testing.T) {
	store := NewStore[mockComponent]()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(base int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				e := core.Entity(base*100 + j + 1)
				store.Set(e, mockComponent{Value: j})
				store.Get(e)
				store.All()
			}
		}(i)
	}
	wg.Wait()

	if store.Count() != 800 {
		t.Errorf("Expected 800 entities, got %d", store.Count())
	}
}
