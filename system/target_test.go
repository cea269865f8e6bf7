package system

import (
	"testing"

	"github.com/seltf/shape-game/core"
)

func TestNearestEnemyPicksClosest(t *testing.T) {
	w := newTestWorld()
	placeEnemy(w, 400, 200, 1)
	near := placeEnemy(w, 320, 200, 1)

	got, distSq, found := nearestEnemy(w, 300, 200, -1, nil)
	if !found {
		t.Fatal("Expected an enemy found")
	}
	if got != near {
		t.Errorf("Expected nearest enemy %d, got %d", near, got)
	}
	if distSq != 400 {
		t.Errorf("Expected squared distance 400, got %v", distSq)
	}
}

func TestNearestEnemySkipsDeadAndExcluded(t *testing.T) {
	w := newTestWorld()
	dead := placeEnemy(w, 310, 200, 0)
	excluded := placeEnemy(w, 320, 200, 1)
	fallback := placeEnemy(w, 330, 200, 1)

	got, _, found := nearestEnemy(w, 300, 200, -1, func(e core.Entity) bool {
		return e == excluded
	})
	if !found {
		t.Fatal("Expected an enemy found")
	}
	if got == dead {
		t.Error("Expected dead enemy skipped")
	}
	if got != fallback {
		t.Errorf("Expected fallback enemy %d, got %d", fallback, got)
	}
}

func TestNearestEnemyRespectsMaxDistance(t *testing.T) {
	w := newTestWorld()
	placeEnemy(w, 400, 200, 1)

	if _, _, found := nearestEnemy(w, 300, 200, 50*50, nil); found {
		t.Error("Expected no enemy inside radius 50")
	}
	if _, _, found := nearestEnemy(w, 300, 200, 101*101, nil); !found {
		t.Error("Expected enemy inside radius 101")
	}
}

func TestNearestEnemyTieBreaksOnInsertionOrder(t *testing.T) {
	// Two enemies at the same squared distance; the first one stored wins
	w := newTestWorld()
	above := placeEnemy(w, 300, 150, 1)
	placeEnemy(w, 300, 250, 1)

	got, _, found := nearestEnemy(w, 300, 200, -1, nil)
	if !found {
		t.Fatal("Expected an enemy found")
	}
	if got != above {
		t.Errorf("Expected first stored enemy %d to win the tie, got %d", above, got)
	}

	// Reversed insertion flips the winner
	w = newTestWorld()
	below := placeEnemy(w, 300, 250, 1)
	placeEnemy(w, 300, 150, 1)

	got, _, found = nearestEnemy(w, 300, 200, -1, nil)
	if !found {
		t.Fatal("Expected an enemy found")
	}
	if got != below {
		t.Errorf("Expected first stored enemy %d to win the tie, got %d", below, got)
	}
}
