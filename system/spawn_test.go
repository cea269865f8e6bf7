package system

import (
	"testing"

	"github.com/seltf/shape-game/component"
	"github.com/seltf/shape-game/parameter"
)

func TestInitialWaveSize(t *testing.T) {
	w := newTestWorld()
	newRig(w, NewSpawnSystem(w, 42))

	if got := w.Component.Enemy.Count(); got != parameter.InitialEnemyCount {
		t.Errorf("Expected %d enemies at level 0, got %d", parameter.InitialEnemyCount, got)
	}
}

func TestInitialWaveScalesWithStartLevel(t *testing.T) {
	w := newTestWorld()
	w.Resource.Config.StartLevel = 10
	newRig(w, NewSpawnSystem(w, 42))

	expected := int(float64(parameter.InitialEnemyCount) * (1 + parameter.InitialCountPerLevel*10))
	if got := w.Component.Enemy.Count(); got != expected {
		t.Errorf("Expected %d enemies at start level 10, got %d", expected, got)
	}
}

func TestSpawnPlacementInMarginBand(t *testing.T) {
	w := newTestWorld()
	newRig(w, NewSpawnSystem(w, 7))

	for _, e := range w.Component.Enemy.All() {
		kc, _ := w.Component.Kinetic.Get(e)
		inside := kc.X >= 0 && kc.X <= parameter.ArenaWidth &&
			kc.Y >= 0 && kc.Y <= parameter.ArenaHeight
		if inside {
			t.Errorf("Expected spawn outside the arena, got (%v, %v)", kc.X, kc.Y)
		}
		if kc.X < -parameter.SpawnMargin || kc.X > parameter.ArenaWidth+parameter.SpawnMargin ||
			kc.Y < -parameter.SpawnMargin || kc.Y > parameter.ArenaHeight+parameter.SpawnMargin {
			t.Errorf("Expected spawn within the margin band, got (%v, %v)", kc.X, kc.Y)
		}
	}
}

func TestRespawnBatchAfterInterval(t *testing.T) {
	w := newTestWorld()
	r := newRig(w, NewSpawnSystem(w, 42))

	before := w.Component.Enemy.Count()

	// No respawn before the interval elapses
	r.step(int(parameter.RespawnInterval/parameter.TickInterval) - 2)
	if got := w.Component.Enemy.Count(); got != before {
		t.Fatalf("Expected no respawn before the interval, got %d of %d", got, before)
	}

	r.step(4)
	expected := before + parameter.RespawnBatchSize
	if got := w.Component.Enemy.Count(); got != expected {
		t.Errorf("Expected batch of %d after interval, got %d total (want %d)",
			parameter.RespawnBatchSize, got, expected)
	}
}

func TestRespawnRespectsPopulationCap(t *testing.T) {
	w := newTestWorld()
	r := newRig(w, NewSpawnSystem(w, 42))

	// Fill close to the cap by hand
	for w.Component.Enemy.Count() < parameter.MaxEnemyCount-5 {
		placeEnemy(w, -50, 50, 1)
	}

	r.step(int(parameter.RespawnInterval/parameter.TickInterval) + 2)

	if got := w.Component.Enemy.Count(); got > parameter.MaxEnemyCount {
		t.Errorf("Expected population capped at %d, got %d", parameter.MaxEnemyCount, got)
	}
	if got := w.Component.Enemy.Count(); got != parameter.MaxEnemyCount {
		t.Errorf("Expected partial batch up to the cap, got %d", got)
	}
}

func TestLowLevelSpawnsNoBrutes(t *testing.T) {
	w := newTestWorld()
	newRig(w, NewSpawnSystem(w, 1234))

	for _, e := range w.Component.Enemy.All() {
		ec, _ := w.Component.Enemy.Get(e)
		if ec.Variant == component.EnemyBrute {
			t.Error("Expected no brutes below the unlock level")
		}
	}
}

func TestHighLevelSpawnsMixedVariants(t *testing.T) {
	w := newTestWorld()
	w.Resource.Config.StartLevel = 50
	newRig(w, NewSpawnSystem(w, 1234))

	counts := make(map[component.EnemyVariant]int)
	for _, e := range w.Component.Enemy.All() {
		ec, _ := w.Component.Enemy.Get(e)
		counts[ec.Variant]++
	}
	// At level 50 both elite chances sit at their caps; with 85 spawns
	// the odds of an all-chaser wave are negligible
	if counts[component.EnemyTank] == 0 && counts[component.EnemyBrute] == 0 {
		t.Errorf("Expected elite variants at high level, got %v", counts)
	}
}
