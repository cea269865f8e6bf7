package system

import (
	"testing"

	"github.com/seltf/shape-game/parameter"
	"github.com/seltf/shape-game/vmath"
)

func TestEnemyChasesPlayer(t *testing.T) {
	w := newTestWorld()
	r := newRig(w, NewEnemySystem(w))
	placePlayer(w, 300, 200, 0)
	enemy := placeEnemy(w, 100, 200, 1)

	r.step(1)

	kc, _ := w.Component.Kinetic.Get(enemy)
	if kc.X != 100+parameter.ChaserSpeed {
		t.Errorf("Expected chase step to x %v, got %v", 100+parameter.ChaserSpeed, kc.X)
	}
	if kc.Y != 200 {
		t.Errorf("Expected straight-line chase, got y %v", kc.Y)
	}
}

func TestEnemyPushOverridesChase(t *testing.T) {
	w := newTestWorld()
	r := newRig(w, NewEnemySystem(w))
	placePlayer(w, 300, 200, 0)
	enemy := placeEnemy(w, 100, 200, 1)

	ec, _ := w.Component.Enemy.Get(enemy)
	ec.PushVelX, ec.PushVelY = -2, 0
	ec.PushTicks = 3
	w.Component.Enemy.Set(enemy, ec)

	r.step(3)
	kc, _ := w.Component.Kinetic.Get(enemy)
	if kc.X != 100-6 {
		t.Errorf("Expected 3 push ticks away from player, got x %v", kc.X)
	}

	// Push exhausted, chase resumes
	r.step(1)
	kc, _ = w.Component.Kinetic.Get(enemy)
	if kc.X != 94+parameter.ChaserSpeed {
		t.Errorf("Expected chase after push expired, got x %v", kc.X)
	}
}

func TestEnemyFlingOverridesPush(t *testing.T) {
	w := newTestWorld()
	r := newRig(w, NewEnemySystem(w))
	placePlayer(w, 300, 200, 0)
	enemy := placeEnemy(w, 100, 200, 1)

	ec, _ := w.Component.Enemy.Get(enemy)
	ec.PullVelX, ec.PullVelY = 0, parameter.WellFlingSpeed
	ec.PullTicks = 2
	ec.PushVelX = -2
	ec.PushTicks = 5
	w.Component.Enemy.Set(enemy, ec)

	r.step(1)
	kc, _ := w.Component.Kinetic.Get(enemy)
	if kc.Y != 200+parameter.WellFlingSpeed {
		t.Errorf("Expected fling to win over push, got y %v", kc.Y)
	}
	if kc.X != 100 {
		t.Errorf("Expected no push movement during fling, got x %v", kc.X)
	}
}

func TestEnemyImmunityDecrements(t *testing.T) {
	w := newTestWorld()
	r := newRig(w, NewEnemySystem(w))
	placePlayer(w, 300, 200, 0)
	enemy := placeEnemy(w, 100, 200, 1)

	ec, _ := w.Component.Enemy.Get(enemy)
	ec.ImmuneTicks = 3
	w.Component.Enemy.Set(enemy, ec)

	r.step(2)
	ec, _ = w.Component.Enemy.Get(enemy)
	if ec.ImmuneTicks != 1 {
		t.Errorf("Expected immunity at 1 tick, got %d", ec.ImmuneTicks)
	}
	r.step(2)
	ec, _ = w.Component.Enemy.Get(enemy)
	if ec.ImmuneTicks != 0 {
		t.Errorf("Expected immunity expired, got %d", ec.ImmuneTicks)
	}
}

func TestEnemySeparation(t *testing.T) {
	w := newTestWorld()
	r := newRig(w, NewEnemySystem(w))
	// No player: enemies hold position, only separation applies

	a := placeEnemy(w, 300, 200, 1)
	b := placeEnemy(w, 304, 200, 1)

	before := vmath.DistSq(300, 200, 304, 200)
	r.step(1)

	ka, _ := w.Component.Kinetic.Get(a)
	kb, _ := w.Component.Kinetic.Get(b)
	after := vmath.DistSq(ka.X, ka.Y, kb.X, kb.Y)
	if after <= before {
		t.Errorf("Expected overlapping enemies pushed apart, distSq %v -> %v", before, after)
	}
}

func TestEnemyReleasedWhenWellGone(t *testing.T) {
	w := newTestWorld()
	r := newRig(w, NewEnemySystem(w))
	placePlayer(w, 300, 200, 0)
	enemy := placeEnemy(w, 100, 200, 1)

	// Claimed by a well that no longer exists
	ec, _ := w.Component.Enemy.Get(enemy)
	ec.CapturedBy = 9999
	w.Component.Enemy.Set(enemy, ec)

	r.step(1)
	ec, _ = w.Component.Enemy.Get(enemy)
	if ec.CapturedBy != 0 {
		t.Errorf("Expected capture cleared for a dead well, got %v", ec.CapturedBy)
	}

	r.step(1)
	kc, _ := w.Component.Kinetic.Get(enemy)
	if kc.X <= 100 {
		t.Errorf("Expected chase resumed after release, got x %v", kc.X)
	}
}
