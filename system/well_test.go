package system

import (
	"testing"

	"github.com/seltf/shape-game/event"
	"github.com/seltf/shape-game/parameter"
	"github.com/seltf/shape-game/vmath"
)

func spawnWell(r *rig, x, y float64, level int) {
	r.world.PushEvent(event.EventWellSpawnRequest, &event.WellSpawnRequestPayload{
		X: x, Y: y, Level: level,
	})
	r.step(1)
}

func TestWellSingleInstance(t *testing.T) {
	w := newTestWorld()
	r := newRig(w, NewWellSystem(w))

	spawnWell(r, 300, 200, 1)
	if got := w.Component.Well.Count(); got != 1 {
		t.Fatalf("Expected 1 well, got %d", got)
	}

	spawnWell(r, 100, 100, 1)
	if got := w.Component.Well.Count(); got != 1 {
		t.Errorf("Expected second well request dropped, got %d", got)
	}
}

func TestWellRadiusGrowth(t *testing.T) {
	w := newTestWorld()
	r := newRig(w, NewWellSystem(w))

	spawnWell(r, 300, 200, 1)
	maxRadius := parameter.WellBaseRadius + parameter.WellRadiusPerLevel

	entities := w.Component.Well.All()
	wc, _ := w.Component.Well.Get(entities[0])
	if wc.Radius >= maxRadius {
		t.Errorf("Expected radius still growing, got %v of %v", wc.Radius, maxRadius)
	}

	r.step(int(parameter.WellGrowTime / parameter.TickInterval))
	wc, _ = w.Component.Well.Get(entities[0])
	if wc.Radius != maxRadius {
		t.Errorf("Expected full radius %v after grow window, got %v", maxRadius, wc.Radius)
	}
}

func TestWellCapturesAndPullsEnemies(t *testing.T) {
	w := newTestWorld()
	r := newRig(w, NewWellSystem(w), NewEnemySystem(w))

	// No player in the rig: the enemy only moves under the pull
	enemy := placeEnemy(w, 340, 200, 100)
	spawnWell(r, 300, 200, 1)
	r.step(6) // radius now covers the enemy

	ec, _ := w.Component.Enemy.Get(enemy)
	if ec.CapturedBy == 0 {
		t.Fatal("Expected enemy captured by the well")
	}

	before, _ := w.Component.Kinetic.Get(enemy)
	r.step(1)
	after, _ := w.Component.Kinetic.Get(enemy)

	distBefore := vmath.DistSq(before.X, before.Y, 300, 200)
	distAfter := vmath.DistSq(after.X, after.Y, 300, 200)
	if distAfter >= distBefore {
		t.Errorf("Expected pull toward center, distSq %v -> %v", distBefore, distAfter)
	}
}

func TestWellCoreGrind(t *testing.T) {
	w := newTestWorld()
	r := newRig(w, NewWellSystem(w))

	enemy := placeEnemy(w, 300, 200, 5)
	spawnWell(r, 300, 200, 1)
	r.step(3)

	ec, _ := w.Component.Enemy.Get(enemy)
	if ec.Health >= 5 {
		t.Errorf("Expected core damage per tick, got health %d", ec.Health)
	}
}

func TestWellDetonationFlingsAndExpires(t *testing.T) {
	w := newTestWorld()
	r := newRig(w, NewWellSystem(w))

	enemy := placeEnemy(w, 340, 200, 1000)
	spawnWell(r, 300, 200, 1)

	// Claim happens on the first update after the radius covers the enemy
	r.step(10)
	ec, _ := w.Component.Enemy.Get(enemy)
	if ec.CapturedBy == 0 {
		t.Fatal("Expected capture before detonation")
	}

	r.step(int(parameter.WellDuration / parameter.TickInterval))

	if got := w.Component.Well.Count(); got != 0 {
		t.Errorf("Expected well gone after its lifetime, got %d", got)
	}
	if r.rec.count(event.EventWellExpired) != 1 {
		t.Errorf("Expected 1 expiry event, got %d", r.rec.count(event.EventWellExpired))
	}

	ec, _ = w.Component.Enemy.Get(enemy)
	if ec.CapturedBy != 0 {
		t.Error("Expected capture released on detonation")
	}
	if ec.PullTicks == 0 {
		t.Error("Expected outward fling after detonation")
	}
	if speed := vmath.Magnitude(ec.PullVelX, ec.PullVelY); speed != parameter.WellFlingSpeed {
		t.Errorf("Expected fling speed %v, got %v", parameter.WellFlingSpeed, speed)
	}
}

func TestWellHighLevelCoreDamage(t *testing.T) {
	w := newTestWorld()
	r := newRig(w, NewWellSystem(w))

	enemy := placeEnemy(w, 300, 200, 100)
	spawnWell(r, 300, 200, parameter.WellHighLevel)

	ec, _ := w.Component.Enemy.Get(enemy)
	if 100-ec.Health != parameter.WellCoreDamageHigh {
		t.Errorf("Expected %d core damage at high level, got %d",
			parameter.WellCoreDamageHigh, 100-ec.Health)
	}
}
