package component

import "github.com/seltf/shape-game/core"

// EnemyVariant selects enemy archetype
type EnemyVariant uint8

const (
	EnemyChaser EnemyVariant = iota // fast, fragile
	EnemyBrute                      // medium speed, 5 hp
	EnemyTank                       // slow, 8 hp, best XP
)

// EnemyComponent holds per-enemy combat and steering state
type EnemyComponent struct {
	Variant EnemyVariant
	Health  int
	Speed   float64
	Radius  float64
	XP      int

	// Knockback push from a shield break; overrides chase while ticking
	PushVelX, PushVelY float64
	PushTicks          int

	// Gravity well capture; pull overrides push and chase
	CapturedBy core.Entity

	// Residual fling velocity after a well detonation
	PullVelX, PullVelY float64
	PullTicks          int

	// Contact immunity window after a shield or body hit
	ImmuneTicks int
}
