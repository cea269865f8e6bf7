// Package weapon compiles the player's owned upgrades into effective
// weapon stats. Compilation is a pure fold: the same upgrade multiset
// always produces the same stats, regardless of acquisition order.
package weapon

// Stats is the effective weapon configuration used by combat systems
type Stats struct {
	Damage          int
	ProjectileSpeed float64
	Homing          float64 // velocity blend strength, 0 = no homing
	Bounces         int     // ricochet budget, walls and enemies
	Splits          bool    // fork into two on the initial hit
	ShrapnelLevel   int
	ExplosiveLevel  int // shards burst again on impact when > 0
	ChainLevel      int // chain lightning arcs per initial hit
	BlackHoleLevel  int
	ShieldLevel     int // capped at ShieldLevelCap
}

// Base weapon before any upgrades
const (
	BaseDamage          = 1
	BaseProjectileSpeed = 16.0
	BaseHoming          = 0.0
	BaseBounces         = 0
	BaseSplits          = true
	ShieldLevelCap      = 3
)

// BaseStats returns the unupgraded weapon
func BaseStats() Stats {
	return Stats{
		Damage:          BaseDamage,
		ProjectileSpeed: BaseProjectileSpeed,
		Homing:          BaseHoming,
		Bounces:         BaseBounces,
		Splits:          BaseSplits,
	}
}
