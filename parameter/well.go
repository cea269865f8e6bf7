package parameter

import "time"

// Gravity well spawned by weapon hits; at most one active at a time
const (
	WellTriggerChance  = 0.15 // per hit, scaled by upgrade level
	WellBaseRadius     = 40.0
	WellRadiusPerLevel = 20.0
	WellGrowTime       = 500 * time.Millisecond
	WellDuration       = 5000 * time.Millisecond
	WellPullStrength   = 15.0
	WellPullMinFactor  = 0.33
	WellCoreRadius     = 25.0
	WellCoreDamage     = 1
	WellCoreDamageHigh = 2 // at upgrade level 5+
	WellHighLevel      = 5
	WellFlingSpeed     = 12.0
	WellFlingTicks     = 20
)
