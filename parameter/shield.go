package parameter

import "time"

// Shield rings around the player; ring i sits at PlayerRadius + 15 + i*12
const (
	ShieldRingOffset   = 15.0
	ShieldRingSpacing  = 12.0
	ShieldMaxLevel     = 3
	ShieldPushRadius   = 150.0
	ShieldPushForce    = 2.5
	ShieldPushTicks    = 16
	ShieldImmuneTicks  = 10
	ShieldCooldown     = 5000 * time.Millisecond
	ContactImmuneTicks = 10
)
