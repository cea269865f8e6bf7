package parameter

import "time"

// Player movement
const (
	PlayerSize            = 20.0
	PlayerRadius          = PlayerSize / 2
	PlayerAcceleration    = 3.5
	PlayerMaxSpeed        = 6.0
	PlayerFriction        = 0.70
	PlayerVelocityEpsilon = 0.01
	PlayerMaxHealth       = 1
)

// Dash: a burst covering DashDistance over DashTicks ticks, friction
// suspended while active
const (
	DashDistance = 60.0
	DashTicks    = 4
	DashSpeed    = DashDistance / DashTicks
	DashCooldown = 500 * time.Millisecond
)

// Weapon trigger
const (
	AttackCooldown = 500 * time.Millisecond
)
