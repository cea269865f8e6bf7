package component

import "time"

// PlayerComponent holds the player avatar state
type PlayerComponent struct {
	Radius float64
	Health int

	// Last non-zero input direction, used for dash and aimless fire
	FacingX, FacingY float64

	// Ticks left in the active dash burst and its locked direction
	DashTicks          int
	DashDirX, DashDirY float64

	// Cooldown deadlines in game time
	DashReadyAt time.Duration
	FireReadyAt time.Duration

	// Shield rings currently up; ring i sits at Radius + offset + i*spacing
	ShieldRings int
	// When the last ring broke; full restore at this deadline
	ShieldRestoreAt time.Duration
	ShieldDepleted  bool
}
