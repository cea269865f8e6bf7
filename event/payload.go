package event

import (
	"github.com/seltf/shape-game/component"
	"github.com/seltf/shape-game/core"
	"github.com/seltf/shape-game/weapon"
)

// SoundRequestPayload carries the sound id to play
type SoundRequestPayload struct {
	Sound core.SoundType
}

// FireRequestPayload carries the launch direction (unit vector)
type FireRequestPayload struct {
	DirX, DirY float64
}

// EnemyKilledPayload reports a kill location and reward
type EnemyKilledPayload struct {
	Entity  core.Entity
	Variant component.EnemyVariant
	XP      int
	X, Y    float64
}

// WellSpawnRequestPayload carries the impact point and upgrade level
type WellSpawnRequestPayload struct {
	X, Y  float64
	Level int
}

// WellExpiredPayload reports where a well detonated
type WellExpiredPayload struct {
	X, Y float64
}

// ShieldRingPayload reports remaining ring count
type ShieldRingPayload struct {
	Remaining int
}

// PlayerDamagedPayload reports remaining player health
type PlayerDamagedPayload struct {
	Remaining int
}

// LevelUpPayload reports the new level and the sampled upgrade offer
type LevelUpPayload struct {
	Level   int
	Choices []weapon.UpgradeID
}

// UpgradeChosenPayload carries the picked upgrade
type UpgradeChosenPayload struct {
	ID weapon.UpgradeID
}
