package core

// SoundType identifies a synthesized sound effect
type SoundType int

const (
	SoundNone SoundType = iota
	SoundFire
	SoundHit
	SoundKill
	SoundShrapnel
	SoundShieldBlock
	SoundShieldDown
	SoundWellDetonate
	SoundLevelUp
	SoundPlayerHurt
	SoundDash
	SoundGameOver

	SoundCount
)
