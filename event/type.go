package event

// EventType represents the type of game event
type EventType int

const (
	// === Engine Event ===

	// EventGameReset restores all systems to initial state
	// Trigger: Shell restart request
	// Consumer: All systems | Payload: nil
	EventGameReset EventType = iota

	// === Audio Event ===

	// EventSoundRequest requests audio playback
	// Trigger: Systems requiring audio feedback
	// Consumer: AudioSystem | Payload: *SoundRequestPayload
	EventSoundRequest

	// === Combat Event ===

	// EventFireRequest launches the primary projectile
	// Trigger: PlayerSystem when the fire input is armed
	// Consumer: ProjectileSystem | Payload: *FireRequestPayload
	EventFireRequest

	// EventEnemyKilled reports a confirmed kill
	// Trigger: DeathSystem after terminal cleanup
	// Consumer: Shell HUD, AudioSystem | Payload: *EnemyKilledPayload
	EventEnemyKilled

	// EventWellSpawnRequest asks for a gravity well at an impact point
	// Trigger: ProjectileSystem on a triggering hit
	// Consumer: WellSystem | Payload: *WellSpawnRequestPayload
	EventWellSpawnRequest

	// EventWellExpired reports a well detonation
	// Trigger: WellSystem at end of well lifetime
	// Consumer: AudioSystem, shell effects | Payload: *WellExpiredPayload
	EventWellExpired

	// === Player Event ===

	// EventShieldRingBroken reports one ring absorbed a hit
	// Trigger: CollisionSystem
	// Consumer: AudioSystem, shell HUD | Payload: *ShieldRingPayload
	EventShieldRingBroken

	// EventShieldDepleted reports the last ring broke; cooldown started
	// Trigger: CollisionSystem
	// Consumer: AudioSystem, shell HUD | Payload: nil
	EventShieldDepleted

	// EventShieldRestored reports rings came back after cooldown
	// Trigger: CollisionSystem
	// Consumer: Shell HUD | Payload: *ShieldRingPayload
	EventShieldRestored

	// EventPlayerDamaged reports unshielded contact damage
	// Trigger: CollisionSystem
	// Consumer: AudioSystem, shell HUD | Payload: *PlayerDamagedPayload
	EventPlayerDamaged

	// EventPlayerDied ends the run
	// Trigger: CollisionSystem at zero health
	// Consumer: Shell | Payload: nil
	EventPlayerDied

	// === Progression Event ===

	// EventLevelUp reports a level gain with an upgrade offer
	// Trigger: DeathSystem when XP crosses the threshold
	// Consumer: Shell upgrade menu | Payload: *LevelUpPayload
	EventLevelUp

	// EventUpgradeChosen applies a picked upgrade
	// Trigger: Shell upgrade menu
	// Consumer: PlayerSystem | Payload: *UpgradeChosenPayload
	EventUpgradeChosen
)

// GameEvent pairs a type with its payload
type GameEvent struct {
	Type    EventType
	Payload any
}
