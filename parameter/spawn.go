package parameter

import "time"

// Wave sizing
const (
	InitialEnemyCount    = 10
	InitialCountPerLevel = 0.15 // +15% per level
	MaxEnemyCount        = 150
	MaxCountPerLevel     = 0.05 // +5% per level
	RespawnBatchSize     = 20
	RespawnBatchPerLevel = 0.025 // +2.5% per level
)

// Respawn pacing; interval shrinks with minutes played
const (
	RespawnInterval          = 10000 * time.Millisecond
	RespawnIntervalMin       = 3000 * time.Millisecond
	RespawnIntervalPerMinute = 2000 * time.Millisecond
)

// Placement band outside the arena edges
const (
	SpawnMargin = 200.0
)

// Variant composition by level
const (
	TankChancePerLevel  = 0.015
	TankChanceCap       = 0.3
	BruteChanceBase     = 0.3
	BruteChancePerLevel = 0.015
	BruteChanceCap      = 0.6
	BruteMinLevel       = 5
)
