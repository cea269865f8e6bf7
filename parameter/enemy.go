package parameter

// Enemy geometry
const (
	EnemySize   = 20.0
	EnemyRadius = EnemySize / 2
)

// Per-variant movement speed (units/tick)
const (
	ChaserSpeed = 5.0
	BruteSpeed  = 4.0
	TankSpeed   = 3.0
)

// Per-variant health
const (
	ChaserHealth = 1
	BruteHealth  = 5
	TankHealth   = 8
)

// Per-variant XP reward
const (
	ChaserXP = 1
	BruteXP  = 3
	TankXP   = 7
)

// Soft separation between overlapping enemies
const (
	SeparationFactor = 0.5
)
