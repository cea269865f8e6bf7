package parameter

// System priorities; lower runs earlier in the tick
const (
	PriorityPlayer     = 10
	PrioritySpawn      = 20
	PriorityEnemy      = 30
	PriorityProjectile = 40
	PriorityShard      = 50
	PriorityWell       = 60
	PriorityCollision  = 70
	PriorityParticle   = 80
	PriorityDeath      = 90 // cleanup runs after all combat systems
	PriorityAudio      = 100
)
