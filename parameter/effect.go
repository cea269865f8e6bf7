package parameter

// Death poof particles
const (
	ParticleCount = 5
	ParticleLife  = 15 // ticks
	ParticleSpeed = 3.0
)

// Progression
const (
	XPBaseThreshold   = 10
	XPThresholdGrowth = 1.2
	UpgradeOfferCount = 3
)
