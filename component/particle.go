package component

// ParticleComponent is a short-lived death poof spark
type ParticleComponent struct {
	TicksLeft int
	MaxTicks  int
}
