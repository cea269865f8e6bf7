package component

import (
	"time"

	"github.com/seltf/shape-game/core"
)

// ProjectileKind distinguishes the primary shot from its offspring
type ProjectileKind uint8

const (
	// ProjectilePrimary is the player's main shot; one in flight at a time
	ProjectilePrimary ProjectileKind = iota
	// ProjectileSplit is a fork spawned on the initial hit; cannot re-split
	ProjectileSplit
	// ProjectileMiniFork is spawned by chain lightning; hits once, then returns
	ProjectileMiniFork
)

// ProjectilePhase is the lifecycle state machine
type ProjectilePhase uint8

const (
	PhaseOutbound ProjectilePhase = iota
	PhaseReturning
)

// ProjectileComponent holds the flight state of a shot
type ProjectileComponent struct {
	Kind  ProjectileKind
	Phase ProjectilePhase

	Damage int
	Speed  float64
	Homing float64 // velocity blend strength; 0 = ballistic

	// Enemy-to-enemy ricochet budget and count spent
	Bounces    int
	MaxBounces int

	// Abilities snapshotted from weapon stats at fire time
	AllowSplit     bool
	HasSplit       bool
	ShrapnelLevel  int
	ExplosiveLevel int
	ChainLevel     int
	BlackHoleLevel int

	// Current homing target; retargeted when it dies
	Target core.Entity

	// Enemies this shot (and its chain) has already damaged
	Hit map[core.Entity]struct{}

	TimeAlive        time.Duration
	Lifetime         time.Duration
	DistanceTraveled float64
	MaxDistance      float64
}

// MarkHit records an enemy as damaged by this shot family
func (p *ProjectileComponent) MarkHit(e core.Entity) {
	if p.Hit == nil {
		p.Hit = make(map[core.Entity]struct{}, 8)
	}
	p.Hit[e] = struct{}{}
}

// HasHit reports whether an enemy was already damaged by this shot family
func (p *ProjectileComponent) HasHit(e core.Entity) bool {
	_, ok := p.Hit[e]
	return ok
}

// CloneHits copies the hit set for offspring projectiles
func (p *ProjectileComponent) CloneHits() map[core.Entity]struct{} {
	out := make(map[core.Entity]struct{}, len(p.Hit)+1)
	for e := range p.Hit {
		out[e] = struct{}{}
	}
	return out
}
