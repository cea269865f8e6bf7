package parameter

import (
	"math"
	"time"
)

// Projectile flight
const (
	ProjectileRadius     = 4.0
	CollisionDistance    = 30.0
	CollisionDistanceSq  = CollisionDistance * CollisionDistance
	ProjectileLifetime   = 10000 * time.Millisecond
	ReturnTriggerTime    = 500 * time.Millisecond
	ReturnSpeed          = 50.0
	ReturnArriveDistance = 15.0
	MaxAttackRange       = 500.0
)

// Each ricochet charges this much against the remaining flight window
const RicochetTimeCredit = 500 * time.Millisecond

// Split forks
const (
	SplitAngleDegrees = 30.0
	SplitAngle        = SplitAngleDegrees * math.Pi / 180
)

// Chain lightning
const (
	ChainBaseRange     = 150.0
	ChainRangePerLevel = 60.0
	ChainRangeFalloff  = 0.8
	ForkRangeFactor    = 0.8
)

// Shrapnel shards
const (
	ShardSpeed         = 8.0
	ShardLifetime      = 1000 * time.Millisecond
	ShardDrag          = 0.98
	ShardConeDegrees   = 60.0
	ShardCone          = ShardConeDegrees * math.Pi / 180
	BurstShardBase     = 3
	BurstShardPerLevel = 2
	BurstSpeedBase     = 4.0
	BurstSpeedPerLevel = 1.5
)
