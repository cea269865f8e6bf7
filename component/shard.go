package component

import "time"

// ShardComponent is a shrapnel fragment; dies on first hit or expiry
type ShardComponent struct {
	Age       time.Duration
	Lifetime  time.Duration
	Damage    int
	Explosive bool // bursts into a second shard ring on impact
}
