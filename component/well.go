package component

import "time"

// WellComponent is a gravity well anchored at its entity's kinetic position.
// At most one well is active in the world
type WellComponent struct {
	Level     int
	Age       time.Duration
	Duration  time.Duration
	Radius    float64 // current capture radius; grows toward MaxRadius
	MaxRadius float64
}
