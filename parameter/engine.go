package parameter

import "time"

// Simulation tick
const (
	TickInterval = 50 * time.Millisecond
)

// Event queue capacity; overflow drops the oldest unread event
const (
	EventQueueSize = 256
)

// Default arena dimensions in simulation units
const (
	ArenaWidth  = 600.0
	ArenaHeight = 400.0
)
