package core

// Kinetic holds continuous position and velocity in arena units
// Positions are entity centers; velocities are units per tick
type Kinetic struct {
	X, Y       float64
	VelX, VelY float64
}
