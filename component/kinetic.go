package component

import "github.com/seltf/shape-game/core"

// KineticComponent attaches continuous motion state to an entity
type KineticComponent struct {
	core.Kinetic
}
