package physics

import (
	"github.com/seltf/shape-game/core"
	"github.com/seltf/shape-game/vmath"
)

// HomingProfile defines homing behavior parameters
type HomingProfile struct {
	Speed    float64 // Target cruising speed (units/tick)
	Strength float64 // Velocity blend factor per tick, 0..1
}

// ApplyHoming blends velocity toward the target position
// The desired velocity is the unit direction to target scaled by profile speed;
// current velocity moves toward it by the profile strength each tick
func ApplyHoming(k *core.Kinetic, targetX, targetY float64, profile HomingProfile) {
	dx := targetX - k.X
	dy := targetY - k.Y
	dirX, dirY := vmath.Normalize2D(dx, dy)
	if dirX == 0 && dirY == 0 {
		return
	}
	desiredX := dirX * profile.Speed
	desiredY := dirY * profile.Speed
	k.VelX += (desiredX - k.VelX) * profile.Strength
	k.VelY += (desiredY - k.VelY) * profile.Strength
}

// ApplyChase sets velocity straight at the target position at the given speed
// Returns false if already at the target (velocity untouched)
func ApplyChase(k *core.Kinetic, targetX, targetY, speed float64) bool {
	dirX, dirY := vmath.Normalize2D(targetX-k.X, targetY-k.Y)
	if dirX == 0 && dirY == 0 {
		return false
	}
	k.VelX = dirX * speed
	k.VelY = dirY * speed
	return true
}

// StepToward moves position directly toward the target without overshoot
// Returns true when the remaining distance was within arriveRadius
func StepToward(k *core.Kinetic, targetX, targetY, speed, arriveRadius float64) bool {
	dx := targetX - k.X
	dy := targetY - k.Y
	dist := vmath.Magnitude(dx, dy)
	if dist < arriveRadius {
		return true
	}
	step := speed
	if step > dist {
		step = dist
	}
	k.X += dx / dist * step
	k.Y += dy / dist * step
	return false
}
