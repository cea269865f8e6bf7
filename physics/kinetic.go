package physics

import (
	"github.com/seltf/shape-game/core"
	"github.com/seltf/shape-game/vmath"
)

// Integrate advances position by one tick: p = p + v
// Velocities are expressed in units per tick
func Integrate(k *core.Kinetic) {
	k.X += k.VelX
	k.Y += k.VelY
}

// ApplyImpulse adds velocity delta (momentum transfer)
func ApplyImpulse(k *core.Kinetic, vx, vy float64) {
	k.VelX += vx
	k.VelY += vy
}

// SetImpulse overrides velocity (hard redirect)
func SetImpulse(k *core.Kinetic, vx, vy float64) {
	k.VelX = vx
	k.VelY = vy
}

// CapSpeed clamps velocity magnitude to maxSpeed
func CapSpeed(k *core.Kinetic, maxSpeed float64) {
	k.VelX, k.VelY = vmath.ClampMagnitude(k.VelX, k.VelY, maxSpeed)
}

// ApplyFriction scales velocity by factor and snaps tiny residue to zero
func ApplyFriction(k *core.Kinetic, factor, epsilon float64) {
	k.VelX *= factor
	k.VelY *= factor
	if k.VelX > -epsilon && k.VelX < epsilon {
		k.VelX = 0
	}
	if k.VelY > -epsilon && k.VelY < epsilon {
		k.VelY = 0
	}
}

// ClampBounds constrains position to [minX+inset, maxX-inset] x [minY+inset, maxY-inset]
// without altering velocity. Use for entities that slide along walls
func ClampBounds(k *core.Kinetic, minX, minY, maxX, maxY, inset float64) {
	if k.X < minX+inset {
		k.X = minX + inset
	}
	if k.X > maxX-inset {
		k.X = maxX - inset
	}
	if k.Y < minY+inset {
		k.Y = minY + inset
	}
	if k.Y > maxY-inset {
		k.Y = maxY - inset
	}
}

// OutOfBounds reports whether position left the [0,width] x [0,height] box
func OutOfBounds(k *core.Kinetic, width, height float64) bool {
	return k.X < 0 || k.X > width || k.Y < 0 || k.Y > height
}

// ReflectBoundsX handles horizontal boundary collision, returns true if reflection occurred
func ReflectBoundsX(k *core.Kinetic, minX, maxX float64) bool {
	if k.X < minX {
		k.X = minX
		k.VelX, k.VelY = vmath.ReflectAxisX(k.VelX, k.VelY)
		return true
	}
	if k.X > maxX {
		k.X = maxX
		k.VelX, k.VelY = vmath.ReflectAxisX(k.VelX, k.VelY)
		return true
	}
	return false
}

// ReflectBoundsY handles vertical boundary collision, returns true if reflection occurred
func ReflectBoundsY(k *core.Kinetic, minY, maxY float64) bool {
	if k.Y < minY {
		k.Y = minY
		k.VelX, k.VelY = vmath.ReflectAxisY(k.VelX, k.VelY)
		return true
	}
	if k.Y > maxY {
		k.Y = maxY
		k.VelX, k.VelY = vmath.ReflectAxisY(k.VelX, k.VelY)
		return true
	}
	return false
}
