package physics

import "github.com/seltf/shape-game/vmath"

// KnockbackProfile defines a radial push applied around an origin point
type KnockbackProfile struct {
	Radius   float64 // Effect radius around origin
	Force    float64 // Push speed (units/tick)
	Duration int     // Push window in ticks
}

// RadialPush computes the push velocity for a point inside the profile radius
// Returns false when the point is outside the radius or exactly at the origin
func RadialPush(originX, originY, x, y float64, profile KnockbackProfile) (vx, vy float64, ok bool) {
	dx := x - originX
	dy := y - originY
	distSq := dx*dx + dy*dy
	if distSq == 0 || distSq >= profile.Radius*profile.Radius {
		return 0, 0, false
	}
	dirX, dirY := vmath.Normalize2D(dx, dy)
	return dirX * profile.Force, dirY * profile.Force, true
}

// PullProfile defines an attractor with linear edge falloff
type PullProfile struct {
	Radius    float64 // Capture radius
	Strength  float64 // Pull speed at the center (units/tick)
	MinFactor float64 // Strength floor at the rim, 0..1
}

// RadialPull computes the pull velocity toward an origin for a point inside
// the profile radius. The pull weakens linearly with distance but never drops
// below MinFactor of full strength, so captives keep converging
func RadialPull(originX, originY, x, y float64, profile PullProfile) (vx, vy float64, ok bool) {
	dx := originX - x
	dy := originY - y
	distSq := dx*dx + dy*dy
	if distSq == 0 || distSq >= profile.Radius*profile.Radius {
		return 0, 0, false
	}
	dist := vmath.Magnitude(dx, dy)
	factor := 1.0 - dist/profile.Radius
	if factor < profile.MinFactor {
		factor = profile.MinFactor
	}
	speed := profile.Strength * factor
	return dx / dist * speed, dy / dist * speed, true
}

// CirclesOverlap reports whether two circles intersect
func CirclesOverlap(x1, y1, r1, x2, y2, r2 float64) bool {
	rr := r1 + r2
	return vmath.DistSq(x1, y1, x2, y2) < rr*rr
}

// PointInRect reports whether a point lies inside an axis-aligned
// rectangle. Edges count as inside
func PointInRect(x, y, minX, minY, maxX, maxY float64) bool {
	return x >= minX && x <= maxX && y >= minY && y <= maxY
}

// RectsOverlap reports whether two axis-aligned rectangles intersect.
// Touching edges do not overlap
func RectsOverlap(minX1, minY1, maxX1, maxY1, minX2, minY2, maxX2, maxY2 float64) bool {
	return minX1 < maxX2 && maxX1 > minX2 && minY1 < maxY2 && maxY1 > minY2
}
