package vmath

import "math"

// Normalize2D returns the unit vector of (x, y), zero-safe
func Normalize2D(x, y float64) (nx, ny float64) {
	mag := math.Hypot(x, y)
	if mag == 0 {
		return 0, 0
	}
	return x / mag, y / mag
}

// Magnitude returns vector length
func Magnitude(x, y float64) float64 {
	return math.Hypot(x, y)
}

// MagnitudeSq returns squared magnitude without sqrt
func MagnitudeSq(x, y float64) float64 {
	return x*x + y*y
}

// DistSq returns squared distance between two points
func DistSq(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return dx*dx + dy*dy
}

// ClampMagnitude limits vector to maxMag while preserving direction
// Returns unchanged vector if magnitude <= maxMag
func ClampMagnitude(x, y, maxMag float64) (cx, cy float64) {
	mag := math.Hypot(x, y)
	if mag <= maxMag || mag == 0 {
		return x, y
	}
	scale := maxMag / mag
	return x * scale, y * scale
}

// RotateVector rotates vector by angle in radians
func RotateVector(x, y, angle float64) (rx, ry float64) {
	cos := math.Cos(angle)
	sin := math.Sin(angle)
	rx = x*cos - y*sin
	ry = x*sin + y*cos
	return rx, ry
}

// ScaleVector multiplies vector by scalar factor
func ScaleVector(x, y, factor float64) (sx, sy float64) {
	return x * factor, y * factor
}

// DotProduct returns x1*x2 + y1*y2
func DotProduct(x1, y1, x2, y2 float64) float64 {
	return x1*x2 + y1*y2
}

// Reflect returns velocity reflected off surface with given normal
// vel' = vel - 2 * dot(vel, normal) * normal
func Reflect(velX, velY, normalX, normalY float64) (rx, ry float64) {
	dot2 := 2 * DotProduct(velX, velY, normalX, normalY)
	rx = velX - dot2*normalX
	ry = velY - dot2*normalY
	return rx, ry
}

// ReflectAxisX returns velocity reflected off a vertical wall (left/right edge)
func ReflectAxisX(velX, velY float64) (float64, float64) {
	return -velX, velY
}

// ReflectAxisY returns velocity reflected off a horizontal wall (top/bottom edge)
func ReflectAxisY(velX, velY float64) (float64, float64) {
	return velX, -velY
}

// Perpendicular returns vector rotated 90° counter-clockwise
func Perpendicular(x, y float64) (px, py float64) {
	return -y, x
}

// FromAngle returns the unit vector for an angle in radians
func FromAngle(angle float64) (x, y float64) {
	return math.Cos(angle), math.Sin(angle)
}

// Angle returns the angle of vector (x, y) in radians
func Angle(x, y float64) float64 {
	return math.Atan2(y, x)
}
