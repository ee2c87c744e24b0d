package gamemath

import dmath "github.com/yohamta/donburi/features/math"

// Vec2 is a 2D vector in world units, +y up.
type Vec2 = dmath.Vec2

// Direction returns the unit vector of v, or the zero vector when v is too
// short to normalize. Vec2.Normalized hands short vectors back unchanged,
// which would let drag and friction act on a body at rest.
func Direction(v Vec2) Vec2 {
	if v.Magnitude() <= dmath.Epsilon {
		return Vec2{}
	}
	return v.Normalized()
}

func SqrMagnitude(v Vec2) float64 {
	return v.X*v.X + v.Y*v.Y
}
