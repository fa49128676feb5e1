package math3d

import "math"

// Vec2 represents a 2D point, typically in screen space.
type Vec2 struct {
	X, Y float64
}

// V2 creates a new Vec2.
func V2(x, y float64) Vec2 {
	return Vec2{x, y}
}

// NaN2 returns the sentinel point produced for unprojectable input.
func NaN2() Vec2 {
	return Vec2{math.NaN(), math.NaN()}
}

// IsNaN reports whether either component is not-a-number.
func (v Vec2) IsNaN() bool {
	return math.IsNaN(v.X) || math.IsNaN(v.Y)
}
