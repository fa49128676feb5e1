package render

import "github.com/taigrr/painter/pkg/math3d"

// Light is a single light source used for flat shading.
// Lights are not mutated after construction.
type Light struct {
	Position    math3d.Vec3
	Direction   math3d.Vec3 // Position relative to the world origin
	Intensity   float32
	Color       math3d.Vec3 // RGB in 0-1 range
	PointSource bool
}

// NewLight creates a white, full-intensity point light at position.
func NewLight(position math3d.Vec3) Light {
	return Light{
		Position:    position,
		Direction:   position.Sub(math3d.Zero3()),
		Intensity:   1,
		Color:       math3d.V3(1, 1, 1),
		PointSource: true,
	}
}
