package render

import (
	"github.com/taigrr/painter/pkg/math3d"
)

// DrawLine3D projects a world-space segment and draws it on the canvas.
// Segments with an endpoint behind the camera are skipped.
func DrawLine3D(cv Canvas, cam *Camera, p1, p2 math3d.Vec3, color Color, width float64) bool {
	a := cam.Project(p1)
	b := cam.Project(p2)
	if a.IsNaN() || b.IsNaN() {
		return false
	}
	cv.DrawLine(a.X, a.Y, b.X, b.Y, color, width)
	return true
}

// DrawAxes draws the coordinate axes at origin.
func DrawAxes(cv Canvas, cam *Camera, origin math3d.Vec3, length, width float64) {
	DrawLine3D(cv, cam, origin, origin.Add(math3d.V3(length, 0, 0)), ColorRed, width)   // X axis
	DrawLine3D(cv, cam, origin, origin.Add(math3d.V3(0, length, 0)), ColorGreen, width) // Y axis
	DrawLine3D(cv, cam, origin, origin.Add(math3d.V3(0, 0, length)), ColorBlue, width)  // Z axis
}
