package models

import (
	"math"

	"github.com/taigrr/painter/pkg/math3d"
	"github.com/taigrr/painter/pkg/render"
)

// DefaultShadeCoefficient is how much a face facing the light is darkened.
const DefaultShadeCoefficient = 0.4

// DefaultLineWidth is the stroke width of wireframe edges.
const DefaultLineWidth = 0.5

// Style holds the drawing parameters shared by all faces in a frame.
type Style struct {
	ShadeCoefficient float64
	LineWidth        float64
}

// DefaultStyle returns the default face style.
func DefaultStyle() Style {
	return Style{
		ShadeCoefficient: DefaultShadeCoefficient,
		LineWidth:        DefaultLineWidth,
	}
}

// Face is a triangle referring to three vertices of its mesh's buffer.
type Face struct {
	V     [3]int
	Color render.Color

	buf *VertexBuffer
}

// Points returns the current vertex positions.
func (f Face) Points() [3]math3d.Vec3 {
	return [3]math3d.Vec3{
		f.buf.Position(f.V[0]),
		f.buf.Position(f.V[1]),
		f.buf.Position(f.V[2]),
	}
}

// Project maps the three vertices to screen coordinates.
func (f Face) Project(cam *render.Camera) [3]math3d.Vec2 {
	return projectPoints(f.Points(), cam)
}

// Normal returns the unit normal (v1 − v0) × (v2 − v0).
func (f Face) Normal() math3d.Vec3 {
	return normalOf(f.Points())
}

// Distance returns the distance from p to the face's first vertex.
func (f Face) Distance(p math3d.Vec3) float64 {
	return f.buf.Position(f.V[0]).Distance(p)
}

// Shade returns the face color lit by lights with the default coefficient.
func (f Face) Shade(lights []render.Light) render.Color {
	return f.ShadeCoeff(lights, DefaultShadeCoefficient)
}

// ShadeCoeff returns the face color lit by lights.
func (f Face) ShadeCoeff(lights []render.Light, coeff float64) render.Color {
	return shade(f.Color, f.Normal(), lights, coeff)
}

// Snapshot copies the current vertex positions into a FaceSnapshot.
func (f Face) Snapshot(wireframe bool) FaceSnapshot {
	return FaceSnapshot{
		Points:    f.Points(),
		V:         f.V,
		Color:     f.Color,
		Wireframe: wireframe,
	}
}

// FaceSnapshot is a face frozen at collection time. Later changes to the
// vertex buffer do not affect it.
type FaceSnapshot struct {
	Points    [3]math3d.Vec3
	V         [3]int
	Color     render.Color
	Wireframe bool
}

// Project maps the snapshot's points to screen coordinates.
func (s FaceSnapshot) Project(cam *render.Camera) [3]math3d.Vec2 {
	return projectPoints(s.Points, cam)
}

// Normal returns the unit normal of the snapshot.
func (s FaceSnapshot) Normal() math3d.Vec3 {
	return normalOf(s.Points)
}

// Shade returns the snapshot color lit by lights.
func (s FaceSnapshot) Shade(lights []render.Light, coeff float64) render.Color {
	return shade(s.Color, s.Normal(), lights, coeff)
}

// Draw projects the snapshot and draws it on cv: three edges in the flat
// color for wireframes, otherwise one shaded polygon. Nothing is drawn if a
// vertex has no projection.
func (s FaceSnapshot) Draw(cam *render.Camera, lights []render.Light, cv render.Canvas, style Style) bool {
	p := s.Project(cam)
	if p[0].IsNaN() || p[1].IsNaN() || p[2].IsNaN() {
		return false
	}
	if s.Wireframe {
		for i := range 3 {
			a, b := p[i], p[(i+1)%3]
			cv.DrawLine(a.X, a.Y, b.X, b.Y, s.Color, style.LineWidth)
		}
		return true
	}
	cv.DrawPolygon(p, s.Shade(lights, style.ShadeCoefficient))
	return true
}

func projectPoints(pts [3]math3d.Vec3, cam *render.Camera) [3]math3d.Vec2 {
	return [3]math3d.Vec2{
		cam.Project(pts[0]),
		cam.Project(pts[1]),
		cam.Project(pts[2]),
	}
}

func normalOf(pts [3]math3d.Vec3) math3d.Vec3 {
	return pts[1].Sub(pts[0]).Cross(pts[2].Sub(pts[0])).Normalize()
}

// ShadeFactor returns 1 − coeff·|n · normalize(light direction)| for the
// first light. Without lights the factor is 1.
func ShadeFactor(normal math3d.Vec3, lights []render.Light, coeff float64) float64 {
	if len(lights) == 0 {
		return 1
	}
	k := math.Abs(normal.Dot(lights[0].Direction.Normalize()))
	return 1 - coeff*k
}

func shade(c render.Color, normal math3d.Vec3, lights []render.Light, coeff float64) render.Color {
	return render.ScaleColor(c, ShadeFactor(normal, lights, coeff))
}
