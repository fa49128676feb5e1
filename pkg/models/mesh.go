// Package models holds indexed triangle meshes for the painter pipeline.
//
// A Mesh owns a VertexBuffer shared by all of its faces. Faces refer to
// vertices by index, so moving a vertex moves every face that uses it.
package models

import (
	"fmt"

	"github.com/taigrr/painter/pkg/math3d"
	"github.com/taigrr/painter/pkg/render"
)

// DefaultFaceColor is used for faces added without an explicit color:
// mid gray at half opacity.
var DefaultFaceColor = render.RGBA(128, 128, 128, 128)

// Vertex is a point in the shared buffer together with the faces using it.
type Vertex struct {
	Position math3d.Vec3
	Faces    []int // Indices of owning faces
}

// VertexBuffer is the vertex arena shared by a mesh and its faces.
type VertexBuffer struct {
	vertices []Vertex
}

// Len returns the number of vertices.
func (b *VertexBuffer) Len() int {
	return len(b.vertices)
}

// Position returns the position of vertex i.
func (b *VertexBuffer) Position(i int) math3d.Vec3 {
	return b.vertices[i].Position
}

// Vertex returns vertex i.
func (b *VertexBuffer) Vertex(i int) Vertex {
	return b.vertices[i]
}

func (b *VertexBuffer) checkIndex(i int) {
	if i < 0 || i >= len(b.vertices) {
		panic(fmt.Sprintf("models: vertex index %d out of range [0, %d)", i, len(b.vertices)))
	}
}

// Mesh is a set of triangles over one shared vertex buffer.
type Mesh struct {
	Name string

	// Offset is the mesh origin. Rotations pivot around it.
	Offset math3d.Vec3

	// Theta is the cumulative rotation applied through Rotate.
	Theta math3d.Vec3

	// Wireframe meshes draw face outlines instead of filled polygons.
	Wireframe bool

	buf   *VertexBuffer
	faces []Face
}

// NewMesh creates an empty mesh.
func NewMesh(name string) *Mesh {
	return &Mesh{
		Name: name,
		buf:  &VertexBuffer{},
	}
}

// Buffer returns the mesh's shared vertex buffer.
func (m *Mesh) Buffer() *VertexBuffer {
	return m.buf
}

// AddVertex appends a vertex and returns its index.
func (m *Mesh) AddVertex(p math3d.Vec3) int {
	m.buf.vertices = append(m.buf.vertices, Vertex{Position: p})
	return len(m.buf.vertices) - 1
}

// AddFace appends a triangle over existing vertices and returns its index.
// It panics if any index is not in the buffer.
func (m *Mesh) AddFace(a, b, c int, color render.Color) int {
	m.buf.checkIndex(a)
	m.buf.checkIndex(b)
	m.buf.checkIndex(c)

	idx := len(m.faces)
	m.faces = append(m.faces, Face{V: [3]int{a, b, c}, Color: color, buf: m.buf})

	for i, v := range [3]int{a, b, c} {
		// A repeated vertex owns the face once.
		if (i > 0 && v == a) || (i == 2 && v == b) {
			continue
		}
		m.buf.vertices[v].Faces = append(m.buf.vertices[v].Faces, idx)
	}
	return idx
}

// AddTriangle appends a face in DefaultFaceColor.
func (m *Mesh) AddTriangle(a, b, c int) int {
	return m.AddFace(a, b, c, DefaultFaceColor)
}

// Face returns face i. The returned value still reads the shared buffer.
func (m *Mesh) Face(i int) Face {
	return m.faces[i]
}

// Faces returns the faces of the mesh. The slice must not be modified.
func (m *Mesh) Faces() []Face {
	return m.faces
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return m.buf.Len()
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.faces)
}

// SetColor recolors every face.
func (m *Mesh) SetColor(c render.Color) *Mesh {
	for i := range m.faces {
		m.faces[i].Color = c
	}
	return m
}

// Translate moves the mesh origin and every vertex by delta.
func (m *Mesh) Translate(delta math3d.Vec3) {
	m.Offset = m.Offset.Add(delta)
	for i := range m.buf.vertices {
		v := &m.buf.vertices[i]
		v.Position = v.Position.Add(delta)
	}
}

// Rotate turns every vertex by the Euler angles dTheta around Offset and
// accumulates dTheta into Theta.
func (m *Mesh) Rotate(dTheta math3d.Vec3) {
	m.Theta = m.Theta.Add(dTheta)
	rot := math3d.Rotation(dTheta)
	for i := range m.buf.vertices {
		v := &m.buf.vertices[i]
		v.Position = math3d.RotateAround(v.Position, rot, m.Offset)
	}
}

// Position places the mesh so that its origin is at r.
func (m *Mesh) Position(r math3d.Vec3) *Mesh {
	m.Translate(r.Sub(m.Offset))
	return m
}

// Bounds returns the axis-aligned bounding box of the vertices.
// An empty mesh has a zero box at its origin.
func (m *Mesh) Bounds() (lo, hi math3d.Vec3) {
	if m.buf.Len() == 0 {
		return m.Offset, m.Offset
	}
	lo = m.buf.vertices[0].Position
	hi = lo
	for _, v := range m.buf.vertices[1:] {
		lo = lo.Min(v.Position)
		hi = hi.Max(v.Position)
	}
	return lo, hi
}

// Center returns the center of the bounding box.
func (m *Mesh) Center() math3d.Vec3 {
	lo, hi := m.Bounds()
	return lo.Add(hi).Scale(0.5)
}

// Size returns the dimensions of the bounding box.
func (m *Mesh) Size() math3d.Vec3 {
	lo, hi := m.Bounds()
	return hi.Sub(lo)
}

// Scale multiplies every vertex's distance from Offset by factor.
func (m *Mesh) Scale(factor float64) {
	for i := range m.buf.vertices {
		v := &m.buf.vertices[i]
		v.Position = v.Position.Sub(m.Offset).Scale(factor).Add(m.Offset)
	}
}

// FitTo scales the mesh so its largest dimension equals size and moves the
// bounding box center onto Offset.
func (m *Mesh) FitTo(size float64) {
	s := m.Size()
	extent := max(s.X, s.Y, s.Z)
	if extent == 0 {
		return
	}
	k := size / extent
	c := m.Center()
	for i := range m.buf.vertices {
		v := &m.buf.vertices[i]
		v.Position = v.Position.Sub(c).Scale(k).Add(m.Offset)
	}
}

// Draw draws every face with the default style, in face order.
func (m *Mesh) Draw(cam *render.Camera, lights []render.Light, cv render.Canvas) {
	m.DrawStyled(cam, lights, cv, DefaultStyle())
}

// DrawStyled draws every face with the given style, in face order.
func (m *Mesh) DrawStyled(cam *render.Camera, lights []render.Light, cv render.Canvas, style Style) {
	for _, f := range m.faces {
		f.Snapshot(m.Wireframe).Draw(cam, lights, cv, style)
	}
}
