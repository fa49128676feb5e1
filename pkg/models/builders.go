package models

import (
	"math"

	"github.com/taigrr/painter/pkg/math3d"
	"github.com/taigrr/painter/pkg/render"
)

// TerrainHeight is the height field used by NewTerrain.
func TerrainHeight(x, z float64) float64 {
	return (math.Sin(x/100) + math.Cos(z/100)) * 100
}

// NewTerrain builds a square height-field grid centered on the origin.
//
// The grid has size/resolution vertices per side and two triangles per cell:
//
//	z         a --- b
//	^         | \   |
//	|         |   \ |
//	+-> x     c --- d
//
// A non-positive resolution yields an empty mesh.
func NewTerrain(size, resolution float64) *Mesh {
	m := NewMesh("terrain")
	if !(resolution > 0) {
		return m
	}
	n := int(size / resolution)

	for i := range n {
		for j := range n {
			x := float64(i)*resolution - size/2
			z := float64(j)*resolution - size/2
			m.AddVertex(math3d.V3(x, TerrainHeight(x, z), z))
		}
	}

	at := func(i, j int) int { return i*n + j }
	for i := range n - 1 {
		for j := range n - 1 {
			a, b := at(i, j), at(i+1, j)
			c, d := at(i, j+1), at(i+1, j+1)
			m.AddFace(a, b, c, render.ColorGrass)
			m.AddFace(d, b, c, render.ColorGrass)
		}
	}
	return m
}

// NewDiamond builds a wireframe bipyramid: 6 vertices, 8 faces.
//
//	y            a
//	^         b ef d
//	|            c
//	+-> x
func NewDiamond(size float64) *Mesh {
	m := NewMesh("diamond")
	a := m.AddVertex(math3d.V3(0, size*2, 0))
	b := m.AddVertex(math3d.V3(-size, 0, 0))
	c := m.AddVertex(math3d.V3(0, -size*2, 0))
	d := m.AddVertex(math3d.V3(size, 0, 0))
	e := m.AddVertex(math3d.V3(0, 0, size))
	f := m.AddVertex(math3d.V3(0, 0, -size))

	for _, tip := range []int{a, c} {
		m.AddFace(tip, b, e, render.ColorDiamond)
		m.AddFace(tip, b, f, render.ColorDiamond)
		m.AddFace(tip, d, e, render.ColorDiamond)
		m.AddFace(tip, d, f, render.ColorDiamond)
	}
	m.Wireframe = true
	return m
}

// NewDomain builds a wireframe backdrop: a back wall and two side walls
// spanning [-size, size] in X, [-size, 0] in Y and [0, size] in Z.
func NewDomain(size float64) *Mesh {
	m := NewMesh("domain")
	a := m.AddVertex(math3d.V3(-size, -size, 0))
	b := m.AddVertex(math3d.V3(size, -size, 0))
	c := m.AddVertex(math3d.V3(-size, 0, 0))
	d := m.AddVertex(math3d.V3(size, 0, 0))
	aa := m.AddVertex(math3d.V3(-size, -size, size))
	bb := m.AddVertex(math3d.V3(size, -size, size))
	cc := m.AddVertex(math3d.V3(-size, 0, size))
	dd := m.AddVertex(math3d.V3(size, 0, size))

	m.AddTriangle(aa, bb, dd)
	m.AddTriangle(aa, cc, dd)
	m.AddTriangle(a, aa, c)
	m.AddTriangle(aa, cc, c)
	m.AddTriangle(b, bb, d)
	m.AddTriangle(bb, dd, d)
	m.Wireframe = true
	return m
}
