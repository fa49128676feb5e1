package models

import (
	"math"
	"testing"

	"github.com/taigrr/painter/pkg/render"
)

func checkIndices(t *testing.T, m *Mesh) {
	t.Helper()
	for i, f := range m.Faces() {
		for _, v := range f.V {
			if v < 0 || v >= m.VertexCount() {
				t.Fatalf("face %d index %d out of range [0, %d)", i, v, m.VertexCount())
			}
		}
	}
}

func TestBuilders(t *testing.T) {
	tests := []struct {
		name      string
		mesh      *Mesh
		vertices  int
		faces     int
		wireframe bool
	}{
		{"terrain 600/20", NewTerrain(600, 20), 30 * 30, 29 * 29 * 2, false},
		{"terrain 100/50", NewTerrain(100, 50), 4, 2, false},
		{"terrain zero resolution", NewTerrain(100, 0), 0, 0, false},
		{"diamond", NewDiamond(50), 6, 8, true},
		{"domain", NewDomain(800), 8, 6, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.mesh.VertexCount(); got != tc.vertices {
				t.Errorf("vertices = %d, want %d", got, tc.vertices)
			}
			if got := tc.mesh.TriangleCount(); got != tc.faces {
				t.Errorf("faces = %d, want %d", got, tc.faces)
			}
			if tc.mesh.Wireframe != tc.wireframe {
				t.Errorf("wireframe = %v, want %v", tc.mesh.Wireframe, tc.wireframe)
			}
			checkIndices(t, tc.mesh)
		})
	}
}

func TestTerrainHeightField(t *testing.T) {
	m := NewTerrain(600, 20)
	for i := range m.VertexCount() {
		p := m.Buffer().Position(i)
		if want := TerrainHeight(p.X, p.Z); math.Abs(p.Y-want) > 1e-9 {
			t.Fatalf("vertex %d height = %v, want %v", i, p.Y, want)
		}
	}
	for _, f := range m.Faces() {
		if f.Color != render.ColorGrass {
			t.Fatalf("terrain face color = %v", f.Color)
		}
	}
	// Interior vertices are shared by six faces.
	if got := len(m.Buffer().Vertex(31).Faces); got != 6 {
		t.Errorf("interior vertex owns %d faces, want 6", got)
	}
}

func TestDiamondShape(t *testing.T) {
	m := NewDiamond(50)
	if s := m.Size(); s.X != 100 || s.Y != 200 || s.Z != 100 {
		t.Errorf("diamond size = %v, want (100, 200, 100)", s)
	}
	for _, f := range m.Faces() {
		if f.Color != render.ColorDiamond {
			t.Errorf("diamond face color = %v", f.Color)
		}
	}
}
