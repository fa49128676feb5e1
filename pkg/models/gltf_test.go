package models

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/qmuntal/gltf"
	"github.com/taigrr/painter/pkg/math3d"
	"github.com/taigrr/painter/pkg/render"
)

func index(i int) *int { return &i }

// triangleDocument builds a one-triangle document with uint16 indices.
func triangleDocument() *gltf.Document {
	data := make([]byte, 0, 42)
	for _, f := range []float32{0, 0, 0, 1, 0, 0, 0, 1, 0} {
		data = binary.LittleEndian.AppendUint32(data, math.Float32bits(f))
	}
	for _, i := range []uint16{0, 1, 2} {
		data = binary.LittleEndian.AppendUint16(data, i)
	}

	return &gltf.Document{
		Buffers: []*gltf.Buffer{{Data: data}},
		BufferViews: []*gltf.BufferView{
			{Buffer: 0, ByteOffset: 0, ByteLength: 36},
			{Buffer: 0, ByteOffset: 36, ByteLength: 6},
		},
		Accessors: []*gltf.Accessor{
			{BufferView: index(0), ComponentType: gltf.ComponentFloat, Count: 3, Type: gltf.AccessorVec3},
			{BufferView: index(1), ComponentType: gltf.ComponentUshort, Count: 3, Type: gltf.AccessorScalar},
		},
		Materials: []*gltf.Material{
			{PBRMetallicRoughness: &gltf.PBRMetallicRoughness{BaseColorFactor: &[4]float64{1, 0, 0, 1}}},
		},
		Meshes: []*gltf.Mesh{{
			Name: "tri",
			Primitives: []*gltf.Primitive{{
				Attributes: map[string]int{gltf.POSITION: 0},
				Indices:    index(1),
				Material:   index(0),
			}},
		}},
	}
}

func TestLoadGLBInvalidPath(t *testing.T) {
	_, err := LoadGLB("/nonexistent/path.glb")
	if err == nil {
		t.Error("Expected error for nonexistent file")
	}
}

func TestGLTFLoaderCreation(t *testing.T) {
	loader := NewGLTFLoader()
	if loader.Color != DefaultFaceColor {
		t.Errorf("loader color = %v, want default face color", loader.Color)
	}
	if !loader.FlipWinding {
		t.Error("FlipWinding should default to true")
	}
}

func TestFromDocument(t *testing.T) {
	loader := NewGLTFLoader()
	m, err := loader.FromDocument(triangleDocument(), "tri.glb")
	if err != nil {
		t.Fatalf("FromDocument: %v", err)
	}

	if m.VertexCount() != 3 || m.TriangleCount() != 1 {
		t.Fatalf("got %d vertices, %d faces", m.VertexCount(), m.TriangleCount())
	}
	f := m.Face(0)
	if f.V != [3]int{0, 2, 1} {
		t.Errorf("face indices = %v, want flipped winding [0 2 1]", f.V)
	}
	if f.Color != render.ColorRed {
		t.Errorf("face color = %v, want material red", f.Color)
	}
	if got := m.Buffer().Position(1); got != math3d.V3(1, 0, 0) {
		t.Errorf("vertex 1 = %v, want (1, 0, 0)", got)
	}
}

func TestFromDocumentKeepsWinding(t *testing.T) {
	doc := triangleDocument()
	doc.Meshes[0].Primitives[0].Material = nil

	loader := &GLTFLoader{Color: render.ColorWhite}
	m, err := loader.FromDocument(doc, "tri")
	if err != nil {
		t.Fatalf("FromDocument: %v", err)
	}
	if f := m.Face(0); f.V != [3]int{0, 1, 2} || f.Color != render.ColorWhite {
		t.Errorf("face = %+v, want [0 1 2] in white", f)
	}
}

func TestFromDocumentRejectsShortBuffer(t *testing.T) {
	doc := triangleDocument()
	doc.Accessors[0].Count = 10

	if _, err := NewGLTFLoader().FromDocument(doc, "broken"); err == nil {
		t.Error("expected error for accessor past end of buffer")
	}
}
