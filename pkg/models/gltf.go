package models

import (
	"encoding/binary"
	"fmt"
	"math"
	"path/filepath"

	"github.com/qmuntal/gltf"
	"github.com/taigrr/painter/pkg/math3d"
	"github.com/taigrr/painter/pkg/render"
)

// GLTFLoader imports the triangles of a GLTF/GLB document into a Mesh.
type GLTFLoader struct {
	// Color is used for primitives without a material base color.
	Color render.Color

	// FlipWinding swaps the second and third index of every triangle.
	FlipWinding bool
}

// NewGLTFLoader creates a loader with default options.
func NewGLTFLoader() *GLTFLoader {
	return &GLTFLoader{
		Color:       DefaultFaceColor,
		FlipWinding: true,
	}
}

// LoadGLB loads a GLB or GLTF file with the default loader.
func LoadGLB(path string) (*Mesh, error) {
	return NewGLTFLoader().Load(path)
}

// Load opens path and converts every triangle primitive into faces over a
// single shared vertex buffer.
func (l *GLTFLoader) Load(path string) (*Mesh, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open gltf: %w", err)
	}
	mesh, err := l.FromDocument(doc, filepath.Base(path))
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return mesh, nil
}

// FromDocument converts an already decoded document.
func (l *GLTFLoader) FromDocument(doc *gltf.Document, name string) (*Mesh, error) {
	mesh := NewMesh(name)
	for _, m := range doc.Meshes {
		for i, prim := range m.Primitives {
			if err := l.addPrimitive(doc, prim, mesh); err != nil {
				return nil, fmt.Errorf("mesh %q primitive %d: %w", m.Name, i, err)
			}
		}
	}
	return mesh, nil
}

func (l *GLTFLoader) addPrimitive(doc *gltf.Document, prim *gltf.Primitive, mesh *Mesh) error {
	if prim.Mode != gltf.PrimitiveTriangles && prim.Mode != 0 {
		return nil
	}
	posIdx, ok := prim.Attributes[gltf.POSITION]
	if !ok {
		return nil
	}

	positions, err := readPositions(doc, posIdx)
	if err != nil {
		return fmt.Errorf("read positions: %w", err)
	}

	var indices []int
	if prim.Indices != nil {
		indices, err = readIndices(doc, *prim.Indices)
		if err != nil {
			return fmt.Errorf("read indices: %w", err)
		}
	} else {
		indices = make([]int, len(positions))
		for i := range indices {
			indices[i] = i
		}
	}

	base := mesh.VertexCount()
	for _, p := range positions {
		mesh.AddVertex(p)
	}

	color := l.primitiveColor(doc, prim)
	for i := 0; i+2 < len(indices); i += 3 {
		a, b, c := indices[i], indices[i+1], indices[i+2]
		for _, idx := range [3]int{a, b, c} {
			if idx < 0 || idx >= len(positions) {
				return fmt.Errorf("index %d out of range for %d positions", idx, len(positions))
			}
		}
		if l.FlipWinding {
			b, c = c, b
		}
		mesh.AddFace(base+a, base+b, base+c, color)
	}
	return nil
}

func (l *GLTFLoader) primitiveColor(doc *gltf.Document, prim *gltf.Primitive) render.Color {
	if prim.Material == nil || *prim.Material >= len(doc.Materials) {
		return l.Color
	}
	pbr := doc.Materials[*prim.Material].PBRMetallicRoughness
	if pbr == nil || pbr.BaseColorFactor == nil {
		return l.Color
	}
	f := *pbr.BaseColorFactor
	channel := func(v float64) uint8 {
		return uint8(math.Round(math.Max(0, math.Min(1, v)) * 255))
	}
	return render.RGBA(channel(f[0]), channel(f[1]), channel(f[2]), channel(f[3]))
}

// accessorBytes returns the buffer backing an accessor, its first byte
// offset and the stride between elements.
func accessorBytes(doc *gltf.Document, idx, elemSize int) ([]byte, int, int, *gltf.Accessor, error) {
	if idx < 0 || idx >= len(doc.Accessors) {
		return nil, 0, 0, nil, fmt.Errorf("accessor %d not found", idx)
	}
	acc := doc.Accessors[idx]
	if acc.BufferView == nil {
		return nil, 0, 0, nil, fmt.Errorf("accessor %d has no buffer view", idx)
	}
	view := doc.BufferViews[*acc.BufferView]
	buf := doc.Buffers[view.Buffer]
	if buf.URI != "" && buf.Data == nil {
		return nil, 0, 0, nil, fmt.Errorf("external buffer %q not loaded", buf.URI)
	}

	start := view.ByteOffset + acc.ByteOffset
	stride := view.ByteStride
	if stride == 0 {
		stride = elemSize
	}
	if acc.Count > 0 {
		end := start + (acc.Count-1)*stride + elemSize
		if end > len(buf.Data) {
			return nil, 0, 0, nil, fmt.Errorf("accessor %d overruns buffer (%d > %d)", idx, end, len(buf.Data))
		}
	}
	return buf.Data, start, stride, acc, nil
}

func readPositions(doc *gltf.Document, idx int) ([]math3d.Vec3, error) {
	data, start, stride, acc, err := accessorBytes(doc, idx, 12)
	if err != nil {
		return nil, err
	}
	if acc.Type != gltf.AccessorVec3 || acc.ComponentType != gltf.ComponentFloat {
		return nil, fmt.Errorf("expected float VEC3, got %v/%v", acc.Type, acc.ComponentType)
	}

	out := make([]math3d.Vec3, acc.Count)
	for i := range out {
		off := start + i*stride
		out[i] = math3d.V3(
			float64(readFloat32(data[off:])),
			float64(readFloat32(data[off+4:])),
			float64(readFloat32(data[off+8:])),
		)
	}
	return out, nil
}

func readIndices(doc *gltf.Document, idx int) ([]int, error) {
	if idx < 0 || idx >= len(doc.Accessors) {
		return nil, fmt.Errorf("accessor %d not found", idx)
	}
	var size int
	switch doc.Accessors[idx].ComponentType {
	case gltf.ComponentUbyte:
		size = 1
	case gltf.ComponentUshort:
		size = 2
	case gltf.ComponentUint:
		size = 4
	default:
		return nil, fmt.Errorf("unsupported index type %v", doc.Accessors[idx].ComponentType)
	}

	data, start, stride, acc, err := accessorBytes(doc, idx, size)
	if err != nil {
		return nil, err
	}
	out := make([]int, acc.Count)
	for i := range out {
		off := start + i*stride
		switch size {
		case 1:
			out[i] = int(data[off])
		case 2:
			out[i] = int(binary.LittleEndian.Uint16(data[off:]))
		case 4:
			out[i] = int(binary.LittleEndian.Uint32(data[off:]))
		}
	}
	return out, nil
}

func readFloat32(b []byte) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(b))
}
