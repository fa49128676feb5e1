package world

import (
	"github.com/taigrr/painter/pkg/math3d"
	"github.com/taigrr/painter/pkg/models"
)

// UpdateFunc advances an object by one tick. t is the world time after the
// tick and dt the tick length, both in seconds.
type UpdateFunc func(o *Object, t, dt float64)

// Object is a named group of meshes moved together.
type Object struct {
	Name   string
	Meshes []*models.Mesh

	// Offset is the object origin, moved by Translate.
	Offset math3d.Vec3

	// Update is called on every tick. It may be nil.
	Update UpdateFunc

	// Steer, when set, receives key-driven moves instead of Translate.
	Steer func(delta math3d.Vec3)
}

// NewObject creates an object holding meshes.
func NewObject(name string, meshes ...*models.Mesh) *Object {
	return &Object{Name: name, Meshes: meshes}
}

// Translate moves the object and all of its meshes by delta.
func (o *Object) Translate(delta math3d.Vec3) {
	o.Offset = o.Offset.Add(delta)
	for _, m := range o.Meshes {
		m.Translate(delta)
	}
}

// Rotate turns each mesh around its own origin.
func (o *Object) Rotate(dTheta math3d.Vec3) {
	for _, m := range o.Meshes {
		m.Rotate(dTheta)
	}
}

// Move applies a user-requested move through Steer if set, else Translate.
func (o *Object) Move(delta math3d.Vec3) {
	if o.Steer != nil {
		o.Steer(delta)
		return
	}
	o.Translate(delta)
}

// FaceCount returns the number of faces over all meshes.
func (o *Object) FaceCount() int {
	n := 0
	for _, m := range o.Meshes {
		n += m.TriangleCount()
	}
	return n
}
