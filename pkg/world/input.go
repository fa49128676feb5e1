package world

import "github.com/taigrr/painter/pkg/math3d"

// Binding describes one key handled by OnKey.
type Binding struct {
	Key  string
	Help string

	camera bool
	dir    math3d.Vec3
}

var bindings = []Binding{
	{Key: "w", Help: "camera forward", camera: true, dir: math3d.V3(0, 0, 1)},
	{Key: "s", Help: "camera back", camera: true, dir: math3d.V3(0, 0, -1)},
	{Key: "a", Help: "camera left", camera: true, dir: math3d.V3(-1, 0, 0)},
	{Key: "d", Help: "camera right", camera: true, dir: math3d.V3(1, 0, 0)},
	{Key: "e", Help: "camera down", camera: true, dir: math3d.V3(0, 1, 0)},
	{Key: "q", Help: "camera up", camera: true, dir: math3d.V3(0, -1, 0)},
	{Key: "up", Help: "object forward", dir: math3d.V3(0, 0, 1)},
	{Key: "down", Help: "object back", dir: math3d.V3(0, 0, -1)},
	{Key: "left", Help: "object left", dir: math3d.V3(-1, 0, 0)},
	{Key: "right", Help: "object right", dir: math3d.V3(1, 0, 0)},
}

// KeyBindings returns the keys OnKey understands.
func KeyBindings() []Binding {
	return bindings
}

// OnKey handles a key press and reports whether the key is bound.
// Camera keys move the camera by MoveStep along a world axis; arrow keys
// move the movable object, if any.
func (w *World) OnKey(key string) bool {
	for _, b := range bindings {
		if b.Key != key {
			continue
		}
		delta := b.dir.Scale(w.opts.MoveStep)
		if b.camera {
			w.Camera.Translate(delta)
			return true
		}
		if w.movable == nil {
			return false
		}
		w.movable.Move(delta)
		return true
	}
	return false
}
