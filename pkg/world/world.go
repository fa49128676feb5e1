// Package world owns a scene of objects and renders it with the painter's
// algorithm: every face is snapshotted with its distance to the camera,
// the snapshots are sorted, and faces are drawn in that order with no
// depth buffer.
package world

import (
	"cmp"
	"errors"
	"fmt"
	"math"
	"slices"
	"time"

	"go.uber.org/zap"

	"github.com/taigrr/painter/pkg/math3d"
	"github.com/taigrr/painter/pkg/models"
	"github.com/taigrr/painter/pkg/render"
)

// ErrNoLights is returned by New when no light source is given.
var ErrNoLights = errors.New("world needs at least one light")

// Phase is the stage of a render pass.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseCollecting
	PhaseSorted
	PhaseDrawn
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseCollecting:
		return "collecting"
	case PhaseSorted:
		return "sorted"
	case PhaseDrawn:
		return "drawn"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// Options configures a World.
type Options struct {
	Background render.Color

	// MaxDrawDistance skips faces at or beyond this distance. Zero draws all.
	MaxDrawDistance float64

	ShadeCoefficient float64
	LineWidth        float64

	// FarFirst sorts by descending distance instead of ascending.
	FarFirst bool

	MoveStep  float64 // Units per movement key press
	LookYaw   float64 // Yaw range over the viewport width
	LookPitch float64 // Pitch range over the viewport height

	ShowAxes   bool
	AxisLength float64

	// OnPhase is called on every phase change of a render pass.
	OnPhase func(Phase)

	Logger *zap.Logger
}

// DefaultOptions returns the default world options.
func DefaultOptions() Options {
	return Options{
		Background:       render.ColorBlack,
		ShadeCoefficient: models.DefaultShadeCoefficient,
		LineWidth:        models.DefaultLineWidth,
		MoveStep:         10,
		LookYaw:          6,
		LookPitch:        2,
		AxisLength:       100,
	}
}

// FrameStats describes one render pass.
type FrameStats struct {
	Faces   int // Faces collected
	Drawn   int // Faces drawn
	Culled  int // Faces beyond MaxDrawDistance
	Skipped int // Faces with a vertex that has no projection
	Elapsed time.Duration
}

type depthFace struct {
	face models.FaceSnapshot
	dist float64
}

// World holds objects, the camera and lights, and renders frames.
// It is not safe for concurrent use.
type World struct {
	Camera *render.Camera

	// T is the world time in seconds, advanced by OnTick.
	T float64

	opts    Options
	lights  []render.Light
	objects []*Object
	movable *Object
	scratch []depthFace
	phase   Phase
	log     *zap.Logger
}

// New creates a world viewed through cam and lit by lights.
func New(cam *render.Camera, lights []render.Light, opts Options) (*World, error) {
	if cam == nil {
		return nil, errors.New("world needs a camera")
	}
	if len(lights) == 0 {
		return nil, ErrNoLights
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &World{
		Camera: cam,
		opts:   opts,
		lights: slices.Clone(lights),
		log:    log,
	}, nil
}

// Options returns the world options.
func (w *World) Options() Options {
	return w.opts
}

// Lights returns a copy of the light sources.
func (w *World) Lights() []render.Light {
	return slices.Clone(w.lights)
}

// Objects returns the registered objects in draw collection order.
func (w *World) Objects() []*Object {
	return w.objects
}

// Phase returns the current render phase.
func (w *World) Phase() Phase {
	return w.phase
}

// AddObject registers o and returns it.
func (w *World) AddObject(o *Object) *Object {
	w.objects = append(w.objects, o)
	w.log.Debug("object added",
		zap.String("name", o.Name),
		zap.Int("meshes", len(o.Meshes)),
		zap.Int("faces", o.FaceCount()),
	)
	return o
}

// SetMovable selects the object moved by the arrow keys.
func (w *World) SetMovable(o *Object) {
	w.movable = o
}

// Movable returns the object moved by the arrow keys, or nil.
func (w *World) Movable() *Object {
	return w.movable
}

// FaceCount returns the number of faces over all objects.
func (w *World) FaceCount() int {
	n := 0
	for _, o := range w.objects {
		n += o.FaceCount()
	}
	return n
}

// OnResize sets the viewport size.
func (w *World) OnResize(width, height uint32) error {
	if err := w.Camera.Resize(float64(width), float64(height)); err != nil {
		return err
	}
	w.log.Debug("viewport resized", zap.Uint32("width", width), zap.Uint32("height", height))
	return nil
}

// OnTick advances world time by dt and runs every object's update hook.
func (w *World) OnTick(dt float64) {
	w.T += dt
	for _, o := range w.objects {
		if o.Update != nil {
			o.Update(o, w.T, dt)
		}
	}
}

// OnPointerMove aims the camera from a pointer position in viewport pixels.
// The viewport center looks straight ahead.
func (w *World) OnPointerMove(x, y float64) {
	cam := w.Camera
	theta := cam.Theta()
	theta.Y = (x - cam.Width()/2) / cam.Width() * w.opts.LookYaw
	theta.X = -(y - cam.Height()/2) / cam.Height() * w.opts.LookPitch
	cam.SetTheta(theta)
}

func (w *World) setPhase(p Phase) {
	w.phase = p
	if w.opts.OnPhase != nil {
		w.opts.OnPhase(p)
	}
}

// Render draws one frame on cv.
func (w *World) Render(cv render.Canvas) FrameStats {
	start := time.Now()
	cam := w.Camera
	style := models.Style{
		ShadeCoefficient: w.opts.ShadeCoefficient,
		LineWidth:        w.opts.LineWidth,
	}

	w.setPhase(PhaseCollecting)
	cv.Clear(w.opts.Background)
	w.scratch = w.scratch[:0]
	for _, o := range w.objects {
		for _, m := range o.Meshes {
			for _, f := range m.Faces() {
				snap := f.Snapshot(m.Wireframe)
				w.scratch = append(w.scratch, depthFace{
					face: snap,
					dist: snap.Points[0].Distance(cam.Position),
				})
			}
		}
	}

	slices.SortStableFunc(w.scratch, w.compare)
	w.setPhase(PhaseSorted)

	stats := FrameStats{Faces: len(w.scratch)}
	for _, e := range w.scratch {
		if w.opts.MaxDrawDistance > 0 && e.dist >= w.opts.MaxDrawDistance {
			stats.Culled++
			continue
		}
		if e.face.Draw(cam, w.lights, cv, style) {
			stats.Drawn++
		} else {
			stats.Skipped++
		}
	}
	if w.opts.ShowAxes {
		render.DrawAxes(cv, cam, math3d.Zero3(), w.opts.AxisLength, 1)
	}
	w.setPhase(PhaseDrawn)

	stats.Elapsed = time.Since(start)
	w.log.Debug("frame rendered",
		zap.Int("faces", stats.Faces),
		zap.Int("drawn", stats.Drawn),
		zap.Int("culled", stats.Culled),
		zap.Int("skipped", stats.Skipped),
		zap.Duration("elapsed", stats.Elapsed),
	)
	w.setPhase(PhaseIdle)
	return stats
}

// compare orders faces by distance. NaN distances sort first in both
// directions.
func (w *World) compare(a, b depthFace) int {
	if w.opts.FarFirst && !math.IsNaN(a.dist) && !math.IsNaN(b.dist) {
		return cmp.Compare(b.dist, a.dist)
	}
	return cmp.Compare(a.dist, b.dist)
}

// Distances returns the sorted face distances of the last frame.
func (w *World) Distances() []float64 {
	out := make([]float64, len(w.scratch))
	for i, e := range w.scratch {
		out[i] = e.dist
	}
	return out
}
