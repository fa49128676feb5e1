package world

import (
	"math"

	"github.com/charmbracelet/harmonica"
	"github.com/taigrr/painter/pkg/math3d"
)

// Chain runs hooks in order. Nil hooks are skipped.
func Chain(hooks ...UpdateFunc) UpdateFunc {
	return func(o *Object, t, dt float64) {
		for _, h := range hooks {
			if h != nil {
				h(o, t, dt)
			}
		}
	}
}

// Orbit moves the object by (cos t, 0, sin t)·scale on every tick, tracing
// a circle of radius scale per radian of world time.
func Orbit(scale float64) UpdateFunc {
	return func(o *Object, t, _ float64) {
		o.Translate(math3d.V3(math.Cos(t), 0, math.Sin(t)).Scale(scale))
	}
}

// Spin rotates the object's meshes at rate radians per second.
func Spin(rate math3d.Vec3) UpdateFunc {
	return func(o *Object, _, dt float64) {
		o.Rotate(rate.Scale(dt))
	}
}

// Follower eases an object toward a target with a damped spring.
type Follower struct {
	Target math3d.Vec3

	spring harmonica.Spring
	vel    math3d.Vec3
}

// Follow attaches a Follower to o: key moves shift the target and each tick
// pulls the object toward it.
func Follow(o *Object, fps int, frequency, damping float64) *Follower {
	f := &Follower{
		Target: o.Offset,
		spring: harmonica.NewSpring(harmonica.FPS(fps), frequency, damping),
	}
	o.Steer = f.Steer
	o.Update = Chain(o.Update, f.Update)
	return f
}

// Steer moves the target by delta.
func (f *Follower) Steer(delta math3d.Vec3) {
	f.Target = f.Target.Add(delta)
}

// Update advances the spring one step.
func (f *Follower) Update(o *Object, _, _ float64) {
	var next math3d.Vec3
	next.X, f.vel.X = f.spring.Update(o.Offset.X, f.vel.X, f.Target.X)
	next.Y, f.vel.Y = f.spring.Update(o.Offset.Y, f.vel.Y, f.Target.Y)
	next.Z, f.vel.Z = f.spring.Update(o.Offset.Z, f.vel.Z, f.Target.Z)
	o.Translate(next.Sub(o.Offset))
}

// Bobber oscillates an object's meshes vertically without moving the
// object offset.
type Bobber struct {
	Amplitude float64
	Frequency float64 // Hz

	last float64
}

// Update moves the meshes to Amplitude·sin(2πFt).
func (b *Bobber) Update(o *Object, t, _ float64) {
	y := b.Amplitude * math.Sin(2*math.Pi*b.Frequency*t)
	delta := math3d.V3(0, y-b.last, 0)
	b.last = y
	for _, m := range o.Meshes {
		m.Translate(delta)
	}
}
