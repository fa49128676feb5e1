package world

import (
	"math"
	"testing"

	"github.com/taigrr/painter/pkg/math3d"
	"github.com/taigrr/painter/pkg/models"
)

func TestChain(t *testing.T) {
	var order []int
	hook := func(n int) UpdateFunc {
		return func(*Object, float64, float64) { order = append(order, n) }
	}
	Chain(hook(1), nil, hook(2))(NewObject("x"), 0, 0)

	if len(order) != 2 || order[0] != 1 || order[1] != 2 {
		t.Errorf("order = %v, want [1 2]", order)
	}
}

func TestOrbit(t *testing.T) {
	o := NewObject("orbiter", models.NewDiamond(1))
	Orbit(2)(o, 0, 0.1)
	if !o.Offset.ApproxEqual(math3d.V3(2, 0, 0), 1e-12) {
		t.Errorf("offset after t=0 = %v, want (2, 0, 0)", o.Offset)
	}
	Orbit(2)(o, math.Pi/2, 0.1)
	if !o.Offset.ApproxEqual(math3d.V3(2, 0, 2), 1e-12) {
		t.Errorf("offset after t=π/2 = %v, want (2, 0, 2)", o.Offset)
	}
	if got := o.Meshes[0].Offset; !got.ApproxEqual(o.Offset, 1e-12) {
		t.Errorf("mesh offset = %v, want object offset %v", got, o.Offset)
	}
}

func TestSpin(t *testing.T) {
	m := models.NewDiamond(1)
	o := NewObject("spinner", m)
	Spin(math3d.V3(0, 1, 0))(o, 0, 0.5)
	if got := m.Theta; !got.ApproxEqual(math3d.V3(0, 0.5, 0), 1e-12) {
		t.Errorf("theta = %v, want (0, 0.5, 0)", got)
	}
}

func TestFollowerConverges(t *testing.T) {
	o := NewObject("follower", models.NewDiamond(1))
	f := Follow(o, 60, 6, 1)

	o.Move(math3d.V3(10, 0, -5))
	if o.Offset != math3d.Zero3() {
		t.Fatalf("Move with a follower should steer, offset = %v", o.Offset)
	}
	if f.Target != math3d.V3(10, 0, -5) {
		t.Fatalf("target = %v", f.Target)
	}

	for range 600 {
		o.Update(o, 0, 1.0/60)
	}
	if !o.Offset.ApproxEqual(f.Target, 1e-3) {
		t.Errorf("offset after settling = %v, want %v", o.Offset, f.Target)
	}
	if !o.Meshes[0].Offset.ApproxEqual(f.Target, 1e-3) {
		t.Errorf("mesh did not follow: %v", o.Meshes[0].Offset)
	}
}

func TestFollowKeepsExistingHook(t *testing.T) {
	o := NewObject("both")
	calls := 0
	o.Update = func(*Object, float64, float64) { calls++ }
	Follow(o, 60, 6, 1)

	o.Update(o, 0, 0)
	if calls != 1 {
		t.Errorf("existing hook called %d times, want 1", calls)
	}
}

func TestBobber(t *testing.T) {
	m := models.NewDiamond(1)
	o := NewObject("bobber", m)
	b := &Bobber{Amplitude: 10, Frequency: 1}

	b.Update(o, 0.25, 0)
	if got := m.Offset.Y; math.Abs(got-10) > 1e-9 {
		t.Errorf("mesh height at quarter period = %v, want 10", got)
	}
	b.Update(o, 1, 0)
	if got := m.Offset.Y; math.Abs(got) > 1e-9 {
		t.Errorf("mesh height at full period = %v, want 0", got)
	}
	if o.Offset != math3d.Zero3() {
		t.Errorf("bobbing moved the object offset to %v", o.Offset)
	}
}
