package render

import (
	"testing"

	"github.com/taigrr/painter/pkg/math3d"
)

type recordedLine struct {
	x0, y0, x1, y1 float64
	color          Color
}

type lineRecorder struct {
	lines []recordedLine
}

func (r *lineRecorder) Clear(Color)                            {}
func (r *lineRecorder) DrawPolygon([3]math3d.Vec2, Color)      {}
func (r *lineRecorder) DrawLine(x0, y0, x1, y1 float64, c Color, _ float64) {
	r.lines = append(r.lines, recordedLine{x0, y0, x1, y1, c})
}

func TestDrawLine3D(t *testing.T) {
	cam := newTestCamera(t)
	rec := &lineRecorder{}

	if !DrawLine3D(rec, cam, math3d.V3(0, 0, 300), math3d.V3(100, 0, 300), ColorWhite, 1) {
		t.Fatal("visible segment reported as skipped")
	}
	if len(rec.lines) != 1 {
		t.Fatalf("got %d lines, want 1", len(rec.lines))
	}
	l := rec.lines[0]
	if l.x0 != 100 || l.y0 != 100 || l.x1 != 200 || l.y1 != 100 {
		t.Errorf("line = %+v, want (100,100)-(200,100)", l)
	}

	if DrawLine3D(rec, cam, math3d.V3(0, 0, 300), math3d.V3(0, 0, -10), ColorWhite, 1) {
		t.Error("segment crossing behind the camera should be skipped")
	}
	if len(rec.lines) != 1 {
		t.Errorf("skipped segment reached the canvas")
	}
}

func TestDrawAxes(t *testing.T) {
	cam := newTestCamera(t)
	rec := &lineRecorder{}
	DrawAxes(rec, cam, math3d.V3(0, 0, 300), 50, 1)

	if len(rec.lines) != 3 {
		t.Fatalf("got %d axis lines, want 3", len(rec.lines))
	}
	want := []Color{ColorRed, ColorGreen, ColorBlue}
	for i, l := range rec.lines {
		if l.color != want[i] {
			t.Errorf("axis %d color = %v, want %v", i, l.color, want[i])
		}
	}
}
