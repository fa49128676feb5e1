package scene

import (
	"errors"
	"math"
	"testing"

	"github.com/taigrr/painter/internal/config"
	"github.com/taigrr/painter/pkg/math3d"
	"github.com/taigrr/painter/pkg/models"
	"github.com/taigrr/painter/pkg/render"
)

func TestBuildDefault(t *testing.T) {
	cfg := config.Default()
	s, err := Build(cfg, nil)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	if got := len(s.World.Objects()); got != 2 {
		t.Fatalf("objects = %d, want terrain and diamond", got)
	}
	if got, want := s.World.FaceCount(), 29*29*2+8; got != want {
		t.Errorf("faces = %d, want %d", got, want)
	}
	if s.World.Movable() != s.Diamond {
		t.Error("diamond should be movable")
	}
	if s.Domain != nil || s.Model != nil {
		t.Error("domain and model should be absent by default")
	}
	if !s.Diamond.Meshes[0].Wireframe {
		t.Error("diamond should be wireframe")
	}

	cam := s.World.Camera
	if cam.Position != math3d.V3(0, -200, -250) || cam.Theta() != math3d.V3(0.4, 0, 0) {
		t.Errorf("camera at %v looking %v", cam.Position, cam.Theta())
	}
	if cam.Projection() != math3d.Rotation(cam.Theta()) {
		t.Error("camera projection not initialized")
	}
	if opts := s.World.Options(); opts.MaxDrawDistance != 600 || opts.MoveStep != 10 {
		t.Errorf("options = %+v", opts)
	}
}

func TestBuildInvalidCamera(t *testing.T) {
	cfg := config.Default()
	cfg.Camera.Width = 0
	if _, err := Build(cfg, nil); !errors.Is(err, render.ErrInvalidViewport) {
		t.Errorf("Build error = %v, want ErrInvalidViewport", err)
	}
}

func TestBuildWithDomainAndModel(t *testing.T) {
	cfg := config.Default()
	cfg.Scene.Domain = true

	model := models.NewDiamond(3)
	model.Name = "imported"
	s, err := Build(cfg, model)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(s.World.Objects()) != 4 {
		t.Fatalf("objects = %d, want 4", len(s.World.Objects()))
	}
	if s.Model == nil || s.Model.Name != "imported" {
		t.Fatalf("model object = %+v", s.Model)
	}
	if size := model.Size(); math.Abs(size.Y-cfg.Scene.ModelSize) > 1e-9 {
		t.Errorf("model height = %v, want fitted to %v", size.Y, cfg.Scene.ModelSize)
	}
	if c := model.Center(); !c.ApproxEqual(cfg.Scene.ModelPosition.V3(), 1e-9) {
		t.Errorf("model center = %v, want %v", c, cfg.Scene.ModelPosition)
	}
}

func TestDiamondFollowsKeys(t *testing.T) {
	s, err := Build(config.Default(), nil)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	start := s.Diamond.Offset

	if !s.World.OnKey("right") {
		t.Fatal("arrow key not handled")
	}
	if s.Diamond.Offset != start {
		t.Error("key move should steer the follower, not jump")
	}
	for range 600 {
		s.World.OnTick(1.0 / 60)
	}
	want := start.Add(math3d.V3(10, 0, 0))
	if !s.Diamond.Offset.ApproxEqual(want, 1e-2) {
		t.Errorf("diamond at %v, want %v", s.Diamond.Offset, want)
	}
}

func TestBuildOrbit(t *testing.T) {
	cfg := config.Default()
	cfg.Scene.Orbit = true
	s, err := Build(cfg, nil)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if s.Follower != nil {
		t.Error("orbiting diamond should not have a follower")
	}
	start := s.Diamond.Offset
	s.World.OnTick(0)
	if got := s.Diamond.Offset.Sub(start); !got.ApproxEqual(math3d.V3(1, 0, 0), 1e-12) {
		t.Errorf("orbit step = %v, want (1, 0, 0)", got)
	}
}

func TestRenderDefaultScene(t *testing.T) {
	s, err := Build(config.Default(), nil)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	fb := render.NewFramebuffer(200, 200)
	stats := s.World.Render(fb)

	if stats.Faces != s.World.FaceCount() {
		t.Errorf("collected %d faces, want %d", stats.Faces, s.World.FaceCount())
	}
	if stats.Drawn == 0 {
		t.Error("default scene drew nothing")
	}
	if stats.Drawn+stats.Culled+stats.Skipped != stats.Faces {
		t.Errorf("stats do not add up: %+v", stats)
	}
}
