package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/taigrr/painter/pkg/math3d"
	"github.com/taigrr/painter/pkg/render"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Camera.Position.V3() != math3d.V3(0, -200, -250) {
		t.Errorf("camera position = %v", cfg.Camera.Position)
	}
	if cfg.Camera.Theta.V3() != math3d.V3(0.4, 0, 0) {
		t.Errorf("camera theta = %v", cfg.Camera.Theta)
	}
	if cfg.Camera.Screen != 300 {
		t.Errorf("expected screen 300, got %v", cfg.Camera.Screen)
	}
	if cfg.Light.Position.V3() != math3d.V3(200, 100, 0) {
		t.Errorf("light position = %v", cfg.Light.Position)
	}
	if cfg.Render.Background.Color() != render.ColorBlack {
		t.Errorf("background = %v", cfg.Render.Background)
	}
	if cfg.Render.MaxDrawDistance != 600 {
		t.Errorf("expected cutoff 600, got %v", cfg.Render.MaxDrawDistance)
	}
	if cfg.Render.ShadeCoefficient != 0.4 {
		t.Errorf("expected shade coefficient 0.4, got %v", cfg.Render.ShadeCoefficient)
	}
	if cfg.Scene.TerrainSize != 600 || cfg.Scene.TerrainResolution != 20 {
		t.Errorf("terrain = %v/%v", cfg.Scene.TerrainSize, cfg.Scene.TerrainResolution)
	}
	if cfg.Scene.DiamondSize != 50 {
		t.Errorf("expected diamond size 50, got %v", cfg.Scene.DiamondSize)
	}
	if cfg.Viewer.FPS != 60 || cfg.Viewer.MoveStep != 10 {
		t.Errorf("viewer = %+v", cfg.Viewer)
	}
	if cfg.Viewer.LookYaw != 6 || cfg.Viewer.LookPitch != 2 {
		t.Errorf("look factors = %v, %v", cfg.Viewer.LookYaw, cfg.Viewer.LookPitch)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "painter.yaml")

	yamlContent := `
camera:
  position: [10, 20, 30]
  theta: [0, 0.5, 0]
render:
  background: [30, 30, 40, 255]
  max_draw_distance: 0
  far_first: true
scene:
  terrain_resolution: 50
  domain: true
viewer:
  fps: 30
logging:
  level: debug
  log_file: painter.log
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0o644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Camera.Position != (Vec{10, 20, 30}) {
		t.Errorf("camera position = %v", cfg.Camera.Position)
	}
	if cfg.Camera.Screen != 300 {
		t.Errorf("unset screen should keep default, got %v", cfg.Camera.Screen)
	}
	if cfg.Render.Background.Color() != render.RGB(30, 30, 40) {
		t.Errorf("background = %v", cfg.Render.Background)
	}
	if cfg.Render.MaxDrawDistance != 0 || !cfg.Render.FarFirst {
		t.Errorf("render = %+v", cfg.Render)
	}
	if cfg.Scene.TerrainResolution != 50 || cfg.Scene.TerrainSize != 600 || !cfg.Scene.Domain {
		t.Errorf("scene = %+v", cfg.Scene)
	}
	if cfg.Viewer.FPS != 30 || cfg.Viewer.MoveStep != 10 {
		t.Errorf("viewer = %+v", cfg.Viewer)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.LogFile != "painter.log" {
		t.Errorf("logging = %+v", cfg.Logging)
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	write := func(name, content string) string {
		p := filepath.Join(dir, name)
		if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
		return p
	}

	tests := []struct {
		name string
		path string
		want string
	}{
		{"missing file", filepath.Join(dir, "nope.yaml"), "loading config"},
		{"bad yaml", write("bad.yaml", "camera:\n  position: not a vector\n  - broken"), "loading config"},
		{"short vector", write("short.yaml", "camera:\n  position: [1, 2]\n"), "loading config"},
		{"invalid values", write("invalid.yaml", "viewer:\n  fps: 0\nscene:\n  terrain_resolution: -1\n"), "invalid config"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(tc.path)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("error = %v, want it to mention %q", err, tc.want)
			}
		})
	}
}

func TestValidateReportsEveryProblem(t *testing.T) {
	cfg := Default()
	cfg.Camera.Width = 0
	cfg.Viewer.FPS = -1
	cfg.Render.ShadeCoefficient = 2

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}
	for _, want := range []string{"viewport", "fps", "shade_coefficient"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q does not mention %s", err, want)
		}
	}
}

func TestSaveToRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	cfg := Default()
	cfg.Scene.Domain = true
	cfg.Render.Background = RGBA{1, 2, 3, 4}

	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if *loaded != *cfg {
		t.Errorf("loaded config differs:\n got %+v\nwant %+v", loaded, cfg)
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()
	if !strings.HasSuffix(dir, "painter") {
		t.Errorf("ConfigDir = %s, want a painter directory", dir)
	}
}
