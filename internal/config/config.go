// Package config handles painter configuration loading and management.
package config

import (
	"errors"
	"fmt"

	"github.com/taigrr/painter/pkg/math3d"
	"github.com/taigrr/painter/pkg/render"
)

// Vec is a 3-vector written as a [x, y, z] sequence.
type Vec [3]float64

// V3 converts to a math3d vector.
func (v Vec) V3() math3d.Vec3 {
	return math3d.V3(v[0], v[1], v[2])
}

// RGBA is a color written as a [r, g, b, a] byte sequence.
type RGBA [4]uint8

// Color converts to a render color.
func (c RGBA) Color() render.Color {
	return render.RGBA(c[0], c[1], c[2], c[3])
}

// Config holds all painter settings.
type Config struct {
	Camera  CameraConfig  `yaml:"camera"`
	Light   LightConfig   `yaml:"light"`
	Render  RenderConfig  `yaml:"render"`
	Scene   SceneConfig   `yaml:"scene"`
	Viewer  ViewerConfig  `yaml:"viewer"`
	Logging LoggingConfig `yaml:"logging"`
}

// CameraConfig holds the initial camera placement.
type CameraConfig struct {
	Position Vec     `yaml:"position"`
	Theta    Vec     `yaml:"theta"`
	Screen   float64 `yaml:"screen"`
	Width    float64 `yaml:"width"`  // Headless viewport width
	Height   float64 `yaml:"height"` // Headless viewport height
}

// LightConfig holds the light source.
type LightConfig struct {
	Position Vec `yaml:"position"`
}

// RenderConfig holds per-frame drawing settings.
type RenderConfig struct {
	Background       RGBA    `yaml:"background"`
	MaxDrawDistance  float64 `yaml:"max_draw_distance"`
	ShadeCoefficient float64 `yaml:"shade_coefficient"`
	LineWidth        float64 `yaml:"line_width"`
	FarFirst         bool    `yaml:"far_first"`
	ShowAxes         bool    `yaml:"show_axes"`
}

// SceneConfig holds the built-in scene.
type SceneConfig struct {
	TerrainSize       float64 `yaml:"terrain_size"`
	TerrainResolution float64 `yaml:"terrain_resolution"`
	DiamondSize       float64 `yaml:"diamond_size"`
	DiamondPosition   Vec     `yaml:"diamond_position"`
	Domain            bool    `yaml:"domain"`
	DomainSize        float64 `yaml:"domain_size"`
	ModelSize         float64 `yaml:"model_size"`
	ModelPosition     Vec     `yaml:"model_position"`
	Orbit             bool    `yaml:"orbit"`
}

// ViewerConfig holds interactive settings.
type ViewerConfig struct {
	FPS       int     `yaml:"fps"`
	MoveStep  float64 `yaml:"move_step"`
	LookYaw   float64 `yaml:"look_yaw"`
	LookPitch float64 `yaml:"look_pitch"`
	ShowHUD   bool    `yaml:"show_hud"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with the default scene.
func Default() *Config {
	return &Config{
		Camera: CameraConfig{
			Position: Vec{0, -200, -250},
			Theta:    Vec{0.4, 0, 0},
			Screen:   render.DefaultScreen,
			Width:    200,
			Height:   200,
		},
		Light: LightConfig{
			Position: Vec{200, 100, 0},
		},
		Render: RenderConfig{
			Background:       RGBA{0, 0, 0, 255},
			MaxDrawDistance:  600,
			ShadeCoefficient: 0.4,
			LineWidth:        0.5,
		},
		Scene: SceneConfig{
			TerrainSize:       600,
			TerrainResolution: 20,
			DiamondSize:       50,
			DiamondPosition:   Vec{0, -100, 100},
			DomainSize:        800,
			ModelSize:         100,
			ModelPosition:     Vec{0, -100, 0},
		},
		Viewer: ViewerConfig{
			FPS:       60,
			MoveStep:  10,
			LookYaw:   6,
			LookPitch: 2,
			ShowHUD:   true,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Validate reports every setting that cannot produce a scene.
func (c *Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Camera.Width > 0 && c.Camera.Height > 0,
		"camera viewport must be positive, got %vx%v", c.Camera.Width, c.Camera.Height)
	check(c.Camera.Screen > 0, "camera screen must be positive, got %v", c.Camera.Screen)
	check(c.Render.MaxDrawDistance >= 0, "max_draw_distance must not be negative, got %v", c.Render.MaxDrawDistance)
	check(c.Render.ShadeCoefficient >= 0 && c.Render.ShadeCoefficient <= 1,
		"shade_coefficient must be in [0, 1], got %v", c.Render.ShadeCoefficient)
	check(c.Render.LineWidth > 0, "line_width must be positive, got %v", c.Render.LineWidth)
	check(c.Scene.TerrainResolution > 0, "terrain_resolution must be positive, got %v", c.Scene.TerrainResolution)
	check(c.Scene.TerrainSize >= 0, "terrain_size must not be negative, got %v", c.Scene.TerrainSize)
	check(c.Viewer.FPS > 0, "fps must be positive, got %d", c.Viewer.FPS)

	return errors.Join(errs...)
}
