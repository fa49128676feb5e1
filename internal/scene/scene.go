// Package scene assembles the default world from configuration.
package scene

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/taigrr/painter/internal/config"
	"github.com/taigrr/painter/internal/logger"
	"github.com/taigrr/painter/pkg/math3d"
	"github.com/taigrr/painter/pkg/models"
	"github.com/taigrr/painter/pkg/render"
	"github.com/taigrr/painter/pkg/world"
)

// Spring parameters for the diamond following key moves.
const (
	followFrequency = 6.0
	followDamping   = 0.6
)

// Scene is a built world together with its named objects.
type Scene struct {
	World    *world.World
	Terrain  *world.Object
	Diamond  *world.Object
	Domain   *world.Object // nil unless enabled
	Model    *world.Object // nil without a model
	Follower *world.Follower
}

// Options maps configuration onto world options.
func Options(cfg *config.Config) world.Options {
	opts := world.DefaultOptions()
	opts.Background = cfg.Render.Background.Color()
	opts.MaxDrawDistance = cfg.Render.MaxDrawDistance
	opts.ShadeCoefficient = cfg.Render.ShadeCoefficient
	opts.LineWidth = cfg.Render.LineWidth
	opts.FarFirst = cfg.Render.FarFirst
	opts.ShowAxes = cfg.Render.ShowAxes
	opts.MoveStep = cfg.Viewer.MoveStep
	opts.LookYaw = cfg.Viewer.LookYaw
	opts.LookPitch = cfg.Viewer.LookPitch
	opts.Logger = logger.Named("world")
	return opts
}

// NewCamera creates the configured camera.
func NewCamera(cfg *config.Config) (*render.Camera, error) {
	cam, err := render.NewCamera(cfg.Camera.Width, cfg.Camera.Height)
	if err != nil {
		return nil, fmt.Errorf("create camera: %w", err)
	}
	cam.Screen = cfg.Camera.Screen
	cam.Put(cfg.Camera.Position.V3())
	cam.SetTheta(cfg.Camera.Theta.V3())
	return cam, nil
}

// Build creates the world: terrain, the movable diamond, the optional
// domain backdrop and an optional imported model.
func Build(cfg *config.Config, model *models.Mesh) (*Scene, error) {
	cam, err := NewCamera(cfg)
	if err != nil {
		return nil, err
	}
	lights := []render.Light{render.NewLight(cfg.Light.Position.V3())}

	w, err := world.New(cam, lights, Options(cfg))
	if err != nil {
		return nil, fmt.Errorf("create world: %w", err)
	}
	s := &Scene{World: w}

	s.Terrain = w.AddObject(world.NewObject("terrain",
		models.NewTerrain(cfg.Scene.TerrainSize, cfg.Scene.TerrainResolution)))

	diamond := world.NewObject("diamond", models.NewDiamond(cfg.Scene.DiamondSize))
	diamond.Translate(cfg.Scene.DiamondPosition.V3())
	if cfg.Scene.Orbit {
		diamond.Update = world.Orbit(1)
	} else {
		s.Follower = world.Follow(diamond, cfg.Viewer.FPS, followFrequency, followDamping)
		bob := &world.Bobber{Amplitude: cfg.Scene.DiamondSize / 5, Frequency: 0.5}
		diamond.Update = world.Chain(diamond.Update, bob.Update)
	}
	s.Diamond = w.AddObject(diamond)
	w.SetMovable(diamond)

	if cfg.Scene.Domain {
		s.Domain = w.AddObject(world.NewObject("domain", models.NewDomain(cfg.Scene.DomainSize)))
	}

	if model != nil {
		if cfg.Scene.ModelSize > 0 {
			model.FitTo(cfg.Scene.ModelSize)
		}
		obj := world.NewObject(model.Name, model)
		obj.Translate(cfg.Scene.ModelPosition.V3())
		obj.Update = world.Spin(math3d.V3(0, 0.5, 0))
		s.Model = w.AddObject(obj)
	}

	logger.Info("scene built",
		zap.Int("objects", len(w.Objects())),
		zap.Int("faces", w.FaceCount()),
	)
	return s, nil
}
