package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	uv "github.com/charmbracelet/ultraviolet"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/taigrr/painter/internal/logger"
	"github.com/taigrr/painter/internal/scene"
	"github.com/taigrr/painter/pkg/models"
	"github.com/taigrr/painter/pkg/render"
	"github.com/taigrr/painter/pkg/world"
)

var (
	modelPath string
	targetFPS int
	farFirst  bool
)

func addViewerFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&targetFPS, "fps", 0, "target FPS (default from config)")
	cmd.Flags().StringVar(&modelPath, "model", "", "GLB/GLTF model to add to the scene")
	cmd.Flags().BoolVar(&farFirst, "far-first", false, "draw far faces first")
}

// loadModel imports the --model file, if any.
func loadModel() (*models.Mesh, error) {
	if modelPath == "" {
		return nil, nil
	}
	mesh, err := models.LoadGLB(modelPath)
	if err != nil {
		return nil, fmt.Errorf("load model: %w", err)
	}
	logger.Info("model loaded",
		zap.String("file", filepath.Base(modelPath)),
		zap.Int("vertices", mesh.VertexCount()),
		zap.Int("triangles", mesh.TriangleCount()),
	)
	return mesh, nil
}

func runViewer(cmd *cobra.Command, args []string) error {
	defer logger.Sync()

	if targetFPS > 0 {
		cfg.Viewer.FPS = targetFPS
	}
	if farFirst {
		cfg.Render.FarFirst = true
	}
	model, err := loadModel()
	if err != nil {
		return err
	}

	term := uv.DefaultTerminal()
	width, height, err := term.GetSize()
	if err != nil {
		return fmt.Errorf("get terminal size: %w", err)
	}
	if err := term.Start(); err != nil {
		return fmt.Errorf("start terminal: %w", err)
	}

	term.EnterAltScreen()
	term.HideCursor()
	term.Resize(width, height)

	fmt.Fprint(os.Stdout, "\x1b[?1003h") // Enable any-event mouse tracking
	fmt.Fprint(os.Stdout, "\x1b[?1006h") // Enable SGR extended mouse mode

	cleanup := func() {
		fmt.Fprint(os.Stdout, "\x1b[?1003l")
		fmt.Fprint(os.Stdout, "\x1b[?1006l")
		term.ExitAltScreen()
		term.ShowCursor()
		term.Shutdown(context.Background())
	}

	termRenderer := render.NewTerminalRenderer(term, width, height)
	fbWidth, fbHeight := termRenderer.FramebufferSize()
	fb := render.NewFramebuffer(fbWidth, fbHeight)

	cfg.Camera.Width = float64(fbWidth)
	cfg.Camera.Height = float64(fbHeight)
	sc, err := scene.Build(cfg, model)
	if err != nil {
		cleanup()
		return err
	}
	w := sc.World

	title := "painter"
	if model != nil {
		title = filepath.Base(modelPath)
	}
	hud := NewHUD(title, cfg.Viewer.ShowHUD)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Events are read on their own goroutine and handled on the render
	// goroutine, so the world is only touched from one place.
	events := make(chan uv.Event, 64)
	go func() {
		for ev := range term.Events() {
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	ticker := time.NewTicker(time.Second / time.Duration(cfg.Viewer.FPS))
	defer ticker.Stop()
	lastFrame := time.Now()

	for {
		select {
		case <-ctx.Done():
			cleanup()
			return nil

		case ev := <-events:
			switch ev := ev.(type) {
			case uv.WindowSizeEvent:
				width, height = ev.Width, ev.Height
				term.Erase()
				term.Resize(width, height)
				termRenderer = render.NewTerminalRenderer(term, width, height)
				fbWidth, fbHeight = termRenderer.FramebufferSize()
				fb = render.NewFramebuffer(fbWidth, fbHeight)
				if err := w.OnResize(uint32(fbWidth), uint32(fbHeight)); err != nil {
					logger.Warn("resize ignored", zap.Error(err))
				}

			case uv.KeyPressEvent:
				switch {
				case ev.MatchString("escape", "ctrl+c"):
					cancel()
				case ev.MatchString("?"), ev.MatchString("shift+/"):
					hud.Visible = !hud.Visible
				case ev.MatchString("space"):
					w.Camera.LookAt(sc.Diamond.Offset)
				case ev.MatchString("r"):
					cam, err := scene.NewCamera(cfg)
					if err == nil {
						w.Camera.Put(cam.Position)
						w.Camera.SetTheta(cam.Theta())
					}
				default:
					handleKey(w, ev)
				}

			case uv.MouseMotionEvent:
				// Each terminal row holds two framebuffer rows.
				w.OnPointerMove(float64(ev.X), float64(ev.Y*2))
			}

		case now := <-ticker.C:
			dt := now.Sub(lastFrame).Seconds()
			lastFrame = now
			if dt > 0.1 {
				dt = 0.1
			}

			w.OnTick(dt)
			stats := w.Render(fb)

			termRenderer.Render(fb)
			if err := termRenderer.Flush(); err != nil {
				cleanup()
				return fmt.Errorf("flush: %w", err)
			}

			hud.Update(stats)
			hud.Render(width, height)
		}
	}
}

// handleKey forwards a bound key to the world.
func handleKey(w *world.World, ev uv.KeyPressEvent) {
	for _, b := range world.KeyBindings() {
		if ev.MatchString(b.Key) {
			w.OnKey(b.Key)
			return
		}
	}
}
