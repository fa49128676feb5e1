package main

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/taigrr/painter/internal/config"
	"github.com/taigrr/painter/internal/logger"
	"github.com/taigrr/painter/internal/scene"
	"github.com/taigrr/painter/pkg/models"
	"github.com/taigrr/painter/pkg/render"
)

var (
	benchFrames int
	benchWidth  int
	benchHeight int
	benchPNG    string
)

// benchDT is the simulated time step between bench frames.
const benchDT = 1.0 / 60

func benchScene(cmd *cobra.Command, args []string) error {
	defer logger.Sync()

	model, err := loadModel()
	if err != nil {
		return err
	}
	if benchWidth > 0 {
		cfg.Camera.Width = float64(benchWidth)
	}
	if benchHeight > 0 {
		cfg.Camera.Height = float64(benchHeight)
	}
	return runBench(cfg, model, benchFrames, benchPNG, cmd.OutOrStdout())
}

// runBench renders frames into an offscreen framebuffer and writes a
// timing summary to out.
func runBench(cfg *config.Config, model *models.Mesh, frames int, pngPath string, out io.Writer) error {
	if frames <= 0 {
		return errors.New("frames must be positive")
	}
	sc, err := scene.Build(cfg, model)
	if err != nil {
		return err
	}
	w := sc.World
	fb := render.NewFramebuffer(int(cfg.Camera.Width), int(cfg.Camera.Height))

	times := make([]float64, 0, frames)
	var total time.Duration
	var drawn, culled, skipped int
	for range frames {
		w.OnTick(benchDT)
		start := time.Now()
		stats := w.Render(fb)
		elapsed := time.Since(start)

		total += elapsed
		times = append(times, float64(elapsed.Microseconds())/1000)
		drawn += stats.Drawn
		culled += stats.Culled
		skipped += stats.Skipped
	}

	sorted := slices.Clone(times)
	slices.Sort(sorted)
	mean := total / time.Duration(frames)

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "FRAMES\tFACES\tMEAN\tP50\tP95\tMAX\tDRAWN\tCULLED\tSKIPPED")
	fmt.Fprintf(tw, "%d\t%d\t%s\t%.3fms\t%.3fms\t%.3fms\t%d\t%d\t%d\n",
		frames,
		w.FaceCount(),
		mean.Round(time.Microsecond),
		percentile(sorted, 0.5),
		percentile(sorted, 0.95),
		sorted[len(sorted)-1],
		drawn/frames,
		culled/frames,
		skipped/frames,
	)
	if err := tw.Flush(); err != nil {
		return err
	}

	if frames > 1 {
		graph := asciigraph.Plot(times,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption("frame time (ms)"),
		)
		fmt.Fprintln(out)
		fmt.Fprintln(out, graph)
	}

	if pngPath != "" {
		if err := fb.SavePNG(pngPath); err != nil {
			return fmt.Errorf("save png: %w", err)
		}
		logger.Info("frame saved", zap.String("path", pngPath))
	}
	return nil
}

// percentile returns the p-th percentile of sorted values.
func percentile(sorted []float64, p float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	i := int(p * float64(len(sorted)-1))
	return sorted[i]
}
