// painter - software 3D renderer using the painter's algorithm.
//
// The default command opens a terminal viewer of the built-in scene:
// a sine-wave terrain and a wireframe diamond.
//
// Controls:
//
//	W/S         - Camera forward/back
//	A/D         - Camera left/right
//	E/Q         - Camera down/up
//	Arrows      - Move the diamond
//	Mouse       - Look around
//	Space       - Look at the diamond
//	R           - Reset camera
//	?           - Toggle HUD overlay
//	Esc         - Quit
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/taigrr/painter/internal/config"
	"github.com/taigrr/painter/internal/logger"
)

var (
	configPath string
	logLevel   string
	logFile    string

	cfg *config.Config
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "painter",
		Short: "software 3D renderer using the painter's algorithm",
		Args:  cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setup(cmd)
		},
		RunE: runViewer,
	}
	rootCmd.SilenceUsage = true
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "log file path")
	addViewerFlags(rootCmd)

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "open the terminal viewer",
		Args:  cobra.NoArgs,
		RunE:  runViewer,
	}
	addViewerFlags(runCmd)

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "render frames headless and report timings",
		Args:  cobra.NoArgs,
		RunE:  benchScene,
	}
	benchCmd.Flags().IntVar(&benchFrames, "frames", 120, "number of frames")
	benchCmd.Flags().IntVar(&benchWidth, "width", 0, "framebuffer width (default from config)")
	benchCmd.Flags().IntVar(&benchHeight, "height", 0, "framebuffer height (default from config)")
	benchCmd.Flags().StringVar(&benchPNG, "png", "", "save the last frame as PNG")
	benchCmd.Flags().StringVar(&modelPath, "model", "", "GLB/GLTF model to add to the scene")

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "print the effective configuration",
		Args:  cobra.NoArgs,
		RunE:  showConfig,
	}
	configCmd.Flags().StringVar(&saveConfigPath, "save", "", "also write the configuration to this path")

	rootCmd.AddCommand(runCmd, benchCmd, configCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// setup loads configuration and initializes logging. The viewer owns the
// terminal, so it logs to the file only.
func setup(cmd *cobra.Command) error {
	var err error
	cfg, err = config.Load(configPath)
	if err != nil {
		return err
	}
	if logLevel != "" {
		cfg.Logging.Level = logLevel
	}
	if logFile != "" {
		cfg.Logging.LogFile = logFile
	}

	viewer := cmd == cmd.Root() || cmd.Name() == "run"
	fileCfg := logger.FileConfig{}
	if cfg.Logging.LogFile != "" {
		fileCfg = logger.DefaultFileConfig(cfg.Logging.LogFile)
	}
	if err := logger.InitWithFileConfig(cfg.Logging.Level, fileCfg, !viewer); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	return nil
}

var saveConfigPath string

func showConfig(cmd *cobra.Command, args []string) error {
	data, err := cfg.Marshal()
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	fmt.Fprint(cmd.OutOrStdout(), string(data))
	if saveConfigPath != "" {
		if err := cfg.SaveTo(saveConfigPath); err != nil {
			return fmt.Errorf("save config: %w", err)
		}
		logger.Info("config saved", zap.String("path", saveConfigPath))
	}
	return nil
}
