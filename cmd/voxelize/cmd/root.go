package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "voxelize",
	Short: "Convert a glTF scene into voxel grids",
	Long: `voxelize loads a triangle mesh scene from a glTF container and converts it
into one dense voxel grid per mesh primitive: surface voxelization with
material sampling, interior infill by parity sweep, and raw per-voxel
channel export.`,
	Version: version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().StringVar(&gltfFilePath, "gltf-file-path", "", "Path to the glTF file containing the scene to voxelize (required)")
	rootCmd.PersistentFlags().Float64Var(&voxelSize, "voxel-size", 0, "Voxel size, full box width (required, must be positive)")
	rootCmd.PersistentFlags().StringVar(&voxelizationBounds, "voxelization-bounds", "", `Maximum voxelization bounds: "(min_x, min_y, min_z) / (max_x, max_y, max_z)". Defaults to the scene's own extent.`)
	rootCmd.PersistentFlags().StringVar(&consoleLoggingLevel, "console-logging-level", "info", "Console logging level: trace, debug, info, warn, or error")
	rootCmd.PersistentFlags().IntVar(&workers, "workers", runtime.NumCPU(), "Number of models to voxelize concurrently")

	rootCmd.MarkPersistentFlagRequired("gltf-file-path")
	rootCmd.MarkPersistentFlagRequired("voxel-size")

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if err := setupLogging(consoleLoggingLevel); err != nil {
			return fmt.Errorf("invalid --console-logging-level: %w", err)
		}
		if voxelSize <= 0 {
			return fmt.Errorf("--voxel-size must be positive, got %v", voxelSize)
		}
		return nil
	}

	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(visualizeCmd)
}

// Shared persistent flags, populated by cobra before any subcommand's RunE.
var (
	gltfFilePath        string
	voxelSize           float64
	voxelizationBounds  string
	consoleLoggingLevel string
	workers             int
)
