package cmd

import (
	"bufio"
	"fmt"
	"os"
	"sync"

	"github.com/alitto/pond/v2"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/gridforge/voxelize/bounds"
	"github.com/gridforge/voxelize/gltfscene"
	"github.com/gridforge/voxelize/voxel"
)

var (
	outputFilePath string
	exportType     string
	writeManifest  bool
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Voxelize the scene and export a per-voxel channel",
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVar(&outputFilePath, "output-file-path", "", "Base output file path (required)")
	exportCmd.Flags().StringVar(&exportType, "export-type", "", "One of: binary-edge_u1, binary-fill_u1, linear-rgb8-color_u8, metallic-value_u8, roughness-value_u8 (required)")
	exportCmd.Flags().BoolVar(&writeManifest, "manifest", true, "Also write a msgpack sidecar manifest describing each grid's shape")

	exportCmd.MarkFlagRequired("output-file-path")
	exportCmd.MarkFlagRequired("export-type")
}

func runExport(cmd *cobra.Command, args []string) error {
	channel, err := voxel.ParseChannel(exportType)
	if err != nil {
		return err
	}

	scene, err := gltfscene.Load(gltfFilePath)
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", gltfFilePath, err)
	}
	log.Info().Int("models", len(scene.Models)).Msg("loaded scene")

	maxBounds, err := resolveMaxBounds(scene)
	if err != nil {
		return err
	}

	pool := pond.NewPool(workers)
	defer pool.StopAndWait()

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)

	for _, model := range scene.Models {
		model := model
		wg.Add(1)

		pool.Submit(func() {
			defer wg.Done()

			if err := voxelizeAndExport(model, maxBounds, channel); err != nil {
				mu.Lock()
				if firstErr == nil {
					firstErr = err
				}
				mu.Unlock()
			}
		})
	}

	wg.Wait()

	return firstErr
}

func voxelizeAndExport(model gltfscene.Model, maxBounds voxel.AABB, channel voxel.Channel) error {
	primitiveIndex := model.Triangles.PrimitiveIndex()

	work, err := voxel.Voxelize(model.Triangles, model.Material, maxBounds, voxelSize)
	if err != nil {
		return fmt.Errorf("model %d: voxelization failed: %w", primitiveIndex, err)
	}

	voxel.Classify(work)
	final := voxel.Finalize(work)

	path := fmt.Sprintf("%s.m-%d.bin", outputFilePath, primitiveIndex)
	if err := exportChannelToFile(path, final, channel); err != nil {
		return err
	}

	if writeManifest {
		manifestPath := fmt.Sprintf("%s.m-%d.manifest.msgpack", outputFilePath, primitiveIndex)
		if err := writeManifestFile(manifestPath, final, primitiveIndex, channel); err != nil {
			return err
		}
	}

	log.Info().Int("model", primitiveIndex).Str("path", path).Msg("exported voxel grid")
	return nil
}

func exportChannelToFile(path string, final *voxel.FinalGrid, channel voxel.Channel) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	if err := voxel.Export(w, final, channel); err != nil {
		return fmt.Errorf("failed to export %s: %w", path, err)
	}

	return nil
}

func writeManifestFile(path string, final *voxel.FinalGrid, primitiveIndex int, channel voxel.Channel) error {
	manifest := voxel.ManifestFor(final, primitiveIndex, channel)

	data, err := voxel.EncodeManifest(manifest)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write manifest %s: %w", path, err)
	}

	return nil
}

// resolveMaxBounds parses --voxelization-bounds when given; otherwise it
// falls back to the scene's own triangle extent, so every model's
// effective bounds computation (voxel.Voxelize) has something to intersect
// against.
func resolveMaxBounds(scene *gltfscene.Scene) (voxel.AABB, error) {
	if voxelizationBounds != "" {
		return bounds.Parse(voxelizationBounds)
	}

	return sceneExtent(scene)
}

func sceneExtent(scene *gltfscene.Scene) (voxel.AABB, error) {
	min := [3]float64{}
	max := [3]float64{}
	seen := false

	for _, model := range scene.Models {
		tris, err := model.Triangles.Triangles()
		if err != nil {
			return voxel.AABB{}, err
		}

		for _, tri := range tris {
			for _, v := range tri {
				if !seen {
					min, max = v.Position, v.Position
					seen = true
					continue
				}
				for axis := 0; axis < 3; axis++ {
					if v.Position[axis] < min[axis] {
						min[axis] = v.Position[axis]
					}
					if v.Position[axis] > max[axis] {
						max[axis] = v.Position[axis]
					}
				}
			}
		}
	}

	if !seen {
		return voxel.NewAABB([3]float64{0, 0, 0}, [3]float64{0, 0, 0}), nil
	}

	return voxel.NewAABB(min, max).Pad(voxelSize), nil
}
