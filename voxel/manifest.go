package voxel

import (
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
)

// ExportManifest is pure metadata describing a raw export's shape for a
// downstream volumetric consumer. It is never consulted by the core to
// reconstruct a grid; writing it alongside a raw export is optional and does
// not change the raw bytes.
type ExportManifest struct {
	Nx, Ny, Nz     int
	Origin         [3]float64
	VoxelFullSize  float64
	PrimitiveIndex int
	Channel        string
}

// ManifestFor builds a manifest describing grid's shape for a given
// primitive and channel.
func ManifestFor(grid *FinalGrid, primitiveIndex int, channel Channel) ExportManifest {
	return ExportManifest{
		Nx:             grid.Shape.Nx,
		Ny:             grid.Shape.Ny,
		Nz:             grid.Shape.Nz,
		Origin:         grid.Shape.Origin,
		VoxelFullSize:  2 * grid.Shape.HalfExtent,
		PrimitiveIndex: primitiveIndex,
		Channel:        channel.String(),
	}
}

// EncodeManifest serializes m to msgpack bytes.
func EncodeManifest(m ExportManifest) ([]byte, error) {
	data, err := msgpack.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("voxel: encode manifest: %w", err)
	}
	return data, nil
}

// DecodeManifest deserializes msgpack bytes into an ExportManifest.
func DecodeManifest(data []byte) (ExportManifest, error) {
	var m ExportManifest
	if err := msgpack.Unmarshal(data, &m); err != nil {
		return ExportManifest{}, fmt.Errorf("voxel: decode manifest: %w", err)
	}
	return m, nil
}
