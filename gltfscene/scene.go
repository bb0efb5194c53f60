// Package gltfscene loads a glTF document into the triangle sources and
// material oracles the voxel package's surface voxelizer consumes.
package gltfscene

import (
	"fmt"
	"path/filepath"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
	"github.com/rs/zerolog/log"

	"github.com/gridforge/voxelize/voxel"
)

// Model pairs a triangle source with the material oracle that samples its
// surface, as consumed by voxel.Voxelize.
type Model struct {
	Triangles *PrimitiveTriangles
	Material  voxel.MaterialOracle
}

// Scene is a flattened, voxelization-ready view of a glTF document: one
// Model per triangle-mode mesh primitive that carries a POSITION attribute.
type Scene struct {
	Models []Model
}

// Load parses the glTF file at path and builds a Scene. Primitives without a
// POSITION attribute, or whose mode is not triangles, are skipped with a
// logged warning rather than failing the whole scene.
func Load(path string) (*Scene, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("gltfscene: open %s: %w", path, err)
	}

	gltfDir := filepath.Dir(path)
	scene := &Scene{}
	nextIndex := 0

	for meshIdx, mesh := range doc.Meshes {
		for primIdx, primitive := range mesh.Primitives {
			if primitive.Mode != gltf.PrimitiveTriangles {
				log.Warn().
					Int("mesh", meshIdx).
					Int("primitive", primIdx).
					Str("mode", primitiveModeName(primitive.Mode)).
					Msg("gltfscene: skipping non-triangle primitive")
				continue
			}

			posAccessorIdx, ok := primitive.Attributes[gltf.POSITION]
			if !ok {
				log.Warn().
					Int("mesh", meshIdx).
					Int("primitive", primIdx).
					Msg("gltfscene: skipping primitive with no POSITION attribute")
				continue
			}

			model, err := loadPrimitive(doc, gltfDir, primitive, posAccessorIdx, nextIndex)
			if err != nil {
				return nil, fmt.Errorf("gltfscene: mesh %d primitive %d: %w", meshIdx, primIdx, err)
			}

			scene.Models = append(scene.Models, model)
			nextIndex++
		}
	}

	return scene, nil
}

func loadPrimitive(doc *gltf.Document, gltfDir string, primitive *gltf.Primitive, posAccessorIdx uint32, index int) (Model, error) {
	positions, err := modeler.ReadPosition(doc, doc.Accessors[posAccessorIdx], nil)
	if err != nil {
		return Model{}, fmt.Errorf("read positions: %w", err)
	}

	var texCoords [][2]float32
	if texAccessorIdx, ok := primitive.Attributes[gltf.TEXCOORD_0]; ok {
		texCoords, err = modeler.ReadTextureCoord(doc, doc.Accessors[texAccessorIdx], nil)
		if err != nil {
			return Model{}, fmt.Errorf("read texture coordinates: %w", err)
		}
	}

	var indices []uint32
	if primitive.Indices != nil {
		indices, err = modeler.ReadIndices(doc, doc.Accessors[*primitive.Indices], nil)
		if err != nil {
			return Model{}, fmt.Errorf("read indices: %w", err)
		}
	} else {
		indices = sequentialIndices(len(positions))
	}

	triangles := &PrimitiveTriangles{
		index:     index,
		triangles: buildTriangles(positions, texCoords, indices),
	}

	oracle := newTextureOracle(doc, gltfDir, primitive.Material)

	return Model{Triangles: triangles, Material: oracle}, nil
}

func primitiveModeName(mode gltf.PrimitiveMode) string {
	switch mode {
	case gltf.PrimitivePoints:
		return "points"
	case gltf.PrimitiveLines:
		return "lines"
	case gltf.PrimitiveLineLoop:
		return "line_loop"
	case gltf.PrimitiveLineStrip:
		return "line_strip"
	case gltf.PrimitiveTriangles:
		return "triangles"
	case gltf.PrimitiveTriangleStrip:
		return "triangle_strip"
	case gltf.PrimitiveTriangleFan:
		return "triangle_fan"
	default:
		return "unknown"
	}
}
