package gltfscene

import "github.com/gridforge/voxelize/voxel"

// PrimitiveTriangles implements voxel.TriangleSource over one glTF mesh
// primitive's already-decoded triangle list.
type PrimitiveTriangles struct {
	index     int
	triangles []voxel.Triangle
}

// Triangles returns the primitive's triangle list.
func (p *PrimitiveTriangles) Triangles() ([]voxel.Triangle, error) {
	return p.triangles, nil
}

// PrimitiveIndex returns the primitive's position in scene iteration order.
func (p *PrimitiveTriangles) PrimitiveIndex() int {
	return p.index
}

func buildTriangles(positions [][3]float32, texCoords [][2]float32, indices []uint32) []voxel.Triangle {
	triangles := make([]voxel.Triangle, 0, len(indices)/3)

	for i := 0; i+2 < len(indices); i += 3 {
		triangles = append(triangles, voxel.Triangle{
			vertexAt(positions, texCoords, indices[i]),
			vertexAt(positions, texCoords, indices[i+1]),
			vertexAt(positions, texCoords, indices[i+2]),
		})
	}

	return triangles
}

func vertexAt(positions [][3]float32, texCoords [][2]float32, idx uint32) voxel.Vertex {
	pos := positions[idx]
	v := voxel.Vertex{Position: [3]float64{float64(pos[0]), float64(pos[1]), float64(pos[2])}}

	if int(idx) < len(texCoords) {
		uv := texCoords[idx]
		v.UV = [2]float64{float64(uv[0]), float64(uv[1])}
	}

	return v
}

func sequentialIndices(n int) []uint32 {
	indices := make([]uint32, n)
	for i := range indices {
		indices[i] = uint32(i)
	}
	return indices
}
