package voxel

import "math"

// Voxelize runs surface voxelization for one model: it marks edge voxels by
// exact triangle/box intersection and attaches a material sample to each. The
// returned grid's shape is derived from the model's own geometry intersected
// with maxBounds, never larger than necessary.
func Voxelize(source TriangleSource, oracle MaterialOracle, maxBounds AABB, voxelSize float64) (*WorkGrid, error) {
	triangles, err := source.Triangles()
	if err != nil {
		return nil, err
	}

	effective := effectiveVoxelizationBounds(triangles, maxBounds, voxelSize)
	grid := newWorkGridForBounds(effective, voxelSize)

	if effective.Degenerate() {
		return grid, nil
	}

	for _, tri := range triangles {
		voxelizeTriangle(grid, tri, oracle, voxelSize)
	}

	return grid, nil
}

// effectiveVoxelizationBounds computes a model's effective voxelization
// bounds: its triangle-vertex AABB padded by 2*voxelSize, intersected with
// maxBounds. A model with no triangles has no geometry to pad, so maxBounds
// is used directly.
func effectiveVoxelizationBounds(triangles []Triangle, maxBounds AABB, voxelSize float64) AABB {
	if len(triangles) == 0 {
		return maxBounds
	}

	minV := [3]float64{math.Inf(1), math.Inf(1), math.Inf(1)}
	maxV := [3]float64{math.Inf(-1), math.Inf(-1), math.Inf(-1)}

	for _, tri := range triangles {
		for _, v := range tri {
			for axis := 0; axis < 3; axis++ {
				minV[axis] = min64(minV[axis], v.Position[axis])
				maxV[axis] = max64(maxV[axis], v.Position[axis])
			}
		}
	}

	meshBounds := NewAABB(minV, maxV).Pad(2 * voxelSize)
	return meshBounds.Intersection(maxBounds)
}

// newWorkGridForBounds sizes a grid by floor-dividing the bounds' extent by
// voxelSize on each axis. A degenerate bounds yields a zero-length grid.
func newWorkGridForBounds(bounds AABB, voxelSize float64) *WorkGrid {
	if bounds.Degenerate() {
		return NewWorkGrid(bounds.Min, voxelSize/2, 0, 0, 0)
	}

	nx := int(math.Floor((bounds.Max[0] - bounds.Min[0]) / voxelSize))
	ny := int(math.Floor((bounds.Max[1] - bounds.Min[1]) / voxelSize))
	nz := int(math.Floor((bounds.Max[2] - bounds.Min[2]) / voxelSize))

	return NewWorkGrid(bounds.Min, voxelSize/2, nx, ny, nz)
}

// voxelizeTriangle visits every voxel in the triangle's conservative index
// range and marks the ones that truly overlap it as Edge.
func voxelizeTriangle(grid *WorkGrid, tri Triangle, oracle MaterialOracle, voxelSize float64) {
	shape := grid.Shape

	triMin := [3]float64{
		min64(min64(tri[0].Position[0], tri[1].Position[0]), tri[2].Position[0]),
		min64(min64(tri[0].Position[1], tri[1].Position[1]), tri[2].Position[1]),
		min64(min64(tri[0].Position[2], tri[1].Position[2]), tri[2].Position[2]),
	}
	triMax := [3]float64{
		max64(max64(tri[0].Position[0], tri[1].Position[0]), tri[2].Position[0]),
		max64(max64(tri[0].Position[1], tri[1].Position[1]), tri[2].Position[1]),
		max64(max64(tri[0].Position[2], tri[1].Position[2]), tri[2].Position[2]),
	}

	var startIdx, count [3]int
	for axis := 0; axis < 3; axis++ {
		startIdx[axis] = int(math.Floor((triMin[axis] - shape.Origin[axis]) / voxelSize))
		count[axis] = int(math.Floor((triMax[axis]-triMin[axis])/voxelSize)) + 2
	}

	iLo, iHi := clampRange(startIdx[0], count[0], shape.Nx)
	jLo, jHi := clampRange(startIdx[1], count[1], shape.Ny)
	kLo, kHi := clampRange(startIdx[2], count[2], shape.Nz)

	for i := iLo; i < iHi; i++ {
		for j := jLo; j < jHi; j++ {
			for k := kLo; k < kHi; k++ {
				target := grid.ContextualUnchecked(i, j, k)

				if !triangleIntersectsAABB(tri, target.AABB()) {
					continue
				}

				vertex := closestVertex(tri, target.Center())
				color := oracle.BaseColor(vertex.UV)
				metallic := oracle.Metallic(vertex.UV)
				roughness := oracle.Roughness(vertex.UV)

				target.Voxel.AddSample(color, metallic, roughness)
			}
		}
	}
}

// clampRange intersects [start, start+count) with [0, limit), returning a
// valid (possibly empty) [lo, hi) range.
func clampRange(start, count, limit int) (int, int) {
	lo := start
	hi := start + count

	if lo < 0 {
		lo = 0
	}
	if hi > limit {
		hi = limit
	}
	if lo > hi {
		lo = hi
	}

	return lo, hi
}

// closestVertex returns the triangle vertex nearest to target, ties resolved
// by vertex order.
func closestVertex(tri Triangle, target [3]float64) Vertex {
	best := tri[0]
	bestDist := distance3(tri[0].Position, target)

	for _, v := range tri[1:] {
		d := distance3(v.Position, target)
		if d < bestDist {
			best = v
			bestDist = d
		}
	}

	return best
}

func distance3(a, b [3]float64) float64 {
	dx := a[0] - b[0]
	dy := a[1] - b[1]
	dz := a[2] - b[2]
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}
