package voxel

// Classify runs the interior classifier on grid in place. It decides which
// Empty voxels should become Interior using a Z-sweep parity fill followed by
// X- and Y-sweep reconciliation that strips fills not shielded by an Edge
// voxel on every axis.
func Classify(grid *WorkGrid) {
	zSweepFill(grid)
	xSweepReconcile(grid)
	ySweepReconcile(grid)
}

// zSweepFill is the primary fill-in phase: for every (i,j) column, toggle
// inside/outside parity on each run of Edge voxels and mark Empty voxels
// Interior while parity is inside. A column left unbalanced (parity still
// inside at the far end) is cleaned up by walking back from the end and
// clearing any Interior voxels before the first Edge.
func zSweepFill(grid *WorkGrid) {
	shape := grid.Shape

	for i := 0; i < shape.Nx; i++ {
		for j := 0; j < shape.Ny; j++ {
			inside := false
			prevWasEdge := false

			for k := 0; k < shape.Nz; k++ {
				v := grid.AtUnchecked(i, j, k)

				switch v.Variant {
				case Edge:
					prevWasEdge = true
				case Empty:
					if prevWasEdge {
						inside = !inside
						prevWasEdge = false
					}
					if inside {
						v.Variant = Interior
					}
				case Interior:
					panic("voxel: classifier observed Interior voxel on entry")
				}
			}

			if !inside {
				continue
			}

		cleanup:
			for k := shape.Nz - 1; k >= 0; k-- {
				v := grid.AtUnchecked(i, j, k)
				switch v.Variant {
				case Edge:
					break cleanup
				case Interior:
					v.Variant = Empty
				case Empty:
				}
			}
		}
	}
}

// xSweepReconcile scans i for every (j,k), from each end, clearing Interior
// voxels encountered before the first Edge.
func xSweepReconcile(grid *WorkGrid) {
	shape := grid.Shape

	for k := 0; k < shape.Nz; k++ {
		for j := 0; j < shape.Ny; j++ {
			for i := 0; i < shape.Nx; i++ {
				v := grid.AtUnchecked(i, j, k)
				if v.Variant == Edge {
					break
				}
				if v.Variant == Interior {
					v.Variant = Empty
				}
			}

			for i := shape.Nx - 1; i >= 0; i-- {
				v := grid.AtUnchecked(i, j, k)
				if v.Variant == Edge {
					break
				}
				if v.Variant == Interior {
					v.Variant = Empty
				}
			}
		}
	}
}

// ySweepReconcile scans j for every (i,k), from each end, clearing Interior
// voxels encountered before the first Edge.
func ySweepReconcile(grid *WorkGrid) {
	shape := grid.Shape

	for k := 0; k < shape.Nz; k++ {
		for i := 0; i < shape.Nx; i++ {
			for j := 0; j < shape.Ny; j++ {
				v := grid.AtUnchecked(i, j, k)
				if v.Variant == Edge {
					break
				}
				if v.Variant == Interior {
					v.Variant = Empty
				}
			}

			for j := shape.Ny - 1; j >= 0; j-- {
				v := grid.AtUnchecked(i, j, k)
				if v.Variant == Edge {
					break
				}
				if v.Variant == Interior {
					v.Variant = Empty
				}
			}
		}
	}
}
