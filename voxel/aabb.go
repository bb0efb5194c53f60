package voxel

// AABB is an axis-aligned bounding box in world space.
type AABB struct {
	Min [3]float64
	Max [3]float64
}

// NewAABB builds an AABB from its min and max corners.
func NewAABB(min, max [3]float64) AABB {
	return AABB{Min: min, Max: max}
}

// Center returns (min+max)/2.
func (a AABB) Center() [3]float64 {
	return [3]float64{
		(a.Min[0] + a.Max[0]) / 2,
		(a.Min[1] + a.Max[1]) / 2,
		(a.Min[2] + a.Max[2]) / 2,
	}
}

// HalfReach returns (max-min)/2.
func (a AABB) HalfReach() [3]float64 {
	return [3]float64{
		(a.Max[0] - a.Min[0]) / 2,
		(a.Max[1] - a.Min[1]) / 2,
		(a.Max[2] - a.Min[2]) / 2,
	}
}

// Intersection returns the componentwise intersection of a and other. The
// result may be degenerate (Max < Min on some axis) if the two boxes don't
// overlap; callers must tolerate that by treating it as zero voxels.
func (a AABB) Intersection(other AABB) AABB {
	return AABB{
		Min: [3]float64{
			max64(a.Min[0], other.Min[0]),
			max64(a.Min[1], other.Min[1]),
			max64(a.Min[2], other.Min[2]),
		},
		Max: [3]float64{
			min64(a.Max[0], other.Max[0]),
			min64(a.Max[1], other.Max[1]),
			min64(a.Max[2], other.Max[2]),
		},
	}
}

// Degenerate reports whether the box has negative extent (Max < Min) on any
// axis. A zero extent is not degenerate.
func (a AABB) Degenerate() bool {
	return a.Max[0] < a.Min[0] || a.Max[1] < a.Min[1] || a.Max[2] < a.Min[2]
}

// Pad grows the box by d on every side.
func (a AABB) Pad(d float64) AABB {
	return AABB{
		Min: [3]float64{a.Min[0] - d, a.Min[1] - d, a.Min[2] - d},
		Max: [3]float64{a.Max[0] + d, a.Max[1] + d, a.Max[2] + d},
	}
}

func min64(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func max64(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
