package voxel

// triangleIntersectsAABB is the separating-axis triangle/box overlap test due
// to Akenine-Möller: 3 box-axis tests, 1 triangle-normal test, and 9
// edge-cross-axis tests. Returns true on any numerical tie (a triangle lying
// exactly on a box face counts as intersecting).
func triangleIntersectsAABB(tri Triangle, box AABB) bool {
	center := box.Center()
	half := box.HalfReach()

	v0 := sub3(tri[0].Position, center)
	v1 := sub3(tri[1].Position, center)
	v2 := sub3(tri[2].Position, center)

	e0 := sub3(v1, v0)
	e1 := sub3(v2, v1)
	e2 := sub3(v0, v2)

	boxAxes := [3][3]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
	edges := [3][3]float64{e0, e1, e2}

	for _, e := range edges {
		for _, a := range boxAxes {
			axis := cross3(e, a)
			if axis == ([3]float64{}) {
				continue
			}
			if !axisSeparates(axis, v0, v1, v2, half) {
				continue
			}
			return false
		}
	}

	for _, a := range boxAxes {
		if axisSeparates(a, v0, v1, v2, half) {
			return false
		}
	}

	normal := cross3(e0, e1)
	if !planeOverlapsBox(normal, v0, half) {
		return false
	}

	return true
}

// axisSeparates reports whether axis separates the translated triangle
// (v0,v1,v2) from the box of the given half-extent centered at the origin.
func axisSeparates(axis, v0, v1, v2, half [3]float64) bool {
	p0 := dot3(axis, v0)
	p1 := dot3(axis, v1)
	p2 := dot3(axis, v2)

	r := half[0]*abs64(axis[0]) + half[1]*abs64(axis[1]) + half[2]*abs64(axis[2])

	minP := min64(min64(p0, p1), p2)
	maxP := max64(max64(p0, p1), p2)

	return minP > r || maxP < -r
}

// planeOverlapsBox reports whether the plane through vert with the given
// normal overlaps the box of the given half-extent centered at the origin.
func planeOverlapsBox(normal, vert, half [3]float64) bool {
	var vmin, vmax [3]float64
	for i := 0; i < 3; i++ {
		if normal[i] > 0 {
			vmin[i] = -half[i] - vert[i]
			vmax[i] = half[i] - vert[i]
		} else {
			vmin[i] = half[i] - vert[i]
			vmax[i] = -half[i] - vert[i]
		}
	}

	if dot3(normal, vmin) > 0 {
		return false
	}
	if dot3(normal, vmax) >= 0 {
		return true
	}
	return false
}

func sub3(a, b [3]float64) [3]float64 {
	return [3]float64{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}

func cross3(a, b [3]float64) [3]float64 {
	return [3]float64{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

func dot3(a, b [3]float64) float64 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

func abs64(a float64) float64 {
	if a < 0 {
		return -a
	}
	return a
}
