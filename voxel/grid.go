package voxel

// Shape describes a grid's physical placement and dimensions. Voxel (i,j,k)
// occupies the box [origin + 2h*(i,j,k), origin + 2h*(i+1,j+1,k+1)]; its
// center is origin + h + 2h*(i,j,k).
type Shape struct {
	Origin     [3]float64
	HalfExtent float64
	Nx, Ny, Nz int
}

// Len is the total voxel count Nx*Ny*Nz.
func (s Shape) Len() int {
	return s.Nx * s.Ny * s.Nz
}

// Index returns the flat index of (i,j,k): i fastest, then j, then k.
func (s Shape) Index(i, j, k int) int {
	return i + j*s.Nx + k*s.Nx*s.Ny
}

// InBounds reports whether (i,j,k) addresses a voxel in this shape.
func (s Shape) InBounds(i, j, k int) bool {
	return i >= 0 && i < s.Nx && j >= 0 && j < s.Ny && k >= 0 && k < s.Nz
}

// Center returns the world-space center of voxel (i,j,k).
func (s Shape) Center(i, j, k int) [3]float64 {
	full := 2 * s.HalfExtent
	return [3]float64{
		s.Origin[0] + s.HalfExtent + full*float64(i),
		s.Origin[1] + s.HalfExtent + full*float64(j),
		s.Origin[2] + s.HalfExtent + full*float64(k),
	}
}

// AABB returns the world-space box of voxel (i,j,k).
func (s Shape) AABB(i, j, k int) AABB {
	full := 2 * s.HalfExtent
	min := [3]float64{
		s.Origin[0] + full*float64(i),
		s.Origin[1] + full*float64(j),
		s.Origin[2] + full*float64(k),
	}
	return AABB{
		Min: min,
		Max: [3]float64{min[0] + full, min[1] + full, min[2] + full},
	}
}

// WorkGrid is a dense grid of work-phase voxels, owned exclusively by the
// voxelization that created it until it is consumed by Finalize.
type WorkGrid struct {
	Shape  Shape
	voxels []Work
}

// NewWorkGrid allocates a grid of the given shape, all voxels Empty.
func NewWorkGrid(origin [3]float64, halfExtent float64, nx, ny, nz int) *WorkGrid {
	shape := Shape{Origin: origin, HalfExtent: halfExtent, Nx: nx, Ny: ny, Nz: nz}
	return &WorkGrid{
		Shape:  shape,
		voxels: make([]Work, shape.Len()),
	}
}

// Voxels exposes the dense underlying slice in storage order.
func (g *WorkGrid) Voxels() []Work {
	return g.voxels
}

// AtUnchecked returns a mutable reference to voxel (i,j,k). The caller must
// guarantee i<Nx, j<Ny, k<Nz; an out-of-range index is a programming error.
func (g *WorkGrid) AtUnchecked(i, j, k int) *Work {
	if !g.Shape.InBounds(i, j, k) {
		panic("voxel: grid index out of range")
	}
	return &g.voxels[g.Shape.Index(i, j, k)]
}

// ContextualWork pairs a mutable voxel reference with its grid index and
// shape so its world-space center and AABB can be derived on demand.
type ContextualWork struct {
	Index [3]int
	Shape Shape
	Voxel *Work
}

// Center returns the world-space center of this voxel.
func (c ContextualWork) Center() [3]float64 {
	return c.Shape.Center(c.Index[0], c.Index[1], c.Index[2])
}

// AABB returns the world-space box of this voxel.
func (c ContextualWork) AABB() AABB {
	return c.Shape.AABB(c.Index[0], c.Index[1], c.Index[2])
}

// ContextualUnchecked returns voxel (i,j,k) paired with its index and shape.
func (g *WorkGrid) ContextualUnchecked(i, j, k int) ContextualWork {
	return ContextualWork{
		Index: [3]int{i, j, k},
		Shape: g.Shape,
		Voxel: g.AtUnchecked(i, j, k),
	}
}

// FinalGrid is a dense grid of final-phase voxels, produced by Finalize and
// consumed only by export.
type FinalGrid struct {
	Shape  Shape
	voxels []Final
}

// Voxels exposes the dense underlying slice in storage order.
func (g *FinalGrid) Voxels() []Final {
	return g.voxels
}

// AtUnchecked returns a reference to voxel (i,j,k). The caller must guarantee
// i<Nx, j<Ny, k<Nz.
func (g *FinalGrid) AtUnchecked(i, j, k int) *Final {
	if !g.Shape.InBounds(i, j, k) {
		panic("voxel: grid index out of range")
	}
	return &g.voxels[g.Shape.Index(i, j, k)]
}

// ContextualFinal pairs a voxel reference with its grid index and shape.
type ContextualFinal struct {
	Index [3]int
	Shape Shape
	Voxel *Final
}

// Center returns the world-space center of this voxel.
func (c ContextualFinal) Center() [3]float64 {
	return c.Shape.Center(c.Index[0], c.Index[1], c.Index[2])
}

// AABB returns the world-space box of this voxel.
func (c ContextualFinal) AABB() AABB {
	return c.Shape.AABB(c.Index[0], c.Index[1], c.Index[2])
}

// FinalGridIterator yields contextual voxels in storage order: i fastest,
// then j, then k.
type FinalGridIterator struct {
	grid *FinalGrid
	next int
}

// Contextual returns an iterator over this grid's voxels.
func (g *FinalGrid) Contextual() *FinalGridIterator {
	return &FinalGridIterator{grid: g}
}

// Next returns the next contextual voxel, or false once the grid is
// exhausted.
func (it *FinalGridIterator) Next() (ContextualFinal, bool) {
	if it.next >= len(it.grid.voxels) {
		return ContextualFinal{}, false
	}

	idx := it.next
	nx, ny := it.grid.Shape.Nx, it.grid.Shape.Ny

	i := idx % nx
	j := (idx / nx) % ny
	k := idx / (nx * ny)

	cv := ContextualFinal{
		Index: [3]int{i, j, k},
		Shape: it.grid.Shape,
		Voxel: &it.grid.voxels[idx],
	}
	it.next++

	return cv, true
}
