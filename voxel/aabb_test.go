package voxel

import "testing"

func TestAABBCenterAndHalfReach(t *testing.T) {
	a := NewAABB([3]float64{-1, -1, -1}, [3]float64{1, 3, 5})

	wantCenter := [3]float64{0, 1, 2}
	if a.Center() != wantCenter {
		t.Errorf("Center() = %v, want %v", a.Center(), wantCenter)
	}

	wantHalf := [3]float64{1, 2, 3}
	if a.HalfReach() != wantHalf {
		t.Errorf("HalfReach() = %v, want %v", a.HalfReach(), wantHalf)
	}
}

func TestAABBIntersectionDisjointIsDegenerate(t *testing.T) {
	a := NewAABB([3]float64{0, 0, 0}, [3]float64{1, 1, 1})
	b := NewAABB([3]float64{2, 2, 2}, [3]float64{3, 3, 3})

	got := a.Intersection(b)
	if !got.Degenerate() {
		t.Errorf("Intersection of disjoint boxes should be degenerate, got %+v", got)
	}
}

func TestAABBPad(t *testing.T) {
	a := NewAABB([3]float64{0, 0, 0}, [3]float64{1, 1, 1})
	padded := a.Pad(0.5)

	wantMin := [3]float64{-0.5, -0.5, -0.5}
	wantMax := [3]float64{1.5, 1.5, 1.5}

	if padded.Min != wantMin || padded.Max != wantMax {
		t.Errorf("Pad(0.5) = %+v, want min %v max %v", padded, wantMin, wantMax)
	}
}
