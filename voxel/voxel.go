package voxel

// Variant is the classification a voxel can carry.
type Variant int

const (
	Empty Variant = iota
	Edge
	Interior
)

func (v Variant) String() string {
	switch v {
	case Empty:
		return "empty"
	case Edge:
		return "edge"
	case Interior:
		return "interior"
	default:
		return "unknown"
	}
}

// Work is a work-phase voxel: it accumulates one material sample per
// intersecting triangle until the finalizer reduces it. Sample sequences are
// non-empty iff Variant is Edge.
type Work struct {
	Variant Variant

	ColorSamples      [][3]float64
	MetallicSamples   []float64
	RoughnessSamples  []float64
}

// NewWork returns a zeroed, Empty work voxel.
func NewWork() Work {
	return Work{Variant: Empty}
}

// AddSample records a material sample hit on this voxel, promoting it to Edge
// if it was Empty. Interior must never be observed here; surface
// voxelization never produces Interior voxels.
func (w *Work) AddSample(color [3]float64, metallic, roughness float64) {
	switch w.Variant {
	case Empty:
		w.Variant = Edge
		w.ColorSamples = [][3]float64{color}
		w.MetallicSamples = []float64{metallic}
		w.RoughnessSamples = []float64{roughness}
	case Edge:
		w.ColorSamples = append(w.ColorSamples, color)
		w.MetallicSamples = append(w.MetallicSamples, metallic)
		w.RoughnessSamples = append(w.RoughnessSamples, roughness)
	case Interior:
		panic("voxel: AddSample called on an Interior voxel")
	}
}

// Final is a final-phase voxel: reduced scalar attributes, no residual
// samples.
type Final struct {
	Variant Variant

	Color     [3]float64
	Metallic  float64
	Roughness float64
}
