package voxel

import "math"

// Finalize consumes a classified work grid and produces a final grid of the
// same shape. Empty and Interior voxels carry over unchanged; Edge voxels
// have their sample sequences reduced to single scalars: color by per-channel
// root-mean-square, metallic and roughness by arithmetic mean.
func Finalize(grid *WorkGrid) *FinalGrid {
	final := &FinalGrid{
		Shape:  grid.Shape,
		voxels: make([]Final, len(grid.voxels)),
	}

	for idx, w := range grid.voxels {
		switch w.Variant {
		case Empty:
			final.voxels[idx] = Final{Variant: Empty}
		case Interior:
			final.voxels[idx] = Final{Variant: Interior}
		case Edge:
			final.voxels[idx] = Final{
				Variant:   Edge,
				Color:     rmsColor(w.ColorSamples),
				Metallic:  mean(w.MetallicSamples),
				Roughness: mean(w.RoughnessSamples),
			}
		}
	}

	return final
}

func rmsColor(samples [][3]float64) [3]float64 {
	var sumSquares [3]float64
	for _, c := range samples {
		sumSquares[0] += c[0] * c[0]
		sumSquares[1] += c[1] * c[1]
		sumSquares[2] += c[2] * c[2]
	}

	n := float64(len(samples))
	return [3]float64{
		math.Sqrt(sumSquares[0] / n),
		math.Sqrt(sumSquares[1] / n),
		math.Sqrt(sumSquares[2] / n),
	}
}

func mean(samples []float64) float64 {
	var sum float64
	for _, s := range samples {
		sum += s
	}
	return sum / float64(len(samples))
}
