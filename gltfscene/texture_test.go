package gltfscene

import (
	"image"
	"image/color"
	"testing"
)

func TestWrap01(t *testing.T) {
	cases := []struct {
		in, want float64
	}{
		{0, 0},
		{0.25, 0.25},
		{1, 0},
		{1.5, 0.5},
		{-0.25, 0.75},
		{-1, 0},
	}

	for _, c := range cases {
		got := wrap01(c.in)
		if diff := got - c.want; diff > 1e-9 || diff < -1e-9 {
			t.Errorf("wrap01(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}

func checkerboard() image.Image {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.RGBA{255, 0, 0, 255})
	img.Set(1, 0, color.RGBA{0, 255, 0, 255})
	img.Set(0, 1, color.RGBA{0, 0, 255, 255})
	img.Set(1, 1, color.RGBA{255, 255, 255, 255})
	return img
}

func TestSampleTexelNearest(t *testing.T) {
	img := checkerboard()

	got := sampleTexel(img, [2]float64{0.1, 0.1})
	if got[0] < 0.9 || got[1] > 0.1 || got[2] > 0.1 {
		t.Errorf("sampleTexel(0.1,0.1) = %v, want approx (1,0,0)", got)
	}

	got = sampleTexel(img, [2]float64{0.9, 0.9})
	if got[0] < 0.9 || got[1] < 0.9 || got[2] < 0.9 {
		t.Errorf("sampleTexel(0.9,0.9) = %v, want approx (1,1,1)", got)
	}
}

func TestSampleTexelWrapsOutOfRangeUV(t *testing.T) {
	img := checkerboard()

	inRange := sampleTexel(img, [2]float64{0.1, 0.1})
	wrapped := sampleTexel(img, [2]float64{1.1, -0.9})

	if inRange != wrapped {
		t.Errorf("sampleTexel did not wrap: in-range %v, wrapped %v", inRange, wrapped)
	}
}
