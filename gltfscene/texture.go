package gltfscene

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"math"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

// TextureOracle implements voxel.MaterialOracle for a single glTF material.
// Its base-color and metallic-roughness textures are decoded lazily, at most
// once each, on first sample.
type TextureOracle struct {
	doc      *gltf.Document
	gltfDir  string
	material *gltf.Material

	baseColorOnce sync.Once
	baseColorImg  image.Image

	metalRoughOnce sync.Once
	metalRoughImg  image.Image
}

func newTextureOracle(doc *gltf.Document, gltfDir string, materialIndex *uint32) *TextureOracle {
	var mat *gltf.Material
	if materialIndex != nil && int(*materialIndex) < len(doc.Materials) {
		mat = doc.Materials[*materialIndex]
	}

	return &TextureOracle{doc: doc, gltfDir: gltfDir, material: mat}
}

// BaseColor samples the material's base-color texture (or factor) and
// returns it linearized, per the glTF convention that base-color textures
// are sRGB-encoded.
func (o *TextureOracle) BaseColor(uv [2]float64) [3]float64 {
	factor := o.baseColorFactor()

	img := o.loadBaseColorImage()
	if img == nil {
		return factor
	}

	srgb := sampleTexel(img, uv)
	linear := colorful.Color{R: srgb[0], G: srgb[1], B: srgb[2]}
	lr, lg, lb := linear.LinearRgb()

	return [3]float64{lr * factor[0], lg * factor[1], lb * factor[2]}
}

// Metallic samples the metallic-roughness texture's blue channel (or the
// scalar factor alone), per the glTF metallic-roughness convention. That
// texture is linear-encoded, unlike base color, so no sRGB conversion
// applies.
func (o *TextureOracle) Metallic(uv [2]float64) float64 {
	factor := o.metallicFactor()

	img := o.loadMetalRoughImage()
	if img == nil {
		return factor
	}

	return sampleTexel(img, uv)[2] * factor
}

// Roughness samples the metallic-roughness texture's green channel (or the
// scalar factor alone).
func (o *TextureOracle) Roughness(uv [2]float64) float64 {
	factor := o.roughnessFactor()

	img := o.loadMetalRoughImage()
	if img == nil {
		return factor
	}

	return sampleTexel(img, uv)[1] * factor
}

func (o *TextureOracle) baseColorFactor() [3]float64 {
	if o.material == nil || o.material.PBRMetallicRoughness == nil || o.material.PBRMetallicRoughness.BaseColorFactor == nil {
		return [3]float64{1, 1, 1}
	}

	f := o.material.PBRMetallicRoughness.BaseColorFactor
	return [3]float64{float64(f[0]), float64(f[1]), float64(f[2])}
}

func (o *TextureOracle) metallicFactor() float64 {
	if o.material == nil || o.material.PBRMetallicRoughness == nil || o.material.PBRMetallicRoughness.MetallicFactor == nil {
		return 1
	}
	return float64(*o.material.PBRMetallicRoughness.MetallicFactor)
}

func (o *TextureOracle) roughnessFactor() float64 {
	if o.material == nil || o.material.PBRMetallicRoughness == nil || o.material.PBRMetallicRoughness.RoughnessFactor == nil {
		return 1
	}
	return float64(*o.material.PBRMetallicRoughness.RoughnessFactor)
}

func (o *TextureOracle) loadBaseColorImage() image.Image {
	o.baseColorOnce.Do(func() {
		if o.material == nil || o.material.PBRMetallicRoughness == nil {
			return
		}
		info := o.material.PBRMetallicRoughness.BaseColorTexture
		if info == nil {
			return
		}
		o.baseColorImg = decodeTextureImage(o.doc, o.gltfDir, info.Index)
	})
	return o.baseColorImg
}

func (o *TextureOracle) loadMetalRoughImage() image.Image {
	o.metalRoughOnce.Do(func() {
		if o.material == nil || o.material.PBRMetallicRoughness == nil {
			return
		}
		info := o.material.PBRMetallicRoughness.MetallicRoughnessTexture
		if info == nil {
			return
		}
		o.metalRoughImg = decodeTextureImage(o.doc, o.gltfDir, info.Index)
	})
	return o.metalRoughImg
}

// decodeTextureImage resolves a glTF texture index to a decoded image. Any
// failure (missing source, unsupported codec, unreadable file) falls back to
// nil silently; the caller then falls back to the material's scalar factor,
// matching the spec's "material with no texture" edge case rather than
// failing the whole voxelization over one bad texture.
func decodeTextureImage(doc *gltf.Document, gltfDir string, textureIndex uint32) image.Image {
	if int(textureIndex) >= len(doc.Textures) {
		return nil
	}
	texture := doc.Textures[textureIndex]
	if texture.Source == nil {
		return nil
	}

	data, err := loadImageBytes(doc, gltfDir, *texture.Source)
	if err != nil {
		return nil
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil
	}

	return img
}

func loadImageBytes(doc *gltf.Document, gltfDir string, imageIndex uint32) ([]byte, error) {
	if int(imageIndex) >= len(doc.Images) {
		return nil, fmt.Errorf("gltfscene: image index %d out of range", imageIndex)
	}
	img := doc.Images[imageIndex]

	if img.BufferView != nil {
		return modeler.ReadBufferView(doc, doc.BufferViews[*img.BufferView])
	}

	if img.URI == "" {
		return nil, fmt.Errorf("gltfscene: image %d has neither buffer view nor URI", imageIndex)
	}

	if strings.HasPrefix(img.URI, "data:") {
		return decodeDataURI(img.URI)
	}

	return os.ReadFile(filepath.Join(gltfDir, img.URI))
}

func decodeDataURI(uri string) ([]byte, error) {
	comma := strings.IndexByte(uri, ',')
	if comma < 0 {
		return nil, fmt.Errorf("gltfscene: malformed data URI")
	}
	return base64.StdEncoding.DecodeString(uri[comma+1:])
}

// sampleTexel returns the nearest texel at uv, normalized to [0,1] per
// channel, wrapping both components with REPEAT semantics.
func sampleTexel(img image.Image, uv [2]float64) [3]float64 {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w == 0 || h == 0 {
		return [3]float64{0, 0, 0}
	}

	u := wrap01(uv[0])
	v := wrap01(uv[1])

	x := bounds.Min.X + int(u*float64(w))
	y := bounds.Min.Y + int(v*float64(h))
	if x >= bounds.Max.X {
		x = bounds.Max.X - 1
	}
	if y >= bounds.Max.Y {
		y = bounds.Max.Y - 1
	}

	r, g, b, _ := img.At(x, y).RGBA()
	return [3]float64{float64(r) / 65535, float64(g) / 65535, float64(b) / 65535}
}

func wrap01(v float64) float64 {
	v = math.Mod(v, 1)
	if v < 0 {
		v += 1
	}
	return v
}
