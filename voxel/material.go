package voxel

// Vertex is a single triangle corner: a 3D position and a 2D texture
// coordinate.
type Vertex struct {
	Position [3]float64
	UV       [2]float64
}

// Triangle is an ordered triple of vertices.
type Triangle [3]Vertex

// TriangleSource provides a finite sequence of triangles for one model plus
// the model's opaque primitive index.
type TriangleSource interface {
	// Triangles returns every triangle of the model. Implementations may
	// decode lazily on first call.
	Triangles() ([]Triangle, error)

	// PrimitiveIndex is opaque to the core; it is threaded through to export
	// file naming only.
	PrimitiveIndex() int
}

// MaterialOracle samples a model's material at a texture coordinate. Color is
// linear RGB in [0,1]^3; metallic and roughness are scalars in [0,1]. The
// core never interprets what is behind these values.
type MaterialOracle interface {
	BaseColor(uv [2]float64) [3]float64
	Metallic(uv [2]float64) float64
	Roughness(uv [2]float64) float64
}
