package blitz

// Vertex is the fixed vertex layout shared by every quad the package emits:
// position (x, y, z), packed RGBA8 color and texture coordinates (u, v).
// Z carries the layer depth and is never used for geometry.
type Vertex struct {
	X, Y, Z float32
	Color   uint32
	U, V    float32
}

// VertexStride is the size in bytes of one Vertex as laid out for upload.
const VertexStride = 24

const (
	verticesPerQuad = 4
	indicesPerQuad  = 6
)

// AttribType identifies the component type of a vertex attribute.
type AttribType uint8

const (
	AttribFloat32 AttribType = iota
	AttribUint8
)

// VertexAttrib describes one attribute of the Vertex layout.
type VertexAttrib struct {
	Name       string
	Components int
	Type       AttribType
	Normalized bool
	Offset     int
}

// VertexLayout is the attribute layout a device backend must bind for Vertex.
var VertexLayout = []VertexAttrib{
	{Name: "position", Components: 3, Type: AttribFloat32, Offset: 0},
	{Name: "color0", Components: 4, Type: AttribUint8, Normalized: true, Offset: 12},
	{Name: "texcoord0", Components: 2, Type: AttribFloat32, Offset: 16},
}

// PackColor packs four 8-bit channels with R in the lowest byte.
func PackColor(r, g, b, a uint8) uint32 {
	return uint32(r) | uint32(g)<<8 | uint32(b)<<16 | uint32(a)<<24
}

// UnpackColor is the inverse of PackColor.
func UnpackColor(c uint32) (r, g, b, a uint8) {
	return uint8(c), uint8(c >> 8), uint8(c >> 16), uint8(c >> 24)
}
