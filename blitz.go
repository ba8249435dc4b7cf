package blitz

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication happens when the color is packed into a Vertex under a
// premultiplied BlendState.
type Color struct {
	R, G, B, A float32
}

// ColorWhite is the default tint (no color modification).
var ColorWhite = Color{1, 1, 1, 1}

// Premultiply returns c with R, G and B scaled by A.
func (c Color) Premultiply() Color {
	return Color{c.R * c.A, c.G * c.A, c.B * c.A, c.A}
}

// Pack converts c into the packed 32-bit vertex color format.
func (c Color) Pack() uint32 {
	return PackColor(unitByte(c.R), unitByte(c.G), unitByte(c.B), unitByte(c.A))
}

func unitByte(v float32) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 255
	}
	return uint8(v*255 + 0.5)
}

// Vec2 is a 2D vector used for positions, origins, scales and offsets.
type Vec2 struct {
	X, Y float32
}

// Mul returns the component-wise product of v and o.
func (v Vec2) Mul(o Vec2) Vec2 {
	return Vec2{v.X * o.X, v.Y * o.Y}
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float32
}

// Right returns the X coordinate of the right edge.
func (r Rect) Right() float32 { return r.X + r.Width }

// Bottom returns the Y coordinate of the bottom edge.
func (r Rect) Bottom() float32 { return r.Y + r.Height }

// IsEmpty reports whether the rectangle has no area.
func (r Rect) IsEmpty() bool { return r.Width == 0 || r.Height == 0 }

// SortMode selects how a SpriteBatch orders accumulated draws before flushing.
type SortMode uint8

const (
	SortDeferred     SortMode = iota // submission order, flushed at End
	SortImmediate                    // flushed on every Draw call
	SortTexture                      // grouped by texture sorting key
	SortFrontToBack                  // ascending layer depth
	SortBackToFront                  // descending layer depth
)

// String returns the mode name, used by configuration and diagnostics.
func (m SortMode) String() string {
	switch m {
	case SortDeferred:
		return "deferred"
	case SortImmediate:
		return "immediate"
	case SortTexture:
		return "texture"
	case SortFrontToBack:
		return "front-to-back"
	case SortBackToFront:
		return "back-to-front"
	default:
		return "unknown"
	}
}

// sorts reports whether the batcher reorders items in this mode.
func (m SortMode) sorts() bool {
	return m == SortTexture || m == SortFrontToBack || m == SortBackToFront
}
