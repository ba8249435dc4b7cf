package blitz

import "math"

// BatchItem is one pooled quad: its texture, sort key and four transformed
// vertices. Items live in the SpriteBatcher arena and are overwritten in
// place every frame.
type BatchItem struct {
	Texture Texture
	SortKey float32

	TopLeft     Vertex
	TopRight    Vertex
	BottomLeft  Vertex
	BottomRight Vertex
}

// Set fills an axis-aligned quad at (x, y) with size (w, h). uvTL and uvBR
// are the texture coordinates of the top-left and bottom-right corners.
func (b *BatchItem) Set(x, y, w, h float32, color uint32, uvTL, uvBR Vec2, depth float32) {
	b.TopLeft = Vertex{X: x, Y: y, Z: depth, Color: color, U: uvTL.X, V: uvTL.Y}
	b.TopRight = Vertex{X: x + w, Y: y, Z: depth, Color: color, U: uvBR.X, V: uvTL.Y}
	b.BottomLeft = Vertex{X: x, Y: y + h, Z: depth, Color: color, U: uvTL.X, V: uvBR.Y}
	b.BottomRight = Vertex{X: x + w, Y: y + h, Z: depth, Color: color, U: uvBR.X, V: uvBR.Y}
}

// SetRotated fills a quad of size (w, h) whose local corner (dx, dy) is offset
// from the pivot (x, y) and rotated by the angle with the given sin and cos.
func (b *BatchItem) SetRotated(x, y, dx, dy, w, h, sin, cos float32, color uint32, uvTL, uvBR Vec2, depth float32) {
	b.TopLeft = Vertex{
		X: x + dx*cos - dy*sin,
		Y: y + dx*sin + dy*cos,
		Z: depth, Color: color, U: uvTL.X, V: uvTL.Y,
	}
	b.TopRight = Vertex{
		X: x + (dx+w)*cos - dy*sin,
		Y: y + (dx+w)*sin + dy*cos,
		Z: depth, Color: color, U: uvBR.X, V: uvTL.Y,
	}
	b.BottomLeft = Vertex{
		X: x + dx*cos - (dy+h)*sin,
		Y: y + dx*sin + (dy+h)*cos,
		Z: depth, Color: color, U: uvTL.X, V: uvBR.Y,
	}
	b.BottomRight = Vertex{
		X: x + (dx+w)*cos - (dy+h)*sin,
		Y: y + (dx+w)*sin + (dy+h)*cos,
		Z: depth, Color: color, U: uvBR.X, V: uvBR.Y,
	}
}

func sincos32(rad float32) (sin, cos float32) {
	s, c := math.Sincos(float64(rad))
	return float32(s), float32(c)
}
