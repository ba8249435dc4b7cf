package blitz

import "math"

// Quad is an ephemeral four-vertex primitive plus the texture it samples.
// Source and destination rectangles are resolved into positions and UVs by
// NewQuad; the Quad carries no identity beyond that.
type Quad struct {
	TopLeft     Vertex
	TopRight    Vertex
	BottomLeft  Vertex
	BottomRight Vertex
	Texture     Texture
}

// NewQuad builds a white quad for tex. An empty src selects the whole texture;
// an empty dst places the quad at the origin with the source size.
func NewQuad(tex Texture, src, dst Rect) Quad {
	if tex == nil {
		panic("blitz: NewQuad with nil texture")
	}
	tw, th := float32(tex.Width()), float32(tex.Height())

	var u0, v0, u1, v1 float32
	if src.IsEmpty() {
		src = Rect{0, 0, tw, th}
		u0, v0, u1, v1 = 0, 0, 1, 1
	} else {
		invW, invH := 1/tw, 1/th
		u0, v0 = src.X*invW, src.Y*invH
		u1, v1 = src.Right()*invW, src.Bottom()*invH
	}
	if dst.IsEmpty() {
		dst = Rect{0, 0, src.Width, src.Height}
	}

	const white = 0xFFFFFFFF
	return Quad{
		TopLeft:     Vertex{X: dst.X, Y: dst.Y, Color: white, U: u0, V: v0},
		TopRight:    Vertex{X: dst.Right(), Y: dst.Y, Color: white, U: u1, V: v0},
		BottomLeft:  Vertex{X: dst.X, Y: dst.Bottom(), Color: white, U: u0, V: v1},
		BottomRight: Vertex{X: dst.Right(), Y: dst.Bottom(), Color: white, U: u1, V: v1},
		Texture:     tex,
	}
}

// Width returns the horizontal extent of the top edge.
func (q *Quad) Width() float32 {
	return float32(math.Abs(float64(q.TopRight.X - q.TopLeft.X)))
}

// Height returns the vertical extent of the right edge.
func (q *Quad) Height() float32 {
	return float32(math.Abs(float64(q.BottomRight.Y - q.TopRight.Y)))
}

// Tint sets the packed color of all four vertices.
func (q *Quad) Tint(packed uint32) {
	q.TopLeft.Color = packed
	q.TopRight.Color = packed
	q.BottomLeft.Color = packed
	q.BottomRight.Color = packed
}
