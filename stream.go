package blitz

// MaxBatchSize is the largest number of quads a single submission may address
// with uint16 indices.
const MaxBatchSize = 32767 / 6

// StreamMode selects how a QuadStream uploads its vertices.
type StreamMode uint8

const (
	// StreamStatic uploads once. The stream locks on its first submission
	// and rejects further quads until Reset.
	StreamStatic StreamMode = iota
	// StreamDynamic keeps a persistent buffer and re-uploads only after the
	// vertex array changed.
	StreamDynamic
	// StreamTransient copies the submitted span into a per-submission buffer.
	StreamTransient
)

// String returns the mode name used in configuration files.
func (m StreamMode) String() string {
	switch m {
	case StreamStatic:
		return "static"
	case StreamDynamic:
		return "dynamic"
	case StreamTransient:
		return "transient"
	default:
		return "unknown"
	}
}

// QuadStream owns a CPU-side vertex array and the matching quad index array,
// and mirrors them into device buffers according to its StreamMode.
type QuadStream struct {
	dev  Device
	mode StreamMode

	vertices []Vertex
	indices  []uint16
	count    int // vertices pushed with PushQuad
	dirtyEnd int // vertices [0, dirtyEnd) changed since the last upload

	ib, vb BufferHandle
	locked bool
}

// NewQuadStream creates a stream with room for quads quads, clamped to
// [1, MaxBatchSize].
func NewQuadStream(dev Device, mode StreamMode, quads int) *QuadStream {
	if dev == nil {
		panic("blitz: NewQuadStream with nil device")
	}
	quads = clampQuads(quads)
	s := &QuadStream{
		dev:      dev,
		mode:     mode,
		vertices: make([]Vertex, quads*verticesPerQuad),
		indices:  appendQuadIndices(make([]uint16, 0, quads*indicesPerQuad), 0, quads),
	}
	s.ib = dev.CreateIndexBuffer(s.indices)
	if mode != StreamTransient {
		s.vb = dev.CreateVertexBuffer(s.vertices, mode == StreamDynamic)
	}
	return s
}

func clampQuads(n int) int {
	if n < 1 {
		return 1
	}
	if n > MaxBatchSize {
		return MaxBatchSize
	}
	return n
}

// appendQuadIndices appends indices for quads [from, to). Each quad covers
// vertices TL, TR, BL, BR and is split into triangles (TL,TR,BL) and
// (TR,BR,BL).
func appendQuadIndices(dst []uint16, from, to int) []uint16 {
	for i := from; i < to; i++ {
		base := uint16(i * verticesPerQuad)
		dst = append(dst,
			base, base+1, base+2,
			base+1, base+3, base+2,
		)
	}
	return dst
}

// Mode returns the stream's upload mode.
func (s *QuadStream) Mode() StreamMode { return s.mode }

// Len returns the number of quads pushed since the last Reset.
func (s *QuadStream) Len() int { return s.count / verticesPerQuad }

// Capacity returns the number of quads the stream can hold without growing.
func (s *QuadStream) Capacity() int { return len(s.vertices) / verticesPerQuad }

// Locked reports whether a static stream has been submitted.
func (s *QuadStream) Locked() bool { return s.locked }

// EnsureCapacity grows the stream to hold at least quads quads, up to
// MaxBatchSize. Existing vertices are preserved. It never shrinks.
func (s *QuadStream) EnsureCapacity(quads int) {
	quads = clampQuads(quads)
	old := s.Capacity()
	if quads <= old {
		return
	}
	if s.locked {
		panic("blitz: cannot grow a locked static stream")
	}

	grown := make([]Vertex, quads*verticesPerQuad)
	copy(grown, s.vertices)
	s.vertices = grown
	s.indices = appendQuadIndices(s.indices, old, quads)

	s.dev.DestroyBuffer(s.ib)
	s.ib = s.dev.CreateIndexBuffer(s.indices)
	if s.mode != StreamTransient {
		s.dev.DestroyBuffer(s.vb)
		s.vb = s.dev.CreateVertexBuffer(s.vertices, s.mode == StreamDynamic)
	}
	s.dirtyEnd = 0

	Logger().Debug("blitz: quad stream grown",
		"mode", s.mode.String(), "from", old, "to", quads)
}

// PushQuad appends q's vertices. It returns false when the stream is locked
// or already holds MaxBatchSize quads.
func (s *QuadStream) PushQuad(q Quad) bool {
	if s.locked {
		return false
	}
	n := s.Len()
	if n >= MaxBatchSize {
		return false
	}
	if n >= s.Capacity() {
		s.EnsureCapacity(n + max(n/2, 1))
	}
	s.SetQuad(n, q.TopLeft, q.TopRight, q.BottomLeft, q.BottomRight)
	s.count += verticesPerQuad
	return true
}

// SetQuad overwrites quad slot i in place.
func (s *QuadStream) SetQuad(i int, tl, tr, bl, br Vertex) {
	if s.locked {
		panic("blitz: write to a locked static stream")
	}
	v := i * verticesPerQuad
	s.vertices[v] = tl
	s.vertices[v+1] = tr
	s.vertices[v+2] = bl
	s.vertices[v+3] = br
	if end := v + verticesPerQuad; end > s.dirtyEnd {
		s.dirtyEnd = end
	}
}

// SubmitSpan binds vertexCount vertices starting at firstVertex, plus the
// matching indices, for the next device Submit. vertexCount must be a
// multiple of four.
func (s *QuadStream) SubmitSpan(firstVertex, vertexCount int) {
	if vertexCount%verticesPerQuad != 0 {
		panic("blitz: vertex span is not a whole number of quads")
	}
	if firstVertex < 0 || firstVertex+vertexCount > len(s.vertices) {
		panic("blitz: vertex span out of range")
	}

	switch s.mode {
	case StreamStatic:
		if !s.locked {
			if s.dirtyEnd > 0 {
				s.dev.DestroyBuffer(s.vb)
				s.vb = s.dev.CreateVertexBuffer(s.vertices, false)
				s.dirtyEnd = 0
			}
			s.locked = true
		}
		s.dev.SetVertexBuffer(s.vb, firstVertex, vertexCount)
	case StreamDynamic:
		if s.dirtyEnd > 0 {
			s.dev.UpdateVertexBuffer(s.vb, 0, s.vertices[:s.dirtyEnd])
			s.dirtyEnd = 0
		}
		s.dev.SetVertexBuffer(s.vb, firstVertex, vertexCount)
	case StreamTransient:
		s.dev.SetTransientVertexBuffer(s.vertices[firstVertex : firstVertex+vertexCount])
		s.dirtyEnd = 0
	}
	s.dev.SetIndexBuffer(s.ib, 0, vertexCount/verticesPerQuad*indicesPerQuad)
}

// Submit binds every pushed quad.
func (s *QuadStream) Submit() {
	s.SubmitSpan(0, s.count)
}

// Draw submits every pushed quad with tex bound to slot 0 of shader. It does
// nothing when the stream is empty.
func (s *QuadStream) Draw(view int, tex Texture, shader Shader) {
	if s.count == 0 {
		return
	}
	if tex == nil || shader == nil {
		panic("blitz: QuadStream.Draw with nil texture or shader")
	}
	s.Submit()
	shader.SetTexture(0, tex)
	shader.ApplyParameters(s.dev)
	shader.ApplyTextures(s.dev)
	s.dev.Submit(view, shader)
}

// Reset discards pushed quads and unlocks a static stream. Capacity is kept.
func (s *QuadStream) Reset() {
	s.count = 0
	s.locked = false
}

// Close releases the device buffers. The stream must not be used afterwards.
func (s *QuadStream) Close() {
	if s.ib != InvalidBuffer {
		s.dev.DestroyBuffer(s.ib)
		s.ib = InvalidBuffer
	}
	if s.vb != InvalidBuffer {
		s.dev.DestroyBuffer(s.vb)
		s.vb = InvalidBuffer
	}
}
