package blitz

// BufferHandle identifies a buffer owned by a Device. The zero value is never
// a valid handle.
type BufferHandle uint32

// InvalidBuffer is the zero BufferHandle.
const InvalidBuffer BufferHandle = 0

// Device is the graphics submission surface the batching pipeline drives.
// Bound buffers, textures, uniforms and blend state apply to the next Submit,
// which must consume them synchronously: the pipeline rewrites its vertex
// array immediately after each Submit returns.
type Device interface {
	CreateIndexBuffer(indices []uint16) BufferHandle
	UpdateIndexBuffer(h BufferHandle, indices []uint16)
	// CreateVertexBuffer creates a persistent vertex buffer. dynamic buffers
	// accept UpdateVertexBuffer; static ones are immutable after creation.
	CreateVertexBuffer(vertices []Vertex, dynamic bool) BufferHandle
	UpdateVertexBuffer(h BufferHandle, first int, vertices []Vertex)
	DestroyBuffer(h BufferHandle)

	// SetIndexBuffer binds count indices starting at first.
	SetIndexBuffer(h BufferHandle, first, count int)
	// SetVertexBuffer binds count vertices starting at first. Index values
	// are relative to first.
	SetVertexBuffer(h BufferHandle, first, count int)
	// SetTransientVertexBuffer binds a copy of vertices valid for the next
	// Submit only.
	SetTransientVertexBuffer(vertices []Vertex)

	BindTexture(slot int, tex Texture)
	SetUniform(name string, value [4]float32)
	SetBlend(b *BlendState)

	// SetView configures the viewport for view. An empty viewport covers
	// the whole target.
	SetView(view int, viewport Rect)
	ViewSize() (width, height int)

	Submit(view int, shader Shader)
}
