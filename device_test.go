package blitz

import "testing"

// fakeTexture is a Texture with no backing image.
type fakeTexture struct {
	w, h int
	key  int
}

func newFakeTexture(w, h int) *fakeTexture {
	return &fakeTexture{w: w, h: h, key: nextTextureKey()}
}

func (t *fakeTexture) Width() int      { return t.w }
func (t *fakeTexture) Height() int     { return t.h }
func (t *fakeTexture) SortingKey() int { return t.key }

type fakeBuffer struct {
	vertices []Vertex
	indices  []uint16
	dynamic  bool
}

// submission is one recorded Device.Submit with copies of everything bound.
type submission struct {
	view     int
	texture  Texture
	vertices []Vertex
	indices  []uint16
	blend    *BlendState
	shader   Shader
}

func (s submission) quads() int { return len(s.vertices) / 4 }

// recordingDevice is a Device that keeps every submission for inspection.
type recordingDevice struct {
	width, height int

	buffers   map[BufferHandle]*fakeBuffer
	next      BufferHandle
	created   int
	destroyed int
	uploads   int // UpdateVertexBuffer calls
	transient int // SetTransientVertexBuffer calls

	boundVerts []Vertex
	boundInds  []uint16
	textures   [MaxTextureSlots]Texture
	uniforms   map[string][4]float32
	uniformSet int
	blend      *BlendState
	views      map[int]Rect

	submits []submission
}

func newRecordingDevice() *recordingDevice {
	return &recordingDevice{
		width:    640,
		height:   480,
		buffers:  make(map[BufferHandle]*fakeBuffer),
		uniforms: make(map[string][4]float32),
		views:    make(map[int]Rect),
	}
}

func (d *recordingDevice) add(b *fakeBuffer) BufferHandle {
	d.next++
	d.created++
	d.buffers[d.next] = b
	return d.next
}

func (d *recordingDevice) CreateIndexBuffer(indices []uint16) BufferHandle {
	return d.add(&fakeBuffer{indices: append([]uint16(nil), indices...)})
}

func (d *recordingDevice) UpdateIndexBuffer(h BufferHandle, indices []uint16) {
	d.buffers[h].indices = append([]uint16(nil), indices...)
}

func (d *recordingDevice) CreateVertexBuffer(vertices []Vertex, dynamic bool) BufferHandle {
	return d.add(&fakeBuffer{vertices: append([]Vertex(nil), vertices...), dynamic: dynamic})
}

func (d *recordingDevice) UpdateVertexBuffer(h BufferHandle, first int, vertices []Vertex) {
	d.uploads++
	b := d.buffers[h]
	if !b.dynamic {
		panic("update of static buffer")
	}
	copy(b.vertices[first:], vertices)
}

func (d *recordingDevice) DestroyBuffer(h BufferHandle) {
	if _, ok := d.buffers[h]; ok {
		d.destroyed++
		delete(d.buffers, h)
	}
}

func (d *recordingDevice) SetIndexBuffer(h BufferHandle, first, count int) {
	d.boundInds = d.buffers[h].indices[first : first+count]
}

func (d *recordingDevice) SetVertexBuffer(h BufferHandle, first, count int) {
	d.boundVerts = d.buffers[h].vertices[first : first+count]
}

func (d *recordingDevice) SetTransientVertexBuffer(vertices []Vertex) {
	d.transient++
	d.boundVerts = append([]Vertex(nil), vertices...)
}

func (d *recordingDevice) BindTexture(slot int, tex Texture) { d.textures[slot] = tex }

func (d *recordingDevice) SetUniform(name string, v [4]float32) {
	d.uniformSet++
	d.uniforms[name] = v
}

func (d *recordingDevice) SetBlend(b *BlendState)        { d.blend = b }
func (d *recordingDevice) SetView(view int, r Rect)      { d.views[view] = r }
func (d *recordingDevice) ViewSize() (int, int)          { return d.width, d.height }
func (d *recordingDevice) lastSubmit() submission        { return d.submits[len(d.submits)-1] }
func (d *recordingDevice) submitCount() int              { return len(d.submits) }
func (d *recordingDevice) resetSubmits()                 { d.submits = d.submits[:0] }
func (d *recordingDevice) boundTexture(slot int) Texture { return d.textures[slot] }

func (d *recordingDevice) Submit(view int, shader Shader) {
	d.submits = append(d.submits, submission{
		view:     view,
		texture:  d.textures[0],
		vertices: append([]Vertex(nil), d.boundVerts...),
		indices:  append([]uint16(nil), d.boundInds...),
		blend:    d.blend,
		shader:   shader,
	})
}

// nopDevice is a Device that does nothing, for allocation checks.
type nopDevice struct{ next BufferHandle }

func (d *nopDevice) CreateIndexBuffer([]uint16) BufferHandle  { d.next++; return d.next }
func (d *nopDevice) UpdateIndexBuffer(BufferHandle, []uint16) {}
func (d *nopDevice) CreateVertexBuffer([]Vertex, bool) BufferHandle {
	d.next++
	return d.next
}
func (d *nopDevice) UpdateVertexBuffer(BufferHandle, int, []Vertex) {}
func (d *nopDevice) DestroyBuffer(BufferHandle)                     {}
func (d *nopDevice) SetIndexBuffer(BufferHandle, int, int)          {}
func (d *nopDevice) SetVertexBuffer(BufferHandle, int, int)         {}
func (d *nopDevice) SetTransientVertexBuffer([]Vertex)              {}
func (d *nopDevice) BindTexture(int, Texture)                       {}
func (d *nopDevice) SetUniform(string, [4]float32)                  {}
func (d *nopDevice) SetBlend(*BlendState)                           {}
func (d *nopDevice) SetView(int, Rect)                              {}
func (d *nopDevice) ViewSize() (int, int)                           { return 1280, 720 }
func (d *nopDevice) Submit(int, Shader)                             {}

func TestRecordingDeviceSatisfiesDevice(t *testing.T) {
	var _ Device = newRecordingDevice()
	var _ Device = &nopDevice{}
	var _ Device = NewEbitenDevice(nil)
}
