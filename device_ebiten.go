package blitz

import (
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
)

type deviceBuffer struct {
	vertices []Vertex
	indices  []uint16
	dynamic  bool
}

// EbitenDevice is a Device that renders into an ebiten image with
// DrawTriangles, or DrawTrianglesShader when the submitted Shader carries a
// Kage program.
type EbitenDevice struct {
	target *ebiten.Image

	buffers    map[BufferHandle]*deviceBuffer
	nextHandle BufferHandle

	// bound state, consumed by Submit
	boundVerts []Vertex
	boundInds  []uint16
	textures   [MaxTextureSlots]Texture
	uniforms   map[string]any
	blend      *BlendState
	views      map[int]Rect

	transient []Vertex
	scratch   []ebiten.Vertex
	triOpts   ebiten.DrawTrianglesOptions
	shadeOpts ebiten.DrawTrianglesShaderOptions

	submits int
}

// NewEbitenDevice creates a device drawing into target. The target may be
// replaced every frame with SetTarget.
func NewEbitenDevice(target *ebiten.Image) *EbitenDevice {
	return &EbitenDevice{
		target:   target,
		buffers:  make(map[BufferHandle]*deviceBuffer),
		uniforms: make(map[string]any),
		views:    make(map[int]Rect),
		blend:    BlendAlphaPremultiplied,
	}
}

// SetTarget redirects subsequent submissions to img.
func (d *EbitenDevice) SetTarget(img *ebiten.Image) { d.target = img }

// Target returns the current render target.
func (d *EbitenDevice) Target() *ebiten.Image { return d.target }

// Submissions returns the number of Submit calls since the device was created.
func (d *EbitenDevice) Submissions() int { return d.submits }

func (d *EbitenDevice) newBuffer(b *deviceBuffer) BufferHandle {
	d.nextHandle++
	d.buffers[d.nextHandle] = b
	return d.nextHandle
}

func (d *EbitenDevice) buffer(h BufferHandle) *deviceBuffer {
	b, ok := d.buffers[h]
	if !ok {
		panic(fmt.Sprintf("blitz: unknown buffer handle %d", h))
	}
	return b
}

func (d *EbitenDevice) CreateIndexBuffer(indices []uint16) BufferHandle {
	return d.newBuffer(&deviceBuffer{indices: append([]uint16(nil), indices...)})
}

func (d *EbitenDevice) UpdateIndexBuffer(h BufferHandle, indices []uint16) {
	b := d.buffer(h)
	b.indices = append(b.indices[:0], indices...)
}

func (d *EbitenDevice) CreateVertexBuffer(vertices []Vertex, dynamic bool) BufferHandle {
	return d.newBuffer(&deviceBuffer{vertices: append([]Vertex(nil), vertices...), dynamic: dynamic})
}

func (d *EbitenDevice) UpdateVertexBuffer(h BufferHandle, first int, vertices []Vertex) {
	b := d.buffer(h)
	if !b.dynamic {
		panic("blitz: update of a static vertex buffer")
	}
	if end := first + len(vertices); end > len(b.vertices) {
		b.vertices = append(b.vertices, make([]Vertex, end-len(b.vertices))...)
	}
	copy(b.vertices[first:], vertices)
}

func (d *EbitenDevice) DestroyBuffer(h BufferHandle) {
	delete(d.buffers, h)
}

func (d *EbitenDevice) SetIndexBuffer(h BufferHandle, first, count int) {
	d.boundInds = d.buffer(h).indices[first : first+count]
}

func (d *EbitenDevice) SetVertexBuffer(h BufferHandle, first, count int) {
	d.boundVerts = d.buffer(h).vertices[first : first+count]
}

func (d *EbitenDevice) SetTransientVertexBuffer(vertices []Vertex) {
	d.transient = append(d.transient[:0], vertices...)
	d.boundVerts = d.transient
}

func (d *EbitenDevice) BindTexture(slot int, tex Texture) {
	if slot < 0 || slot >= MaxTextureSlots {
		return
	}
	d.textures[slot] = tex
}

// SetUniform stores a vec4 uniform for Kage programs. Kage only sees
// exported (capitalized) uniform names.
func (d *EbitenDevice) SetUniform(name string, value [4]float32) {
	if v, ok := d.uniforms[name].([]float32); ok {
		copy(v, value[:])
		return
	}
	d.uniforms[name] = []float32{value[0], value[1], value[2], value[3]}
}

func (d *EbitenDevice) SetBlend(b *BlendState) {
	if b == nil {
		b = BlendAlphaPremultiplied
	}
	d.blend = b
}

// SetView maps view space onto viewport, in target pixels. Geometry is
// offset by the viewport origin and clipped to its bounds.
func (d *EbitenDevice) SetView(view int, viewport Rect) {
	d.views[view] = viewport
}

func (d *EbitenDevice) ViewSize() (int, int) {
	if d.target == nil {
		return 0, 0
	}
	b := d.target.Bounds()
	return b.Dx(), b.Dy()
}

// Submit draws the bound vertices and indices with the bound textures.
func (d *EbitenDevice) Submit(view int, shader Shader) {
	if d.target == nil {
		panic("blitz: EbitenDevice has no render target")
	}
	src := ebitenImage(d.textures[0])
	if src == nil {
		panic("blitz: submit without an ebiten texture in slot 0")
	}
	d.submits++

	// Sub-image targets keep their parent's coordinate space.
	dst := d.target
	tb := d.target.Bounds()
	ox, oy := float32(tb.Min.X), float32(tb.Min.Y)
	if vp, ok := d.views[view]; ok && !vp.IsEmpty() {
		r := image.Rect(int(vp.X), int(vp.Y), int(vp.Right()), int(vp.Bottom())).Add(tb.Min)
		dst = d.target.SubImage(r).(*ebiten.Image)
		ox += vp.X
		oy += vp.Y
	}

	d.scratch = appendEbitenVertices(d.scratch[:0], d.boundVerts, src.Bounds(), ox, oy)

	if p, ok := shader.(interface{ Kage() *ebiten.Shader }); ok && p.Kage() != nil {
		d.shadeOpts.Blend = d.blend.EbitenBlend()
		d.shadeOpts.Uniforms = d.uniforms
		for i := range d.shadeOpts.Images {
			d.shadeOpts.Images[i] = nil
			if i < MaxTextureSlots {
				d.shadeOpts.Images[i] = ebitenImage(d.textures[i])
			}
		}
		dst.DrawTrianglesShader(d.scratch, d.boundInds, p.Kage(), &d.shadeOpts)
		return
	}

	d.triOpts.Blend = d.blend.EbitenBlend()
	if d.blend.Premultiplied {
		d.triOpts.ColorScaleMode = ebiten.ColorScaleModePremultipliedAlpha
	} else {
		d.triOpts.ColorScaleMode = ebiten.ColorScaleModeStraightAlpha
	}
	dst.DrawTriangles(d.scratch, d.boundInds, src, &d.triOpts)
}

// appendEbitenVertices converts vertices to ebiten's layout. Texture
// coordinates are scaled to the source image's pixel bounds and positions
// are offset by (ox, oy).
func appendEbitenVertices(dst []ebiten.Vertex, vertices []Vertex, srcBounds image.Rectangle, ox, oy float32) []ebiten.Vertex {
	sx, sy := float32(srcBounds.Min.X), float32(srcBounds.Min.Y)
	sw, sh := float32(srcBounds.Dx()), float32(srcBounds.Dy())
	for i := range vertices {
		v := &vertices[i]
		r, g, b, a := UnpackColor(v.Color)
		dst = append(dst, ebiten.Vertex{
			DstX:   v.X + ox,
			DstY:   v.Y + oy,
			SrcX:   sx + v.U*sw,
			SrcY:   sy + v.V*sh,
			ColorR: float32(r) / 255,
			ColorG: float32(g) / 255,
			ColorB: float32(b) / 255,
			ColorA: float32(a) / 255,
		})
	}
	return dst
}

// Screenshot writes the current target to path as a straight-alpha PNG. It
// must be called while the game loop is running.
func (d *EbitenDevice) Screenshot(path string) error {
	if d.target == nil {
		return fmt.Errorf("blitz: screenshot: no render target")
	}
	b := d.target.Bounds()
	pixels := make([]byte, 4*b.Dx()*b.Dy())
	d.target.ReadPixels(pixels)

	img := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	unpremultiply(img.Pix, pixels)

	if err := writePNG(path, img); err != nil {
		Logger().Warn("blitz: screenshot failed", "path", path, "err", err)
		return fmt.Errorf("blitz: screenshot: %w", err)
	}
	return nil
}

// unpremultiply converts premultiplied RGBA pixels into straight alpha.
func unpremultiply(dst, src []byte) {
	for i := 0; i+3 < len(src); i += 4 {
		r, g, b, a := src[i], src[i+1], src[i+2], src[i+3]
		if a > 0 && a < 255 {
			r = uint8(min(int(r)*255/int(a), 255))
			g = uint8(min(int(g)*255/int(a), 255))
			b = uint8(min(int(b)*255/int(a), 255))
		}
		dst[i], dst[i+1], dst[i+2], dst[i+3] = r, g, b, a
	}
}

func writePNG(path string, img *image.NRGBA) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}
