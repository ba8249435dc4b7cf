package blitz

// SpriteBatch is the drawing front end. Between Begin and End it turns draw
// calls into batch items; End (or every draw, in SortImmediate) flushes them
// through its SpriteBatcher. A SpriteBatch is not safe for concurrent use.
type SpriteBatch struct {
	dev     Device
	batcher *SpriteBatcher
	view    int

	defaultShader Shader
	shader        Shader
	blend         *BlendState
	mode          SortMode
	began         bool

	maxDrawCalls int
	lastStats    BatchStats
}

// NewSpriteBatch creates a SpriteBatch drawing through dev. Without
// WithDefaultShader, a fixed-pipeline ShaderProgram is used.
func NewSpriteBatch(dev Device, opts ...Option) *SpriteBatch {
	if dev == nil {
		panic("blitz: NewSpriteBatch with nil device")
	}
	cfg := buildOptions(opts)
	shader := cfg.shader
	if shader == nil {
		shader = NewDefaultShader()
	}
	return &SpriteBatch{
		dev:           dev,
		batcher:       NewSpriteBatcher(dev, cfg.capacity, opts...),
		view:          cfg.view,
		defaultShader: shader,
		shader:        shader,
		blend:         BlendAlphaPremultiplied,
	}
}

// Begin starts a batch. A nil blend selects BlendAlphaPremultiplied and a nil
// shader selects the default shader. Calling Begin twice without End panics.
func (sb *SpriteBatch) Begin(mode SortMode, blend *BlendState, shader Shader) {
	if sb.began {
		panic("blitz: Begin cannot be called again until End has been called")
	}
	if shader == nil {
		shader = sb.defaultShader
	}
	if blend == nil {
		blend = BlendAlphaPremultiplied
	}
	sb.shader = shader
	sb.blend = blend
	sb.mode = mode

	sb.dev.SetBlend(blend)
	if mode == SortImmediate {
		sb.setup()
	}
	sb.began = true
}

// End flushes the accumulated draws and closes the batch.
func (sb *SpriteBatch) End() {
	if !sb.began {
		panic("blitz: End called before Begin")
	}
	sb.began = false

	if sb.mode != SortImmediate {
		sb.setup()
	}
	sb.batcher.DrawBatch(sb.mode, sb.shader)

	sb.lastStats = sb.batcher.Stats()
	if sb.lastStats.DrawCalls > sb.maxDrawCalls {
		sb.maxDrawCalls = sb.lastStats.DrawCalls
	}
	sb.batcher.ResetDrawCalls()
}

func (sb *SpriteBatch) setup() {
	w, h := sb.dev.ViewSize()
	sb.dev.SetView(sb.view, Rect{0, 0, float32(w), float32(h)})
	sb.shader.ApplyParameters(sb.dev)
}

// CurrentMaxDrawCalls returns the highest number of submissions any End has
// produced.
func (sb *SpriteBatch) CurrentMaxDrawCalls() int { return sb.maxDrawCalls }

// LastStats returns the batcher counters of the most recent End.
func (sb *SpriteBatch) LastStats() BatchStats { return sb.lastStats }

// Batcher returns the underlying batcher.
func (sb *SpriteBatch) Batcher() *SpriteBatcher { return sb.batcher }

// Began reports whether the batch is between Begin and End.
func (sb *SpriteBatch) Began() bool { return sb.began }

// Mode returns the sort mode of the current or last batch.
func (sb *SpriteBatch) Mode() SortMode { return sb.mode }

// Close releases the device buffers. The batch must not be used afterwards.
func (sb *SpriteBatch) Close() { sb.batcher.Close() }

// Draw submits tex at pos. src selects a region in texture pixels, nil for
// the whole texture. The quad pivots around origin (in unscaled source
// pixels) and is rotated by rotation radians. Flips swap texture coordinates.
// depth only affects ordering under SortFrontToBack and SortBackToFront.
func (sb *SpriteBatch) Draw(tex Texture, pos Vec2, src *Rect, color Color, rotation float32, origin, scale Vec2, flipH, flipV bool, depth float32) {
	sb.checkTexture(tex)

	item := sb.batcher.CreateBatchItem()
	item.Texture = tex
	item.SortKey = sb.sortKey(tex, depth)

	origin = origin.Mul(scale)

	var w, h float32
	if src != nil {
		w, h = src.Width*scale.X, src.Height*scale.Y
	} else {
		w, h = float32(tex.Width())*scale.X, float32(tex.Height())*scale.Y
	}
	uvTL, uvBR := texCoords(tex, src)
	uvTL, uvBR = flipUV(uvTL, uvBR, flipH, flipV)
	packed := sb.blend.PackColor(color)

	if rotation == 0 {
		item.Set(pos.X-origin.X, pos.Y-origin.Y, w, h, packed, uvTL, uvBR, depth)
	} else {
		sin, cos := sincos32(rotation)
		item.SetRotated(pos.X, pos.Y, -origin.X, -origin.Y, w, h, sin, cos, packed, uvTL, uvBR, depth)
	}

	sb.flushIfImmediate()
}

// DrawScaled is Draw with a uniform scale.
func (sb *SpriteBatch) DrawScaled(tex Texture, pos Vec2, src *Rect, color Color, rotation float32, origin Vec2, scale float32, flipH, flipV bool, depth float32) {
	sb.Draw(tex, pos, src, color, rotation, origin, Vec2{scale, scale}, flipH, flipV, depth)
}

// DrawDest submits tex stretched into dst. origin is given in source pixels
// and scaled by the ratio between dst and the source size.
func (sb *SpriteBatch) DrawDest(tex Texture, dst Rect, src *Rect, color Color, rotation float32, origin Vec2, flipH, flipV bool, depth float32) {
	sb.checkTexture(tex)

	item := sb.batcher.CreateBatchItem()
	item.Texture = tex
	item.SortKey = sb.sortKey(tex, depth)

	srcW, srcH := float32(tex.Width()), float32(tex.Height())
	if src != nil {
		if src.Width != 0 {
			srcW = src.Width
		}
		if src.Height != 0 {
			srcH = src.Height
		}
	}
	origin.X *= dst.Width / srcW
	origin.Y *= dst.Height / srcH

	uvTL, uvBR := texCoords(tex, src)
	uvTL, uvBR = flipUV(uvTL, uvBR, flipH, flipV)
	packed := sb.blend.PackColor(color)

	if rotation == 0 {
		item.Set(dst.X-origin.X, dst.Y-origin.Y, dst.Width, dst.Height, packed, uvTL, uvBR, depth)
	} else {
		sin, cos := sincos32(rotation)
		item.SetRotated(dst.X, dst.Y, -origin.X, -origin.Y, dst.Width, dst.Height, sin, cos, packed, uvTL, uvBR, depth)
	}

	sb.flushIfImmediate()
}

// DrawAt submits the src region of tex (nil for all of it) at its natural
// size with its top-left corner at pos.
func (sb *SpriteBatch) DrawAt(tex Texture, pos Vec2, src *Rect, color Color) {
	sb.checkTexture(tex)
	w, h := float32(tex.Width()), float32(tex.Height())
	if src != nil {
		w, h = src.Width, src.Height
	}
	sb.drawAxisAligned(tex, Rect{pos.X, pos.Y, w, h}, src, color)
}

// DrawRect submits the src region of tex (nil for all of it) stretched into dst.
func (sb *SpriteBatch) DrawRect(tex Texture, dst Rect, src *Rect, color Color) {
	sb.checkTexture(tex)
	sb.drawAxisAligned(tex, dst, src, color)
}

// DrawSimple submits all of tex at its natural size at pos.
func (sb *SpriteBatch) DrawSimple(tex Texture, pos Vec2, color Color) {
	sb.checkTexture(tex)
	sb.drawAxisAligned(tex, Rect{pos.X, pos.Y, float32(tex.Width()), float32(tex.Height())}, nil, color)
}

// DrawFill submits all of tex stretched into dst.
func (sb *SpriteBatch) DrawFill(tex Texture, dst Rect, color Color) {
	sb.checkTexture(tex)
	sb.drawAxisAligned(tex, dst, nil, color)
}

func (sb *SpriteBatch) drawAxisAligned(tex Texture, dst Rect, src *Rect, color Color) {
	item := sb.batcher.CreateBatchItem()
	item.Texture = tex
	item.SortKey = sb.sortKey(tex, 0)
	uvTL, uvBR := texCoords(tex, src)
	item.Set(dst.X, dst.Y, dst.Width, dst.Height, sb.blend.PackColor(color), uvTL, uvBR, 0)
	sb.flushIfImmediate()
}

// DrawQuad submits a prebuilt quad tinted by color.
func (sb *SpriteBatch) DrawQuad(q Quad, color Color, depth float32) {
	sb.checkTexture(q.Texture)

	item := sb.batcher.CreateBatchItem()
	item.Texture = q.Texture
	item.SortKey = sb.sortKey(q.Texture, depth)

	packed := sb.blend.PackColor(color)
	item.TopLeft, item.TopRight = q.TopLeft, q.TopRight
	item.BottomLeft, item.BottomRight = q.BottomLeft, q.BottomRight
	for _, v := range [...]*Vertex{&item.TopLeft, &item.TopRight, &item.BottomLeft, &item.BottomRight} {
		v.Z = depth
		v.Color = packed
	}

	sb.flushIfImmediate()
}

// DrawString submits one item per visible glyph of text, with the pen
// starting at pos. '\n' returns the pen to pos.X on the next line and '\r'
// is ignored. In SortImmediate the whole string is flushed once.
func (sb *SpriteBatch) DrawString(font Font, text string, pos Vec2, color Color) {
	if font == nil {
		panic("blitz: DrawString with nil font")
	}
	sb.checkBegan()

	tex := font.Texture()
	if tex == nil {
		panic("blitz: DrawString with a font that has no texture")
	}
	key := sb.sortKey(tex, 0)
	packed := sb.blend.PackColor(color)
	invW, invH := 1/float32(tex.Width()), 1/float32(tex.Height())
	kerning := font.KerningEnabled()
	lineSpacing := font.LineSpacing()

	x, y := pos.X, pos.Y
	var prev rune
	hasPrev := false

	for _, r := range text {
		switch r {
		case '\r':
			continue
		case '\n':
			x = pos.X
			y += lineSpacing
			hasPrev = false
			continue
		}

		if kerning && hasPrev {
			x += font.Kerning(prev, r)
		}
		g := font.GlyphOrDefault(r)

		if !g.Region.IsEmpty() {
			item := sb.batcher.CreateBatchItem()
			item.Texture = tex
			item.SortKey = key
			uvTL := Vec2{g.Region.X * invW, g.Region.Y * invH}
			uvBR := Vec2{g.Region.Right() * invW, g.Region.Bottom() * invH}
			item.Set(x+g.Offset.X, y+g.Offset.Y, g.Region.Width, g.Region.Height, packed, uvTL, uvBR, 0)
		}

		x += g.XAdvance
		prev, hasPrev = r, true
	}

	sb.flushIfImmediate()
}

// MeasureString returns the size DrawString would cover for text.
func (sb *SpriteBatch) MeasureString(font Font, text string) Vec2 {
	if font == nil {
		panic("blitz: MeasureString with nil font")
	}
	return MeasureFont(font, text)
}

func (sb *SpriteBatch) sortKey(tex Texture, depth float32) float32 {
	switch sb.mode {
	case SortTexture:
		return float32(tex.SortingKey())
	case SortFrontToBack:
		return depth
	case SortBackToFront:
		return -depth
	default:
		return 0
	}
}

func (sb *SpriteBatch) flushIfImmediate() {
	if sb.mode == SortImmediate {
		sb.batcher.DrawBatch(sb.mode, sb.shader)
	}
}

func (sb *SpriteBatch) checkBegan() {
	if !sb.began {
		panic("blitz: draw called before Begin")
	}
}

func (sb *SpriteBatch) checkTexture(tex Texture) {
	if tex == nil {
		panic("blitz: draw with nil texture")
	}
	sb.checkBegan()
}

// texCoords maps src (texture pixels) to normalized coordinates.
func texCoords(tex Texture, src *Rect) (tl, br Vec2) {
	if src == nil {
		return Vec2{0, 0}, Vec2{1, 1}
	}
	invW, invH := 1/float32(tex.Width()), 1/float32(tex.Height())
	return Vec2{src.X * invW, src.Y * invH}, Vec2{src.Right() * invW, src.Bottom() * invH}
}

func flipUV(tl, br Vec2, flipH, flipV bool) (Vec2, Vec2) {
	if flipH {
		tl.X, br.X = br.X, tl.X
	}
	if flipV {
		tl.Y, br.Y = br.Y, tl.Y
	}
	return tl, br
}
