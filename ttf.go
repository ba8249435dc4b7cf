package blitz

import (
	"fmt"
	"image"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

const (
	ttfAtlasWidth = 512
	ttfPadding    = 1
)

// TTFAtlas is a TrueType face rasterized into a single glyph image. Glyphs
// are white with premultiplied alpha so they can be tinted by vertex color.
type TTFAtlas struct {
	Image       *image.RGBA
	Glyphs      map[rune]Glyph
	LineSpacing float32
	Ascent      float32
	Kernings    map[[2]rune]float32
}

// ASCIIRunes returns the printable ASCII range, the default atlas contents.
func ASCIIRunes() []rune {
	out := make([]rune, 0, 95)
	for r := rune(32); r < 127; r++ {
		out = append(out, r)
	}
	return out
}

// BuildTTFAtlas parses TrueType or OpenType data and rasterizes runes at size
// pixels per em. A nil runes selects ASCIIRunes. Runes the face lacks are
// skipped.
func BuildTTFAtlas(ttfData []byte, size float64, runes []rune) (*TTFAtlas, error) {
	if size <= 0 {
		return nil, fmt.Errorf("blitz: invalid font size %v", size)
	}
	parsed, err := opentype.Parse(ttfData)
	if err != nil {
		return nil, fmt.Errorf("blitz: parse font: %w", err)
	}
	face, err := opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("blitz: create font face: %w", err)
	}
	defer func() {
		_ = face.Close()
	}()

	if runes == nil {
		runes = ASCIIRunes()
	}
	m := face.Metrics()
	a := &TTFAtlas{
		Glyphs:      make(map[rune]Glyph, len(runes)),
		LineSpacing: fixedToFloat32(m.Height),
		Ascent:      fixedToFloat32(m.Ascent),
		Kernings:    make(map[[2]rune]float32),
	}

	type placed struct {
		r      rune
		bounds image.Rectangle
		dot    fixed.Point26_6
	}
	var todo []placed

	// Shelf packing: left to right, new row when the current one is full.
	x, y, rowH := ttfPadding, ttfPadding, 0
	for _, r := range runes {
		if _, dup := a.Glyphs[r]; dup {
			continue
		}
		b, adv, ok := face.GlyphBounds(r)
		if !ok {
			continue
		}
		minX, minY := b.Min.X.Floor(), b.Min.Y.Floor()
		w, h := b.Max.X.Ceil()-minX, b.Max.Y.Ceil()-minY

		g := Glyph{XAdvance: fixedToFloat32(adv)}
		if w > 0 && h > 0 {
			if x+w+ttfPadding > ttfAtlasWidth {
				x, y, rowH = ttfPadding, y+rowH+ttfPadding, 0
			}
			g.Region = Rect{float32(x), float32(y), float32(w), float32(h)}
			g.Offset = Vec2{float32(minX), float32(minY) + a.Ascent}
			todo = append(todo, placed{
				r:      r,
				bounds: image.Rect(x, y, x+w, y+h),
				dot:    fixed.P(x-minX, y-minY),
			})
			x += w + ttfPadding
			rowH = max(rowH, h)
		}
		a.Glyphs[r] = g
	}

	height := nextPow2(y + rowH + ttfPadding)
	a.Image = image.NewRGBA(image.Rect(0, 0, ttfAtlasWidth, height))
	d := &font.Drawer{Dst: a.Image, Src: image.White, Face: face}
	for _, p := range todo {
		d.Dot = p.dot
		d.DrawString(string(p.r))
	}

	for l := range a.Glyphs {
		for r := range a.Glyphs {
			if k := face.Kern(l, r); k != 0 {
				a.Kernings[[2]rune{l, r}] = fixedToFloat32(k)
			}
		}
	}
	return a, nil
}

// Font returns a BitmapFont over tex, which must hold a.Image.
func (a *TTFAtlas) Font(tex Texture) *BitmapFont {
	f := NewBitmapFont(tex, a.LineSpacing)
	f.base = a.Ascent
	for r, g := range a.Glyphs {
		f.SetGlyph(r, g)
	}
	for pair, k := range a.Kernings {
		f.SetKerning(pair[0], pair[1], k)
	}
	if g, ok := a.Glyphs['?']; ok {
		f.fallback = g
	}
	f.kerning = len(a.Kernings) > 0
	return f
}

// NewTTFFont rasterizes a TrueType face and uploads it as an ebiten texture.
func NewTTFFont(ttfData []byte, size float64, runes []rune) (*BitmapFont, error) {
	a, err := BuildTTFAtlas(ttfData, size, runes)
	if err != nil {
		return nil, err
	}
	return a.Font(NewTextureFromImage(a.Image)), nil
}

func fixedToFloat32(v fixed.Int26_6) float32 {
	return float32(v) / 64
}

func nextPow2(n int) int {
	if n <= 1 {
		return 1
	}
	return 1 << int(math.Ceil(math.Log2(float64(n))))
}
