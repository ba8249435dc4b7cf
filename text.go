package blitz

import (
	"bufio"
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Glyph locates one character in a font texture. Region is in texture
// pixels; Offset is added to the pen position to place the glyph; the pen
// then moves right by XAdvance.
type Glyph struct {
	Region   Rect
	Offset   Vec2
	XAdvance float32
}

// Font supplies glyphs for DrawString. All glyphs live on one Texture.
type Font interface {
	Texture() Texture
	LineSpacing() float32
	KerningEnabled() bool
	// GlyphOrDefault returns the glyph for r, or the font's fallback glyph.
	GlyphOrDefault(r rune) Glyph
	// Kerning returns the horizontal adjustment between left and right.
	Kerning(left, right rune) float32
}

// MeasureFont returns the size of the box DrawString would cover for s:
// the widest line by the number of lines times the line spacing.
func MeasureFont(f Font, s string) Vec2 {
	var maxW, x float32
	var prev rune
	hasPrev := false
	kerning := f.KerningEnabled()
	lines := 1

	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		i += size

		switch r {
		case '\r':
			continue
		case '\n':
			maxW = max(maxW, x)
			x = 0
			lines++
			hasPrev = false
			continue
		}
		if kerning && hasPrev {
			x += f.Kerning(prev, r)
		}
		x += f.GlyphOrDefault(r).XAdvance
		prev, hasPrev = r, true
	}
	return Vec2{max(maxW, x), float32(lines) * f.LineSpacing()}
}

// --- BitmapFont ---

const asciiGlyphCount = 128

// BitmapFont is a Font parsed from BMFont text-format data.
type BitmapFont struct {
	tex         Texture
	lineSpacing float32
	base        float32
	kerning     bool
	fallback    Glyph

	asciiGlyphs [asciiGlyphCount]Glyph // fixed array for ASCII, zero-alloc lookup
	asciiSet    [asciiGlyphCount]bool
	extGlyphs   map[rune]Glyph

	kernings map[[2]rune]float32
}

func (f *BitmapFont) Texture() Texture     { return f.tex }
func (f *BitmapFont) LineSpacing() float32 { return f.lineSpacing }
func (f *BitmapFont) KerningEnabled() bool { return f.kerning }

// SetKerningEnabled toggles kerning. It is on by default when the font
// defines kerning pairs.
func (f *BitmapFont) SetKerningEnabled(on bool) { f.kerning = on }

// SetLineSpacing overrides the line spacing read from the font data.
func (f *BitmapFont) SetLineSpacing(v float32) { f.lineSpacing = v }

// Base returns the distance from the top of a line to the baseline.
func (f *BitmapFont) Base() float32 { return f.base }

// Glyph returns the glyph for r and whether the font defines it.
func (f *BitmapFont) Glyph(r rune) (Glyph, bool) {
	if r >= 0 && r < asciiGlyphCount {
		return f.asciiGlyphs[r], f.asciiSet[r]
	}
	g, ok := f.extGlyphs[r]
	return g, ok
}

func (f *BitmapFont) GlyphOrDefault(r rune) Glyph {
	if g, ok := f.Glyph(r); ok {
		return g
	}
	return f.fallback
}

func (f *BitmapFont) Kerning(left, right rune) float32 {
	return f.kernings[[2]rune{left, right}]
}

// Measure returns the size of s as drawn with this font.
func (f *BitmapFont) Measure(s string) Vec2 {
	return MeasureFont(f, s)
}

// SetGlyph defines or replaces the glyph for r.
func (f *BitmapFont) SetGlyph(r rune, g Glyph) {
	if r >= 0 && r < asciiGlyphCount {
		f.asciiGlyphs[r] = g
		f.asciiSet[r] = true
		return
	}
	if f.extGlyphs == nil {
		f.extGlyphs = make(map[rune]Glyph)
	}
	f.extGlyphs[r] = g
}

// SetKerning defines the adjustment between left and right.
func (f *BitmapFont) SetKerning(left, right rune, amount float32) {
	if f.kernings == nil {
		f.kernings = make(map[[2]rune]float32)
	}
	f.kernings[[2]rune{left, right}] = amount
}

// NewBitmapFont returns an empty font on tex. Glyphs are added with SetGlyph.
func NewBitmapFont(tex Texture, lineSpacing float32) *BitmapFont {
	if tex == nil {
		panic("blitz: NewBitmapFont with nil texture")
	}
	return &BitmapFont{tex: tex, lineSpacing: lineSpacing}
}

// LoadBitmapFont parses BMFont .fnt text-format data whose single page is
// tex. Unknown characters fall back to '?' when the font has it, otherwise
// to an empty glyph.
func LoadBitmapFont(fntData []byte, tex Texture) (*BitmapFont, error) {
	if tex == nil {
		panic("blitz: LoadBitmapFont with nil texture")
	}
	f := &BitmapFont{tex: tex}

	scanner := bufio.NewScanner(bytes.NewReader(fntData))
	var charCount int

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		tag, rest := splitTag(line)
		fields := parseFields(rest)

		switch tag {
		case "common":
			f.lineSpacing = fieldFloat(fields, "lineHeight")
			f.base = fieldFloat(fields, "base")
			if p := fieldInt(fields, "pages"); p > 1 {
				return nil, fmt.Errorf("blitz: .fnt data has %d pages, want 1", p)
			}

		case "char":
			charCount++
			id := rune(fieldInt(fields, "id"))
			f.SetGlyph(id, Glyph{
				Region: Rect{
					X:      fieldFloat(fields, "x"),
					Y:      fieldFloat(fields, "y"),
					Width:  fieldFloat(fields, "width"),
					Height: fieldFloat(fields, "height"),
				},
				Offset:   Vec2{fieldFloat(fields, "xoffset"), fieldFloat(fields, "yoffset")},
				XAdvance: fieldFloat(fields, "xadvance"),
			})

		case "kerning":
			f.SetKerning(
				rune(fieldInt(fields, "first")),
				rune(fieldInt(fields, "second")),
				fieldFloat(fields, "amount"),
			)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("blitz: reading .fnt data: %w", err)
	}
	if f.lineSpacing == 0 {
		return nil, fmt.Errorf("blitz: .fnt data missing common lineHeight")
	}
	if charCount == 0 {
		return nil, fmt.Errorf("blitz: .fnt data has no char definitions")
	}

	if g, ok := f.Glyph('?'); ok {
		f.fallback = g
	}
	f.kerning = len(f.kernings) > 0
	return f, nil
}

// splitTag splits a BMFont line into its tag and the rest of the line.
func splitTag(line string) (string, string) {
	idx := strings.IndexByte(line, ' ')
	if idx == -1 {
		return line, ""
	}
	return line[:idx], line[idx+1:]
}

// parseFields parses "key=value key=value ..." into a map.
func parseFields(s string) map[string]string {
	fields := make(map[string]string)
	for _, part := range strings.Fields(s) {
		eq := strings.IndexByte(part, '=')
		if eq == -1 {
			continue
		}
		key := part[:eq]
		val := part[eq+1:]
		// face="Arial"
		if len(val) >= 2 && val[0] == '"' && val[len(val)-1] == '"' {
			val = val[1 : len(val)-1]
		}
		fields[key] = val
	}
	return fields
}

func fieldInt(fields map[string]string, key string) int {
	v, _ := strconv.Atoi(fields[key])
	return v
}

func fieldFloat(fields map[string]string, key string) float32 {
	v, _ := strconv.ParseFloat(fields[key], 32)
	return float32(v)
}
