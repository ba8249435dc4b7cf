package blitz

import (
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

func buildTestAtlas(t *testing.T, runes []rune) *TTFAtlas {
	t.Helper()
	a, err := BuildTTFAtlas(goregular.TTF, 16, runes)
	if err != nil {
		t.Fatalf("BuildTTFAtlas: %v", err)
	}
	return a
}

func TestBuildTTFAtlas_ASCII(t *testing.T) {
	a := buildTestAtlas(t, nil)
	if len(a.Glyphs) != len(ASCIIRunes()) {
		t.Errorf("glyphs = %d, want %d", len(a.Glyphs), len(ASCIIRunes()))
	}
	if a.LineSpacing <= 0 || a.Ascent <= 0 {
		t.Errorf("metrics = line %f ascent %f, want positive", a.LineSpacing, a.Ascent)
	}
	b := a.Image.Bounds()
	if b.Dx() != ttfAtlasWidth {
		t.Errorf("atlas width = %d, want %d", b.Dx(), ttfAtlasWidth)
	}
	if h := b.Dy(); h&(h-1) != 0 {
		t.Errorf("atlas height %d is not a power of two", h)
	}
}

func TestBuildTTFAtlas_GlyphRegions(t *testing.T) {
	a := buildTestAtlas(t, nil)
	bounds := a.Image.Bounds()

	for r, g := range a.Glyphs {
		if g.XAdvance <= 0 {
			t.Errorf("%q: XAdvance = %f", r, g.XAdvance)
		}
		if g.Region.IsEmpty() {
			continue
		}
		if g.Region.X < 0 || g.Region.Y < 0 ||
			int(g.Region.Right()) > bounds.Dx() || int(g.Region.Bottom()) > bounds.Dy() {
			t.Errorf("%q: region %+v outside atlas %v", r, g.Region, bounds)
		}
	}

	if sp := a.Glyphs[' ']; !sp.Region.IsEmpty() {
		t.Errorf("space region = %+v, want empty", sp.Region)
	}
}

func TestBuildTTFAtlas_RasterizesGlyphs(t *testing.T) {
	a := buildTestAtlas(t, []rune("A"))
	g := a.Glyphs['A']
	if g.Region.IsEmpty() {
		t.Fatal("A has no region")
	}
	var covered int
	for y := int(g.Region.Y); y < int(g.Region.Bottom()); y++ {
		for x := int(g.Region.X); x < int(g.Region.Right()); x++ {
			if a.Image.RGBAAt(x, y).A > 0 {
				covered++
			}
		}
	}
	if covered == 0 {
		t.Error("glyph A rasterized no pixels")
	}
}

func TestBuildTTFAtlas_SkipsDuplicates(t *testing.T) {
	a := buildTestAtlas(t, []rune("AAB"))
	if len(a.Glyphs) != 2 {
		t.Errorf("glyphs = %d, want 2", len(a.Glyphs))
	}
}

func TestBuildTTFAtlas_Errors(t *testing.T) {
	if _, err := BuildTTFAtlas([]byte("not a TTF file"), 16, nil); err == nil {
		t.Error("expected error for invalid TTF data, got nil")
	}
	if _, err := BuildTTFAtlas(goregular.TTF, 0, nil); err == nil {
		t.Error("expected error for zero size, got nil")
	}
}

func TestTTFAtlas_Font(t *testing.T) {
	a := buildTestAtlas(t, nil)
	tex := newFakeTexture(a.Image.Bounds().Dx(), a.Image.Bounds().Dy())
	f := a.Font(tex)

	if f.Texture() != Texture(tex) {
		t.Error("font should draw from the given texture")
	}
	if f.LineSpacing() != a.LineSpacing {
		t.Errorf("LineSpacing = %f, want %f", f.LineSpacing(), a.LineSpacing)
	}
	if got, want := f.GlyphOrDefault('☃'), a.Glyphs['?']; got != want {
		t.Errorf("missing rune fallback = %+v, want '?' %+v", got, want)
	}
	if got := f.Measure("Hi").X; got != a.Glyphs['H'].XAdvance+a.Glyphs['i'].XAdvance+f.Kerning('H', 'i') {
		t.Errorf("Measure(Hi) = %f", got)
	}
}

func TestNextPow2(t *testing.T) {
	tests := []struct{ in, want int }{
		{0, 1}, {1, 1}, {2, 2}, {3, 4}, {64, 64}, {65, 128},
	}
	for _, tt := range tests {
		if got := nextPow2(tt.in); got != tt.want {
			t.Errorf("nextPow2(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
