package blitz

import "testing"

// benchFrame draws n sprites spread over texs in one frame.
func benchFrame(sb *SpriteBatch, mode SortMode, texs []Texture, n int) {
	sb.Begin(mode, nil, nil)
	for i := 0; i < n; i++ {
		tex := texs[i%len(texs)]
		pos := Vec2{float32(i%100) * 12, float32(i/100) * 12}
		sb.Draw(tex, pos, nil, ColorWhite, 0, Vec2{}, Vec2{1, 1}, false, false, float32(i%7)/7)
	}
	sb.End()
}

func benchTextures(n int) []Texture {
	texs := make([]Texture, n)
	for i := range texs {
		texs[i] = newFakeTexture(32, 32)
	}
	return texs
}

func TestSteadyStateFrameDoesNotAllocate(t *testing.T) {
	sb := NewSpriteBatch(&nopDevice{})
	texs := benchTextures(4)
	font := testFont()

	frame := func() {
		benchFrame(sb, SortTexture, texs, 2000)
		sb.Begin(SortImmediate, nil, nil)
		sb.DrawString(font, "AB\nBA", Vec2{}, ColorWhite)
		sb.End()
	}
	// The first frame grows the pool and sort buffers.
	frame()

	if allocs := testing.AllocsPerRun(10, frame); allocs != 0 {
		t.Errorf("steady-state frame allocated %v times, want 0", allocs)
	}
}

func BenchmarkSpriteBatch_10000_Deferred(b *testing.B) {
	sb := NewSpriteBatch(&nopDevice{})
	texs := benchTextures(1)
	benchFrame(sb, SortDeferred, texs, 10000)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		benchFrame(sb, SortDeferred, texs, 10000)
	}
}

func BenchmarkSpriteBatch_10000_Texture(b *testing.B) {
	sb := NewSpriteBatch(&nopDevice{})
	texs := benchTextures(8)
	benchFrame(sb, SortTexture, texs, 10000)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		benchFrame(sb, SortTexture, texs, 10000)
	}
}

func BenchmarkSpriteBatch_10000_BackToFront(b *testing.B) {
	sb := NewSpriteBatch(&nopDevice{})
	texs := benchTextures(2)
	benchFrame(sb, SortBackToFront, texs, 10000)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		benchFrame(sb, SortBackToFront, texs, 10000)
	}
}

func BenchmarkSpriteBatch_Rotated(b *testing.B) {
	sb := NewSpriteBatch(&nopDevice{})
	tex := newFakeTexture(32, 32)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sb.Begin(SortDeferred, nil, nil)
		for j := 0; j < 1000; j++ {
			sb.Draw(tex, Vec2{100, 100}, nil, ColorWhite, float32(j)*0.01, Vec2{16, 16}, Vec2{1, 1}, false, false, 0)
		}
		sb.End()
	}
}

func BenchmarkSpriteBatch_DrawString(b *testing.B) {
	sb := NewSpriteBatch(&nopDevice{})
	font := testFont()
	text := "ABABABABAB ABABABABAB\nBABABABABA BABABABABA"

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sb.Begin(SortDeferred, nil, nil)
		sb.DrawString(font, text, Vec2{10, 10}, ColorWhite)
		sb.End()
	}
}

func BenchmarkSortItems_10000(b *testing.B) {
	batcher := NewSpriteBatcher(&nopDevice{}, 10000)
	tex := newFakeTexture(4, 4)
	for i := 0; i < 10000; i++ {
		addItem(batcher, tex, float32((i*7919)%1000), 0)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		batcher.sortItems(10000)
	}
}
