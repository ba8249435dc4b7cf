package blitz

import "testing"

func TestPackColorByteOrder(t *testing.T) {
	c := PackColor(0x11, 0x22, 0x33, 0x44)
	if c != 0x44332211 {
		t.Errorf("PackColor = %#x, want 0x44332211", c)
	}
	r, g, b, a := UnpackColor(c)
	if r != 0x11 || g != 0x22 || b != 0x33 || a != 0x44 {
		t.Errorf("UnpackColor = %x %x %x %x", r, g, b, a)
	}
}

func TestColorPack(t *testing.T) {
	tests := []struct {
		c    Color
		want uint32
	}{
		{ColorWhite, 0xFFFFFFFF},
		{Color{}, 0},
		{Color{1, 0, 0, 1}, PackColor(255, 0, 0, 255)},
		{Color{0.5, 0.5, 0.5, 0.5}, PackColor(128, 128, 128, 128)},
		{Color{-1, 2, 0, 1}, PackColor(0, 255, 0, 255)},
	}
	for _, tt := range tests {
		if got := tt.c.Pack(); got != tt.want {
			t.Errorf("%+v.Pack() = %#x, want %#x", tt.c, got, tt.want)
		}
	}
}

func TestColorPremultiply(t *testing.T) {
	got := Color{1, 0.5, 0.25, 0.5}.Premultiply()
	if want := (Color{0.5, 0.25, 0.125, 0.5}); got != want {
		t.Errorf("Premultiply = %+v, want %+v", got, want)
	}
}

func TestRect(t *testing.T) {
	r := Rect{10, 20, 30, 40}
	if r.Right() != 40 || r.Bottom() != 60 {
		t.Errorf("Right/Bottom = %v/%v, want 40/60", r.Right(), r.Bottom())
	}
	if r.IsEmpty() {
		t.Error("non-empty rect reported empty")
	}
	if !(Rect{5, 5, 0, 10}).IsEmpty() {
		t.Error("zero-width rect should be empty")
	}
}

func TestSortModeString(t *testing.T) {
	want := map[SortMode]string{
		SortDeferred:    "deferred",
		SortImmediate:   "immediate",
		SortTexture:     "texture",
		SortFrontToBack: "front-to-back",
		SortBackToFront: "back-to-front",
	}
	for m, s := range want {
		if m.String() != s {
			t.Errorf("%d.String() = %q, want %q", m, m.String(), s)
		}
	}
	if SortDeferred.sorts() || SortImmediate.sorts() || !SortTexture.sorts() {
		t.Error("only texture and depth modes should sort")
	}
}

func TestVertexLayoutMatchesStride(t *testing.T) {
	var size int
	for _, a := range VertexLayout {
		n := a.Components * 4
		if a.Type == AttribUint8 {
			n = a.Components
		}
		if a.Offset != size {
			t.Errorf("%s offset = %d, want %d", a.Name, a.Offset, size)
		}
		size += n
	}
	if size != VertexStride {
		t.Errorf("layout size = %d, want %d", size, VertexStride)
	}
}

func TestTextureKeysFollowCreationOrder(t *testing.T) {
	a, b := newFakeTexture(1, 1), newFakeTexture(1, 1)
	if a.SortingKey() >= b.SortingKey() {
		t.Errorf("keys %d, %d not increasing", a.SortingKey(), b.SortingKey())
	}
}
