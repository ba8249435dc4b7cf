package blitz

import (
	"math"
	"testing"

	"github.com/tanema/gween/ease"
)

func near(a, b, tol float32) bool {
	return math.Abs(float64(a-b)) <= float64(tol)
}

func TestTweenVec2ReachesTarget(t *testing.T) {
	pos := Vec2{10, 20}
	g := TweenVec2(&pos, Vec2{100, 200}, 1.0, ease.Linear)

	// Exact halves avoid float32 accumulation drift.
	g.Update(0.5)
	g.Update(0.5)

	if !g.Done {
		t.Fatal("expected Done after full duration")
	}
	if !near(pos.X, 100, 0.5) || !near(pos.Y, 200, 0.5) {
		t.Errorf("pos = %v, want ~{100 200}", pos)
	}
}

func TestTweenFloatInterpolates(t *testing.T) {
	rot := float32(0)
	g := TweenFloat(&rot, math.Pi, 1.0, ease.Linear)

	g.Update(0.5)
	if g.Done {
		t.Fatal("should not be done at halfway")
	}
	if !near(rot, math.Pi/2, 0.05) {
		t.Errorf("rot = %f, want ~%f at halfway", rot, math.Pi/2)
	}
	g.Update(0.5)
	if !g.Done || !near(rot, math.Pi, 0.05) {
		t.Errorf("rot = %f done=%v, want ~pi and done", rot, g.Done)
	}
}

func TestTweenColorAllComponents(t *testing.T) {
	c := Color{1, 0, 0, 1}
	target := Color{0, 1, 0.5, 0.5}
	g := TweenColor(&c, target, 1.0, ease.Linear)

	g.Update(0.5)
	g.Update(0.5)

	if !g.Done {
		t.Fatal("expected Done after full duration")
	}
	for i, pair := range [][2]float32{{c.R, target.R}, {c.G, target.G}, {c.B, target.B}, {c.A, target.A}} {
		if !near(pair[0], pair[1], 0.01) {
			t.Errorf("component %d = %f, want %f", i, pair[0], pair[1])
		}
	}
}

func TestTweenGroupDoneStopsUpdates(t *testing.T) {
	v := float32(0)
	g := TweenFloat(&v, 10, 0.5, ease.Linear)
	g.Update(0.5)
	if !g.Done {
		t.Fatal("should be Done after full duration")
	}
	v = 42
	g.Update(0.1)
	if v != 42 {
		t.Errorf("finished group still writes: v = %f", v)
	}
}

func TestTweenGroupReset(t *testing.T) {
	v := float32(0)
	g := TweenFloat(&v, 10, 1.0, ease.Linear)
	g.Update(1)
	g.Reset()
	if g.Done {
		t.Error("Reset should clear Done")
	}
	if !near(v, 0, 0.01) {
		t.Errorf("v after Reset = %f, want 0", v)
	}
}

func TestTweenDrivesDraw(t *testing.T) {
	sb, d := newTestBatch()
	tex := newFakeTexture(8, 8)
	pos := Vec2{}
	g := TweenVec2(&pos, Vec2{64, 32}, 1, ease.Linear)
	g.Update(0.5)

	sb.Begin(SortDeferred, nil, nil)
	sb.DrawSimple(tex, pos, ColorWhite)
	sb.End()

	if v := d.lastSubmit().vertices[0]; !near(v.X, 32, 0.01) || !near(v.Y, 16, 0.01) {
		t.Errorf("drawn at (%v, %v), want (32, 16)", v.X, v.Y)
	}
}
