package blitz

import (
	"strings"
	"testing"
)

func TestDiagnosticsText(t *testing.T) {
	sb, _ := newTestBatch()
	a, b := newFakeTexture(4, 4), newFakeTexture(4, 4)

	sb.Begin(SortDeferred, nil, nil)
	sb.DrawSimple(a, Vec2{}, ColorWhite)
	sb.DrawSimple(b, Vec2{}, ColorWhite)
	sb.End()

	text := diagnosticsText(sb)
	for _, want := range []string{"Draw Calls: 2", "Items: 2", "Chunks: 1", "FPS:"} {
		if !strings.Contains(text, want) {
			t.Errorf("diagnostics missing %q:\n%s", want, text)
		}
	}
}

func TestLogFrameStats(t *testing.T) {
	sb, _ := newTestBatch()
	tex := newFakeTexture(4, 4)
	sb.Begin(SortDeferred, nil, nil)
	sb.DrawSimple(tex, Vec2{}, ColorWhite)
	sb.End()

	// Silent by default.
	logFrameStats(1, sb)

	buf := captureLogs(t)
	logFrameStats(7, sb)
	out := buf.String()
	if !strings.Contains(out, "frame=7") || !strings.Contains(out, "draw_calls=1") {
		t.Errorf("frame stats log = %q", out)
	}
}
