package blitz

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// DrawDiagnostics prints the batch's peak draw-call count, and the last
// frame's counters, in the top-left corner of screen.
func DrawDiagnostics(screen *ebiten.Image, batch *SpriteBatch) {
	ebitenutil.DebugPrint(screen, diagnosticsText(batch))
}

func diagnosticsText(batch *SpriteBatch) string {
	s := batch.LastStats()
	return fmt.Sprintf("Draw Calls: %d\nItems: %d\nChunks: %d\nFPS: %.1f",
		batch.CurrentMaxDrawCalls(), s.Items, s.Chunks, ebiten.ActualFPS())
}

// logFrameStats logs the last End's counters at debug level.
func logFrameStats(frame uint64, batch *SpriteBatch) {
	l := Logger()
	if !l.Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	s := batch.LastStats()
	l.Debug("blitz: frame",
		"frame", frame,
		"draw_calls", s.DrawCalls,
		"items", s.Items,
		"chunks", s.Chunks,
		"grows", s.Grows,
		"max_draw_calls", batch.CurrentMaxDrawCalls())
}
