// Package blitz is a sprite batching and draw-submission pipeline for
// [Ebitengine].
//
// A [SpriteBatch] accepts textured quads and text glyphs between Begin and
// End, accumulates them in a reusable item pool, optionally sorts them, and
// emits the fewest submissions that keep each run on one texture and within
// the 16-bit index limit of [MaxBatchSize] quads.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window, a
// device and a SpriteBatch for you:
//
//	type game struct{ hero *blitz.ImageTexture }
//
//	func (g *game) Update(dt float32) error { return nil }
//
//	func (g *game) Draw(b *blitz.SpriteBatch) {
//		b.Begin(blitz.SortDeferred, nil, nil)
//		b.DrawSimple(g.hero, blitz.Vec2{X: 100, Y: 50}, blitz.ColorWhite)
//		b.End()
//	}
//
//	blitz.Run(&game{hero: hero}, blitz.DefaultConfig())
//
// For full control, implement [ebiten.Game] yourself, point an
// [EbitenDevice] at the screen each frame and draw through your own
// SpriteBatch:
//
//	dev := blitz.NewEbitenDevice(nil)
//	batch := blitz.NewSpriteBatch(dev)
//
//	func (g *Game) Draw(screen *ebiten.Image) {
//		dev.SetTarget(screen)
//		batch.Begin(blitz.SortTexture, blitz.BlendAlpha, nil)
//		// ...
//		batch.End()
//	}
//
// # Sort modes
//
// [SortDeferred] keeps call order and flushes at End. [SortImmediate]
// flushes on every draw call. [SortTexture] groups by texture creation
// order, [SortFrontToBack] and [SortBackToFront] order by layer depth. All
// sorting is stable, so equal keys keep call order.
//
// # Devices
//
// The pipeline talks to graphics through the [Device] interface. Tests and
// other backends can supply their own; [EbitenDevice] renders with
// DrawTriangles, or DrawTrianglesShader for Kage [ShaderProgram]s.
//
// # Text
//
// [BitmapFont] loads BMFont text files; [BuildTTFAtlas] rasterizes a
// TrueType face into a glyph atlas. Both satisfy [Font] and draw with
// [SpriteBatch.DrawString].
//
// # Logging
//
// blitz is silent by default. Call [SetLogger] with a [log/slog] logger to
// see pool growth and per-frame stats.
//
// ECS integration lives in the blitz/ecs module (via [Donburi]).
//
// [Ebitengine]: https://ebitengine.org
// [Donburi]: https://github.com/yohamta/donburi
package blitz
