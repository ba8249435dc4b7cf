package blitz

import "fmt"

// DefaultBatchCapacity is the item pool size used when none is given.
const DefaultBatchCapacity = 256

const poolChunk = 64

// BatchStats reports what the batcher did. DrawCalls and Items accumulate
// until ResetDrawCalls; Chunks covers the last DrawBatch; Grows is the
// lifetime number of pool reallocations.
type BatchStats struct {
	DrawCalls int
	Items     int
	Chunks    int
	Grows     int
}

// SpriteBatcher accumulates BatchItems in a reusable arena and flushes them
// as the fewest submissions that keep texture runs and uint16 index limits.
type SpriteBatcher struct {
	dev    Device
	stream *QuadStream
	view   int

	items []BatchItem // arena; len is the pool capacity
	count int         // items handed out since the last DrawBatch

	order   []int32 // sorted visit order
	sortBuf []int32 // merge scratch

	stats BatchStats
}

// NewSpriteBatcher creates a batcher with room for capacity items. A
// non-positive capacity selects DefaultBatchCapacity; any other value is
// rounded up to a multiple of 64.
func NewSpriteBatcher(dev Device, capacity int, opts ...Option) *SpriteBatcher {
	if dev == nil {
		panic("blitz: NewSpriteBatcher with nil device")
	}
	cfg := buildOptions(opts)
	if capacity <= 0 {
		capacity = DefaultBatchCapacity
	} else {
		capacity = roundUpChunk(capacity)
	}
	return &SpriteBatcher{
		dev:    dev,
		view:   cfg.view,
		stream: NewQuadStream(dev, cfg.streamMode, min(capacity, MaxBatchSize)),
		items:  make([]BatchItem, capacity),
	}
}

func roundUpChunk(n int) int {
	return (n + poolChunk - 1) &^ (poolChunk - 1)
}

// Capacity returns the current item pool size.
func (b *SpriteBatcher) Capacity() int { return len(b.items) }

// Len returns the number of items accumulated since the last DrawBatch.
func (b *SpriteBatcher) Len() int { return b.count }

// DrawCalls returns the number of submissions since the last ResetDrawCalls.
func (b *SpriteBatcher) DrawCalls() int { return b.stats.DrawCalls }

// ResetDrawCalls zeroes the per-frame counters.
func (b *SpriteBatcher) ResetDrawCalls() {
	b.stats.DrawCalls = 0
	b.stats.Items = 0
}

// Stats returns a snapshot of the batcher counters.
func (b *SpriteBatcher) Stats() BatchStats { return b.stats }

// SetView selects the device view flushes are submitted to.
func (b *SpriteBatcher) SetView(view int) { b.view = view }

// Stream returns the vertex stream the batcher flushes through.
func (b *SpriteBatcher) Stream() *QuadStream { return b.stream }

// CreateBatchItem returns the next free item, growing the pool when it is
// exhausted. The previous contents are not cleared. The pointer is valid
// until the next CreateBatchItem or DrawBatch call.
func (b *SpriteBatcher) CreateBatchItem() *BatchItem {
	if b.count >= len(b.items) {
		b.grow()
	}
	item := &b.items[b.count]
	b.count++
	return item
}

func (b *SpriteBatcher) grow() {
	old := len(b.items)
	size := roundUpChunk(old + max(old/2, 1))
	grown := make([]BatchItem, size)
	copy(grown, b.items)
	b.items = grown
	b.stats.Grows++

	b.stream.EnsureCapacity(min(size, MaxBatchSize))
	Logger().Debug("blitz: batch pool grown", "from", old, "to", size)
}

// DrawBatch flushes every accumulated item. Sorting modes order items by
// SortKey first; Deferred and Immediate keep submission order. Each maximal
// run of items sharing a texture, split at MaxBatchSize boundaries, becomes
// one submission with the run's texture in slot 0 of shader.
func (b *SpriteBatcher) DrawBatch(mode SortMode, shader Shader) {
	n := b.count
	if n == 0 {
		return
	}
	if shader == nil {
		panic("blitz: DrawBatch with nil shader")
	}

	sorted := mode.sorts()
	if sorted {
		b.sortItems(n)
	}

	b.stats.Chunks = 0
	b.stats.Items += n
	next := 0
	for remaining := n; remaining > 0; {
		chunk := min(remaining, MaxBatchSize)
		b.stats.Chunks++

		var tex Texture
		slot := 0
		for i := 0; i < chunk; i, next = i+1, next+1 {
			idx := next
			if sorted {
				idx = int(b.order[next])
			}
			item := &b.items[idx]
			if item.Texture == nil {
				panic(fmt.Sprintf("blitz: batch item %d has no texture", idx))
			}
			if item.Texture != tex {
				b.flush(slot, tex, shader)
				tex = item.Texture
				slot = 0
			}
			b.stream.SetQuad(slot, item.TopLeft, item.TopRight, item.BottomLeft, item.BottomRight)
			slot++
			item.Texture = nil
		}
		b.flush(slot, tex, shader)
		remaining -= chunk
	}
	b.count = 0
}

func (b *SpriteBatcher) flush(quads int, tex Texture, shader Shader) {
	if quads == 0 {
		return
	}
	b.stats.DrawCalls++
	shader.SetTexture(0, tex)
	b.stream.SubmitSpan(0, quads*verticesPerQuad)
	shader.ApplyTextures(b.dev)
	b.dev.Submit(b.view, shader)
}

// Close releases the batcher's device buffers.
func (b *SpriteBatcher) Close() {
	b.stream.Close()
}
