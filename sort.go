package blitz

// sortItems fills b.order with a permutation of [0, n) that visits the
// accumulated items in ascending SortKey order. Equal keys keep their draw
// order. Bottom-up merge sort over indices: zero allocations once order and
// sortBuf reach their high-water mark.
func (b *SpriteBatcher) sortItems(n int) {
	if cap(b.order) < n {
		b.order = make([]int32, n)
		b.sortBuf = make([]int32, n)
	}
	b.order = b.order[:n]
	b.sortBuf = b.sortBuf[:n]
	for i := range b.order {
		b.order[i] = int32(i)
	}
	if n <= 1 {
		return
	}

	items := b.items
	a, s := b.order, b.sortBuf
	swapped := false

	for width := 1; width < n; width *= 2 {
		for i := 0; i < n; i += 2 * width {
			lo := i
			mid := min(lo+width, n)
			hi := min(lo+2*width, n)
			mergeRun(items, a, s, lo, mid, hi)
		}
		a, s = s, a
		swapped = !swapped
	}

	if swapped {
		copy(b.order, b.sortBuf)
	}
}

// mergeRun merges the sorted runs [lo, mid) and [mid, hi) of src into dst.
// Taking from the left run on ties keeps the sort stable.
func mergeRun(items []BatchItem, src, dst []int32, lo, mid, hi int) {
	i, j, k := lo, mid, lo
	for i < mid && j < hi {
		if items[src[i]].SortKey <= items[src[j]].SortKey {
			dst[k] = src[i]
			i++
		} else {
			dst[k] = src[j]
			j++
		}
		k++
	}
	k += copy(dst[k:], src[i:mid])
	copy(dst[k:], src[j:hi])
}
