package lob

import "github.com/obsystems/lob/pkg/decimal"

// branchlessThreshold is the buffer length at or above which FindIndex switches
// from a bounds-guarded binary search to a branch-free one. Below it, the
// guard checks cost less than a mispredicted branch would; above it, the
// reverse is true.
const branchlessThreshold = 32

// SortedBuffer is a fixed-capacity, price-ordered slice of levels. Unused
// slots are padded with the side's sentinel Level (see Bound) so the slice
// never needs resizing and search code never has to special-case a
// variable length. Ask-side buffers sort ascending by price (best ask
// first); bid-side buffers sort descending (best bid first).
//
// A real level always has a strictly positive Size (an invariant enforced
// by the book, not the buffer), so First reports "no level present" by
// checking whether the slot-zero level is the zero-size sentinel.
type SortedBuffer[V decimal.Value[V]] struct {
	levels []Level[V]
	desc   bool
	c      decimal.Constants[V]
}

// NewSortedBuffer allocates a buffer of the given capacity, fully padded
// with the sentinel for its side. desc selects bid-side (descending)
// ordering; false selects ask-side (ascending) ordering.
func NewSortedBuffer[V decimal.Value[V]](capacity int, desc bool, c decimal.Constants[V]) *SortedBuffer[V] {
	sentinel := Bound[V](desc, c)
	levels := make([]Level[V], capacity)
	for i := range levels {
		levels[i] = sentinel
	}
	return &SortedBuffer[V]{levels: levels, desc: desc, c: c}
}

// Len returns the buffer's fixed capacity.
func (b *SortedBuffer[V]) Len() int { return len(b.levels) }

// Levels returns the real (non-sentinel) levels in sorted order. The
// returned slice is a copy; callers must not assume it aliases internal
// storage.
func (b *SortedBuffer[V]) Levels() []Level[V] {
	out := make([]Level[V], 0, len(b.levels))
	for _, lvl := range b.levels {
		if lvl.Size.IsZero() {
			break
		}
		out = append(out, lvl)
	}
	return out
}

// First returns the best (first-sorted) real level, or false if the
// buffer holds no real levels.
func (b *SortedBuffer[V]) First() (Level[V], bool) {
	if b.levels[0].Size.IsZero() {
		return Level[V]{}, false
	}
	return b.levels[0], true
}

// keyLess reports whether x sorts strictly before y under this buffer's
// ordering.
func (b *SortedBuffer[V]) keyLess(x, y V) bool {
	if b.desc {
		return x.Cmp(y) > 0
	}
	return x.Cmp(y) < 0
}

// FindIndex returns the position price occupies (found == true) or the
// position it would need to be inserted at to keep the buffer sorted
// (found == false).
func (b *SortedBuffer[V]) FindIndex(price V) (idx int, found bool) {
	if len(b.levels) >= branchlessThreshold {
		idx = b.findIndexBranchless(price)
	} else {
		idx = b.findIndexGuarded(price)
	}
	found = idx < len(b.levels) && b.levels[idx].Price.Cmp(price) == 0
	return idx, found
}

// findIndexGuarded is a classic bounds-checked binary search: every
// iteration re-validates lo < hi before touching the slice.
func (b *SortedBuffer[V]) findIndexGuarded(price V) int {
	lo, hi := 0, len(b.levels)
	for lo < hi {
		mid := lo + (hi-lo)/2
		if b.keyLess(b.levels[mid].Price, price) {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}

// findIndexBranchless narrows the search window by halves without an
// early-exit branch, trading a few extra comparisons for predictable
// control flow on larger buffers.
func (b *SortedBuffer[V]) findIndexBranchless(price V) int {
	n := len(b.levels)
	base := 0
	size := n
	for size > 1 {
		half := size / 2
		mid := base + half
		if b.keyLess(b.levels[mid].Price, price) {
			base = mid
		}
		size -= half
	}
	if b.keyLess(b.levels[base].Price, price) {
		base++
	}
	return base
}

// Insert adds a new real level at its sorted position, shifting everything
// from that position onward one slot to the right. A level that would land
// past the end of a full buffer (i.e. it is worse than every level
// currently held) is silently dropped — the buffer only ever tracks the
// best N levels. Insert does not check whether price is already present;
// callers must route existing prices through Modify.
func (b *SortedBuffer[V]) Insert(level Level[V]) {
	idx, _ := b.FindIndex(level.Price)
	if idx >= len(b.levels) {
		return
	}
	copy(b.levels[idx+1:], b.levels[idx:len(b.levels)-1])
	b.levels[idx] = level
}

// Modify updates the size of the level at price, inserting it if absent
// and removing it if the new size is zero.
func (b *SortedBuffer[V]) Modify(level Level[V]) {
	if level.Size.IsZero() {
		b.Remove(level.Price)
		return
	}
	idx, found := b.FindIndex(level.Price)
	if found {
		b.levels[idx].Size = level.Size
		return
	}
	if idx >= len(b.levels) {
		return
	}
	copy(b.levels[idx+1:], b.levels[idx:len(b.levels)-1])
	b.levels[idx] = level
}

// Remove deletes the level at price, if present, shifting everything after
// it one slot to the left and padding the freed tail slot with the
// sentinel.
func (b *SortedBuffer[V]) Remove(price V) {
	idx, found := b.FindIndex(price)
	if !found {
		return
	}
	copy(b.levels[idx:], b.levels[idx+1:])
	b.levels[len(b.levels)-1] = Bound[V](b.desc, b.c)
}

// SweepBetter removes every resting level strictly better than price —
// for a bid-sorted buffer that means every price greater than the given
// one, for an ask-sorted buffer every price less than it. Used by BBO
// processing to clear stale levels ahead of the new top-of-book quote.
func (b *SortedBuffer[V]) SweepBetter(price V) {
	idx, _ := b.FindIndex(price)
	if idx == 0 {
		return
	}
	copy(b.levels, b.levels[idx:])
	sentinel := Bound[V](b.desc, b.c)
	for i := len(b.levels) - idx; i < len(b.levels); i++ {
		b.levels[i] = sentinel
	}
}

// BulkInsert merges a batch of new levels into the buffer in one pass. The
// input need not be pre-sorted; it is sorted once up front so the merge
// against the existing buffer runs in linear time rather than one
// binary-search insert per item.
func (b *SortedBuffer[V]) BulkInsert(levels []Level[V]) {
	if len(levels) == 0 {
		return
	}
	incoming := append([]Level[V](nil), levels...)
	sortLevels(incoming, b.keyLess)

	merged := make([]Level[V], 0, len(b.levels))
	i, j := 0, 0
	for len(merged) < len(b.levels) {
		var existing Level[V]
		existingOK := i < len(b.levels) && !b.levels[i].Size.IsZero()
		if existingOK {
			existing = b.levels[i]
		}
		var next Level[V]
		nextOK := j < len(incoming)
		if nextOK {
			next = incoming[j]
		}
		switch {
		case !existingOK && !nextOK:
			merged = append(merged, Bound[V](b.desc, b.c))
		case !existingOK:
			merged = append(merged, next)
			j++
		case !nextOK:
			merged = append(merged, existing)
			i++
		case existing.Price.Cmp(next.Price) == 0:
			merged = append(merged, next)
			i++
			j++
		case b.keyLess(existing.Price, next.Price):
			merged = append(merged, existing)
			i++
		default:
			merged = append(merged, next)
			j++
		}
	}
	b.levels = merged
}

// sortLevels is a small insertion sort; batches are expected to be short
// (a handful of levels per snapshot refresh), so O(n^2) is preferable to
// pulling in sort.Slice's reflection overhead.
func sortLevels[V decimal.Value[V]](levels []Level[V], less func(x, y V) bool) {
	for i := 1; i < len(levels); i++ {
		for j := i; j > 0 && less(levels[j].Price, levels[j-1].Price); j-- {
			levels[j], levels[j-1] = levels[j-1], levels[j]
		}
	}
}
