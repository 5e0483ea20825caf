// Package lob implements an in-memory, single-instrument aggregated
// limit-order-book engine: two complementary OrderBook representations
// (ArrayBook, a bounded contiguous sorted array with branchless search, and
// MapBook, a dynamically sized ordered map) that are behaviourally
// indistinguishable under the same event stream, plus the event-kind
// protocol (L2, Trade, BBO) and a microstructure metrics calculator.
//
// The package is generic over decimal.Value[V] and never touches a
// concrete decimal implementation — see pkg/decimal for the two conforming
// value types, Fixed and Big.
package lob

import "github.com/obsystems/lob/pkg/decimal"

// Level is an aggregated price level: a (price, size) pair. In a stored
// book, Size is always strictly positive; a Level with Size == 0 is only
// ever a sentinel occupying an unused SortedBuffer slot (see Bound).
type Level[V decimal.Value[V]] struct {
	Price V
	Size  V
}

// Bound returns the sentinel level used to pad unused SortedBuffer slots:
// (Min, Zero) for the bid side, (Max, Zero) for the ask side. A sentinel
// level is never surfaced to a caller.
func Bound[V decimal.Value[V]](isMin bool, c decimal.Constants[V]) Level[V] {
	if isMin {
		return Level[V]{Price: c.Min, Size: c.Zero}
	}
	return Level[V]{Price: c.Max, Size: c.Zero}
}

// levelEqual compares two levels by value via Cmp rather than struct ==.
// decimal.Value[V] does not embed comparable (Big in particular wraps a
// pointer, so two numerically equal Bigs need not be == under Go's native
// comparison), so Level[V] can't be compared with != in code generic over V.
func levelEqual[V decimal.Value[V]](a, b Level[V]) bool {
	return decimal.Equal[V](a.Price, b.Price) && decimal.Equal[V](a.Size, b.Size)
}
