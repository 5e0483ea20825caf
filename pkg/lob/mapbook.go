package lob

import (
	"sort"

	"github.com/obsystems/lob/pkg/decimal"
)

// orderedSide is a dynamically sized, always-sorted run of levels. Unlike
// SortedBuffer it has no fixed capacity and never evicts: it grows and
// shrinks with the number of distinct prices actually resting on that
// side, the way a Rust BTreeMap's key range would. desc selects
// descending (bid) vs ascending (ask) ordering.
type orderedSide[V decimal.Value[V]] struct {
	levels []Level[V]
	desc   bool
}

func newOrderedSide[V decimal.Value[V]](desc bool) *orderedSide[V] {
	return &orderedSide[V]{desc: desc}
}

func (s *orderedSide[V]) keyLess(x, y V) bool {
	if s.desc {
		return x.Cmp(y) > 0
	}
	return x.Cmp(y) < 0
}

func (s *orderedSide[V]) findIndex(price V) (int, bool) {
	idx := sort.Search(len(s.levels), func(i int) bool {
		return !s.keyLess(s.levels[i].Price, price)
	})
	found := idx < len(s.levels) && s.levels[idx].Price.Cmp(price) == 0
	return idx, found
}

func (s *orderedSide[V]) modify(level Level[V]) {
	if level.Size.IsZero() {
		s.remove(level.Price)
		return
	}
	idx, found := s.findIndex(level.Price)
	if found {
		s.levels[idx].Size = level.Size
		return
	}
	s.levels = append(s.levels, Level[V]{})
	copy(s.levels[idx+1:], s.levels[idx:len(s.levels)-1])
	s.levels[idx] = level
}

func (s *orderedSide[V]) remove(price V) {
	idx, found := s.findIndex(price)
	if !found {
		return
	}
	s.levels = append(s.levels[:idx], s.levels[idx+1:]...)
}

// sweepBetter removes every level strictly better than price, mirroring
// SortedBuffer.SweepBetter for the unbounded representation.
func (s *orderedSide[V]) sweepBetter(price V) {
	idx, _ := s.findIndex(price)
	if idx == 0 {
		return
	}
	s.levels = append(s.levels[:0], s.levels[idx:]...)
}

func (s *orderedSide[V]) first() (Level[V], bool) {
	if len(s.levels) == 0 {
		return Level[V]{}, false
	}
	return s.levels[0], true
}

func (s *orderedSide[V]) all() []Level[V] {
	out := make([]Level[V], len(s.levels))
	copy(out, s.levels)
	return out
}

// MapBook is an OrderBook backed by two unbounded orderedSide runs. Where
// ArrayBook trades depth for a fixed memory footprint, MapBook tracks
// every resting price with no cap, at the cost of slice growth as the
// book widens.
//
// A native Go map keyed on V was considered and rejected: Value[T]
// implementations are not guaranteed to satisfy Go's == the way their
// arithmetic equality (Cmp == 0) does — Big in particular wraps a pointer
// to a big.Int, so two Bigs with the same numeric value but different
// underlying allocations would be distinct map keys. A sorted slice keyed
// by Cmp sidesteps that entirely.
type MapBook[V decimal.Value[V]] struct {
	bids *orderedSide[V]
	asks *orderedSide[V]
	c    decimal.Constants[V]

	timestamp  int64
	sequenceID uint64
	hasMoved   bool
}

// NewMapBook constructs an empty MapBook.
func NewMapBook[V decimal.Value[V]](c decimal.Constants[V]) *MapBook[V] {
	return &MapBook[V]{
		bids: newOrderedSide[V](true),
		asks: newOrderedSide[V](false),
		c:    c,
	}
}

func (b *MapBook[V]) sideFor(s Side) *orderedSide[V] {
	if s == Bid {
		return b.bids
	}
	return b.asks
}

// Process implements OrderBook.
func (b *MapBook[V]) Process(e Event[V]) bool {
	if !shouldAdmit[V](b.timestamp, b.sequenceID, e) {
		return false
	}

	prevBid, prevBidOK := b.bids.first()
	prevAsk, prevAskOK := b.asks.first()

	switch e.Kind {
	case EventL2:
		b.sideFor(e.Side).modify(e.ToLevel())
	case EventTrade:
		b.applyTrade(e)
	case EventBBO:
		side := b.sideFor(e.Side)
		side.sweepBetter(e.Price)
		side.modify(e.ToLevel())
	}

	if e.Timestamp > b.timestamp {
		b.timestamp = e.Timestamp
	}
	if e.SequenceID != 0 {
		b.sequenceID = e.SequenceID
	}

	newBid, newBidOK := b.bids.first()
	newAsk, newAskOK := b.asks.first()
	b.hasMoved = prevBidOK != newBidOK || prevAskOK != newAskOK ||
		(prevBidOK && newBidOK && !levelEqual(prevBid, newBid)) ||
		(prevAskOK && newAskOK && !levelEqual(prevAsk, newAsk))

	return true
}

func (b *MapBook[V]) applyTrade(e Event[V]) {
	side := b.sideFor(e.Side)
	idx, found := side.findIndex(e.Price)
	if !found {
		return
	}
	resting := side.levels[idx]
	if decimal.GreaterOrEqual[V](e.Size, resting.Size) {
		side.remove(e.Price)
		return
	}
	side.modify(Level[V]{Price: e.Price, Size: resting.Size.Sub(e.Size)})
}

// BestBid implements OrderBook.
func (b *MapBook[V]) BestBid() (Level[V], bool) { return b.bids.first() }

// BestAsk implements OrderBook.
func (b *MapBook[V]) BestAsk() (Level[V], bool) { return b.asks.first() }

// Bids implements OrderBook.
func (b *MapBook[V]) Bids() []Level[V] { return b.bids.all() }

// Asks implements OrderBook.
func (b *MapBook[V]) Asks() []Level[V] { return b.asks.all() }

// HasMoved implements OrderBook. Unlike ArrayBook's, this flag is not
// cleared by BestBid/BestAsk — it simply reports whether the most recent
// Process call changed the touch. The reset-on-observation contract is
// specified for the array variant only; MapBook offers the flag as a
// convenience for callers (e.g. telemetry.Observer) that want one code
// path across both representations, without promising the same
// consume-once semantics.
func (b *MapBook[V]) HasMoved() bool { return b.hasMoved }

// SequenceID implements OrderBook.
func (b *MapBook[V]) SequenceID() uint64 { return b.sequenceID }

// CalculateMetrics implements OrderBook.
func (b *MapBook[V]) CalculateMetrics(depth int) Metrics[V] {
	return calculateMetrics[V](b.Bids(), b.Asks(), depth, b.c)
}
