package lob

import "github.com/obsystems/lob/pkg/decimal"

// DefaultDepth is the default number of levels tracked per side by
// NewArrayBookDefault, chosen to comfortably cover the top of book for a
// typical liquid instrument without paying for unbounded growth.
const DefaultDepth = 300

// ArrayBook is an OrderBook backed by two fixed-capacity SortedBuffers. It
// favours predictable memory layout and cache-friendly scans over the
// dynamic resizing MapBook offers, at the cost of discarding levels beyond
// its configured depth.
type ArrayBook[V decimal.Value[V]] struct {
	bids *SortedBuffer[V]
	asks *SortedBuffer[V]
	c    decimal.Constants[V]

	timestamp  int64
	sequenceID uint64
	hasMoved   bool
}

// NewArrayBook constructs an ArrayBook tracking up to depth levels per
// side.
func NewArrayBook[V decimal.Value[V]](depth int, c decimal.Constants[V]) *ArrayBook[V] {
	return &ArrayBook[V]{
		bids: NewSortedBuffer[V](depth, true, c),
		asks: NewSortedBuffer[V](depth, false, c),
		c:    c,
	}
}

// NewArrayBookDefault constructs an ArrayBook with DefaultDepth levels per
// side.
func NewArrayBookDefault[V decimal.Value[V]](c decimal.Constants[V]) *ArrayBook[V] {
	return NewArrayBook[V](DefaultDepth, c)
}

func (b *ArrayBook[V]) bufferFor(s Side) *SortedBuffer[V] {
	if s == Bid {
		return b.bids
	}
	return b.asks
}

// Process implements OrderBook.
func (b *ArrayBook[V]) Process(e Event[V]) bool {
	if !shouldAdmit[V](b.timestamp, b.sequenceID, e) {
		return false
	}

	prevBid, prevBidOK := b.bids.First()
	prevAsk, prevAskOK := b.asks.First()

	switch e.Kind {
	case EventL2:
		b.bufferFor(e.Side).Modify(e.ToLevel())
	case EventTrade:
		b.applyTrade(e)
	case EventBBO:
		buf := b.bufferFor(e.Side)
		buf.SweepBetter(e.Price)
		buf.Modify(e.ToLevel())
	}

	if e.Timestamp > b.timestamp {
		b.timestamp = e.Timestamp
	}
	if e.SequenceID != 0 {
		b.sequenceID = e.SequenceID
	}

	newBid, newBidOK := b.bids.First()
	newAsk, newAskOK := b.asks.First()
	// The flag stays set until BestBid or BestAsk is read.
	b.hasMoved = b.hasMoved || prevBidOK != newBidOK || prevAskOK != newAskOK ||
		(prevBidOK && newBidOK && !levelEqual(prevBid, newBid)) ||
		(prevAskOK && newAskOK && !levelEqual(prevAsk, newAsk))

	return true
}

// applyTrade reduces the resting level on the traded side by the traded
// size; a trade that fully consumes (or overruns) a level removes it.
func (b *ArrayBook[V]) applyTrade(e Event[V]) {
	buf := b.bufferFor(e.Side)
	idx, found := buf.FindIndex(e.Price)
	if !found {
		return
	}
	resting := buf.levels[idx]
	if decimal.GreaterOrEqual[V](e.Size, resting.Size) {
		buf.Remove(e.Price)
		return
	}
	buf.Modify(Level[V]{Price: e.Price, Size: resting.Size.Sub(e.Size)})
}

// BestBid implements OrderBook. Reading it clears HasMoved, the same way
// BestAsk does — either observation counts as the consumer having caught
// up with the latest move.
func (b *ArrayBook[V]) BestBid() (Level[V], bool) {
	b.hasMoved = false
	return b.bids.First()
}

// BestAsk implements OrderBook. See BestBid for the HasMoved side effect.
func (b *ArrayBook[V]) BestAsk() (Level[V], bool) {
	b.hasMoved = false
	return b.asks.First()
}

// Bids implements OrderBook.
func (b *ArrayBook[V]) Bids() []Level[V] { return b.bids.Levels() }

// Asks implements OrderBook.
func (b *ArrayBook[V]) Asks() []Level[V] { return b.asks.Levels() }

// HasMoved implements OrderBook.
func (b *ArrayBook[V]) HasMoved() bool { return b.hasMoved }

// SequenceID implements OrderBook.
func (b *ArrayBook[V]) SequenceID() uint64 { return b.sequenceID }

// CalculateMetrics implements OrderBook.
func (b *ArrayBook[V]) CalculateMetrics(depth int) Metrics[V] {
	return calculateMetrics[V](b.Bids(), b.Asks(), depth, b.c)
}
