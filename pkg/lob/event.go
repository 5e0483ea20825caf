package lob

import "github.com/obsystems/lob/pkg/decimal"

// Event is a single inbound update to a book, uniform in shape across all
// three kinds:
//
//   - EventL2: Side, Price, Size describe a depth update (Size == 0 removes
//     the level).
//   - EventTrade: Side is the side of the resting order that was hit;
//     Price and Size describe the print.
//   - EventBBO: Side, Price, Size describe the new top-of-book quote on
//     that side; applying it first sweeps away any resting level on the
//     same side strictly better than Price.
//
// SequenceID of 0 means "unsequenced": such an event is always admitted
// (subject to the timestamp rule) and never advances the book's sequence
// watermark.
type Event[V decimal.Value[V]] struct {
	Kind       EventKind
	Side       Side
	Price      V
	Size       V
	Timestamp  int64
	SequenceID uint64
}

// NewEvent builds an event of the given kind.
func NewEvent[V decimal.Value[V]](kind EventKind, side Side, price, size V, timestamp int64) Event[V] {
	return Event[V]{Kind: kind, Side: side, Price: price, Size: size, Timestamp: timestamp}
}

// NewBBOEvent builds a BBO quote event for one side of the book.
func NewBBOEvent[V decimal.Value[V]](side Side, price, size V, timestamp int64) Event[V] {
	return NewEvent[V](EventBBO, side, price, size, timestamp)
}

// WithSequenceID returns a copy of e tagged with the given sequence number.
func (e Event[V]) WithSequenceID(seq uint64) Event[V] {
	e.SequenceID = seq
	return e
}

// ToLevel extracts the (Price, Size) level carried by the event.
func (e Event[V]) ToLevel() Level[V] {
	return Level[V]{Price: e.Price, Size: e.Size}
}
