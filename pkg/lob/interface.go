package lob

import "github.com/obsystems/lob/pkg/decimal"

// OrderBook is the contract shared by ArrayBook and MapBook. Both maintain
// the aggregated top of a single instrument's book and can be driven by
// the same Event[V] stream; a caller holding only an OrderBook[V] cannot
// tell which representation is underneath.
type OrderBook[V decimal.Value[V]] interface {
	// Process admits or drops an event per the book's sequencing rule and,
	// if admitted, applies it. It reports whether the event was admitted.
	Process(event Event[V]) bool

	// BestBid returns the highest resting bid, if any.
	BestBid() (Level[V], bool)
	// BestAsk returns the lowest resting ask, if any.
	BestAsk() (Level[V], bool)

	// Bids returns the resting bid levels, best first.
	Bids() []Level[V]
	// Asks returns the resting ask levels, best first.
	Asks() []Level[V]

	// HasMoved reports whether the best bid or best ask has changed.
	// ArrayBook keeps the flag set until BestBid or BestAsk is read;
	// MapBook reports only whether the most recently processed event
	// changed either.
	HasMoved() bool

	// SequenceID returns the current sequence watermark.
	SequenceID() uint64

	// CalculateMetrics computes microstructure metrics over the top depth
	// levels of each side.
	CalculateMetrics(depth int) Metrics[V]
}
