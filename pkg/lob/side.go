package lob

// Side identifies which half of the book a level or event belongs to.
type Side uint8

const (
	// Bid is the buy side: bid levels are sorted descending by price, so
	// the best bid sits at the highest price.
	Bid Side = iota
	// Ask is the sell side: ask levels are sorted ascending by price, so
	// the best ask sits at the lowest price.
	Ask
)

// Opposite returns the other side.
func (s Side) Opposite() Side {
	if s == Bid {
		return Ask
	}
	return Bid
}

// IsBuy reports whether s is the buy (bid) side.
func (s Side) IsBuy() bool { return s == Bid }

// String implements fmt.Stringer.
func (s Side) String() string {
	if s == Bid {
		return "Bid"
	}
	return "Ask"
}

// EventKind distinguishes the three shapes of inbound book update.
type EventKind uint8

const (
	// EventL2 is a single aggregated price-level update: insert, modify,
	// or remove (size == 0 removes the level) a level on one side.
	EventL2 EventKind = iota
	// EventTrade is a print at a price/size that consumes resting size on
	// the traded side: the book decrements (or removes, if the trade size
	// meets or exceeds what rests there) the level at that price.
	EventTrade
	// EventBBO is a single-side quote-and-sweep: every resting level on
	// the same side strictly better than price is removed, then the level
	// is applied at price. A full best-bid/best-offer refresh is two
	// EventBBO events, one per side.
	EventBBO
)

// String implements fmt.Stringer.
func (k EventKind) String() string {
	switch k {
	case EventL2:
		return "L2"
	case EventTrade:
		return "Trade"
	case EventBBO:
		return "BBO"
	default:
		return "Unknown"
	}
}
