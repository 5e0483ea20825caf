// Package telemetry wraps an lob.OrderBook with Prometheus instrumentation
// without adding anything to the book itself — the core engine in pkg/lob
// stays free of logging or metrics dependencies so it can be embedded in
// latency-sensitive callers that don't want either.
package telemetry

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/obsystems/lob/pkg/decimal"
	"github.com/obsystems/lob/pkg/lob"
)

// Observer wraps an lob.OrderBook[V], publishing Prometheus metrics on
// every Process call. It implements lob.OrderBook[V] itself, so it can be
// dropped in anywhere the wrapped book was used.
type Observer[V decimal.Value[V]] struct {
	mu       sync.RWMutex
	book     lob.OrderBook[V]
	registry *prometheus.Registry
	toFloat  func(V) float64
	instrument string

	bestBidPrice     *prometheus.GaugeVec
	bestAskPrice     *prometheus.GaugeVec
	spread           *prometheus.GaugeVec
	quoteImbalance   *prometheus.GaugeVec
	eventsProcessed  *prometheus.CounterVec
	eventsDropped    *prometheus.CounterVec
	bookHasMoved     *prometheus.CounterVec
}

// NewObserver builds an Observer around book. instrument is used as the
// constant "instrument" label on every published series. toFloat converts
// a book's decimal.Value[V] into a float64 for Prometheus, since
// Prometheus gauges only carry float64 — callers pass Fixed.Float64 or an
// equivalent for their value type.
func NewObserver[V decimal.Value[V]](book lob.OrderBook[V], instrument string, toFloat func(V) float64) *Observer[V] {
	registry := prometheus.NewRegistry()

	o := &Observer[V]{
		book:       book,
		registry:   registry,
		toFloat:    toFloat,
		instrument: instrument,

		bestBidPrice: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{Name: "lob_best_bid_price", Help: "Current best bid price."},
			[]string{"instrument"},
		),
		bestAskPrice: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{Name: "lob_best_ask_price", Help: "Current best ask price."},
			[]string{"instrument"},
		),
		spread: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{Name: "lob_spread", Help: "Best ask minus best bid."},
			[]string{"instrument"},
		),
		quoteImbalance: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{Name: "lob_quote_imbalance", Help: "Notional-value imbalance between bid and ask over the top 10 levels."},
			[]string{"instrument"},
		),
		eventsProcessed: prometheus.NewCounterVec(
			prometheus.CounterOpts{Name: "lob_events_processed_total", Help: "Events admitted and applied to the book."},
			[]string{"instrument"},
		),
		eventsDropped: prometheus.NewCounterVec(
			prometheus.CounterOpts{Name: "lob_events_dropped_total", Help: "Events dropped by the sequencing rule."},
			[]string{"instrument"},
		),
		bookHasMoved: prometheus.NewCounterVec(
			prometheus.CounterOpts{Name: "lob_book_has_moved_total", Help: "Events that changed the best bid or best ask."},
			[]string{"instrument"},
		),
	}

	registry.MustRegister(
		o.bestBidPrice, o.bestAskPrice, o.spread, o.quoteImbalance,
		o.eventsProcessed, o.eventsDropped, o.bookHasMoved,
	)
	return o
}

// Registry returns the Prometheus registry backing this Observer, for
// wiring into promhttp.HandlerFor.
func (o *Observer[V]) Registry() *prometheus.Registry { return o.registry }

// Process implements lob.OrderBook: applies the event to the wrapped
// book, then publishes the resulting state.
func (o *Observer[V]) Process(event lob.Event[V]) bool {
	o.mu.Lock()
	defer o.mu.Unlock()

	admitted := o.book.Process(event)
	if !admitted {
		o.eventsDropped.WithLabelValues(o.instrument).Inc()
		return false
	}
	o.eventsProcessed.WithLabelValues(o.instrument).Inc()
	if o.book.HasMoved() {
		o.bookHasMoved.WithLabelValues(o.instrument).Inc()
	}

	if bid, ok := o.book.BestBid(); ok {
		o.bestBidPrice.WithLabelValues(o.instrument).Set(o.toFloat(bid.Price))
	}
	if ask, ok := o.book.BestAsk(); ok {
		o.bestAskPrice.WithLabelValues(o.instrument).Set(o.toFloat(ask.Price))
	}
	m := o.book.CalculateMetrics(10)
	o.spread.WithLabelValues(o.instrument).Set(o.toFloat(m.Spread))
	o.quoteImbalance.WithLabelValues(o.instrument).Set(o.toFloat(m.QuoteImbalance))

	return true
}

// BestBid implements lob.OrderBook.
func (o *Observer[V]) BestBid() (lob.Level[V], bool) {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.book.BestBid()
}

// BestAsk implements lob.OrderBook.
func (o *Observer[V]) BestAsk() (lob.Level[V], bool) {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.book.BestAsk()
}

// Bids implements lob.OrderBook.
func (o *Observer[V]) Bids() []lob.Level[V] {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.book.Bids()
}

// Asks implements lob.OrderBook.
func (o *Observer[V]) Asks() []lob.Level[V] {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.book.Asks()
}

// HasMoved implements lob.OrderBook.
func (o *Observer[V]) HasMoved() bool {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.book.HasMoved()
}

// SequenceID implements lob.OrderBook.
func (o *Observer[V]) SequenceID() uint64 {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.book.SequenceID()
}

// CalculateMetrics implements lob.OrderBook.
func (o *Observer[V]) CalculateMetrics(depth int) lob.Metrics[V] {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.book.CalculateMetrics(depth)
}
