package telemetry

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/obsystems/lob/pkg/decimal"
	"github.com/obsystems/lob/pkg/lob"
)

func TestObserverPublishesBestBidAsk(t *testing.T) {
	t.Parallel()

	c := decimal.FixedConstants()
	book := lob.NewArrayBookDefault[decimal.Fixed](c)
	obs := NewObserver[decimal.Fixed](book, "TEST-MARKET", decimal.Fixed.Float64)

	admitted := obs.Process(lob.NewEvent[decimal.Fixed](lob.EventL2, lob.Bid, decimal.FromInt(100), decimal.FromInt(5), 1))
	if !admitted {
		t.Fatalf("expected event to be admitted")
	}

	if got := testutil.ToFloat64(obs.bestBidPrice.WithLabelValues("TEST-MARKET")); got != 100 {
		t.Errorf("lob_best_bid_price = %v, want 100", got)
	}
	if got := testutil.ToFloat64(obs.eventsProcessed.WithLabelValues("TEST-MARKET")); got != 1 {
		t.Errorf("lob_events_processed_total = %v, want 1", got)
	}
	if got := testutil.ToFloat64(obs.bookHasMoved.WithLabelValues("TEST-MARKET")); got != 1 {
		t.Errorf("lob_book_has_moved_total = %v, want 1", got)
	}
}

func TestObserverCountsDroppedEvents(t *testing.T) {
	t.Parallel()

	c := decimal.FixedConstants()
	book := lob.NewArrayBookDefault[decimal.Fixed](c)
	obs := NewObserver[decimal.Fixed](book, "TEST-MARKET", decimal.Fixed.Float64)

	obs.Process(lob.NewEvent[decimal.Fixed](lob.EventL2, lob.Bid, decimal.NewFixed(100), decimal.NewFixed(5), 10))
	admitted := obs.Process(lob.NewEvent[decimal.Fixed](lob.EventL2, lob.Bid, decimal.NewFixed(90), decimal.NewFixed(5), 1))
	if admitted {
		t.Fatalf("expected stale-timestamp event to be dropped")
	}
	if got := testutil.ToFloat64(obs.eventsDropped.WithLabelValues("TEST-MARKET")); got != 1 {
		t.Errorf("lob_events_dropped_total = %v, want 1", got)
	}
}
