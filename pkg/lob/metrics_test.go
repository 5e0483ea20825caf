package lob

import (
	"math"
	"testing"

	"github.com/obsystems/lob/pkg/decimal"
)

func TestCalculateMetricsBasic(t *testing.T) {
	t.Parallel()

	c := decimal.FixedConstants()
	book := NewArrayBookDefault[decimal.Fixed](c)
	book.Process(NewEvent[decimal.Fixed](EventL2, Bid, fx(100), fx(20), 1))
	book.Process(NewEvent[decimal.Fixed](EventL2, Bid, fx(99), fx(5), 1))
	book.Process(NewEvent[decimal.Fixed](EventL2, Ask, fx(102), fx(10), 1))
	book.Process(NewEvent[decimal.Fixed](EventL2, Ask, fx(103), fx(5), 1))

	m := book.CalculateMetrics(2)

	if want := fx(101); m.MidPrice != want {
		t.Errorf("MidPrice = %v, want %v", m.MidPrice, want)
	}
	if want := fx(2); m.Spread != want {
		t.Errorf("Spread = %v, want %v", m.Spread, want)
	}
	if m.QuoteImbalance.IsNegative() {
		t.Errorf("QuoteImbalance = %v, want non-negative (bids outweigh asks)", m.QuoteImbalance)
	}
	if m.BidValue.IsZero() || m.AskValue.IsZero() {
		t.Errorf("BidValue/AskValue should be non-zero: bid=%v ask=%v", m.BidValue, m.AskValue)
	}
}

func TestCalculateMetricsEmptyBook(t *testing.T) {
	t.Parallel()

	c := decimal.FixedConstants()
	book := NewArrayBookDefault[decimal.Fixed](c)
	m := book.CalculateMetrics(10)

	if !m.MidPrice.IsZero() || !m.Spread.IsZero() {
		t.Errorf("metrics on an empty book should all be zero, got %+v", m)
	}
}

func TestCalculateMetricsOneSidedBook(t *testing.T) {
	t.Parallel()

	c := decimal.FixedConstants()
	book := NewArrayBookDefault[decimal.Fixed](c)
	book.Process(NewEvent[decimal.Fixed](EventL2, Bid, fx(100), fx(1), 1))
	m := book.CalculateMetrics(10)

	if !m.MidPrice.IsZero() {
		t.Errorf("MidPrice should be zero with no ask side, got %v", m.MidPrice)
	}
}

func TestCalculateMetricsSymmetricImbalance(t *testing.T) {
	t.Parallel()

	c := decimal.FixedConstants()
	book := NewArrayBookDefault[decimal.Fixed](c)
	book.Process(NewEvent[decimal.Fixed](EventL2, Bid, fx(100), fx(10), 1))
	book.Process(NewEvent[decimal.Fixed](EventL2, Ask, fx(100), fx(10), 1))

	m := book.CalculateMetrics(1)
	if !m.QuoteImbalance.IsZero() {
		t.Errorf("QuoteImbalance = %v, want 0 for equal top-of-book notional", m.QuoteImbalance)
	}
}

// TestCalculateMetricsUsesNotionalAndWorstPrice pins QuoteImbalance to the
// notional-sum formula and PriceImpactBuy/Sell to the worst-price-vs-mid
// formula, distinguishing them from a size-sum or VWAP-vs-best-price
// formula that would produce different numbers for this book.
func TestCalculateMetricsUsesNotionalAndWorstPrice(t *testing.T) {
	t.Parallel()

	c := decimal.FixedConstants()
	book := NewArrayBookDefault[decimal.Fixed](c)
	book.Process(NewEvent[decimal.Fixed](EventL2, Bid, fx(100), fx(10), 1))
	book.Process(NewEvent[decimal.Fixed](EventL2, Bid, fx(98), fx(10), 1))
	book.Process(NewEvent[decimal.Fixed](EventL2, Ask, fx(102), fx(10), 1))
	book.Process(NewEvent[decimal.Fixed](EventL2, Ask, fx(106), fx(10), 1))

	m := book.CalculateMetrics(2)

	// bidNotional = 100*10+98*10 = 1980, askNotional = 102*10+106*10 = 2080.
	wantImbalance := (1980.0 - 2080.0) / (1980.0 + 2080.0)
	if got := m.QuoteImbalance.Float64(); math.Abs(got-wantImbalance) > 1e-9 {
		t.Errorf("QuoteImbalance = %v, want %v (notional-sum formula)", got, wantImbalance)
	}

	// mid = (100+102)/2 = 101; worst bid at depth 2 is 98, worst ask is 106.
	wantImpactSell := (101.0 - 98.0) / 101.0 * 100
	wantImpactBuy := (106.0 - 101.0) / 101.0 * 100
	if got := m.PriceImpactSell.Float64(); math.Abs(got-wantImpactSell) > 1e-6 {
		t.Errorf("PriceImpactSell = %v, want %v (worst-bid-vs-mid formula)", got, wantImpactSell)
	}
	if got := m.PriceImpactBuy.Float64(); math.Abs(got-wantImpactBuy) > 1e-6 {
		t.Errorf("PriceImpactBuy = %v, want %v (worst-ask-vs-mid formula)", got, wantImpactBuy)
	}
}
