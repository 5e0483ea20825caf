package lob

import "github.com/obsystems/lob/pkg/decimal"

// Metrics is a snapshot of microstructure statistics computed from the top
// depth levels of each side of a book. A zero Metrics (all fields at their
// Value[V] zero) means the book did not have enough levels on one or both
// sides to compute the metric.
type Metrics[V decimal.Value[V]] struct {
	MidPrice         V
	BidValue         V
	AskValue         V
	QuoteImbalance   V
	Spread           V
	SpreadPercentage V
	PriceImpactBuy   V
	PriceImpactSell  V
}

// calculateMetrics computes Metrics from already-sorted bid/ask level
// slices, considering only the top depth levels of each side. bids and
// asks must be sorted best-first (descending for bids, ascending for
// asks), which is the order both ArrayBook and MapBook hand back.
func calculateMetrics[V decimal.Value[V]](bids, asks []Level[V], depth int, c decimal.Constants[V]) Metrics[V] {
	var m Metrics[V]
	m.MidPrice, m.BidValue, m.AskValue = c.Zero, c.Zero, c.Zero
	m.QuoteImbalance, m.Spread, m.SpreadPercentage = c.Zero, c.Zero, c.Zero
	m.PriceImpactBuy, m.PriceImpactSell = c.Zero, c.Zero

	if len(bids) == 0 || len(asks) == 0 {
		return m
	}
	if depth <= 0 || depth > len(bids) {
		depth = len(bids)
	}
	askDepth := depth
	if askDepth > len(asks) {
		askDepth = len(asks)
	}

	bestBid, bestAsk := bids[0].Price, asks[0].Price

	m.MidPrice = bestBid.Add(bestAsk).Div(c.Two)
	m.Spread = bestAsk.Sub(bestBid)
	if !m.MidPrice.IsZero() {
		m.SpreadPercentage = m.Spread.Div(m.MidPrice).Mul(c.OneHundred)
	}

	bidNotional := c.Zero
	for _, lvl := range bids[:depth] {
		bidNotional = bidNotional.Add(lvl.Price.Mul(lvl.Size))
	}
	askNotional := c.Zero
	for _, lvl := range asks[:askDepth] {
		askNotional = askNotional.Add(lvl.Price.Mul(lvl.Size))
	}
	m.BidValue = bidNotional
	m.AskValue = askNotional

	totalNotional := bidNotional.Add(askNotional)
	if !totalNotional.IsZero() {
		m.QuoteImbalance = bidNotional.Sub(askNotional).Div(totalNotional)
	}

	worstBidPrice := bids[depth-1].Price
	worstAskPrice := asks[askDepth-1].Price
	if !m.MidPrice.IsZero() {
		m.PriceImpactBuy = worstAskPrice.Sub(m.MidPrice).Div(m.MidPrice).Mul(c.OneHundred)
		m.PriceImpactSell = m.MidPrice.Sub(worstBidPrice).Div(m.MidPrice).Mul(c.OneHundred)
	}

	return m
}
