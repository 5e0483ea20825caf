// lobreplay drives a synthetic event stream through two order book
// representations side by side, exposes their live state as Prometheus
// metrics, and checks on every tick that the two representations still
// agree. It reads no feed from the network or from files (its only network
// use is the metrics endpoint) — it is a demo harness for pkg/lob, not a
// feed adapter.
package main

import (
	"context"
	"flag"
	"log"
	"math"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"

	"github.com/obsystems/lob/pkg/decimal"
	"github.com/obsystems/lob/pkg/lob"
	"github.com/obsystems/lob/pkg/telemetry"
)

var (
	instrument  = flag.String("instrument", "SYN-USD", "Instrument label attached to emitted metrics")
	midPrice    = flag.Float64("mid", 100.0, "Centre of the synthetic price generator")
	amplitude   = flag.Float64("amplitude", 2.5, "Amplitude of the sine price oscillation")
	periodTicks = flag.Int("period-ticks", 200, "Number of ticks per full sine cycle")
	levelsWide  = flag.Int("levels", 5, "Number of price levels generated per side per tick")
	tickStep    = flag.Float64("tick-step", 0.10, "Price increment between adjacent generated levels")
	eventsPerSec = flag.Float64("rate", 50, "Synthetic ticks per second (each tick emits one L2 update per level per side)")
	duration    = flag.Duration("duration", 30*time.Second, "How long to run before exiting")
	metricsAddr = flag.String("metrics-addr", ":9090", "Listen address for the Prometheus /metrics endpoint")
	depth       = flag.Int("array-depth", 50, "ArrayBook depth per side")
)

func main() {
	flag.Parse()

	runID := uuid.NewString()
	log.Printf("lobreplay run=%s instrument=%s rate=%.1f/s duration=%s", runID, *instrument, *eventsPerSec, *duration)

	c := decimal.FixedConstants()
	array := lob.NewArrayBook[decimal.Fixed](*depth, c)
	mapBook := lob.NewMapBook[decimal.Fixed](c)
	observed := telemetry.NewObserver[decimal.Fixed](array, *instrument, decimal.Fixed.Float64)

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(observed.Registry(), promhttp.HandlerOpts{}))
	server := &http.Server{Addr: *metricsAddr, Handler: mux}
	go func() {
		log.Printf("metrics listening on %s", *metricsAddr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("metrics server stopped: %v", err)
		}
	}()

	limiter := rate.NewLimiter(rate.Limit(*eventsPerSec), 1)
	gen := newSineGenerator(*midPrice, *amplitude, *periodTicks, *levelsWide, *tickStep)

	deadline := time.Now().Add(*duration)
	var seq uint64
	var tick int
	var mismatches int

	ctx := context.Background()
	for time.Now().Before(deadline) {
		if err := limiter.Wait(ctx); err != nil {
			log.Printf("limiter wait: %v", err)
			break
		}
		seq++
		ts := int64(tick)
		for _, e := range gen.next(tick, ts, seq) {
			observed.Process(e)
			mapBook.Process(e)
		}

		if !booksAgree(observed, mapBook) {
			mismatches++
			log.Printf("tick %d: ArrayBook and MapBook diverge", tick)
		}
		tick++
	}

	log.Printf("run=%s complete: %d ticks, %d mismatches", runID, tick, mismatches)
	_ = server.Close()
}

func booksAgree(a, b lob.OrderBook[decimal.Fixed]) bool {
	aBid, aBidOK := a.BestBid()
	bBid, bBidOK := b.BestBid()
	if aBidOK != bBidOK || aBid != bBid {
		return false
	}
	aAsk, aAskOK := a.BestAsk()
	bAsk, bAskOK := b.BestAsk()
	return aAskOK == bAskOK && aAsk == bAsk
}

// sineGenerator produces level snapshots whose mid price oscillates
// sinusoidally around a centre price, modelling an instrument drifting
// between two liquidity regimes rather than a flat, unrealistic book.
type sineGenerator struct {
	mid       float64
	amplitude float64
	period    int
	levels    int
	step      float64
}

func newSineGenerator(mid, amplitude float64, period, levels int, step float64) *sineGenerator {
	return &sineGenerator{mid: mid, amplitude: amplitude, period: period, levels: levels, step: step}
}

// next generates one L2 update per level per side, centred on the sine
// wave's current value at tick.
func (g *sineGenerator) next(tick int, ts int64, seq uint64) []lob.Event[decimal.Fixed] {
	phase := 2 * math.Pi * float64(tick%g.period) / float64(g.period)
	centre := g.mid + g.amplitude*math.Sin(phase)

	events := make([]lob.Event[decimal.Fixed], 0, 2*g.levels)
	for i := 0; i < g.levels; i++ {
		bidPrice := decimal.FromFloat64(centre - g.step*float64(i+1))
		askPrice := decimal.FromFloat64(centre + g.step*float64(i+1))
		size := decimal.FromFloat64(1.0 + float64(i))

		events = append(events,
			lob.NewEvent[decimal.Fixed](lob.EventL2, lob.Bid, bidPrice, size, ts).WithSequenceID(seq),
			lob.NewEvent[decimal.Fixed](lob.EventL2, lob.Ask, askPrice, size, ts).WithSequenceID(seq),
		)
	}
	return events
}
