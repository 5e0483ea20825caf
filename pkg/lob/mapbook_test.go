package lob

import (
	"testing"

	"github.com/obsystems/lob/pkg/decimal"
)

func TestMapBookL2InsertAndBest(t *testing.T) {
	t.Parallel()

	c := decimal.FixedConstants()
	book := NewMapBook[decimal.Fixed](c)

	book.Process(NewEvent[decimal.Fixed](EventL2, Bid, fx(100), fx(5), 1))
	book.Process(NewEvent[decimal.Fixed](EventL2, Ask, fx(101), fx(5), 1))

	bid, ok := book.BestBid()
	if !ok || bid.Price != fx(100) {
		t.Fatalf("BestBid() = %+v, ok=%v", bid, ok)
	}
	ask, ok := book.BestAsk()
	if !ok || ask.Price != fx(101) {
		t.Fatalf("BestAsk() = %+v, ok=%v", ask, ok)
	}
}

func TestMapBookTradeConsumesLevel(t *testing.T) {
	t.Parallel()

	c := decimal.FixedConstants()
	book := NewMapBook[decimal.Fixed](c)
	book.Process(NewEvent[decimal.Fixed](EventL2, Ask, fx(101), fx(3), 1))
	book.Process(NewEvent[decimal.Fixed](EventTrade, Ask, fx(101), fx(10), 2))

	if _, ok := book.BestAsk(); ok {
		t.Errorf("BestAsk() should report none after trade overruns the level")
	}
}

func TestMapBookSequenceGating(t *testing.T) {
	t.Parallel()

	c := decimal.FixedConstants()
	book := NewMapBook[decimal.Fixed](c)

	if !book.Process(NewEvent[decimal.Fixed](EventL2, Bid, fx(100), fx(1), 1).WithSequenceID(10)) {
		t.Fatalf("first sequenced event should be admitted")
	}
	if book.Process(NewEvent[decimal.Fixed](EventL2, Bid, fx(90), fx(1), 2).WithSequenceID(5)) {
		t.Errorf("event behind the sequence watermark should be dropped")
	}
}

func TestMapBookUnboundedDepth(t *testing.T) {
	t.Parallel()

	c := decimal.FixedConstants()
	book := NewMapBook[decimal.Fixed](c)
	for i := int64(0); i < 500; i++ {
		book.Process(NewEvent[decimal.Fixed](EventL2, Bid, fx(i), fx(1), 1))
	}
	bids := book.Bids()
	if len(bids) != 500 {
		t.Fatalf("Bids() len = %d, want 500 (MapBook has no depth cap)", len(bids))
	}
	if bids[0].Price != fx(499) {
		t.Errorf("Bids()[0].Price = %v, want 499 (best bid is the highest price)", bids[0].Price)
	}
}

func TestMapBookBBOReplacesTop(t *testing.T) {
	t.Parallel()

	c := decimal.FixedConstants()
	book := NewMapBook[decimal.Fixed](c)
	book.Process(NewBBOEvent[decimal.Fixed](Ask, fx(102), fx(1), 1))
	book.Process(NewBBOEvent[decimal.Fixed](Bid, fx(99), fx(1), 1))

	bid, _ := book.BestBid()
	ask, _ := book.BestAsk()
	if bid.Price != fx(99) || ask.Price != fx(102) {
		t.Errorf("bid=%+v ask=%+v, want 99/102", bid, ask)
	}
}

func TestMapBookBBOSweepsStaleLevels(t *testing.T) {
	t.Parallel()

	c := decimal.FixedConstants()
	book := NewMapBook[decimal.Fixed](c)
	book.Process(NewEvent[decimal.Fixed](EventL2, Bid, fx(100), fx(1), 1))
	book.Process(NewEvent[decimal.Fixed](EventL2, Bid, fx(101), fx(1), 1))
	book.Process(NewEvent[decimal.Fixed](EventL2, Bid, fx(102), fx(1), 1))

	half, _ := decimal.ParseFixed("100.5")
	book.Process(NewBBOEvent[decimal.Fixed](Bid, half, fx(3), 2))

	bids := book.Bids()
	want := []Level[decimal.Fixed]{{Price: half, Size: fx(3)}, {Price: fx(100), Size: fx(1)}}
	if len(bids) != len(want) {
		t.Fatalf("Bids() = %+v, want %+v", bids, want)
	}
	for i := range want {
		if bids[i] != want[i] {
			t.Errorf("Bids()[%d] = %+v, want %+v", i, bids[i], want[i])
		}
	}
}
