package lob

import (
	"testing"

	"github.com/obsystems/lob/pkg/decimal"
)

func TestNewEventToLevel(t *testing.T) {
	t.Parallel()

	price := decimal.NewFixed(100)
	size := decimal.NewFixed(5)
	e := NewEvent[decimal.Fixed](EventL2, Bid, price, size, 1)
	lvl := e.ToLevel()
	if lvl.Price != price || lvl.Size != size {
		t.Errorf("ToLevel() = %+v, want price=%v size=%v", lvl, price, size)
	}
}

func TestEventWithSequenceID(t *testing.T) {
	t.Parallel()

	e := NewEvent[decimal.Fixed](EventL2, Bid, decimal.One, decimal.One, 1)
	tagged := e.WithSequenceID(42)
	if tagged.SequenceID != 42 {
		t.Errorf("SequenceID = %d, want 42", tagged.SequenceID)
	}
	if e.SequenceID != 0 {
		t.Errorf("original event mutated, SequenceID = %d, want 0", e.SequenceID)
	}
}

func TestNewBBOEventLevel(t *testing.T) {
	t.Parallel()

	price, size := decimal.NewFixed(99), decimal.NewFixed(3)
	e := NewBBOEvent[decimal.Fixed](Bid, price, size, 7)

	if e.Kind != EventBBO {
		t.Errorf("Kind = %v, want EventBBO", e.Kind)
	}
	lvl := e.ToLevel()
	if lvl.Price != price || lvl.Size != size {
		t.Errorf("ToLevel() = %+v", lvl)
	}
}

func TestBound(t *testing.T) {
	t.Parallel()

	c := decimal.FixedConstants()
	bidSentinel := Bound[decimal.Fixed](true, c)
	if bidSentinel.Price != c.Min || !bidSentinel.Size.IsZero() {
		t.Errorf("bid sentinel = %+v, want (Min, Zero)", bidSentinel)
	}
	askSentinel := Bound[decimal.Fixed](false, c)
	if askSentinel.Price != c.Max || !askSentinel.Size.IsZero() {
		t.Errorf("ask sentinel = %+v, want (Max, Zero)", askSentinel)
	}
}
