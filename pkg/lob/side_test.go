package lob

import "testing"

func TestSideOpposite(t *testing.T) {
	t.Parallel()
	if Bid.Opposite() != Ask {
		t.Errorf("Bid.Opposite() should be Ask")
	}
	if Ask.Opposite() != Bid {
		t.Errorf("Ask.Opposite() should be Bid")
	}
}

func TestSideIsBuy(t *testing.T) {
	t.Parallel()
	if !Bid.IsBuy() {
		t.Errorf("Bid.IsBuy() should be true")
	}
	if Ask.IsBuy() {
		t.Errorf("Ask.IsBuy() should be false")
	}
}

func TestSideString(t *testing.T) {
	t.Parallel()
	if Bid.String() != "Bid" {
		t.Errorf("Bid.String() = %s, want Bid", Bid.String())
	}
	if Ask.String() != "Ask" {
		t.Errorf("Ask.String() = %s, want Ask", Ask.String())
	}
}

func TestEventKindString(t *testing.T) {
	t.Parallel()
	cases := map[EventKind]string{EventL2: "L2", EventTrade: "Trade", EventBBO: "BBO"}
	for k, want := range cases {
		if got := k.String(); got != want {
			t.Errorf("%v.String() = %s, want %s", k, got, want)
		}
	}
}
