package decimal

import (
	"fmt"

	shopspring "github.com/shopspring/decimal"
)

// Big is an arbitrary-precision decimal built on shopspring/decimal. It
// implements the same Value[Big] contract as Fixed, so ArrayBook[Big] and
// MapBook[Big] are drop-in substitutes for ArrayBook[Fixed]/MapBook[Fixed] —
// this is the "alternative conforming implementation" the book and metrics
// packages must treat purely through the Value[V] contract.
//
// Unlike Fixed, Big never saturates: arithmetic that would clamp to
// Min/Max in Fixed instead carries the exact value. Nothing in pkg/lob
// depends on saturation, only on the total order and the four arithmetic
// operations, so this divergence is safe.
type Big struct {
	d shopspring.Decimal
}

var (
	// BigZero is the additive identity.
	BigZero = Big{d: shopspring.Zero}
	// BigOne is the multiplicative identity.
	BigOne = Big{d: shopspring.NewFromInt(1)}
	// BigTwo is 2.0.
	BigTwo = Big{d: shopspring.NewFromInt(2)}
	// BigOneHundred is 100.0.
	BigOneHundred = Big{d: shopspring.NewFromInt(100)}
	// BigMax is a large sentinel used as the SortedBuffer ask-side bound.
	// shopspring/decimal has no fixed maximum, so the bound is a value no
	// real quoted price will ever reach.
	BigMax = Big{d: shopspring.NewFromInt(1).Shift(28)}
	// BigMin is the negation of BigMax, used as the bid-side bound.
	BigMin = Big{d: BigMax.d.Neg()}
)

// BigConstants returns the Value[Big] sentinel bundle.
func BigConstants() Constants[Big] {
	return Constants[Big]{Zero: BigZero, One: BigOne, Two: BigTwo, OneHundred: BigOneHundred, Min: BigMin, Max: BigMax}
}

// NewBigFromInt wraps a plain integer.
func NewBigFromInt(n int64) Big { return Big{d: shopspring.NewFromInt(n)} }

// NewBigFromFloat converts a float64, as shopspring.NewFromFloat does.
func NewBigFromFloat(f float64) Big { return Big{d: shopspring.NewFromFloat(f)} }

// ParseBig parses a decimal string via shopspring/decimal.
func ParseBig(s string) (Big, error) {
	d, err := shopspring.NewFromString(s)
	if err != nil {
		return Big{}, fmt.Errorf("decimal: invalid decimal format: %w", err)
	}
	return Big{d: d}, nil
}

// Decimal exposes the underlying shopspring/decimal value for callers that
// need direct interop with the wider shopspring ecosystem.
func (b Big) Decimal() shopspring.Decimal { return b.d }

func (b Big) String() string { return b.d.String() }

func (b Big) IsZero() bool { return b.d.IsZero() }

func (b Big) Cmp(other Big) int { return b.d.Cmp(other.d) }

func (b Big) Add(other Big) Big { return Big{d: b.d.Add(other.d)} }

func (b Big) Sub(other Big) Big { return Big{d: b.d.Sub(other.d)} }

func (b Big) Mul(other Big) Big { return Big{d: b.d.Mul(other.d)} }

// Div panics if other is zero, matching Fixed's programming-error contract
// (shopspring/decimal itself panics on division by zero).
func (b Big) Div(other Big) Big {
	if other.IsZero() {
		panic("decimal: division by zero")
	}
	return Big{d: b.d.DivRound(other.d, int32(Scale))}
}

// Rem panics if other is zero.
func (b Big) Rem(other Big) Big {
	if other.IsZero() {
		panic("decimal: division by zero")
	}
	return Big{d: b.d.Mod(other.d)}
}
