package decimal

import (
	"fmt"
	"math"
	"math/big"
	"strings"
)

// Fixed is a signed fixed-point scalar with a compile-time scale of 13
// fractional digits, stored as raw = value * ScaleFactor in a 64-bit signed
// integer. It is the performance-default implementation of Value[Fixed].
type Fixed struct {
	raw int64
}

const (
	// Scale is the number of fractional decimal digits Fixed carries.
	Scale = 13
	// ScaleFactor is 10^Scale.
	ScaleFactor int64 = 10_000_000_000_000
)

var (
	// Zero is the additive identity.
	Zero = Fixed{raw: 0}
	// One is the multiplicative identity.
	One = Fixed{raw: ScaleFactor}
	// Two is 2.0.
	Two = Fixed{raw: 2 * ScaleFactor}
	// OneHundred is 100.0.
	OneHundred = Fixed{raw: 100 * ScaleFactor}
	// Max is the largest representable Fixed value.
	Max = Fixed{raw: math.MaxInt64}
	// Min is the smallest representable Fixed value.
	Min = Fixed{raw: math.MinInt64}
)

// FixedConstants returns the Value[Fixed] sentinel bundle, for callers that
// construct book/buffer types generically over decimal.Value[T].
func FixedConstants() Constants[Fixed] {
	return Constants[Fixed]{Zero: Zero, One: One, Two: Two, OneHundred: OneHundred, Min: Min, Max: Max}
}

// NewFixed wraps a raw scaled integer directly.
func NewFixed(raw int64) Fixed { return Fixed{raw: raw} }

// RawValue returns the underlying scaled integer.
func (f Fixed) RawValue() int64 { return f.raw }

// FromInt scales n by ScaleFactor. Mirrors the reference implementation's
// odd large-magnitude carve-out: values whose absolute magnitude already
// exceeds ScaleFactor are kept as the raw value unscaled, rather than
// multiplied again. The multiplication is unchecked: between roughly 9.22e5
// whole units and ScaleFactor it overflows int64 and wraps rather than
// saturating.
func FromInt(n int64) Fixed {
	abs := n
	if abs < 0 {
		abs = -abs
	}
	if abs > ScaleFactor {
		return Fixed{raw: n}
	}
	return Fixed{raw: n * ScaleFactor}
}

// FromFloat64 rounds x to the nearest representable Fixed, clamped to
// [Min, Max]. NaN maps to Zero; +Inf maps to Max; -Inf maps to Min.
func FromFloat64(x float64) Fixed {
	switch {
	case math.IsNaN(x):
		return Zero
	case math.IsInf(x, 1):
		return Max
	case math.IsInf(x, -1):
		return Min
	}

	scaled := x * float64(ScaleFactor)
	if scaled >= math.MaxInt64 {
		return Max
	}
	if scaled <= math.MinInt64 {
		return Min
	}
	return Fixed{raw: int64(math.Round(scaled))}
}

// Float64 converts back to a float64. Lossy for magnitudes beyond 2^53.
func (f Fixed) Float64() float64 {
	return float64(f.raw) / float64(ScaleFactor)
}

// ParseFixed parses "[-]W[.F]": W is a signed integer whole part, F
// (optional) is right-padded or truncated to Scale digits and parsed as the
// fractional part.
func ParseFixed(s string) (Fixed, error) {
	if s == "" {
		return Zero, fmt.Errorf("decimal: invalid decimal format: %q", s)
	}

	negative := false
	if s[0] == '-' {
		negative = true
		s = s[1:]
	}

	parts := strings.SplitN(s, ".", 2)
	switch len(parts) {
	case 1:
		whole, err := parseWhole(parts[0])
		if err != nil {
			return Zero, err
		}
		raw := whole * ScaleFactor
		if negative {
			raw = -raw
		}
		return Fixed{raw: raw}, nil
	case 2:
		whole, err := parseWhole(parts[0])
		if err != nil {
			return Zero, err
		}
		frac, err := parseFraction(parts[1])
		if err != nil {
			return Zero, err
		}
		raw := whole*ScaleFactor + frac
		if negative {
			raw = -raw
		}
		return Fixed{raw: raw}, nil
	default:
		return Zero, fmt.Errorf("decimal: invalid decimal format: %q", s)
	}
}

func parseWhole(s string) (int64, error) {
	var w int64
	if s == "" {
		return 0, fmt.Errorf("decimal: invalid whole number: %q", s)
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("decimal: invalid whole number: %q", s)
		}
		w = w*10 + int64(r-'0')
	}
	return w, nil
}

func parseFraction(s string) (int64, error) {
	if len(s) > Scale {
		s = s[:Scale]
	} else if len(s) < Scale {
		s = s + strings.Repeat("0", Scale-len(s))
	}
	var f int64
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("decimal: invalid decimal part: %q", s)
		}
		f = f*10 + int64(r-'0')
	}
	return f, nil
}

// String renders the canonical decimal form: no leading zeros (except
// "0"), fractional zeros trimmed, "-0" normalised to "0".
func (f Fixed) String() string {
	absRaw := f.raw
	negative := absRaw < 0
	if negative {
		absRaw = -absRaw
	}

	whole := absRaw / ScaleFactor
	frac := absRaw % ScaleFactor
	if frac == 0 {
		if negative {
			return fmt.Sprintf("-%d", whole)
		}
		return fmt.Sprintf("%d", whole)
	}

	fracStr := strings.TrimRight(fmt.Sprintf("%013d", frac), "0")
	if negative {
		return fmt.Sprintf("-%d.%s", whole, fracStr)
	}
	return fmt.Sprintf("%d.%s", whole, fracStr)
}

// IsZero reports whether the value is exactly zero.
func (f Fixed) IsZero() bool { return f.raw == 0 }

// IsNegative reports whether the value is strictly negative.
func (f Fixed) IsNegative() bool { return f.raw < 0 }

// Abs returns the absolute value, saturating at Max if the receiver is Min.
func (f Fixed) Abs() Fixed {
	if f.raw == math.MinInt64 {
		return Max
	}
	if f.raw < 0 {
		return Fixed{raw: -f.raw}
	}
	return f
}

// Cmp returns -1, 0, or 1 per the total order of the scaled integer.
func (f Fixed) Cmp(other Fixed) int {
	switch {
	case f.raw < other.raw:
		return -1
	case f.raw > other.raw:
		return 1
	default:
		return 0
	}
}

// Add is saturating 64-bit addition.
func (f Fixed) Add(other Fixed) Fixed {
	return Fixed{raw: satAdd(f.raw, other.raw)}
}

// Sub is saturating 64-bit subtraction.
func (f Fixed) Sub(other Fixed) Fixed {
	return Fixed{raw: satSub(f.raw, other.raw)}
}

// Mul computes (a*b)/ScaleFactor via a 128-bit intermediate, saturating to
// [Min, Max]. Short-circuits when either operand is Zero or One.
func (f Fixed) Mul(other Fixed) Fixed {
	if f.IsZero() || other.IsZero() {
		return Zero
	}
	if f.raw == ScaleFactor {
		return other
	}
	if other.raw == ScaleFactor {
		return f
	}

	product := new(big.Int).Mul(big.NewInt(f.raw), big.NewInt(other.raw))
	product.Quo(product, big.NewInt(ScaleFactor))
	return fromBigSaturate(product)
}

// Div computes (a*ScaleFactor)/b via a 128-bit intermediate, saturating to
// [Min, Max]. Panics if other is Zero — this is a programming error, not a
// reportable domain error.
func (f Fixed) Div(other Fixed) Fixed {
	if other.IsZero() {
		panic("decimal: division by zero")
	}
	if f.IsZero() {
		return Zero
	}
	if other.raw == ScaleFactor {
		return f
	}

	numerator := new(big.Int).Mul(big.NewInt(f.raw), big.NewInt(ScaleFactor))
	numerator.Quo(numerator, big.NewInt(other.raw))
	return fromBigSaturate(numerator)
}

// Rem is raw % raw. Panics if other is Zero.
func (f Fixed) Rem(other Fixed) Fixed {
	if other.IsZero() {
		panic("decimal: division by zero")
	}
	return Fixed{raw: f.raw % other.raw}
}

// Rescale truncates toward zero at k fractional digits, 0 <= k < Scale.
// Values of k outside that range leave the receiver unchanged.
func (f *Fixed) Rescale(k int) {
	if k < 0 || k >= Scale {
		return
	}
	divisor := pow10(Scale - k).Int64()
	f.raw = (f.raw / divisor) * divisor
}

// WithExponent constructs a Fixed equal to v*10^e, saturating on overflow.
func WithExponent(v int64, e int) Fixed {
	if v == 0 {
		return Zero
	}
	adjustment := Scale + e
	if adjustment == 0 {
		return Fixed{raw: v}
	}

	result := big.NewInt(v)
	if adjustment > 0 {
		result.Mul(result, pow10(adjustment))
	} else {
		result.Quo(result, pow10(-adjustment))
	}
	return fromBigSaturate(result)
}

// MinOf returns the lesser of f and other.
func (f Fixed) MinOf(other Fixed) Fixed {
	if f.raw < other.raw {
		return f
	}
	return other
}

// MaxOf returns the greater of f and other.
func (f Fixed) MaxOf(other Fixed) Fixed {
	if f.raw > other.raw {
		return f
	}
	return other
}

func satAdd(a, b int64) int64 {
	sum := a + b
	if (b > 0 && sum < a) || (b < 0 && sum > a) {
		if b > 0 {
			return math.MaxInt64
		}
		return math.MinInt64
	}
	return sum
}

func satSub(a, b int64) int64 {
	diff := a - b
	if (b < 0 && diff < a) || (b > 0 && diff > a) {
		if b < 0 {
			return math.MaxInt64
		}
		return math.MinInt64
	}
	return diff
}

func pow10(n int) *big.Int {
	return new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(n)), nil)
}

func fromBigSaturate(v *big.Int) Fixed {
	if v.Cmp(maxBig) > 0 {
		return Max
	}
	if v.Cmp(minBig) < 0 {
		return Min
	}
	return Fixed{raw: v.Int64()}
}

var (
	maxBig = big.NewInt(math.MaxInt64)
	minBig = big.NewInt(math.MinInt64)
)
