// Package decimal defines the arithmetic contract the order book and
// metrics packages are generic over, plus two conforming implementations:
// Fixed, a scale-13 fixed-point int64, and Big, an arbitrary-precision
// decimal built on shopspring/decimal.
//
// Neither pkg/lob nor pkg/lob's metrics ever touch a concrete decimal type
// directly — they only call through Value[T], so Fixed and Big are
// interchangeable value types for the same book implementation.
package decimal

// Value is the arithmetic/ordering contract a book value type must satisfy.
// T is always the implementing type itself (Fixed implements Value[Fixed],
// Big implements Value[Big]) so that every method returns the concrete type
// rather than the interface.
type Value[T any] interface {
	Add(T) T
	Sub(T) T
	Mul(T) T
	Div(T) T
	Rem(T) T

	// Cmp returns -1, 0, or 1 as the receiver is less than, equal to, or
	// greater than other.
	Cmp(other T) int

	IsZero() bool
	String() string
}

// Constants bundles the sentinel values a Value[T] implementation exposes.
// Go has no way to attach package-level constants/vars to a type parameter,
// so generic book/buffer code takes a Constants[T] bundle at construction
// time instead (see NewArrayBook, NewMapBook).
type Constants[T any] struct {
	Zero, One, Two, OneHundred, Min, Max T
}

// Less is a convenience built on Cmp, usable from generic code that only
// has a Value[T] constraint in scope.
func Less[T Value[T]](a, b T) bool { return a.Cmp(b) < 0 }

// LessOrEqual is a convenience built on Cmp.
func LessOrEqual[T Value[T]](a, b T) bool { return a.Cmp(b) <= 0 }

// Greater is a convenience built on Cmp.
func Greater[T Value[T]](a, b T) bool { return a.Cmp(b) > 0 }

// GreaterOrEqual is a convenience built on Cmp.
func GreaterOrEqual[T Value[T]](a, b T) bool { return a.Cmp(b) >= 0 }

// Equal is a convenience built on Cmp.
func Equal[T Value[T]](a, b T) bool { return a.Cmp(b) == 0 }
