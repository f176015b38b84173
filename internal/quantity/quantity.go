package quantity

import (
	"math"
	"strconv"
)

// Quantity is an immutable float64 tagged with a physical dimension.
// The zero value is a zero quantity.
type Quantity[D Dimension] struct {
	value float64
}

func New[D Dimension](v float64) Quantity[D] {
	return Quantity[D]{value: v}
}

func Zero[D Dimension]() Quantity[D]  { return Quantity[D]{} }
func One[D Dimension]() Quantity[D]   { return Quantity[D]{value: 1} }
func Pi[D Dimension]() Quantity[D]    { return Quantity[D]{value: math.Pi} }
func TwoPi[D Dimension]() Quantity[D] { return Quantity[D]{value: 2 * math.Pi} }

// Value returns the wrapped float64.
func (q Quantity[D]) Value() float64 { return q.value }

// Dimension returns the dimension name, e.g. "speed".
func (q Quantity[D]) Dimension() string {
	var d D
	return d.Name()
}

// Unit returns the SI symbol of the dimension.
func (q Quantity[D]) Unit() string {
	var d D
	return d.Symbol()
}

func (q Quantity[D]) String() string {
	return strconv.FormatFloat(q.value, 'g', -1, 64)
}

// WithUnit formats the value followed by its SI symbol.
func (q Quantity[D]) WithUnit() string {
	return q.String() + " " + q.Unit()
}

func (q Quantity[D]) IsNaN() bool { return math.IsNaN(q.value) }

// IsInf reports whether q is an infinity, according to sign (see math.IsInf).
func (q Quantity[D]) IsInf(sign int) bool { return math.IsInf(q.value, sign) }

func (q Quantity[D]) IsFinite() bool {
	return !math.IsNaN(q.value) && !math.IsInf(q.value, 0)
}

func (q Quantity[D]) Eq(o Quantity[D]) bool { return q.value == o.value }
func (q Quantity[D]) Ne(o Quantity[D]) bool { return q.value != o.value }
func (q Quantity[D]) Lt(o Quantity[D]) bool { return q.value < o.value }
func (q Quantity[D]) Gt(o Quantity[D]) bool { return q.value > o.value }
func (q Quantity[D]) Le(o Quantity[D]) bool { return q.value <= o.value }
func (q Quantity[D]) Ge(o Quantity[D]) bool { return q.value >= o.value }

// Compare returns 1 if q > o, -1 if q < o and 0 otherwise.
// Any comparison involving NaN returns 0, unlike cmp.Compare.
func (q Quantity[D]) Compare(o Quantity[D]) int {
	switch {
	case q.value > o.value:
		return 1
	case q.value < o.value:
		return -1
	default:
		return 0
	}
}

func (q Quantity[D]) Add(o Quantity[D]) Quantity[D] { return Quantity[D]{q.value + o.value} }
func (q Quantity[D]) Sub(o Quantity[D]) Quantity[D] { return Quantity[D]{q.value - o.value} }
func (q Quantity[D]) Mul(o Quantity[D]) Quantity[D] { return Quantity[D]{q.value * o.value} }

// Div divides without guarding against zero; x/0 yields ±Inf and 0/0 NaN.
func (q Quantity[D]) Div(o Quantity[D]) Quantity[D] { return Quantity[D]{q.value / o.value} }

// Mod is the truncated remainder, with the sign of q. Mod by zero is NaN.
func (q Quantity[D]) Mod(o Quantity[D]) Quantity[D] { return Quantity[D]{math.Mod(q.value, o.value)} }

func (q Quantity[D]) Neg() Quantity[D] { return Quantity[D]{-q.value} }
func (q Quantity[D]) Inc() Quantity[D] { return Quantity[D]{q.value + 1} }
func (q Quantity[D]) Dec() Quantity[D] { return Quantity[D]{q.value - 1} }

// Scale multiplies q by a dimensionless factor.
func (q Quantity[D]) Scale(f float64) Quantity[D] { return Quantity[D]{q.value * f} }
