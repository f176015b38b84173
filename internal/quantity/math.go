package quantity

import (
	"math"

	"github.com/shopspring/decimal"
)

var decimalOne = decimal.NewFromInt(1)

func (q Quantity[D]) Abs() Quantity[D] { return Quantity[D]{math.Abs(q.value)} }

// Sign returns -1, 0 or 1. Both zeros and NaN report 0.
func (q Quantity[D]) Sign() int {
	switch {
	case q.value > 0:
		return 1
	case q.value < 0:
		return -1
	default:
		return 0
	}
}

func (q Quantity[D]) Truncate() Quantity[D] { return Quantity[D]{math.Trunc(q.value)} }

// Frac returns the fractional part of q, keeping the sign of q.
//
// The value is first rounded to 15 significant decimal digits, the precision
// a float64 reliably carries, and the remainder is taken on that decimal. So
// Frac(1.1) is exactly 0.1 and Frac(0.1+0.2) is 0.3. Non-finite values have
// no decimal form and yield NaN.
func (q Quantity[D]) Frac() Quantity[D] {
	if !q.IsFinite() {
		return Quantity[D]{math.Mod(q.value, 1)}
	}
	f, _ := toDecimal15(q.value).Mod(decimalOne).Float64()
	return Quantity[D]{f}
}

const significantDigits = 15

func toDecimal15(v float64) decimal.Decimal {
	d := decimal.NewFromFloat(v)
	if v == 0 {
		return d
	}
	exp := int32(math.Floor(math.Log10(math.Abs(v))))
	return d.Round(significantDigits - 1 - exp)
}

// Dist returns the absolute difference between q and o.
func (q Quantity[D]) Dist(o Quantity[D]) Quantity[D] {
	if q.value > o.value {
		return q.Sub(o)
	}
	return o.Sub(q)
}

func (q Quantity[D]) Pow(exponent float64) Quantity[D] {
	return Quantity[D]{math.Pow(q.value, exponent)}
}

// Sqrt returns the principal square root; negative values yield NaN.
func (q Quantity[D]) Sqrt() Quantity[D] { return Quantity[D]{math.Sqrt(q.value)} }

func (q Quantity[D]) Min(o Quantity[D]) Quantity[D] { return Quantity[D]{math.Min(q.value, o.value)} }
func (q Quantity[D]) Max(o Quantity[D]) Quantity[D] { return Quantity[D]{math.Max(q.value, o.value)} }

// Clamp forces q into [lo, hi]. The lower bound is checked first; when
// lo > hi the result depends on that order and is not swapped.
func (q Quantity[D]) Clamp(lo, hi Quantity[D]) Quantity[D] {
	if q.value < lo.value {
		return lo
	} else if q.value > hi.value {
		return hi
	}
	return q
}

// Round rounds half to even.
func (q Quantity[D]) Round() Quantity[D] { return Quantity[D]{math.RoundToEven(q.value)} }
func (q Quantity[D]) Floor() Quantity[D] { return Quantity[D]{math.Floor(q.value)} }
func (q Quantity[D]) Ceil() Quantity[D]  { return Quantity[D]{math.Ceil(q.value)} }

func (q Quantity[D]) Sin() Quantity[D] { return Quantity[D]{math.Sin(q.value)} }
func (q Quantity[D]) Cos() Quantity[D] { return Quantity[D]{math.Cos(q.value)} }
func (q Quantity[D]) Tan() Quantity[D] { return Quantity[D]{math.Tan(q.value)} }
