package quantity

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cast"
)

// ErrNotNumeric is returned under the Strict policy when an input has no
// numeric interpretation.
var ErrNotNumeric = errors.New("quantity: value is not numeric")

// Scalar is anything exposing a single float64 reading.
type Scalar interface {
	Value() float64
}

// Convert re-tags the reading of s with dimension D. It is the only way to
// move a value across dimensions outside the kinematics formulas.
func Convert[D Dimension](s Scalar) Quantity[D] {
	return Quantity[D]{s.Value()}
}

// Policy decides what happens to input that cannot be read as a number.
type Policy int

const (
	// DefaultToZero silently substitutes 0 for unreadable input.
	DefaultToZero Policy = iota
	// Strict reports unreadable input as an error wrapping ErrNotNumeric.
	Strict
)

func (p Policy) String() string {
	switch p {
	case DefaultToZero:
		return "zero"
	case Strict:
		return "strict"
	default:
		return fmt.Sprintf("Policy(%d)", int(p))
	}
}

// ParsePolicy accepts "zero" or "strict".
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "zero", "":
		return DefaultToZero, nil
	case "strict":
		return Strict, nil
	default:
		return DefaultToZero, fmt.Errorf("unknown conversion policy: %s", s)
	}
}

func (p Policy) fail(input any) error {
	if p == Strict {
		return fmt.Errorf("%w: %q", ErrNotNumeric, fmt.Sprint(input))
	}
	return nil
}

// Parse reads a decimal or scientific float. Values beyond the float64
// range become ±Inf rather than failing.
func Parse[D Dimension](s string, p Policy) (Quantity[D], error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
			return Quantity[D]{v}, nil
		}
		return Quantity[D]{}, p.fail(s)
	}
	return Quantity[D]{v}, nil
}

// FromAny converts any primitive numeric, boolean or textual value. Values
// implementing Scalar keep their reading.
func FromAny[D Dimension](v any, p Policy) (Quantity[D], error) {
	switch x := v.(type) {
	case Scalar:
		return Quantity[D]{x.Value()}, nil
	case string:
		return Parse[D](x, p)
	}
	f, err := cast.ToFloat64E(v)
	if err != nil {
		return Quantity[D]{}, p.fail(v)
	}
	return Quantity[D]{f}, nil
}

// FromDigit maps '0'..'9' to 0..9.
func FromDigit[D Dimension](r rune, p Policy) (Quantity[D], error) {
	if r < '0' || r > '9' {
		return Quantity[D]{}, p.fail(string(r))
	}
	return Quantity[D]{float64(r - '0')}, nil
}
