// Package quantity provides unit-labelled float64 values for kinematics.
//
// A single generic type, [Quantity], is instantiated once per physical
// dimension:
//
//   - [Distance]: metres
//   - [Speed]: metres per second
//   - [Acceleration]: metres per second squared
//   - [Time]: seconds
//
// Quantities of different dimensions are distinct types and cannot be mixed
// in arithmetic. Combining dimensions is the job of the kinematics package.
//
// # Numeric semantics
//
// Comparison and equality are plain IEEE-754 operations on the wrapped value.
// Division by zero and square roots of negative values propagate ±Inf and NaN;
// no operation in this package panics or returns an error for a numeric
// input. Callers inspect degenerate results with [Quantity.IsNaN] and
// [Quantity.IsInf].
//
// # Example
//
//	d := quantity.NewDistance(12.5)
//	limit := quantity.NewDistance(10)
//	d = d.Clamp(quantity.Zero[quantity.DistanceDim](), limit)
//	fmt.Println(d.WithUnit()) // 10 m
//
// # Thread Safety
//
// Quantities are immutable values. All functions are safe for concurrent use.
package quantity
