// Package kinematics solves the SUVAT equations of motion under constant
// acceleration.
//
// The five quantities are displacement S, start speed U, end speed V,
// acceleration A and time T. Each exported function computes one of them
// from three others and is named after its inputs, e.g. [EndSpeedFromUAT]
// computes V from U, A and T. Picking the function is picking the equation.
//
// Degenerate inputs are not rejected: division by a zero time or
// acceleration yields ±Inf or NaN, and a negative radicand yields NaN.
// The quadratic forms for time return a single root.
//
// [Solve], [Complete] and [Check] choose among the functions at runtime from
// a set of known values.
package kinematics
