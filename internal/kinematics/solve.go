package kinematics

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/san-kum/suvat/internal/quantity"
)

var (
	// ErrUnknownVariable indicates a symbol outside S, U, V, A, T.
	ErrUnknownVariable = errors.New("kinematics: unknown variable")

	// ErrAlreadyKnown indicates a request to solve for a supplied value.
	ErrAlreadyKnown = errors.New("kinematics: variable is already known")

	// ErrUnderdetermined indicates no equation has all of its inputs known.
	ErrUnderdetermined = errors.New("kinematics: not enough known quantities")

	// ErrIncomplete indicates Check was given fewer than all five quantities.
	ErrIncomplete = errors.New("kinematics: all five quantities are required")
)

// Variable is one of the five SUVAT symbols.
type Variable byte

const (
	S Variable = 'S'
	U Variable = 'U'
	V Variable = 'V'
	A Variable = 'A'
	T Variable = 'T'
)

var allVariables = []Variable{S, U, V, A, T}

// Variables returns the SUVAT symbols in S, U, V, A, T order.
func Variables() []Variable {
	return append([]Variable(nil), allVariables...)
}

func ParseVariable(s string) (Variable, error) {
	if len(s) == 1 {
		v := Variable(strings.ToUpper(s)[0])
		if v.valid() {
			return v, nil
		}
	}
	switch strings.ToLower(s) {
	case "distance", "displacement":
		return S, nil
	case "start", "initial":
		return U, nil
	case "end", "final":
		return V, nil
	case "acceleration":
		return A, nil
	case "time":
		return T, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownVariable, s)
}

func (v Variable) valid() bool {
	switch v {
	case S, U, V, A, T:
		return true
	}
	return false
}

func (v Variable) String() string {
	if !v.valid() {
		return fmt.Sprintf("Variable(%d)", byte(v))
	}
	return strings.ToLower(string(rune(v)))
}

// Unit returns the SI symbol of the quantity the variable stands for.
func (v Variable) Unit() string {
	switch v {
	case S:
		return quantity.DistanceDim{}.Symbol()
	case U, V:
		return quantity.SpeedDim{}.Symbol()
	case A:
		return quantity.AccelerationDim{}.Symbol()
	case T:
		return quantity.TimeDim{}.Symbol()
	}
	return ""
}

// Knowns maps each supplied variable to its value in SI units.
type Knowns map[Variable]float64

func (k Knowns) has(vars ...Variable) bool {
	for _, v := range vars {
		if _, ok := k[v]; !ok {
			return false
		}
	}
	return true
}

func (k Knowns) s() quantity.Distance     { return quantity.NewDistance(k[S]) }
func (k Knowns) u() quantity.Speed        { return quantity.NewSpeed(k[U]) }
func (k Knowns) v() quantity.Speed        { return quantity.NewSpeed(k[V]) }
func (k Knowns) a() quantity.Acceleration { return quantity.NewAcceleration(k[A]) }
func (k Knowns) t() quantity.Time         { return quantity.NewTime(k[T]) }

// Clone returns an independent copy of k.
func (k Knowns) Clone() Knowns {
	c := make(Knowns, len(k))
	for v, x := range k {
		c[v] = x
	}
	return c
}

// String lists the known values in S, U, V, A, T order.
func (k Knowns) String() string {
	parts := make([]string, 0, len(k))
	for _, v := range allVariables {
		if x, ok := k[v]; ok {
			parts = append(parts, fmt.Sprintf("%s=%g", v, x))
		}
	}
	return strings.Join(parts, " ")
}

// Equation is one rearrangement of the SUVAT equations.
type Equation struct {
	Solves  Variable
	Needs   []Variable
	Formula string
	eval    func(Knowns) float64
}

// Eval applies the equation to k. Missing inputs read as zero.
func (e Equation) Eval(k Knowns) float64 { return e.eval(k) }

// equations is ordered so that for each unknown the linear forms come before
// the radical and quadratic ones.
var equations = []Equation{
	{V, []Variable{U, A, T}, "v = u + a·t", func(k Knowns) float64 {
		return EndSpeedFromUAT(k.u(), k.a(), k.t()).Value()
	}},
	{V, []Variable{S, U, T}, "v = 2s/t − u", func(k Knowns) float64 {
		return EndSpeedFromSUT(k.s(), k.u(), k.t()).Value()
	}},
	{V, []Variable{S, A, T}, "v = s/t + ½a·t", func(k Knowns) float64 {
		return EndSpeedFromSAT(k.s(), k.a(), k.t()).Value()
	}},
	{V, []Variable{S, U, A}, "v = √(u² + 2as)", func(k Knowns) float64 {
		return EndSpeedFromSUA(k.s(), k.u(), k.a()).Value()
	}},
	{U, []Variable{V, A, T}, "u = v − a·t", func(k Knowns) float64 {
		return StartSpeedFromVAT(k.v(), k.a(), k.t()).Value()
	}},
	{U, []Variable{S, V, T}, "u = 2s/t − v", func(k Knowns) float64 {
		return StartSpeedFromSVT(k.s(), k.v(), k.t()).Value()
	}},
	{U, []Variable{S, A, T}, "u = s/t − ½a·t", func(k Knowns) float64 {
		return StartSpeedFromSAT(k.s(), k.a(), k.t()).Value()
	}},
	{U, []Variable{S, V, A}, "u = √(v² − 2as)", func(k Knowns) float64 {
		return StartSpeedFromSVA(k.s(), k.v(), k.a()).Value()
	}},
	{S, []Variable{U, V, T}, "s = ½(u + v)·t", func(k Knowns) float64 {
		return DistanceFromUVT(k.u(), k.v(), k.t()).Value()
	}},
	{S, []Variable{U, A, T}, "s = u·t + ½a·t²", func(k Knowns) float64 {
		return DistanceFromUAT(k.u(), k.a(), k.t()).Value()
	}},
	{S, []Variable{V, A, T}, "s = v·t − ½a·t²", func(k Knowns) float64 {
		return DistanceFromVAT(k.v(), k.a(), k.t()).Value()
	}},
	{S, []Variable{U, V, A}, "s = (v² − u²)/2a", func(k Knowns) float64 {
		return DistanceFromUVA(k.u(), k.v(), k.a()).Value()
	}},
	{A, []Variable{U, V, T}, "a = (v − u)/t", func(k Knowns) float64 {
		return AccelerationFromUVT(k.u(), k.v(), k.t()).Value()
	}},
	{A, []Variable{S, U, V}, "a = (v² − u²)/2s", func(k Knowns) float64 {
		return AccelerationFromSUV(k.s(), k.u(), k.v()).Value()
	}},
	{A, []Variable{S, U, T}, "a = 2s/t² − 2u/t", func(k Knowns) float64 {
		return AccelerationFromSUT(k.s(), k.u(), k.t()).Value()
	}},
	{A, []Variable{S, V, T}, "a = 2(v·t − s)/t²", func(k Knowns) float64 {
		return AccelerationFromSVT(k.s(), k.v(), k.t()).Value()
	}},
	{T, []Variable{S, U, V}, "t = 2s/(u + v)", func(k Knowns) float64 {
		return TimeFromSVU(k.s(), k.v(), k.u()).Value()
	}},
	{T, []Variable{U, V, A}, "t = (v − u)/a", func(k Knowns) float64 {
		return TimeFromVUA(k.v(), k.u(), k.a()).Value()
	}},
	{T, []Variable{S, U, A}, "t = (√(2as + u²) − u)/a", func(k Knowns) float64 {
		return TimeFromASU(k.a(), k.s(), k.u()).Value()
	}},
	{T, []Variable{S, V, A}, "t = (v − √(v² − 2as))/a", func(k Knowns) float64 {
		return TimeFromVAS(k.v(), k.a(), k.s()).Value()
	}},
}

// Equations returns the equation table in selection order.
func Equations() []Equation {
	return append([]Equation(nil), equations...)
}

// Solution is the outcome of solving for one variable.
type Solution struct {
	Variable Variable
	Value    float64
	Equation Equation
}

// Degenerate reports whether the value is NaN or infinite.
func (s Solution) Degenerate() bool {
	return math.IsNaN(s.Value) || math.IsInf(s.Value, 0)
}

func (s Solution) String() string {
	return fmt.Sprintf("%s = %g %s (%s)", s.Variable, s.Value, s.Variable.Unit(), s.Equation.Formula)
}

// SolveError wraps a solver failure with the request that caused it.
type SolveError struct {
	Want    Variable
	Knowns  Knowns
	Wrapped error
}

func (e *SolveError) Error() string {
	return fmt.Sprintf("solve %s from [%s]: %v", e.Want, e.Knowns, e.Wrapped)
}

func (e *SolveError) Unwrap() error {
	return e.Wrapped
}

// Solve computes want from the first equation in table order whose inputs
// are all present in k. Degenerate values are returned as they are.
func Solve(k Knowns, want Variable) (Solution, error) {
	if !want.valid() {
		return Solution{}, &SolveError{Want: want, Knowns: k, Wrapped: ErrUnknownVariable}
	}
	if _, ok := k[want]; ok {
		return Solution{}, &SolveError{Want: want, Knowns: k, Wrapped: ErrAlreadyKnown}
	}
	for _, eq := range equations {
		if eq.Solves != want || !k.has(eq.Needs...) {
			continue
		}
		return Solution{Variable: want, Value: eq.eval(k), Equation: eq}, nil
	}
	return Solution{}, &SolveError{Want: want, Knowns: k, Wrapped: ErrUnderdetermined}
}

// Complete derives every missing variable. Each derived value becomes an
// input for the next, so three knowns are enough to fill all five.
func Complete(k Knowns) (Knowns, []Solution, error) {
	out := k.Clone()
	var solved []Solution
	for {
		progress := false
		for _, v := range allVariables {
			if _, ok := out[v]; ok {
				continue
			}
			sol, err := Solve(out, v)
			if errors.Is(err, ErrUnderdetermined) {
				continue
			}
			if err != nil {
				return nil, nil, err
			}
			out[v] = sol.Value
			solved = append(solved, sol)
			progress = true
		}
		todo := missing(out)
		if len(todo) == 0 {
			return out, solved, nil
		}
		if !progress {
			return out, solved, &SolveError{Want: todo[0], Knowns: k, Wrapped: ErrUnderdetermined}
		}
	}
}

func missing(k Knowns) []Variable {
	var vars []Variable
	for _, v := range allVariables {
		if _, ok := k[v]; !ok {
			vars = append(vars, v)
		}
	}
	return vars
}

// Residual compares one equation's derivation with the supplied value.
type Residual struct {
	Equation Equation
	Given    float64
	Derived  float64
}

// Error is |derived − given|.
func (r Residual) Error() float64 {
	return math.Abs(r.Derived - r.Given)
}

// Check evaluates every equation against a fully specified motion. The
// result is sorted by descending error; NaN errors sort first.
func Check(k Knowns) ([]Residual, error) {
	if !k.has(allVariables...) {
		return nil, fmt.Errorf("%w: missing %v", ErrIncomplete, missing(k))
	}
	res := make([]Residual, 0, len(equations))
	for _, eq := range equations {
		res = append(res, Residual{Equation: eq, Given: k[eq.Solves], Derived: eq.eval(k)})
	}
	sort.SliceStable(res, func(i, j int) bool {
		ei, ej := res[i].Error(), res[j].Error()
		if math.IsNaN(ei) {
			return !math.IsNaN(ej)
		}
		return ei > ej
	})
	return res, nil
}

// Consistent reports whether every residual is within tol.
func Consistent(res []Residual, tol float64) bool {
	for _, r := range res {
		if !(r.Error() <= tol) {
			return false
		}
	}
	return true
}
