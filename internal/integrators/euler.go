package integrators

// Euler is the explicit first-order scheme. Under constant acceleration its
// position lags the exact value by ½·a·t·dt.
type Euler struct{}

func NewEuler() *Euler {
	return &Euler{}
}

func (e *Euler) Name() string { return "euler" }

func (e *Euler) Step(f Field, x State, t, dt float64) State {
	return x.add(f(x, t), dt)
}
