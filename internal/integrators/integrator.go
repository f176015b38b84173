// Package integrators steps one-dimensional motion numerically so the
// closed-form SUVAT results can be compared against the schemes a game loop
// or physics engine would use.
package integrators

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownIntegrator indicates a name missing from the registry.
var ErrUnknownIntegrator = errors.New("integrators: unknown integrator")

// State is position and velocity along one axis.
type State struct {
	S, V float64
}

func (x State) add(d State, h float64) State {
	return State{S: x.S + h*d.S, V: x.V + h*d.V}
}

// Field returns dS/dt and dV/dt at (x, t).
type Field func(x State, t float64) State

// ConstantAcceleration is the field ds/dt = v, dv/dt = a.
func ConstantAcceleration(a float64) Field {
	return func(x State, _ float64) State {
		return State{S: x.V, V: a}
	}
}

type Integrator interface {
	Name() string
	Step(f Field, x State, t, dt float64) State
}

var registry = map[string]func() Integrator{
	"euler":    func() Integrator { return NewEuler() },
	"verlet":   func() Integrator { return NewVerlet() },
	"leapfrog": func() Integrator { return NewLeapfrog() },
	"rk4":      func() Integrator { return NewRK4() },
}

// Get returns a new integrator by name.
func Get(name string) (Integrator, error) {
	mk, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s (available: %v)", ErrUnknownIntegrator, name, Names())
	}
	return mk(), nil
}

// Names lists the registered integrators in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
