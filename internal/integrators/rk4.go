package integrators

type RK4 struct{}

func NewRK4() *RK4 {
	return &RK4{}
}

func (r *RK4) Name() string { return "rk4" }

func (r *RK4) Step(f Field, x State, t, dt float64) State {
	half := dt * 0.5

	k1 := f(x, t)
	k2 := f(x.add(k1, half), t+half)
	k3 := f(x.add(k2, half), t+half)
	k4 := f(x.add(k3, dt), t+dt)

	dt6 := dt / 6.0
	return State{
		S: x.S + dt6*(k1.S+2*k2.S+2*k3.S+k4.S),
		V: x.V + dt6*(k1.V+2*k2.V+2*k3.V+k4.V),
	}
}
