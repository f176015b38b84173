package integrators

// Verlet is velocity Verlet.
type Verlet struct{}

func NewVerlet() *Verlet {
	return &Verlet{}
}

func (v *Verlet) Name() string { return "verlet" }

func (v *Verlet) Step(f Field, x State, t, dt float64) State {
	acc := f(x, t).V
	s := x.S + x.V*dt + 0.5*acc*dt*dt

	accNew := f(State{S: s, V: x.V}, t+dt).V
	return State{S: s, V: x.V + 0.5*(acc+accNew)*dt}
}

// Leapfrog is the kick-drift-kick form.
type Leapfrog struct{}

func NewLeapfrog() *Leapfrog {
	return &Leapfrog{}
}

func (l *Leapfrog) Name() string { return "leapfrog" }

func (l *Leapfrog) Step(f Field, x State, t, dt float64) State {
	half := dt * 0.5

	vHalf := x.V + f(x, t).V*half
	s := x.S + vHalf*dt

	return State{S: s, V: vHalf + f(State{S: s, V: vHalf}, t+dt).V*half}
}
