package ode

// RK4 is a classic fourth-order Runge-Kutta stepper. Scratch buffers
// are reused across steps, so one RK4 must not be shared between
// goroutines.
type RK4 struct {
	k1, k2, k3, k4 Vector
	scratch        Vector
}

func NewRK4() *RK4 {
	return &RK4{}
}

func (r *RK4) ensureScratch(n int) {
	if len(r.k1) != n {
		r.k1 = make(Vector, n)
		r.k2 = make(Vector, n)
		r.k3 = make(Vector, n)
		r.k4 = make(Vector, n)
		r.scratch = make(Vector, n)
	}
}

func (r *RK4) Step(sys System, y Vector, t, dt float64) Vector {
	n := len(y)
	r.ensureScratch(n)

	copy(r.k1, sys.Derive(y, t))

	for i := 0; i < n; i++ {
		r.scratch[i] = y[i] + dt*0.5*r.k1[i]
	}
	copy(r.k2, sys.Derive(r.scratch, t+dt*0.5))

	for i := 0; i < n; i++ {
		r.scratch[i] = y[i] + dt*0.5*r.k2[i]
	}
	copy(r.k3, sys.Derive(r.scratch, t+dt*0.5))

	for i := 0; i < n; i++ {
		r.scratch[i] = y[i] + dt*r.k3[i]
	}
	copy(r.k4, sys.Derive(r.scratch, t+dt))

	result := make(Vector, n)
	for i := 0; i < n; i++ {
		result[i] = y[i] + dt/6.0*(r.k1[i]+2*r.k2[i]+2*r.k3[i]+r.k4[i])
	}
	return result
}
