// Package ode provides the numerical integration boundary. The
// integrator only sees an undifferentiated vector of floats; the
// physics container produces and reabsorbs that vector around every
// step.
package ode

import "math"

// Vector is a flat system state as seen by the integrator.
type Vector []float64

func (v Vector) Clone() Vector {
	c := make(Vector, len(v))
	copy(c, v)
	return c
}

func (v Vector) IsValid() bool {
	for _, x := range v {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}
	return true
}

func (v Vector) Norm() float64 {
	sum := 0.0
	for _, x := range v {
		sum += x * x
	}
	return math.Sqrt(sum)
}

// System is the right-hand side of dY/dt = f(Y, t).
type System interface {
	Derive(y Vector, t float64) Vector
	Dim() int
}

// Integrator advances a system state by one timestep.
type Integrator interface {
	Step(sys System, y Vector, t, dt float64) Vector
}
