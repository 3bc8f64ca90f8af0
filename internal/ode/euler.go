package ode

type Euler struct{}

func NewEuler() *Euler {
	return &Euler{}
}

func (e *Euler) Step(sys System, y Vector, t, dt float64) Vector {
	dy := sys.Derive(y, t)
	result := make(Vector, len(y))
	for i := range y {
		result[i] = y[i] + dt*dy[i]
	}
	return result
}
