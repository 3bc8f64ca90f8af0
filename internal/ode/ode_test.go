package ode

import (
	"math"
	"testing"
)

// harmonic is a unit harmonic oscillator: y = [x, v], x'' = -x.
type harmonic struct{}

func (harmonic) Derive(y Vector, t float64) Vector {
	return Vector{y[1], -y[0]}
}

func (harmonic) Dim() int { return 2 }

func TestVectorClone(t *testing.T) {
	v := Vector{1, 2, 3}
	c := v.Clone()
	c[0] = 99
	if v[0] != 1 {
		t.Error("Clone shares backing array")
	}
}

func TestVectorIsValid(t *testing.T) {
	tests := []struct {
		name string
		v    Vector
		want bool
	}{
		{"finite", Vector{1, -2, 0}, true},
		{"empty", Vector{}, true},
		{"nan", Vector{1, math.NaN()}, false},
		{"inf", Vector{math.Inf(1), 0}, false},
		{"neg inf", Vector{0, math.Inf(-1)}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.IsValid(); got != tt.want {
				t.Errorf("IsValid() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestVectorNorm(t *testing.T) {
	v := Vector{3, 4}
	if got := v.Norm(); math.Abs(got-5) > 1e-12 {
		t.Errorf("Norm() = %f, want 5", got)
	}
}

func integrate(t *testing.T, integ Integrator, dt float64, steps int) Vector {
	t.Helper()
	y := Vector{1, 0}
	tt := 0.0
	for i := 0; i < steps; i++ {
		y = integ.Step(harmonic{}, y, tt, dt)
		tt += dt
	}
	return y
}

func TestEulerOscillator(t *testing.T) {
	// One period of the oscillator. Euler is first order; expect rough
	// agreement only.
	dt := 1e-4
	steps := int(2 * math.Pi / dt)
	y := integrate(t, NewEuler(), dt, steps)

	if math.Abs(y[0]-1) > 1e-2 {
		t.Errorf("x after one period = %f, want ~1", y[0])
	}
	if math.Abs(y[1]) > 1e-2 {
		t.Errorf("v after one period = %f, want ~0", y[1])
	}
}

func TestRK4Oscillator(t *testing.T) {
	dt := 1e-2
	steps := int(2 * math.Pi / dt)
	y := integrate(t, NewRK4(), dt, steps)

	// RK4 at this step size should hold the solution to well under 1e-4
	// even with the period truncated to a whole number of steps.
	drift := math.Hypot(y[0]-math.Cos(float64(steps)*dt), y[1]+math.Sin(float64(steps)*dt))
	if drift > 1e-6 {
		t.Errorf("rk4 drift after one period = %e", drift)
	}
}

func TestRK4MoreAccurateThanEuler(t *testing.T) {
	dt := 1e-2
	steps := 100
	exactX := math.Cos(float64(steps) * dt)

	euler := integrate(t, NewEuler(), dt, steps)
	rk4 := integrate(t, NewRK4(), dt, steps)

	if math.Abs(rk4[0]-exactX) >= math.Abs(euler[0]-exactX) {
		t.Errorf("rk4 error %e not better than euler error %e",
			math.Abs(rk4[0]-exactX), math.Abs(euler[0]-exactX))
	}
}

func TestStepDoesNotMutateInput(t *testing.T) {
	y := Vector{1, 0}
	before := y.Clone()

	for _, integ := range []Integrator{NewEuler(), NewRK4()} {
		_ = integ.Step(harmonic{}, y, 0, 0.1)
		for i := range y {
			if y[i] != before[i] {
				t.Fatalf("%T mutated its input vector", integ)
			}
		}
	}
}

func TestVectorPool(t *testing.T) {
	p := NewVectorPool(4)

	v := p.Get()
	if len(v) != 4 {
		t.Fatalf("Get returned %d-slot vector, want 4", len(v))
	}
	v[0] = 7
	p.Put(v)

	reused := p.Get()
	for i, x := range reused {
		if x != 0 {
			t.Errorf("slot %d not zeroed on reuse: %f", i, x)
		}
	}

	// Wrong-size vectors are dropped, not recycled.
	p.Put(make(Vector, 3))

	src := Vector{1, 2, 3, 4}
	c := p.GetAndCopy(src)
	c[0] = 99
	if src[0] != 1 {
		t.Error("GetAndCopy aliases its source")
	}
}
