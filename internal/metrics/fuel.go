package metrics

import "github.com/san-kum/orbitsim/internal/physics"

// FuelUsed reports total fuel burned across all entities since the
// start of the run.
type FuelUsed struct {
	initial float64
	current float64
	samples int
}

func NewFuelUsed() *FuelUsed {
	return &FuelUsed{}
}

func (f *FuelUsed) Name() string { return "fuel_used" }

func (f *FuelUsed) Observe(state *physics.State, t float64) {
	total := 0.0
	for _, fuel := range state.Fuel() {
		total += fuel
	}
	if f.samples == 0 {
		f.initial = total
	}
	f.current = total
	f.samples++
}

func (f *FuelUsed) Value() float64 {
	if f.samples == 0 {
		return 0
	}
	return f.initial - f.current
}

func (f *FuelUsed) Reset() {
	f.initial = 0
	f.current = 0
	f.samples = 0
}
