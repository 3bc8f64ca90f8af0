// Package metrics accumulates scalar diagnostics over a run.
package metrics

import (
	"math"

	"github.com/san-kum/orbitsim/internal/flight"
	"github.com/san-kum/orbitsim/internal/physics"
)

// EnergyDrift tracks the maximum relative deviation of the system's
// mechanical energy from its value at the start of the run.
type EnergyDrift struct {
	model   *flight.Gravity
	initial float64
	max     float64
	samples int
}

func NewEnergyDrift(model *flight.Gravity) *EnergyDrift {
	return &EnergyDrift{model: model}
}

func (e *EnergyDrift) Name() string { return "energy_drift" }

func (e *EnergyDrift) Observe(state *physics.State, t float64) {
	energy := e.model.Energy(state)
	if e.samples == 0 {
		e.initial = energy
	}
	e.samples++

	if e.initial != 0 {
		drift := math.Abs(energy-e.initial) / math.Abs(e.initial)
		e.max = math.Max(e.max, drift)
	}
}

func (e *EnergyDrift) Value() float64 { return e.max }

func (e *EnergyDrift) Reset() {
	e.initial = 0
	e.max = 0
	e.samples = 0
}
