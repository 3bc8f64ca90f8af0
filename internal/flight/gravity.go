// Package flight implements the orbital right-hand side evaluated by
// the integrator: pairwise point-mass gravity plus craft thrust, fuel
// drain, and heading change, all expressed over the physics
// container's column layout.
package flight

import (
	"math"

	"github.com/san-kum/orbitsim/internal/ode"
	"github.com/san-kum/orbitsim/internal/physics"
	"github.com/san-kum/orbitsim/internal/schema"
)

// Default parameters in SI units.
const (
	GravitationalConstant = 6.674e-11
	DefaultMaxThrust      = 4.375e6 // N, at full throttle
	DefaultFuelRate       = 16.0    // kg/s, at full throttle
	Softening             = 1e-6    // m, avoids the r=0 singularity
)

// Gravity is the dY/dt function for the whole system. Each evaluation
// rewraps the raw vector in a container over the retained snapshot
// (the hot construction path), then reads whole columns at a time.
type Gravity struct {
	snap *schema.PhysicalState
	dim  int

	G         float64
	MaxThrust float64
	FuelRate  float64

	masses     []float64
	artificial []bool
	scratch    *ode.VectorPool
}

// NewGravity builds the flight model over the same snapshot the
// container was built from. The snapshot's entity set must stay fixed
// for the model's lifetime.
func NewGravity(snap *schema.PhysicalState) *Gravity {
	n := len(snap.Entities)
	g := &Gravity{
		snap:       snap,
		dim:        physics.BufferLen(n),
		G:          GravitationalConstant,
		MaxThrust:  DefaultMaxThrust,
		FuelRate:   DefaultFuelRate,
		masses:     make([]float64, n),
		artificial: make([]bool, n),
		scratch:    ode.NewVectorPool(n),
	}
	for i, e := range snap.Entities {
		g.masses[i] = e.Mass
		g.artificial[i] = e.Artificial
	}
	return g
}

func (g *Gravity) Dim() int { return g.dim }

func (g *Gravity) Derive(y ode.Vector, t float64) ode.Vector {
	s := physics.FromVector(y, g.snap)
	n := s.Len()
	dy := make(ode.Vector, len(y))

	ax := g.scratch.Get()
	ay := g.scratch.Get()
	defer g.scratch.Put(ax)
	defer g.scratch.Put(ay)
	g.accelerations(s, ax, ay)

	landed := s.LandedOn()

	xLo, _, _ := physics.ColumnBounds(n, physics.FieldX)
	yLo, _, _ := physics.ColumnBounds(n, physics.FieldY)
	vxLo, _, _ := physics.ColumnBounds(n, physics.FieldVX)
	vyLo, _, _ := physics.ColumnBounds(n, physics.FieldVY)
	hdgLo, _, _ := physics.ColumnBounds(n, physics.FieldHeading)
	fuelLo, _, _ := physics.ColumnBounds(n, physics.FieldFuel)

	vx, vy := s.VX(), s.VY()
	spin := s.Spin()
	fuel := s.Fuel()
	throttle := s.Throttle()

	for i := 0; i < n; i++ {
		// A landed entity moves with (and is integrated as part of)
		// whatever it rests on; freeze its own derivatives.
		if _, ok := landed[i]; ok {
			continue
		}
		dy[xLo+i] = vx[i]
		dy[yLo+i] = vy[i]
		dy[vxLo+i] = ax[i]
		dy[vyLo+i] = ay[i]
		dy[hdgLo+i] = spin[i]
		if g.artificial[i] && fuel[i] > 0 {
			dy[fuelLo+i] = -g.FuelRate * math.Abs(throttle[i])
		}
	}

	// landed_on, broken, the singular scalars and the engineering block
	// have no continuous dynamics; their derivative stays zero.
	return dy
}

// Energy is the total mechanical energy of the system: kinetic plus
// pairwise gravitational potential. Conserved (up to integrator error)
// while no thrust is applied, which makes it a good drift gauge.
func (g *Gravity) Energy(s *physics.State) float64 {
	n := s.Len()
	xs, ys := s.X(), s.Y()
	vx, vy := s.VX(), s.VY()

	ke := 0.0
	pe := 0.0
	for i := 0; i < n; i++ {
		ke += 0.5 * g.masses[i] * (vx[i]*vx[i] + vy[i]*vy[i])
		for j := i + 1; j < n; j++ {
			rx := xs[j] - xs[i]
			ry := ys[j] - ys[i]
			r := math.Sqrt(rx*rx + ry*ry + Softening)
			pe -= g.G * g.masses[i] * g.masses[j] / r
		}
	}
	return ke + pe
}

// accelerations fills ax/ay with gravity plus thrust for every entity.
func (g *Gravity) accelerations(s *physics.State, ax, ay []float64) {
	n := s.Len()
	xs, ys := s.X(), s.Y()
	heading := s.Heading()
	throttle := s.Throttle()
	fuel := s.Fuel()

	for i := 0; i < n; i++ {
		xi, yi := xs[i], ys[i]

		for j := i + 1; j < n; j++ {
			rx := xs[j] - xi
			ry := ys[j] - yi
			r2 := rx*rx + ry*ry + Softening
			rInv := 1.0 / math.Sqrt(r2)
			r3Inv := rInv * rInv * rInv

			fij := g.G * g.masses[j] * r3Inv
			ax[i] += fij * rx
			ay[i] += fij * ry

			fji := g.G * g.masses[i] * r3Inv
			ax[j] -= fji * rx
			ay[j] -= fji * ry
		}

		if g.artificial[i] && fuel[i] > 0 && g.masses[i] > 0 {
			accel := throttle[i] * g.MaxThrust / g.masses[i]
			ax[i] += accel * math.Cos(heading[i])
			ay[i] += accel * math.Sin(heading[i])
		}
	}
}
