package flight

import (
	"math"
	"testing"

	"github.com/san-kum/orbitsim/internal/ode"
	"github.com/san-kum/orbitsim/internal/physics"
	"github.com/san-kum/orbitsim/internal/schema"
)

func engineeringFixture() schema.EngineeringState {
	var eng schema.EngineeringState
	eng.Components = make([]schema.Component, 10)
	eng.CoolantLoops = make([]schema.CoolantLoop, 3)
	eng.Radiators = make([]schema.Radiator, 4)
	return eng
}

// twoBody is Earth plus a craft in a circular 7000 km orbit.
func twoBody() *schema.PhysicalState {
	const (
		earthMass = 5.972e24
		r         = 7e6
	)
	v := math.Sqrt(GravitationalConstant * earthMass / r)
	return &schema.PhysicalState{
		TimeAcc: 1,
		Entities: []schema.Entity{
			{Name: "Earth", Mass: earthMass, Radius: 6.371e6},
			{Name: "Habitat", Artificial: true, Mass: 275000, X: r, VY: v, Fuel: 1e5},
		},
		Engineering: engineeringFixture(),
	}
}

func stateFor(t *testing.T, snap *schema.PhysicalState) *physics.State {
	t.Helper()
	s, err := physics.FromSnapshot(snap)
	if err != nil {
		t.Fatalf("FromSnapshot failed: %v", err)
	}
	return s
}

func TestDeriveCircularOrbit(t *testing.T) {
	snap := twoBody()
	s := stateFor(t, snap)
	g := NewGravity(s.AsSnapshot())

	dy := g.Derive(s.Vector(), 0)
	if len(dy) != g.Dim() {
		t.Fatalf("derivative has %d slots, want %d", len(dy), g.Dim())
	}

	n := s.Len()
	xLo, _, _ := physics.ColumnBounds(n, physics.FieldX)
	yLo, _, _ := physics.ColumnBounds(n, physics.FieldY)
	vxLo, _, _ := physics.ColumnBounds(n, physics.FieldVX)
	vyLo, _, _ := physics.ColumnBounds(n, physics.FieldVY)

	// Position derivative equals velocity.
	if dy[xLo+1] != 0 || math.Abs(dy[yLo+1]-s.VY()[1]) > 1e-9 {
		t.Errorf("craft position derivative = (%f, %f), want (0, v)", dy[xLo+1], dy[yLo+1])
	}

	// The craft sits on the +x axis, so gravity pulls in -x only.
	wantAccel := GravitationalConstant * snap.Entities[0].Mass / (7e6 * 7e6)
	if math.Abs(dy[vxLo+1]+wantAccel) > wantAccel*1e-6 {
		t.Errorf("craft ax = %e, want %e", dy[vxLo+1], -wantAccel)
	}
	if math.Abs(dy[vyLo+1]) > wantAccel*1e-6 {
		t.Errorf("craft ay = %e, want ~0", dy[vyLo+1])
	}

	// Newton's third law: Earth accelerates the other way, scaled by
	// the mass ratio.
	ratio := snap.Entities[1].Mass / snap.Entities[0].Mass
	if math.Abs(dy[vxLo+0]-wantAccel*ratio) > wantAccel*ratio*1e-6 {
		t.Errorf("earth ax = %e, want %e", dy[vxLo+0], wantAccel*ratio)
	}
}

func TestDeriveThrustAndFuel(t *testing.T) {
	snap := twoBody()
	snap.Entities[1].Throttle = 1
	snap.Entities[1].Heading = math.Pi / 2 // thrust straight +y
	s := stateFor(t, snap)
	g := NewGravity(s.AsSnapshot())

	dy := g.Derive(s.Vector(), 0)
	n := s.Len()
	vyLo, _, _ := physics.ColumnBounds(n, physics.FieldVY)
	fuelLo, _, _ := physics.ColumnBounds(n, physics.FieldFuel)

	wantThrust := DefaultMaxThrust / snap.Entities[1].Mass
	if math.Abs(dy[vyLo+1]-wantThrust) > wantThrust*1e-6 {
		t.Errorf("thrust ay = %f, want %f", dy[vyLo+1], wantThrust)
	}
	if dy[fuelLo+1] != -DefaultFuelRate {
		t.Errorf("fuel rate = %f, want %f", dy[fuelLo+1], -DefaultFuelRate)
	}

	// No fuel, no thrust, no drain.
	snap2 := twoBody()
	snap2.Entities[1].Throttle = 1
	snap2.Entities[1].Fuel = 0
	s2 := stateFor(t, snap2)
	dy2 := NewGravity(s2.AsSnapshot()).Derive(s2.Vector(), 0)
	if dy2[fuelLo+1] != 0 {
		t.Errorf("empty tank still drains: %f", dy2[fuelLo+1])
	}
}

func TestDeriveLandedFrozen(t *testing.T) {
	snap := twoBody()
	snap.Entities[1].LandedOn = "Earth"
	s := stateFor(t, snap)
	g := NewGravity(s.AsSnapshot())

	dy := g.Derive(s.Vector(), 0)
	n := s.Len()
	for _, field := range []string{
		physics.FieldX, physics.FieldY, physics.FieldVX,
		physics.FieldVY, physics.FieldHeading, physics.FieldFuel,
	} {
		lo, _, _ := physics.ColumnBounds(n, field)
		if dy[lo+1] != 0 {
			t.Errorf("landed craft has nonzero %s derivative: %f", field, dy[lo+1])
		}
	}
}

func TestEnergyRoughlyConservedRK4(t *testing.T) {
	s := stateFor(t, twoBody())
	g := NewGravity(s.AsSnapshot())
	integ := ode.NewRK4()

	e0 := g.Energy(s)
	y := ode.Vector(s.Vector())
	tm := 0.0
	const dt = 1.0
	for i := 0; i < 600; i++ {
		y = integ.Step(g, y, tm, dt)
		tm += dt
		s = s.Rewrap(y)
	}

	drift := math.Abs((g.Energy(s) - e0) / e0)
	if drift > 1e-8 {
		t.Errorf("relative energy drift after 600 s = %e", drift)
	}
}

func TestDeriveLeavesEngineeringAndScalarsZero(t *testing.T) {
	s := stateFor(t, twoBody())
	g := NewGravity(s.AsSnapshot())

	dy := g.Derive(s.Vector(), 0)
	start := s.Len() * len(physics.MutableFields)
	for i := start; i < len(dy); i++ {
		if dy[i] != 0 {
			t.Fatalf("slot %d past the entity block has derivative %f", i, dy[i])
		}
	}
}
