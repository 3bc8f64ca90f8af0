package physics

import (
	"github.com/san-kum/orbitsim/internal/names"
	"github.com/san-kum/orbitsim/internal/schema"
)

// Entity is the uniform field surface over one simulated body or
// craft. Two realizations exist: Record, a standalone wrapper around a
// schema.Entity for scratch copies, and the buffer-aliasing view
// returned by State.EntityAt / State.EntityByName.
//
// SetLandedOn is the only setter that can fail: on a buffer-backed
// view the name must resolve through the parent's name table.
type Entity interface {
	// Unchanging fields.
	Name() string
	Mass() float64
	Radius() float64
	Artificial() bool
	AtmosphereThickness() float64
	AtmosphereScaling() float64

	// Mutable fields.
	X() float64
	SetX(float64)
	Y() float64
	SetY(float64)
	VX() float64
	SetVX(float64)
	VY() float64
	SetVY(float64)
	Heading() float64
	SetHeading(float64)
	Spin() float64
	SetSpin(float64)
	Fuel() float64
	SetFuel(float64)
	Throttle() float64
	SetThrottle(float64)
	LandedOn() string
	SetLandedOn(string) error
	Broken() bool
	SetBroken(bool)

	// Paired accessors.
	Pos() (x, y float64)
	SetPos(x, y float64)
	Vel() (vx, vy float64)
	SetVel(vx, vy float64)

	// Derived predicates.
	Landed() bool
	Dockable() bool
}

// Record wraps a standalone schema.Entity. Use it for transient
// entities that are not backed by any container buffer.
type Record struct {
	E *schema.Entity
}

// NewRecord wraps e. The record aliases e, it does not copy.
func NewRecord(e *schema.Entity) *Record {
	return &Record{E: e}
}

func (r *Record) Name() string                 { return r.E.Name }
func (r *Record) Mass() float64                { return r.E.Mass }
func (r *Record) Radius() float64              { return r.E.Radius }
func (r *Record) Artificial() bool             { return r.E.Artificial }
func (r *Record) AtmosphereThickness() float64 { return r.E.AtmosphereThickness }
func (r *Record) AtmosphereScaling() float64   { return r.E.AtmosphereScaling }

func (r *Record) X() float64         { return r.E.X }
func (r *Record) SetX(v float64)     { r.E.X = v }
func (r *Record) Y() float64         { return r.E.Y }
func (r *Record) SetY(v float64)     { r.E.Y = v }
func (r *Record) VX() float64        { return r.E.VX }
func (r *Record) SetVX(v float64)    { r.E.VX = v }
func (r *Record) VY() float64        { return r.E.VY }
func (r *Record) SetVY(v float64)    { r.E.VY = v }
func (r *Record) Heading() float64   { return r.E.Heading }
func (r *Record) SetHeading(v float64) { r.E.Heading = v }
func (r *Record) Spin() float64      { return r.E.Spin }
func (r *Record) SetSpin(v float64)  { r.E.Spin = v }
func (r *Record) Fuel() float64      { return r.E.Fuel }
func (r *Record) SetFuel(v float64)  { r.E.Fuel = v }
func (r *Record) Throttle() float64  { return r.E.Throttle }
func (r *Record) SetThrottle(v float64) { r.E.Throttle = v }
func (r *Record) Broken() bool       { return r.E.Broken }
func (r *Record) SetBroken(v bool)   { r.E.Broken = v }

func (r *Record) LandedOn() string { return r.E.LandedOn }

// SetLandedOn never fails on a Record: with no name table there is
// nothing to validate against.
func (r *Record) SetLandedOn(name string) error {
	r.E.LandedOn = name
	return nil
}

func (r *Record) Pos() (float64, float64) { return r.E.X, r.E.Y }
func (r *Record) SetPos(x, y float64)     { r.E.X, r.E.Y = x, y }
func (r *Record) Vel() (float64, float64) { return r.E.VX, r.E.VY }
func (r *Record) SetVel(vx, vy float64)   { r.E.VX, r.E.VY = vx, vy }

func (r *Record) Landed() bool   { return r.E.LandedOn != "" }
func (r *Record) Dockable() bool { return r.E.Name == names.AYSE }
