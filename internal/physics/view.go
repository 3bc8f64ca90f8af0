package physics

import (
	"github.com/san-kum/orbitsim/internal/names"
	"github.com/san-kum/orbitsim/internal/schema"
)

// entityView aliases one row of a parent State. Every mutable-field
// access is direct arithmetic into the parent's flat buffer, so views
// are free to create and mutations are visible through every other
// view of the same row immediately. A view is only valid while its
// parent's buffer is current: once the container is replaced for the
// next step, drop the view.
//
// Flight code reads entity fields many times per step at high time
// acceleration, so accessors never materialize a full record.
type entityView struct {
	parent *State
	row    int
}

var _ Entity = (*entityView)(nil)

// mutable addresses column col of this view's row.
func (v *entityView) mutable(col int) *float64 {
	return &v.parent.y[v.parent.n*col+v.row]
}

// record points into the parent's retained snapshot, which holds the
// unchanging fields.
func (v *entityView) record() *schema.Entity {
	return &v.parent.snap.Entities[v.row]
}

func (v *entityView) Name() string                 { return v.record().Name }
func (v *entityView) Mass() float64                { return v.record().Mass }
func (v *entityView) Radius() float64              { return v.record().Radius }
func (v *entityView) Artificial() bool             { return v.record().Artificial }
func (v *entityView) AtmosphereThickness() float64 { return v.record().AtmosphereThickness }
func (v *entityView) AtmosphereScaling() float64   { return v.record().AtmosphereScaling }

func (v *entityView) X() float64          { return *v.mutable(colX) }
func (v *entityView) SetX(val float64)    { *v.mutable(colX) = val }
func (v *entityView) Y() float64          { return *v.mutable(colY) }
func (v *entityView) SetY(val float64)    { *v.mutable(colY) = val }
func (v *entityView) VX() float64         { return *v.mutable(colVX) }
func (v *entityView) SetVX(val float64)   { *v.mutable(colVX) = val }
func (v *entityView) VY() float64         { return *v.mutable(colVY) }
func (v *entityView) SetVY(val float64)   { *v.mutable(colVY) = val }
func (v *entityView) Heading() float64    { return *v.mutable(colHeading) }
func (v *entityView) SetHeading(val float64) { *v.mutable(colHeading) = val }
func (v *entityView) Spin() float64       { return *v.mutable(colSpin) }
func (v *entityView) SetSpin(val float64) { *v.mutable(colSpin) = val }
func (v *entityView) Fuel() float64       { return *v.mutable(colFuel) }
func (v *entityView) SetFuel(val float64) { *v.mutable(colFuel) = val }
func (v *entityView) Throttle() float64   { return *v.mutable(colThrottle) }
func (v *entityView) SetThrottle(val float64) { *v.mutable(colThrottle) = val }

func (v *entityView) Broken() bool { return *v.mutable(colBroken) != 0 }
func (v *entityView) SetBroken(val bool) {
	*v.mutable(colBroken) = boolToFloat(val)
}

// LandedOn translates the float-encoded entity index stored in the
// buffer back into a name through the parent's name table.
func (v *entityView) LandedOn() string {
	return v.parent.indexToName(int(*v.mutable(colLandedOn)))
}

// SetLandedOn stores the index of the named entity. An unknown name
// fails with ErrNoEntity; the empty string clears the reference.
func (v *entityView) SetLandedOn(name string) error {
	index, err := v.parent.nameToIndex(name)
	if err != nil {
		return err
	}
	*v.mutable(colLandedOn) = float64(index)
	return nil
}

func (v *entityView) Pos() (float64, float64) { return v.X(), v.Y() }
func (v *entityView) SetPos(x, y float64)     { v.SetX(x); v.SetY(y) }
func (v *entityView) Vel() (float64, float64) { return v.VX(), v.VY() }
func (v *entityView) SetVel(vx, vy float64)   { v.SetVX(vx); v.SetVY(vy) }

func (v *entityView) Landed() bool {
	return int(*v.mutable(colLandedOn)) != NoIndex
}

func (v *entityView) Dockable() bool { return v.Name() == names.AYSE }

func boolToFloat(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
