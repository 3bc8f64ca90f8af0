// Package physics holds the dual-representation state container at the
// heart of the simulator. One side is the structured snapshot (named
// entities with typed fields, engineering subsystems, global flags);
// the other is a single flat []float64 the ODE integrator consumes.
// The container bridges the two losslessly: O(1) field access through
// aliasing views, O(1) whole-column access for bulk math, and an exact
// structured round trip at the end.
//
// Buffer layout, fixed for the lifetime of one container:
//
//	[entity columns | srb_time, time_acc | engineering block]
//
// The entity block is column-major: column f for entity i lives at
// y[n*f+i], so a whole field across all entities is one contiguous
// slice. Containers are rebuilt once per integration step (the cheap
// FromVector path) and are not safe for concurrent mutation. Views
// become invalid once their parent container is replaced.
package physics

import (
	"fmt"
	"math"

	"github.com/san-kum/orbitsim/internal/names"
	"github.com/san-kum/orbitsim/internal/schema"
)

// State owns the flat buffer and the retained structured snapshot.
type State struct {
	y    []float64
	snap *schema.PhysicalState
	n    int

	// entityNames is immutable for the container's lifetime. The
	// float-encoded landed_on indices in the buffer are only meaningful
	// relative to this exact ordered list.
	entityNames []string

	eng *EngineeringState

	// Lazily computed from unchanging fields, nil until first use.
	atmospheres []int
}

// FromSnapshot deep-builds a container and a fresh buffer from a
// structured snapshot. This is the cold path, O(entities * fields);
// once the first buffer exists, prefer FromVector between steps.
//
// An unresolvable landed_on reference in the snapshot fails with
// ErrNoEntity.
func FromSnapshot(snap *schema.PhysicalState) (*State, error) {
	s := &State{
		snap: snap.DeepCopy(),
		n:    len(snap.Entities),
	}
	s.entityNames = make([]string, s.n)
	for i, e := range s.snap.Entities {
		s.entityNames[i] = e.Name
	}

	s.y = make([]float64, BufferLen(s.n))
	for i, e := range s.snap.Entities {
		landedOn, err := s.nameToIndex(e.LandedOn)
		if err != nil {
			return nil, fmt.Errorf("entity %q: %w", e.Name, err)
		}
		s.column(colX)[i] = e.X
		s.column(colY)[i] = e.Y
		s.column(colVX)[i] = e.VX
		s.column(colVY)[i] = e.VY
		s.column(colHeading)[i] = e.Heading
		s.column(colSpin)[i] = e.Spin
		s.column(colFuel)[i] = e.Fuel
		s.column(colThrottle)[i] = e.Throttle
		s.column(colLandedOn)[i] = float64(landedOn)
		s.column(colBroken)[i] = boolToFloat(e.Broken)
	}

	s.y[s.srbTimeIndex()] = s.snap.SrbTime
	s.y[s.timeAccIndex()] = s.snap.TimeAcc

	s.eng = newEngineeringState(
		s.y[len(s.y)-NumEngineeringFields:], &s.snap.Engineering, true)

	s.normalizeHeadings()
	return s, nil
}

// FromVector wraps a buffer produced by the integrator. This is the
// hot path: the buffer is retained as-is and the snapshot is aliased,
// not copied, so construction is O(1). The snapshot must describe the
// identical ordered entity set the buffer was originally built over;
// a length mismatch is a fatal layout violation and panics.
func FromVector(y []float64, snap *schema.PhysicalState) *State {
	n := len(snap.Entities)
	if len(y) != BufferLen(n) {
		panic(fmt.Sprintf("physics: buffer has %d slots, want %d for %d entities",
			len(y), BufferLen(n), n))
	}

	s := &State{y: y, snap: snap, n: n}
	s.entityNames = make([]string, n)
	for i, e := range snap.Entities {
		s.entityNames[i] = e.Name
	}

	// Singular scalars follow the buffer, which is authoritative here.
	s.snap.SrbTime = y[s.srbTimeIndex()]
	s.snap.TimeAcc = y[s.timeAccIndex()]

	s.eng = newEngineeringState(
		s.y[len(s.y)-NumEngineeringFields:], &s.snap.Engineering, false)

	s.normalizeHeadings()
	return s
}

// Rewrap is the per-step reconstruction: a new container over a new
// buffer, sharing this container's retained snapshot and name table.
// The old container and every view into it are dead afterwards.
func (s *State) Rewrap(y []float64) *State {
	return FromVector(y, s.snap)
}

func (s *State) srbTimeIndex() int { return s.n * numMutableFields }
func (s *State) timeAccIndex() int { return s.n*numMutableFields + 1 }

// normalizeHeadings wraps every heading into [0, 2pi).
func (s *State) normalizeHeadings() {
	headings := s.column(colHeading)
	for i, h := range headings {
		wrapped := math.Mod(h, 2*math.Pi)
		if wrapped < 0 {
			wrapped += 2 * math.Pi
		}
		headings[i] = wrapped
	}
}

// column returns the contiguous buffer slice for one mutable field.
func (s *State) column(col int) []float64 {
	return s.y[col*s.n : (col+1)*s.n]
}

// indexToName translates a row index to an entity name; NoIndex maps
// to the empty string.
func (s *State) indexToName(index int) string {
	if index == NoIndex {
		return ""
	}
	return s.entityNames[index]
}

// nameToIndex translates an entity name to its row index; the empty
// string maps to NoIndex. Unknown names fail with ErrNoEntity.
func (s *State) nameToIndex(name string) (int, error) {
	if name == "" {
		return NoIndex, nil
	}
	// Linear scan: the table is small and fixed per instance.
	if index := names.Index(s.entityNames, name); index != -1 {
		return index, nil
	}
	return 0, noEntity(name)
}

// Len returns the number of entities.
func (s *State) Len() int { return s.n }

// EntityNames returns the immutable ordered name table.
func (s *State) EntityNames() []string { return s.entityNames }

// Vector returns the flat buffer, suitable as the y-vector input of an
// ODE integration step. The returned slice aliases the container.
func (s *State) Vector() []float64 { return s.y }

// EntityAt returns the buffer-aliasing view over one row.
func (s *State) EntityAt(index int) (Entity, error) {
	if index < 0 || index >= s.n {
		return nil, indexRange("entity", index, s.n)
	}
	return &entityView{parent: s, row: index}, nil
}

// EntityByName returns the buffer-aliasing view for a named entity.
func (s *State) EntityByName(name string) (Entity, error) {
	index, err := s.nameToIndex(name)
	if err != nil || index == NoIndex {
		return nil, noEntity(name)
	}
	return &entityView{parent: s, row: index}, nil
}

// Entities returns views over every row, in table order.
func (s *State) Entities() []Entity {
	views := make([]Entity, s.n)
	for i := range views {
		views[i] = &entityView{parent: s, row: i}
	}
	return views
}

// SetEntity overwrites one row's mutable fields from src. When src is
// already a view over this row of this container the data is already
// in place and the call is a no-op.
func (s *State) SetEntity(index int, src Entity) error {
	if index < 0 || index >= s.n {
		return indexRange("entity", index, s.n)
	}
	if view, ok := src.(*entityView); ok && view.parent == s && view.row == index {
		return nil
	}

	dst := &entityView{parent: s, row: index}
	dst.SetX(src.X())
	dst.SetY(src.Y())
	dst.SetVX(src.VX())
	dst.SetVY(src.VY())
	dst.SetHeading(src.Heading())
	dst.SetSpin(src.Spin())
	dst.SetFuel(src.Fuel())
	dst.SetThrottle(src.Throttle())
	dst.SetBroken(src.Broken())
	return dst.SetLandedOn(src.LandedOn())
}

// SetEntityByName overwrites a named entity's mutable fields from src.
func (s *State) SetEntityByName(name string, src Entity) error {
	index, err := s.nameToIndex(name)
	if err != nil || index == NoIndex {
		return noEntity(name)
	}
	return s.SetEntity(index, src)
}

// Column returns the buffer slice for a mutable field by name.
// Mutations through the slice propagate to every view.
func (s *State) Column(field string) ([]float64, error) {
	col, ok := fieldColumn[field]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNoSuchField, field)
	}
	return s.column(col), nil
}

// Typed column accessors over the underlying buffer.
func (s *State) X() []float64        { return s.column(colX) }
func (s *State) Y() []float64        { return s.column(colY) }
func (s *State) VX() []float64       { return s.column(colVX) }
func (s *State) VY() []float64       { return s.column(colVY) }
func (s *State) Heading() []float64  { return s.column(colHeading) }
func (s *State) Spin() []float64     { return s.column(colSpin) }
func (s *State) Fuel() []float64     { return s.column(colFuel) }
func (s *State) Throttle() []float64 { return s.column(colThrottle) }

// Broken exposes the broken flags as their numeric column; nonzero
// means broken.
func (s *State) Broken() []float64 { return s.column(colBroken) }

// LandedOn maps, for every row currently landed on something, the row
// index of what it is landed on.
func (s *State) LandedOn() map[int]int {
	landed := make(map[int]int)
	for i, ref := range s.column(colLandedOn) {
		if int(ref) != NoIndex {
			landed[i] = int(ref)
		}
	}
	return landed
}

// SrbTime is the accumulated solid rocket booster burn timer.
func (s *State) SrbTime() float64 { return s.snap.SrbTime }

func (s *State) SetSrbTime(v float64) {
	s.snap.SrbTime = v
	s.y[s.srbTimeIndex()] = v
}

// TimeAcc is the current time acceleration factor, e.g. 1x or 50x.
func (s *State) TimeAcc() float64 { return s.snap.TimeAcc }

func (s *State) SetTimeAcc(v float64) {
	s.snap.TimeAcc = v
	s.y[s.timeAccIndex()] = v
}

// Snapshot-backed scalars; these never enter the buffer.
func (s *State) Timestamp() float64           { return s.snap.Timestamp }
func (s *State) SetTimestamp(v float64)       { s.snap.Timestamp = v }
func (s *State) ParachuteDeployed() bool      { return s.snap.ParachuteDeployed }
func (s *State) SetParachuteDeployed(v bool)  { s.snap.ParachuteDeployed = v }
func (s *State) Reference() string            { return s.snap.Reference }
func (s *State) SetReference(name string)     { s.snap.Reference = name }
func (s *State) Target() string               { return s.snap.Target }
func (s *State) SetTarget(name string)        { s.snap.Target = name }
func (s *State) Navmode() schema.Navmode      { return s.snap.Navmode }
func (s *State) SetNavmode(n schema.Navmode)  { s.snap.Navmode = n }

// Craft resolves the currently controlled craft. When the Habitat is
// docked with AYSE, AYSE is the active craft. Returns the empty string
// if no craft is present.
func (s *State) Craft() string {
	hab := names.Index(s.entityNames, names.Habitat)
	ayse := names.Index(s.entityNames, names.AYSE)
	switch {
	case hab == -1 && ayse == -1:
		return ""
	case ayse == -1:
		return names.Habitat
	case hab == -1:
		return names.AYSE
	case int(s.column(colLandedOn)[hab]) == ayse:
		return names.AYSE
	default:
		return names.Habitat
	}
}

// CraftEntity returns the view for the currently controlled craft.
func (s *State) CraftEntity() (Entity, error) {
	return s.EntityByName(s.Craft())
}

// ReferenceEntity returns the view for the current reference body.
func (s *State) ReferenceEntity() (Entity, error) {
	return s.EntityByName(s.snap.Reference)
}

// TargetEntity returns the view for the current target.
func (s *State) TargetEntity() (Entity, error) {
	return s.EntityByName(s.snap.Target)
}

// Atmospheres returns the row indices of entities with an atmosphere.
// Derived purely from unchanging fields, so it is computed once per
// container and cached.
func (s *State) Atmospheres() []int {
	if s.atmospheres == nil {
		s.atmospheres = make([]int, 0)
		for i, e := range s.snap.Entities {
			if e.AtmosphereScaling != 0 && e.AtmosphereThickness != 0 {
				s.atmospheres = append(s.atmospheres, i)
			}
		}
	}
	return s.atmospheres
}

// Engineering returns the view over the buffer's engineering block.
func (s *State) Engineering() *EngineeringState { return s.eng }

// AsSnapshot reconstructs the full structured snapshot: unchanging
// fields verbatim from the retained snapshot, mutable fields from the
// current buffer contents. Expensive; prefer the column and view
// accessors inside the step loop.
func (s *State) AsSnapshot() *schema.PhysicalState {
	out := s.snap.DeepCopy()
	for i := range out.Entities {
		view := entityView{parent: s, row: i}
		e := &out.Entities[i]
		e.X = view.X()
		e.Y = view.Y()
		e.VX = view.VX()
		e.VY = view.VY()
		e.Heading = view.Heading()
		e.Spin = view.Spin()
		e.Fuel = view.Fuel()
		e.Throttle = view.Throttle()
		e.LandedOn = view.LandedOn()
		e.Broken = view.Broken()
	}
	out.SrbTime = s.y[s.srbTimeIndex()]
	out.TimeAcc = s.y[s.timeAccIndex()]
	out.Engineering = s.eng.AsSchema()
	return out
}
