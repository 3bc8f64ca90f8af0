package physics

import (
	"fmt"

	"github.com/san-kum/orbitsim/internal/names"
)

// Field names for the per-entity attributes. Mutable fields live in
// the flat buffer; unchanging fields stay in the retained snapshot.
const (
	FieldX        = "x"
	FieldY        = "y"
	FieldVX       = "vx"
	FieldVY       = "vy"
	FieldHeading  = "heading"
	FieldSpin     = "spin"
	FieldFuel     = "fuel"
	FieldThrottle = "throttle"
	FieldLandedOn = "landed_on"
	FieldBroken   = "broken"

	FieldName                = "name"
	FieldMass                = "mass"
	FieldRadius              = "r"
	FieldArtificial          = "artificial"
	FieldAtmosphereThickness = "atmosphere_thickness"
	FieldAtmosphereScaling   = "atmosphere_scaling"
)

// MutableFields fixes the column order of the entity block. Buffers
// are only layout-compatible between containers built over the same
// entity list and this exact ordering, so do not reorder.
var MutableFields = []string{
	FieldX, FieldY, FieldVX, FieldVY,
	FieldHeading, FieldSpin, FieldFuel, FieldThrottle,
	FieldLandedOn, FieldBroken,
}

// UnchangingFields are per-entity attributes that never change during
// a simulation run and therefore stay out of the buffer.
var UnchangingFields = []string{
	FieldName, FieldMass, FieldRadius, FieldArtificial,
	FieldAtmosphereThickness, FieldAtmosphereScaling,
}

// Column indices into the entity block, derived from MutableFields.
const (
	colX = iota
	colY
	colVX
	colVY
	colHeading
	colSpin
	colFuel
	colThrottle
	colLandedOn
	colBroken

	numMutableFields
)

// fieldColumn maps a mutable field name to its column index.
var fieldColumn = func() map[string]int {
	m := make(map[string]int, len(MutableFields))
	for i, name := range MutableFields {
		m[name] = i
	}
	return m
}()

// Per-instance field widths of the engineering subsystems. These match
// the field counts of the schema records, in declaration order:
// Component(connected, temperature, resistance, voltage, current,
// attached_to_coolant_loop), CoolantLoop(coolant_temp, primary_pump_on,
// secondary_pump_on), Radiator(attached_to_coolant_loop, functioning).
const (
	numComponentFields = 6
	numCoolantFields   = 3
	numRadiatorFields  = 2
)

// Subsystem cardinalities, fixed by the name registry.
var (
	numComponents   = len(names.ComponentNames)
	numCoolantLoops = len(names.CoolantLoopNames)
	numRadiators    = len(names.RadiatorNames)
)

// The engineering block concatenates all components, then all coolant
// loops, then all radiators.
var (
	componentStart = 0
	coolantStart   = numComponents * numComponentFields
	radiatorStart  = coolantStart + numCoolantLoops*numCoolantFields

	// NumEngineeringFields is the total width of the engineering block.
	NumEngineeringFields = radiatorStart + numRadiators*numRadiatorFields
)

// NumSingularFields counts the single-slot scalars between the entity
// block and the engineering block: SRB time and time acceleration.
const NumSingularFields = 2

// BufferLen is the required flat-buffer length for n entities.
func BufferLen(n int) int {
	return n*numMutableFields + NumSingularFields + NumEngineeringFields
}

// NoIndex is the landed_on sentinel for "not landed on anything".
const NoIndex = -1

// ColumnBounds returns the [lo, hi) bounds of a mutable field's column
// within any buffer laid out for n entities. Useful for addressing a
// derivative vector with the same layout as a container's buffer.
func ColumnBounds(n int, field string) (lo, hi int, err error) {
	col, ok := fieldColumn[field]
	if !ok {
		return 0, 0, fmt.Errorf("%w: %q", ErrNoSuchField, field)
	}
	return col * n, (col + 1) * n, nil
}
