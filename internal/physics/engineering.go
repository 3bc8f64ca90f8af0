package physics

import (
	"fmt"

	"github.com/san-kum/orbitsim/internal/names"
	"github.com/san-kum/orbitsim/internal/schema"
)

// EngineeringState wraps the engineering block of a container's flat
// buffer: all components, then all coolant loops, then all radiators,
// each instance a fixed-width run of slots. Global flags (alarms,
// hab_gnomes) are scalar and rarely change, so they stay on the
// retained snapshot rather than in the buffer.
//
//	eng := state.Engineering()
//	eng.SetMasterAlarm(true)
//	comp, _ := eng.Components().ByName(names.AuxCom)
//	comp.SetConnected(true)
//	rad, _ := eng.Radiators().At(1)
//	rad.CoolantLoop().SetCoolantTemp(50)
type EngineeringState struct {
	block []float64
	snap  *schema.EngineeringState
}

// newEngineeringState wraps block, which must be exactly
// NumEngineeringFields long. When populate is set the block is filled
// from the snapshot (cold path); otherwise the block already carries
// integrator output (hot path) and is left untouched.
func newEngineeringState(block []float64, snap *schema.EngineeringState, populate bool) *EngineeringState {
	if len(snap.Components) != numComponents ||
		len(snap.CoolantLoops) != numCoolantLoops ||
		len(snap.Radiators) != numRadiators {
		panic(fmt.Sprintf(
			"physics: engineering snapshot has %d/%d/%d subsystems, want %d/%d/%d",
			len(snap.Components), len(snap.CoolantLoops), len(snap.Radiators),
			numComponents, numCoolantLoops, numRadiators))
	}
	if len(block) != NumEngineeringFields {
		panic(fmt.Sprintf("physics: engineering block is %d slots, want %d",
			len(block), NumEngineeringFields))
	}

	eng := &EngineeringState{block: block, snap: snap}
	if populate {
		eng.populate()
	}
	return eng
}

// populate writes every subsystem instance into the block in layout
// order. Field order must match the accessor offsets below.
func (e *EngineeringState) populate() {
	w := 0
	for _, c := range e.snap.Components {
		e.block[w+0] = boolToFloat(c.Connected)
		e.block[w+1] = c.Temperature
		e.block[w+2] = c.Resistance
		e.block[w+3] = c.Voltage
		e.block[w+4] = c.Current
		e.block[w+5] = float64(c.AttachedToCoolantLoop)
		w += numComponentFields
	}
	for _, l := range e.snap.CoolantLoops {
		e.block[w+0] = l.CoolantTemp
		e.block[w+1] = boolToFloat(l.PrimaryPumpOn)
		e.block[w+2] = boolToFloat(l.SecondaryPumpOn)
		w += numCoolantFields
	}
	for _, r := range e.snap.Radiators {
		e.block[w+0] = float64(r.AttachedToCoolantLoop)
		e.block[w+1] = boolToFloat(r.Functioning)
		w += numRadiatorFields
	}
}

// Components returns the indexable component collection.
func (e *EngineeringState) Components() ComponentList { return ComponentList{e} }

// CoolantLoops returns the indexable coolant loop collection.
func (e *EngineeringState) CoolantLoops() CoolantLoopList { return CoolantLoopList{e} }

// Radiators returns the indexable radiator collection.
func (e *EngineeringState) Radiators() RadiatorList { return RadiatorList{e} }

func (e *EngineeringState) MasterAlarm() bool            { return e.snap.MasterAlarm }
func (e *EngineeringState) SetMasterAlarm(v bool)        { e.snap.MasterAlarm = v }
func (e *EngineeringState) RadiationAlarm() bool         { return e.snap.RadiationAlarm }
func (e *EngineeringState) SetRadiationAlarm(v bool)     { e.snap.RadiationAlarm = v }
func (e *EngineeringState) AsteroidAlarm() bool          { return e.snap.AsteroidAlarm }
func (e *EngineeringState) SetAsteroidAlarm(v bool)      { e.snap.AsteroidAlarm = v }
func (e *EngineeringState) HabReactorAlarm() bool        { return e.snap.HabReactorAlarm }
func (e *EngineeringState) SetHabReactorAlarm(v bool)    { e.snap.HabReactorAlarm = v }
func (e *EngineeringState) AyseReactorAlarm() bool       { return e.snap.AyseReactorAlarm }
func (e *EngineeringState) SetAyseReactorAlarm(v bool)   { e.snap.AyseReactorAlarm = v }
func (e *EngineeringState) HabGnomes() bool              { return e.snap.HabGnomes }
func (e *EngineeringState) SetHabGnomes(v bool)          { e.snap.HabGnomes = v }

// AsSchema walks every subsystem instance and writes its buffer-resident
// fields into a fresh copy of the retained snapshot. Global flags come
// through the copy untouched.
func (e *EngineeringState) AsSchema() schema.EngineeringState {
	out := e.snap.DeepCopy()
	for i := range out.Components {
		view := e.componentAt(i)
		out.Components[i] = schema.Component{
			Connected:             view.Connected(),
			Temperature:           view.Temperature(),
			Resistance:            view.Resistance(),
			Voltage:               view.Voltage(),
			Current:               view.Current(),
			AttachedToCoolantLoop: view.AttachedToCoolantLoop(),
		}
	}
	for i := range out.CoolantLoops {
		view := e.coolantAt(i)
		out.CoolantLoops[i] = schema.CoolantLoop{
			CoolantTemp:     view.CoolantTemp(),
			PrimaryPumpOn:   view.PrimaryPumpOn(),
			SecondaryPumpOn: view.SecondaryPumpOn(),
		}
	}
	for i := range out.Radiators {
		view := e.radiatorAt(i)
		out.Radiators[i] = schema.Radiator{
			AttachedToCoolantLoop: view.AttachedToCoolantLoop(),
			Functioning:           view.Functioning(),
		}
	}
	return out
}

func (e *EngineeringState) componentAt(n int) ComponentView {
	return ComponentView{parent: e, slots: e.block[componentStart:coolantStart], n: n}
}

func (e *EngineeringState) coolantAt(n int) CoolantView {
	return CoolantView{slots: e.block[coolantStart:radiatorStart], n: n}
}

func (e *EngineeringState) radiatorAt(n int) RadiatorView {
	return RadiatorView{parent: e, slots: e.block[radiatorStart:], n: n}
}

// ComponentList indexes components by position or symbolic name.
type ComponentList struct {
	owner *EngineeringState
}

// At returns the component view at a 0-based position.
func (l ComponentList) At(index int) (ComponentView, error) {
	if index < 0 || index >= numComponents {
		return ComponentView{}, indexRange("component", index, numComponents)
	}
	return l.owner.componentAt(index), nil
}

// ByName returns the component view with the given registry name.
func (l ComponentList) ByName(name string) (ComponentView, error) {
	index := names.Index(names.ComponentNames, name)
	if index == -1 {
		return ComponentView{}, noSubsystem("component", name)
	}
	return l.owner.componentAt(index), nil
}

// Len returns the fixed component count.
func (l ComponentList) Len() int { return numComponents }

// CoolantLoopList indexes coolant loops by position or symbolic name.
type CoolantLoopList struct {
	owner *EngineeringState
}

func (l CoolantLoopList) At(index int) (CoolantView, error) {
	if index < 0 || index >= numCoolantLoops {
		return CoolantView{}, indexRange("coolant loop", index, numCoolantLoops)
	}
	return l.owner.coolantAt(index), nil
}

func (l CoolantLoopList) ByName(name string) (CoolantView, error) {
	index := names.Index(names.CoolantLoopNames, name)
	if index == -1 {
		return CoolantView{}, noSubsystem("coolant loop", name)
	}
	return l.owner.coolantAt(index), nil
}

func (l CoolantLoopList) Len() int { return numCoolantLoops }

// RadiatorList indexes radiators by position or symbolic name.
type RadiatorList struct {
	owner *EngineeringState
}

func (l RadiatorList) At(index int) (RadiatorView, error) {
	if index < 0 || index >= numRadiators {
		return RadiatorView{}, indexRange("radiator", index, numRadiators)
	}
	return l.owner.radiatorAt(index), nil
}

func (l RadiatorList) ByName(name string) (RadiatorView, error) {
	index := names.Index(names.RadiatorNames, name)
	if index == -1 {
		return RadiatorView{}, noSubsystem("radiator", name)
	}
	return l.owner.radiatorAt(index), nil
}

func (l RadiatorList) Len() int { return numRadiators }

// ComponentView aliases one component's slots in the engineering block.
type ComponentView struct {
	parent *EngineeringState
	slots  []float64
	n      int
}

// Name returns the component's registry name.
func (c ComponentView) Name() string { return names.ComponentNames[c.n] }

func (c ComponentView) slot(offset int) *float64 {
	return &c.slots[c.n*numComponentFields+offset]
}

func (c ComponentView) Connected() bool          { return *c.slot(0) != 0 }
func (c ComponentView) SetConnected(v bool)      { *c.slot(0) = boolToFloat(v) }
func (c ComponentView) Temperature() float64     { return *c.slot(1) }
func (c ComponentView) SetTemperature(v float64) { *c.slot(1) = v }
func (c ComponentView) Resistance() float64      { return *c.slot(2) }
func (c ComponentView) SetResistance(v float64)  { *c.slot(2) = v }
func (c ComponentView) Voltage() float64         { return *c.slot(3) }
func (c ComponentView) SetVoltage(v float64)     { *c.slot(3) = v }
func (c ComponentView) Current() float64         { return *c.slot(4) }
func (c ComponentView) SetCurrent(v float64)     { *c.slot(4) = v }

// AttachedToCoolantLoop is a 1-based coolant loop reference; 0 means
// unattached.
func (c ComponentView) AttachedToCoolantLoop() int     { return int(*c.slot(5)) }
func (c ComponentView) SetAttachedToCoolantLoop(v int) { *c.slot(5) = float64(v) }

// CoolantLoop resolves the attached coolant loop from the same parent.
// Calling this on an unattached component is a programmer error.
func (c ComponentView) CoolantLoop() CoolantView {
	ref := c.AttachedToCoolantLoop()
	if ref == 0 {
		panic(fmt.Sprintf("physics: component %s has no attached coolant loop", c.Name()))
	}
	return c.parent.coolantAt(ref - 1)
}

// CoolantView aliases one coolant loop's slots in the engineering
// block.
type CoolantView struct {
	slots []float64
	n     int
}

// Name returns the loop's registry name.
func (c CoolantView) Name() string { return names.CoolantLoopNames[c.n] }

func (c CoolantView) slot(offset int) *float64 {
	return &c.slots[c.n*numCoolantFields+offset]
}

func (c CoolantView) CoolantTemp() float64     { return *c.slot(0) }
func (c CoolantView) SetCoolantTemp(v float64) { *c.slot(0) = v }
func (c CoolantView) PrimaryPumpOn() bool      { return *c.slot(1) != 0 }
func (c CoolantView) SetPrimaryPumpOn(v bool)  { *c.slot(1) = boolToFloat(v) }
func (c CoolantView) SecondaryPumpOn() bool    { return *c.slot(2) != 0 }
func (c CoolantView) SetSecondaryPumpOn(v bool) { *c.slot(2) = boolToFloat(v) }

// RadiatorView aliases one radiator's slots in the engineering block.
type RadiatorView struct {
	parent *EngineeringState
	slots  []float64
	n      int
}

// Name returns the radiator's registry name.
func (r RadiatorView) Name() string { return names.RadiatorNames[r.n] }

func (r RadiatorView) slot(offset int) *float64 {
	return &r.slots[r.n*numRadiatorFields+offset]
}

// AttachedToCoolantLoop is a 1-based coolant loop reference; 0 means
// unattached.
func (r RadiatorView) AttachedToCoolantLoop() int     { return int(*r.slot(0)) }
func (r RadiatorView) SetAttachedToCoolantLoop(v int) { *r.slot(0) = float64(v) }
func (r RadiatorView) Functioning() bool              { return *r.slot(1) != 0 }
func (r RadiatorView) SetFunctioning(v bool)          { *r.slot(1) = boolToFloat(v) }

// CoolantLoop resolves the attached coolant loop from the same parent.
// Calling this on an unattached radiator is a programmer error.
func (r RadiatorView) CoolantLoop() CoolantView {
	ref := r.AttachedToCoolantLoop()
	if ref == 0 {
		panic(fmt.Sprintf("physics: radiator %s has no attached coolant loop", r.Name()))
	}
	return r.parent.coolantAt(ref - 1)
}
