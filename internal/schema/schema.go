// Package schema defines the structured snapshot records exchanged with
// the rest of the system: the full PhysicalState, per-entity records,
// and the nested engineering state. The physics core keys its buffer
// layout off the field sets declared here, so field additions must be
// mirrored in the physics layout tables.
package schema

import "fmt"

// Navmode enumerates the autopilot navigation modes. Kept in sync with
// the external schema by NavmodeNames; a test asserts the value set.
type Navmode int

const (
	Manual Navmode = iota
	CCWProgradeMode
	CWRetrogradeMode
	DepartReference
	ApproachTarget
	ProTargVelocity
	AntiTargVelocity
)

// NavmodeNames is the single source of truth for the enum's declared
// values, indexed by Navmode.
var NavmodeNames = []string{
	"Manual",
	"CCW Prograde",
	"CW Retrograde",
	"Depart Reference",
	"Approach Target",
	"Pro Targ Velocity",
	"Anti Targ Velocity",
}

func (n Navmode) String() string {
	if n < 0 || int(n) >= len(NavmodeNames) {
		return fmt.Sprintf("Navmode(%d)", int(n))
	}
	return NavmodeNames[n]
}

// MarshalYAML encodes the mode by name so snapshot files stay readable.
func (n Navmode) MarshalYAML() (interface{}, error) {
	if n < 0 || int(n) >= len(NavmodeNames) {
		return nil, fmt.Errorf("schema: navmode %d out of range", int(n))
	}
	return NavmodeNames[n], nil
}

func (n *Navmode) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var name string
	if err := unmarshal(&name); err != nil {
		return err
	}
	for i, candidate := range NavmodeNames {
		if candidate == name {
			*n = Navmode(i)
			return nil
		}
	}
	return fmt.Errorf("schema: unknown navmode %q", name)
}

// Entity is one simulated body or craft. Name, Mass, Radius,
// Artificial and the atmosphere parameters are fixed for the entity's
// lifetime; the rest change every integration step.
type Entity struct {
	Name                string  `yaml:"name"`
	X                   float64 `yaml:"x"`
	Y                   float64 `yaml:"y"`
	VX                  float64 `yaml:"vx"`
	VY                  float64 `yaml:"vy"`
	Heading             float64 `yaml:"heading"`
	Spin                float64 `yaml:"spin"`
	Fuel                float64 `yaml:"fuel"`
	Throttle            float64 `yaml:"throttle"`
	LandedOn            string  `yaml:"landed_on"`
	Broken              bool    `yaml:"broken"`
	Mass                float64 `yaml:"mass"`
	Radius              float64 `yaml:"r"`
	Artificial          bool    `yaml:"artificial"`
	AtmosphereThickness float64 `yaml:"atmosphere_thickness"`
	AtmosphereScaling   float64 `yaml:"atmosphere_scaling"`
}

// Component is one electrical component in the engineering block.
// AttachedToCoolantLoop is a 1-based reference into the coolant loop
// list; 0 means unattached.
type Component struct {
	Connected             bool    `yaml:"connected"`
	Temperature           float64 `yaml:"temperature"`
	Resistance            float64 `yaml:"resistance"`
	Voltage               float64 `yaml:"voltage"`
	Current               float64 `yaml:"current"`
	AttachedToCoolantLoop int     `yaml:"attached_to_coolant_loop"`
}

// CoolantLoop is one coolant circuit.
type CoolantLoop struct {
	CoolantTemp     float64 `yaml:"coolant_temp"`
	PrimaryPumpOn   bool    `yaml:"primary_pump_on"`
	SecondaryPumpOn bool    `yaml:"secondary_pump_on"`
}

// Radiator is one heat radiator. AttachedToCoolantLoop follows the
// same 1-based, 0-means-unattached convention as Component.
type Radiator struct {
	AttachedToCoolantLoop int  `yaml:"attached_to_coolant_loop"`
	Functioning           bool `yaml:"functioning"`
}

// EngineeringState nests the three subsystem collections plus the
// global flags that are scalar and rarely change.
type EngineeringState struct {
	Components   []Component   `yaml:"components"`
	CoolantLoops []CoolantLoop `yaml:"coolant_loops"`
	Radiators    []Radiator    `yaml:"radiators"`

	MasterAlarm      bool `yaml:"master_alarm"`
	RadiationAlarm   bool `yaml:"radiation_alarm"`
	AsteroidAlarm    bool `yaml:"asteroid_alarm"`
	HabReactorAlarm  bool `yaml:"hab_reactor_alarm"`
	AyseReactorAlarm bool `yaml:"ayse_reactor_alarm"`
	HabGnomes        bool `yaml:"hab_gnomes"`
}

// PhysicalState is the full structured snapshot of the simulation.
type PhysicalState struct {
	Timestamp         float64          `yaml:"timestamp"`
	SrbTime           float64          `yaml:"srb_time"`
	TimeAcc           float64          `yaml:"time_acc"`
	Reference         string           `yaml:"reference"`
	Target            string           `yaml:"target"`
	Navmode           Navmode          `yaml:"navmode"`
	ParachuteDeployed bool             `yaml:"parachute_deployed"`
	Entities          []Entity         `yaml:"entities"`
	Engineering       EngineeringState `yaml:"engineering"`
}

// DeepCopy returns a copy sharing no slices with e.
func (e *EngineeringState) DeepCopy() EngineeringState {
	out := *e
	out.Components = append([]Component(nil), e.Components...)
	out.CoolantLoops = append([]CoolantLoop(nil), e.CoolantLoops...)
	out.Radiators = append([]Radiator(nil), e.Radiators...)
	return out
}

// DeepCopy returns a copy sharing no slices with p.
func (p *PhysicalState) DeepCopy() *PhysicalState {
	out := *p
	out.Entities = append([]Entity(nil), p.Entities...)
	out.Engineering = p.Engineering.DeepCopy()
	return &out
}
