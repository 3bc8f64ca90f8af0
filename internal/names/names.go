// Package names holds the registry of well-known entity and subsystem
// names. These are configuration data: the physics core treats them as
// opaque keys, but the two craft names participate in docking logic.
package names

// Player-controllable craft.
const (
	Habitat = "Habitat"
	AYSE    = "AYSE"
)

// Celestial bodies that ship with the default solar system snapshot.
const (
	Sun     = "Sun"
	Mercury = "Mercury"
	Venus   = "Venus"
	Earth   = "Earth"
	Moon    = "Moon"
	Mars    = "Mars"
	Jupiter = "Jupiter"
	Saturn  = "Saturn"
	Uranus  = "Uranus"
	Neptune = "Neptune"
)

// Engineering component identifiers.
const (
	HabReactor  = "HAB_REACT"
	AyseReactor = "AYSE_REACT"
	Engines     = "ENGINES"
	RCon1       = "RCON1"
	RCon2       = "RCON2"
	AGrav       = "AGRAV"
	Radar       = "RADAR"
	INS         = "INS"
	LOS         = "LOS"
	AuxCom      = "AUXCOM"
)

// Coolant loop identifiers.
const (
	LP1 = "LP1"
	LP2 = "LP2"
	LP3 = "LP3"
)

// Radiator identifiers.
const (
	Rad1 = "RAD1"
	Rad2 = "RAD2"
	Rad3 = "RAD3"
	Rad4 = "RAD4"
)

// ComponentNames fixes the order of components in the engineering
// block. The buffer layout depends on this order; do not reorder.
var ComponentNames = []string{
	HabReactor, AyseReactor, Engines, RCon1, RCon2,
	AGrav, Radar, INS, LOS, AuxCom,
}

// CoolantLoopNames fixes the order of coolant loops in the engineering
// block.
var CoolantLoopNames = []string{LP1, LP2, LP3}

// RadiatorNames fixes the order of radiators in the engineering block.
var RadiatorNames = []string{Rad1, Rad2, Rad3, Rad4}

// Index returns the position of name in list, or -1 if absent.
func Index(list []string, name string) int {
	for i, n := range list {
		if n == name {
			return i
		}
	}
	return -1
}
