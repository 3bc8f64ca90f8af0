package config

// Presets are named run configurations covering the common ways a
// snapshot gets simulated. A preset leaves Snapshot empty; the caller
// supplies it.
var Presets = map[string]*Config{
	"realtime": {
		Integrator: "rk4", Dt: 1.0 / 60.0, Duration: 3600, TimeAcc: 1,
		Output: OutputConfig{Field: "fuel"},
	},
	"orbit": {
		Integrator: "rk4", Dt: 1, Duration: 6000, TimeAcc: 1,
		Output: OutputConfig{Field: "x"},
	},
	"fastforward": {
		Integrator: "rk4", Dt: 1, Duration: 86400, TimeAcc: 50,
		Output: OutputConfig{Field: "x"},
	},
	"burn": {
		Integrator: "rk4", Dt: 0.1, Duration: 600, TimeAcc: 1,
		Output: OutputConfig{Field: "fuel"},
	},
	"quick": {
		Integrator: "euler", Dt: 1, Duration: 60, TimeAcc: 1,
		Output: OutputConfig{Field: "x"},
	},
}

// GetPreset returns a copy of the named preset, or nil if unknown.
func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	copied := *cfg
	return &copied
}

// ListPresets returns the available preset names.
func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
