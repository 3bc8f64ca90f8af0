package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultDt       = 1.0
	DefaultDuration = 3600.0
	DefaultTimeAcc  = 1.0
	DefaultField    = "fuel"
)

type Config struct {
	Snapshot   string       `yaml:"snapshot"`
	Integrator string       `yaml:"integrator"`
	Dt         float64      `yaml:"dt"`
	Duration   float64      `yaml:"duration"`
	TimeAcc    float64      `yaml:"time_acc"`
	Output     OutputConfig `yaml:"output"`
}

type OutputConfig struct {
	// Field selects which buffer column run artifacts record,
	// e.g. "x", "vy", "fuel".
	Field string `yaml:"field"`
	// Entity selects whose column value to record; empty means the
	// currently controlled craft.
	Entity string `yaml:"entity"`
}

func DefaultConfig() *Config {
	return &Config{
		Integrator: "rk4",
		Dt:         DefaultDt,
		Duration:   DefaultDuration,
		TimeAcc:    DefaultTimeAcc,
		Output: OutputConfig{
			Field: DefaultField,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
