package schema

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads a PhysicalState snapshot from a YAML file.
func Load(path string) (*PhysicalState, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var state PhysicalState
	if err := yaml.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("schema: parse %s: %w", path, err)
	}
	return &state, nil
}

// Save writes a PhysicalState snapshot to a YAML file.
func Save(path string, state *PhysicalState) error {
	data, err := yaml.Marshal(state)
	if err != nil {
		return fmt.Errorf("schema: marshal snapshot: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}
