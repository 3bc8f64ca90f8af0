package storage

import (
	"encoding/json"
	"os"

	"github.com/san-kum/orbitsim/internal/sim"
)

// ExportData is the flat JSON form of a whole run, for downstream
// analysis outside the simulator.
type ExportData struct {
	Snapshot   string      `json:"snapshot"`
	Integrator string      `json:"integrator"`
	Dt         float64     `json:"dt"`
	Duration   float64     `json:"duration"`
	Steps      int         `json:"steps"`
	Entities   []string    `json:"entities"`
	Times      []float64   `json:"times"`
	Vectors    [][]float64 `json:"vectors"`
}

func ExportJSON(path, snapshot, integrator string, dt, duration float64, result *sim.Result) error {
	data := ExportData{
		Snapshot:   snapshot,
		Integrator: integrator,
		Dt:         dt,
		Duration:   duration,
		Steps:      result.StepsTaken,
		Entities:   result.Final.EntityNames(),
		Times:      result.Times,
		Vectors:    make([][]float64, len(result.Vectors)),
	}
	for i, v := range result.Vectors {
		data.Vectors[i] = v
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}
