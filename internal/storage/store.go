// Package storage persists simulation runs: per-run directories with
// JSON metadata, a CSV trace of one buffer column across all entities,
// and the final structured snapshot.
package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/san-kum/orbitsim/internal/physics"
	"github.com/san-kum/orbitsim/internal/schema"
	"github.com/san-kum/orbitsim/internal/sim"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID         string    `json:"id"`
	Snapshot   string    `json:"snapshot"`
	Timestamp  time.Time `json:"timestamp"`
	Dt         float64   `json:"dt"`
	Duration   float64   `json:"duration"`
	Integrator string    `json:"integrator"`
	Field      string    `json:"field"`
	Entities   []string  `json:"entities"`
	Craft      string    `json:"craft"`
}

// Save writes one run directory: metadata.json, a states.csv tracing
// the chosen column for every entity, and final.yaml with the
// reconstructed snapshot.
func (s *Store) Save(snapshot, integrator, field string, dt, duration float64, result *sim.Result) (string, error) {
	final := result.Final
	runID := fmt.Sprintf("run_%d", time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:         runID,
		Snapshot:   snapshot,
		Timestamp:  time.Now(),
		Dt:         dt,
		Duration:   duration,
		Integrator: integrator,
		Field:      field,
		Entities:   final.EntityNames(),
		Craft:      final.Craft(),
	}

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	if err := s.writeTrace(filepath.Join(runDir, "states.csv"), field, result); err != nil {
		return "", err
	}

	if err := schema.Save(filepath.Join(runDir, "final.yaml"), final.AsSnapshot()); err != nil {
		return "", err
	}

	return runID, nil
}

func (s *Store) writeTrace(path, field string, result *sim.Result) error {
	csvFile, err := os.Create(path)
	if err != nil {
		return err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	entities := result.Final.EntityNames()
	lo, hi, err := physics.ColumnBounds(len(entities), field)
	if err != nil {
		return err
	}

	header := append([]string{"time"}, entities...)
	if err := w.Write(header); err != nil {
		return err
	}

	for i, y := range result.Vectors {
		row := []string{strconv.FormatFloat(result.Times[i], 'f', 6, 64)}
		for _, val := range y[lo:hi] {
			row = append(row, strconv.FormatFloat(val, 'f', 6, 64))
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		metaPath := filepath.Join(s.baseDir, entry.Name(), "metadata.json")
		data, err := os.ReadFile(metaPath)
		if err != nil {
			continue
		}

		var meta RunMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}

		runs = append(runs, meta)
	}

	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}
	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// LoadTrace reads states.csv back: the entity-name header and one row
// of column values per recorded time.
func (s *Store) LoadTrace(runID string) (header []string, times []float64, rows [][]float64, err error) {
	f, err := os.Open(filepath.Join(s.baseDir, runID, "states.csv"))
	if err != nil {
		return nil, nil, nil, err
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, nil, nil, err
	}
	if len(records) == 0 {
		return nil, nil, nil, fmt.Errorf("storage: empty trace for run %s", runID)
	}

	header = records[0][1:]
	for _, record := range records[1:] {
		t, err := strconv.ParseFloat(record[0], 64)
		if err != nil {
			return nil, nil, nil, err
		}
		row := make([]float64, len(record)-1)
		for i, cell := range record[1:] {
			if row[i], err = strconv.ParseFloat(cell, 64); err != nil {
				return nil, nil, nil, err
			}
		}
		times = append(times, t)
		rows = append(rows, row)
	}
	return header, times, rows, nil
}
