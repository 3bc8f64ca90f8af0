package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/san-kum/orbitsim/internal/ode"
	"github.com/san-kum/orbitsim/internal/physics"
	"github.com/san-kum/orbitsim/internal/schema"
	"github.com/san-kum/orbitsim/internal/sim"
)

func testResult(t *testing.T) *sim.Result {
	t.Helper()
	snap := &schema.PhysicalState{
		TimeAcc: 1,
		Entities: []schema.Entity{
			{Name: "Earth", Mass: 5.97e24},
			{Name: "Habitat", Artificial: true, X: 7e6},
		},
		Engineering: schema.EngineeringState{
			Components:   make([]schema.Component, 10),
			CoolantLoops: make([]schema.CoolantLoop, 3),
			Radiators:    make([]schema.Radiator, 4),
		},
	}
	state, err := physics.FromSnapshot(snap)
	if err != nil {
		t.Fatal(err)
	}

	v0 := ode.Vector(state.Vector()).Clone()
	v1 := v0.Clone()
	xLo, _, _ := physics.ColumnBounds(2, physics.FieldX)
	v1[xLo+1] = 6e6 // craft moved

	return &sim.Result{
		Times:   []float64{0, 1},
		Vectors: []ode.Vector{v0, v1},
		Final:   state,
	}
}

func TestOrbitSVG(t *testing.T) {
	svg := OrbitSVG(testResult(t), 400, 300)

	if !strings.HasPrefix(svg, `<?xml`) || !strings.HasSuffix(svg, "</svg>") {
		t.Error("output is not a complete SVG document")
	}
	if got := strings.Count(svg, "<path"); got != 2 {
		t.Errorf("svg has %d paths, want one per entity (2)", got)
	}
	if !strings.Contains(svg, `width="400"`) || !strings.Contains(svg, `height="300"`) {
		t.Error("svg missing requested dimensions")
	}
}

func TestOrbitSVGEmptyRun(t *testing.T) {
	result := testResult(t)
	result.Vectors = result.Vectors[:1]
	if svg := OrbitSVG(result, 400, 300); svg != "" {
		t.Error("single-sample run should draw nothing")
	}
}

func TestWriteOrbitSVG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "orbit.svg")
	if err := WriteOrbitSVG(path, testResult(t), 400, 300); err != nil {
		t.Fatalf("WriteOrbitSVG failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "<svg") {
		t.Error("file does not contain SVG markup")
	}

	empty := testResult(t)
	empty.Vectors = nil
	if err := WriteOrbitSVG(filepath.Join(t.TempDir(), "x.svg"), empty, 400, 300); err == nil {
		t.Error("empty run should fail to export")
	}
}
