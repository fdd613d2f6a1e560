package export

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/san-kum/gravsim/internal/dynamo"
	"github.com/san-kum/gravsim/internal/sim"
)

func TestReportJSON(t *testing.T) {
	result := &sim.Result{
		Stats: []dynamo.StepStats{
			{Step: 1, Particles: 3, Sources: 1},
			{Step: 2, Particles: 2, Sources: 1, Removed: 1},
		},
		Metrics: map[string]float64{"removed": 1},
		Series:  map[string][]float64{"removed": {0, 1}},
		Removed: 1,
	}

	var buf bytes.Buffer
	if err := WriteJSON(&buf, NewReport(sim.DefaultParams(), result, false)); err != nil {
		t.Fatal(err)
	}

	var got map[string]any
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if got["steps"] != 2.0 || got["removed"] != 1.0 {
		t.Errorf("summary = %v", got)
	}
	if _, ok := got["series"]; ok {
		t.Error("series written without being asked for")
	}
	if p := got["particles"].([]any); len(p) != 2 || p[1] != 2.0 {
		t.Errorf("particles = %v, want [3 2]", p)
	}
}
