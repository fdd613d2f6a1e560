package export

import (
	"encoding/json"
	"io"

	"github.com/san-kum/gravsim/internal/sim"
)

// Report is the machine-readable summary of a headless run.
type Report struct {
	Steps     int                  `json:"steps"`
	Skipped   int                  `json:"skipped"`
	Removed   int                  `json:"removed"`
	Params    sim.Params           `json:"params"`
	Metrics   map[string]float64   `json:"metrics"`
	Series    map[string][]float64 `json:"series,omitempty"`
	Particles []int                `json:"particles"`
}

func NewReport(params sim.Params, result *sim.Result, withSeries bool) Report {
	r := Report{
		Steps:     len(result.Stats),
		Skipped:   result.Skipped,
		Removed:   result.Removed,
		Params:    params,
		Metrics:   result.Metrics,
		Particles: make([]int, len(result.Stats)),
	}
	for i, s := range result.Stats {
		r.Particles[i] = s.Particles
	}
	if withSeries {
		r.Series = result.Series
	}
	return r
}

func WriteJSON(w io.Writer, r Report) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(r)
}
