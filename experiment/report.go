// Package experiment - the result JSON document.
//
// Objective scalars are emitted at four decimal places; routes and counters
// verbatim. The document shape is stable across algorithms so downstream
// tabulation can treat the keys uniformly.
package experiment

import (
	"encoding/json"
	"fmt"
	"math"
	"os"

	"github.com/katalvlaran/droneroute/pareto"
)

// objectivesJSON mirrors one objective triple on disk (4dp floats).
type objectivesJSON struct {
	Distance  float64 `json:"distance"`
	Risk      float64 `json:"risk"`
	Recharges int     `json:"recharges"`
}

// solutionJSON mirrors one front member on disk.
type solutionJSON struct {
	Route      []int          `json:"route"`
	Objectives objectivesJSON `json:"objectives"`
	Feasible   bool           `json:"feasible"`
}

// runJSON mirrors one measured solver run on disk.
type runJSON struct {
	Time        float64        `json:"time"`
	Memory      float64        `json:"memory"`
	ParetoFront []solutionJSON `json:"pareto_front"`
	Hypervolume float64        `json:"hypervolume"`
	Diversity   float64        `json:"diversity"`
}

// round4 rounds a scalar to four decimal places for the report.
func round4(v float64) float64 {
	return math.Round(v*1e4) / 1e4
}

// encodeRun converts a measured run into its document form.
func encodeRun(r Run) runJSON {
	var (
		members = r.Front.Members()
		front   = make([]solutionJSON, len(members))
		i       int
	)
	for i = 0; i < len(members); i++ {
		front[i] = encodeSolution(members[i])
	}

	return runJSON{
		Time:        r.Seconds,
		Memory:      r.MemoryMB,
		ParetoFront: front,
		Hypervolume: r.Hypervolume,
		Diversity:   r.Diversity,
	}
}

// encodeSolution converts one front member into its document form.
func encodeSolution(s pareto.Solution) solutionJSON {
	return solutionJSON{
		Route: append([]int(nil), s.Route...),
		Objectives: objectivesJSON{
			Distance:  round4(s.Objectives.Distance),
			Risk:      round4(s.Objectives.Risk),
			Recharges: s.Objectives.Recharges,
		},
		Feasible: s.Feasible,
	}
}

// MarshalOutcome encodes the full per-algorithm document.
func MarshalOutcome(out Outcome) ([]byte, error) {
	doc := make(map[string]runJSON, len(out))

	var key string
	for key = range out {
		doc[key] = encodeRun(out[key])
	}

	return json.MarshalIndent(doc, "", "  ")
}

// WriteOutcome writes the result document to path.
func WriteOutcome(out Outcome, path string) error {
	data, err := MarshalOutcome(out)
	if err != nil {
		return fmt.Errorf("experiment: encode results: %w", err)
	}
	if err = os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("experiment: write results file: %w", err)
	}

	return nil
}
