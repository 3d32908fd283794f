// Package experiment - harness parameters and their JSON loader.
package experiment

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/katalvlaran/droneroute/nsga"
	"github.com/katalvlaran/droneroute/pareto"
)

// Sentinel errors.
var (
	// ErrBadParams indicates parameters that no solver accepts.
	ErrBadParams = errors.New("experiment: invalid parameters")
)

// Params aggregates every solver knob of one experiment run.
type Params struct {
	// MaxNodes bounds the exact search (0 = unlimited).
	MaxNodes int `json:"max_nodes"`

	// Population, Generations, CrossoverRate, MutationRate parameterize the
	// evolutionary solver.
	Population    int     `json:"population"`
	Generations   int     `json:"generations"`
	CrossoverRate float64 `json:"crossover_rate"`
	MutationRate  float64 `json:"mutation_rate"`

	// Seed drives the evolutionary solver's RNG.
	Seed int64 `json:"seed"`

	// RefDistance and RefRisk form the hypervolume reference point.
	RefDistance float64 `json:"ref_distance"`
	RefRisk     float64 `json:"ref_risk"`
}

// DefaultParams mirrors the solvers' own defaults.
func DefaultParams() Params {
	ref := pareto.DefaultRefPoint()

	return Params{
		MaxNodes:      0,
		Population:    nsga.DefaultPopulation,
		Generations:   nsga.DefaultGenerations,
		CrossoverRate: nsga.DefaultCrossoverRate,
		MutationRate:  nsga.DefaultMutationRate,
		Seed:          0,
		RefDistance:   ref.Distance,
		RefRisk:       ref.Risk,
	}
}

// RefPoint returns the hypervolume reference point of these parameters.
func (p Params) RefPoint() pareto.RefPoint {
	return pareto.RefPoint{Distance: p.RefDistance, Risk: p.RefRisk}
}

// validate rejects parameter sets no solver would accept.
func (p Params) validate() error {
	if p.MaxNodes < 0 || p.Population <= 0 || p.Generations < 0 {
		return ErrBadParams
	}
	if p.CrossoverRate < 0 || p.CrossoverRate > 1 || p.MutationRate < 0 || p.MutationRate > 1 {
		return ErrBadParams
	}

	return nil
}

// LoadParams reads a parameter file, overlaying the defaults.
func LoadParams(path string) (Params, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Params{}, fmt.Errorf("experiment: read params file: %w", err)
	}

	params := DefaultParams()
	if err = json.Unmarshal(data, &params); err != nil {
		return Params{}, fmt.Errorf("experiment: parse params file: %w", err)
	}
	if err = params.validate(); err != nil {
		return Params{}, err
	}

	return params, nil
}
