// Package nsga - options, defaults, result shape, sentinel errors.
package nsga

import (
	"errors"

	"go.uber.org/zap"

	"github.com/katalvlaran/droneroute/pareto"
)

// Sentinel errors.
var (
	// ErrNilGraph indicates Solve was called without an instance.
	ErrNilGraph = errors.New("nsga: nil graph")

	// ErrBadParams indicates a non-positive population, negative generations,
	// or rates outside [0, 1].
	ErrBadParams = errors.New("nsga: invalid parameters")
)

// Default knobs.
const (
	// DefaultPopulation is the population size P.
	DefaultPopulation = 100

	// DefaultGenerations is the generation count G.
	DefaultGenerations = 200

	// DefaultCrossoverRate is the OX probability per offspring.
	DefaultCrossoverRate = 0.9

	// DefaultMutationRate is the mutation probability per offspring.
	DefaultMutationRate = 0.1

	// evalCacheFactor sizes the evaluation LRU as a multiple of P.
	evalCacheFactor = 4
)

// Options defines configurable parameters of the evolutionary solver.
// Zero value is not meaningful; use DefaultOptions and override fields.
type Options struct {
	// Population is P, the population size.
	Population int

	// Generations is G, the number of generation loops.
	Generations int

	// CrossoverRate is the probability an offspring is produced by OX
	// (otherwise the first parent is cloned).
	CrossoverRate float64

	// MutationRate is the probability an offspring is mutated.
	MutationRate float64

	// Seed controls the deterministic RNG stream. Zero maps to a fixed
	// default stream.
	Seed int64

	// Logger receives diagnostics. Nil means no logging.
	Logger *zap.Logger
}

// DefaultOptions returns the canonical NSGA-II parameterization.
func DefaultOptions() Options {
	return Options{
		Population:    DefaultPopulation,
		Generations:   DefaultGenerations,
		CrossoverRate: DefaultCrossoverRate,
		MutationRate:  DefaultMutationRate,
		Seed:          0,
		Logger:        nil,
	}
}

// validate rejects unusable parameter combinations.
func (o Options) validate() error {
	if o.Population <= 0 || o.Generations < 0 {
		return ErrBadParams
	}
	if o.CrossoverRate < 0 || o.CrossoverRate > 1 || o.MutationRate < 0 || o.MutationRate > 1 {
		return ErrBadParams
	}

	return nil
}

// Result is the outcome of an evolutionary run.
type Result struct {
	// Front is the admitted final-population front.
	Front *pareto.Front

	// Evaluations counts route evaluations actually computed (cache misses).
	Evaluations int
}
