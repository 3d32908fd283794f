// Package heuristic - options, result shape, sentinel errors, grid constants.
package heuristic

import (
	"errors"

	"go.uber.org/zap"

	"github.com/katalvlaran/droneroute/pareto"
)

// Sentinel errors.
var (
	// ErrNilGraph indicates Solve was called without an instance.
	ErrNilGraph = errors.New("heuristic: nil graph")
)

// Grid constants of the constructive battery.
const (
	// weightStep is the scalarization grid step for nearest-neighbor runs.
	weightStep = 0.2

	// insertionSteps enumerates d ∈ {0,2,4,6,8,10} → (d/10, (10−d)/10).
	insertionSteps = 6

	// sweepAngles is the number of angular-sweep start angles (every 30°).
	sweepAngles = 12

	// twoOptMinGain is the minimal distance improvement for an accepted
	// 2-opt move.
	twoOptMinGain = 0.01
)

// Options configures the constructive solver.
type Options struct {
	// Logger receives diagnostics. Nil means no logging.
	Logger *zap.Logger
}

// DefaultOptions returns the production defaults.
func DefaultOptions() Options {
	return Options{Logger: nil}
}

// Result is the outcome of a constructive run.
type Result struct {
	// Front is the non-dominated set over all polished seed tours.
	Front *pareto.Front

	// Seeds counts constructed candidate tours.
	Seeds int

	// Admitted counts candidates accepted into the front.
	Admitted int
}
