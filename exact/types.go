// Package exact - options, result shape, sentinel errors.
package exact

import (
	"errors"

	"go.uber.org/zap"

	"github.com/katalvlaran/droneroute/pareto"
)

// Sentinel errors.
var (
	// ErrNilGraph indicates Solve was called without an instance.
	ErrNilGraph = errors.New("exact: nil graph")
)

// Options configures the branch-and-bound engine.
// Zero value is usable; DefaultOptions spells the defaults out.
type Options struct {
	// MaxNodes bounds the number of explored search nodes. Zero means
	// unlimited. When the budget trips, the front found so far is returned.
	MaxNodes int

	// Logger receives diagnostics. Nil means no logging.
	Logger *zap.Logger
}

// DefaultOptions returns the production defaults: unlimited search, no logging.
func DefaultOptions() Options {
	return Options{
		MaxNodes: 0,
		Logger:   nil,
	}
}

// Result is the outcome of a branch-and-bound run.
type Result struct {
	// Front is the set of non-dominated feasible circuits discovered.
	// Exhaustive runs (budget not tripped) make it the exact Pareto front.
	Front *pareto.Front

	// NodesExplored counts expanded search nodes.
	NodesExplored int

	// NodesPruned counts subtrees cut by the lower bound or by valid-edge
	// disconnection.
	NodesPruned int

	// BudgetExhausted reports whether MaxNodes stopped the search early.
	BudgetExhausted bool
}
