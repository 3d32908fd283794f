// Package experiment runs the three solvers on one instance, measures wall
// time and heap growth per run, scores each front (hypervolume, spread), and
// writes the per-algorithm result document.
//
// The solvers execute sequentially against the shared immutable graph; the
// merged front under the "combined" key is the engine's final answer.
//
// Parameters are plain option structs with JSON file loading, so benchmark
// sweeps can be driven from checked-in parameter files.
package experiment
