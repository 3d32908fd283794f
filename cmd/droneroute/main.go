// Command droneroute is the command-line surface of the routing engine:
// instance generation, single-solver runs, and full experiments.
//
// Usage:
//
//	droneroute generate -n 12 -z 3 --seed 7 -o instance.json
//	droneroute solve -i instance.json -a all [--max-nodes M] [-o out.json]
//	droneroute experiment -i instance.json [--params params.json] -o results.json
//	droneroute help
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/katalvlaran/droneroute/exact"
	"github.com/katalvlaran/droneroute/experiment"
	"github.com/katalvlaran/droneroute/graph"
	"github.com/katalvlaran/droneroute/heuristic"
	"github.com/katalvlaran/droneroute/instance"
	"github.com/katalvlaran/droneroute/nsga"
	"github.com/katalvlaran/droneroute/pareto"
)

const usage = `droneroute - Pareto-optimal drone delivery routing

Subcommands:
  generate    create a random instance file
  solve       run one solver (or all) on an instance
  experiment  run all solvers and write the full result document
  help        print this text

Run "droneroute <subcommand> -h" for per-command flags.`

func main() {
	os.Exit(run(os.Args[1:]))
}

// run dispatches the subcommand and maps failures to exit code 1.
func run(args []string) int {
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, usage)

		return 1
	}

	var err error
	switch args[0] {
	case "generate":
		err = cmdGenerate(args[1:])
	case "solve":
		err = cmdSolve(args[1:])
	case "experiment":
		err = cmdExperiment(args[1:])
	case "help", "-h", "--help":
		fmt.Println(usage)

		return 0
	default:
		fmt.Fprintf(os.Stderr, "droneroute: unknown subcommand %q\n%s\n", args[0], usage)

		return 1
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "droneroute: %v\n", err)

		return 1
	}

	return 0
}

// buildLogger returns a development logger when verbose, a nop otherwise.
func buildLogger(verbose bool) *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}
	log, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop()
	}

	return log
}

func cmdGenerate(args []string) error {
	var (
		fs     = pflag.NewFlagSet("generate", pflag.ContinueOnError)
		n      = fs.IntP("nodes", "n", instance.DefaultParams().Nodes, "total node count including the hub")
		zones  = fs.IntP("zones", "z", instance.DefaultParams().Zones, "number of no-fly zones")
		size   = fs.Float64("map-size", instance.DefaultParams().MapSize, "side length of the square map")
		seed   = fs.Int64("seed", 0, "generator seed (0 = fixed default stream)")
		output = fs.StringP("output", "o", "instance.json", "output instance file")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	g, err := instance.Generate(instance.Params{
		Nodes:   *n,
		Zones:   *zones,
		MapSize: *size,
		Seed:    *seed,
	})
	if err != nil {
		return err
	}
	if err = g.SaveFile(*output); err != nil {
		return err
	}
	fmt.Printf("generated %s: %d nodes, %d zones, map %.0f\n", *output, g.N(), len(g.Zones()), g.MapSize())

	return nil
}

func cmdSolve(args []string) error {
	var (
		fs       = pflag.NewFlagSet("solve", pflag.ContinueOnError)
		input    = fs.StringP("input", "i", "", "instance file (required)")
		algo     = fs.StringP("algo", "a", "all", "solver: exact | heuristic | meta | all")
		maxNodes = fs.Int("max-nodes", 0, "exact-search node budget (0 = unlimited)")
		seed     = fs.Int64("seed", 0, "evolutionary solver seed")
		output   = fs.StringP("output", "o", "", "optional result file")
		verbose  = fs.BoolP("verbose", "v", false, "log solver diagnostics")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *input == "" {
		return fmt.Errorf("solve: --input <instance.json> is required")
	}

	g, err := graph.LoadFile(*input)
	if err != nil {
		return err
	}

	var (
		log    = buildLogger(*verbose)
		params = experiment.DefaultParams()
	)
	defer log.Sync() //nolint:errcheck
	params.MaxNodes = *maxNodes
	params.Seed = *seed

	var out experiment.Outcome
	if *algo == "all" {
		out, err = experiment.Execute(g, params, log)
		if err != nil {
			return err
		}
	} else {
		out = make(experiment.Outcome, 1)
		var (
			front *pareto.Front
			key   string
			start = time.Now()
		)
		switch *algo {
		case experiment.KeyExact:
			opts := exact.DefaultOptions()
			opts.MaxNodes = *maxNodes
			opts.Logger = log
			res, serr := exact.Solve(g, opts)
			if serr != nil {
				return serr
			}
			front, key = res.Front, experiment.KeyExact
		case experiment.KeyHeuristic:
			opts := heuristic.DefaultOptions()
			opts.Logger = log
			res, serr := heuristic.Solve(g, opts)
			if serr != nil {
				return serr
			}
			front, key = res.Front, experiment.KeyHeuristic
		case experiment.KeyMeta:
			opts := nsga.DefaultOptions()
			opts.Seed = *seed
			opts.Logger = log
			res, serr := nsga.Solve(g, opts)
			if serr != nil {
				return serr
			}
			front, key = res.Front, experiment.KeyMeta
		default:
			return fmt.Errorf("solve: unknown --algo %q", *algo)
		}
		out[key] = experiment.Run{
			Front:       front,
			Seconds:     time.Since(start).Seconds(),
			Hypervolume: front.Hypervolume(params.RefPoint()),
			Diversity:   front.Spread(),
		}
	}

	printSummary(out)
	if *output != "" {
		return experiment.WriteOutcome(out, *output)
	}

	return nil
}

func cmdExperiment(args []string) error {
	var (
		fs         = pflag.NewFlagSet("experiment", pflag.ContinueOnError)
		input      = fs.StringP("input", "i", "", "instance file (required)")
		paramsFile = fs.String("params", "", "optional parameter file")
		output     = fs.StringP("output", "o", "results.json", "result file")
		verbose    = fs.BoolP("verbose", "v", false, "log solver diagnostics")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *input == "" {
		return fmt.Errorf("experiment: --input <instance.json> is required")
	}

	g, err := graph.LoadFile(*input)
	if err != nil {
		return err
	}

	params := experiment.DefaultParams()
	if *paramsFile != "" {
		if params, err = experiment.LoadParams(*paramsFile); err != nil {
			return err
		}
	}

	log := buildLogger(*verbose)
	defer log.Sync() //nolint:errcheck

	out, err := experiment.Execute(g, params, log)
	if err != nil {
		return err
	}

	printSummary(out)

	return experiment.WriteOutcome(out, *output)
}

// printSummary writes a one-line-per-algorithm digest to stdout.
func printSummary(out experiment.Outcome) {
	var key string
	for _, key = range []string{
		experiment.KeyExact, experiment.KeyHeuristic, experiment.KeyMeta, experiment.KeyCombined,
	} {
		r, ok := out[key]
		if !ok {
			continue
		}
		fmt.Printf("%-10s front=%-3d hv=%-12.2f spread=%-8.2f time=%.3fs\n",
			key, r.Front.Size(), r.Hypervolume, r.Diversity, r.Seconds)
	}
}
