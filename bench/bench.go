// Package bench repeatedly invokes a solver on one instance and tabulates
// per-run costs and wall times, the role the benchmarking harness plays
// around the core engine.
//
// Summaries use gonum (mean, sample standard deviation, minima); raw rows
// can be exported as CSV for external tooling.
package bench

import (
	"encoding/csv"
	"fmt"
	"io"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/freezing1116/tspsolve/tsp"
)

// Result holds the raw measurements of one benchmarked configuration.
type Result struct {
	// Name labels the configuration (instance + algorithm).
	Name string
	// Costs holds one tour length per run.
	Costs []float64
	// Seconds holds one wall-clock duration per run, in seconds.
	Seconds []float64
	// BestTour is the shortest tour observed across all runs.
	BestTour []int
}

// Summary is the aggregate view of a Result.
type Summary struct {
	Name        string
	Runs        int
	BestCost    float64
	MeanCost    float64
	StdCost     float64
	MeanSeconds float64
	MinSeconds  float64
}

// Run solves the instance runs times with identical options and records
// every outcome. Heuristic solvers receive a distinct derived seed per run
// (base seed + run index) so repetitions explore different tours while the
// whole benchmark stays reproducible.
func Run(name string, in *tsp.Instance, opts tsp.Options, runs int) (Result, error) {
	if runs < 1 {
		return Result{}, fmt.Errorf("bench: runs must be ≥ 1, got %d", runs)
	}

	res := Result{
		Name:    name,
		Costs:   make([]float64, 0, runs),
		Seconds: make([]float64, 0, runs),
	}

	var (
		r    int
		best = -1.0
	)
	for r = 0; r < runs; r++ {
		ropts := opts
		ropts.Seed = opts.Seed + int64(r)

		out, err := tsp.Solve(in, ropts)
		if err != nil {
			return Result{}, fmt.Errorf("bench: run %d: %w", r, err)
		}

		res.Costs = append(res.Costs, out.Cost)
		res.Seconds = append(res.Seconds, out.Elapsed.Seconds())
		if best < 0 || out.Cost < best {
			best = out.Cost
			res.BestTour = out.Tour
		}
	}
	return res, nil
}

// Summarize reduces a Result to its aggregate statistics.
func Summarize(r Result) Summary {
	return Summary{
		Name:        r.Name,
		Runs:        len(r.Costs),
		BestCost:    floats.Min(r.Costs),
		MeanCost:    stat.Mean(r.Costs, nil),
		StdCost:     stat.StdDev(r.Costs, nil),
		MeanSeconds: stat.Mean(r.Seconds, nil),
		MinSeconds:  floats.Min(r.Seconds),
	}
}

// WriteCSV emits one row per run of every result: name, run index, cost,
// seconds. The header row comes first.
func WriteCSV(w io.Writer, results []Result) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"name", "run", "cost", "seconds"}); err != nil {
		return err
	}

	var (
		res Result
		i   int
	)
	for _, res = range results {
		for i = range res.Costs {
			record := []string{
				res.Name,
				fmt.Sprintf("%d", i),
				fmt.Sprintf("%g", res.Costs[i]),
				fmt.Sprintf("%g", res.Seconds[i]),
			}
			if err := cw.Write(record); err != nil {
				return err
			}
		}
	}

	cw.Flush()
	return cw.Error()
}
