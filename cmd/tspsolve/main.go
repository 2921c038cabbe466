// Command tspsolve solves one or more TSPLIB .tsp instances exactly
// (Held–Karp) or approximately (Christofides, MST-Preorder, FuzzOpt).
//
// Exactly one algorithm flag must be given. Results go to stdout in the
// harness-parsable form
//
//	<name> (<path>):
//	  <method> tour length = <value>
//	  tour: <1-based city ids>
//
// (external tooling pattern-matches the "tour length = " substring, so
// that line is a compatibility contract). Diagnostics go to stderr as
// logfmt.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-kit/log"

	"github.com/freezing1116/tspsolve/bench"
	"github.com/freezing1116/tspsolve/tsp"
	"github.com/freezing1116/tspsolve/tsplib"
)

func main() {
	var (
		useHeldKarp     = flag.Bool("held-karp", false, "exact dynamic-programming solution (Held-Karp, O(n^2*2^n) time and space)")
		useChristofides = flag.Bool("christofides", false, "Christofides heuristic (<=1.5x optimum on metric TSP with exact matching)")
		useMSTApprox    = flag.Bool("approx-mst", false, "MST-preorder 2-approximation (<=2x optimum on metric TSP)")
		useFuzz2        = flag.Bool("fuzzopt-2opt", false, "FuzzOpt heuristic with 2-opt local search")
		useFuzz3        = flag.Bool("fuzzopt-3opt", false, "FuzzOpt heuristic with 3-opt local search")

		seed      = flag.Int64("seed", 0, "random seed for FuzzOpt (0 = fixed default stream)")
		timeLimit = flag.Duration("time-limit", 0, "soft wall-clock budget per solve (0 = unlimited)")
		iters     = flag.Int("iters", 0, "FuzzOpt perturbation rounds (0 = instance size)")
		hkCeiling = flag.Int("hk-ceiling", tsp.DefaultHeldKarpCeiling, "maximum instance size accepted by Held-Karp")
		start     = flag.Int("start", 0, "start city index (0-based)")
		improve   = flag.Bool("improve", false, "apply a 2-opt/3-opt post-pass to constructive tours")
		runs      = flag.Int("runs", 1, "repeat each solve N times and report statistics")
		csvPath   = flag.String("csv", "", "write per-run benchmark rows to this CSV file (requires -runs > 1)")
	)
	flag.Parse()

	var logger log.Logger
	{
		logger = log.NewLogfmtLogger(os.Stderr)
		logger = log.With(logger, "ts", log.DefaultTimestampUTC)
	}

	method, algo, ok := selectAlgorithm(*useHeldKarp, *useChristofides, *useMSTApprox, *useFuzz2, *useFuzz3)
	if !ok {
		logger.Log("err", "exactly one of -held-karp, -christofides, -approx-mst, -fuzzopt-2opt, -fuzzopt-3opt is required")
		flag.Usage()
		os.Exit(2)
	}
	if flag.NArg() == 0 {
		logger.Log("err", "no .tsp files or directories given")
		os.Exit(2)
	}

	opts := tsp.DefaultOptions()
	opts.Algo = algo
	opts.Seed = *seed
	opts.TimeLimit = *timeLimit
	opts.MaxIters = *iters
	opts.HeldKarpCeiling = *hkCeiling
	opts.StartVertex = *start
	opts.Improve = *improve

	var (
		results  []bench.Result
		exitCode int
	)
	for _, path := range collectTSPFiles(flag.Args(), logger) {
		problem, err := tsplib.ReadFile(path)
		if err != nil {
			logger.Log("err", err, "path", path)
			exitCode = 1
			continue
		}

		instance, err := tsp.NewInstance(problem.Cities)
		if err != nil {
			logger.Log("err", err, "path", path, "dimension", problem.Dimension)
			exitCode = 1
			continue
		}

		if *runs > 1 {
			name := fmt.Sprintf("%s/%s", problem.Name, method)
			res, err := bench.Run(name, instance, opts, *runs)
			if err != nil {
				logger.Log("err", err, "path", path)
				exitCode = 1
				continue
			}
			results = append(results, res)

			s := bench.Summarize(res)
			logger.Log("msg", "benchmark", "name", s.Name, "runs", s.Runs,
				"best", s.BestCost, "mean", s.MeanCost, "std", s.StdCost,
				"mean_s", s.MeanSeconds)
			printResult(problem, path, method, res.BestTour, s.BestCost)
			continue
		}

		out, err := tsp.Solve(instance, opts)
		if err != nil {
			logger.Log("err", err, "path", path, "algo", method)
			exitCode = 1
			continue
		}
		logger.Log("msg", "solved", "instance", problem.Name, "algo", method,
			"n", instance.N(), "cost", out.Cost, "elapsed", out.Elapsed)
		printResult(problem, path, method, out.Tour, out.Cost)
	}

	if *csvPath != "" && len(results) > 0 {
		f, err := os.Create(*csvPath)
		if err != nil {
			logger.Log("err", err, "path", *csvPath)
			os.Exit(1)
		}
		if err := bench.WriteCSV(f, results); err != nil {
			logger.Log("err", err, "path", *csvPath)
			f.Close()
			os.Exit(1)
		}
		f.Close()
	}

	os.Exit(exitCode)
}

// selectAlgorithm enforces the mutually exclusive algorithm flags.
func selectAlgorithm(hk, chr, mst, f2, f3 bool) (string, tsp.Algo, bool) {
	type choice struct {
		set    bool
		method string
		algo   tsp.Algo
	}
	choices := []choice{
		{hk, "Held-Karp", tsp.HeldKarp},
		{chr, "Christofides", tsp.Christofides},
		{mst, "MST-Preorder(2-Approx)", tsp.MSTPreorder},
		{f2, "FuzzOpt(2-opt)", tsp.FuzzOpt2Opt},
		{f3, "FuzzOpt(3-opt)", tsp.FuzzOpt3Opt},
	}

	var (
		picked choice
		count  int
	)
	for _, c := range choices {
		if c.set {
			picked = c
			count++
		}
	}
	if count != 1 {
		return "", 0, false
	}
	return picked.method, picked.algo, true
}

// collectTSPFiles expands the positional arguments: directories contribute
// their *.tsp entries, plain files pass through, anything else is skipped
// with a warning.
func collectTSPFiles(paths []string, logger log.Logger) []string {
	var out []string
	for _, p := range paths {
		info, err := os.Stat(p)
		switch {
		case err == nil && info.IsDir():
			matches, _ := filepath.Glob(filepath.Join(p, "*.tsp"))
			out = append(out, matches...)
		case err == nil && strings.HasSuffix(p, ".tsp"):
			out = append(out, p)
		default:
			logger.Log("msg", "skipping input", "path", p)
		}
	}
	return out
}

// printResult emits the harness-facing output block for one solve.
func printResult(p *tsplib.Problem, path, method string, tour []int, cost float64) {
	fmt.Printf("%s (%s):\n", p.Name, path)
	fmt.Printf("  %s tour length = %g\n", method, cost)
	fmt.Printf("  tour: %s\n\n", formatTour(p.Cities, tour))
}

// formatTour renders a closed tour as the 1-based city ids from the input
// file.
func formatTour(cities []tsp.City, tour []int) string {
	var b strings.Builder
	for i, v := range tour {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%d", cities[v].ID)
	}
	return b.String()
}
