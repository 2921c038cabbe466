// Package tsp - unified dispatcher for TSP solvers.
//
// Solve is the canonical entry point: it validates the instance and the
// Options, routes to the solver selected by Options.Algo, optionally runs
// a local-search post-pass over constructive results, and enforces tour
// invariants before returning.
//
// Design principles:
//   - Deterministic: all randomness is seed-routed; no time-based sources.
//   - Strict sentinels: only errors from types.go.
//   - Best-effort budgets: an expired TimeLimit yields the best tour found
//     so far, never an error and never a partial tour.
package tsp

import "time"

// Solve validates inputs and routes to the algorithm selected by opts.Algo.
//
// Post-pass policy for constructive solvers (Christofides, MSTPreorder)
// when opts.Improve is set:
//   - BestImprovement==false → a single 2-opt descent (fast),
//   - BestImprovement==true  → hybrid 2-opt → 3-opt(best) → 2-opt polish.
//
// Exact and FuzzOpt results are returned as-is: the former is optimal, the
// latter already embeds its own descent.
//
// Errors: sentinels from types.go (ErrInvalidInstance, ErrStartOutOfRange,
// ErrUnsupportedAlgorithm, ErrInstanceTooLarge, …).
//
// Complexity: per chosen algorithm; validation is O(1) because the
// instance was validated at construction.
func Solve(in *Instance, opts Options) (TSResult, error) {
	started := time.Now()

	n, err := validateCommon(in, opts)
	if err != nil {
		return TSResult{}, err
	}

	var res TSResult
	switch opts.Algo {
	case HeldKarp:
		res, err = TSPExact(in, opts)

	case Christofides:
		res, err = TSPChristofides(in, opts)
		if err == nil && opts.Improve {
			res, err = improvePass(in, res, opts)
		}

	case MSTPreorder:
		res, err = TSPPreorder(in, opts)
		if err == nil && opts.Improve {
			res, err = improvePass(in, res, opts)
		}

	case FuzzOpt2Opt:
		res, err = TSPFuzzOpt(in, opts, false)

	case FuzzOpt3Opt:
		res, err = TSPFuzzOpt(in, opts, true)

	default:
		return TSResult{}, ErrUnsupportedAlgorithm
	}
	if err != nil {
		return TSResult{}, err
	}

	if verr := ValidateTour(res.Tour, n, opts.StartVertex); verr != nil {
		return TSResult{}, verr
	}
	res.Elapsed = time.Since(started)
	return res, nil
}

// improvePass refines a constructive tour with local search. A cheap 2-opt
// always runs first; BestImprovement upgrades the schedule to
// 2-opt → 3-opt(best) → 2-opt, which often squeezes out a little more.
func improvePass(in *Instance, res TSResult, opts Options) (TSResult, error) {
	if in.n < 4 {
		return res, nil // neighborhoods are empty below four cities
	}

	tour, cost, err := TwoOpt(in, res.Tour, opts)
	if err != nil {
		return TSResult{}, err
	}

	if opts.BestImprovement {
		if tour, cost, err = ThreeOpt(in, tour, opts); err != nil {
			return TSResult{}, err
		}
		if tour, cost, err = TwoOpt(in, tour, opts); err != nil {
			return TSResult{}, err
		}
	}

	res.Tour = tour
	res.Cost = cost
	return res, nil
}
