// Package tsp - FuzzOpt: randomized perturb-and-descend heuristic.
//
// TSPFuzzOpt starts from a seeded random tour and repeatedly (1) perturbs
// the incumbent - usually a random pair swap, periodically a double-bridge
// move, the classic 4-segment reconnection that 2-opt cannot undo - and
// (2) descends with 2-opt or 3-opt local search, keeping the candidate only
// when it is strictly shorter. The perturbation is a diversification
// ("fuzz") step to escape local optima, not gradient-following.
//
// Reproducibility: all randomness comes from Options.Seed via the package
// RNG helpers; a fixed seed yields an identical tour on every run.
//
// Termination: after Options.MaxIters perturbation rounds (default n), or
// when the soft TimeLimit expires - in both cases the best tour found so
// far is returned, never a partial or invalid one.
package tsp

import (
	"math/rand"
	"time"
)

// doubleBridgeEvery schedules the stronger perturbation: every 8th round
// uses a double-bridge move instead of a pair swap.
const doubleBridgeEvery = 8

// TSPFuzzOpt runs the FuzzOpt heuristic. useThreeOpt selects the descent
// engine: 3-opt explores a larger neighborhood at O(n³) per pass, 2-opt is
// the fast default.
//
// Errors: only shape/option sentinels; budget exhaustion returns best-so-far.
//
// Complexity: O(rounds · descent), with descent O(n²) for 2-opt and O(n³)
// for 3-opt per pass.
func TSPFuzzOpt(in *Instance, opts Options, useThreeOpt bool) (TSResult, error) {
	started := time.Now()

	n, err := validateCommon(in, opts)
	if err != nil {
		return TSResult{}, err
	}

	deadline, bounded := deadlineFrom(opts)

	var (
		rng     = rngFromSeed(opts.Seed)
		descend = func(tour []int) ([]int, float64, error) {
			// Hand the descent only the remaining share of the budget so
			// the whole solve respects one wall-clock limit.
			dopts := opts
			if bounded {
				dopts.TimeLimit = time.Until(deadline)
				if dopts.TimeLimit <= 0 {
					c, cerr := TourCost(in, tour)
					return tour, c, cerr
				}
			}
			if useThreeOpt {
				return ThreeOpt(in, tour, dopts)
			}
			return TwoOpt(in, tour, dopts)
		}
	)

	// Seeded random starting tour, then an initial descent.
	perm, err := permRange(n, rng)
	if err != nil {
		return TSResult{}, err
	}
	best, err := MakeTourFromPermutation(perm, n, opts.StartVertex)
	if err != nil {
		return TSResult{}, err
	}
	best, bestCost, err := descend(best)
	if err != nil {
		return TSResult{}, err
	}

	rounds := opts.MaxIters
	if rounds == 0 {
		rounds = n
	}

	var (
		r         int
		candidate []int
		cost      float64
	)
	for r = 0; r < rounds; r++ {
		if bounded && time.Now().After(deadline) {
			break // budget exhausted: keep the incumbent
		}
		if n < 4 {
			break // nothing to perturb on degenerate tours
		}

		candidate = CopyTour(best)
		if (r+1)%doubleBridgeEvery == 0 && n >= 8 {
			candidate = doubleBridge(candidate, rng)
		} else {
			swapInterior(candidate, rng)
		}

		candidate, cost, err = descend(candidate)
		if err != nil {
			return TSResult{}, err
		}
		if cost < bestCost {
			best, bestCost = candidate, cost
		}
	}

	_ = CanonicalizeOrientationInPlace(best)
	if verr := ValidateTour(best, n, opts.StartVertex); verr != nil {
		return TSResult{}, verr
	}
	cost, err = TourCost(in, best)
	if err != nil {
		return TSResult{}, err
	}

	return TSResult{Tour: best, Cost: cost, Elapsed: time.Since(started)}, nil
}

// swapInterior exchanges two distinct random interior positions of a
// closed tour, leaving the start/closing vertex alone.
//
// Contract: len(tour) ≥ 5 (n ≥ 4), rng non-nil.
func swapInterior(tour []int, rng *rand.Rand) {
	var (
		n = len(tour) - 1
		u = 1 + rng.Intn(n-1)
		v = 1 + rng.Intn(n-1)
	)
	for u == v {
		v = 1 + rng.Intn(n-1)
	}
	tour[u], tour[v] = tour[v], tour[u]
}

// doubleBridge cuts the closed tour into four segments A·B·C·D at three
// random interior points and reconnects them as A·C·B·D. The move changes
// four edges at once, which a single 2-opt pass cannot revert.
//
// Contract: len(tour) ≥ 9 (n ≥ 8), rng non-nil.
func doubleBridge(tour []int, rng *rand.Rand) []int {
	var (
		n = len(tour) - 1
		p = 1 + rng.Intn(n-3)
		q = p + 1 + rng.Intn(n-p-2)
		r = q + 1 + rng.Intn(n-q-1)
	)

	out := make([]int, 0, n+1)
	out = append(out, tour[:p]...)
	out = append(out, tour[q:r]...)
	out = append(out, tour[p:q]...)
	return append(out, tour[r:]...)
}
