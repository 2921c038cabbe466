// Package tsp - Christofides approximation.
//
// TSPChristofides computes an approximate Hamiltonian cycle for the metric
// TSP via the classic pipeline:
//
//  1. Minimum spanning tree on the complete metric graph.
//  2. Minimum-weight perfect matching on the odd-degree MST vertices.
//  3. Eulerian circuit on the MST∪matching multigraph (every vertex now
//     has even degree, so one exists).
//  4. Shortcutting: skip revisited vertices to obtain a Hamiltonian tour
//     (never longer, by the triangle inequality).
//
// Guarantee:
//   - ≤ 1.5·OPT when step 2 is an exact minimum-weight perfect matching
//     (Options.Matching == MatchExact, or MatchAuto with a small odd set).
//   - With greedy matching the tour remains valid and deterministic, but
//     the 1.5 factor is empirical, not proven.
//
// Determinism is intrinsic: no RNG anywhere in the pipeline, and every
// tie-break resolves toward the lowest vertex index.
package tsp

import "time"

// TSPChristofides runs the Christofides pipeline on a Euclidean instance.
//
// Errors: ErrInvalidInstance, ErrStartOutOfRange, ErrUnsupportedMST,
// ErrNoValidMatching (internal invariant, never expected).
//
// Complexity: O(n²) with greedy matching; exact matching adds O(2ᵏ·k) for
// k odd-degree vertices.
func TSPChristofides(in *Instance, opts Options) (TSResult, error) {
	started := time.Now()

	n, err := validateCommon(in, opts)
	if err != nil {
		return TSResult{}, err
	}

	// 1) Minimum spanning tree.
	t, err := MinimumSpanningTree(in, opts)
	if err != nil {
		return TSResult{}, err
	}

	// Private multigraph copy: the matching appends edges, and the MST
	// value should stay untouched for the caller.
	multi := make([][]int, n)
	var v int
	for v = 0; v < n; v++ {
		multi[v] = append([]int(nil), t.Adj[v]...)
	}

	// 2) Perfect matching over the odd-degree vertices.
	odd := oddVertices(multi)
	if _, err = matchOdd(in, odd, multi, opts.Matching); err != nil {
		return TSResult{}, err
	}

	// 3) Eulerian circuit on the even-degree multigraph.
	euler := eulerianCircuit(multi, opts.StartVertex)

	// 4) Shortcut revisits into a Hamiltonian tour.
	tour, err := ShortcutEulerianToHamiltonian(euler, n, opts.StartVertex)
	if err != nil {
		return TSResult{}, err
	}
	_ = CanonicalizeOrientationInPlace(tour)

	cost, err := TourCost(in, tour)
	if err != nil {
		return TSResult{}, err
	}

	if verr := ValidateTour(tour, n, opts.StartVertex); verr != nil {
		return TSResult{}, verr
	}

	return TSResult{Tour: tour, Cost: cost, Elapsed: time.Since(started)}, nil
}
