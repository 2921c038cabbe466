// Package tsp - Held–Karp exact dynamic programming.
//
// TSPExact solves the instance optimally in O(n²·2ⁿ) time and O(n·2ⁿ)
// memory. The DP table is a flat array indexed by (subset bitmask,
// endpoint) for cache locality - no nested slices, no hashing.
//
// Subset-order note: masks are iterated in increasing numeric order, which
// is also non-decreasing population-count order for the dependencies that
// matter - every proper submask of a mask is numerically smaller, so
// dp[prevMask] is always final before dp[mask] reads it.
//
// Budget semantics: the instance-size ceiling is a checked precondition
// (ErrInstanceTooLarge), never a silent hang. A soft TimeLimit is polled at
// mask-block boundaries; if it expires mid-DP there is no partial optimum
// to salvage, so the solver degrades to a deterministic nearest-neighbour
// tour - a valid best-effort result, not an error.
package tsp

import (
	"math"
	"time"
)

// TSPExact computes the optimal tour with the Held–Karp algorithm.
//
// dp[mask*n+j] is the minimum cost of a path that starts at
// opts.StartVertex, visits exactly the vertex set mask (which always
// contains the start), and ends at j. The tour closes with the cheapest
// return edge and is reconstructed from recorded predecessors.
//
// Errors: ErrInstanceTooLarge when n exceeds the configured ceiling;
// shape/start sentinels from validation.
//
// Complexity: O(n²·2ⁿ) time, O(n·2ⁿ) space.
func TSPExact(in *Instance, opts Options) (TSResult, error) {
	started := time.Now()

	n, err := validateCommon(in, opts)
	if err != nil {
		return TSResult{}, err
	}

	ceiling := opts.HeldKarpCeiling
	if ceiling == 0 {
		ceiling = DefaultHeldKarpCeiling
	}
	// Checked precondition: refuse impractical sizes before any allocation.
	if n > ceiling {
		return TSResult{}, ErrInstanceTooLarge
	}

	var (
		d     = in.matrix()
		start = opts.StartVertex
		size  = 1 << n
		full  = size - 1
		sbit  = 1 << start
	)

	// Flat DP and predecessor tables.
	dp := make([]float64, size*n)
	pred := make([]int32, size*n)
	var i int
	for i = range dp {
		dp[i] = math.Inf(1)
		pred[i] = -1
	}
	dp[sbit*n+start] = 0

	deadline, bounded := deadlineFrom(opts)

	var (
		mask     int
		prevMask int
		j        int
		k        int
		cand     float64
		base     float64
		polls    int
	)
	for mask = sbit; mask <= full; mask++ {
		if mask&sbit == 0 {
			continue // every subset must contain the start
		}
		// Budget poll at subset boundaries, throttled to stay off the
		// hot path. Counted independently of mask: every processed mask
		// contains the start bit, so mask values alone would skip the
		// poll pattern entirely for low start indices.
		polls++
		if bounded && polls&1023 == 0 && time.Now().After(deadline) {
			return nearestNeighborResult(in, opts, started)
		}

		for j = 0; j < n; j++ {
			if j == start || mask&(1<<j) == 0 {
				continue
			}
			prevMask = mask &^ (1 << j)
			for k = 0; k < n; k++ {
				if prevMask&(1<<k) == 0 {
					continue
				}
				base = dp[prevMask*n+k]
				if math.IsInf(base, 1) {
					continue
				}
				cand = base + d[k*n+j]
				if cand < dp[mask*n+j] {
					dp[mask*n+j] = cand
					pred[mask*n+j] = int32(k)
				}
			}
		}
	}

	// Close the tour with the cheapest return edge.
	var (
		bestCost = math.Inf(1)
		last     = -1
		total    float64
	)
	for j = 0; j < n; j++ {
		if j == start {
			continue
		}
		total = dp[full*n+j] + d[j*n+start]
		if total < bestCost {
			bestCost = total
			last = j
		}
	}
	// Reconstruct the optimal tour from the predecessor table.
	tour := make([]int, n+1)
	tour[n] = start
	mask = full
	j = last
	for i = n - 1; i >= 1; i-- {
		tour[i] = j
		k = int(pred[mask*n+j])
		mask &^= 1 << j
		j = k
	}
	tour[0] = start

	_ = CanonicalizeOrientationInPlace(tour)
	if verr := ValidateTour(tour, n, start); verr != nil {
		return TSResult{}, verr
	}

	return TSResult{Tour: tour, Cost: round1e9(bestCost), Elapsed: time.Since(started)}, nil
}

// nearestNeighborTour builds a deterministic greedy tour from start: at
// every step move to the closest unvisited city, ties to the lowest index.
// Used as the best-effort fallback when the exact DP runs out of budget.
//
// Complexity: O(n²) time, O(n) space.
func nearestNeighborTour(in *Instance, start int) []int {
	var (
		n       = in.n
		d       = in.matrix()
		visited = make([]bool, n)
		tour    = make([]int, n+1)
		cur     = start
		i       int
		v       int
		next    int
		bestW   float64
	)
	visited[start] = true
	tour[0] = start
	for i = 1; i < n; i++ {
		next, bestW = -1, math.Inf(1)
		for v = 0; v < n; v++ {
			if !visited[v] && d[cur*n+v] < bestW {
				bestW, next = d[cur*n+v], v
			}
		}
		visited[next] = true
		tour[i] = next
		cur = next
	}
	tour[n] = start
	return tour
}

// nearestNeighborResult wraps nearestNeighborTour into a TSResult with
// stabilized cost and the elapsed time since started.
func nearestNeighborResult(in *Instance, opts Options, started time.Time) (TSResult, error) {
	tour := nearestNeighborTour(in, opts.StartVertex)
	_ = CanonicalizeOrientationInPlace(tour)
	cost, err := TourCost(in, tour)
	if err != nil {
		return TSResult{}, err
	}
	return TSResult{Tour: tour, Cost: cost, Elapsed: time.Since(started)}, nil
}
