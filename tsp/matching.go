// Package tsp - minimum-weight matching on the odd-degree MST vertices.
//
// Christofides needs every vertex of the MST∪matching multigraph to have
// even degree. The handshake lemma guarantees the odd-degree set O has even
// cardinality, so a perfect matching over O always exists on a complete
// graph. Two policies are provided:
//
//   - exactMatch: true minimum-weight perfect matching via bitmask DP,
//     O(2ᵏ·k) time and O(2ᵏ) space for k=|O|. This is what the 1.5·OPT
//     Christofides proof requires. Practical for k ≤ 16.
//   - greedyMatch: nearest-available-partner pairing, O(k²). Deterministic
//     and fast, but the 1.5·OPT bound does not hold under it; the tour
//     stays valid, the guarantee becomes empirical.
//
// MatchAuto picks exactMatch whenever k ≤ exactMatchMaxOdd.
package tsp

import (
	"math"
	"math/bits"
)

// exactMatchMaxOdd bounds the odd-set size for the bitmask-DP matching
// under MatchAuto. 2¹⁶ DP entries keep the table well under a megabyte.
const exactMatchMaxOdd = 16

// oddVertices collects the vertices of odd degree in an adjacency list,
// in increasing index order.
//
// Complexity: O(n).
func oddVertices(adj [][]int) []int {
	odd := make([]int, 0, len(adj)/2+1)
	var v int
	for v = 0; v < len(adj); v++ {
		if len(adj[v])&1 == 1 {
			odd = append(odd, v)
		}
	}
	return odd
}

// matchOdd pairs up the odd vertices according to the selected policy and
// appends each matching edge to the multigraph adjacency in place. It
// returns the chosen pairs.
//
// Errors: ErrNoValidMatching if |odd| is odd — an internal invariant
// violation that indicates a defect in degree computation, never a user
// error.
func matchOdd(in *Instance, odd []int, adj [][]int, algo MatchingAlgo) ([][2]int, error) {
	if len(odd)&1 == 1 {
		return nil, ErrNoValidMatching
	}
	if len(odd) == 0 {
		return nil, nil
	}

	var pairs [][2]int
	switch algo {
	case MatchExact:
		pairs = exactMatch(in, odd)
	case MatchGreedy:
		pairs = greedyMatch(in, odd)
	default: // MatchAuto
		if len(odd) <= exactMatchMaxOdd {
			pairs = exactMatch(in, odd)
		} else {
			pairs = greedyMatch(in, odd)
		}
	}

	var p [2]int
	for _, p = range pairs {
		adj[p[0]] = append(adj[p[0]], p[1])
		adj[p[1]] = append(adj[p[1]], p[0])
	}
	return pairs, nil
}

// greedyMatch repeatedly takes the first remaining odd vertex and pairs it
// with its nearest remaining partner (ties broken by the ascending scan).
//
// Complexity: O(k²) time, O(k) space.
func greedyMatch(in *Instance, odd []int) [][2]int {
	var (
		remaining = append([]int(nil), odd...)
		pairs     = make([][2]int, 0, len(odd)/2)
	)
	for len(remaining) > 1 {
		u := remaining[0]
		remaining = remaining[1:]

		var (
			bestIdx = -1
			bestD   = math.Inf(1)
			i       int
			v       int
			d       float64
		)
		for i, v = range remaining {
			if d = in.Distance(u, v); d < bestD {
				bestD, bestIdx = d, i
			}
		}

		pairs = append(pairs, [2]int{u, remaining[bestIdx]})
		remaining = append(remaining[:bestIdx], remaining[bestIdx+1:]...)
	}
	return pairs
}

// exactMatch computes a minimum-weight perfect matching over odd by dynamic
// programming on subsets of the odd set.
//
// dp[mask] is the minimum total weight of a perfect matching on the
// vertices selected by mask. Fixing the lowest set bit i as one endpoint
// makes every matching counted exactly once:
//
//	dp[mask] = min over j ∈ mask\{i} of dp[mask\{i,j}] + d(odd[i], odd[j])
//
// Masks are iterated in increasing numeric order; every proper submask of
// mask is numerically smaller, so dependencies are always resolved first.
// Partner choices are recorded for reconstruction. The ascending j scan
// with strict < breaks weight ties toward the lowest partner index, so the
// result is deterministic.
//
// Contract: len(odd) is even and ≥ 2 (checked by matchOdd).
//
// Complexity: O(2ᵏ·k) time, O(2ᵏ) space.
func exactMatch(in *Instance, odd []int) [][2]int {
	var (
		k      = len(odd)
		full   = (1 << k) - 1
		dp     = make([]float64, 1<<k)
		choice = make([]int, 1<<k)
	)

	var mask int
	for mask = 1; mask <= full; mask++ {
		dp[mask] = math.Inf(1)
		choice[mask] = -1
	}
	dp[0] = 0

	var (
		i    int
		j    int
		rest int
		c    float64
	)
	for mask = 1; mask <= full; mask++ {
		// Lowest set bit is always matched first; masks with an odd
		// number of vertices are unreachable and stay at +Inf.
		i = bits.TrailingZeros(uint(mask))
		rest = mask &^ (1 << i)
		if rest == 0 {
			continue // singleton: no perfect matching
		}
		for j = i + 1; j < k; j++ {
			if rest&(1<<j) == 0 {
				continue
			}
			c = dp[rest&^(1<<j)] + in.Distance(odd[i], odd[j])
			if c < dp[mask] {
				dp[mask] = c
				choice[mask] = j
			}
		}
	}

	// Reconstruct the pairs from the recorded partner choices.
	pairs := make([][2]int, 0, k/2)
	mask = full
	for mask != 0 {
		i = bits.TrailingZeros(uint(mask))
		j = choice[mask]
		pairs = append(pairs, [2]int{odd[i], odd[j]})
		mask &^= (1 << i) | (1 << j)
	}
	return pairs
}

// matchingWeight sums the distances of a pair set; used by Christofides
// callers and tests to reason about matching quality.
//
// Complexity: O(k).
func matchingWeight(in *Instance, pairs [][2]int) float64 {
	var (
		sum float64
		p   [2]int
	)
	for _, p = range pairs {
		sum += in.Distance(p[0], p[1])
	}
	return round1e9(sum)
}
