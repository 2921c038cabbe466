// Package tsp - cost utilities shared by exact/heuristic solvers.
//
// Stable summation: final costs are rounded to 1e-9 to avoid cross-platform
// floating-point noise without affecting optimality.
package tsp

import "math"

// roundScale controls final cost stabilization precision (1e-9).
const roundScale = 1e9

// TourCost sums the edge lengths along a closed tour, including the closing
// edge back to the start.
//
// Contract:
//   - tour represents a closed cycle: len(tour) ≥ 2 and every index within
//     [0..n-1]. Full cycle invariants are enforced by ValidateTour; this
//     helper only guards the reads it performs.
//
// Errors: ErrDimensionMismatch on nil input or an out-of-range index.
//
// Complexity: O(n) time, O(1) space.
func TourCost(in *Instance, tour []int) (float64, error) {
	if in == nil || tour == nil || len(tour) < 2 {
		return 0, ErrDimensionMismatch
	}

	var (
		n   = in.n
		L   = len(tour) - 1 // last index closes the cycle
		sum float64
		i   int
		u   int
		v   int
	)
	for i = 0; i < L; i++ {
		u = tour[i]
		v = tour[i+1]
		if u < 0 || u >= n || v < 0 || v >= n {
			return 0, ErrDimensionMismatch
		}
		sum += in.dist[u*n+v]
	}

	return round1e9(sum), nil
}

// round1e9 returns x rounded to 1e-9 absolute precision.
//
// Complexity: O(1).
func round1e9(x float64) float64 {
	return math.Round(x*roundScale) / roundScale
}
