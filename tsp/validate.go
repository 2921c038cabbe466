// Package tsp - validation utilities shared by exact/heuristic solvers.
//
// Deterministic, side-effect free helpers; no logging, no panics on user
// input - only sentinel errors from types.go.
package tsp

import "time"

// validateCommon verifies the instance, Options consistency, and the start
// vertex. It returns n on success. Every exported solver calls this first.
//
// Complexity: O(1).
func validateCommon(in *Instance, opts Options) (int, error) {
	if in == nil {
		return 0, ErrInvalidInstance
	}
	if err := validateOptionsStandalone(opts); err != nil {
		return 0, err
	}
	if err := validateStartVertex(in.n, opts.StartVertex); err != nil {
		return 0, err
	}
	return in.n, nil
}

// validateOptionsStandalone checks internal consistency of Options without
// referencing an instance or tour.
//
// Complexity: O(1).
func validateOptionsStandalone(opts Options) error {
	// Negative durations are undefined.
	if opts.TimeLimit < 0 {
		return ErrDimensionMismatch
	}
	// A negative epsilon would invert the acceptance rule Δ < −Eps.
	if opts.Eps < 0 {
		return ErrDimensionMismatch
	}
	// Iteration bounds must be non-negative (0 ⇒ unlimited / default).
	if opts.TwoOptMaxIters < 0 || opts.MaxIters < 0 {
		return ErrDimensionMismatch
	}
	if opts.HeldKarpCeiling < 0 {
		return ErrDimensionMismatch
	}

	switch opts.MST {
	case PrimMST, KruskalMST:
	default:
		return ErrUnsupportedMST
	}

	switch opts.Matching {
	case MatchAuto, MatchExact, MatchGreedy:
	default:
		return ErrUnsupportedAlgorithm
	}

	return nil
}

// validateStartVertex verifies start ∈ [0..n-1].
//
// Complexity: O(1).
func validateStartVertex(n, start int) error {
	if start < 0 || start >= n {
		return ErrStartOutOfRange
	}
	return nil
}

// deadlineFrom converts the soft time budget into an absolute deadline.
// ok==false means no budget is enforced.
//
// Complexity: O(1).
func deadlineFrom(opts Options) (deadline time.Time, ok bool) {
	if opts.TimeLimit <= 0 {
		return time.Time{}, false
	}
	return time.Now().Add(opts.TimeLimit), true
}
