// Package tsp - sentinel errors, algorithm enums, and the Options surface
// shared by every solver.
//
// Design principles:
//   - Strict sentinels: callers branch with errors.Is; no fmt.Errorf inside
//     the engine where a sentinel suffices.
//   - Explicit configuration: all randomness and budgets flow through
//     Options; no process-wide state.
package tsp

import (
	"errors"
	"time"
)

// ErrInvalidInstance is returned when an instance cannot be constructed:
// fewer than two cities, or a coordinate that is NaN or infinite.
var ErrInvalidInstance = errors.New("tsp: invalid instance")

// ErrInstanceTooLarge is returned by TSPExact when the instance exceeds the
// configured Held–Karp ceiling. It is a checked precondition: the solver
// refuses to start rather than run for an impractical time.
var ErrInstanceTooLarge = errors.New("tsp: instance exceeds Held-Karp ceiling")

// ErrNoValidMatching indicates the odd-degree vertex set has odd cardinality.
// The handshake lemma makes this impossible for a well-formed tree, so it
// surfaces only on an internal defect, never on user input.
var ErrNoValidMatching = errors.New("tsp: odd-degree set has no perfect matching")

// ErrStartOutOfRange is returned when Options.StartVertex ∉ [0..n-1].
var ErrStartOutOfRange = errors.New("tsp: start vertex out of range")

// ErrDimensionMismatch is returned on malformed auxiliary input: a tour of
// the wrong length, a duplicate vertex, a negative budget, and similar
// shape violations.
var ErrDimensionMismatch = errors.New("tsp: dimension mismatch")

// ErrUnsupportedAlgorithm is returned by Solve for an unknown Options.Algo.
var ErrUnsupportedAlgorithm = errors.New("tsp: unsupported algorithm")

// ErrUnsupportedMST is returned for an unknown Options.MST selector.
var ErrUnsupportedMST = errors.New("tsp: unsupported MST algorithm")

// Algo selects the solver executed by Solve.
type Algo uint8

const (
	// HeldKarp - exact dynamic programming, O(n²·2ⁿ).
	HeldKarp Algo = iota
	// Christofides - MST + matching + Eulerian shortcut, ≤1.5·OPT with
	// exact matching on metric instances.
	Christofides
	// MSTPreorder - MST preorder walk, ≤2·OPT on metric instances.
	MSTPreorder
	// FuzzOpt2Opt - randomized restarts around 2-opt descent.
	FuzzOpt2Opt
	// FuzzOpt3Opt - randomized restarts around 3-opt descent.
	FuzzOpt3Opt
)

// MSTAlgo selects the spanning-tree builder used by MSTPreorder and
// Christofides.
type MSTAlgo uint8

const (
	// PrimMST - dense O(n²) Prim; the default, since all pairwise
	// distances are materialized anyway.
	PrimMST MSTAlgo = iota
	// KruskalMST - sorted edges + union-find, O(n² log n) on the
	// complete graph.
	KruskalMST
)

// MatchingAlgo selects the odd-vertex matching used by Christofides.
type MatchingAlgo uint8

const (
	// MatchAuto - exact matching when the odd set is small enough
	// (≤ exactMatchMaxOdd vertices), greedy otherwise.
	MatchAuto MatchingAlgo = iota
	// MatchExact - bitmask-DP minimum-weight perfect matching. Restores
	// the 1.5·OPT Christofides bound; exponential in the odd-set size.
	MatchExact
	// MatchGreedy - nearest-available-partner pairing. Deterministic and
	// fast, but the 1.5·OPT proof does not hold for it.
	MatchGreedy
)

// DefaultHeldKarpCeiling bounds TSPExact when Options.HeldKarpCeiling is 0.
// At n=20 the DP table already holds 20·2²⁰ entries.
const DefaultHeldKarpCeiling = 20

// Options configures a solve call. The zero value is usable; prefer
// DefaultOptions for explicit defaults.
type Options struct {
	// Algo routes Solve to a solver.
	Algo Algo

	// MST selects the spanning-tree builder (Prim by default).
	MST MSTAlgo

	// Matching selects the Christofides odd-vertex matching policy.
	Matching MatchingAlgo

	// StartVertex fixes the first (and closing) vertex of every tour.
	StartVertex int

	// Seed drives all randomness in heuristic solvers. Seed==0 selects a
	// fixed default stream, so the zero value is still reproducible.
	Seed int64

	// TimeLimit is a soft wall-clock budget. 0 means unlimited. When the
	// budget expires mid-solve, the best tour found so far is returned.
	TimeLimit time.Duration

	// MaxIters caps FuzzOpt perturbation rounds. 0 means n rounds.
	MaxIters int

	// TwoOptMaxIters caps accepted moves in a 2-opt/3-opt descent.
	// 0 means run to a local optimum.
	TwoOptMaxIters int

	// Eps is the strict-improvement tolerance: a move is accepted only
	// when Δ < −Eps. Must be ≥ 0.
	Eps float64

	// HeldKarpCeiling bounds TSPExact instance size. 0 means
	// DefaultHeldKarpCeiling.
	HeldKarpCeiling int

	// Improve enables a local-search post-pass after constructive solvers
	// (Christofides, MSTPreorder).
	Improve bool

	// BestImprovement switches 3-opt from first-improvement to
	// best-improvement scanning, and upgrades the Improve post-pass to
	// the hybrid 2-opt → 3-opt → 2-opt schedule.
	BestImprovement bool
}

// DefaultOptions returns the canonical configuration: Christofides with
// automatic matching, start at vertex 0, deterministic default seed,
// unlimited budgets.
func DefaultOptions() Options {
	return Options{
		Algo:            Christofides,
		MST:             PrimMST,
		Matching:        MatchAuto,
		StartVertex:     0,
		Seed:            0,
		TimeLimit:       0,
		MaxIters:        0,
		TwoOptMaxIters:  0,
		Eps:             0,
		HeldKarpCeiling: DefaultHeldKarpCeiling,
	}
}

// TSResult holds the outcome of a TSP solver.
type TSResult struct {
	// Tour is the sequence of vertex indices, starting and ending at the
	// configured start vertex. For n vertices, len(Tour) == n+1 and
	// Tour[0] == Tour[n].
	Tour []int

	// Cost is the total length of the cycle, rounded to 1e-9.
	Cost float64

	// Elapsed is the wall-clock computation time of the solve call.
	Elapsed time.Duration
}
