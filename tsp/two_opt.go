// Package tsp - 2-opt local search.
//
// TwoOpt performs deterministic first-improvement 2-opt on a closed tour:
// for cut indices 1 ≤ i < k ≤ n−1 with a=T[i−1], b=T[i], c=T[k], d=T[k+1],
// reversing the segment [i..k] replaces edges (a,b),(c,d) with (a,c),(b,d):
//
//	Δ = w(a,c) + w(b,d) − w(a,b) − w(c,d)
//
// A move is accepted only when Δ < −Eps, so the output never exceeds the
// input length. The scan restarts after each accepted move and terminates
// at a local optimum, on the accepted-move cap, or on the soft deadline -
// in every case the current valid tour is returned, never an error for
// running out of budget.
//
// Complexity: O(n²) candidate checks per pass; each accepted move costs
// O(k−i) for the in-place reversal. Typically O(iter·n²) overall.
package tsp

import "time"

// TwoOpt runs first-improvement 2-opt descent starting from initTour.
// The input slice is never mutated. Returns the improved tour (same start)
// and its stabilized cost.
func TwoOpt(in *Instance, initTour []int, opts Options) ([]int, float64, error) {
	if in == nil || initTour == nil || len(initTour) < 2 {
		return nil, 0, ErrDimensionMismatch
	}
	n := len(initTour) - 1
	if n != in.n {
		return nil, 0, ErrDimensionMismatch
	}
	if err := ValidateTour(initTour, n, opts.StartVertex); err != nil {
		return nil, 0, err
	}

	var (
		d   = in.matrix()
		cur = CopyTour(initTour)
	)
	cost, err := TourCost(in, cur)
	if err != nil {
		return nil, 0, err
	}

	// Policy knobs.
	eps := opts.Eps
	maxMoves := opts.TwoOptMaxIters // 0 ⇒ run to local optimum

	deadline, bounded := deadlineFrom(opts)
	var step int
	// Throttled deadline poll: every 2048 candidate evaluations.
	expired := func() bool {
		step++
		if !bounded || step&2047 != 0 {
			return false
		}
		return time.Now().After(deadline)
	}

	finish := func() ([]int, float64, error) {
		_ = CanonicalizeOrientationInPlace(cur)
		if verr := ValidateTour(cur, n, opts.StartVertex); verr != nil {
			return nil, 0, verr
		}
		return cur, round1e9(cost), nil
	}

	accepted := 0
	for {
		improved := false

		var (
			i, k       int     // cut indices
			a, b, c, e int     // boundary vertices (e plays the d role)
			delta      float64 // candidate improvement; negative is good
		)
		for i = 1; i <= n-2 && !improved; i++ {
			for k = i + 1; k <= n-1; k++ {
				if expired() {
					return finish() // budget exhausted: best-so-far
				}

				a = cur[i-1]
				b = cur[i]
				c = cur[k]
				e = cur[k+1]

				delta = (d[a*in.n+c] + d[b*in.n+e]) - (d[a*in.n+b] + d[c*in.n+e])
				if delta >= -eps {
					continue
				}

				if err = reverseArcInPlace(cur, i, k); err != nil {
					return nil, 0, err
				}
				cost += delta
				accepted++
				improved = true

				if maxMoves > 0 && accepted >= maxMoves {
					return finish()
				}
				// First-improvement: restart the scan.
				break
			}
		}

		if !improved {
			break // local optimum
		}
	}

	return finish()
}
