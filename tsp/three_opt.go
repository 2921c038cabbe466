// Package tsp - 3-opt local search.
//
// ThreeOpt removes three edges of a closed tour and evaluates every
// non-trivial reconnection. With cut indices 1 ≤ i < j < k ≤ n−1 the tour
// splits into prefix P = T[0..i−1], S1 = T[i..j−1], S2 = T[j..k−1], and the
// fixed tail T[k..n]. Writing a=T[i−1], b=T[i], c=T[j−1], d=T[j], e=T[k−1],
// f=T[k], the seven reconnections are:
//
//	1: P · rev(S1) ·     S2   — edges (a,c)(b,d)(e,f)   [2-opt]
//	2: P ·     S1  · rev(S2)  — edges (a,b)(c,e)(d,f)   [2-opt]
//	3: P · rev(S1) · rev(S2)  — edges (a,c)(b,e)(d,f)
//	4: P ·     S2  ·     S1   — edges (a,d)(e,b)(c,f)
//	5: P ·     S2  · rev(S1)  — edges (a,d)(e,c)(b,f)
//	6: P · rev(S2) ·     S1   — edges (a,e)(d,b)(c,f)
//	7: P · rev(S2) · rev(S1)  — edges (a,e)(d,c)(b,f)
//
// Policies:
//   - First-improvement (default): apply the first strictly improving
//     reconnection and restart the scan.
//   - Best-improvement (Options.BestImprovement): scan the whole
//     neighborhood, apply the single best move, repeat.
//
// Budget semantics match TwoOpt: accepted-move cap and soft deadline both
// return the current valid tour, never an error.
//
// Complexity: O(n³) Δ-evaluations per pass; an accepted move rebuilds the
// tour in O(n).
package tsp

import "time"

// threeOptMove identifies one candidate reconnection.
type threeOptMove struct {
	i, j, k int
	variant uint8 // 1..7 per the table above
	delta   float64
}

// ThreeOpt runs 3-opt descent starting from initTour. The input slice is
// never mutated. Returns the improved tour (same start) and its stabilized
// cost.
func ThreeOpt(in *Instance, initTour []int, opts Options) ([]int, float64, error) {
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

	cur := CopyTour(initTour)
	cost, err := TourCost(in, cur)
	if err != nil {
		return nil, 0, err
	}
	if n < 4 {
		// No room for three distinct cuts; the tour is already optimal
		// within this neighborhood.
		return cur, cost, nil
	}

	var (
		d   = in.matrix()
		at  = func(u, v int) float64 { return d[u*n+v] }
		eps = opts.Eps
	)
	maxMoves := opts.TwoOptMaxIters // shared accepted-move cap; 0 ⇒ unlimited

	deadline, bounded := deadlineFrom(opts)
	var step int
	expired := func() bool {
		step++
		if !bounded || step&4095 != 0 {
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
		var (
			best      threeOptMove // best-improvement candidate
			found     bool
			stop      bool
			i, j, k   int
			a, b      int
			c, dd     int
			e, f      int
			base      float64
			delta     [8]float64 // indexed by variant; 0 unused
			v         uint8
		)

	scan:
		for i = 1; i <= n-3; i++ {
			for j = i + 1; j <= n-2; j++ {
				for k = j + 1; k <= n-1; k++ {
					if expired() {
						stop = true
						break scan
					}

					a, b = cur[i-1], cur[i]
					c, dd = cur[j-1], cur[j]
					e, f = cur[k-1], cur[k]
					base = at(a, b) + at(c, dd) + at(e, f)

					delta[1] = at(a, c) + at(b, dd) + at(e, f) - base
					delta[2] = at(a, b) + at(c, e) + at(dd, f) - base
					delta[3] = at(a, c) + at(b, e) + at(dd, f) - base
					delta[4] = at(a, dd) + at(e, b) + at(c, f) - base
					delta[5] = at(a, dd) + at(e, c) + at(b, f) - base
					delta[6] = at(a, e) + at(dd, b) + at(c, f) - base
					delta[7] = at(a, e) + at(dd, c) + at(b, f) - base

					for v = 1; v <= 7; v++ {
						if delta[v] >= -eps {
							continue
						}
						if !found || delta[v] < best.delta {
							best = threeOptMove{i: i, j: j, k: k, variant: v, delta: delta[v]}
							found = true
						}
						if !opts.BestImprovement {
							break scan // first-improvement: apply now
						}
					}
				}
			}
		}

		if found {
			cur = applyThreeOpt(cur, best.i, best.j, best.k, best.variant)
			cost += best.delta
			accepted++
			if maxMoves > 0 && accepted >= maxMoves {
				return finish()
			}
		}
		if stop || !found {
			return finish()
		}
	}
}

// applyThreeOpt rebuilds the tour for one reconnection variant. The
// returned slice is fresh; cur is left intact.
//
// Complexity: O(n) time and space.
func applyThreeOpt(cur []int, i, j, k int, variant uint8) []int {
	var (
		n   = len(cur) - 1
		s1  = cur[i:j]
		s2  = cur[j:k]
		out = make([]int, 0, n+1)
	)
	out = append(out, cur[:i]...)

	switch variant {
	case 1:
		out = appendReversed(out, s1)
		out = append(out, s2...)
	case 2:
		out = append(out, s1...)
		out = appendReversed(out, s2)
	case 3:
		out = appendReversed(out, s1)
		out = appendReversed(out, s2)
	case 4:
		out = append(out, s2...)
		out = append(out, s1...)
	case 5:
		out = append(out, s2...)
		out = appendReversed(out, s1)
	case 6:
		out = appendReversed(out, s2)
		out = append(out, s1...)
	case 7:
		out = appendReversed(out, s2)
		out = appendReversed(out, s1)
	}

	return append(out, cur[k:]...)
}

// appendReversed appends seg to dst in reverse order.
func appendReversed(dst, seg []int) []int {
	for i := len(seg) - 1; i >= 0; i-- {
		dst = append(dst, seg[i])
	}
	return dst
}
