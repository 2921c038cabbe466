// Package tsp_test provides lightweight helpers shared across the *_test.go
// files of this package: deterministic random instances, canonical fixtures,
// and a brute-force optimum for cross-checking solvers on tiny inputs.
package tsp_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/freezing1116/tspsolve/tsp"
)

const (
	// seedDet is the fixed seed used wherever a test needs reproducible
	// random geometry.
	seedDet int64 = 42

	// epsGeo is a relaxed tolerance for floating-point geometric
	// comparisons (costs are already stabilized to 1e-9 by the engine).
	epsGeo = 1e-6
)

// randomCities produces n cities with coordinates in [0,100)², generated
// deterministically from seed. IDs are 1-based like TSPLIB files.
func randomCities(n int, seed int64) []tsp.City {
	rng := rand.New(rand.NewSource(seed))
	cities := make([]tsp.City, n)
	for i := 0; i < n; i++ {
		cities[i] = tsp.City{ID: i + 1, X: rng.Float64() * 100, Y: rng.Float64() * 100}
	}
	return cities
}

// mustInstance builds an instance or fails the test.
func mustInstance(t *testing.T, cities []tsp.City) *tsp.Instance {
	t.Helper()
	in, err := tsp.NewInstance(cities)
	require.NoError(t, err)
	return in
}

// unitSquare returns the four corners of the unit square in perimeter
// order; the optimal tour has length exactly 4.
func unitSquare() []tsp.City {
	return []tsp.City{
		{ID: 1, X: 0, Y: 0},
		{ID: 2, X: 1, Y: 0},
		{ID: 3, X: 1, Y: 1},
		{ID: 4, X: 0, Y: 1},
	}
}

// bruteForceOptimal enumerates every tour from start and returns the
// minimum length. Only usable for tiny n (factorial time).
func bruteForceOptimal(t *testing.T, in *tsp.Instance, start int) float64 {
	t.Helper()
	n := in.N()
	require.LessOrEqual(t, n, 9, "brute force is factorial; keep n tiny")

	rest := make([]int, 0, n-1)
	for v := 0; v < n; v++ {
		if v != start {
			rest = append(rest, v)
		}
	}

	best := math.Inf(1)
	var permute func(k int)
	permute = func(k int) {
		if k == len(rest) {
			cost := in.Distance(start, rest[0])
			for i := 0; i+1 < len(rest); i++ {
				cost += in.Distance(rest[i], rest[i+1])
			}
			cost += in.Distance(rest[len(rest)-1], start)
			if cost < best {
				best = cost
			}
			return
		}
		for i := k; i < len(rest); i++ {
			rest[k], rest[i] = rest[i], rest[k]
			permute(k + 1)
			rest[k], rest[i] = rest[i], rest[k]
		}
	}
	permute(0)
	return best
}

// randomClosedTour builds a random valid closed tour over n vertices with
// the given start, using a local deterministic RNG.
func randomClosedTour(t *testing.T, n, start int, seed int64) []int {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	perm := rng.Perm(n)
	tour, err := tsp.MakeTourFromPermutation(perm, n, start)
	require.NoError(t, err)
	return tour
}

// requireValidClosedTour fails the test unless tour is a closed tour over
// n vertices anchored at start.
func requireValidClosedTour(t *testing.T, tour []int, n, start int) {
	t.Helper()
	require.NoError(t, tsp.ValidateTour(tour, n, start))
}
