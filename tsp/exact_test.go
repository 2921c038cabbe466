package tsp_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/freezing1116/tspsolve/tsp"
)

func TestTSPExact_UnitSquare(t *testing.T) {
	in := mustInstance(t, unitSquare())

	opts := tsp.DefaultOptions()
	opts.Algo = tsp.HeldKarp

	res, err := tsp.TSPExact(in, opts)
	require.NoError(t, err)
	require.InDelta(t, 4.0, res.Cost, epsGeo)
	require.Equal(t, []int{0, 1, 2, 3, 0}, res.Tour)
}

func TestTSPExact_TwoCities(t *testing.T) {
	in := mustInstance(t, []tsp.City{
		{ID: 1, X: 0, Y: 0},
		{ID: 2, X: 3, Y: 4},
	})

	res, err := tsp.TSPExact(in, tsp.DefaultOptions())
	require.NoError(t, err)
	require.InDelta(t, 10.0, res.Cost, epsGeo)
	require.Equal(t, []int{0, 1, 0}, res.Tour)
}

// TestTSPExact_MatchesBruteForce cross-checks the DP against explicit
// permutation enumeration on sizes where the latter is still tractable.
func TestTSPExact_MatchesBruteForce(t *testing.T) {
	for _, n := range []int{5, 6, 7, 8} {
		in := mustInstance(t, randomCities(n, seedDet+int64(n)))

		res, err := tsp.TSPExact(in, tsp.DefaultOptions())
		require.NoError(t, err)
		requireValidClosedTour(t, res.Tour, n, 0)

		want := bruteForceOptimal(t, in, 0)
		require.InDelta(t, want, res.Cost, epsGeo, "n=%d", n)
	}
}

func TestTSPExact_CeilingExceeded(t *testing.T) {
	in := mustInstance(t, randomCities(21, seedDet))

	opts := tsp.DefaultOptions() // ceiling defaults to 20
	_, err := tsp.TSPExact(in, opts)
	require.ErrorIs(t, err, tsp.ErrInstanceTooLarge)

	opts.HeldKarpCeiling = 12
	in2 := mustInstance(t, randomCities(13, seedDet))
	_, err = tsp.TSPExact(in2, opts)
	require.ErrorIs(t, err, tsp.ErrInstanceTooLarge)
}

func TestTSPExact_RaisedCeiling(t *testing.T) {
	in := mustInstance(t, randomCities(10, seedDet))

	opts := tsp.DefaultOptions()
	opts.HeldKarpCeiling = 10

	res, err := tsp.TSPExact(in, opts)
	require.NoError(t, err)
	requireValidClosedTour(t, res.Tour, 10, 0)
}

func TestTSPExact_StartVertex(t *testing.T) {
	in := mustInstance(t, randomCities(8, seedDet))

	opts := tsp.DefaultOptions()
	opts.StartVertex = 3

	res, err := tsp.TSPExact(in, opts)
	require.NoError(t, err)
	requireValidClosedTour(t, res.Tour, 8, 3)

	// Optimum is rotation invariant for a symmetric instance.
	base, err := tsp.TSPExact(in, tsp.DefaultOptions())
	require.NoError(t, err)
	require.InDelta(t, base.Cost, res.Cost, epsGeo)
}

func TestTSPExact_Deterministic(t *testing.T) {
	in := mustInstance(t, randomCities(9, seedDet))

	first, err := tsp.TSPExact(in, tsp.DefaultOptions())
	require.NoError(t, err)
	second, err := tsp.TSPExact(in, tsp.DefaultOptions())
	require.NoError(t, err)

	require.Equal(t, first.Tour, second.Tour)
	require.Equal(t, first.Cost, second.Cost)
}

// TestTSPExact_ExpiredBudgetFallsBack: an already-expired TimeLimit must
// degrade to the deterministic greedy tour instead of running the full DP.
// n=12 processes 2^11 subsets, enough to reach the throttled budget poll.
func TestTSPExact_ExpiredBudgetFallsBack(t *testing.T) {
	in := mustInstance(t, randomCities(12, seedDet))

	opts := tsp.DefaultOptions()
	opts.TimeLimit = time.Nanosecond

	res, err := tsp.TSPExact(in, opts)
	require.NoError(t, err)
	requireValidClosedTour(t, res.Tour, 12, 0)

	want := tsp.TestHookNearestNeighbor(in, 0)
	require.NoError(t, tsp.CanonicalizeOrientationInPlace(want))
	require.Equal(t, want, res.Tour)

	wantCost, err := tsp.TourCost(in, want)
	require.NoError(t, err)
	require.InDelta(t, wantCost, res.Cost, epsGeo)
}

func TestNearestNeighbor_ValidFallbackTour(t *testing.T) {
	in := mustInstance(t, randomCities(14, seedDet))

	tour := tsp.TestHookNearestNeighbor(in, 0)
	requireValidClosedTour(t, tour, 14, 0)
}
