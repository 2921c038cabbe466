package tsp_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/freezing1116/tspsolve/tsp"
)

// TestTSPPreorder_UnitSquare walks the square's path-shaped MST in index
// order, which happens to be the optimal perimeter tour.
func TestTSPPreorder_UnitSquare(t *testing.T) {
	in := mustInstance(t, unitSquare())

	res, err := tsp.TSPPreorder(in, tsp.DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 2, 3, 0}, res.Tour)
	require.Equal(t, 4.0, res.Cost)
}

// TestTSPPreorder_ValidTours holds the permutation invariant for a spread
// of instance sizes.
func TestTSPPreorder_ValidTours(t *testing.T) {
	for _, n := range []int{2, 3, 7, 24, 50} {
		in := mustInstance(t, randomCities(n, seedDet+int64(n)))

		res, err := tsp.TSPPreorder(in, tsp.DefaultOptions())
		require.NoError(t, err, "n=%d", n)
		require.NoError(t, tsp.ValidateTour(res.Tour, n, 0), "n=%d", n)
		require.Positive(t, res.Cost)
	}
}

// TestTSPPreorder_TwoApproximation: the preorder walk never exceeds twice
// the optimum on metric instances (checked against Held–Karp on sizes
// where the exact solver is fast).
func TestTSPPreorder_TwoApproximation(t *testing.T) {
	for trial := int64(0); trial < 5; trial++ {
		in := mustInstance(t, randomCities(9, seedDet+trial))

		opt, err := tsp.TSPExact(in, tsp.DefaultOptions())
		require.NoError(t, err)

		res, err := tsp.TSPPreorder(in, tsp.DefaultOptions())
		require.NoError(t, err)
		require.LessOrEqual(t, res.Cost, 2*opt.Cost+epsGeo, "trial=%d", trial)
	}
}

// TestTSPPreorder_Deterministic repeats the solve and expects identical
// output.
func TestTSPPreorder_Deterministic(t *testing.T) {
	in := mustInstance(t, randomCities(20, seedDet))

	a, err := tsp.TSPPreorder(in, tsp.DefaultOptions())
	require.NoError(t, err)
	b, err := tsp.TSPPreorder(in, tsp.DefaultOptions())
	require.NoError(t, err)

	require.Equal(t, a.Tour, b.Tour)
	require.Equal(t, a.Cost, b.Cost)
}

// TestTSPPreorder_StartVertex honors a non-zero start.
func TestTSPPreorder_StartVertex(t *testing.T) {
	in := mustInstance(t, randomCities(12, seedDet))
	opts := tsp.DefaultOptions()
	opts.StartVertex = 5

	res, err := tsp.TSPPreorder(in, opts)
	require.NoError(t, err)
	require.NoError(t, tsp.ValidateTour(res.Tour, 12, 5))
}
