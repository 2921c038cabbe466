package tsp_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/freezing1116/tspsolve/tsp"
)

// crossedSquare is the closed tour over the unit square whose two
// diagonals cross; a single segment reversal uncrosses it.
func crossedSquare() []int { return []int{0, 2, 1, 3, 0} }

func TestTwoOpt_UncrossesSquare(t *testing.T) {
	in := mustInstance(t, unitSquare())

	tour, cost, err := tsp.TwoOpt(in, crossedSquare(), tsp.DefaultOptions())
	require.NoError(t, err)
	require.InDelta(t, 4.0, cost, epsGeo)
	requireValidClosedTour(t, tour, 4, 0)
}

func TestTwoOpt_NeverWorsens(t *testing.T) {
	in := mustInstance(t, randomCities(20, seedDet))

	for trial := int64(0); trial < 6; trial++ {
		init := randomClosedTour(t, 20, 0, seedDet+trial)
		initCost, err := tsp.TourCost(in, init)
		require.NoError(t, err)

		tour, cost, err := tsp.TwoOpt(in, init, tsp.DefaultOptions())
		require.NoError(t, err)
		requireValidClosedTour(t, tour, 20, 0)
		require.LessOrEqual(t, cost, initCost+epsGeo, "trial=%d", trial)
	}
}

func TestTwoOpt_InputNotMutated(t *testing.T) {
	in := mustInstance(t, unitSquare())

	init := crossedSquare()
	snapshot := append([]int(nil), init...)

	_, _, err := tsp.TwoOpt(in, init, tsp.DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, snapshot, init)
}

func TestTwoOpt_MoveBudget(t *testing.T) {
	in := mustInstance(t, randomCities(15, seedDet))
	init := randomClosedTour(t, 15, 0, seedDet)

	opts := tsp.DefaultOptions()
	opts.TwoOptMaxIters = 1

	tour, cost, err := tsp.TwoOpt(in, init, opts)
	require.NoError(t, err)
	requireValidClosedTour(t, tour, 15, 0)

	initCost, err := tsp.TourCost(in, init)
	require.NoError(t, err)
	require.LessOrEqual(t, cost, initCost+epsGeo)
}

func TestTwoOpt_BadTour(t *testing.T) {
	in := mustInstance(t, unitSquare())

	_, _, err := tsp.TwoOpt(in, []int{0, 1, 2, 0}, tsp.DefaultOptions())
	require.Error(t, err)
}
