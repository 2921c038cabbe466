package tsp_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/freezing1116/tspsolve/tsp"
)

func TestThreeOpt_UncrossesSquare(t *testing.T) {
	in := mustInstance(t, unitSquare())

	tour, cost, err := tsp.ThreeOpt(in, crossedSquare(), tsp.DefaultOptions())
	require.NoError(t, err)
	require.InDelta(t, 4.0, cost, epsGeo)
	requireValidClosedTour(t, tour, 4, 0)
}

func TestThreeOpt_NeverWorsens(t *testing.T) {
	in := mustInstance(t, randomCities(16, seedDet))

	for trial := int64(0); trial < 5; trial++ {
		init := randomClosedTour(t, 16, 0, seedDet+trial)
		initCost, err := tsp.TourCost(in, init)
		require.NoError(t, err)

		tour, cost, err := tsp.ThreeOpt(in, init, tsp.DefaultOptions())
		require.NoError(t, err)
		requireValidClosedTour(t, tour, 16, 0)
		require.LessOrEqual(t, cost, initCost+epsGeo, "trial=%d", trial)
	}
}

// TestThreeOpt_AtLeastAsGoodAsTwoOpt: the 3-opt neighbourhood strictly
// contains the 2-opt moves, so from the same start the final length can
// only tie or beat plain 2-opt.
func TestThreeOpt_AtLeastAsGoodAsTwoOpt(t *testing.T) {
	in := mustInstance(t, randomCities(14, seedDet))
	init := randomClosedTour(t, 14, 0, seedDet)

	_, c2, err := tsp.TwoOpt(in, init, tsp.DefaultOptions())
	require.NoError(t, err)

	_, c3, err := tsp.ThreeOpt(in, init, tsp.DefaultOptions())
	require.NoError(t, err)

	require.LessOrEqual(t, c3, c2+epsGeo)
}

func TestThreeOpt_BestImprovement(t *testing.T) {
	in := mustInstance(t, randomCities(12, seedDet))
	init := randomClosedTour(t, 12, 0, seedDet+1)
	initCost, err := tsp.TourCost(in, init)
	require.NoError(t, err)

	opts := tsp.DefaultOptions()
	opts.BestImprovement = true

	tour, cost, err := tsp.ThreeOpt(in, init, opts)
	require.NoError(t, err)
	requireValidClosedTour(t, tour, 12, 0)
	require.LessOrEqual(t, cost, initCost+epsGeo)
}

func TestThreeOpt_TinyTourPassthrough(t *testing.T) {
	in := mustInstance(t, randomCities(3, seedDet))
	init := []int{0, 2, 1, 0}

	tour, cost, err := tsp.ThreeOpt(in, init, tsp.DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, init, tour)

	want, err := tsp.TourCost(in, init)
	require.NoError(t, err)
	require.InDelta(t, want, cost, epsGeo)
}

func TestThreeOpt_InputNotMutated(t *testing.T) {
	in := mustInstance(t, unitSquare())

	init := crossedSquare()
	snapshot := append([]int(nil), init...)

	_, _, err := tsp.ThreeOpt(in, init, tsp.DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, snapshot, init)
}
