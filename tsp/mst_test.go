package tsp_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/freezing1116/tspsolve/tsp"
)

// connectedByAdj reports whether every vertex is reachable from 0 over the
// adjacency lists.
func connectedByAdj(adj [][]int) bool {
	n := len(adj)
	seen := make([]bool, n)
	queue := []int{0}
	seen[0] = true
	count := 1
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, v := range adj[u] {
			if !seen[v] {
				seen[v] = true
				count++
				queue = append(queue, v)
			}
		}
	}
	return count == n
}

// TestMST_UnitSquare checks the exact tree on the canonical fixture:
// three unit edges, total weight 3.
func TestMST_UnitSquare(t *testing.T) {
	in := mustInstance(t, unitSquare())

	mst, err := tsp.MinimumSpanningTree(in, tsp.DefaultOptions())
	require.NoError(t, err)
	require.Len(t, mst.Edges, 3)
	require.InDelta(t, 3.0, mst.Weight, epsGeo)
	require.True(t, connectedByAdj(mst.Adj))
}

// TestMST_SpanningInvariants holds for random instances: n−1 edges,
// connected, every edge weight matches the instance distance.
func TestMST_SpanningInvariants(t *testing.T) {
	for _, n := range []int{2, 5, 17, 40} {
		in := mustInstance(t, randomCities(n, seedDet))

		mst, err := tsp.MinimumSpanningTree(in, tsp.DefaultOptions())
		require.NoError(t, err)
		require.Len(t, mst.Edges, n-1)
		require.True(t, connectedByAdj(mst.Adj), "n=%d", n)

		var sum float64
		for _, e := range mst.Edges {
			require.InDelta(t, in.Distance(e.U, e.V), e.W, 1e-12)
			sum += e.W
		}
		require.InDelta(t, sum, mst.Weight, epsGeo)
	}
}

// TestMST_PrimKruskalAgree verifies both builders find the same (unique)
// minimum total weight.
func TestMST_PrimKruskalAgree(t *testing.T) {
	in := mustInstance(t, randomCities(30, seedDet))

	prim := tsp.DefaultOptions()
	prim.MST = tsp.PrimMST
	kruskal := tsp.DefaultOptions()
	kruskal.MST = tsp.KruskalMST

	a, err := tsp.MinimumSpanningTree(in, prim)
	require.NoError(t, err)
	b, err := tsp.MinimumSpanningTree(in, kruskal)
	require.NoError(t, err)

	require.InDelta(t, a.Weight, b.Weight, epsGeo)
	require.Len(t, b.Edges, 29)
	require.True(t, connectedByAdj(b.Adj))
}

// TestMST_Deterministic repeats the build and expects identical edges.
func TestMST_Deterministic(t *testing.T) {
	in := mustInstance(t, randomCities(25, seedDet))

	first, err := tsp.MinimumSpanningTree(in, tsp.DefaultOptions())
	require.NoError(t, err)
	second, err := tsp.MinimumSpanningTree(in, tsp.DefaultOptions())
	require.NoError(t, err)

	require.Equal(t, first.Edges, second.Edges)
	require.Equal(t, first.Adj, second.Adj)
}

// TestMST_BadInput covers nil instances and out-of-range starts.
func TestMST_BadInput(t *testing.T) {
	_, err := tsp.MinimumSpanningTree(nil, tsp.DefaultOptions())
	require.ErrorIs(t, err, tsp.ErrInvalidInstance)

	in := mustInstance(t, unitSquare())
	opts := tsp.DefaultOptions()
	opts.StartVertex = 9
	_, err = tsp.MinimumSpanningTree(in, opts)
	require.ErrorIs(t, err, tsp.ErrStartOutOfRange)

	opts = tsp.DefaultOptions()
	opts.MST = tsp.MSTAlgo(99)
	_, err = tsp.MinimumSpanningTree(in, opts)
	require.ErrorIs(t, err, tsp.ErrUnsupportedMST)
}
