// Package tsp - MST-preorder 2-approximation.
//
// TSPPreorder builds a minimum spanning tree and walks it in preorder; the
// visitation order is the tour. Because the MST weighs no more than the
// optimal tour and doubling the tree upper-bounds the walk, the result is
// ≤ 2·OPT on metric instances.
package tsp

import "time"

// TSPPreorder computes the MST-preorder tour of the instance.
//
// Determinism: the DFS starts at opts.StartVertex and visits children in
// increasing city-index order (MST adjacency is sorted), so repeated runs
// on identical input produce identical tours.
//
// Errors: ErrInvalidInstance, ErrStartOutOfRange, ErrUnsupportedMST.
//
// Complexity: dominated by the MST build — O(n²) with Prim.
func TSPPreorder(in *Instance, opts Options) (TSResult, error) {
	started := time.Now()

	n, err := validateCommon(in, opts)
	if err != nil {
		return TSResult{}, err
	}

	t, err := MinimumSpanningTree(in, opts)
	if err != nil {
		return TSResult{}, err
	}

	// Iterative preorder DFS. Children are pushed in reverse sorted order
	// so the lowest index is popped, and therefore visited, first.
	var (
		order   = make([]int, 0, n)
		visited = make([]bool, n)
		stack   = make([]int, 0, n)
		u       int
		i       int
	)
	stack = append(stack, opts.StartVertex)
	for len(stack) > 0 {
		u = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited[u] {
			continue
		}
		visited[u] = true
		order = append(order, u)
		for i = len(t.Adj[u]) - 1; i >= 0; i-- {
			if !visited[t.Adj[u][i]] {
				stack = append(stack, t.Adj[u][i])
			}
		}
	}

	tour, err := MakeTourFromPermutation(order, n, opts.StartVertex)
	if err != nil {
		return TSResult{}, err
	}

	cost, err := TourCost(in, tour)
	if err != nil {
		return TSResult{}, err
	}

	return TSResult{Tour: tour, Cost: cost, Elapsed: time.Since(started)}, nil
}
