// Package tsp - minimum spanning tree builders on the complete metric
// graph. Both MSTPreorder and Christofides consume the result.
//
// Two algorithms are provided, selected by Options.MST:
//   - Prim, dense O(n²): the default, since the instance materializes all
//     pairwise distances anyway.
//   - Kruskal, sorted edges + union-find: O(n² log n) on the complete
//     graph.
//
// Both are fully deterministic: equal-weight ties are broken by the lowest
// vertex index, and adjacency lists come out sorted in increasing index
// order.
package tsp

import (
	"math"
	"sort"
)

// MSTEdge is one undirected spanning-tree edge with its weight.
type MSTEdge struct {
	U, V int
	W    float64
}

// MST is a spanning tree of the complete distance graph: exactly n−1
// edges, acyclic and connected. Adj holds the same edges as sorted
// adjacency lists for traversal.
type MST struct {
	Edges  []MSTEdge
	Adj    [][]int
	Weight float64
}

// MinimumSpanningTree builds an MST of the instance rooted at
// opts.StartVertex using the builder selected by opts.MST.
//
// Errors: ErrStartOutOfRange, ErrUnsupportedMST, ErrInvalidInstance.
//
// Complexity: O(n²) for Prim, O(n² log n) for Kruskal.
func MinimumSpanningTree(in *Instance, opts Options) (MST, error) {
	if in == nil {
		return MST{}, ErrInvalidInstance
	}
	if err := validateStartVertex(in.n, opts.StartVertex); err != nil {
		return MST{}, err
	}

	var (
		t   MST
		err error
	)
	switch opts.MST {
	case PrimMST:
		t, err = primMST(in, opts.StartVertex)
	case KruskalMST:
		t, err = kruskalMST(in)
	default:
		return MST{}, ErrUnsupportedMST
	}
	if err != nil {
		return MST{}, err
	}

	// Sorted adjacency gives every downstream traversal (preorder DFS,
	// Hierholzer) a deterministic edge order.
	var v int
	for v = range t.Adj {
		sort.Ints(t.Adj[v])
	}
	return t, nil
}

// primMST grows the tree one vertex at a time from root, keeping for every
// outside vertex the cheapest edge into the growing tree.
//
// Tie-breaking: the candidate scan runs in increasing vertex order with a
// strict < comparison, so among equal-weight candidates the lowest index
// wins, and a vertex keeps its earliest (lowest-index) parent.
//
// Complexity: O(n²) time, O(n) space beside the output.
func primMST(in *Instance, root int) (MST, error) {
	var (
		n    = in.n
		d    = in.matrix()
		inT  = make([]bool, n)      // vertex already in the tree
		best = make([]float64, n)   // cheapest edge weight into the tree
		par  = make([]int, n)       // parent realizing best[v]
		adj  = make([][]int, n)     // output adjacency
		out  = make([]MSTEdge, 0, n-1)
		sum  float64
	)

	var v int
	for v = 0; v < n; v++ {
		best[v] = math.Inf(1)
		par[v] = -1
	}
	best[root] = 0

	var (
		it   int
		u    int
		minW float64
	)
	for it = 0; it < n; it++ {
		// Cheapest outside vertex; ascending scan breaks ties low.
		u, minW = -1, math.Inf(1)
		for v = 0; v < n; v++ {
			if !inT[v] && best[v] < minW {
				minW, u = best[v], v
			}
		}
		if u < 0 {
			// Unreachable on a complete finite matrix.
			return MST{}, ErrInvalidInstance
		}

		inT[u] = true
		if par[u] >= 0 {
			adj[u] = append(adj[u], par[u])
			adj[par[u]] = append(adj[par[u]], u)
			out = append(out, MSTEdge{U: par[u], V: u, W: best[u]})
			sum += best[u]
		}

		for v = 0; v < n; v++ {
			if !inT[v] && d[u*n+v] < best[v] {
				best[v] = d[u*n+v]
				par[v] = u
			}
		}
	}

	return MST{Edges: out, Adj: adj, Weight: round1e9(sum)}, nil
}

// kruskalMST sorts all n·(n−1)/2 edges and unions components until the
// tree spans. Ties are broken by (weight, U, V) so the edge order, and
// therefore the tree, is unique.
//
// Complexity: O(n² log n) time, O(n²) space for the edge list.
func kruskalMST(in *Instance) (MST, error) {
	var (
		n     = in.n
		edges = make([]MSTEdge, 0, n*(n-1)/2)
		i, j  int
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			edges = append(edges, MSTEdge{U: i, V: j, W: in.dist[i*n+j]})
		}
	}
	sort.Slice(edges, func(a, b int) bool {
		if edges[a].W != edges[b].W {
			return edges[a].W < edges[b].W
		}
		if edges[a].U != edges[b].U {
			return edges[a].U < edges[b].U
		}
		return edges[a].V < edges[b].V
	})

	var (
		uf  = newUnionFind(n)
		adj = make([][]int, n)
		out = make([]MSTEdge, 0, n-1)
		sum float64
		e   MSTEdge
	)
	for _, e = range edges {
		if !uf.union(e.U, e.V) {
			continue // would close a cycle
		}
		adj[e.U] = append(adj[e.U], e.V)
		adj[e.V] = append(adj[e.V], e.U)
		out = append(out, e)
		sum += e.W
		if len(out) == n-1 {
			break
		}
	}
	if len(out) != n-1 {
		return MST{}, ErrInvalidInstance
	}

	return MST{Edges: out, Adj: adj, Weight: round1e9(sum)}, nil
}

// unionFind is a disjoint-set forest with path compression and union by
// rank.
type unionFind struct {
	parent []int
	rank   []int
}

func newUnionFind(n int) *unionFind {
	uf := &unionFind{parent: make([]int, n), rank: make([]int, n)}
	for i := 0; i < n; i++ {
		uf.parent[i] = i
	}
	return uf
}

// find returns the set representative of x, compressing the path.
func (uf *unionFind) find(x int) int {
	for uf.parent[x] != x {
		uf.parent[x] = uf.parent[uf.parent[x]]
		x = uf.parent[x]
	}
	return x
}

// union merges the sets of a and b; false if they were already joined.
func (uf *unionFind) union(a, b int) bool {
	ra, rb := uf.find(a), uf.find(b)
	if ra == rb {
		return false
	}
	if uf.rank[ra] < uf.rank[rb] {
		ra, rb = rb, ra
	}
	uf.parent[rb] = ra
	if uf.rank[ra] == uf.rank[rb] {
		uf.rank[ra]++
	}
	return true
}
