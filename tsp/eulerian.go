// Package tsp - Eulerian circuit extraction (Hierholzer's algorithm).
package tsp

// eulerianCircuit returns an Eulerian circuit of the undirected multigraph
// given by adjacency lists adj, starting and ending at start. Every vertex
// must have even degree (guaranteed by the MST∪matching construction).
//
// Hierholzer: walk unused edges from the top of a stack, splicing in
// sub-circuits discovered at revisited vertices as the stack unwinds.
// The adjacency lists are consumed from a local copy; the caller's slices
// are left intact.
//
// Complexity: O(V + E·deg) time with the linear back-edge removal; the
// multigraph here has at most 1.5·n edges, so effectively O(n²) worst case
// and near-linear in practice.
func eulerianCircuit(adj [][]int, start int) []int {
	local := make([][]int, len(adj))
	var u int
	for u = range adj {
		local[u] = append([]int(nil), adj[u]...)
	}

	var (
		circuit []int
		stack   = []int{start}
		v       int
		i       int
		x       int
	)
	for len(stack) > 0 {
		u = stack[len(stack)-1]
		if len(local[u]) == 0 {
			// No unused edges left here: this vertex closes a circuit.
			circuit = append(circuit, u)
			stack = stack[:len(stack)-1]
			continue
		}

		// Take one edge u→v and erase its reverse. Removing only the
		// first occurrence keeps parallel (multigraph) edges alive.
		v = local[u][len(local[u])-1]
		local[u] = local[u][:len(local[u])-1]
		for i, x = range local[v] {
			if x == u {
				local[v] = append(local[v][:i], local[v][i+1:]...)
				break
			}
		}
		stack = append(stack, v)
	}

	// The walk accumulates in reverse order.
	for i, x = 0, len(circuit)-1; i < x; i, x = i+1, x-1 {
		circuit[i], circuit[x] = circuit[x], circuit[i]
	}
	return circuit
}
