// Package tsp - tour utilities shared by exact/heuristic solvers.
//
// Compact, allocation-conscious helpers operating purely on tour structure
// (index sequences), independent of the distance model:
//   - ValidatePermutation: verify a permutation over {0..n-1}.
//   - MakeTourFromPermutation: build a closed tour rotated to a start.
//   - ValidateTour: enforce Hamiltonian-cycle invariants.
//   - CanonicalizeOrientationInPlace: canonical direction w.r.t. the
//     neighbors of the start vertex.
//   - reverseArcInPlace: in-place segment reversal (the 2-opt primitive).
//   - CopyTour: independent copy of a tour slice.
//   - EqualToursModuloRotation: equality under rotation.
//   - ShortcutEulerianToHamiltonian: skip revisits in an Eulerian walk.
//
// No logging, no panics on user input - only sentinel errors from types.go.
package tsp

// ValidatePermutation checks that perm is a permutation of {0..n-1} of
// length n.
//
// Complexity: O(n) time, O(n) space.
func ValidatePermutation(perm []int, n int) error {
	if n <= 0 || len(perm) != n {
		return ErrDimensionMismatch
	}
	seen := make([]bool, n)

	var (
		i int
		v int
	)
	for i = 0; i < n; i++ {
		v = perm[i]
		if v < 0 || v >= n {
			return ErrDimensionMismatch
		}
		if seen[v] {
			return ErrDimensionMismatch
		}
		seen[v] = true
	}
	return nil
}

// MakeTourFromPermutation builds a closed Hamiltonian tour from a vertex
// permutation, rotated so the tour starts (and closes) at start.
//
// Contract:
//   - perm is a permutation of {0..n-1} (ValidatePermutation),
//   - start ∈ [0..n-1].
//
// Returned tour satisfies len==n+1, tour[0]==tour[n]==start.
//
// Complexity: O(n) time, O(n) space.
func MakeTourFromPermutation(perm []int, n, start int) ([]int, error) {
	if err := ValidatePermutation(perm, n); err != nil {
		return nil, err
	}
	if start < 0 || start >= n {
		return nil, ErrStartOutOfRange
	}

	// Locate start inside perm.
	var (
		i     int
		pivot = -1
	)
	for i = 0; i < n; i++ {
		if perm[i] == start {
			pivot = i
			break
		}
	}
	if pivot == -1 {
		return nil, ErrDimensionMismatch
	}

	tour := make([]int, n+1)
	for i = 0; i < n; i++ {
		tour[i] = perm[(pivot+i)%n]
	}
	tour[n] = start
	return tour, nil
}

// ValidateTour enforces Hamiltonian-cycle invariants:
//
//	len(tour) == n+1, tour[0]==tour[n]==start,
//	each vertex v ∈ [0..n-1] appears exactly once in positions [0..n-1].
//
// Complexity: O(n) time, O(n) space.
func ValidateTour(tour []int, n, start int) error {
	if n <= 0 || len(tour) != n+1 {
		return ErrDimensionMismatch
	}
	if start < 0 || start >= n {
		return ErrStartOutOfRange
	}
	if tour[0] != start || tour[n] != start {
		return ErrDimensionMismatch
	}

	seen := make([]bool, n)

	var (
		i int
		v int
	)
	for i = 0; i < n; i++ {
		v = tour[i]
		if v < 0 || v >= n {
			return ErrDimensionMismatch
		}
		if seen[v] {
			return ErrDimensionMismatch
		}
		seen[v] = true
	}
	return nil
}

// CanonicalizeOrientationInPlace fixes the tour direction under a fixed
// start: if the right neighbor tour[1] is larger than the left neighbor
// tour[n-1], the interior segment [1..n-1] is reversed. The same cyclic
// order thus always prints identically, regardless of which direction a
// solver happened to walk it.
//
// Requirements: len(tour)==n+1 and tour[0]==tour[n].
//
// Complexity: O(n) time, O(1) space.
func CanonicalizeOrientationInPlace(tour []int) error {
	if len(tour) < 3 {
		return ErrDimensionMismatch
	}
	var n = len(tour) - 1
	if tour[0] != tour[n] {
		return ErrDimensionMismatch
	}
	if tour[1] > tour[n-1] {
		return reverseArcInPlace(tour, 1, n-1)
	}
	return nil
}

// reverseArcInPlace reverses the inclusive segment tour[i..k] in place,
// keeping the closing vertex intact. This is the primitive behind 2-opt.
//
// Contracts: the tour is closed (tour[0]==tour[n]) and 1 ≤ i < k ≤ n-1.
//
// Complexity: O(k-i) time, O(1) space.
func reverseArcInPlace(tour []int, i, k int) error {
	var n = len(tour) - 1
	if n < 2 || tour[0] != tour[n] {
		return ErrDimensionMismatch
	}
	if i < 1 || k > n-1 || i >= k {
		return ErrDimensionMismatch
	}
	for i < k {
		tour[i], tour[k] = tour[k], tour[i]
		i++
		k--
	}
	return nil
}

// CopyTour returns an independent copy of the input tour slice.
//
// Complexity: O(n) time, O(n) space.
func CopyTour(tour []int) []int {
	if tour == nil {
		return nil
	}
	out := make([]int, len(tour))
	copy(out, tour)
	return out
}

// EqualToursModuloRotation checks equality of two closed tours under
// rotation (same direction). Both inputs must be closed (len==n+1).
//
// Complexity: O(n) time.
func EqualToursModuloRotation(a, b []int) bool {
	if len(a) != len(b) || len(a) < 2 {
		return false
	}
	var (
		n  = len(a) - 1
		st = a[0]
	)
	if a[n] != st || b[n] != b[0] {
		return false
	}

	var (
		j int
		p = -1
	)
	for j = 0; j < n; j++ {
		if b[j] == st {
			p = j
			break
		}
	}
	if p == -1 {
		return false
	}

	var i int
	for i = 0; i < n; i++ {
		if a[i] != b[(p+i)%n] {
			return false
		}
	}
	return true
}

// ShortcutEulerianToHamiltonian converts an Eulerian vertex sequence (with
// revisits) into a Hamiltonian cycle by keeping only first visits, then
// rotating to start and closing. This is the Christofides shortcutting
// step; under the triangle inequality it never increases length.
//
// Contracts:
//   - every v ∈ euler lies in [0..n-1] and every vertex appears at least
//     once; otherwise ErrDimensionMismatch.
//   - start ∈ [0..n-1]; otherwise ErrStartOutOfRange.
//
// Complexity: O(len(euler) + n) time, O(n) space.
func ShortcutEulerianToHamiltonian(euler []int, n, start int) ([]int, error) {
	if n <= 0 {
		return nil, ErrDimensionMismatch
	}
	if start < 0 || start >= n {
		return nil, ErrStartOutOfRange
	}

	visited := make([]bool, n)
	cycle := make([]int, 0, n) // first occurrences, in walk order

	var (
		idx int
		v   int
	)
	for idx = 0; idx < len(euler); idx++ {
		v = euler[idx]
		if v < 0 || v >= n {
			return nil, ErrDimensionMismatch
		}
		if !visited[v] {
			visited[v] = true
			cycle = append(cycle, v)
		}
	}
	if len(cycle) != n {
		return nil, ErrDimensionMismatch
	}

	// Rotate to start and close.
	var (
		i int
		p = -1
	)
	for i = 0; i < n; i++ {
		if cycle[i] == start {
			p = i
			break
		}
	}
	if p == -1 {
		return nil, ErrDimensionMismatch
	}

	tour := make([]int, n+1)
	for i = 0; i < n; i++ {
		tour[i] = cycle[(p+i)%n]
	}
	tour[n] = start
	return tour, nil
}
