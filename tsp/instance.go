// Package tsp - the shared graph model: an immutable city set with cached
// pairwise Euclidean distances.
//
// Every solver consumes an *Instance. Distances are materialized once at
// construction into a flat row-major buffer: all algorithms here eventually
// touch every pair, and the flat layout keeps hot loops free of interface
// indirection and hashing.
package tsp

import "math"

// City is one input point: a stable identifier plus 2D coordinates.
// Immutable once loaded; ID is carried through for presentation only and
// plays no role in the engine, which works on 0-based slice indices.
type City struct {
	ID int
	X  float64
	Y  float64
}

// Instance is the immutable graph model shared by every solver: an ordered
// city sequence (index = canonical 0-based id) and the full n×n symmetric
// Euclidean distance matrix.
type Instance struct {
	cities []City
	n      int
	dist   []float64 // row-major n×n; dist[i*n+j] = ‖cities[i]−cities[j]‖
}

// NewInstance validates the city list and precomputes all pairwise
// distances.
//
// Contracts:
//   - len(cities) ≥ 2; fewer is a degenerate instance.
//   - Every coordinate must be finite (no NaN, no ±Inf).
//
// Errors: ErrInvalidInstance on any violation.
//
// Complexity: O(n²) time and space.
func NewInstance(cities []City) (*Instance, error) {
	var n = len(cities)
	if n < 2 {
		return nil, ErrInvalidInstance
	}

	var (
		i int
		c City
	)
	for i = 0; i < n; i++ {
		c = cities[i]
		if math.IsNaN(c.X) || math.IsInf(c.X, 0) ||
			math.IsNaN(c.Y) || math.IsInf(c.Y, 0) {
			return nil, ErrInvalidInstance
		}
	}

	// Private copy: the instance owns its city slice after construction.
	own := make([]City, n)
	copy(own, cities)

	// Full dense matrix. Symmetry holds by construction; only the upper
	// triangle is computed.
	d := make([]float64, n*n)
	var (
		j  int
		dx float64
		dy float64
		w  float64
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			dx = own[i].X - own[j].X
			dy = own[i].Y - own[j].Y
			w = math.Sqrt(dx*dx + dy*dy)
			d[i*n+j] = w
			d[j*n+i] = w
		}
	}

	return &Instance{cities: own, n: n, dist: d}, nil
}

// N returns the number of cities.
func (in *Instance) N() int { return in.n }

// Distance returns the Euclidean distance between cities i and j.
//
// Contract: 0 ≤ i,j < N(). Out-of-range indices panic like any slice access;
// solvers validate shapes upfront.
//
// Complexity: O(1).
func (in *Instance) Distance(i, j int) float64 {
	return in.dist[i*in.n+j]
}

// Cities returns a copy of the ordered city sequence.
func (in *Instance) Cities() []City {
	out := make([]City, in.n)
	copy(out, in.cities)
	return out
}

// matrix exposes the internal flat distance buffer to solvers in this
// package. Callers must not mutate it.
func (in *Instance) matrix() []float64 { return in.dist }
